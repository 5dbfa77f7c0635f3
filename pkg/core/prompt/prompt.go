package prompt

// PromptTemplate is one reusable instruction set for a model call.
type PromptTemplate struct {
	ID           string
	Category     string
	Description  string
	SystemPrompt string
	UserPrompt   string
}
