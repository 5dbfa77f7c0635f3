// Package session owns the single live AnalysisResult of a user session and
// drives the analyze/import/merge/history flow around it.
package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"adspend_analyst/pkg/core/history"
	"adspend_analyst/pkg/core/ingest"
	"adspend_analyst/pkg/core/llm"
	"adspend_analyst/pkg/core/prompt"
	"adspend_analyst/pkg/core/report"
)

var (
	// ErrAnalysisInProgress is returned when a second inference request
	// arrives while one is still outstanding.
	ErrAnalysisInProgress = errors.New("an analysis is already in progress")
	// ErrNoResult is returned when no canonical result exists yet.
	ErrNoResult = errors.New("no analysis result available")
	// ErrHistoryNotFound is returned when a history id does not exist.
	ErrHistoryNotFound = errors.New("history entry not found")
)

// VisionCaller is the inference collaborator boundary. agent.Manager
// satisfies it.
type VisionCaller interface {
	ExecuteVisionPrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, images []llm.ImagePart, options map[string]interface{}) (string, error)
}

// Session is the single logical owner of the current canonical result.
// Analyze and Import replace that value atomically; nothing mutates it in
// place. The inference call is the only long-latency operation, and only one
// may be outstanding at a time.
type Session struct {
	mu        sync.Mutex
	analyzing bool
	current   *report.AnalysisResult

	caller   VisionCaller
	ingestor *ingest.Ingestor
	log      history.Log
}

func NewSession(caller VisionCaller, log history.Log) *Session {
	return &Session{
		caller:   caller,
		ingestor: ingest.NewIngestor(),
		log:      log,
	}
}

// Analyze sends the cost and revenue screenshots to the model, ingests the
// reply, merges it into the current result, and appends the new canonical
// result to history. Returns the new result and the dropped-record count.
//
// Canonical state is only touched after a full payload has been ingested:
// an upstream failure or cancellation leaves no partial state behind.
func (s *Session) Analyze(ctx context.Context, cost, revenue llm.ImagePart) (*report.AnalysisResult, int, error) {
	s.mu.Lock()
	if s.analyzing {
		s.mu.Unlock()
		return nil, 0, ErrAnalysisInProgress
	}
	s.analyzing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.analyzing = false
		s.mu.Unlock()
	}()

	pt, err := prompt.Get().GetPrompt(prompt.ExtractionPromptID)
	if err != nil {
		return nil, 0, fmt.Errorf("extraction prompt missing: %w", err)
	}

	fmt.Println("[ANALYSIS] Sending screenshots to inference provider...")
	raw, err := s.caller.ExecuteVisionPrompt(ctx, prompt.ExtractionPromptID, pt.UserPrompt, pt.SystemPrompt, []llm.ImagePart{cost, revenue}, nil)
	if err != nil {
		return nil, 0, classifyUpstream(err)
	}

	ingested, err := s.ingestor.IngestModelText(raw)
	if err != nil {
		return nil, 0, err
	}

	merged := s.commit(ingested.Report)
	s.appendHistory(ctx, merged)
	fmt.Printf("[ANALYSIS] Completed: %d countries, %d dropped\n", len(merged.Details), ingested.Dropped)
	return merged, ingested.Dropped, nil
}

// Import ingests an exported report file and merges it into the current
// result, appending the new canonical result to history.
func (s *Session) Import(ctx context.Context, filename, content string) (*report.AnalysisResult, int, error) {
	ingested, err := s.ingestor.IngestFile(filename, content)
	if err != nil {
		return nil, 0, err
	}

	merged := s.commit(ingested.Report)
	s.appendHistory(ctx, merged)
	fmt.Printf("[IMPORT] Merged %q: %d countries now tracked\n", filename, len(merged.Details))
	return merged, ingested.Dropped, nil
}

// Current returns a copy of the canonical result, or ErrNoResult.
func (s *Session) Current() (*report.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoResult
	}
	return s.current.Clone(), nil
}

// Restore replaces the canonical result with a frozen history snapshot.
// No merge: restoring means going back to exactly that report.
func (s *Session) Restore(ctx context.Context, id string) (*report.AnalysisResult, error) {
	items, err := s.log.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	for _, item := range items {
		if item.ID == id {
			s.mu.Lock()
			s.current = item.Result.Clone()
			s.mu.Unlock()
			return item.Result.Clone(), nil
		}
	}
	return nil, ErrHistoryNotFound
}

// History lists all snapshots, newest first.
func (s *Session) History(ctx context.Context) ([]report.HistoryItem, error) {
	return s.log.List(ctx)
}

// RemoveHistory deletes one snapshot by id.
func (s *Session) RemoveHistory(ctx context.Context, id string) error {
	return s.log.Remove(ctx, id)
}

// commit atomically replaces the canonical result with the merge of the
// current value and the incoming one.
func (s *Session) commit(incoming *report.AnalysisResult) *report.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = report.Merge(s.current, incoming)
	return s.current.Clone()
}

// appendHistory freezes the result into the log. History snapshots are
// advisory; a failed write must not fail the analysis that produced it.
func (s *Session) appendHistory(ctx context.Context, res *report.AnalysisResult) {
	item := report.HistoryItem{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Result:    res.Clone(),
	}
	if err := s.log.Append(ctx, item); err != nil {
		fmt.Printf("[WARNING] Failed to append history entry: %v\n", err)
	}
}

// classifyUpstream wraps provider failures into the error taxonomy. Timeouts
// get their own flag: the usual cause is oversized screenshots, and the user
// message differs.
func classifyUpstream(err error) *ingest.UpstreamError {
	var nerr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &nerr) && nerr.Timeout())
	reason := "inference call failed"
	if timeout {
		reason = "inference call timed out"
	}
	return &ingest.UpstreamError{Reason: reason, Timeout: timeout, Err: err}
}
