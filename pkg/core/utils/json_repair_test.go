package utils

import (
	"strings"
	"testing"
)

type parseTarget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSmartParseStrict(t *testing.T) {
	var out parseTarget
	if _, err := SmartParse(`{"name": "India", "count": 3}`, &out); err != nil {
		t.Fatalf("strict parse failed: %v", err)
	}
	if out.Name != "India" || out.Count != 3 {
		t.Errorf("got %+v", out)
	}
}

func TestSmartParseRepairsTrailingComma(t *testing.T) {
	var out parseTarget
	if _, err := SmartParse(`{"name": "India", "count": 3,}`, &out); err != nil {
		t.Fatalf("repair parse failed: %v", err)
	}
	if out.Name != "India" {
		t.Errorf("got %+v", out)
	}
}

func TestSmartParseHJSONFallback(t *testing.T) {
	var out parseTarget
	input := `{
  name: India
  count: 3
}`
	if _, err := SmartParse(input, &out); err != nil {
		t.Fatalf("hjson parse failed: %v", err)
	}
	if out.Name != "India" || out.Count != 3 {
		t.Errorf("got %+v", out)
	}
}

func TestSmartParseFailure(t *testing.T) {
	// A bare string parses on every rung but can never fill the schema.
	var out parseTarget
	_, err := SmartParse(`"just a plain sentence"`, &out)
	if err == nil {
		t.Fatal("expected failure for non-object input")
	}
	if !strings.Contains(err.Error(), "SMART_PARSE_FAILED") {
		t.Errorf("error = %v, want SMART_PARSE_FAILED prefix", err)
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tc := range cases {
		if got := strings.TrimSpace(StripCodeFences(tc.in)); got != tc.want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
