package models

import (
	"testing"
)

func TestStatusValidation(t *testing.T) {
	tests := []struct {
		status  Status
		isValid bool
	}{
		{"draft", true},
		{"completed", true},
		{"important", true},
		{"archived", true},
		{Status("done"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.isValid {
				t.Errorf("Expected Valid() %v for status %q", tt.isValid, tt.status)
			}
		})
	}
}

func TestParseFieldValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"42", float64(42)},
		{" 3.5 ", 3.5},
		{"true", true},
		{"false", false},
		{"True", "True"},
		{"hello", "hello"},
		{"", ""},
		{"Inf", "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseFieldValue(tt.raw)
			if got != tt.want {
				t.Errorf("ParseFieldValue(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeFieldValue(t *testing.T) {
	got, err := NormalizeFieldValue(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != float64(7) {
		t.Errorf("Expected int to normalize to float64(7), got %#v", got)
	}

	if _, err := NormalizeFieldValue(map[string]any{"a": 1}); err == nil {
		t.Error("Expected error for nested map value")
	}
}

func TestFieldsDropsChildren(t *testing.T) {
	n := &Node{
		ID:       "a",
		Title:    "A",
		Children: []*Node{{ID: "b"}},
		Metadata: &Metadata{Tags: []string{"x"}},
	}

	f := n.Fields()
	if f.Children != nil {
		t.Error("Expected Fields() to drop children")
	}
	f.Metadata.Tags[0] = "y"
	if n.Metadata.Tags[0] != "x" {
		t.Error("Expected Fields() to deep copy metadata")
	}
	if len(n.Children) != 1 {
		t.Error("Expected original node to keep its children")
	}
}
