package nlp

import (
	"slices"
	"strings"
	"testing"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer() failed: %v", err)
	}
	return n
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t\n  ",
			want:  nil,
		},
		{
			name:  "stopwords only",
			input: "what are the",
			want:  nil,
		},
		{
			name:  "punctuation only",
			input: "?! ... --",
			want:  nil,
		},
		{
			name:  "lemmatizes inflected forms",
			input: "running foxes",
			want:  []string{"run", "fox"},
		},
		{
			name:  "lowercases and strips punctuation",
			input: "Hello, World!",
			want:  []string{"hello", "world"},
		},
		{
			name:  "keeps digits",
			input: "order 12345 status",
			want:  []string{"order", "12345", "status"},
		},
		{
			name:  "drops stopwords around content words",
			input: "how can I return a product",
			want:  []string{"return", "product"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeContractions(t *testing.T) {
	n := newTestNormalizer(t)

	// Treebank tokenization splits "don't" into "do" and "n't"; the
	// clitic is not alphanumeric and "do" is a stopword, so only the
	// content word survives.
	got := n.Normalize("I don't ship")
	if !slices.Contains(got, "ship") {
		t.Errorf("Normalize contraction input = %v, want it to contain %q", got, "ship")
	}
	for _, tok := range got {
		if strings.ContainsRune(tok, '\'') {
			t.Errorf("Normalize left a clitic token %q", tok)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newTestNormalizer(t)

	inputs := []string{
		"What are your opening hours?",
		"The quick brown foxes are running!",
		"How can I return a product?",
	}

	for _, input := range inputs {
		first := n.Normalize(input)
		second := n.Normalize(strings.Join(first, " "))
		if !slices.Equal(first, second) {
			t.Errorf("re-normalizing %q changed tokens: %v -> %v", input, first, second)
		}
	}
}

func TestNormalizeSharedLemma(t *testing.T) {
	n := newTestNormalizer(t)

	question := n.TokenSet("What are your opening hours?")
	input := n.TokenSet("When are you open?")

	shared := false
	for tok := range input {
		if _, ok := question[tok]; ok {
			shared = true
			break
		}
	}
	if !shared {
		t.Errorf("expected a shared lemma between question %v and input %v", question, input)
	}
}

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"be", true},
		{"you", true},
		{"shipping", false},
		{"return", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestToSet(t *testing.T) {
	set := ToSet([]string{"a", "b", "a", "c", "b"})
	if len(set) != 3 {
		t.Errorf("ToSet collapsed to %d entries, want 3", len(set))
	}
}
