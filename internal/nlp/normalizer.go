// Package nlp provides the text normalization pipeline used for knowledge
// base matching: lowercasing, treebank-style tokenization, lemmatization and
// stopword removal.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// Normalizer reduces free text to lowercase alphanumeric lemmas with
// stopwords removed. It is stateless after construction and safe for
// concurrent use.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewNormalizer builds a normalizer with the English lemma dictionary.
func NewNormalizer() (*Normalizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lem}, nil
}

// Normalize lowercases the input, tokenizes it, keeps only fully
// alphanumeric tokens, lemmatizes each token and drops stopwords.
// Token order follows the input. Never fails; empty or unparseable
// input yields an empty slice.
func (n *Normalizer) Normalize(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		if !isAlphanumeric(tok.Text) {
			continue
		}
		lemma := n.lemmatizer.Lemma(tok.Text)
		if IsStopword(lemma) {
			continue
		}
		tokens = append(tokens, lemma)
	}
	return tokens
}

// TokenSet returns the normalized tokens as a set. Repeated tokens
// collapse, so set size is what the matcher scores against.
func (n *Normalizer) TokenSet(text string) map[string]struct{} {
	return ToSet(n.Normalize(text))
}

// ToSet collapses a token slice into a set.
func ToSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// isAlphanumeric reports whether the token consists solely of letters and
// digits. Punctuation-only and mixed symbol tokens (e.g. "n't", "--") are
// rejected.
func isAlphanumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
