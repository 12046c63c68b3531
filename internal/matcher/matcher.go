// Package matcher scores normalized input against the knowledge base using
// lexical token overlap.
package matcher

import (
	"helpbot/internal/kb"
	"helpbot/internal/nlp"
)

// ScoreDivisor scales the acceptance threshold with input length: short
// inputs need near-total overlap, long inputs tolerate partial overlap.
// Hand-tuned; kept as-is rather than re-derived.
const ScoreDivisor = 3

// result is the transient best-candidate tracking used during a single
// FindBestMatch call.
type result struct {
	entry *kb.Entry
	score int
}

// Threshold returns the minimum overlap score an entry must reach for an
// input of the given normalized token count: max(1, tokens/ScoreDivisor).
func Threshold(inputLen int) int {
	if t := inputLen / ScoreDivisor; t > 1 {
		return t
	}
	return 1
}

// FindBestMatch returns the first knowledge base entry whose question shares
// the highest number of tokens with the input, provided that count meets the
// dynamic threshold. Repeated tokens never raise the score. Strict greater-
// than tracking means earlier entries win ties. Returns false on no match;
// empty input can never score and therefore never matches.
func FindBestMatch(inputTokens []string, entries []kb.Entry) (*kb.Entry, bool) {
	inputSet := nlp.ToSet(inputTokens)

	best := result{}
	for i := range entries {
		score := overlap(inputSet, entries[i].Tokens)
		if score > best.score {
			best = result{entry: &entries[i], score: score}
		}
	}

	if best.entry == nil || best.score < Threshold(len(inputTokens)) {
		return nil, false
	}
	return best.entry, true
}

// overlap counts tokens common to both sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for t := range a {
		if _, ok := b[t]; ok {
			count++
		}
	}
	return count
}
