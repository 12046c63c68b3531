// Package kb holds the curated question/answer knowledge base.
package kb

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"helpbot/internal/models"
	"helpbot/internal/nlp"
)

// Entry is a knowledge base entry with its question tokens pre-normalized
// at load time so matching never re-runs the normalizer per request.
type Entry struct {
	models.KnowledgeEntry
	Tokens map[string]struct{}
}

// file is the on-disk YAML shape of the knowledge base.
type file struct {
	Entries []models.KnowledgeEntry `yaml:"entries"`
}

// Base is an ordered, reloadable collection of entries. Reads vastly
// outnumber writes; a reload swaps the whole slice under the write lock.
type Base struct {
	mu         sync.RWMutex
	path       string
	normalizer *nlp.Normalizer
	entries    []Entry
}

// Load reads the knowledge base from a YAML file. When path is empty the
// built-in seed set is used instead.
func Load(path string, normalizer *nlp.Normalizer) (*Base, error) {
	b := &Base{path: path, normalizer: normalizer}

	if path == "" {
		b.entries = build(seedEntries, normalizer)
		return b, nil
	}
	entries, err := readFile(path, normalizer)
	if err != nil {
		return nil, err
	}
	b.entries = entries
	return b, nil
}

// Reload re-reads the backing file and atomically replaces the entry set.
// Fails without touching the current entries when the file is unreadable,
// so a bad edit never leaves the bot without a knowledge base.
func (b *Base) Reload() error {
	if b.path == "" {
		return fmt.Errorf("knowledge base has no backing file")
	}
	entries, err := readFile(b.path, b.normalizer)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.entries = entries
	b.mu.Unlock()
	return nil
}

// Entries returns the current ordered entry set. The returned slice is
// replaced wholesale on reload and must not be mutated by callers.
func (b *Base) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.entries
}

// Len returns the number of entries.
func (b *Base) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

func readFile(path string, normalizer *nlp.Normalizer) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base file: %w", err)
	}
	if len(f.Entries) == 0 {
		return nil, fmt.Errorf("knowledge base file %s contains no entries", path)
	}
	return build(f.Entries, normalizer), nil
}

func build(raw []models.KnowledgeEntry, normalizer *nlp.Normalizer) []Entry {
	entries := make([]Entry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, Entry{
			KnowledgeEntry: e,
			Tokens:         normalizer.TokenSet(e.Question),
		})
	}
	return entries
}
