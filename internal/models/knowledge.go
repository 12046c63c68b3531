package models

// KnowledgeEntry is a single curated question/answer pair.
// Entries are immutable once loaded; identity is positional within the
// knowledge base, so duplicates are allowed and the earlier entry wins ties.
type KnowledgeEntry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}
