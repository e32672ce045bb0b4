package domain

// KnowledgeEntry is one question/answer record with its precomputed
// embedding. Entries are immutable after load and owned by the knowledge
// index; the vector never leaves it.
type KnowledgeEntry struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Vector   []float32 `json:"embedding"`
}

// Match is a knowledge entry surfaced by a similarity search, stripped of
// its vector and annotated with the score that selected it.
type Match struct {
	Question string
	Answer   string
	Score    float64
}
