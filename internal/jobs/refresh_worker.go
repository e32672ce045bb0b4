package jobs

import (
	"context"
	"log"
)

// KnowledgeReloader reloads the knowledge index from its source.
type KnowledgeReloader interface {
	Reload(ctx context.Context) int
}

// DirectoryReloader reloads the department directory from the sheet.
type DirectoryReloader interface {
	Reload(ctx context.Context) int
}

// RefreshTask reloads the knowledge base and the department directory so
// sheet edits show up without a restart. Both reloads degrade to their own
// empty state on failure, so a bad fetch never crashes the loop.
type RefreshTask struct {
	knowledge KnowledgeReloader
	directory DirectoryReloader
}

// NewRefreshTask creates a RefreshTask. Either reloader may be nil when the
// corresponding source is not configured.
func NewRefreshTask(knowledge KnowledgeReloader, directory DirectoryReloader) *RefreshTask {
	return &RefreshTask{knowledge: knowledge, directory: directory}
}

// Run implements Task.
func (t *RefreshTask) Run(ctx context.Context) error {
	if t.knowledge != nil {
		n := t.knowledge.Reload(ctx)
		log.Printf("refresh: knowledge index reloaded, %d entries", n)
	}
	if t.directory != nil {
		n := t.directory.Reload(ctx)
		log.Printf("refresh: department directory reloaded, %d rows", n)
	}
	return nil
}
