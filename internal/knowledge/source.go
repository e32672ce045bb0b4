package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/podolabs/frontdesk/internal/domain"
)

// FileSource reads knowledge entries from a JSON file of
// {question, answer, embedding} records produced by `frontdeskd kb embed`.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// FetchEntries implements Source.
func (s *FileSource) FetchEntries(ctx context.Context) ([]domain.KnowledgeEntry, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	var entries []domain.KnowledgeEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}

	return entries, nil
}
