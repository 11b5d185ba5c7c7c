package fallback

import (
	"context"
	"fmt"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

// FileStore reads the fallback document from disk. Nothing is cached: every Load
// re-reads and re-decodes the file.
type FileStore struct {
	path      string
	validator *validator.Validate
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:      path,
		validator: validator.New(),
	}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Document{}, fmt.Errorf("read fallback document %s: %w", s.path, err)
	}

	var doc Document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode fallback document %s: %w", s.path, err)
	}
	if err := s.validator.StructCtx(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("validate fallback document %s: %w", s.path, err)
	}

	return doc, nil
}
