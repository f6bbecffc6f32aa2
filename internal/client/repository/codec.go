package repository

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"reviewhub/internal/client/model"
	"reviewhub/pkg/logger"
)

// readDocument loads and parses the document for id. A missing file is not an
// error: found is false and err is nil. A file that exists but cannot be read
// or parsed is logged and likewise reported as absent, so one corrupt document
// never takes down a caller. Only an unsafe id produces a non-nil error.
func (r *ClientRepository) readDocument(id string) (*model.Client, bool, error) {
	path, err := r.documentPath(id)
	if err != nil {
		return nil, false, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Sugar.Errorf("Failed to read document %s: %v", id, err)
		}
		return nil, false, nil
	}

	var doc model.Client
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Sugar.Errorf("Failed to parse document %s: %v", id, err)
		return nil, false, nil
	}
	// Hand-authored documents may omit the reviews field; the list is always
	// a JSON array to callers, never null.
	if doc.Reviews == nil {
		doc.Reviews = []string{}
	}
	return &doc, true, nil
}

// writeDocument persists the full document for id, replacing any prior
// content. Indentation is for humans reading the data directory.
func (r *ClientRepository) writeDocument(id string, doc *model.Client) error {
	path, err := r.documentPath(id)
	if err != nil {
		return err
	}
	if doc.Reviews == nil {
		doc.Reviews = []string{}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", id, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		logger.Sugar.Errorf("Failed to write document %s: %v", id, err)
		return fmt.Errorf("write document %s: %w", id, err)
	}
	return nil
}

// exists reports whether a document file is present for id, regardless of
// whether its content parses.
func (r *ClientRepository) exists(id string) (bool, error) {
	path, err := r.documentPath(id)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		logger.Sugar.Errorf("Failed to stat document %s: %v", id, err)
		return false, fmt.Errorf("stat document %s: %w", id, err)
	}
	return true, nil
}
