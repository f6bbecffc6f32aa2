package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"reviewhub/internal/client/model"
	"reviewhub/pkg/logger"
)

// ClientRepository is a directory-backed document store: one JSON file per
// client under root. Every operation re-reads from disk before mutating and
// every mutation rewrites the whole document; the lock table serializes
// mutations per client id.
type ClientRepository struct {
	root  string
	locks *lockTable
}

func NewClientRepository(root string) *ClientRepository {
	return &ClientRepository{root: root, locks: newLockTable()}
}

// Create builds a new document for id with its review list taken from the
// named seed (or the default chain) and persists it. The clientId field always
// comes from id, never from the payload.
func (r *ClientRepository) Create(id string, details model.ClientDetails, seedFile string) (*model.Client, error) {
	mu := r.locks.lock(id)
	defer mu.Unlock()

	exists, err := r.exists(id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("client %s: %w", id, ErrConflict)
	}

	doc := &model.Client{
		ClientID:         id,
		ClientName:       details.ClientName,
		GoogleReviewLink: details.GoogleReviewLink,
		LogoURL:          details.LogoURL,
		PrimaryColor:     details.PrimaryColor,
		SecondaryColor:   details.SecondaryColor,
		Reviews:          r.LoadSeed(seedFile),
	}
	if err := r.writeDocument(id, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetFull returns the whole document including reviews.
func (r *ClientRepository) GetFull(id string) (*model.Client, error) {
	doc, found, err := r.readDocument(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	return doc, nil
}

// GetDetail returns the document without its review list.
func (r *ClientRepository) GetDetail(id string) (*model.ClientDetail, error) {
	doc, err := r.GetFull(id)
	if err != nil {
		return nil, err
	}
	detail := doc.Detail()
	return &detail, nil
}

// Update merges the supplied details over the existing document. The review
// list is carried over untouched and clientId is re-forced from id.
func (r *ClientRepository) Update(id string, details model.ClientDetails) (*model.Client, error) {
	mu := r.locks.lock(id)
	defer mu.Unlock()

	doc, found, err := r.readDocument(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("client %s: %w", id, ErrNotFound)
	}

	doc.ClientID = id
	doc.ClientName = details.ClientName
	doc.GoogleReviewLink = details.GoogleReviewLink
	doc.LogoURL = details.LogoURL
	doc.PrimaryColor = details.PrimaryColor
	doc.SecondaryColor = details.SecondaryColor

	if err := r.writeDocument(id, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the persisted document. A removal that fails for a reason
// other than absence is an I/O error, not a NotFound.
func (r *ClientRepository) Delete(id string) error {
	mu := r.locks.lock(id)
	defer mu.Unlock()

	path, err := r.documentPath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("client %s: %w", id, ErrNotFound)
		}
		logger.Sugar.Errorf("Failed to delete document %s: %v", id, err)
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	return nil
}

// ListSummaries enumerates every parseable client document in the store.
// Files that fail to parse or lack the identifying fields (seed files among
// them) are skipped, never an error.
func (r *ClientRepository) ListSummaries() ([]model.ClientSummary, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		logger.Sugar.Errorf("Failed to read data directory: %v", err)
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	summaries := []model.ClientSummary{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(r.root, entry.Name()))
		if err != nil {
			continue
		}
		var doc model.Client
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		if doc.ClientID == "" || doc.ClientName == "" {
			continue
		}
		summaries = append(summaries, model.ClientSummary{
			ClientID:   doc.ClientID,
			ClientName: doc.ClientName,
		})
	}
	return summaries, nil
}

// ListDataFiles returns the names of all JSON files in the store, sorted.
func (r *ClientRepository) ListDataFiles() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		logger.Sugar.Errorf("Failed to read data directory: %v", err)
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
