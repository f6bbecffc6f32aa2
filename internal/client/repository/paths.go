package repository

import (
	"path/filepath"
	"strings"

	"reviewhub/pkg/logger"
)

// resolve maps a file name to a path confined to the data root. Any name
// that would escape the root after normalization is rejected with
// ErrUnsafePath. This is the only traversal defense in the store, so every
// disk access goes through here.
func (r *ClientRepository) resolve(name string) (string, error) {
	if name == "" || filepath.IsAbs(name) {
		logger.Sugar.Warnf("Rejected unsafe path %q", name)
		return "", ErrUnsafePath
	}
	path := filepath.Clean(filepath.Join(r.root, name))
	rel, err := filepath.Rel(r.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		logger.Sugar.Warnf("Rejected unsafe path %q", name)
		return "", ErrUnsafePath
	}
	return path, nil
}

// documentPath resolves the on-disk location of a client document.
func (r *ClientRepository) documentPath(id string) (string, error) {
	return r.resolve(id + ".json")
}
