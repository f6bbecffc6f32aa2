package repository

import (
	"os"

	"github.com/goccy/go-json"

	"reviewhub/internal/client/model"
	"reviewhub/pkg/logger"
)

// DefaultSeedFile is the canonical seed used when a create request names none.
const DefaultSeedFile = "seedReviews.json"

// unsafeSeedWarning is seeded verbatim when a seed name fails path resolution.
// A traversal attempt should be loud on the resulting review page, not
// silently papered over with the default seed.
const unsafeSeedWarning = "Seed file path rejected for security reasons."

// fallbackReviews terminates the seed chain when no seed file parses.
var fallbackReviews = []string{
	"Great service, highly recommended!",
	"Friendly staff and a wonderful experience.",
}

// LoadSeed returns the initial review list for a new client. It never fails:
// the named seed, then the default seed, then the hardcoded fallback are tried
// in order until one yields a reviews array.
func (r *ClientRepository) LoadSeed(name string) []string {
	if name == "" {
		name = DefaultSeedFile
	}

	path, err := r.resolve(name)
	if err != nil {
		return []string{unsafeSeedWarning}
	}

	if reviews, ok := readSeedFile(path); ok {
		return reviews
	}
	if name != DefaultSeedFile {
		if path, err := r.resolve(DefaultSeedFile); err == nil {
			if reviews, ok := readSeedFile(path); ok {
				logger.Sugar.Infof("Seed file %s unusable, fell back to %s", name, DefaultSeedFile)
				return reviews
			}
		}
	}

	logger.Sugar.Infof("No usable seed file, using built-in fallback reviews")
	return append([]string(nil), fallbackReviews...)
}

func readSeedFile(path string) ([]string, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var seed model.SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil || seed.Reviews == nil {
		return nil, false
	}
	return seed.Reviews, true
}
