package repository

import "errors"

// Store error taxonomy. Callers match with errors.Is; anything outside this
// set is an I/O failure wrapping the underlying cause.
var (
	// ErrNotFound covers a missing client document and a review text absent
	// from an existing document.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned by Create when a document already exists for
	// the requested clientId.
	ErrConflict = errors.New("client already exists")

	// ErrUnsafePath marks an identifier or filename that would resolve
	// outside the data root. Distinct from ErrNotFound on purpose.
	ErrUnsafePath = errors.New("unsafe path")

	// ErrNoReviews is returned by RandomReview when the client exists but
	// its review list is empty.
	ErrNoReviews = errors.New("client has no reviews")
)
