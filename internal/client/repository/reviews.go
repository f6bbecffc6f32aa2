package repository

import (
	"fmt"
	"math/rand/v2"
)

// ListReviews returns the client's review list, newest first.
func (r *ClientRepository) ListReviews(id string) ([]string, error) {
	doc, err := r.GetFull(id)
	if err != nil {
		return nil, err
	}
	return doc.Reviews, nil
}

// RandomReview picks one review uniformly at random.
func (r *ClientRepository) RandomReview(id string) (string, error) {
	doc, err := r.GetFull(id)
	if err != nil {
		return "", err
	}
	if len(doc.Reviews) == 0 {
		return "", fmt.Errorf("client %s: %w", id, ErrNoReviews)
	}
	return doc.Reviews[rand.IntN(len(doc.Reviews))], nil
}

// AddReview prepends text to the client's review list so the newest review
// is always first, then rewrites the document.
func (r *ClientRepository) AddReview(id, text string) (string, error) {
	mu := r.locks.lock(id)
	defer mu.Unlock()

	doc, found, err := r.readDocument(id)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("client %s: %w", id, ErrNotFound)
	}

	doc.Reviews = append([]string{text}, doc.Reviews...)
	if err := r.writeDocument(id, doc); err != nil {
		return "", err
	}
	return text, nil
}

// DeleteReview removes the first occurrence of text from the client's review
// list. The exact text is the review's only identity; if it is not present
// verbatim the result is ErrNotFound.
func (r *ClientRepository) DeleteReview(id, text string) error {
	mu := r.locks.lock(id)
	defer mu.Unlock()

	doc, found, err := r.readDocument(id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("client %s: %w", id, ErrNotFound)
	}

	for i, review := range doc.Reviews {
		if review == text {
			doc.Reviews = append(doc.Reviews[:i], doc.Reviews[i+1:]...)
			return r.writeDocument(id, doc)
		}
	}
	return fmt.Errorf("review not found for client %s: %w", id, ErrNotFound)
}
