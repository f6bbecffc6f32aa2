package service

import (
	"reviewhub/internal/client/model"
	"reviewhub/internal/client/repository"
)

type ReviewService struct {
	Repo *repository.ClientRepository
}

func NewReviewService(repo *repository.ClientRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func (s *ReviewService) ListReviews(clientID string) ([]string, error) {
	return s.Repo.ListReviews(clientID)
}

func (s *ReviewService) RandomReview(clientID string) (string, error) {
	return s.Repo.RandomReview(clientID)
}

func (s *ReviewService) AddReview(clientID, text string) (string, error) {
	if err := model.ValidateReview(text); err != nil {
		return "", err
	}
	return s.Repo.AddReview(clientID, text)
}

func (s *ReviewService) DeleteReview(clientID, text string) error {
	return s.Repo.DeleteReview(clientID, text)
}
