package service

import (
	"reviewhub/internal/client/model"
	"reviewhub/internal/client/repository"
)

// ClientService applies the payload constraints and delegates persistence to
// the repository.
type ClientService struct {
	Repo *repository.ClientRepository
}

func NewClientService(repo *repository.ClientRepository) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) CreateClient(id string, details model.ClientDetails, seedFile string) (*model.Client, error) {
	if err := model.ValidateClientID(id); err != nil {
		return nil, err
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return s.Repo.Create(id, details, seedFile)
}

func (s *ClientService) GetClientDetail(id string) (*model.ClientDetail, error) {
	return s.Repo.GetDetail(id)
}

func (s *ClientService) GetClient(id string) (*model.Client, error) {
	return s.Repo.GetFull(id)
}

func (s *ClientService) UpdateClient(id string, details model.ClientDetails) (*model.Client, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return s.Repo.Update(id, details)
}

func (s *ClientService) DeleteClient(id string) error {
	return s.Repo.Delete(id)
}

func (s *ClientService) ListClients() ([]model.ClientSummary, error) {
	return s.Repo.ListSummaries()
}

func (s *ClientService) ListDataFiles() ([]string, error) {
	return s.Repo.ListDataFiles()
}
