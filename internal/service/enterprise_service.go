package service

import (
	"ledgerdesk/internal/domain"
)

type EnterpriseService struct {
	storage EnterpriseStorage
	limits  domain.Limits
}

type EnterpriseStorage interface {
	CreateEnterprise(enterprise *domain.Enterprise) error
	UpdateEnterprise(id string, updates map[string]interface{}) (*domain.Enterprise, error)
	GetEnterprise(id string) (*domain.Enterprise, error)
	ListEnterprises(filter domain.EnterpriseFilter) ([]*domain.Enterprise, error)
	DeleteEnterprise(id string) error
}

func NewEnterpriseService(storage EnterpriseStorage, limits domain.Limits) *EnterpriseService {
	return &EnterpriseService{
		storage: storage,
		limits:  limits,
	}
}

func (s *EnterpriseService) Create(enterprise *domain.Enterprise) error {
	return s.storage.CreateEnterprise(enterprise)
}

func (s *EnterpriseService) Update(id string, updates map[string]interface{}) (*domain.Enterprise, error) {
	return s.storage.UpdateEnterprise(id, updates)
}

func (s *EnterpriseService) Get(id string) (*domain.Enterprise, error) {
	return s.storage.GetEnterprise(id)
}

func (s *EnterpriseService) List(filter domain.EnterpriseFilter) ([]*domain.Enterprise, error) {
	return s.storage.ListEnterprises(filter)
}

func (s *EnterpriseService) Delete(id string) error {
	return s.storage.DeleteEnterprise(id)
}

// Validate reports every rule violation on the stored enterprise,
// checked against the configured limits.
func (s *EnterpriseService) Validate(id string) (domain.Violations, error) {
	enterprise, err := s.storage.GetEnterprise(id)
	if err != nil {
		return nil, err
	}
	return enterprise.Validate(s.limits), nil
}
