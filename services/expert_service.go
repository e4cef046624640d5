//go:generate go run go.uber.org/mock/mockgen -source=expert_service.go -destination=../mocks/mock_expert_service.go -package=mocks
package services

import (
	"context"
	"slices"
	"werkstatt/domain"
	"werkstatt/domain/search"
	"werkstatt/errors"
	"werkstatt/infrastructure/index"

	"github.com/samber/lo"
)

type IExpertService interface {
	FilterExperts(ctx context.Context, query, specialty string) ([]domain.Expert, error)
	ExpertsByCategory(category string) []domain.Expert
	GetExpert(id string) (domain.Expert, error)
	ListSpecialties() []string
}

type ExpertService struct {
	experts []domain.Expert
	index   index.ICatalogIndex
}

func NewExpertService(experts []domain.Expert, idx index.ICatalogIndex) *ExpertService {
	return &ExpertService{experts: experts, index: idx}
}

// FilterExperts matches query against name, specialty or description and,
// when given, requires the exact specialty.
func (s *ExpertService) FilterExperts(ctx context.Context, query, specialty string) ([]domain.Expert, error) {
	q := search.NewSearchQuery(query, map[string]string{"specialty": specialty})
	if q.IsEmpty() {
		return slices.Clone(s.experts), nil
	}
	ids, err := s.index.SearchExperts(ctx, q)
	if err != nil {
		return nil, err
	}
	return inCatalogOrder(s.experts, ids, func(e domain.Expert) string { return e.ID }), nil
}

func (s *ExpertService) ExpertsByCategory(category string) []domain.Expert {
	return lo.Filter(s.experts, func(e domain.Expert, _ int) bool { return e.HasCategory(category) })
}

func (s *ExpertService) GetExpert(id string) (domain.Expert, error) {
	expert, ok := lo.Find(s.experts, func(e domain.Expert) bool { return e.ID == id })
	if !ok {
		return domain.Expert{}, errors.ErrExpertNotFound
	}
	return expert, nil
}

func (s *ExpertService) ListSpecialties() []string {
	return slices.Clone(domain.Specialties)
}
