//go:generate go run go.uber.org/mock/mockgen -source=guide_service.go -destination=../mocks/mock_guide_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"werkstatt/domain"
	"werkstatt/domain/search"
	"werkstatt/errors"
	"werkstatt/infrastructure/index"

	"github.com/samber/lo"
)

type IGuideService interface {
	SearchGuides(ctx context.Context, term string) ([]domain.GuideSummary, error)
	GetGuide(id string) (domain.Guide, error)
}

// GuideService serves the static guide catalog. Search goes through the index,
// the catalog slice fixes the result order.
type GuideService struct {
	guides []domain.Guide
	index  index.ICatalogIndex
	log    *slog.Logger
}

func NewGuideService(guides []domain.Guide, idx index.ICatalogIndex, log *slog.Logger) *GuideService {
	return &GuideService{guides: guides, index: idx, log: log}
}

// SearchGuides matches term case-insensitively against title, description or category.
// An empty term returns the whole catalog.
func (s *GuideService) SearchGuides(ctx context.Context, term string) ([]domain.GuideSummary, error) {
	query := search.NewSearchQuery(term, nil)
	matching := s.guides
	if !query.IsEmpty() {
		ids, err := s.index.SearchGuides(ctx, query)
		if err != nil {
			return nil, err
		}
		matching = inCatalogOrder(s.guides, ids, func(g domain.Guide) string { return g.ID })
	}
	s.log.Debug("Guides searched", "term", query.Terms, "count", len(matching))
	return lo.Map(matching, func(g domain.Guide, _ int) domain.GuideSummary { return g.Summary() }), nil
}

func (s *GuideService) GetGuide(id string) (domain.Guide, error) {
	guide, ok := lo.Find(s.guides, func(g domain.Guide) bool { return g.ID == id })
	if !ok {
		return domain.Guide{}, errors.ErrGuideNotFound
	}
	return guide, nil
}

// inCatalogOrder keeps the catalog items whose id was returned by the index.
func inCatalogOrder[T any](catalog []T, ids []string, id func(T) string) []T {
	hits := lo.SliceToMap(ids, func(id string) (string, struct{}) { return id, struct{}{} })
	return lo.Filter(catalog, func(item T, _ int) bool {
		_, ok := hits[id(item)]
		return ok
	})
}
