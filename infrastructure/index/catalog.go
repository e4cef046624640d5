//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=../../mocks/mock_catalog_index.go -package=mocks
package index

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"werkstatt/domain"
	"werkstatt/domain/search"

	"github.com/blugelabs/bluge"
	blugeindex "github.com/blugelabs/bluge/index"
)

const (
	kindField = "kind"
	idField   = "_id"

	kindGuide  = "guide"
	kindExpert = "expert"
)

// Fields searched by substring, stored lower-cased as a single keyword term.
var (
	guideTextFields  = []string{"title_lc", "description_lc", "category_lc"}
	expertTextFields = []string{"name_lc", "specialty_lc", "description_lc"}
)

type ICatalogIndex interface {
	IndexGuides(guides []domain.Guide) error
	IndexExperts(experts []domain.Expert) error
	SearchGuides(ctx context.Context, q *search.Query) ([]string, error)
	SearchExperts(ctx context.Context, q *search.Query) ([]string, error)
	Close() error
}

// CatalogIndex is an in-memory bluge index over the static guide and expert catalogs.
// Matching ids are returned in no particular order, callers restore catalog order.
type CatalogIndex struct {
	mu     sync.RWMutex
	writer *bluge.Writer
	reader *bluge.Reader
	log    *slog.Logger
}

func NewCatalogIndex(log *slog.Logger) (*CatalogIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog index: %w", err)
	}
	reader, err := writer.Reader()
	if err != nil {
		_ = writer.Close()
		return nil, err
	}
	return &CatalogIndex{writer: writer, reader: reader, log: log}, nil
}

func (i *CatalogIndex) IndexGuides(guides []domain.Guide) error {
	batch := bluge.NewBatch()
	for _, g := range guides {
		doc := newDocument(kindGuide, g.ID).
			AddField(lowerField("title_lc", g.Title)).
			AddField(lowerField("description_lc", g.Description)).
			AddField(lowerField("category_lc", g.Category)).
			AddField(bluge.NewKeywordField("category", g.Category)).
			AddField(bluge.NewKeywordField("difficulty", string(g.Difficulty)))
		batch.Update(doc.ID(), doc)
	}
	if err := i.apply(batch); err != nil {
		return err
	}
	i.log.Info("Guides indexed", "count", len(guides))
	return nil
}

func (i *CatalogIndex) IndexExperts(experts []domain.Expert) error {
	batch := bluge.NewBatch()
	for _, e := range experts {
		doc := newDocument(kindExpert, e.ID).
			AddField(lowerField("name_lc", e.Name)).
			AddField(lowerField("specialty_lc", e.Specialty)).
			AddField(lowerField("description_lc", e.Description)).
			AddField(bluge.NewKeywordField("specialty", e.Specialty))
		for _, c := range e.Categories {
			doc.AddField(bluge.NewKeywordField("category", c))
		}
		batch.Update(doc.ID(), doc)
	}
	if err := i.apply(batch); err != nil {
		return err
	}
	i.log.Info("Experts indexed", "count", len(experts))
	return nil
}

// SearchGuides matches the lower-cased terms as a substring of title, description or category.
func (i *CatalogIndex) SearchGuides(ctx context.Context, q *search.Query) ([]string, error) {
	return i.search(ctx, kindGuide, guideTextFields, q)
}

// SearchExperts matches the terms against name, specialty or description,
// and the "specialty" filter exactly.
func (i *CatalogIndex) SearchExperts(ctx context.Context, q *search.Query) ([]string, error) {
	return i.search(ctx, kindExpert, expertTextFields, q)
}

func (i *CatalogIndex) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.reader.Close(); err != nil {
		return err
	}
	return i.writer.Close()
}

func (i *CatalogIndex) search(ctx context.Context, kind string, textFields []string, q *search.Query) ([]string, error) {
	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(kind).SetField(kindField))

	if q.Terms != "" {
		pattern := ".*" + regexp.QuoteMeta(q.Terms) + ".*"
		text := bluge.NewBooleanQuery().SetMinShould(1)
		for _, f := range textFields {
			text.AddShould(bluge.NewRegexpQuery(pattern).SetField(f))
		}
		query.AddMust(text)
	}
	for field, value := range q.Filters {
		query.AddMust(bluge.NewTermQuery(value).SetField(field))
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.reader.Count()
	if err != nil {
		return nil, err
	}
	limit := int(count)
	if q.Limit > 0 && q.Limit < limit {
		limit = q.Limit
	}
	if limit == 0 {
		return nil, nil
	}

	dmi, err := i.reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	var ids []string
	match, err := dmi.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == idField {
				ids = append(ids, strings.TrimPrefix(string(value), kind+":"))
				return false
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = dmi.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// apply writes the batch and swaps in a fresh reader snapshot.
func (i *CatalogIndex) apply(batch *blugeindex.Batch) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.writer.Batch(batch); err != nil {
		return fmt.Errorf("failed to index batch: %w", err)
	}
	reader, err := i.writer.Reader()
	if err != nil {
		return err
	}
	old := i.reader
	i.reader = reader
	return old.Close()
}

func newDocument(kind, id string) *bluge.Document {
	return bluge.NewDocument(kind + ":" + id).
		AddField(bluge.NewKeywordField(kindField, kind))
}

func lowerField(name, value string) bluge.Field {
	return bluge.NewKeywordField(name, strings.ToLower(value))
}
