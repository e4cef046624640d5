package index

import (
	"context"
	"log/slog"
	"testing"
	"werkstatt/domain"
	"werkstatt/domain/search"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *CatalogIndex {
	t.Helper()
	req := require.New(t)
	idx, err := NewCatalogIndex(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)
	t.Cleanup(func() { _ = idx.Close() })

	req.NoError(idx.IndexGuides([]domain.Guide{
		{ID: "1", Title: "Wasserhahn reparieren", Description: "Tropfenden Wasserhahn abdichten", Category: "Badezimmer"},
		{ID: "2", Title: "Wand streichen wie ein Profi", Description: "Gleichmäßig streichen", Category: "Dekoration"},
		{ID: "3", Title: "Verstopften Abfluss reinigen", Description: "Ohne Chemikalien (Hausmittel)", Category: "Badezimmer"},
	}))
	req.NoError(idx.IndexExperts([]domain.Expert{
		{ID: "1", Name: "Alex Johnson", Specialty: "Elektrik", Description: "Elektrische Installationen", Categories: []string{"Beleuchtung"}},
		{ID: "2", Name: "Sam Rodriguez", Specialty: "Sanitär", Description: "Wassersysteme", Categories: []string{"Rohrreparatur"}},
		{ID: "5", Name: "Morgan Lee", Specialty: "Allgemeiner Handwerker", Description: "Alle Reparaturen", Categories: []string{"Reparaturen"}},
	}))
	return idx
}

func TestCatalogIndex_SearchGuides(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty term matches all guides", "", []string{"1", "2", "3"}},
		{"title substring, case insensitive", "WASSER", []string{"1"}},
		{"category match", "badezimmer", []string{"1", "3"}},
		{"description match", "chemikalien", []string{"3"}},
		{"umlauts", "gleichmäßig", []string{"2"}},
		{"regexp characters are literal", "(hausmittel)", []string{"3"}},
		{"no match", "dachrinne", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := idx.SearchGuides(ctx, search.NewSearchQuery(tt.input, nil))
			require.NoError(t, err)
			require.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestCatalogIndex_SearchExperts(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		specialty string
		want      []string
	}{
		{"all experts", "", "", []string{"1", "2", "5"}},
		{"name substring", "alex", "", []string{"1"}},
		{"specialty substring", "sanit", "", []string{"2"}},
		{"description substring", "reparaturen", "", []string{"5"}},
		{"specialty filter only", "", "Elektrik", []string{"1"}},
		{"query and filter combined", "son", "Elektrik", []string{"1"}},
		{"filter excludes query match", "rodriguez", "Elektrik", nil},
		{"filter is exact", "", "elektrik", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := search.NewSearchQuery(tt.input, map[string]string{"specialty": tt.specialty})
			ids, err := idx.SearchExperts(ctx, q)
			require.NoError(t, err)
			require.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestCatalogIndex_Limit(t *testing.T) {
	idx := newTestIndex(t)
	ids, err := idx.SearchGuides(context.Background(), search.NewSearchQuery("", nil).WithLimit(2))
	require.NoError(t, err)
	require.Len(t, ids, 2)
}

func TestCatalogIndex_Reindex(t *testing.T) {
	req := require.New(t)
	idx := newTestIndex(t)

	// When a guide is re-indexed with a new title
	req.NoError(idx.IndexGuides([]domain.Guide{{ID: "1", Title: "Armatur tauschen", Category: "Küche"}}))

	// Then the old title no longer matches
	ids, err := idx.SearchGuides(context.Background(), search.NewSearchQuery("wasserhahn", nil))
	req.NoError(err)
	req.Empty(ids)

	ids, err = idx.SearchGuides(context.Background(), search.NewSearchQuery("armatur", nil))
	req.NoError(err)
	req.Equal([]string{"1"}, ids)
}
