package runtime

import (
	"testing"
	"testing/fstest"
	"time"
	"werkstatt/domain"
	"werkstatt/errors"

	"github.com/stretchr/testify/require"
)

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)

	// Given the embedded dictionaries
	data, err := NewCensoredLoader(Assets()).LoadAll("censored")

	// Then
	req.NoError(err)
	req.ElementsMatch([]string{"de", "en"}, data.Languages)
	req.Contains(data.Words, "mistkerl")
	req.Contains(data.Words, "bastard")
}

func TestCensoredLoader_DeduplicatesAndSkipsComments(t *testing.T) {
	req := require.New(t)
	f := fstest.MapFS{
		"words/de.txt": {Data: []byte("pfusch\r\n# Kommentar\n\npfusch\nmist\n")},
		"words/en.txt": {Data: []byte("mist\n")},
		"words/README": {Data: []byte("ignored")},
	}

	data, err := NewCensoredLoader(f).LoadAll("words")

	req.NoError(err)
	req.ElementsMatch([]string{"pfusch", "mist"}, data.Words)
	req.ElementsMatch([]string{"de", "en"}, data.Languages)
}

func TestCensoredLoader_Empty(t *testing.T) {
	f := fstest.MapFS{"words/de.txt": {Data: []byte("\n\n")}}
	_, err := NewCensoredLoader(f).LoadAll("words")
	require.ErrorIs(t, err, errors.ErrEmptyWords)
}

func TestSeedLoader_Load(t *testing.T) {
	req := require.New(t)

	catalog, err := NewSeedLoader(Assets()).Load("seed")
	req.NoError(err)

	// Guides in catalog order
	req.Len(catalog.Guides, 5)
	req.Equal("Wasserhahn reparieren", catalog.Guides[0].Title)
	req.Equal(domain.DifficultyAdvanced, catalog.Guides[3].Difficulty)
	req.Len(catalog.Guides[4].Steps, 7)

	// Experts and canned replies
	req.Len(catalog.Experts, 5)
	req.Equal("Morgan Lee", catalog.Experts[4].Name)
	req.InDelta(4.8, catalog.Experts[0].Rating, 0.001)
	req.Len(catalog.ExpertReplies, 4)

	// Posts with their threads
	req.Len(catalog.Posts, 4)
	first := catalog.Posts[0]
	req.Equal(int64(1), first.ID)
	req.Equal(domain.PostTypeHelp, first.Type)
	req.Equal("Hoch", first.Urgency)
	req.Equal(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), first.Timestamp)
	req.Len(first.CommentsList, 2)
	req.Equal(11, first.CommentsList[0].Replies[0].ID)
}

func TestCatalog_InitialThreads(t *testing.T) {
	req := require.New(t)
	catalog, err := NewSeedLoader(Assets()).Load("seed")
	req.NoError(err)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	threads := catalog.InitialThreads(now)

	req.Len(threads, 3)
	ai := threads[domain.AIThreadID]
	req.Len(ai.Messages, 1)
	req.Equal(domain.AIWelcomeMessage, ai.Messages[0].Content)

	alex := threads["1"]
	req.Equal("Alex Johnson", alex.Expert.Name)
	req.Len(alex.Messages, 3)
	req.Equal(now.Add(-24*time.Hour), alex.Messages[0].Timestamp)
	req.False(alex.HasUnread())

	jamie := threads["3"]
	req.Equal("Jamie Smith", jamie.Expert.Name)
	req.True(jamie.HasUnread())
}
