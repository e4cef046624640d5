package repositories

import (
	"log/slog"
	"sync"
	"testing"
	"time"
	"werkstatt/domain"
	"werkstatt/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedPosts() []domain.Post {
	at := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	return []domain.Post{
		{ID: 1, Type: domain.PostTypeHelp, Title: "Badrenovierung", Category: "Sanitär", Timestamp: at, Likes: 24, Comments: 8,
			CommentsList: []domain.Comment{{ID: 1, Content: "Eckprofil", Replies: []domain.Reply{{ID: 11}}}, {ID: 2, Replies: []domain.Reply{}}}},
		{ID: 2, Type: domain.PostTypeShowcase, Title: "Küche", Category: "Innenausbau", Timestamp: at, Likes: 156, Comments: 32},
		{ID: 3, Type: domain.PostTypeHelp, Title: "Steckdose", Category: "Elektrik", Timestamp: at, Likes: 0, Comments: 15},
	}
}

func TestPostRepository_ListPosts_NewestFirst(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openBadger(t), slog.Default())

	// Given
	req.NoError(repo.Reset(seedPosts()))

	// When
	posts, err := repo.ListPosts()

	// Then
	req.NoError(err)
	req.Len(posts, 3)
	req.Equal([]int64{3, 2, 1}, []int64{posts[0].ID, posts[1].ID, posts[2].ID})
	req.Equal("Eckprofil", posts[2].CommentsList[0].Content)
}

func TestPostRepository_CreatePost_AssignsNextID(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openBadger(t), slog.Default())

	created, err := repo.CreatePost(domain.Post{Title: "Erster"})
	req.NoError(err)
	req.Equal(int64(1), created.ID)

	req.NoError(repo.Reset(seedPosts()))
	created, err = repo.CreatePost(domain.Post{Title: "Neu"})
	req.NoError(err)
	req.Equal(int64(4), created.ID)

	posts, err := repo.ListPosts()
	req.NoError(err)
	req.Equal(int64(4), posts[0].ID)
	req.NotNil(posts[0].CommentsList)
}

func TestPostRepository_CreatePost_Concurrent(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openBadger(t), slog.Default())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreatePost(domain.Post{Title: "parallel"})
			req.NoError(err)
		}()
	}
	wg.Wait()

	count, err := repo.Count()
	req.NoError(err)
	req.Equal(20, count)
}

func TestPostRepository_GetPost_NotFound(t *testing.T) {
	repo := NewPostRepository(openBadger(t), slog.Default())
	_, err := repo.GetPost(42)
	require.ErrorIs(t, err, errors.ErrPostNotFound)
}

func TestPostRepository_UpdatePost(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openBadger(t), slog.Default())
	req.NoError(repo.Reset(seedPosts()))

	t.Run("mutation is persisted", func(t *testing.T) {
		_, err := repo.UpdatePost(1, func(p *domain.Post) error {
			p.AddComment(domain.Comment{Content: "Silikon!"})
			return nil
		})
		req.NoError(err)

		post, err := repo.GetPost(1)
		req.NoError(err)
		req.Equal(9, post.Comments)
		req.Equal("Silikon!", post.CommentsList[0].Content)
	})

	t.Run("failing mutation writes nothing", func(t *testing.T) {
		_, err := repo.UpdatePost(1, func(p *domain.Post) error {
			p.Comments = 1000
			return errors.ErrCommentNotFound
		})
		req.ErrorIs(err, errors.ErrCommentNotFound)

		post, err := repo.GetPost(1)
		req.NoError(err)
		req.Equal(9, post.Comments)
	})
}

func TestPostRepository_ToggleLike(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openBadger(t), slog.Default())
	req.NoError(repo.Reset(seedPosts()))

	// When alice likes post 2
	liked, post, err := repo.ToggleLike(2, "alice")
	req.NoError(err)
	req.True(liked)
	req.Equal(157, post.Likes)

	// And bob likes it too
	liked, post, err = repo.ToggleLike(2, "bob")
	req.NoError(err)
	req.True(liked)
	req.Equal(158, post.Likes)

	// Then alice sees her like only
	likes, err := repo.LikedBy("alice")
	req.NoError(err)
	req.Equal(map[int64]bool{2: true}, likes)

	// When alice unlikes
	liked, post, err = repo.ToggleLike(2, "alice")
	req.NoError(err)
	req.False(liked)
	req.Equal(157, post.Likes)

	likes, err = repo.LikedBy("alice")
	req.NoError(err)
	req.Empty(likes)
}

func TestPostRepository_ToggleLike_NeverBelowZero(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openBadger(t), slog.Default())
	req.NoError(repo.Reset(seedPosts()))

	liked, post, err := repo.ToggleLike(3, "alice")
	req.NoError(err)
	req.True(liked)
	req.Equal(1, post.Likes)

	// Someone resets the counter behind the user's back
	_, err = repo.UpdatePost(3, func(p *domain.Post) error {
		p.Likes = 0
		return nil
	})
	req.NoError(err)

	liked, post, err = repo.ToggleLike(3, "alice")
	req.NoError(err)
	req.False(liked)
	req.Equal(0, post.Likes)
}

func TestPostRepository_Reset_DropsLikesAndNewPosts(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openBadger(t), slog.Default())
	req.NoError(repo.Reset(seedPosts()))

	_, err := repo.CreatePost(domain.Post{Title: "Neu"})
	req.NoError(err)
	_, _, err = repo.ToggleLike(1, "alice")
	req.NoError(err)

	req.NoError(repo.Reset(seedPosts()))

	count, err := repo.Count()
	req.NoError(err)
	req.Equal(3, count)
	likes, err := repo.LikedBy("alice")
	req.NoError(err)
	req.Empty(likes)
	post, err := repo.GetPost(1)
	req.NoError(err)
	req.Equal(24, post.Likes)
}

func TestPostRepository_LikedBy_ReadsOnlyTheUsersKeys(t *testing.T) {
	req := require.New(t)
	db := openBadger(t)
	repo := NewPostRepository(db, slog.Default())
	req.NoError(repo.Reset(seedPosts()))

	// Given likes from users whose ids share a prefix
	for _, like := range []struct {
		postID int64
		userID string
	}{{1, "alice"}, {3, "alice"}, {2, "al"}, {1, "bob"}} {
		_, _, err := repo.ToggleLike(like.postID, like.userID)
		req.NoError(err)
	}

	// Then every like of alice lives under her own prefix
	var keys []string
	req.NoError(db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte("like:alice:")})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	}))
	req.Equal([]string{"like:alice:0000000000000000001", "like:alice:0000000000000000003"}, keys)

	// And each user sees only their likes
	likes, err := repo.LikedBy("alice")
	req.NoError(err)
	req.Equal(map[int64]bool{1: true, 3: true}, likes)
	likes, err = repo.LikedBy("al")
	req.NoError(err)
	req.Equal(map[int64]bool{2: true}, likes)
}
