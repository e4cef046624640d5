//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=../mocks/mock_post_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"werkstatt/domain"
	"werkstatt/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	postPrefix = "post:"
	likePrefix = "like:"
)

type IPostRepository interface {
	ListPosts() ([]domain.Post, error)
	GetPost(id int64) (domain.Post, error)
	CreatePost(post domain.Post) (domain.Post, error)
	UpdatePost(id int64, mutate func(*domain.Post) error) (domain.Post, error)
	ToggleLike(postID int64, userID string) (bool, domain.Post, error)
	LikedBy(userID string) (map[int64]bool, error)
	Reset(seed []domain.Post) error
	Count() (int, error)
}

// PostRepository stores posts as JSON under "post:{id_padded}" and per-user likes
// under "like:{user_id}:{post_id_padded}", so one user's likes share a prefix. Writes are serialized so that id
// allocation and read-modify-write cycles never race inside Badger.
type PostRepository struct {
	db  *badger.DB
	log *slog.Logger
	mu  sync.Mutex
}

func NewPostRepository(db *badger.DB, log *slog.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

// postKey pads the id to 19 digits so that lexicographical order is numeric order.
func postKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%019d", postPrefix, id))
}

func likeKey(postID int64, userID string) []byte {
	return []byte(fmt.Sprintf("%s%019d", userLikePrefix(userID), postID))
}

func userLikePrefix(userID string) string {
	return likePrefix + userID + ":"
}

// ListPosts returns every post, newest id first.
func (r *PostRepository) ListPosts() ([]domain.Post, error) {
	var posts []domain.Post
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(postPrefix)
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the highest possible id, then walk backwards
		for it.Seek(append(prefix, []byte("9999999999999999999")...)); it.ValidForPrefix(prefix); it.Next() {
			var post domain.Post
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &post)
			}); err != nil {
				return fmt.Errorf("failed to decode %s: %w", it.Item().Key(), err)
			}
			posts = append(posts, post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetPost(id int64) (domain.Post, error) {
	var post domain.Post
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		post, err = getPost(txn, id)
		return err
	})
	return post, err
}

// CreatePost assigns the next id (max existing id + 1) and persists the post.
func (r *PostRepository) CreatePost(post domain.Post) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.db.Update(func(txn *badger.Txn) error {
		id, err := maxPostID(txn)
		if err != nil {
			return err
		}
		post.ID = domain.NextPostID([]int64{id})
		return putPost(txn, post)
	})
	if err != nil {
		return domain.Post{}, err
	}
	r.log.Debug("Post stored", "post_id", post.ID, "category", post.Category)
	return post, nil
}

// UpdatePost loads the post, applies mutate and writes it back in one transaction.
// Nothing is written when mutate returns an error.
func (r *PostRepository) UpdatePost(id int64, mutate func(*domain.Post) error) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var post domain.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		if post, err = getPost(txn, id); err != nil {
			return err
		}
		if err = mutate(&post); err != nil {
			return err
		}
		return putPost(txn, post)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// ToggleLike flips the user's like flag on the post and adjusts the counter accordingly.
func (r *PostRepository) ToggleLike(postID int64, userID string) (bool, domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		liked bool
		post  domain.Post
	)
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		if post, err = getPost(txn, postID); err != nil {
			return err
		}
		key := likeKey(postID, userID)
		switch _, err = txn.Get(key); {
		case err == nil:
			liked = false
			if err = txn.Delete(key); err != nil {
				return err
			}
		case stderrors.Is(err, badger.ErrKeyNotFound):
			liked = true
			if err = txn.Set(key, []byte{1}); err != nil {
				return err
			}
		default:
			return err
		}
		post.ApplyLike(liked)
		return putPost(txn, post)
	})
	if err != nil {
		return false, domain.Post{}, err
	}
	return liked, post, nil
}

// LikedBy returns the set of post ids the user currently likes.
func (r *PostRepository) LikedBy(userID string) (map[int64]bool, error) {
	liked := make(map[int64]bool)
	if userID == "" {
		return liked, nil
	}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(userLikePrefix(userID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			id, err := strconv.ParseInt(strings.TrimPrefix(key, string(prefix)), 10, 64)
			if err != nil {
				r.log.Warn("Skipping malformed like key", "key", key)
				continue
			}
			liked[id] = true
		}
		return nil
	})
	return liked, err
}

// Reset drops all posts and likes and writes the seed posts.
func (r *PostRepository) Reset(seed []domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.DropPrefix([]byte(postPrefix), []byte(likePrefix)); err != nil {
		return fmt.Errorf("failed to drop posts: %w", err)
	}
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, post := range seed {
		data, err := json.Marshal(post)
		if err != nil {
			return err
		}
		if err = wb.Set(postKey(post.ID), data); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	r.log.Info("Posts reset", "count", len(seed))
	return nil
}

func (r *PostRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(postPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func getPost(txn *badger.Txn, id int64) (domain.Post, error) {
	item, err := txn.Get(postKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Post{}, errors.ErrPostNotFound
	}
	if err != nil {
		return domain.Post{}, err
	}
	var post domain.Post
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &post)
	})
	return post, err
}

func putPost(txn *badger.Txn, post domain.Post) error {
	post.CommentsList = lo.Ternary(post.CommentsList == nil, []domain.Comment{}, post.CommentsList)
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return txn.Set(postKey(post.ID), data)
}

func maxPostID(txn *badger.Txn) (int64, error) {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := []byte(postPrefix)
	it.Seek(append(prefix, []byte("9999999999999999999")...))
	if !it.ValidForPrefix(prefix) {
		return 0, nil
	}
	return strconv.ParseInt(strings.TrimPrefix(string(it.Item().Key()), postPrefix), 10, 64)
}
