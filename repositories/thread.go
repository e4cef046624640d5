//go:generate go run go.uber.org/mock/mockgen -source=thread.go -destination=../mocks/mock_thread_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"werkstatt/domain"
	"werkstatt/errors"

	"github.com/dgraph-io/badger/v4"
)

type IThreadRepository interface {
	SeedIfAbsent(userID string, seed func() domain.ThreadsRecord) (bool, error)
	GetThreads(userID string) (domain.ThreadsRecord, error)
	GetThread(userID, threadID string) (domain.ChatThread, error)
	SaveThread(userID string, thread domain.ChatThread) error
	UpdateThread(userID, threadID string, mutate func(*domain.ChatThread) (bool, error)) (domain.ChatThread, error)
	ReplaceThreads(userID string, record domain.ThreadsRecord) error
}

// ThreadRepository keeps each user's chat threads under "thread:{user_id}:{thread_id}".
// A "threads-seeded:{user_id}" marker records that the initial threads were handed out,
// so that a user who deletes every thread does not get the samples back.
type ThreadRepository struct {
	db  *badger.DB
	log *slog.Logger
	mu  sync.Mutex
}

func NewThreadRepository(db *badger.DB, log *slog.Logger) *ThreadRepository {
	return &ThreadRepository{db: db, log: log}
}

func threadPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("thread:%s:", userID))
}

func threadKey(userID, threadID string) []byte {
	return append(threadPrefix(userID), []byte(threadID)...)
}

func seededKey(userID string) []byte {
	return []byte("threads-seeded:" + userID)
}

// SeedIfAbsent writes the initial threads the first time a user shows up.
// It reports whether seeding happened.
func (r *ThreadRepository) SeedIfAbsent(userID string, seed func() domain.ThreadsRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seeded := false
	err := r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(seededKey(userID))
		if err == nil {
			return nil
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		for _, thread := range seed() {
			if err = putThread(txn, userID, thread); err != nil {
				return err
			}
		}
		seeded = true
		return txn.Set(seededKey(userID), []byte{1})
	})
	if seeded {
		r.log.Debug("Initial threads seeded", "user_id", userID)
	}
	return seeded, err
}

func (r *ThreadRepository) GetThreads(userID string) (domain.ThreadsRecord, error) {
	record := make(domain.ThreadsRecord)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := threadPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var thread domain.ChatThread
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &thread)
			}); err != nil {
				return err
			}
			record[thread.ID] = thread
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *ThreadRepository) GetThread(userID, threadID string) (domain.ChatThread, error) {
	var thread domain.ChatThread
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		thread, err = getThread(txn, userID, threadID)
		return err
	})
	return thread, err
}

func (r *ThreadRepository) SaveThread(userID string, thread domain.ChatThread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		return putThread(txn, userID, thread)
	})
}

// UpdateThread applies mutate to the stored thread. The thread is only written back
// when mutate reports a change.
func (r *ThreadRepository) UpdateThread(userID, threadID string, mutate func(*domain.ChatThread) (bool, error)) (domain.ChatThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var thread domain.ChatThread
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		if thread, err = getThread(txn, userID, threadID); err != nil {
			return err
		}
		changed, err := mutate(&thread)
		if err != nil || !changed {
			return err
		}
		return putThread(txn, userID, thread)
	})
	if err != nil {
		return domain.ChatThread{}, err
	}
	return thread, nil
}

// ReplaceThreads swaps the user's whole record for the given one.
func (r *ThreadRepository) ReplaceThreads(userID string, record domain.ThreadsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: threadPrefix(userID)})
		var stale [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		for id, thread := range record {
			thread.ID = id
			if err := putThread(txn, userID, thread); err != nil {
				return err
			}
		}
		return txn.Set(seededKey(userID), []byte{1})
	})
}

func getThread(txn *badger.Txn, userID, threadID string) (domain.ChatThread, error) {
	item, err := txn.Get(threadKey(userID, threadID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.ChatThread{}, errors.ErrThreadNotFound
	}
	if err != nil {
		return domain.ChatThread{}, err
	}
	var thread domain.ChatThread
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &thread)
	})
	return thread, err
}

func putThread(txn *badger.Txn, userID string, thread domain.ChatThread) error {
	data, err := json.Marshal(thread)
	if err != nil {
		return err
	}
	return txn.Set(threadKey(userID, thread.ID), data)
}
