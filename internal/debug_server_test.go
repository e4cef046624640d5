package internal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"werkstatt/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRecordMapper(t *testing.T) {
	req := require.New(t)
	post, err := json.Marshal(domain.Post{ID: 7, Title: "Feuerstelle", Category: "Außenbereich", Likes: 3, Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)})
	req.NoError(err)

	row := RecordMapper("post:0000000000000000007", post)
	req.Equal("POST", row.Type)
	req.Equal("7", row.EntityID)
	req.Equal("Außenbereich", row.Namespace)
	req.Equal("2024-05-01 09:30", row.Timestamp)
	req.Contains(row.Detail, "Feuerstelle")

	row = RecordMapper("like:u1:0000000000000000007", []byte{1})
	req.Equal("LIKE", row.Type)
	req.Equal("7", row.EntityID)
	req.Equal("u1", row.Namespace)

	row = RecordMapper("user:anna@example.de", []byte(`{"id":"u1","name":"Anna","passwordHash":"$argon2id$secret"}`))
	req.Equal("USER", row.Type)
	req.NotContains(row.Detail, "argon2")

	row = RecordMapper("misc:key", []byte("abc"))
	req.Equal("RAW", row.Type)
	req.Equal("Size: 3 bytes", row.Detail)
}

func TestInspector(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	thread, err := json.Marshal(domain.NewAIThread(time.Now().UTC()))
	req.NoError(err)
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("thread:u1:ai"), thread)
	}))

	r := gin.New()
	r.GET("/debug/inspect", Inspector(db, RecordMapper, func() map[string]any {
		return map[string]any{"replies_done": 4}
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/inspect?prefix=thread:", nil))

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), "THREAD")
	req.Contains(w.Body.String(), "1 messages")
	req.Contains(w.Body.String(), "replies_done")
}
