package internal

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"werkstatt/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
)

//go:embed inspect.html
var templatesFS embed.FS

// maxInspectRows caps one page, the store may hold many likes.
const maxInspectRows = 500

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Namespace string
	Detail    string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix    string
	Items     []InspectRow
	Truncated bool
	Stats     map[string]any
}

// Inspector renders the badger keys under ?prefix= together with live stats.
func Inspector(db *badger.DB, mapper RowMapper, statsProvider StatsProvider) gin.HandlerFunc {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = DefaultMapper
	}

	return func(c *gin.Context) {
		prefix := c.DefaultQuery("prefix", "post:")
		data := PageData{Prefix: prefix, Stats: make(map[string]any)}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(prefix), PrefetchValues: true, PrefetchSize: 50})
			defer it.Close()
			for it.Rewind(); it.Valid(); it.Next() {
				if len(data.Items) == maxInspectRows {
					data.Truncated = true
					return nil
				}
				item := it.Item()
				if err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		_ = tmpl.Execute(c.Writer, data)
	}
}

// DefaultMapper shows the key and the value size only.
func DefaultMapper(key string, val []byte) InspectRow {
	namespace, rest, _ := strings.Cut(key, ":")
	return InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  rest,
		Namespace: namespace,
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
}

// RecordMapper decodes the records written by the repositories.
// Password hashes are never shown.
func RecordMapper(key string, val []byte) InspectRow {
	row := DefaultMapper(key, val)
	switch row.Namespace {
	case "post":
		var p domain.Post
		if json.Unmarshal(val, &p) != nil {
			return row
		}
		row.Type = "POST"
		row.EntityID = strconv.FormatInt(p.ID, 10)
		row.Namespace = p.Category
		row.Timestamp = p.Timestamp.Format("2006-01-02 15:04")
		row.Detail = p.Title + " (" + strconv.Itoa(p.Likes) + " likes, " + strconv.Itoa(p.Comments) + " comments)"
	case "like":
		userID, postID, _ := strings.Cut(row.EntityID, ":")
		row.Type = "LIKE"
		row.EntityID = strings.TrimLeft(postID, "0")
		row.Namespace = userID
		row.Detail = "liked"
	case "user":
		var u struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if json.Unmarshal(val, &u) != nil {
			return row
		}
		row.Type = "USER"
		row.EntityID = u.ID
		row.Detail = u.Name
	case "thread":
		var th domain.ChatThread
		if json.Unmarshal(val, &th) != nil {
			return row
		}
		userID, _, _ := strings.Cut(row.EntityID, ":")
		row.Type = "THREAD"
		row.EntityID = th.ID
		row.Namespace = userID
		row.Timestamp = th.LastUpdated.Format("2006-01-02 15:04")
		row.Detail = strconv.Itoa(len(th.Messages)) + " messages"
		if th.HasUnread() {
			row.Detail += ", unread"
		}
	}
	return row
}
