// Package domain contains the core concepts of the community app:
// feed posts, instructional guides, experts and their chat threads.
package domain

import (
	"time"

	"github.com/samber/lo"
)

type PostType string

const (
	PostTypeHelp     PostType = "help"
	PostTypeShowcase PostType = "showcase"
)

// AllCategories is the pseudo category meaning "no filter" in the feed.
const AllCategories = "Alle"

// Categories lists the feed categories offered to authors.
var Categories = []string{
	"Sanitär",
	"Elektrik",
	"Innenausbau",
	"Außenbereich",
	"Tischlerei",
	"Malerei",
	"Heizung/Klima",
}

// Urgency levels a help request may carry.
var Urgencies = []string{"Niedrig", "Mittel", "Hoch"}

type Author struct {
	Name      string `json:"name" yaml:"name"`
	Avatar    string `json:"avatar" yaml:"avatar"`
	Expertise string `json:"expertise,omitempty" yaml:"expertise"`
}

type Reply struct {
	ID        int       `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Author    Author    `json:"author" yaml:"author"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Likes     int       `json:"likes" yaml:"likes"`
	Language  string    `json:"language,omitempty" yaml:"language"`
}

type Comment struct {
	ID        int       `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Author    Author    `json:"author" yaml:"author"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Likes     int       `json:"likes" yaml:"likes"`
	Replies   []Reply   `json:"replies" yaml:"replies"`
	Language  string    `json:"language,omitempty" yaml:"language"`
}

// Post is a help request or a project showcase.
// Comments holds the number of comments and replies shown in list views,
// CommentsList the actual thread shown in the detail view.
type Post struct {
	ID           int64     `json:"id" yaml:"id"`
	Type         PostType  `json:"type" yaml:"type"`
	Title        string    `json:"title" yaml:"title"`
	Content      string    `json:"content" yaml:"content"`
	Category     string    `json:"category" yaml:"category"`
	Images       []string  `json:"images,omitempty" yaml:"images"`
	Author       Author    `json:"author" yaml:"author"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
	Likes        int       `json:"likes" yaml:"likes"`
	Comments     int       `json:"comments" yaml:"comments"`
	CommentsList []Comment `json:"commentsList" yaml:"commentsList"`
	Urgency      string    `json:"urgency,omitempty" yaml:"urgency"`
	Language     string    `json:"language,omitempty" yaml:"language"`
}

// NextPostID returns max(ids)+1, starting at 1 for an empty feed.
func NextPostID(ids []int64) int64 {
	return lo.Max(append(ids, 0)) + 1
}

// AddComment prepends the comment, assigning the next comment id, and bumps the counter.
func (p *Post) AddComment(comment Comment) Comment {
	ids := lo.Map(p.CommentsList, func(c Comment, _ int) int { return c.ID })
	comment.ID = lo.Max(append(ids, 0)) + 1
	comment.Likes = 0
	comment.Replies = []Reply{}
	p.CommentsList = append([]Comment{comment}, p.CommentsList...)
	p.Comments++
	return comment
}

// AddReply appends the reply to the given comment. The post counter counts replies too.
func (p *Post) AddReply(commentID int, reply Reply) (Reply, bool) {
	_, idx, found := lo.FindIndexOf(p.CommentsList, func(c Comment) bool { return c.ID == commentID })
	if !found {
		return Reply{}, false
	}
	comment := &p.CommentsList[idx]
	ids := lo.Map(comment.Replies, func(r Reply, _ int) int { return r.ID })
	reply.ID = lo.Max(append(ids, 0)) + 1
	reply.Likes = 0
	comment.Replies = append(comment.Replies, reply)
	p.Comments++
	return reply, true
}

// ApplyLike adjusts the like counter for a flipped like flag. The counter never goes below zero.
func (p *Post) ApplyLike(liked bool) {
	if liked {
		p.Likes++
		return
	}
	p.Likes = max(0, p.Likes-1)
}

// MatchesCategory reports whether the post is visible under the selected feed category.
func (p Post) MatchesCategory(category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return p.Category == category
}
