//go:generate go run go.uber.org/mock/mockgen -source=post_service.go -destination=../mocks/mock_post_service.go -package=mocks
package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
	"unicode/utf8"
	"werkstatt/auth"
	"werkstatt/domain"
	"werkstatt/errors"
	"werkstatt/moderation"
	"werkstatt/observability"
	"werkstatt/repositories"

	"github.com/samber/lo"
)

type IPostService interface {
	EnsureSeeded() error
	ListCategories() []string
	ListPosts(category, userID string) ([]PostView, error)
	GetPost(id int64, userID string) (PostView, error)
	AddPost(userID string, input PostInput) (PostView, error)
	AddComment(userID string, postID int64, input CommentInput) (domain.Comment, error)
	AddReply(userID string, postID int64, commentID int, input CommentInput) (domain.Reply, error)
	ToggleLike(userID string, postID int64) (LikeResult, error)
	ResetPosts() error
}

type PostInput struct {
	Type     domain.PostType `json:"type" validate:"required,oneof=help showcase"`
	Title    string          `json:"title" validate:"required,max=200"`
	Content  string          `json:"content" validate:"required"`
	Category string          `json:"category" validate:"required"`
	Images   []string        `json:"images" validate:"max=8,dive,required"`
	Urgency  string          `json:"urgency" validate:"omitempty,oneof=Niedrig Mittel Hoch"`
}

type CommentInput struct {
	Content string `json:"content" validate:"required"`
}

// PostView is a post as seen by one user.
type PostView struct {
	domain.Post
	Liked   bool   `json:"liked"`
	TimeAgo string `json:"timeAgo"`
}

type LikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

type PostService struct {
	posts            repositories.IPostRepository
	users            repositories.IUserRepository
	sanitizer        moderation.ISanitizer
	monitoring       *observability.MonitoringManager
	seed             []domain.Post
	maxContentLength int
	now              func() time.Time
	log              *slog.Logger
}

func NewPostService(
	posts repositories.IPostRepository,
	users repositories.IUserRepository,
	sanitizer moderation.ISanitizer,
	monitoring *observability.MonitoringManager,
	seed []domain.Post,
	maxContentLength int,
	log *slog.Logger) *PostService {
	return &PostService{
		posts:            posts,
		users:            users,
		sanitizer:        sanitizer,
		monitoring:       monitoring,
		seed:             seed,
		maxContentLength: maxContentLength,
		now:              time.Now,
		log:              log,
	}
}

// WithClock replaces the time source, used by tests.
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

// EnsureSeeded writes the initial posts when the feed is empty.
func (s *PostService) EnsureSeeded() error {
	count, err := s.posts.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	s.log.Info("Empty feed, seeding initial posts", "count", len(s.seed))
	return s.posts.Reset(s.seed)
}

func (s *PostService) ListCategories() []string {
	return slices.Clone(domain.Categories)
}

// ListPosts returns the feed newest first, filtered by category unless empty or "Alle".
func (s *PostService) ListPosts(category, userID string) ([]PostView, error) {
	posts, err := s.posts.ListPosts()
	if err != nil {
		return nil, err
	}
	liked, err := s.posts.LikedBy(userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	visible := lo.Filter(posts, func(p domain.Post, _ int) bool { return p.MatchesCategory(category) })
	return lo.Map(visible, func(p domain.Post, _ int) PostView {
		return toView(p, liked[p.ID], now)
	}), nil
}

func (s *PostService) GetPost(id int64, userID string) (PostView, error) {
	post, err := s.posts.GetPost(id)
	if err != nil {
		return PostView{}, err
	}
	liked, err := s.posts.LikedBy(userID)
	if err != nil {
		return PostView{}, err
	}
	return toView(post, liked[id], s.now()), nil
}

func (s *PostService) AddPost(userID string, input PostInput) (PostView, error) {
	if err := s.validateContent(input, input.Content); err != nil {
		return PostView{}, err
	}
	if !slices.Contains(domain.Categories, input.Category) {
		return PostView{}, fmt.Errorf("%w: unknown category %q", errors.ErrInvalidRequest, input.Category)
	}
	author, err := s.author(userID)
	if err != nil {
		return PostView{}, err
	}

	title := s.sanitizer.Sanitize(input.Title)
	content := s.sanitizer.Sanitize(input.Content)
	s.monitoring.AddCensoredWords(len(title.CensoredWords) + len(content.CensoredWords))

	post, err := s.posts.CreatePost(domain.Post{
		Type:         input.Type,
		Title:        title.Content,
		Content:      content.Content,
		Category:     input.Category,
		Images:       input.Images,
		Author:       author,
		Timestamp:    s.now().UTC(),
		CommentsList: []domain.Comment{},
		Urgency:      input.Urgency,
		Language:     content.Language,
	})
	if err != nil {
		return PostView{}, err
	}
	s.monitoring.IncrPostCreated()
	s.log.Debug("Post created", "post_id", post.ID, "user", userID)
	return toView(post, false, s.now()), nil
}

func (s *PostService) AddComment(userID string, postID int64, input CommentInput) (domain.Comment, error) {
	if err := s.validateContent(input, input.Content); err != nil {
		return domain.Comment{}, err
	}
	author, err := s.author(userID)
	if err != nil {
		return domain.Comment{}, err
	}
	clean := s.sanitizer.Sanitize(input.Content)
	s.monitoring.AddCensoredWords(len(clean.CensoredWords))

	var added domain.Comment
	_, err = s.posts.UpdatePost(postID, func(p *domain.Post) error {
		added = p.AddComment(domain.Comment{
			Content:   clean.Content,
			Author:    author,
			Timestamp: s.now().UTC(),
			Language:  clean.Language,
		})
		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}
	s.monitoring.IncrCommentCreated("comment")
	return added, nil
}

// AddReply appends a reply to a comment. An unknown comment leaves the post untouched.
func (s *PostService) AddReply(userID string, postID int64, commentID int, input CommentInput) (domain.Reply, error) {
	if err := s.validateContent(input, input.Content); err != nil {
		return domain.Reply{}, err
	}
	author, err := s.author(userID)
	if err != nil {
		return domain.Reply{}, err
	}
	clean := s.sanitizer.Sanitize(input.Content)
	s.monitoring.AddCensoredWords(len(clean.CensoredWords))

	var added domain.Reply
	_, err = s.posts.UpdatePost(postID, func(p *domain.Post) error {
		reply, ok := p.AddReply(commentID, domain.Reply{
			Content:   clean.Content,
			Author:    author,
			Timestamp: s.now().UTC(),
			Language:  clean.Language,
		})
		if !ok {
			return errors.ErrCommentNotFound
		}
		added = reply
		return nil
	})
	if err != nil {
		return domain.Reply{}, err
	}
	s.monitoring.IncrCommentCreated("reply")
	return added, nil
}

func (s *PostService) ToggleLike(userID string, postID int64) (LikeResult, error) {
	liked, post, err := s.posts.ToggleLike(postID, userID)
	if err != nil {
		return LikeResult{}, err
	}
	s.monitoring.IncrLikeToggled(liked)
	return LikeResult{Liked: liked, Likes: post.Likes}, nil
}

func (s *PostService) ResetPosts() error {
	return s.posts.Reset(s.seed)
}

func (s *PostService) validateContent(input any, content string) error {
	if err := auth.Validate(input); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if s.maxContentLength > 0 && utf8.RuneCountInString(content) > s.maxContentLength {
		return fmt.Errorf("%w: content longer than %d characters", errors.ErrInvalidRequest, s.maxContentLength)
	}
	return nil
}

// author builds the public author block from the user's profile.
func (s *PostService) author(userID string) (domain.Author, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return domain.Author{}, errors.ErrInvalidCredentials
		}
		return domain.Author{}, err
	}
	return domain.Author{Name: user.Name, Avatar: user.Avatar, Expertise: user.Expertise}, nil
}

func toView(p domain.Post, liked bool, now time.Time) PostView {
	if p.CommentsList == nil {
		p.CommentsList = []domain.Comment{}
	}
	return PostView{Post: p, Liked: liked, TimeAgo: domain.FormatTimeAgo(p.Timestamp, now)}
}
