package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type CommunitySuite struct {
	BaseHTTPSuite
	token string
}

func TestCommunitySuite(t *testing.T) {
	suite.Run(t, new(CommunitySuite))
}

type post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Likes    int    `json:"likes"`
	Liked    bool   `json:"liked"`
	Comments int    `json:"comments"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type thread struct {
	ID        string    `json:"id"`
	Messages  []message `json:"messages"`
	HasUnread bool      `json:"hasUnread"`
}

func (s *CommunitySuite) SetupTest() {
	var resp struct {
		Token string `json:"token"`
	}
	code := s.Call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    fmt.Sprintf("e2e-%s@werkstatt.test", uuid.NewString()),
		"password": "Werkbank-2024!",
		"name":     "E2E Heimwerker",
	}, &resp)
	s.Require().Equal(http.StatusCreated, code)
	s.Require().NotEmpty(resp.Token)
	s.token = resp.Token
}

func (s *CommunitySuite) TestPostLifecycle() {
	var created post
	s.Step("create post", func() {
		code := s.Call(http.MethodPost, "/api/posts", s.token, map[string]any{
			"type":     "help",
			"title":    "Dübel hält nicht in Gipskarton",
			"content":  "Welche Hohlraumdübel nehmt ihr für ein Hängeregal?",
			"category": "Innenausbau",
		}, &created)
		s.Require().Equal(http.StatusCreated, code)
		s.Require().NotZero(created.ID)
	})

	s.Step("comment and like", func() {
		code := s.Call(http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", created.ID), s.token,
			map[string]string{"content": "Metall-Hohlraumdübel, die halten richtig."}, nil)
		s.Require().Equal(http.StatusCreated, code)

		var liked post
		code = s.Call(http.MethodPost, fmt.Sprintf("/api/posts/%d/like", created.ID), s.token, nil, &liked)
		s.Require().Equal(http.StatusOK, code)
		s.Require().True(liked.Liked)
		s.Require().Equal(1, liked.Likes)
	})

	s.Step("read back", func() {
		var got post
		code := s.Call(http.MethodGet, fmt.Sprintf("/api/posts/%d", created.ID), s.token, nil, &got)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal(1, got.Comments)
		s.Require().True(got.Liked)
	})
}

func (s *CommunitySuite) TestExpertReply() {
	var before thread
	s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/api/threads/1", s.token, nil, &before))

	s.Step("send message", func() {
		code := s.Call(http.MethodPost, "/api/threads/1/messages", s.token,
			map[string]string{"content": "Mein Heizkörper wird oben nicht warm."}, nil)
		s.Require().Equal(http.StatusAccepted, code)
	})

	s.Step("await expert reply", func() {
		s.Require().Eventually(func() bool {
			var got thread
			if s.Call(http.MethodGet, "/api/threads/1", s.token, nil, &got) != http.StatusOK {
				return false
			}
			last := got.Messages[len(got.Messages)-1]
			return len(got.Messages) == len(before.Messages)+2 && last.Role == "assistant" && got.HasUnread
		}, s.Config.ReplyTimeout, 250*time.Millisecond)
	})
}

func (s *CommunitySuite) TestGRPCHealth() {
	if s.Config.GRPCAddr == "" {
		s.T().Skip("GRPC_ADDR not set")
	}
	conn, err := grpc.NewClient(s.Config.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: "werkstatt"})
	s.Require().NoError(err)
	s.Require().Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
