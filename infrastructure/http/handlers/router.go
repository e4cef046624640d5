// Package handlers exposes the community API over HTTP with gin.
package handlers

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"
	"werkstatt/auth"
	"werkstatt/infrastructure/http/middleware"
	"werkstatt/observability"
	"werkstatt/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	posts     services.IPostService
	guides    services.IGuideService
	experts   services.IExpertService
	threads   services.IThreadService
	assistant services.IAssistantService
	accounts  services.IAuthService
	uploads   services.IUploadService

	maxUploadBytes int64
	pingInterval   time.Duration
	log            *slog.Logger
}

func NewHandlers(
	posts services.IPostService,
	guides services.IGuideService,
	experts services.IExpertService,
	threads services.IThreadService,
	assistant services.IAssistantService,
	accounts services.IAuthService,
	uploads services.IUploadService,
	maxUploadBytes int64,
	log *slog.Logger) *Handlers {
	return &Handlers{
		posts:          posts,
		guides:         guides,
		experts:        experts,
		threads:        threads,
		assistant:      assistant,
		accounts:       accounts,
		uploads:        uploads,
		maxUploadBytes: maxUploadBytes,
		pingInterval:   20 * time.Second,
		log:            log,
	}
}

// RouterConfig carries what the router needs beside the handlers.
type RouterConfig struct {
	Issuer    *auth.TokenIssuer
	Metrics   *observability.Metrics
	UploadDir string
	// Ready reports whether the service accepts traffic, nil means always.
	Ready func() bool
	// Inspector is mounted at /debug/inspect when set.
	Inspector gin.HandlerFunc
}

// NewHTTPServer serves handler with every request context derived from base,
// so cancelling base ends open event streams and lets Shutdown complete.
func NewHTTPServer(addr string, handler http.Handler, base context.Context) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
}

func NewRouter(h *Handlers, cfg RouterConfig, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(log, cfg.Metrics),
		middleware.Recovery(log),
		middleware.CORS(),
	)

	r.GET("/healthz", health(cfg.Ready))
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}
	if cfg.Inspector != nil {
		r.GET("/debug/inspect", cfg.Inspector)
	}

	requireUser := auth.RequireUser(cfg.Issuer)
	optionalUser := auth.OptionalUser(cfg.Issuer)

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/me", requireUser, h.Me)

		api.GET("/categories", h.ListCategories)
		posts := api.Group("/posts")
		posts.GET("", optionalUser, h.ListPosts)
		posts.GET("/:id", optionalUser, h.GetPost)
		posts.POST("", requireUser, h.AddPost)
		posts.POST("/reset", requireUser, auth.RequireRole(auth.RoleAdmin), h.ResetPosts)
		posts.POST("/:id/comments", requireUser, h.AddComment)
		posts.POST("/:id/comments/:commentId/replies", requireUser, h.AddReply)
		posts.POST("/:id/like", requireUser, h.ToggleLike)

		api.GET("/guides", h.SearchGuides)
		api.GET("/guides/:id", h.GetGuide)

		api.GET("/experts", h.FilterExperts)
		api.GET("/experts/specialties", h.ListSpecialties)
		api.GET("/experts/categories/:category", h.ExpertsByCategory)
		api.GET("/experts/:id", h.GetExpert)

		threads := api.Group("/threads", requireUser)
		threads.GET("", h.Threads)
		threads.PUT("", h.UpdateThreads)
		threads.GET("/:threadId", h.GetThread)
		threads.GET("/:threadId/events", h.WatchThread)
		threads.POST("/experts/:expertId", h.StartExpertChat)
		threads.POST("/:threadId/messages", h.SendMessage)
		threads.POST("/:threadId/read", h.MarkThreadAsRead)
		threads.POST("/:threadId/reset", h.ResetThread)

		api.POST("/chat", h.Chat)
		api.POST("/uploads", requireUser, h.Upload)
	}
	return r
}

func health(ready func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil && !ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
