package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
	"werkstatt/ai"
	"werkstatt/auth"
	"werkstatt/infrastructure/grpc/server"
	"werkstatt/infrastructure/http/handlers"
	"werkstatt/infrastructure/index"
	"werkstatt/infrastructure/storage"
	"werkstatt/internal"
	"werkstatt/moderation"
	"werkstatt/observability"
	"werkstatt/repositories"
	"werkstatt/runtime"
	"werkstatt/runtime/workers"
	"werkstatt/services"
	"werkstatt/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const (
	shutdownTimeout  = 10 * time.Second
	timelineCapacity = 50
	uploadURLPrefix  = "/uploads/"
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal arrives or a server fails.
// Deferred cleanups run before the exit code reaches main.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	if config.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Static content
	catalog, err := runtime.NewSeedLoader(runtime.Assets()).Load("seed")
	if err != nil {
		return exitConfig, fmt.Errorf("seed loading failed: %w", err)
	}
	censored, err := runtime.NewCensoredLoader(runtime.Assets()).LoadAll("censored")
	if err != nil {
		return exitConfig, fmt.Errorf("censored words loading failed: %w", err)
	}
	logger.Info("Static content loaded",
		"guides", len(catalog.Guides), "experts", len(catalog.Experts),
		"posts", len(catalog.Posts), "censored_languages", censored.Languages)

	moderator, err := moderation.NewModerator(censored.Words, charReplacement, logger)
	if err != nil {
		return exitConfig, err
	}
	sanitizer := moderation.NewSanitizer(moderator)

	catalogIndex, err := index.NewCatalogIndex(logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = catalogIndex.Close() }()
	if err := catalogIndex.IndexGuides(catalog.Guides); err != nil {
		return exitRuntime, err
	}
	if err := catalogIndex.IndexExperts(catalog.Experts); err != nil {
		return exitRuntime, err
	}

	// 3. Database (BadgerDB) and uploads
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	uploadStore, err := storage.NewUploadStore(config.UploadDir, logger)
	if err != nil {
		return exitRuntime, err
	}

	postRepository := repositories.NewPostRepository(db, logger)
	userRepository := repositories.NewUserRepository(db)
	threadRepository := repositories.NewThreadRepository(db, logger)

	// 4. Supervision & Orchestration
	metrics := observability.NewMetrics()
	monitoring := observability.NewMonitoringManager(logger, metrics)
	timeline := sink.NewTimeline(timelineCapacity)

	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, supervisor, runtime.NewRegistry(), monitoring,
		config.NumberOfWorkers, config.BufferSize, config.SinkTimeout, config.MetricInterval)
	orchestrator.RegisterSinks(timeline)

	// 5. Assistant, disabled without an API key
	var assistant ai.Assistant
	if config.GoogleAIAPIKey != "" {
		gemini, err := ai.NewGeminiAssistant(ctx, config.Gemini(), logger)
		if err != nil {
			return exitConfig, fmt.Errorf("gemini client failed: %w", err)
		}
		assistant = gemini
	} else {
		logger.Warn("GOOGLE_AI_API_KEY not set, chat relay answers with an error and the AI thread with a canned reply")
	}

	// 6. Services
	issuer := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)
	postService := services.NewPostService(postRepository, userRepository, sanitizer, monitoring,
		catalog.Posts, config.MaxContentLength, logger)
	if err := postService.EnsureSeeded(); err != nil {
		return exitRuntime, fmt.Errorf("feed seeding failed: %w", err)
	}
	guideService := services.NewGuideService(catalog.Guides, catalogIndex, logger)
	expertService := services.NewExpertService(catalog.Experts, catalogIndex)
	threadService := services.NewThreadService(threadRepository, expertService, orchestrator, assistant, sanitizer,
		catalog.InitialThreads, catalog.ExpertReplies,
		services.ThreadConfig{
			ExpertReplyDelay: config.ExpertReplyDelay,
			AIReplyDelay:     config.AIReplyDelay,
			MaxContentLength: config.MaxContentLength,
		}, logger)
	assistantService := services.NewAssistantService(assistant, monitoring, logger)
	authService := services.NewAuthService(userRepository, issuer, config.Admins()...)
	uploadService := services.NewUploadService(uploadStore, config.MaxUploadBytes, uploadURLPrefix, monitoring, logger)

	// 7. HTTP & gRPC servers
	var ready atomic.Bool
	routerConfig := handlers.RouterConfig{
		Issuer:    issuer,
		Metrics:   metrics,
		UploadDir: config.UploadDir,
		Ready:     ready.Load,
	}
	if config.EnableDebugInspector {
		routerConfig.Inspector = internal.Inspector(db, internal.RecordMapper, func() map[string]any {
			return map[string]any{
				"monitoring": monitoring.Snapshot(),
				"timeline":   timeline.Recent(),
			}
		})
		logger.Info("Debug Badger inspector available", "path", "/debug/inspect")
	}
	h := handlers.NewHandlers(postService, guideService, expertService, threadService, assistantService,
		authService, uploadService, config.MaxUploadBytes, logger)

	grpcAddress := fmt.Sprintf("%s:%d", config.Host, config.GRPCPort)
	grpcListener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	healthServer := server.NewHealthServer(logger)

	// 8. Run until a signal or the first failure
	g, gctx := errgroup.WithContext(ctx)
	httpServer := handlers.NewHTTPServer(fmt.Sprintf("%s:%d", config.Host, config.Port),
		handlers.NewRouter(h, routerConfig, logger), gctx)
	g.Go(func() error {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(gctx, threadService); err != nil {
			return fmt.Errorf("orchestrator error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting gRPC health server", "address", grpcAddress)
		return healthServer.Serve(gctx, grpcListener)
	})
	g.Go(func() error {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		ready.Store(true)
		healthServer.SetServing(true)
		<-gctx.Done()
		ready.Store(false)
		logger.Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		orchestrator.Stop()
		return err
	})

	if err := g.Wait(); err != nil {
		return exitRuntime, err
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
