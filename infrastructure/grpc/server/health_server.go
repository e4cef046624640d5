package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name health checks ask for besides the overall "" status.
const ServiceName = "werkstatt"

// HealthServer serves the standard gRPC health protocol for orchestrators and load balancers.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	log    *slog.Logger
}

func NewHealthServer(log *slog.Logger) *HealthServer {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
		))
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)
	reflection.Register(s)

	hs := &HealthServer{server: s, health: h, log: log}
	hs.SetServing(false)
	return hs
}

// SetServing flips both the overall and the named service status.
func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve blocks until ctx is cancelled or the listener fails.
// On cancellation the status goes NOT_SERVING before the graceful stop.
func (s *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting gRPC health server", "address", listener.Addr().String())
		for serviceName := range s.server.GetServiceInfo() {
			s.log.Debug("gRPC exposed service", "name", serviceName)
		}
		errChan <- s.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.SetServing(false)
		s.health.Shutdown()
		s.server.GracefulStop()
		<-errChan
		return nil
	case err := <-errChan:
		if err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	}
}
