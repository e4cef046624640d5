package server

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestHealthServer(t *testing.T) {
	req := require.New(t)
	listener := bufconn.Listen(1 << 20)
	hs := NewHealthServer(slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hs.Serve(ctx, listener) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	client := healthpb.NewHealthClient(conn)

	check := func(service string) healthpb.HealthCheckResponse_ServingStatus {
		callCtx, cancelCall := context.WithTimeout(context.Background(), time.Second)
		defer cancelCall()
		res, err := client.Check(callCtx, &healthpb.HealthCheckRequest{Service: service})
		req.NoError(err)
		return res.GetStatus()
	}

	// Given a server that is not ready yet
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, check(""))

	// When the service becomes ready
	hs.SetServing(true)

	// Then both names report serving
	req.Equal(healthpb.HealthCheckResponse_SERVING, check(""))
	req.Equal(healthpb.HealthCheckResponse_SERVING, check(ServiceName))

	req.NoError(conn.Close())
	cancel()
	req.NoError(<-done)
}
