// internal/adapters/grpc/server_test.go
package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func setupTestServer(t *testing.T, checks ...Check) (*Server, healthpb.HealthClient) {
	lis := bufconn.Listen(bufSize)
	srv := NewServer(zaptest.NewLogger(t), checks...)

	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			t.Logf("Server failed: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		srv.Shutdown()
	})
	return srv, healthpb.NewHealthClient(conn)
}

func TestHealth_ServingWhenDependenciesAnswer(t *testing.T) {
	var storeErr error
	srv, client := setupTestServer(t, Check{Name: "store", Pinger: pingerFunc(func(context.Context) error { return storeErr })})
	ctx := context.Background()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Check() before probe = %v, want NOT_SERVING", resp.Status)
	}

	if got := srv.Probe(ctx); got != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("Probe() = %v, want SERVING", got)
	}
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("Check() = %v, %v, want SERVING", resp, err)
	}

	storeErr = errors.New("connection refused")
	if got := srv.Probe(ctx); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Probe() = %v, want NOT_SERVING", got)
	}
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil || resp.Status != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Check() = %v, %v, want NOT_SERVING", resp, err)
	}
}

func TestHealth_UnknownService(t *testing.T) {
	_, client := setupTestServer(t)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("Check() code = %v, want NotFound", status.Code(err))
	}
}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := LoggingInterceptor(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Errorf("interceptor() = %v, %v", resp, err)
	}

	wantErr := status.Error(codes.Unavailable, "down")
	_, err = interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	})
	if status.Code(err) != codes.Unavailable {
		t.Errorf("interceptor() code = %v, want Unavailable", status.Code(err))
	}
}
