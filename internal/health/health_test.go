package health

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"msgboard/internal/logging"
)

func okPing(context.Context) error { return nil }

func TestChecker_CheckNow(t *testing.T) {
	ctx := context.Background()
	mongoErr := errors.New("connection refused")
	down := false

	c := NewChecker(map[string]Pinger{
		"mysql": PingFunc(okPing),
		"mongodb": PingFunc(func(context.Context) error {
			if down {
				return mongoErr
			}
			return nil
		}),
	}, time.Second, logging.Discard())

	assert.Equal(t, "unhealthy", c.Report().Status)

	require.True(t, c.CheckNow(ctx))
	resp, err := c.server.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	report := c.Report()
	assert.Equal(t, "healthy", report.Status)
	assert.Equal(t, map[string]string{"mysql": "up", "mongodb": "up"}, report.Checks)

	down = true
	require.False(t, c.CheckNow(ctx))
	resp, err = c.server.Check(ctx, &healthpb.HealthCheckRequest{Service: ""})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
	assert.Contains(t, c.Report().Checks["mongodb"], "connection refused")
}

func TestChecker_ServeHTTP(t *testing.T) {
	c := NewChecker(map[string]Pinger{"mysql": PingFunc(okPing)}, time.Second, logging.Discard())
	c.CheckNow(context.Background())

	rr := httptest.NewRecorder()
	c.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var report Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "msgboard", report.Service)

	c = NewChecker(map[string]Pinger{"mysql": PingFunc(func(context.Context) error { return errors.New("x") })}, time.Second, logging.Discard())
	c.CheckNow(context.Background())
	rr = httptest.NewRecorder()
	c.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestChecker_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewChecker(map[string]Pinger{"mysql": PingFunc(okPing)}, 10*time.Millisecond, logging.Discard())

	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewGRPCServer(t *testing.T) {
	c := NewChecker(map[string]Pinger{"mysql": PingFunc(okPing)}, time.Second, logging.Discard())
	c.CheckNow(context.Background())

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(c)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
