// Package health tracks whether the stores are reachable and reports it
// over gRPC and HTTP.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"gorm.io/gorm"

	"msgboard/internal/common"
	"msgboard/internal/config"
	"msgboard/internal/dbmongo"
)

const ServiceName = "msgboard"

type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// MySQLPinger pings the pool behind a gorm handle.
func MySQLPinger(db *gorm.DB) Pinger {
	return PingFunc(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

type Checker struct {
	server   *grpchealth.Server
	checks   map[string]Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu   sync.RWMutex
	last map[string]error
}

func NewChecker(checks map[string]Pinger, interval time.Duration, logger *slog.Logger) *Checker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Checker{
		server:   grpchealth.NewServer(),
		checks:   checks,
		interval: interval,
		timeout:  5 * time.Second,
		logger:   logger,
		last:     make(map[string]error),
	}
}

// NewStoreChecker checks MySQL and MongoDB.
func NewStoreChecker(cfg *config.Config, db *gorm.DB, mongo *dbmongo.MongoClient, logger *slog.Logger) *Checker {
	return NewChecker(map[string]Pinger{
		"mysql":   MySQLPinger(db),
		"mongodb": PingFunc(mongo.Ping),
	}, time.Duration(cfg.Health.CheckInterval)*time.Second, logger)
}

// Run checks once immediately and then on every tick until ctx is done.
func (c *Checker) Run(ctx context.Context) {
	c.CheckNow(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.CheckNow(ctx)
		}
	}
}

// CheckNow pings every store and updates the serving status. It reports
// whether all of them answered.
func (c *Checker) CheckNow(ctx context.Context) bool {
	results := make(map[string]error, len(c.checks))
	for name, p := range c.checks {
		pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := p.Ping(pingCtx)
		cancel()
		results[name] = err
		if err != nil {
			c.logger.WarnContext(ctx, "health check failed", "store", name, "error", err)
		}
	}

	healthy := true
	for _, err := range results {
		if err != nil {
			healthy = false
		}
	}

	c.mu.Lock()
	c.last = results
	c.mu.Unlock()

	status := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	return healthy
}

type Report struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

func (c *Checker) Report() Report {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report := Report{Status: "healthy", Service: ServiceName, Checks: make(map[string]string, len(c.checks))}
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		err, checked := c.last[name]
		switch {
		case !checked:
			report.Checks[name] = "unknown"
			report.Status = "unhealthy"
		case err != nil:
			report.Checks[name] = fmt.Sprintf("down: %v", err)
			report.Status = "unhealthy"
		default:
			report.Checks[name] = "up"
		}
	}
	return report
}

func (c *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := c.Report()
	status := http.StatusOK
	if report.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	common.WriteJSON(w, status, report)
}

// NewGRPCServer exposes grpc.health.v1.Health backed by c, plus reflection.
func NewGRPCServer(c *Checker) *grpc.Server {
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, c.server)
	reflection.Register(srv)
	return srv
}
