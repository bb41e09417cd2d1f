// FILE: ecosnap/src/internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"ecosnap/src/internal/config"
	"ecosnap/src/internal/service"

	"fortio.org/safecast"
	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// Endpoint paths
const (
	ScanPath      = "/scan"
	DashboardPath = "/dashboard"
	TipsPath      = "/tips"
	StatusPath    = "/status"
)

// Server exposes the scan service over HTTP
type Server struct {
	config    *config.ServerConfig
	service   *service.Service
	server    *fasthttp.Server
	limiter   *RateLimiter
	maxUpload int64
	logger    *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Statistics
	startTime      time.Time
	totalRequests  atomic.Uint64
	failedRequests atomic.Uint64
}

// New creates an HTTP server for svc. It does not listen until Start.
func New(ctx context.Context, cfg *config.ServerConfig, svc *service.Service, logger *log.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server config cannot be nil")
	}

	maxUpload := cfg.MaxUploadMB * 1024 * 1024
	bodyLimit, err := safecast.Conv[int](maxUpload)
	if err != nil {
		return nil, fmt.Errorf("max_upload_mb out of range: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	s := &Server{
		config:    cfg,
		service:   svc,
		maxUpload: maxUpload,
		logger:    logger,
		ctx:       serverCtx,
		cancel:    cancel,
		startTime: time.Now(),
	}

	if rl := cfg.RateLimit; rl != nil && rl.Enabled {
		burst, err := safecast.Conv[int](rl.BurstSize)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("rate_limit burst_size out of range: %w", err)
		}
		s.limiter = NewRateLimiter(rl.RequestsPerSecond, burst, time.Duration(rl.CleanupIntervalSec)*time.Second)
	}

	s.server = &fasthttp.Server{
		Name:               "ecosnap",
		Handler:            s.requestHandler,
		ErrorHandler:       s.handleRequestError,
		MaxRequestBodySize: bodyLimit + 64*1024, // multipart framing overhead
		ReadTimeout:        time.Duration(cfg.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout:       time.Duration(cfg.WriteTimeoutMS) * time.Millisecond,
		CloseOnShutdown:    true,
	}

	return s, nil
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.FormatInt(s.config.Port, 10))
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener in the background
func (s *Server) Serve(ln net.Listener) error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("msg", "HTTP server starting",
			"component", "http_server",
			"address", ln.Addr().String())

		if err := s.server.Serve(ln); err != nil {
			s.logger.Error("msg", "HTTP server failed",
				"component", "http_server",
				"address", ln.Addr().String(),
				"error", err)
		}
	}()
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown() {
	s.logger.Info("msg", "Stopping HTTP server")
	s.cancel()

	if err := s.server.Shutdown(); err != nil {
		s.logger.Error("msg", "Error shutting down HTTP server",
			"component", "http_server",
			"error", err)
	}

	if s.limiter != nil {
		s.limiter.Stop()
	}

	s.wg.Wait()
	s.logger.Info("msg", "HTTP server stopped")
}

// GetStats returns server statistics
func (s *Server) GetStats() map[string]any {
	stats := map[string]any{
		"address":         s.Addr(),
		"start_time":      s.startTime,
		"total_requests":  s.totalRequests.Load(),
		"failed_requests": s.failedRequests.Load(),
		"max_upload_mb":   s.config.MaxUploadMB,
	}
	if s.limiter != nil {
		stats["rate_limit"] = s.limiter.GetStats()
	}
	return stats
}

func (s *Server) requestHandler(ctx *fasthttp.RequestCtx) {
	s.totalRequests.Add(1)

	path := string(ctx.Path())
	method := string(ctx.Method())

	var allowed string
	switch path {
	case ScanPath:
		allowed = fasthttp.MethodPost
	case DashboardPath, TipsPath, StatusPath:
		allowed = fasthttp.MethodGet
	default:
		s.writeJSON(ctx, fasthttp.StatusNotFound, map[string]any{
			"error": "Not Found",
			"hint":  fmt.Sprintf("POST an image to %s, GET %s, %s or %s", ScanPath, DashboardPath, TipsPath, StatusPath),
		})
		return
	}

	if method != allowed {
		ctx.Response.Header.Set("Allow", allowed)
		s.writeJSON(ctx, fasthttp.StatusMethodNotAllowed, map[string]string{
			"error": fmt.Sprintf("%s %s not allowed", method, path),
		})
		return
	}

	switch path {
	case ScanPath:
		s.handleScan(ctx)
	case DashboardPath:
		s.handleDashboard(ctx)
	case TipsPath:
		s.handleTips(ctx)
	case StatusPath:
		s.handleStatus(ctx)
	}
}

// handleRequestError answers requests fasthttp rejects before routing, such as oversized bodies
func (s *Server) handleRequestError(ctx *fasthttp.RequestCtx, err error) {
	s.totalRequests.Add(1)

	var smallBuffer *fasthttp.ErrSmallBuffer
	var netErr *net.OpError
	switch {
	case errors.Is(err, fasthttp.ErrBodyTooLarge):
		s.writeTooLarge(ctx)
	case errors.As(err, &smallBuffer):
		s.writeJSON(ctx, fasthttp.StatusRequestHeaderFieldsTooLarge, map[string]string{
			"error": "Request header too large",
		})
	case errors.As(err, &netErr) && netErr.Timeout():
		s.writeJSON(ctx, fasthttp.StatusRequestTimeout, map[string]string{
			"error": "Request timeout",
		})
	default:
		s.writeJSON(ctx, fasthttp.StatusBadRequest, map[string]string{
			"error": "Malformed request",
		})
	}

	s.logger.Debug("msg", "Rejected request before routing",
		"component", "http_server",
		"remote_addr", ctx.RemoteAddr().String(),
		"status", ctx.Response.StatusCode(),
		"error", err)
}

func (s *Server) writeTooLarge(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusRequestEntityTooLarge, map[string]any{
		"error":         "Image too large",
		"max_upload_mb": s.config.MaxUploadMB,
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	if status >= fasthttp.StatusBadRequest {
		s.failedRequests.Add(1)
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		s.logger.Error("msg", "Failed to encode response",
			"component", "http_server",
			"path", string(ctx.Path()),
			"error", err)
	}
}
