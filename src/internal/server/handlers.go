// FILE: ecosnap/src/internal/server/handlers.go
package server

import (
	"io"
	"path/filepath"
	"strings"

	"ecosnap/src/internal/classify"
	"ecosnap/src/internal/tip"
	"ecosnap/src/internal/version"

	"github.com/valyala/fasthttp"
)

// Multipart field carrying the uploaded image
const imageField = "image"

func (s *Server) handleScan(ctx *fasthttp.RequestCtx) {
	if s.limiter != nil && !s.limiter.Allow(ctx.RemoteIP().String()) {
		ctx.Response.Header.Set("Retry-After", "1")
		s.writeJSON(ctx, fasthttp.StatusTooManyRequests, map[string]string{
			"error": "Rate limit exceeded",
		})
		return
	}

	fh, err := ctx.FormFile(imageField)
	if err != nil {
		s.writeJSON(ctx, fasthttp.StatusBadRequest, map[string]string{
			"error": "Missing image upload",
			"hint":  "send multipart/form-data with an '" + imageField + "' file field",
		})
		return
	}

	if !classify.Supported(fh.Filename) {
		s.writeJSON(ctx, fasthttp.StatusUnsupportedMediaType, map[string]string{
			"error": "Unsupported image type",
			"hint":  "accepted extensions: " + strings.Join(classify.Extensions(), ", "),
		})
		return
	}

	if fh.Size > s.maxUpload {
		s.writeTooLarge(ctx)
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.writeJSON(ctx, fasthttp.StatusBadRequest, map[string]string{
			"error": "Unreadable image upload",
		})
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil || len(data) == 0 {
		s.writeJSON(ctx, fasthttp.StatusBadRequest, map[string]string{
			"error": "Empty image upload",
		})
		return
	}

	result, err := s.service.Scan(s.ctx, classify.Image{Name: filepath.Base(fh.Filename), Data: data})
	if err != nil {
		s.writeJSON(ctx, fasthttp.StatusInternalServerError, map[string]string{
			"error": "Failed to record scan",
		})
		return
	}

	s.logger.Info("msg", "Image scanned",
		"component", "http_server",
		"remote", ctx.RemoteIP().String(),
		"label", result.Label)

	s.writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleDashboard(ctx *fasthttp.RequestCtx) {
	dash, err := s.service.Dashboard(s.ctx)
	if err != nil {
		s.logger.Error("msg", "Failed to build dashboard",
			"component", "http_server",
			"error", err)
		s.writeJSON(ctx, fasthttp.StatusInternalServerError, map[string]string{
			"error": "Failed to read waste log",
		})
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, dash)
}

func (s *Server) handleTips(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, map[string]any{
		"tips":     tip.All(),
		"fallback": tip.Fallback,
	})
}

func (s *Server) handleStatus(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, map[string]any{
		"version": version.Short(),
		"service": s.service.GetStats(),
		"server":  s.GetStats(),
	})
}
