// FILE: ecosnap/src/cmd/ecosnap/commands/status.go
package commands

import (
	"context"
	"os"
	"time"

	"ecosnap/src/internal/server"

	"github.com/lixenwraith/log"
)

const statusInterval = 30 * time.Second

func statusReporterEnabled() bool {
	return os.Getenv("ECOSNAP_DISABLE_STATUS_REPORTER") != "1"
}

// statusReporter periodically logs server and service statistics until ctx is done
func statusReporter(ctx context.Context, srv *server.Server, env *Env, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logStatus(env.Logger, srv.GetStats(), env.Service.GetStats())
		}
	}
}

func logStatus(logger *log.Logger, serverStats, serviceStats map[string]any) {
	fields := []any{
		"msg", "Status report",
		"component", "status_reporter",
	}

	if v, ok := serverStats["total_requests"].(uint64); ok {
		fields = append(fields, "total_requests", v)
	}
	if v, ok := serverStats["failed_requests"].(uint64); ok {
		fields = append(fields, "failed_requests", v)
	}
	if rl, ok := serverStats["rate_limit"].(map[string]any); ok {
		fields = append(fields, "rate_limited", rl["total_rejected"], "active_clients", rl["active_clients"])
	}
	if v, ok := serviceStats["total_scans"].(uint64); ok {
		fields = append(fields, "total_scans", v)
	}
	if v, ok := serviceStats["failed_appends"].(uint64); ok {
		fields = append(fields, "failed_appends", v)
		if v > 0 {
			logger.Warn("msg", "Scans failed to reach the waste log",
				"component", "status_reporter",
				"failed_appends", v,
				"store", serviceStats["store"])
		}
	}

	logger.Debug(fields...)
}
