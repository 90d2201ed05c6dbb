package server

import (
	"context"
	"time"
)

// CheckStatus is the outcome of one dependency check.
type CheckStatus struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthReport is what `memberctl health` prints.
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckStatus `json:"checks"`
}

// Healthy reports whether every required dependency answered.
func (r HealthReport) Healthy() bool {
	return r.Status == "healthy"
}

type pinger func(ctx context.Context) error

// CheckHealth pings the database and Redis.
//
// Only the database decides the overall status. Redis backs notifications
// alone, so its failure is reported without marking the service unhealthy.
func (s *Server) CheckHealth(ctx context.Context) HealthReport {
	var redisPing pinger
	if s.Redis != nil {
		redisPing = func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() }
	}
	return s.checkHealth(ctx, s.DB.Ping, redisPing)
}

func (s *Server) checkHealth(ctx context.Context, dbPing, redisPing pinger) HealthReport {
	start := time.Now()
	log := s.Logger.With().Str("operation", "health_check").Logger()

	report := HealthReport{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: s.Config.Primary.Env,
		Checks:      make(map[string]CheckStatus),
	}

	dbStatus := s.checkDependency(ctx, "database", dbPing)
	report.Checks["database"] = dbStatus
	if dbStatus.Status != "healthy" {
		report.Status = "unhealthy"
	}

	if redisPing != nil {
		report.Checks["redis"] = s.checkDependency(ctx, "redis", redisPing)
	}

	if !report.Healthy() {
		log.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		s.recordHealthEvent("overall", "overall_unhealthy", time.Since(start), "")
		return report
	}

	log.Info().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return report
}

func (s *Server) checkDependency(ctx context.Context, name string, ping pinger) CheckStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		s.Logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")
		s.recordHealthEvent(name, name+"_unhealthy", elapsed, err.Error())
		return CheckStatus{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	return CheckStatus{Status: "healthy", ResponseTime: elapsed.String()}
}

func (s *Server) recordHealthEvent(checkType, errorType string, elapsed time.Duration, message string) {
	app := s.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       checkType,
		"operation":        "health_check",
		"error_type":       errorType,
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    message,
	})
}
