package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 3 * time.Second

// Health serves the liveness and readiness probes. Liveness only proves the
// process is up; readiness also pings MongoDB and, when the login throttle
// is enabled, Redis.
type Health struct {
	db  *mongo.Database
	rdb *redis.Client // nil when the throttle is disabled
}

func NewHealth(db *mongo.Database, rdb *redis.Client) *Health {
	return &Health{db: db, rdb: rdb}
}

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                 `json:"status"`
	Dependencies map[string]checkResult `json:"dependencies"`
}

func (h *Health) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Health) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	checks := map[string]checkResult{
		"mongodb": h.checkMongo(ctx),
	}
	if h.rdb != nil {
		checks["redis"] = h.checkRedis(ctx)
	}

	status, code := "ok", http.StatusOK
	for _, res := range checks {
		if res.Error != "" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(code, readinessResponse{Status: status, Dependencies: checks})
}

func (h *Health) checkMongo(ctx context.Context) checkResult {
	if err := h.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return checkResult{Status: "unhealthy", Error: err.Error()}
	}
	return checkResult{Status: "ok"}
}

func (h *Health) checkRedis(ctx context.Context) checkResult {
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		return checkResult{Status: "unhealthy", Error: err.Error()}
	}
	return checkResult{Status: "ok"}
}
