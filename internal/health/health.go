// Package health backs the /health endpoint every long-running process
// exposes, grounded on services/weatherService/pkg/health/health.go's
// dependency-ping shape, adapted from a gorm.DB + redis ping to this
// domain's DynamoDB client + optional Redis cache.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/redis/go-redis/v9"

	"github.com/commutecast/backend/internal/store/dynamo"
)

// Checker reports liveness for the process's dependencies.
type Checker struct {
	DB      *dynamo.Client
	Table   string
	Redis   *redis.Client
	Version string
}

func NewChecker(db *dynamo.Client, table string, redisClient *redis.Client, version string) *Checker {
	return &Checker{DB: db, Table: table, Redis: redisClient, Version: version}
}

type status struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// Handler serves GET /health, returning 200 when every dependency check
// passes and 503 otherwise.
func (c *Checker) Handler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	if c.DB != nil {
		if _, err := c.DB.DB.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(c.Table)}); err != nil {
			checks["dynamodb"] = err.Error()
			healthy = false
		} else {
			checks["dynamodb"] = "ok"
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	out := status{Version: c.Version, Checks: checks}
	if healthy {
		out.Status = "healthy"
		w.WriteHeader(http.StatusOK)
	} else {
		out.Status = "unhealthy"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
