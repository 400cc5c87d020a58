package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		check := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			status := HealthStatus{CheckedAt: time.Now().UTC()}
			status.Mongo = mongoClient != nil && mongoClient.Ping(ctx, nil) == nil
			for _, rc := range redisClients {
				status.Redis = append(status.Redis, rc != nil && rc.Ping(ctx).Err() == nil)
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}

		check()
		for range ticker.C {
			check()
		}
	}()
}
