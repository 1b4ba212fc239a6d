package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup pre-computes every chart endpoint into the cache.
	TaskDashboardWarmup = "dashboard:warmup"
	// TaskCacheBump invalidates cached responses after a data reimport.
	TaskCacheBump = "dashboard:cache_bump"
)

// DashboardWarmupPayload scopes a warmup run. An empty endpoint list means
// every endpoint.
type DashboardWarmupPayload struct {
	RunID     string   `json:"run_id,omitempty"`
	Endpoints []string `json:"endpoints,omitempty"`
}

// NewDashboardWarmupTask constructs a warmup task.
func NewDashboardWarmupTask(payload DashboardWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}

// NewCacheBumpTask constructs a cache invalidation task.
func NewCacheBumpTask() *asynq.Task {
	return asynq.NewTask(TaskCacheBump, nil)
}
