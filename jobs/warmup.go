package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/kiranfor2004/sales-dashboard/internal/analytics"
	jobmetrics "github.com/kiranfor2004/sales-dashboard/internal/jobs"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

const warmupConcurrency = 4

// DashboardWarmupJob pre-populates the response cache so the first browser
// hit after a reimport never pays for a full aggregation pass.
type DashboardWarmupJob struct {
	Analytics *analytics.Service
	Logger    *slog.Logger
	Metrics   *jobmetrics.Metrics
	clock     func() time.Time
}

// NewDashboardWarmupJob wires dependencies for the warmup handler.
func NewDashboardWarmupJob(analyticsSvc *analytics.Service, logger *slog.Logger, metrics *jobmetrics.Metrics) *DashboardWarmupJob {
	return &DashboardWarmupJob{
		Analytics: analyticsSvc,
		Logger:    logger,
		Metrics:   metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Analytics == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.RunID == "" {
		payload.RunID = uuid.NewString()
	}

	tracker := j.metrics().Track(TaskDashboardWarmup)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(slog.String("run_id", payload.RunID))
	start := j.now()
	logger.Info("starting dashboard warmup")

	loaders := j.loaders()
	wanted := payload.Endpoints
	if len(wanted) == 0 {
		wanted = make([]string, 0, len(loaders))
		for name := range loaders {
			wanted = append(wanted, name)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(warmupConcurrency)
	for _, name := range wanted {
		loader, ok := loaders[name]
		if !ok {
			logger.Warn("unknown warmup endpoint", slog.String("endpoint", name))
			continue
		}
		name := name
		group.Go(func() error {
			loadCtx, cancel := context.WithTimeout(groupCtx, 30*time.Second)
			defer cancel()
			if err := loader(loadCtx); err != nil {
				// An empty or single-month store is a data condition, not a
				// warmup failure.
				var dataErr *analytics.DataError
				if errors.As(err, &dataErr) {
					logger.Info("endpoint skipped", slog.String("endpoint", name), slog.String("reason", dataErr.Message))
					return nil
				}
				logger.Error("warm endpoint", slog.String("endpoint", name), slog.Any("error", err))
				return err
			}
			return nil
		})
	}
	resultErr = group.Wait()
	if resultErr != nil {
		return resultErr
	}

	logger.Info("completed dashboard warmup", slog.Int("endpoints", len(wanted)), slog.Duration("duration", time.Since(start)))
	return resultErr
}

// loaders maps endpoint names to the service calls that populate their
// cache entries.
func (j *DashboardWarmupJob) loaders() map[string]func(context.Context) error {
	svc := j.Analytics
	return map[string]func(context.Context) error{
		"kpi_data": func(ctx context.Context) error {
			_, err := svc.GetKPIData(ctx)
			return err
		},
		"overall_sales_performance": func(ctx context.Context) error {
			_, err := svc.GetOverallSalesPerformance(ctx)
			return err
		},
		"sales_mix": func(ctx context.Context) error {
			_, err := svc.GetSalesMix(ctx)
			return err
		},
		"top_selling_items": func(ctx context.Context) error {
			_, err := svc.GetTopSellingItems(ctx)
			return err
		},
		"sales_by_item_type": func(ctx context.Context) error {
			_, err := svc.GetSalesByItemType(ctx)
			return err
		},
		"sales_transfer_ratio": func(ctx context.Context) error {
			_, err := svc.GetSalesTransferRatio(ctx)
			return err
		},
		"month_over_month_growth": func(ctx context.Context) error {
			_, err := svc.GetMonthOverMonthGrowth(ctx)
			return err
		},
		"inventory_turnover_rate": func(ctx context.Context) error {
			_, err := svc.GetInventoryTurnoverRate(ctx)
			return err
		},
		"sales_per_supplier": func(ctx context.Context) error {
			_, err := svc.GetSalesPerSupplier(ctx)
			return err
		},
		"top_items_by_transfers": func(ctx context.Context) error {
			_, err := svc.GetTopItemsByTransfers(ctx)
			return err
		},
		"sales_seasonality": func(ctx context.Context) error {
			_, err := svc.GetSalesSeasonality(ctx)
			return err
		},
	}
}

func (j *DashboardWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskDashboardWarmup))
	}
	return slog.Default().With(slog.String("job", TaskDashboardWarmup))
}

func (j *DashboardWarmupJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}

func (j *DashboardWarmupJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}

// CacheBumpJob invalidates cached chart responses after a reimport.
type CacheBumpJob struct {
	Cache  *analytics.Cache
	Logger *slog.Logger
}

// NewCacheBumpJob wires the cache dependency.
func NewCacheBumpJob(cache *analytics.Cache, logger *slog.Logger) *CacheBumpJob {
	return &CacheBumpJob{Cache: cache, Logger: logger}
}

// Handle processes cache bump tasks.
func (j *CacheBumpJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Cache == nil {
		return errors.New("cache bump: handler not configured")
	}
	if err := j.Cache.Bump(ctx); err != nil {
		return err
	}
	if j.Logger != nil {
		j.Logger.Info("cache version bumped", slog.String("job", TaskCacheBump))
	}
	return nil
}
