package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/kiranfor2004/sales-dashboard/internal/analytics"
	"github.com/kiranfor2004/sales-dashboard/internal/records"
	"github.com/kiranfor2004/sales-dashboard/internal/shared"
)

func warmupFixture(t *testing.T, rows []records.SalesRecord) (*analytics.Service, *miniredis.Miniredis, func()) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := analytics.NewCache(client, time.Minute)
	svc := analytics.NewService(records.NewMemoryRepository(rows), cache, nil)
	return svc, mr, func() {
		_ = client.Close()
		mr.Close()
	}
}

func warmupTask(t *testing.T, payload DashboardWarmupPayload) *asynq.Task {
	t.Helper()
	task, err := NewDashboardWarmupTask(payload)
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	return task
}

func TestDashboardWarmupPopulatesCache(t *testing.T) {
	rows := []records.SalesRecord{
		{
			ItemCode: "100001", ItemDescription: "CABERNET", ItemType: "WINE", Supplier: "ACME",
			Period: shared.Period{Year: 2020, Month: time.January}, RetailSales: 100, RetailTransfers: 10, WarehouseSales: 20,
		},
		{
			ItemCode: "100002", ItemDescription: "LAGER", ItemType: "BEER", Supplier: "BRAVO",
			Period: shared.Period{Year: 2020, Month: time.February}, RetailSales: 150, RetailTransfers: 15, WarehouseSales: 25,
		},
	}
	svc, mr, cleanup := warmupFixture(t, rows)
	defer cleanup()

	job := NewDashboardWarmupJob(svc, nil, nil)
	task := warmupTask(t, DashboardWarmupPayload{RunID: "test-run"})
	if err := job.Handle(context.Background(), task); err != nil {
		t.Fatalf("warmup failed: %v", err)
	}

	keys := mr.Keys()
	cached := 0
	for _, key := range keys {
		if key != "dashboard:version" {
			cached++
		}
	}
	if cached < 11 {
		t.Fatalf("expected all endpoints cached, got %d keys: %v", cached, keys)
	}
}

func TestDashboardWarmupSkipsDataConditions(t *testing.T) {
	// A single month cannot produce growth or seasonality, but that must
	// not fail the run.
	rows := []records.SalesRecord{
		{
			ItemCode: "100001", ItemDescription: "CABERNET", ItemType: "WINE", Supplier: "ACME",
			Period: shared.Period{Year: 2020, Month: time.January}, RetailSales: 100, RetailTransfers: 10, WarehouseSales: 20,
		},
	}
	svc, _, cleanup := warmupFixture(t, rows)
	defer cleanup()

	job := NewDashboardWarmupJob(svc, nil, nil)
	task := warmupTask(t, DashboardWarmupPayload{Endpoints: []string{"month_over_month_growth", "sales_seasonality", "sales_mix"}})
	if err := job.Handle(context.Background(), task); err != nil {
		t.Fatalf("warmup should skip data conditions, got: %v", err)
	}
}

func TestDashboardWarmupRejectsMalformedPayload(t *testing.T) {
	svc, _, cleanup := warmupFixture(t, nil)
	defer cleanup()

	job := NewDashboardWarmupJob(svc, nil, nil)
	task := asynq.NewTask(TaskDashboardWarmup, []byte("{not json"))
	if err := job.Handle(context.Background(), task); err != asynq.SkipRetry {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestWarmupPayloadRoundTrip(t *testing.T) {
	task := warmupTask(t, DashboardWarmupPayload{RunID: "abc", Endpoints: []string{"sales_mix"}})
	var decoded DashboardWarmupPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.RunID != "abc" || len(decoded.Endpoints) != 1 {
		t.Fatalf("unexpected payload %#v", decoded)
	}
}
