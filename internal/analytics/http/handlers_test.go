package analytichttp

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kiranfor2004/sales-dashboard/internal/analytics"
	"github.com/kiranfor2004/sales-dashboard/internal/records"
	"github.com/kiranfor2004/sales-dashboard/internal/shared"
	_ "github.com/kiranfor2004/sales-dashboard/testing"
)

func fixtureRecord(code, itemType, supplier string, year int, month time.Month, retail, transfers, warehouse float64) records.SalesRecord {
	return records.SalesRecord{
		ItemCode:        code,
		ItemDescription: code + " DESCRIPTION",
		ItemType:        itemType,
		Supplier:        supplier,
		Period:          shared.Period{Year: year, Month: month},
		RetailSales:     retail,
		RetailTransfers: transfers,
		WarehouseSales:  warehouse,
	}
}

func newTestRouter(rows []records.SalesRecord) http.Handler {
	repo := records.NewMemoryRepository(rows)
	svc := analytics.NewService(repo, nil, nil)
	handler := NewHandler(nil, svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	router := newTestRouter([]records.SalesRecord{
		fixtureRecord("100001", "WINE", "ACME", 2020, time.January, 100, 10, 20),
	})

	rec := get(t, router, "/test")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body struct {
		Message    string `json:"message"`
		DataLoaded bool   `json:"data_loaded"`
		Records    int    `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.DataLoaded || body.Records != 1 {
		t.Fatalf("unexpected body %#v", body)
	}
}

func TestSalesMixEndpointAlignment(t *testing.T) {
	router := newTestRouter([]records.SalesRecord{
		fixtureRecord("100001", "WINE", "ACME", 2020, time.January, 500, 0, 0),
		fixtureRecord("100002", "BEER", "ACME", 2020, time.January, 300, 0, 0),
		fixtureRecord("100003", "LIQUOR", "BRAVO", 2020, time.January, 200, 0, 0),
	})

	rec := get(t, router, "/sales_mix")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body analytics.SalesMix
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.ItemTypes) != len(body.RetailSales) || len(body.ItemTypes) != len(body.Percentages) || len(body.ItemTypes) != len(body.Categories) {
		t.Fatalf("parallel arrays misaligned: %#v", body)
	}
	wantPcts := []float64{50, 30, 20}
	for i, want := range wantPcts {
		if math.Abs(body.Percentages[i]-want) > 1e-9 {
			t.Fatalf("percentage %d: got %v want %v", i, body.Percentages[i], want)
		}
	}
}

func TestEmptyStoreReturnsChartError(t *testing.T) {
	router := newTestRouter(nil)

	rec := get(t, router, "/sales_mix")
	if rec.Code != http.StatusOK {
		t.Fatalf("data-shaped failures must keep status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "No data available" {
		t.Fatalf("unexpected error payload %#v", body)
	}
}

func TestGrowthEndpointInsufficientData(t *testing.T) {
	router := newTestRouter([]records.SalesRecord{
		fixtureRecord("100001", "WINE", "ACME", 2020, time.January, 100, 0, 0),
	})

	rec := get(t, router, "/month_over_month_growth")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Insufficient data for growth calculation" {
		t.Fatalf("unexpected error payload %#v", body)
	}
}

func TestTopSellingItemsEndpoint(t *testing.T) {
	router := newTestRouter([]records.SalesRecord{
		fixtureRecord("100001", "WINE", "ACME", 2020, time.January, 300, 0, 0),
		fixtureRecord("100002", "BEER", "ACME", 2020, time.January, 500, 0, 0),
	})

	rec := get(t, router, "/top_selling_items")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body analytics.TopSellingItems
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.BestItem != "100002" || body.BestSales != 500 {
		t.Fatalf("unexpected best item %s (%v)", body.BestItem, body.BestSales)
	}
	if len(body.ItemCodes) != 2 || body.ItemCodes[1] != "100002" {
		t.Fatalf("expected ascending order ending with the best item, got %v", body.ItemCodes)
	}
}
