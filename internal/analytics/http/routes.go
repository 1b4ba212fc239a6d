package analytichttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the dashboard chart endpoints onto the router.
// The caller mounts the router under /api.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(120, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/test", h.handleStatus)
	r.Get("/kpi_data", h.handleKPIData)
	r.Get("/overall_sales_performance", h.handleOverallSalesPerformance)
	r.Get("/sales_mix", h.handleSalesMix)
	r.Get("/sales_by_item_type", h.handleSalesByItemType)
	r.Get("/sales_transfer_ratio", h.handleSalesTransferRatio)
	r.Get("/sales_per_supplier", h.handleSalesPerSupplier)

	// Item-level rankings and multi-month series walk the full snapshot
	// even on a cache miss, so they sit behind the limiter.
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/top_selling_items", h.handleTopSellingItems)
		gr.Get("/month_over_month_growth", h.handleMonthOverMonthGrowth)
		gr.Get("/inventory_turnover_rate", h.handleInventoryTurnoverRate)
		gr.Get("/top_items_by_transfers", h.handleTopItemsByTransfers)
		gr.Get("/sales_seasonality", h.handleSalesSeasonality)
	})
}
