package analytichttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/kiranfor2004/sales-dashboard/internal/analytics"
	"github.com/kiranfor2004/sales-dashboard/internal/platform/httpx"
)

const requestTimeout = 10 * time.Second

// DashboardService defines the chart data contract used by the handler.
type DashboardService interface {
	Status(ctx context.Context) (analytics.Status, error)
	GetKPIData(ctx context.Context) (analytics.KPIData, error)
	GetOverallSalesPerformance(ctx context.Context) (analytics.OverallSalesPerformance, error)
	GetSalesMix(ctx context.Context) (analytics.SalesMix, error)
	GetTopSellingItems(ctx context.Context) (analytics.TopSellingItems, error)
	GetSalesByItemType(ctx context.Context) (analytics.SalesByItemType, error)
	GetSalesTransferRatio(ctx context.Context) (analytics.SalesTransferRatio, error)
	GetMonthOverMonthGrowth(ctx context.Context) (analytics.MonthOverMonthGrowth, error)
	GetInventoryTurnoverRate(ctx context.Context) (analytics.InventoryTurnoverRate, error)
	GetSalesPerSupplier(ctx context.Context) (analytics.SalesPerSupplier, error)
	GetTopItemsByTransfers(ctx context.Context) (analytics.TopItemsByTransfers, error)
	GetSalesSeasonality(ctx context.Context) (analytics.SalesSeasonality, error)
}

// Handler serves the dashboard chart endpoints.
type Handler struct {
	logger  *slog.Logger
	service DashboardService
}

// NewHandler constructs the dashboard HTTP handler.
func NewHandler(logger *slog.Logger, service DashboardService) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service}
}

// respond writes the payload, translating data-shaped failures into the
// chart error contract and everything else into an opaque 500.
func (h *Handler) respond(w http.ResponseWriter, op string, payload any, err error) {
	if err == nil {
		httpx.JSON(w, http.StatusOK, payload)
		return
	}
	var dataErr *analytics.DataError
	if errors.As(err, &dataErr) {
		httpx.ChartError(w, http.StatusOK, dataErr.Message)
		return
	}
	h.logger.Error("dashboard query failed", slog.String("op", op), slog.Any("error", err))
	httpx.ChartError(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	status, err := h.service.Status(ctx)
	h.respond(w, "status", status, err)
}

func (h *Handler) handleKPIData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetKPIData(ctx)
	h.respond(w, "kpi data", data, err)
}

func (h *Handler) handleOverallSalesPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetOverallSalesPerformance(ctx)
	h.respond(w, "overall sales performance", data, err)
}

func (h *Handler) handleSalesMix(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetSalesMix(ctx)
	h.respond(w, "sales mix", data, err)
}

func (h *Handler) handleTopSellingItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetTopSellingItems(ctx)
	h.respond(w, "top selling items", data, err)
}

func (h *Handler) handleSalesByItemType(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetSalesByItemType(ctx)
	h.respond(w, "sales by item type", data, err)
}

func (h *Handler) handleSalesTransferRatio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetSalesTransferRatio(ctx)
	h.respond(w, "sales transfer ratio", data, err)
}

func (h *Handler) handleMonthOverMonthGrowth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetMonthOverMonthGrowth(ctx)
	h.respond(w, "month over month growth", data, err)
}

func (h *Handler) handleInventoryTurnoverRate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetInventoryTurnoverRate(ctx)
	h.respond(w, "inventory turnover rate", data, err)
}

func (h *Handler) handleSalesPerSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetSalesPerSupplier(ctx)
	h.respond(w, "sales per supplier", data, err)
}

func (h *Handler) handleTopItemsByTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetTopItemsByTransfers(ctx)
	h.respond(w, "top items by transfers", data, err)
}

func (h *Handler) handleSalesSeasonality(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := h.service.GetSalesSeasonality(ctx)
	h.respond(w, "sales seasonality", data, err)
}
