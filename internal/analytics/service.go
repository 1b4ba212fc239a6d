package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kiranfor2004/sales-dashboard/internal/records"
	"github.com/kiranfor2004/sales-dashboard/internal/shared"
)

// Service runs the read-only dashboard pipelines: snapshot, aggregate,
// derive, classify, assemble. Every request recomputes from the record
// store snapshot; the cache layer only short-circuits identical requests.
type Service struct {
	repo   records.Repository
	cache  *Cache
	logger *slog.Logger
}

// NewService wires a record repository with an optional cache helper.
func NewService(repo records.Repository, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Cache exposes the cache helper for warmup jobs and invalidation hooks.
func (s *Service) Cache() *Cache {
	return s.cache
}

func (s *Service) snapshot(ctx context.Context) ([]records.SalesRecord, error) {
	rows, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}
	if len(rows) == 0 {
		return nil, noData("No data available")
	}
	return rows, nil
}

// cached runs loader through the versioned response cache when one is
// configured.
func cached[T any](ctx context.Context, s *Service, name string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if s.cache == nil {
		return loader(ctx)
	}
	key, err := s.cache.BuildKey(ctx, endpointKey(name)...)
	if err != nil {
		return zero, err
	}
	var out T
	wrapped := func(ctx context.Context) (interface{}, error) { return loader(ctx) }
	if err := s.cache.FetchJSON(ctx, key, &out, wrapped); err != nil {
		return zero, err
	}
	return out, nil
}

// itemDims resolves per-item description and type for item-code buckets.
type itemDims struct {
	Description string
	ItemType    string
}

func indexItems(rows []records.SalesRecord) map[string]itemDims {
	index := make(map[string]itemDims, len(rows))
	for _, row := range rows {
		if _, ok := index[row.ItemCode]; !ok {
			index[row.ItemCode] = itemDims{Description: row.ItemDescription, ItemType: row.ItemType}
		}
	}
	return index
}

func channelTotals(rows []records.SalesRecord) Channels {
	var totals Channels
	for _, row := range rows {
		totals.RetailSales += row.RetailSales
		totals.RetailTransfers += row.RetailTransfers
		totals.WarehouseSales += row.WarehouseSales
	}
	return totals
}

func monthlyBuckets(rows []records.SalesRecord) ([]Bucket, error) {
	buckets, err := Aggregate(rows, ByPeriod)
	if err != nil {
		return nil, err
	}
	SortChronologically(buckets)
	return buckets, nil
}

// Status reports whether the record store holds any rows.
func (s *Service) Status(ctx context.Context) (Status, error) {
	rows, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("analytics: snapshot: %w", err)
	}
	return Status{Message: "Backend is working", DataLoaded: len(rows) > 0, Records: len(rows)}, nil
}

// GetOverallSalesPerformance shares the grand total across the three
// revenue streams.
func (s *Service) GetOverallSalesPerformance(ctx context.Context) (OverallSalesPerformance, error) {
	return cached(ctx, s, "overall_sales_performance", func(ctx context.Context) (OverallSalesPerformance, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return OverallSalesPerformance{}, err
		}
		totals := channelTotals(rows)
		grand := totals.Sum()

		amounts := []float64{totals.RetailSales, totals.RetailTransfers, totals.WarehouseSales}
		percentages := make([]float64, len(amounts))
		if grand > 0 {
			for i, amount := range amounts {
				percentages[i] = amount / grand * 100
			}
		}
		return OverallSalesPerformance{
			RevenueStreams: []string{"Retail Sales", "Retail Transfers", "Warehouse Sales"},
			TotalAmounts:   amounts,
			Percentages:    percentages,
			GrandTotal:     grand,
			Summary: PerformanceSummary{
				TotalRetailSales:     totals.RetailSales,
				TotalRetailTransfers: totals.RetailTransfers,
				TotalWarehouseSales:  totals.WarehouseSales,
				GrandTotal:           grand,
			},
		}, nil
	})
}

// GetSalesMix shares retail sales across item types with contribution
// categories.
func (s *Service) GetSalesMix(ctx context.Context) (SalesMix, error) {
	return cached(ctx, s, "sales_mix", func(ctx context.Context) (SalesMix, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return SalesMix{}, err
		}
		buckets, err := Aggregate(rows, ByItemType)
		if err != nil {
			return SalesMix{}, err
		}
		SortByRetailDesc(buckets)

		totalRetail := 0.0
		for _, b := range buckets {
			totalRetail += b.RetailSales
		}

		mix := SalesMix{
			ItemTypes:        make([]string, 0, len(buckets)),
			RetailSales:      make([]float64, 0, len(buckets)),
			Percentages:      make([]float64, 0, len(buckets)),
			Categories:       make([]string, 0, len(buckets)),
			TotalRetailSales: totalRetail,
		}
		for _, b := range buckets {
			pct := 0.0
			if totalRetail > 0 {
				pct = b.RetailSales / totalRetail * 100
			}
			mix.ItemTypes = append(mix.ItemTypes, b.Key)
			mix.RetailSales = append(mix.RetailSales, b.RetailSales)
			mix.Percentages = append(mix.Percentages, pct)
			mix.Categories = append(mix.Categories, MixCategory.Classify(pct))
		}
		mix.TopContributor = mix.ItemTypes[0]
		mix.TopPercentage = mix.Percentages[0]
		return mix, nil
	})
}

// GetTopSellingItems ranks the ten best items by retail sales. Arrays come
// back in ascending order for horizontal bar rendering, with ranks aligned.
func (s *Service) GetTopSellingItems(ctx context.Context) (TopSellingItems, error) {
	return cached(ctx, s, "top_selling_items", func(ctx context.Context) (TopSellingItems, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return TopSellingItems{}, err
		}
		buckets, err := Aggregate(rows, ByItemCode)
		if err != nil {
			return TopSellingItems{}, err
		}
		buckets = Filter(buckets, func(b Bucket) bool { return b.RetailSales > 0 })
		if len(buckets) == 0 {
			return TopSellingItems{}, noData("No items with sales data found")
		}
		SortByRetailDesc(buckets)
		top := TopN(buckets, 10)

		dims := indexItems(rows)
		totalRetail := channelTotals(rows).RetailSales
		topTotal := 0.0
		ranked := make([]rankedItem, 0, len(top))
		for i, b := range top {
			topTotal += b.RetailSales
			dim := dims[b.Key]
			ranked = append(ranked, rankedItem{
				Code:        b.Key,
				Description: dim.Description,
				ItemType:    dim.ItemType,
				RetailSales: b.RetailSales,
				Rank:        i + 1,
				Tier:        PerformanceTier(i+1, len(top)),
				Label:       displayLabel(b.Key, dim.Description, 25),
			})
		}

		topPct := 0.0
		if totalRetail > 0 {
			topPct = topTotal / totalRetail * 100
		}
		resp := TopSellingItems{
			ItemCodes:        make([]string, 0, len(ranked)),
			DisplayLabels:    make([]string, 0, len(ranked)),
			ItemDescriptions: make([]string, 0, len(ranked)),
			RetailSales:      make([]float64, 0, len(ranked)),
			Ranks:            make([]int, 0, len(ranked)),
			PerformanceTiers: make([]string, 0, len(ranked)),
			Top10Total:       topTotal,
			Top10Percentage:  topPct,
			TotalRetailSales: totalRetail,
			BestItem:         ranked[0].Code,
			BestSales:        ranked[0].RetailSales,
		}
		for _, item := range reverseRanked(ranked) {
			resp.ItemCodes = append(resp.ItemCodes, item.Code)
			resp.DisplayLabels = append(resp.DisplayLabels, item.Label)
			resp.ItemDescriptions = append(resp.ItemDescriptions, item.Description)
			resp.RetailSales = append(resp.RetailSales, item.RetailSales)
			resp.Ranks = append(resp.Ranks, item.Rank)
			resp.PerformanceTiers = append(resp.PerformanceTiers, item.Tier)
		}
		return resp, nil
	})
}

// GetKPIData compares the latest month against the previous calendar month.
// A previous month absent from the store sums to zero by policy.
func (s *Service) GetKPIData(ctx context.Context) (KPIData, error) {
	return cached(ctx, s, "kpi_data", func(ctx context.Context) (KPIData, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return KPIData{}, err
		}
		latest := rows[0].Period
		for _, row := range rows {
			if latest.Before(row.Period) {
				latest = row.Period
			}
		}
		previous := latest.Prev()

		sum := func(p shared.Period) (retail, warehouse float64) {
			for _, row := range rows {
				if row.Period == p {
					retail += row.RetailSales
					warehouse += row.WarehouseSales
				}
			}
			return retail, warehouse
		}
		curRetail, curWarehouse := sum(latest)
		prevRetail, prevWarehouse := sum(previous)

		return KPIData{
			Labels: []string{"Retail Sales", "Warehouse Sales"},
			CurrentMonth: MonthSnapshot{
				Name:   latest.String(),
				Values: []float64{curRetail, curWarehouse},
			},
			PreviousMonth: MonthSnapshot{
				Name:   previous.String(),
				Values: []float64{prevRetail, prevWarehouse},
			},
		}, nil
	})
}

// GetSalesByItemType breaks every channel down per item type, largest
// total first.
func (s *Service) GetSalesByItemType(ctx context.Context) (SalesByItemType, error) {
	return cached(ctx, s, "sales_by_item_type", func(ctx context.Context) (SalesByItemType, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return SalesByItemType{}, err
		}
		buckets, err := Aggregate(rows, ByItemType)
		if err != nil {
			return SalesByItemType{}, err
		}
		resp := SalesByItemType{
			ItemTypes:       make([]string, 0, len(buckets)),
			RetailSales:     make([]float64, 0, len(buckets)),
			RetailTransfers: make([]float64, 0, len(buckets)),
			WarehouseSales:  make([]float64, 0, len(buckets)),
			TotalSales:      make([]float64, 0, len(buckets)),
		}
		for _, b := range buckets {
			resp.ItemTypes = append(resp.ItemTypes, b.Key)
			resp.RetailSales = append(resp.RetailSales, b.RetailSales)
			resp.RetailTransfers = append(resp.RetailTransfers, b.RetailTransfers)
			resp.WarehouseSales = append(resp.WarehouseSales, b.WarehouseSales)
			resp.TotalSales = append(resp.TotalSales, b.Total)
		}
		return resp, nil
	})
}

// GetSalesTransferRatio tracks transfers as a share of retail activity,
// overall and per month.
func (s *Service) GetSalesTransferRatio(ctx context.Context) (SalesTransferRatio, error) {
	return cached(ctx, s, "sales_transfer_ratio", func(ctx context.Context) (SalesTransferRatio, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return SalesTransferRatio{}, err
		}
		totals := channelTotals(rows)
		overall := TransferShare(totals.RetailTransfers, totals.RetailSales)

		monthly, err := monthlyBuckets(rows)
		if err != nil {
			return SalesTransferRatio{}, err
		}
		resp := SalesTransferRatio{
			OverallTransferRatio:   overall,
			TotalRetailSales:       totals.RetailSales,
			TotalRetailTransfers:   totals.RetailTransfers,
			TotalRetailActivity:    totals.RetailSales + totals.RetailTransfers,
			MonthlyPeriods:         make([]string, 0, len(monthly)),
			MonthlyRatios:          make([]float64, 0, len(monthly)),
			MonthlyRetailSales:     make([]float64, 0, len(monthly)),
			MonthlyRetailTransfers: make([]float64, 0, len(monthly)),
			EfficiencyLevels:       make([]string, 0, len(monthly)),
			EfficiencyRating:       EfficiencyLevel.Classify(overall),
		}
		for _, b := range monthly {
			share := TransferShare(b.RetailTransfers, b.RetailSales)
			resp.MonthlyPeriods = append(resp.MonthlyPeriods, b.Key)
			resp.MonthlyRatios = append(resp.MonthlyRatios, share)
			resp.MonthlyRetailSales = append(resp.MonthlyRetailSales, b.RetailSales)
			resp.MonthlyRetailTransfers = append(resp.MonthlyRetailTransfers, b.RetailTransfers)
			resp.EfficiencyLevels = append(resp.EfficiencyLevels, EfficiencyLevel.Classify(share))
		}

		resp.Trend = "Decreasing"
		if len(monthly) > 1 && resp.MonthlyRatios[len(monthly)-1] > resp.MonthlyRatios[0] {
			resp.Trend = "Increasing"
		}
		return resp, nil
	})
}

// GetMonthOverMonthGrowth computes the chronological growth series.
// Requires at least two months of data.
func (s *Service) GetMonthOverMonthGrowth(ctx context.Context) (MonthOverMonthGrowth, error) {
	return cached(ctx, s, "month_over_month_growth", func(ctx context.Context) (MonthOverMonthGrowth, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return MonthOverMonthGrowth{}, err
		}
		monthly, err := monthlyBuckets(rows)
		if err != nil {
			return MonthOverMonthGrowth{}, err
		}
		if len(monthly) < 2 {
			return MonthOverMonthGrowth{}, insufficientData("Insufficient data for growth calculation")
		}

		totals := make([]float64, len(monthly))
		for i, b := range monthly {
			totals[i] = b.Total
		}
		growth := GrowthSeries(totals)

		resp := MonthOverMonthGrowth{
			Periods:            make([]string, 0, len(growth)),
			TotalSales:         make([]float64, 0, len(growth)),
			PreviousMonthSales: make([]float64, 0, len(growth)),
			GrowthAmounts:      make([]float64, 0, len(growth)),
			GrowthPercentages:  make([]float64, 0, len(growth)),
			GrowthCategories:   make([]string, 0, len(growth)),
		}
		for i, pct := range growth {
			cur, prev := totals[i+1], totals[i]
			resp.Periods = append(resp.Periods, monthly[i+1].Key)
			resp.TotalSales = append(resp.TotalSales, cur)
			resp.PreviousMonthSales = append(resp.PreviousMonthSales, prev)
			resp.GrowthAmounts = append(resp.GrowthAmounts, cur-prev)
			resp.GrowthPercentages = append(resp.GrowthPercentages, pct)
			resp.GrowthCategories = append(resp.GrowthCategories, GrowthCategory.Classify(pct))
		}

		resp.AverageGrowthRate = Mean(growth)
		resp.LatestGrowthRate = growth[len(growth)-1]
		resp.GrowthConsistency = PositiveShare(growth)
		resp.GrowthVolatility = CoefficientOfVariation(growth)
		resp.PositiveGrowthMonths = CountPositive(growth)
		resp.TotalComparisonMonths = len(growth)
		resp.TrendDirection = "Negative"
		if resp.AverageGrowthRate > 0 {
			resp.TrendDirection = "Positive"
		}
		resp.LatestTrend = GrowthCategory.Classify(resp.LatestGrowthRate)
		return resp, nil
	})
}

// GetInventoryTurnoverRate rates movement per item type against the
// observed month count.
func (s *Service) GetInventoryTurnoverRate(ctx context.Context) (InventoryTurnoverRate, error) {
	return cached(ctx, s, "inventory_turnover_rate", func(ctx context.Context) (InventoryTurnoverRate, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return InventoryTurnoverRate{}, err
		}
		byType, err := Aggregate(rows, ByItemType)
		if err != nil {
			return InventoryTurnoverRate{}, err
		}
		monthly, err := monthlyBuckets(rows)
		if err != nil {
			return InventoryTurnoverRate{}, err
		}
		months := len(monthly)

		resp := InventoryTurnoverRate{
			ItemTypes:            make([]string, 0, len(byType)),
			TotalMovements:       make([]float64, 0, len(byType)),
			MonthlyAvgMovements:  make([]float64, 0, len(byType)),
			TurnoverRatings:      make([]string, 0, len(byType)),
			RetailSales:          make([]float64, 0, len(byType)),
			RetailTransfers:      make([]float64, 0, len(byType)),
			WarehouseSales:       make([]float64, 0, len(byType)),
			MonthlyPeriods:       make([]string, 0, months),
			MonthlyTurnovers:     make([]float64, 0, months),
			UniqueMonthsAnalyzed: months,
			TotalCategories:      len(byType),
		}

		grand := 0.0
		for _, b := range byType {
			avg, err := MonthlyAverage(b.Total, months)
			if err != nil {
				return InventoryTurnoverRate{}, insufficientData("No full month of movement to average")
			}
			rating := TurnoverRating.Classify(avg)
			grand += b.Total
			resp.ItemTypes = append(resp.ItemTypes, b.Key)
			resp.TotalMovements = append(resp.TotalMovements, b.Total)
			resp.MonthlyAvgMovements = append(resp.MonthlyAvgMovements, avg)
			resp.TurnoverRatings = append(resp.TurnoverRatings, rating)
			resp.RetailSales = append(resp.RetailSales, b.RetailSales)
			resp.RetailTransfers = append(resp.RetailTransfers, b.RetailTransfers)
			resp.WarehouseSales = append(resp.WarehouseSales, b.WarehouseSales)
			if rating == "High Turnover" {
				resp.HighTurnoverCategories++
			}
		}
		for _, b := range monthly {
			resp.MonthlyPeriods = append(resp.MonthlyPeriods, b.Key)
			resp.MonthlyTurnovers = append(resp.MonthlyTurnovers, b.Total)
		}

		resp.TotalTurnover = grand
		if avg, err := MonthlyAverage(grand, months); err == nil {
			resp.AverageMonthlyTurnover = avg
		}
		resp.TopTurnoverCategory = byType[0].Key
		resp.LowestTurnoverCategory = byType[len(byType)-1].Key
		return resp, nil
	})
}

// GetSalesPerSupplier shares the market across suppliers with partnership
// tiers.
func (s *Service) GetSalesPerSupplier(ctx context.Context) (SalesPerSupplier, error) {
	return cached(ctx, s, "sales_per_supplier", func(ctx context.Context) (SalesPerSupplier, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return SalesPerSupplier{}, err
		}
		buckets, err := Aggregate(rows, BySupplier)
		if err != nil {
			return SalesPerSupplier{}, err
		}

		grand := 0.0
		for _, b := range buckets {
			grand += b.Total
		}
		resp := SalesPerSupplier{
			Suppliers:        make([]string, 0, len(buckets)),
			TotalSales:       make([]float64, 0, len(buckets)),
			RetailSales:      make([]float64, 0, len(buckets)),
			RetailTransfers:  make([]float64, 0, len(buckets)),
			WarehouseSales:   make([]float64, 0, len(buckets)),
			MarketShares:     make([]float64, 0, len(buckets)),
			PartnershipTiers: make([]string, 0, len(buckets)),
			TotalMarketSales: grand,
			TotalSuppliers:   len(buckets),
		}
		for _, b := range buckets {
			tier := PartnershipTier.Classify(b.Share)
			resp.Suppliers = append(resp.Suppliers, b.Key)
			resp.TotalSales = append(resp.TotalSales, b.Total)
			resp.RetailSales = append(resp.RetailSales, b.RetailSales)
			resp.RetailTransfers = append(resp.RetailTransfers, b.RetailTransfers)
			resp.WarehouseSales = append(resp.WarehouseSales, b.WarehouseSales)
			resp.MarketShares = append(resp.MarketShares, b.Share)
			resp.PartnershipTiers = append(resp.PartnershipTiers, tier)
			switch tier {
			case "Strategic Partner":
				resp.StrategicPartnersCount++
			case "Key Partner":
				resp.KeyPartnersCount++
			}
		}

		if len(buckets) > 0 {
			resp.AverageSalesPerSupplier = grand / float64(len(buckets))
			resp.TopSupplier = buckets[0].Key
			resp.TopSupplierSales = buckets[0].Total
			resp.TopSupplierShare = buckets[0].Share
		}
		top10 := TopN(buckets, 10)
		top10Total := 0.0
		for _, b := range top10 {
			top10Total += b.Total
		}
		if grand > 0 {
			resp.Top10MarketShare = top10Total / grand * 100
		}
		resp.SupplierDiversity = SupplierDiversity(len(buckets))
		return resp, nil
	})
}

// GetTopItemsByTransfers ranks the fifteen most transferred items with
// logistics classifications.
func (s *Service) GetTopItemsByTransfers(ctx context.Context) (TopItemsByTransfers, error) {
	return cached(ctx, s, "top_items_by_transfers", func(ctx context.Context) (TopItemsByTransfers, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return TopItemsByTransfers{}, err
		}
		buckets, err := Aggregate(rows, ByItemCode)
		if err != nil {
			return TopItemsByTransfers{}, err
		}
		buckets = Filter(buckets, func(b Bucket) bool { return b.RetailTransfers > 0 })
		if len(buckets) == 0 {
			return TopItemsByTransfers{}, noData("No items with retail transfers found")
		}
		SortByTransfersDesc(buckets)
		top := TopN(buckets, 15)

		dims := indexItems(rows)
		totalTransfers := channelTotals(rows).RetailTransfers
		topTotal := 0.0
		byType := make(map[string]float64)
		ranked := make([]rankedItem, 0, len(top))
		for _, b := range top {
			dim := dims[b.Key]
			efficiency := TransferShare(b.RetailTransfers, b.RetailSales)
			logistics := LogisticsPerformance.Classify(efficiency)
			topTotal += b.RetailTransfers
			byType[dim.ItemType] += b.RetailTransfers
			ranked = append(ranked, rankedItem{
				Code:        b.Key,
				Description: dim.Description,
				ItemType:    dim.ItemType,
				RetailSales: b.RetailSales,
				Transfers:   b.RetailTransfers,
				Efficiency:  efficiency,
				Logistics:   logistics,
				Label:       displayLabel(b.Key, dim.Description, 20),
			})
		}

		resp := TopItemsByTransfers{
			ItemCodes:             make([]string, 0, len(ranked)),
			DisplayLabels:         make([]string, 0, len(ranked)),
			ItemDescriptions:      make([]string, 0, len(ranked)),
			ItemTypes:             make([]string, 0, len(ranked)),
			RetailTransfers:       make([]float64, 0, len(ranked)),
			RetailSales:           make([]float64, 0, len(ranked)),
			TransferEfficiencies:  make([]float64, 0, len(ranked)),
			LogisticsPerformances: make([]string, 0, len(ranked)),
			TotalRetailTransfers:  totalTransfers,
			Top15TransfersTotal:   topTotal,
			TopTransferItem:       top[0].Key,
			TopTransferAmount:     top[0].RetailTransfers,
			TotalTransferItems:    len(buckets),
		}
		if totalTransfers > 0 {
			resp.Top15Percentage = topTotal / totalTransfers * 100
		}
		for _, item := range ranked {
			if item.Logistics == "High Transfer Focus" || item.Logistics == "Moderate Transfer Focus" {
				resp.TransferFocusedItems++
			}
		}
		for _, item := range reverseRanked(ranked) {
			resp.ItemCodes = append(resp.ItemCodes, item.Code)
			resp.DisplayLabels = append(resp.DisplayLabels, item.Label)
			resp.ItemDescriptions = append(resp.ItemDescriptions, item.Description)
			resp.ItemTypes = append(resp.ItemTypes, item.ItemType)
			resp.RetailTransfers = append(resp.RetailTransfers, item.Transfers)
			resp.RetailSales = append(resp.RetailSales, item.RetailSales)
			resp.TransferEfficiencies = append(resp.TransferEfficiencies, item.Efficiency)
			resp.LogisticsPerformances = append(resp.LogisticsPerformances, item.Logistics)
		}

		dominant, dominantTotal := "", -1.0
		for itemType, total := range byType {
			if total > dominantTotal || (total == dominantTotal && itemType < dominant) {
				dominant, dominantTotal = itemType, total
			}
		}
		resp.DominantTransferType = dominant
		return resp, nil
	})
}

// GetSalesSeasonality builds the stacked per-period channel series with
// peak, valley, and trend annotations. Requires at least two months.
func (s *Service) GetSalesSeasonality(ctx context.Context) (SalesSeasonality, error) {
	return cached(ctx, s, "sales_seasonality", func(ctx context.Context) (SalesSeasonality, error) {
		rows, err := s.snapshot(ctx)
		if err != nil {
			return SalesSeasonality{}, err
		}
		monthly, err := monthlyBuckets(rows)
		if err != nil {
			return SalesSeasonality{}, err
		}
		if len(monthly) < 2 {
			return SalesSeasonality{}, insufficientData("Insufficient data for seasonality analysis")
		}

		resp := SalesSeasonality{
			Periods:         make([]string, 0, len(monthly)),
			RetailSales:     make([]float64, 0, len(monthly)),
			RetailTransfers: make([]float64, 0, len(monthly)),
			WarehouseSales:  make([]float64, 0, len(monthly)),
			TotalSales:      make([]float64, 0, len(monthly)),
			MonthsAnalyzed:  len(monthly),
		}
		totals := make([]float64, len(monthly))
		byPeriod := make(map[string]float64, len(monthly))
		peak, valley := 0, 0
		for i, b := range monthly {
			totals[i] = b.Total
			byPeriod[b.Key] = b.Total
			resp.Periods = append(resp.Periods, b.Key)
			resp.RetailSales = append(resp.RetailSales, b.RetailSales)
			resp.RetailTransfers = append(resp.RetailTransfers, b.RetailTransfers)
			resp.WarehouseSales = append(resp.WarehouseSales, b.WarehouseSales)
			resp.TotalSales = append(resp.TotalSales, b.Total)
			if b.Total > totals[peak] {
				peak = i
			}
			if b.Total < totals[valley] {
				valley = i
			}
		}
		resp.PeakMonth = monthly[peak].Key
		resp.PeakValue = totals[peak]
		resp.ValleyMonth = monthly[valley].Key
		resp.ValleyValue = totals[valley]

		resp.AverageMonthlySales = Mean(totals)
		latest := len(monthly) - 1
		resp.SeasonalityIndex = SeasonalityIndex(totals[latest], resp.AverageMonthlySales)
		resp.SeasonalPerformance = SeasonalPerformance.Classify(resp.SeasonalityIndex)

		switch {
		case totals[latest] > totals[latest-1]:
			resp.Trend = "Rising"
		case totals[latest] < totals[latest-1]:
			resp.Trend = "Falling"
		default:
			resp.Trend = "Stable"
		}

		latestPeriod, err := shared.ParsePeriod(monthly[latest].Key)
		if err == nil {
			if baseline, ok := byPeriod[latestPeriod.YearAgo().String()]; ok {
				resp.YearOverYearGrowth = PercentChange(totals[latest], baseline)
			}
		}

		grand := 0.0
		var channels Channels
		for _, b := range monthly {
			grand += b.Total
			channels.RetailSales += b.RetailSales
			channels.RetailTransfers += b.RetailTransfers
			channels.WarehouseSales += b.WarehouseSales
		}
		if grand > 0 {
			resp.RetailContribution = channels.RetailSales / grand * 100
			resp.TransfersContribution = channels.RetailTransfers / grand * 100
			resp.WarehouseContribution = channels.WarehouseSales / grand * 100
		}
		return resp, nil
	})
}
