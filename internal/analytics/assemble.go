package analytics

// Wire contracts for the chart frontend. Field names and the index
// alignment of the parallel arrays are binding: item_types[i] pairs with
// retail_sales[i] and every other array at i. Pipelines build ordered row
// structs internally and transpose here as the final serialization step.

// Status reports store liveness for the /api/test probe.
type Status struct {
	Message    string `json:"message"`
	DataLoaded bool   `json:"data_loaded"`
	Records    int    `json:"records"`
}

// MonthSnapshot carries one month's KPI values, index-aligned with the
// response labels.
type MonthSnapshot struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// KPIData compares the latest month against the previous calendar month.
type KPIData struct {
	Labels        []string      `json:"labels"`
	CurrentMonth  MonthSnapshot `json:"current_month"`
	PreviousMonth MonthSnapshot `json:"previous_month"`
}

// PerformanceSummary repeats the channel totals as a nested block.
type PerformanceSummary struct {
	TotalRetailSales     float64 `json:"total_retail_sales"`
	TotalRetailTransfers float64 `json:"total_retail_transfers"`
	TotalWarehouseSales  float64 `json:"total_warehouse_sales"`
	GrandTotal           float64 `json:"grand_total"`
}

// OverallSalesPerformance breaks the grand total down by revenue stream.
type OverallSalesPerformance struct {
	RevenueStreams []string           `json:"revenue_streams"`
	TotalAmounts   []float64          `json:"total_amounts"`
	Percentages    []float64          `json:"percentages"`
	GrandTotal     float64            `json:"grand_total"`
	Summary        PerformanceSummary `json:"summary"`
}

// SalesMix shares retail sales across item types.
type SalesMix struct {
	ItemTypes        []string  `json:"item_types"`
	RetailSales      []float64 `json:"retail_sales"`
	Percentages      []float64 `json:"percentages"`
	Categories       []string  `json:"categories"`
	TotalRetailSales float64   `json:"total_retail_sales"`
	TopContributor   string    `json:"top_contributor"`
	TopPercentage    float64   `json:"top_percentage"`
}

// TopSellingItems ranks the ten best items by retail sales.
type TopSellingItems struct {
	ItemCodes        []string  `json:"item_codes"`
	DisplayLabels    []string  `json:"display_labels"`
	ItemDescriptions []string  `json:"item_descriptions"`
	RetailSales      []float64 `json:"retail_sales"`
	Ranks            []int     `json:"ranks"`
	PerformanceTiers []string  `json:"performance_tiers"`
	Top10Total       float64   `json:"top_10_total"`
	Top10Percentage  float64   `json:"top_10_percentage"`
	TotalRetailSales float64   `json:"total_retail_sales"`
	BestItem         string    `json:"best_item"`
	BestSales        float64   `json:"best_sales"`
}

// SalesByItemType breaks every channel down per item type.
type SalesByItemType struct {
	ItemTypes       []string  `json:"item_types"`
	RetailSales     []float64 `json:"retail_sales"`
	RetailTransfers []float64 `json:"retail_transfers"`
	WarehouseSales  []float64 `json:"warehouse_sales"`
	TotalSales      []float64 `json:"total_sales"`
}

// SalesTransferRatio tracks transfers as a share of retail activity.
type SalesTransferRatio struct {
	OverallTransferRatio   float64   `json:"overall_transfer_ratio"`
	TotalRetailSales       float64   `json:"total_retail_sales"`
	TotalRetailTransfers   float64   `json:"total_retail_transfers"`
	TotalRetailActivity    float64   `json:"total_retail_activity"`
	MonthlyPeriods         []string  `json:"monthly_periods"`
	MonthlyRatios          []float64 `json:"monthly_ratios"`
	MonthlyRetailSales     []float64 `json:"monthly_retail_sales"`
	MonthlyRetailTransfers []float64 `json:"monthly_retail_transfers"`
	EfficiencyLevels       []string  `json:"efficiency_levels"`
	EfficiencyRating       string    `json:"efficiency_rating"`
	Trend                  string    `json:"trend"`
}

// MonthOverMonthGrowth is the chronological growth series with summary
// scalars.
type MonthOverMonthGrowth struct {
	Periods                []string  `json:"periods"`
	TotalSales             []float64 `json:"total_sales"`
	PreviousMonthSales     []float64 `json:"previous_month_sales"`
	GrowthAmounts          []float64 `json:"growth_amounts"`
	GrowthPercentages      []float64 `json:"growth_percentages"`
	GrowthCategories       []string  `json:"growth_categories"`
	AverageGrowthRate      float64   `json:"average_growth_rate"`
	LatestGrowthRate       float64   `json:"latest_growth_rate"`
	GrowthConsistency      float64   `json:"growth_consistency"`
	GrowthVolatility       float64   `json:"growth_volatility"`
	PositiveGrowthMonths   int       `json:"positive_growth_months"`
	TotalComparisonMonths  int       `json:"total_comparison_months"`
	TrendDirection         string    `json:"trend_direction"`
	LatestTrend            string    `json:"latest_trend"`
}

// InventoryTurnoverRate rates movement per item type against the number of
// observed months.
type InventoryTurnoverRate struct {
	ItemTypes              []string  `json:"item_types"`
	TotalMovements         []float64 `json:"total_movements"`
	MonthlyAvgMovements    []float64 `json:"monthly_avg_movements"`
	TurnoverRatings        []string  `json:"turnover_ratings"`
	RetailSales            []float64 `json:"retail_sales"`
	RetailTransfers        []float64 `json:"retail_transfers"`
	WarehouseSales         []float64 `json:"warehouse_sales"`
	MonthlyPeriods         []string  `json:"monthly_periods"`
	MonthlyTurnovers       []float64 `json:"monthly_turnovers"`
	TotalTurnover          float64   `json:"total_turnover"`
	AverageMonthlyTurnover float64   `json:"average_monthly_turnover"`
	UniqueMonthsAnalyzed   int       `json:"unique_months_analyzed"`
	TopTurnoverCategory    string    `json:"top_turnover_category"`
	LowestTurnoverCategory string    `json:"lowest_turnover_category"`
	HighTurnoverCategories int       `json:"high_turnover_categories"`
	TotalCategories        int       `json:"total_categories"`
}

// SalesPerSupplier shares the market across suppliers with partnership
// tiers.
type SalesPerSupplier struct {
	Suppliers              []string  `json:"suppliers"`
	TotalSales             []float64 `json:"total_sales"`
	RetailSales            []float64 `json:"retail_sales"`
	RetailTransfers        []float64 `json:"retail_transfers"`
	WarehouseSales         []float64 `json:"warehouse_sales"`
	MarketShares           []float64 `json:"market_shares"`
	PartnershipTiers       []string  `json:"partnership_tiers"`
	TotalMarketSales       float64   `json:"total_market_sales"`
	AverageSalesPerSupplier float64  `json:"average_sales_per_supplier"`
	TotalSuppliers         int       `json:"total_suppliers"`
	Top10MarketShare       float64   `json:"top_10_market_share"`
	StrategicPartnersCount int       `json:"strategic_partners_count"`
	KeyPartnersCount       int       `json:"key_partners_count"`
	TopSupplier            string    `json:"top_supplier"`
	TopSupplierSales       float64   `json:"top_supplier_sales"`
	TopSupplierShare       float64   `json:"top_supplier_share"`
	SupplierDiversity      string    `json:"supplier_diversity"`
}

// TopItemsByTransfers ranks the fifteen most transferred items.
type TopItemsByTransfers struct {
	ItemCodes            []string  `json:"item_codes"`
	DisplayLabels        []string  `json:"display_labels"`
	ItemDescriptions     []string  `json:"item_descriptions"`
	ItemTypes            []string  `json:"item_types"`
	RetailTransfers      []float64 `json:"retail_transfers"`
	RetailSales          []float64 `json:"retail_sales"`
	TransferEfficiencies []float64 `json:"transfer_efficiencies"`
	LogisticsPerformances []string `json:"logistics_performances"`
	TotalRetailTransfers float64   `json:"total_retail_transfers"`
	Top15TransfersTotal  float64   `json:"top_15_transfers_total"`
	Top15Percentage      float64   `json:"top_15_percentage"`
	TopTransferItem      string    `json:"top_transfer_item"`
	TopTransferAmount    float64   `json:"top_transfer_amount"`
	TransferFocusedItems int       `json:"transfer_focused_items"`
	TotalTransferItems   int       `json:"total_transfer_items"`
	DominantTransferType string    `json:"dominant_transfer_type"`
}

// SalesSeasonality is the stacked per-period channel series with peak,
// valley, and trend annotations.
type SalesSeasonality struct {
	Periods               []string  `json:"periods"`
	RetailSales           []float64 `json:"retail_sales"`
	RetailTransfers       []float64 `json:"retail_transfers"`
	WarehouseSales        []float64 `json:"warehouse_sales"`
	TotalSales            []float64 `json:"total_sales"`
	PeakMonth             string    `json:"peak_month"`
	PeakValue             float64   `json:"peak_value"`
	ValleyMonth           string    `json:"valley_month"`
	ValleyValue           float64   `json:"valley_value"`
	Trend                 string    `json:"trend"`
	YearOverYearGrowth    float64   `json:"year_over_year_growth"`
	SeasonalityIndex      float64   `json:"seasonality_index"`
	SeasonalPerformance   string    `json:"seasonal_performance"`
	MonthsAnalyzed        int       `json:"months_analyzed"`
	AverageMonthlySales   float64   `json:"average_monthly_sales"`
	RetailContribution    float64   `json:"retail_contribution"`
	TransfersContribution float64   `json:"transfers_contribution"`
	WarehouseContribution float64   `json:"warehouse_contribution"`
}

// rankedItem is the internal row form for per-item rankings; parallel
// arrays are produced only at the assembly step.
type rankedItem struct {
	Code        string
	Description string
	ItemType    string
	RetailSales float64
	Transfers   float64
	Efficiency  float64
	Rank        int
	Tier        string
	Label       string
	Logistics   string
}

// displayLabel renders "CODE - DESCRIPTION", truncating long descriptions
// for chart axis labels. Truncation counts runes so multibyte characters
// never get split.
func displayLabel(code, description string, maxLen int) string {
	runes := []rune(description)
	if len(runes) > maxLen {
		return code + " - " + string(runes[:maxLen]) + "..."
	}
	return code + " - " + description
}

// reverseRanked flips ranking rows into ascending order for horizontal bar
// charts, matching the order the frontend draws them in.
func reverseRanked(items []rankedItem) []rankedItem {
	out := make([]rankedItem, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
