package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalItems     int             `json:"total_items"`
	TotalSites     int             `json:"total_sites"`
	TotalMaterials int             `json:"total_materials"`
	NegativeItems  int             `json:"negative_items"`
	PositiveItems  int             `json:"positive_items"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`
	AvgQuantity    decimal.Decimal `json:"avg_quantity"`    // media de |cantidad|
	MedianQuantity decimal.Decimal `json:"median_quantity"` // mediana de |cantidad|
	MalformedRows  int             `json:"malformed_rows"`
	SnapshotID     string          `json:"snapshot_id"`
	LoadedAt       string          `json:"loaded_at"`
}

// SiteSummaryDTO totales por sitio.
type SiteSummaryDTO struct {
	Site            string          `json:"site"`
	UniqueMaterials int             `json:"unique_materials"`
	TotalQuantity   decimal.Decimal `json:"total_quantity"`
	TotalValue      decimal.Decimal `json:"total_value"`
}
