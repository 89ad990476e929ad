package dto

import "github.com/shopspring/decimal"

// ── Cuellos de botella ───────────────────────────────────────────────────────

// BottleneckDTO grupo agregado de faltantes (por sitio, ubicación o material).
type BottleneckDTO struct {
	Site                string          `json:"site,omitempty"`
	StorageLocation     string          `json:"storage_location,omitempty"`
	Material            string          `json:"material,omitempty"`
	MaterialDescription string          `json:"material_description,omitempty"`
	ItemCount           int             `json:"item_count"`
	TotalShortageQty    decimal.Decimal `json:"total_shortage_qty"` // suma de cantidades negativas
	ValueImpact         decimal.Decimal `json:"value_impact"`       // suma de valor en filas con faltante
	AffectedSites       []string        `json:"affected_sites,omitempty"`
	AffectedSiteCount   int             `json:"affected_site_count,omitempty"`
	BottleneckType      string          `json:"bottleneck_type"` // Site | Storage Location | Material
	Priority            string          `json:"priority"`
}

// BottleneckReportDTO respuesta de GET /api/analysis/bottlenecks.
type BottleneckReportDTO struct {
	Sites     []BottleneckDTO `json:"sites"`
	Locations []BottleneckDTO `json:"locations"`
	Materials []BottleneckDTO `json:"materials"`
}

// ── Excedentes ───────────────────────────────────────────────────────────────

// AbundanceGroupDTO grupo agregado de filas abundantes.
type AbundanceGroupDTO struct {
	Site                string          `json:"site,omitempty"`
	StorageLocation     string          `json:"storage_location,omitempty"`
	Material            string          `json:"material,omitempty"`
	MaterialDescription string          `json:"material_description,omitempty"`
	ItemCount           int             `json:"item_count"`
	TotalQuantity       decimal.Decimal `json:"total_quantity"`
	TotalValue          decimal.Decimal `json:"total_value"`
	AffectedSites       []string        `json:"affected_sites,omitempty"`
	AffectedSiteCount   int             `json:"affected_site_count,omitempty"`
	GroupType           string          `json:"group_type"` // Site | Storage Location | Material
}

// AbundanceReportDTO respuesta de GET /api/analysis/abundance.
type AbundanceReportDTO struct {
	Sites     []AbundanceGroupDTO `json:"sites"`
	Locations []AbundanceGroupDTO `json:"locations"`
	Materials []AbundanceGroupDTO `json:"materials"`
}

// ── Áreas de foco ────────────────────────────────────────────────────────────

// FocusItemDTO fila individual incluida en un área de foco.
type FocusItemDTO struct {
	InventoryRecordDTO
	Priority          string `json:"priority"`
	FocusReason       string `json:"focus_reason"`
	RecommendedAction string `json:"recommended_action"`
}

// FocusGroupDTO grupo (sitio o ubicación) incluido en un área de foco.
type FocusGroupDTO struct {
	Site              string          `json:"site"`
	StorageLocation   string          `json:"storage_location,omitempty"`
	ShortageCount     int             `json:"shortage_count"`
	TotalShortageQty  decimal.Decimal `json:"total_shortage_qty"`
	ValueImpact       decimal.Decimal `json:"value_impact"`
	Priority          string          `json:"priority"`
	FocusReason       string          `json:"focus_reason"`
	RecommendedAction string          `json:"recommended_action"`
}

// FocusAreasDTO respuesta de GET /api/analysis/focus-areas.
type FocusAreasDTO struct {
	HighValue        []FocusItemDTO  `json:"high_value"`
	CriticalQuantity []FocusItemDTO  `json:"critical_quantity"`
	SiteIssues       []FocusGroupDTO `json:"site_issues"`
	LocationIssues   []FocusGroupDTO `json:"location_issues"`
}

// ── Recomendaciones ──────────────────────────────────────────────────────────

// TransferRecommendationDTO sugerencia de transferencia entre sitios/ubicaciones.
type TransferRecommendationDTO struct {
	Material            string          `json:"material"`
	MaterialDescription string          `json:"material_description"`
	FromSite            string          `json:"from_site"`
	FromStorageLocation string          `json:"from_storage_location,omitempty"`
	ToSite              string          `json:"to_site"`
	ToStorageLocation   string          `json:"to_storage_location,omitempty"`
	AvailableQuantity   decimal.Decimal `json:"available_quantity"`
	RequiredQuantity    decimal.Decimal `json:"required_quantity"`
	RecommendedQuantity decimal.Decimal `json:"recommended_quantity"`
	EstimatedValue      decimal.Decimal `json:"estimated_value"`
	Priority            string          `json:"priority"`
	Impact              string          `json:"impact"`
}

// UnresolvedShortageDTO faltante sin excedente suficiente en otros sitios.
type UnresolvedShortageDTO struct {
	Material            string          `json:"material"`
	Site                string          `json:"site"`
	StorageLocation     string          `json:"storage_location,omitempty"`
	RequiredQuantity    decimal.Decimal `json:"required_quantity"`
	UnallocatedQuantity decimal.Decimal `json:"unallocated_quantity"`
	Reason              string          `json:"reason"` // no_surplus | surplus_exhausted
}

// RecommendationsDTO respuesta de /api/recommendations/{shipping,movements}.
type RecommendationsDTO struct {
	Granularity     string                      `json:"granularity"` // site | location
	Recommendations []TransferRecommendationDTO `json:"recommendations"`
	Unresolved      []UnresolvedShortageDTO     `json:"unresolved"`
}

// ── Reporte PDF ──────────────────────────────────────────────────────────────

// AnalysisReportDTO contenido del reporte imprimible de análisis.
type AnalysisReportDTO struct {
	GeneratedAt  string
	SnapshotID   string
	Source       string
	Stats        DashboardStatsDTO
	FocusAreas   FocusAreasDTO
	Bottlenecks  BottleneckReportDTO
	TopShortages []ClassifiedRecordDTO
}
