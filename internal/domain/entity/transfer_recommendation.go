package entity

import "github.com/shopspring/decimal"

// TransferRecommendation sugiere mover stock de un origen con excedente a un destino
// con faltante del mismo material. Se recalcula en cada consulta; no se persiste.
type TransferRecommendation struct {
	Material            string
	MaterialDescription string
	FromSite            string
	FromStorageLocation string // vacío en recomendaciones a nivel sitio
	ToSite              string
	ToStorageLocation   string
	AvailableQuantity   decimal.Decimal // disponible en origen al momento de asignar
	RequiredQuantity    decimal.Decimal // faltante pendiente en destino al momento de asignar
	RecommendedQuantity decimal.Decimal
	EstimatedValue      decimal.Decimal
	Priority            string
	Impact              string
}

// UnresolvedShortage es un faltante que no pudo cubrirse (total o parcialmente)
// con excedentes de otros sitios.
type UnresolvedShortage struct {
	Material            string
	Site                string
	StorageLocation     string
	RequiredQuantity    decimal.Decimal
	UnallocatedQuantity decimal.Decimal
	Reason              string
}

// Motivos de faltante sin resolver.
const (
	ReasonNoSurplus        = "no_surplus"
	ReasonSurplusExhausted = "surplus_exhausted"
)
