package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord representa el stock consolidado de un material en una ubicación
// de almacenamiento de un sitio (planta). Una fila por (Site, StorageLocation, Material).
type InventoryRecord struct {
	Site                string
	StorageLocation     string
	Material            string
	MaterialDescription string
	CurrentQuantity     decimal.Decimal // puede ser negativo (backorder / diferencia)
	TotalValue          decimal.Decimal
	LastActive          *time.Time // nil si nunca hubo movimiento con fecha
	Unit                string
}

// RecordKey identifica una fila del inventario.
type RecordKey struct {
	Site            string
	StorageLocation string
	Material        string
}

// Key devuelve la llave única de la fila.
func (r InventoryRecord) Key() RecordKey {
	return RecordKey{Site: r.Site, StorageLocation: r.StorageLocation, Material: r.Material}
}

// Less ordena llaves por sitio, ubicación y material.
func (k RecordKey) Less(o RecordKey) bool {
	if k.Site != o.Site {
		return k.Site < o.Site
	}
	if k.StorageLocation != o.StorageLocation {
		return k.StorageLocation < o.StorageLocation
	}
	return k.Material < o.Material
}
