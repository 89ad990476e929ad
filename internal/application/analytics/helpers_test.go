package analytics_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rec(site, loc, material, qty, value string) entity.InventoryRecord {
	return entity.InventoryRecord{
		Site:                site,
		StorageLocation:     loc,
		Material:            material,
		MaterialDescription: "desc " + material,
		CurrentQuantity:     d(qty),
		TotalValue:          d(value),
		Unit:                "EA",
	}
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func snapshotOf(records ...entity.InventoryRecord) *entity.Snapshot {
	return entity.NewSnapshot("test", records, nil, entity.Diagnostics{})
}
