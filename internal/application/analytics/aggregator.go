package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/inventory"
)

// GroupKeys selecciona las columnas de agrupación soportadas.
type GroupKeys int

const (
	BySite GroupKeys = iota
	BySiteLocation
	ByMaterial
)

// GroupKey tupla de agrupación; los campos que no aplican quedan vacíos.
type GroupKey struct {
	Site            string
	StorageLocation string
	Material        string
}

func (k GroupKey) less(o GroupKey) bool {
	if k.Site != o.Site {
		return k.Site < o.Site
	}
	if k.StorageLocation != o.StorageLocation {
		return k.StorageLocation < o.StorageLocation
	}
	return k.Material < o.Material
}

// Group estadísticas de un grupo de filas.
type Group struct {
	Key                 GroupKey
	MaterialDescription string // primera descripción vista (sólo ByMaterial)
	ItemCount           int
	TotalShortageQty    decimal.Decimal // suma de cantidades negativas
	ValueImpact         decimal.Decimal // suma de valor de las filas con faltante
	TotalQuantity       decimal.Decimal // suma de todas las cantidades del grupo
	TotalValue          decimal.Decimal // suma de todos los valores del grupo
	AffectedSites       []string        // sitios distintos, ordenados (sólo ByMaterial)
}

// Predicate filtra las filas que alimentan un agregado.
type Predicate func(entity.InventoryRecord) bool

// ShortagePredicate filas con backorder (cantidad < 0).
func ShortagePredicate(r entity.InventoryRecord) bool {
	return inventory.IsShortage(r.CurrentQuantity)
}

// AbundancePredicate filas con nivel de abundancia según el umbral.
func AbundancePredicate(threshold decimal.Decimal) Predicate {
	return func(r entity.InventoryRecord) bool {
		return inventory.AbundanceLevel(r.CurrentQuantity, threshold) != ""
	}
}

func keyFor(r entity.InventoryRecord, keys GroupKeys) GroupKey {
	switch keys {
	case BySiteLocation:
		return GroupKey{Site: r.Site, StorageLocation: r.StorageLocation}
	case ByMaterial:
		return GroupKey{Material: r.Material}
	default:
		return GroupKey{Site: r.Site}
	}
}

// Aggregate agrupa las filas que cumplen pred. El orden de salida es el de primera
// aparición; usar AggregateShortages / AggregateAbundance para el orden de reporte.
func Aggregate(records []entity.InventoryRecord, keys GroupKeys, pred Predicate) []Group {
	index := make(map[GroupKey]int)
	sites := make(map[GroupKey]map[string]struct{})
	var groups []Group

	for _, r := range records {
		if pred != nil && !pred(r) {
			continue
		}
		k := keyFor(r, keys)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k, MaterialDescription: r.MaterialDescription})
			sites[k] = make(map[string]struct{})
		}
		g := &groups[i]
		g.ItemCount++
		g.TotalQuantity = g.TotalQuantity.Add(r.CurrentQuantity)
		g.TotalValue = g.TotalValue.Add(r.TotalValue)
		if inventory.IsShortage(r.CurrentQuantity) {
			g.TotalShortageQty = g.TotalShortageQty.Add(r.CurrentQuantity)
			g.ValueImpact = g.ValueImpact.Add(r.TotalValue)
		}
		sites[k][r.Site] = struct{}{}
	}

	if keys == ByMaterial {
		for i := range groups {
			set := sites[groups[i].Key]
			list := make([]string, 0, len(set))
			for s := range set {
				list = append(list, s)
			}
			sort.Strings(list)
			groups[i].AffectedSites = list
		}
	}
	return groups
}

// AggregateShortages agrega sólo filas con faltante, ordenadas por magnitud del
// faltante descendente y luego por llave.
func AggregateShortages(records []entity.InventoryRecord, keys GroupKeys) []Group {
	groups := Aggregate(records, keys, ShortagePredicate)
	sort.SliceStable(groups, func(i, j int) bool {
		// TotalShortageQty es negativo: el más negativo es el mayor faltante
		if c := groups[i].TotalShortageQty.Cmp(groups[j].TotalShortageQty); c != 0 {
			return c < 0
		}
		return groups[i].Key.less(groups[j].Key)
	})
	return groups
}

// AggregateAbundance agrega filas abundantes, ordenadas por cantidad total descendente.
func AggregateAbundance(records []entity.InventoryRecord, keys GroupKeys, threshold decimal.Decimal) []Group {
	groups := Aggregate(records, keys, AbundancePredicate(threshold))
	sort.SliceStable(groups, func(i, j int) bool {
		if c := groups[i].TotalQuantity.Cmp(groups[j].TotalQuantity); c != 0 {
			return c > 0
		}
		return groups[i].Key.less(groups[j].Key)
	})
	return groups
}
