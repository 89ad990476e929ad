package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/inventory"
)

// Granularity nivel al que se emparejan faltantes y excedentes.
type Granularity int

const (
	// SiteLevel neta las cantidades por (material, sitio): recomendaciones de envío.
	SiteLevel Granularity = iota
	// LocationLevel trata cada (sitio, ubicación) como nodo: recomendaciones de movimiento.
	LocationLevel
)

func (g Granularity) String() string {
	if g == LocationLevel {
		return "location"
	}
	return "site"
}

// RecommendationResult transferencias sugeridas más los faltantes que no pudieron cubrirse.
type RecommendationResult struct {
	Recommendations []entity.TransferRecommendation
	Unresolved      []entity.UnresolvedShortage
}

type stockNode struct {
	site        string
	location    string
	description string
	quantity    decimal.Decimal
	value       decimal.Decimal
	available   decimal.Decimal // copia local del excedente; se agota durante la asignación
}

func (n *stockNode) less(o *stockNode) bool {
	if n.site != o.site {
		return n.site < o.site
	}
	return n.location < o.location
}

// estimatedValue valoriza qty al valor unitario del origen
// (total_value / current_quantity); cero si el origen no tiene cantidad.
func (n *stockNode) estimatedValue(qty decimal.Decimal) decimal.Decimal {
	if n.quantity.IsZero() {
		return decimal.Zero
	}
	return qty.Mul(n.value).Div(n.quantity).Round(2)
}

// Recommend empareja, por material, los nodos con faltante contra los nodos con
// excedente y asigna de forma greedy. No modifica records.
func Recommend(records []entity.InventoryRecord, granularity Granularity, t inventory.Thresholds) RecommendationResult {
	byMaterial := partitionByMaterial(records, granularity)

	materials := make([]string, 0, len(byMaterial))
	for m := range byMaterial {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	result := RecommendationResult{
		Recommendations: []entity.TransferRecommendation{},
		Unresolved:      []entity.UnresolvedShortage{},
	}
	for _, material := range materials {
		recs, unresolved := allocateMaterial(material, byMaterial[material], granularity, t)
		result.Recommendations = append(result.Recommendations, recs...)
		result.Unresolved = append(result.Unresolved, unresolved...)
	}

	sort.SliceStable(result.Recommendations, func(i, j int) bool {
		return recommendationLess(result.Recommendations[i], result.Recommendations[j])
	})
	return result
}

func partitionByMaterial(records []entity.InventoryRecord, granularity Granularity) map[string][]*stockNode {
	type nodeKey struct{ site, location string }
	index := make(map[string]map[nodeKey]*stockNode)
	out := make(map[string][]*stockNode)

	for _, r := range records {
		k := nodeKey{site: r.Site}
		if granularity == LocationLevel {
			k.location = r.StorageLocation
		}
		nodes, ok := index[r.Material]
		if !ok {
			nodes = make(map[nodeKey]*stockNode)
			index[r.Material] = nodes
		}
		n, ok := nodes[k]
		if !ok {
			n = &stockNode{site: k.site, location: k.location, description: r.MaterialDescription}
			nodes[k] = n
			out[r.Material] = append(out[r.Material], n)
		}
		n.quantity = n.quantity.Add(r.CurrentQuantity)
		n.value = n.value.Add(r.TotalValue)
	}
	return out
}

func allocateMaterial(material string, nodes []*stockNode, granularity Granularity, t inventory.Thresholds) ([]entity.TransferRecommendation, []entity.UnresolvedShortage) {
	var deficits, surplus []*stockNode
	for _, n := range nodes {
		switch {
		case n.quantity.IsNegative():
			deficits = append(deficits, n)
		case n.quantity.GreaterThan(t.SurplusBuffer):
			n.available = n.quantity.Sub(t.SurplusBuffer)
			surplus = append(surplus, n)
		}
	}
	if len(deficits) == 0 {
		return nil, nil
	}

	// Faltante más severo primero.
	sort.SliceStable(deficits, func(i, j int) bool {
		if c := inventory.CompareSeverity(deficits[i].quantity, deficits[j].quantity); c != 0 {
			return c < 0
		}
		return deficits[i].less(deficits[j])
	})

	var recs []entity.TransferRecommendation
	var unresolved []entity.UnresolvedShortage

	for _, def := range deficits {
		required := def.quantity.Neg()
		pending := required

		rankSurplus(surplus)
		for _, src := range surplus {
			if !pending.IsPositive() {
				break
			}
			if !src.available.IsPositive() {
				continue
			}
			qty := decimal.Min(pending, src.available)
			value := src.estimatedValue(qty)

			desc := def.description
			if desc == "" {
				desc = src.description
			}
			rec := entity.TransferRecommendation{
				Material:            material,
				MaterialDescription: desc,
				FromSite:            src.site,
				ToSite:              def.site,
				AvailableQuantity:   src.available,
				RequiredQuantity:    pending,
				RecommendedQuantity: qty,
				EstimatedValue:      value,
				Priority:            inventory.Priority(value, qty, t),
				Impact:              inventory.Impact(value, t),
			}
			if granularity == LocationLevel {
				rec.FromStorageLocation = src.location
				rec.ToStorageLocation = def.location
			}
			recs = append(recs, rec)

			src.available = src.available.Sub(qty)
			pending = pending.Sub(qty)
		}

		if pending.IsPositive() {
			reason := entity.ReasonSurplusExhausted
			if len(surplus) == 0 {
				reason = entity.ReasonNoSurplus
			}
			u := entity.UnresolvedShortage{
				Material:            material,
				Site:                def.site,
				RequiredQuantity:    required,
				UnallocatedQuantity: pending,
				Reason:              reason,
			}
			if granularity == LocationLevel {
				u.StorageLocation = def.location
			}
			unresolved = append(unresolved, u)
		}
	}
	return recs, unresolved
}

// rankSurplus ordena por disponible descendente y luego por nodo ascendente.
func rankSurplus(surplus []*stockNode) {
	sort.SliceStable(surplus, func(i, j int) bool {
		if c := surplus[i].available.Cmp(surplus[j].available); c != 0 {
			return c > 0
		}
		return surplus[i].less(surplus[j])
	})
}

func recommendationLess(a, b entity.TransferRecommendation) bool {
	if ra, rb := inventory.PriorityRank(a.Priority), inventory.PriorityRank(b.Priority); ra != rb {
		return ra < rb
	}
	if c := a.EstimatedValue.Cmp(b.EstimatedValue); c != 0 {
		return c > 0
	}
	if c := a.RecommendedQuantity.Cmp(b.RecommendedQuantity); c != 0 {
		return c > 0
	}
	if a.Material != b.Material {
		return a.Material < b.Material
	}
	if a.ToSite != b.ToSite {
		return a.ToSite < b.ToSite
	}
	if a.ToStorageLocation != b.ToStorageLocation {
		return a.ToStorageLocation < b.ToStorageLocation
	}
	if a.FromSite != b.FromSite {
		return a.FromSite < b.FromSite
	}
	return a.FromStorageLocation < b.FromStorageLocation
}
