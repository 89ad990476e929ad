// Package spreadsheet lee libros de movimientos de inventario (.xlsx y .csv),
// los consolida en un snapshot y exporta reportes a Excel.
package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-analytics/internal/domain"
)

// Columnas reconocidas del libro de movimientos.
type column int

const (
	colSite column = iota
	colStorageLocation
	colMaterial
	colMaterialDescription
	colQuantity
	colValue
	colPostingDate
	colMovementType
	colText
	colUnit
	numColumns
)

// Alias aceptados por columna (comparación sin mayúsculas, espacios ni puntuación).
var columnAliases = map[column][]string{
	colSite:                {"plant", "site", "planta", "sitio"},
	colStorageLocation:     {"storage location", "storage loc", "sloc", "almacen", "ubicacion"},
	colMaterial:            {"material", "material number", "sku"},
	colMaterialDescription: {"material description", "description", "descripcion"},
	colQuantity:            {"quantity", "qty", "cantidad"},
	colValue:               {"amt.in loc.cur.", "amount in lc", "value", "total value", "valor"},
	colPostingDate:         {"posting date", "fecha contabilizacion", "date", "fecha"},
	colMovementType:        {"movement type", "mvt type", "tipo movimiento"},
	colText:                {"text", "texto"},
	colUnit:                {"unit of entry", "unit", "uom", "unidad"},
}

var aliasIndex = func() map[string]column {
	idx := make(map[string]column)
	for col, aliases := range columnAliases {
		for _, a := range aliases {
			idx[normalizeHeader(a)] = col
		}
	}
	return idx
}()

// normalizeHeader deja sólo letras y dígitos en minúscula: "Amt.in Loc.Cur." -> "amtinloccur".
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'á':
			b.WriteRune('a')
		case r == 'é':
			b.WriteRune('e')
		case r == 'í':
			b.WriteRune('i')
		case r == 'ó':
			b.WriteRune('o')
		case r == 'ú':
			b.WriteRune('u')
		}
	}
	return b.String()
}

// LedgerRow fila cruda del libro, con los valores como texto.
type LedgerRow struct {
	Row                 int // número de fila en el archivo (1 = encabezado)
	Site                string
	StorageLocation     string
	Material            string
	MaterialDescription string
	Quantity            string
	Value               string
	PostingDate         string
	MovementType        string
	Text                string
	Unit                string
	// DecimalComma: los números usan ',' decimal y '.' de miles (CSV con ';').
	DecimalComma bool
}

// headerMap posición de cada columna conocida; -1 si no está.
type headerMap [numColumns]int

func mapHeader(header []string) (headerMap, error) {
	var m headerMap
	for i := range m {
		m[i] = -1
	}
	for i, h := range header {
		if col, ok := aliasIndex[normalizeHeader(h)]; ok && m[col] < 0 {
			m[col] = i
		}
	}
	if m[colMaterial] < 0 || m[colQuantity] < 0 {
		return m, fmt.Errorf("%w: faltan las columnas obligatorias Material y Quantity", domain.ErrInvalidInput)
	}
	return m, nil
}

func (m headerMap) cell(row []string, col column) string {
	i := m[col]
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// toLedgerRows convierte una tabla (encabezado + datos) en filas del libro.
// Las filas totalmente vacías se omiten.
func toLedgerRows(table [][]string) ([]LedgerRow, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	m, err := mapHeader(table[0])
	if err != nil {
		return nil, err
	}
	out := make([]LedgerRow, 0, len(table)-1)
	for i, row := range table[1:] {
		if blank(row) {
			continue
		}
		out = append(out, LedgerRow{
			Row:                 i + 2,
			Site:                m.cell(row, colSite),
			StorageLocation:     m.cell(row, colStorageLocation),
			Material:            m.cell(row, colMaterial),
			MaterialDescription: m.cell(row, colMaterialDescription),
			Quantity:            m.cell(row, colQuantity),
			Value:               m.cell(row, colValue),
			PostingDate:         m.cell(row, colPostingDate),
			MovementType:        m.cell(row, colMovementType),
			Text:                m.cell(row, colText),
			Unit:                m.cell(row, colUnit),
		})
	}
	return out, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
