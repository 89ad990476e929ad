package spreadsheet

import (
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
)

// Valores por defecto para celdas vacías.
const (
	DefaultSite            = "Unknown"
	DefaultStorageLocation = "N/A"
	DefaultUnit            = "EA"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"02.01.2006",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
}

type accum struct {
	record   entity.InventoryRecord
	hasDesc  bool
	lastSeen *time.Time
}

// BuildSnapshot consolida las filas del libro en una fila de inventario por
// (sitio, ubicación, material): suma cantidad y valor, last_active es la fecha
// de contabilización más reciente. Cada fila válida también se conserva como
// movimiento. Las filas sin material o con números o fechas ilegibles se excluyen
// y quedan en los diagnósticos.
func BuildSnapshot(source string, rows []LedgerRow) *entity.Snapshot {
	var diag entity.Diagnostics
	byKey := make(map[entity.RecordKey]*accum)
	order := make([]entity.RecordKey, 0)
	units := make(map[string]string)
	txs := make([]entity.TransactionRecord, 0, len(rows))

	for _, row := range rows {
		if row.Material == "" {
			diag.AddMalformed(row.Row, "material", "material vacío")
			continue
		}
		qty, ok := parseAmount(row.Quantity, row.DecimalComma)
		if !ok {
			diag.AddMalformed(row.Row, "quantity", "cantidad no numérica: "+row.Quantity)
			continue
		}
		val, ok := parseAmount(row.Value, row.DecimalComma)
		if !ok {
			diag.AddMalformed(row.Row, "value", "valor no numérico: "+row.Value)
			continue
		}
		date, ok := parseDate(row.PostingDate)
		if !ok {
			diag.AddMalformed(row.Row, "posting_date", "fecha ilegible: "+row.PostingDate)
			continue
		}
		if strings.TrimSpace(row.Quantity) == "" {
			diag.AddMissing(row.Row, "quantity")
		}
		if strings.TrimSpace(row.Value) == "" {
			diag.AddMissing(row.Row, "value")
		}

		site := orDefault(row.Site, DefaultSite)
		loc := orDefault(row.StorageLocation, DefaultStorageLocation)
		key := entity.RecordKey{Site: site, StorageLocation: loc, Material: row.Material}

		a, exists := byKey[key]
		if !exists {
			a = &accum{record: entity.InventoryRecord{
				Site:            site,
				StorageLocation: loc,
				Material:        row.Material,
				CurrentQuantity: decimal.Zero,
				TotalValue:      decimal.Zero,
			}}
			byKey[key] = a
			order = append(order, key)
		}
		a.record.CurrentQuantity = a.record.CurrentQuantity.Add(qty)
		a.record.TotalValue = a.record.TotalValue.Add(val)
		if !a.hasDesc && row.MaterialDescription != "" {
			a.record.MaterialDescription = row.MaterialDescription
			a.hasDesc = true
		}
		if date != nil && (a.lastSeen == nil || date.After(*a.lastSeen)) {
			a.lastSeen = date
		}
		if _, seen := units[row.Material]; !seen && row.Unit != "" {
			units[row.Material] = row.Unit
		}

		txs = append(txs, entity.TransactionRecord{
			Material:        row.Material,
			Site:            site,
			StorageLocation: loc,
			Date:            date,
			Type:            row.MovementType,
			QuantityDelta:   qty,
			Value:           val,
			Text:            row.Text,
		})
	}

	records := make([]entity.InventoryRecord, 0, len(order))
	for _, k := range order {
		a := byKey[k]
		a.record.LastActive = a.lastSeen
		a.record.Unit = orDefault(units[k.Material], DefaultUnit)
		records = append(records, a.record)
	}
	return entity.NewSnapshot(source, records, txs, diag)
}

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return def
	}
	return s
}

var (
	thousandsComma = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+(\.\d+)?$`)
	thousandsDot   = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+(,\d+)?$`)
	commaDecimal   = regexp.MustCompile(`^-?\d+(,\d+)?$`)
)

// parseAmount interpreta cantidades y montos. Vacío es cero. Acepta el signo
// menos al final de los exportes SAP ("50-"). Con decimalComma el formato es
// "1.234,56"; si no, "1,234.56". Cualquier otro separador es ilegible.
func parseAmount(s string, decimalComma bool) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	neg := false
	if strings.HasSuffix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "-"))
	}
	norm, ok := normalizeAmount(s, decimalComma)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(norm)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// normalizeAmount deja el número con '.' decimal y sin separador de miles.
func normalizeAmount(s string, decimalComma bool) (string, bool) {
	if decimalComma {
		switch {
		case thousandsDot.MatchString(s):
			return strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", "."), true
		case commaDecimal.MatchString(s):
			return strings.ReplaceAll(s, ",", "."), true
		case !strings.Contains(s, ","):
			return s, true
		}
		return "", false
	}
	switch {
	case thousandsComma.MatchString(s):
		return strings.ReplaceAll(s, ",", ""), true
	case !strings.Contains(s, ","):
		return s, true
	}
	return "", false
}

// parseDate acepta los formatos de fecha habituales y seriales de Excel.
// Vacío devuelve nil sin error.
func parseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day, true
		}
	}
	return nil, false
}

// Loader lee un archivo completo y construye su snapshot.
type Loader struct{}

// Load elige el parser por la extensión de name.
func (Loader) Load(name string, r io.Reader) (*entity.Snapshot, error) {
	p, err := ParserFor(name)
	if err != nil {
		return nil, err
	}
	rows, err := p.Parse(r)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(filepath.Base(name), rows), nil
}
