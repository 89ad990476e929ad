package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Inventario-analytics/internal/domain"
)

// Parser lee un libro de movimientos completo.
type Parser interface {
	Parse(r io.Reader) ([]LedgerRow, error)
}

// ParserFor elige el parser según la extensión del archivo.
func ParserFor(filename string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ExcelParser{}, nil
	case ".csv", ".txt":
		return CSVParser{}, nil
	default:
		return nil, fmt.Errorf("%w: formato no soportado %q (use .xlsx o .csv)", domain.ErrInvalidInput, filepath.Ext(filename))
	}
}

// ExcelParser lee la hoja Sheet (o la primera) de un libro .xlsx.
type ExcelParser struct {
	Sheet string
}

// Parse implementa Parser.
func (p ExcelParser) Parse(r io.Reader) ([]LedgerRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo abrir el Excel: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	sheet := p.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	// Valores crudos: números sin formato y fechas como serial de Excel.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %q: %v", domain.ErrInvalidInput, sheet, err)
	}
	return toLedgerRows(rows)
}

// CSVParser lee exportaciones CSV. Acepta UTF-8 (con o sin BOM) y Windows-1252;
// el separador (',' o ';') se detecta en el encabezado si Comma es 0.
type CSVParser struct {
	Comma rune
}

// Parse implementa Parser.
func (p CSVParser) Parse(r io.Reader) ([]LedgerRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(raw) {
		raw, err = charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: codificación no reconocida: %v", domain.ErrInvalidInput, err)
		}
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = p.Comma
	if cr.Comma == 0 {
		cr.Comma = detectComma(raw)
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	table, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %v", domain.ErrInvalidInput, err)
	}
	rows, err := toLedgerRows(table)
	if err != nil {
		return nil, err
	}
	if cr.Comma == ';' {
		for i := range rows {
			rows[i].DecimalComma = true
		}
	}
	return rows, nil
}

func detectComma(raw []byte) rune {
	header := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		header = raw[:i]
	}
	if bytes.Count(header, []byte{';'}) > bytes.Count(header, []byte{','}) {
		return ';'
	}
	return ','
}
