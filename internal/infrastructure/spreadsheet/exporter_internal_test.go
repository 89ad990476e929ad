package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTable_PropagaErrorDeEstilo(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := writeTable(f, "Sheet1", []string{"Material", "Cantidad"}, [][]any{{"M1", 1}}, 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estilo de encabezado")
}

func TestWriteTable_EscribeFilas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)

	require.NoError(t, writeTable(f, "Sheet1", []string{"Material", "Cantidad"}, [][]any{{"M1", 1}}, style))
	v, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "M1", v)
	w, err := f.GetColWidth("Sheet1", "B")
	require.NoError(t, err)
	assert.Equal(t, 16.0, w)
}
