package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var spec map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/upload")
	assert.Contains(t, paths, "/api/analysis/report.pdf")
	assert.Contains(t, paths, "/api/analysis/abundance")
}

func TestSwaggerJSONCoincideConRegistro(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var fromFile, fromDoc map[string]any
	require.NoError(t, json.Unmarshal(raw, &fromFile))
	require.NoError(t, json.Unmarshal([]byte(doc), &fromDoc))
	assert.Equal(t, fromFile["paths"], fromDoc["paths"])
	assert.Equal(t, fromFile["definitions"], fromDoc["definitions"])
}
