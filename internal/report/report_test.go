package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/config"
	"pv-battery-sizing/internal/evaluation"
	"pv-battery-sizing/internal/model"
)

func run(t *testing.T) *evaluation.Result {
	t.Helper()
	res, err := evaluation.New(catalog.Default(), nil).Run(config.DefaultParameters())
	require.NoError(t, err)
	return res
}

func TestEncodeScenariosCSV(t *testing.T) {
	res := run(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeScenariosCSV(&buf, res.Scenarios))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, csvHeader, rows[0])
	for _, r := range rows {
		assert.Len(t, r, len(csvHeader))
	}

	assert.Equal(t, "S0", rows[1][0])
	assert.Equal(t, "4500.000000", rows[1][8])
	assert.Equal(t, "S4", rows[5][0])
	assert.Equal(t, "Lithium-ion", rows[5][15])
	assert.Equal(t, "10.000000", rows[1][16])
}

func TestWriteScenariosCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.csv")
	require.NoError(t, WriteScenariosCSV(path, run(t).Scenarios))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "scenario,pv_power,battery_capacity")

	assert.Error(t, WriteScenariosCSV(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), nil))
}

func TestEncodeJSON(t *testing.T) {
	res := run(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, NewExport(res, now)))

	var doc struct {
		Parameters     map[string]any             `json:"parameters"`
		Scenarios      []map[string]any           `json:"scenarios"`
		Metadata       Metadata                   `json:"metadata"`
		Recommendation model.RecommendationRecord `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 4500.0, doc.Parameters["annual_consumption"])
	require.Len(t, doc.Scenarios, 5)
	assert.Equal(t, "S1", doc.Scenarios[1]["scenario"])
	assert.Contains(t, doc.Scenarios[1], "score")
	assert.Contains(t, doc.Scenarios[1], "breakdown")
	assert.Contains(t, doc.Scenarios[1], "grid_import")
	assert.Equal(t, model.ScenarioPVOnly, doc.Recommendation.BestScenario)

	assert.Equal(t, Application, doc.Metadata.Application)
	assert.True(t, now.Equal(doc.Metadata.ExportDate))
	_, err := uuid.Parse(doc.Metadata.ExportID)
	assert.NoError(t, err)
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, WriteJSON(path, run(t)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}
