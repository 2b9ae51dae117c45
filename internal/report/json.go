package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"pv-battery-sizing/internal/evaluation"
	"pv-battery-sizing/internal/model"

	"github.com/google/uuid"
)

const Application = "pv-battery-sizing"

type Metadata struct {
	ExportID    string    `json:"export_id"`
	ExportDate  time.Time `json:"export_date"`
	Application string    `json:"application"`
}

// Export is the JSON document of one evaluation run.
type Export struct {
	Parameters     model.SystemParameters     `json:"parameters"`
	Sizing         model.SizingResult         `json:"sizing"`
	Scenarios      []model.ScenarioOutcome    `json:"scenarios"`
	Recommendation model.RecommendationRecord `json:"recommendation"`
	Metadata       Metadata                   `json:"metadata"`
}

func NewExport(res *evaluation.Result, now time.Time) Export {
	return Export{
		Parameters:     res.Parameters,
		Sizing:         res.Sizing,
		Scenarios:      res.Scenarios,
		Recommendation: res.Recommendation,
		Metadata: Metadata{
			ExportID:    uuid.NewString(),
			ExportDate:  now.UTC(),
			Application: Application,
		},
	}
}

func WriteJSON(path string, res *evaluation.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeJSON(f, NewExport(res, time.Now()))
}

func EncodeJSON(out io.Writer, e Export) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
