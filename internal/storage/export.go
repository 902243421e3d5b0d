package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/pipeflow/internal/hydro"
	"github.com/san-kum/pipeflow/internal/result"
)

var curveHeader = []string{"Q", "h_a", "v", "Re", "f", "h_L_major", "h_L_minor", "h_L_total", "regime"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// WriteCurveCSV writes one row per curve sample.
func WriteCurveCSV(w io.Writer, curve []result.CurvePoint) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(curveHeader); err != nil {
		return err
	}
	for _, pt := range curve {
		row := []string{
			formatFloat(pt.Q),
			formatFloat(pt.HA),
			formatFloat(pt.V),
			formatFloat(pt.Re),
			formatFloat(pt.F),
			formatFloat(pt.MajorLoss),
			formatFloat(pt.MinorLoss),
			formatFloat(pt.TotalLoss),
			string(pt.Regime),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func parseCurve(records [][]string) ([]result.CurvePoint, error) {
	if len(records) < 1 {
		return nil, fmt.Errorf("empty curve file")
	}

	curve := make([]result.CurvePoint, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(curveHeader) {
			return nil, fmt.Errorf("curve row %d: expected %d columns, got %d", i+1, len(curveHeader), len(rec))
		}
		nums := make([]float64, len(rec)-1)
		for j := range nums {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("curve row %d: %w", i+1, err)
			}
			nums[j] = v
		}
		curve = append(curve, result.CurvePoint{
			State: hydro.State{
				Q:         nums[0],
				V:         nums[2],
				Re:        nums[3],
				F:         nums[4],
				MajorLoss: nums[5],
				MinorLoss: nums[6],
				TotalLoss: nums[7],
				Regime:    hydro.Regime(rec[8]),
			},
			HA: nums[1],
		})
	}
	return curve, nil
}

// ExportJSON writes meta to path, or to stdout when path is
// empty or "-".
func ExportJSON(path string, meta RunMetadata) error {
	if path == "" || path == "-" {
		return encodeJSON(os.Stdout, meta)
	}
	return writeJSON(path, meta)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
