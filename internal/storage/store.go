package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/result"
)

const (
	metadataFile = "metadata.json"
	curveFile    = "curve.csv"
)

// Store keeps solved runs on disk, one directory per run.
type Store struct {
	baseDir string
}

// RunMetadata is the persisted summary of one solve.
type RunMetadata struct {
	ID          string              `json:"id"`
	Name        string              `json:"name,omitempty"`
	Mode        string              `json:"mode"`
	Timestamp   time.Time           `json:"timestamp"`
	Status      result.Status       `json:"status"`
	Values      result.Values       `json:"values,omitempty"`
	Flags       map[string]bool     `json:"flags,omitempty"`
	Diagnostics *result.Diagnostics `json:"diagnostics,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
	Missing     []result.Missing    `json:"missing,omitempty"`
	Reason      result.Reason       `json:"reason,omitempty"`
	Detail      string              `json:"detail,omitempty"`
	Partial     result.Values       `json:"partial,omitempty"`
	CurvePoints int                 `json:"curve_points,omitempty"`
	Config      *config.Config      `json:"config,omitempty"`
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Summarize flattens a result into run metadata without an ID or timestamp.
func Summarize(cfg *config.Config, r result.Result) RunMetadata {
	meta := RunMetadata{Status: r.Status(), Config: cfg}
	if cfg != nil {
		meta.Name = cfg.Name
		meta.Mode = cfg.Mode
	}

	switch v := r.(type) {
	case *result.MissingInputs:
		meta.Missing = v.Missing
	case *result.NoSolution:
		meta.Reason = v.Reason
		meta.Detail = v.Detail
		meta.Partial = finite(v.Partial)
	}

	if p, ok := result.PayloadOf(r); ok {
		meta.Values = finite(p.Values)
		meta.Flags = p.Flags
		meta.Diagnostics = p.Diagnostics
		meta.CurvePoints = len(p.Curve)
	}
	meta.Warnings = result.WarningsOf(r)
	return meta
}

// Save persists a solve and returns its run ID. Curve results also get a
// curve.csv next to the metadata.
func (s *Store) Save(cfg *config.Config, r result.Result) (string, error) {
	meta := Summarize(cfg, r)
	meta.ID = fmt.Sprintf("%s_%s", meta.Mode, uuid.NewString()[:8])
	meta.Timestamp = time.Now()

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if p, ok := result.PayloadOf(r); ok && len(p.Curve) > 0 {
		f, err := os.Create(filepath.Join(runDir, curveFile))
		if err != nil {
			return "", err
		}
		defer f.Close()
		if err := WriteCurveCSV(f, p.Curve); err != nil {
			return "", err
		}
	}

	return meta.ID, nil
}

// finite drops values JSON cannot encode.
func finite(v result.Values) result.Values {
	if v == nil {
		return nil
	}
	out := make(result.Values, len(v))
	for k, x := range v {
		if !math.IsInf(x, 0) && !math.IsNaN(x) {
			out[k] = x
		}
	}
	return out
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encodeJSON(f, v)
}

// List returns saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := []RunMetadata{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadCurve reads the system curve saved with a run.
func (s *Store) LoadCurve(runID string) ([]result.CurvePoint, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, curveFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	return parseCurve(records)
}

// Result rebuilds the result variant a run was saved from. Curves are stored
// separately; see LoadCurve.
func (m RunMetadata) Result() result.Result {
	switch m.Status {
	case result.StatusMissingInputs:
		return &result.MissingInputs{Missing: m.Missing}
	case result.StatusNoSolution:
		return &result.NoSolution{Reason: m.Reason, Detail: m.Detail, Partial: m.Partial}
	}

	p := result.Payload{Values: m.Values, Flags: m.Flags, Diagnostics: m.Diagnostics}
	if m.Status == result.StatusWarning {
		return &result.Warning{Payload: p, Warnings: m.Warnings}
	}
	return &result.Success{Payload: p}
}
