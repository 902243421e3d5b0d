package storage

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/result"
	"github.com/san-kum/pipeflow/internal/solver"
)

func solve(t *testing.T, mode, name string) (*config.Config, result.Result) {
	t.Helper()
	cfg := config.GetPreset(mode, name)
	if cfg == nil {
		t.Fatalf("preset %s/%s not found", mode, name)
	}
	return cfg, cfg.Solver(nil).Run(solver.Mode(cfg.Mode), &cfg.System, cfg.Params)
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, r := solve(t, "gravity_flow", "tank_drain")
	runID, err := st.Save(cfg, r)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Mode != "gravity_flow" {
		t.Errorf("expected mode gravity_flow, got %q", meta.Mode)
	}
	if meta.Status != r.Status() {
		t.Errorf("expected status %s, got %s", r.Status(), meta.Status)
	}
	if meta.Values[result.Q] <= 0 {
		t.Errorf("expected positive Q, got %f", meta.Values[result.Q])
	}
	if meta.Diagnostics == nil {
		t.Error("expected diagnostics to be saved")
	}
	if meta.Config == nil || meta.Config.System.Length == nil {
		t.Error("expected the scenario to be saved with the run")
	}
}

func TestStoreSaveNoSolution(t *testing.T) {
	st := New(t.TempDir())

	cfg, r := solve(t, "gravity_flow", "reverse")
	runID, err := st.Save(cfg, r)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Status != result.StatusNoSolution {
		t.Errorf("expected no_solution, got %s", meta.Status)
	}
	if meta.Reason != result.ReasonReverseFlow {
		t.Errorf("expected reason reverse_flow, got %q", meta.Reason)
	}
	if len(meta.Values) != 0 {
		t.Errorf("expected no values, got %v", meta.Values)
	}
}

func TestStoreCurve(t *testing.T) {
	st := New(t.TempDir())

	cfg, r := solve(t, "system_curve", "uphill")
	p, ok := result.PayloadOf(r)
	if !ok {
		t.Fatalf("expected a curve, got %T", r)
	}

	runID, err := st.Save(cfg, r)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	curve, err := st.LoadCurve(runID)
	if err != nil {
		t.Fatalf("load curve failed: %v", err)
	}
	if len(curve) != len(p.Curve) {
		t.Fatalf("expected %d points, got %d", len(p.Curve), len(curve))
	}
	for i := range curve {
		if diff := curve[i].HA - p.Curve[i].HA; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("point %d: h_a %f != %f", i, curve[i].HA, p.Curve[i].HA)
		}
		if curve[i].Regime != p.Curve[i].Regime {
			t.Errorf("point %d: regime %s != %s", i, curve[i].Regime, p.Curve[i].Regime)
		}
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.CurvePoints != len(p.Curve) {
		t.Errorf("expected %d curve points recorded, got %d", len(p.Curve), meta.CurvePoints)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	cfg, r := solve(t, "gravity_flow", "short_run")
	if _, err := st.Save(cfg, r); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	cfg, r := solve(t, "gravity_flow", "tank_drain")
	runID, err := st.Save(cfg, r)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "curve.csv")); !os.IsNotExist(err) {
		t.Error("curve.csv should only exist for curve results")
	}
}

func TestWriteCurveCSV(t *testing.T) {
	_, r := solve(t, "system_curve", "uphill")
	p, _ := result.PayloadOf(r)

	var buf bytes.Buffer
	if err := WriteCurveCSV(&buf, p.Curve); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(records) != len(p.Curve)+1 {
		t.Errorf("expected %d rows, got %d", len(p.Curve)+1, len(records))
	}
	if records[0][0] != "Q" || records[0][1] != "h_a" {
		t.Errorf("unexpected header %v", records[0])
	}
}

func TestParseCurveErrors(t *testing.T) {
	if _, err := parseCurve(nil); err == nil {
		t.Error("expected error for empty file")
	}
	if _, err := parseCurve([][]string{curveHeader, {"1", "2"}}); err == nil {
		t.Error("expected error for short row")
	}
	bad := []string{"x", "1", "1", "1", "1", "1", "1", "1", "turbulent"}
	if _, err := parseCurve([][]string{curveHeader, bad}); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestRunMetadataResult(t *testing.T) {
	st := New(t.TempDir())

	for _, preset := range [][2]string{
		{"gravity_flow", "tank_drain"},
		{"gravity_flow", "reverse"},
		{"operating_point", "high_suction"},
	} {
		cfg, r := solve(t, preset[0], preset[1])
		runID, err := st.Save(cfg, r)
		if err != nil {
			t.Fatalf("save failed: %v", err)
		}
		meta, err := st.Load(runID)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		back := meta.Result()
		if back.Status() != r.Status() {
			t.Errorf("%s: status %s != %s", preset[1], back.Status(), r.Status())
		}
		if len(result.WarningsOf(back)) != len(result.WarningsOf(r)) {
			t.Errorf("%s: warnings not restored", preset[1])
		}
	}

	missing := RunMetadata{Status: result.StatusMissingInputs, Missing: []result.Missing{{Param: "L"}}}
	if m, ok := missing.Result().(*result.MissingInputs); !ok || m.Params()[0] != "L" {
		t.Errorf("expected missing L, got %#v", missing.Result())
	}
}
