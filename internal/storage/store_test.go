package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/san-kum/forcelab/internal/force"
)

func runCurve(t *testing.T, name string) *experiment.Result {
	t.Helper()
	return runCurveWith(t, name, nil)
}

func runCurveWith(t *testing.T, name string, params map[string]float64) *experiment.Result {
	t.Helper()
	c, err := experiment.NewRegistry().GetCurve(name)
	if err != nil {
		t.Fatal(err)
	}
	exp := experiment.New(experiment.Config{Curve: name, Params: params})
	if err := exp.Setup(c); err != nil {
		t.Fatal(err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := runCurve(t, "umbilical")
	runID, err := st.Save(result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "umbilical_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Curve != "umbilical" {
		t.Errorf("expected curve umbilical, got %s", meta.Curve)
	}
	if meta.Params["length"] != 10 {
		t.Errorf("expected length 10, got %v", meta.Params["length"])
	}
	if len(meta.Diagnostics) != len(result.Diagnostics) {
		t.Errorf("expected %d diagnostics, got %d", len(result.Diagnostics), len(meta.Diagnostics))
	}
	if meta.Chart.Title != result.Series.Chart.Title {
		t.Errorf("chart title lost: %q", meta.Chart.Title)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if series.Len() != result.Series.Len() {
		t.Fatalf("expected %d samples, got %d", result.Series.Len(), series.Len())
	}
	for i := range series.Y {
		if series.Y[i] != result.Series.Y[i] || series.X[i] != result.Series.X[i] {
			t.Fatalf("sample %d changed on round trip", i)
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
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

	for _, name := range []string{"float", "fin"} {
		if _, err := st.Save(runCurve(t, name)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Curve != "float" || runs[1].Curve != "fin" {
		t.Errorf("runs not in save order: %s, %s", runs[0].Curve, runs[1].Curve)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(runCurve(t, "cable_drag"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "series.csv")); os.IsNotExist(err) {
		t.Error("series.csv not created")
	}
}

func TestWriteCSV(t *testing.T) {
	s := &force.Series{X: []float64{0, 0.5}, Y: []float64{-1519, 2.25}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "x,force\n0,-1519\n0.5,2.25\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteCSV_Mismatch(t *testing.T) {
	s := &force.Series{X: []float64{0, 1}, Y: []float64{0}}
	if err := WriteCSV(&bytes.Buffer{}, s); err == nil {
		t.Error("expected error for mismatched series")
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "float_1", Curve: "float"}
	s := &force.Series{X: []float64{0, 1}, Y: []float64{-1519, 391}}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, s); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "float_1" || got.Samples != 2 || got.Force[0] != -1519 {
		t.Errorf("unexpected export %+v", got)
	}
}

func TestRunMetadataResult(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	result := runCurve(t, "fin")
	runID, err := st.Save(result)
	if err != nil {
		t.Fatal(err)
	}
	meta, _ := st.Load(runID)
	series, _ := st.LoadSeries(runID)

	got := meta.Result(series)
	if got.Curve != "fin" || got.Domain != result.Domain {
		t.Errorf("unexpected result %s %+v", got.Curve, got.Domain)
	}
	if len(got.Warnings) != len(result.Warnings) || got.Summary.Max != result.Summary.Max {
		t.Error("warnings or summary lost")
	}
	if got.Series != series {
		t.Error("series not attached")
	}
}

// Odd constants propagate into the run; every storage path keeps them.
func TestStore_OddConstants(t *testing.T) {
	tests := []struct {
		name   string
		curve  string
		params map[string]float64
		check  func(t *testing.T, meta *RunMetadata, series *force.Series)
	}{
		{
			name:   "zero float area",
			curve:  "float",
			params: map[string]float64{"area": 0},
			check: func(t *testing.T, meta *RunMetadata, series *force.Series) {
				for _, d := range meta.Diagnostics {
					if d.Name == "equilibrium_draft" && !math.IsInf(d.Value, 1) {
						t.Errorf("equilibrium_draft = %v, want +Inf", d.Value)
					}
				}
				if series.Y[0] != -1519 {
					t.Errorf("force at zero draft = %v", series.Y[0])
				}
			},
		},
		{
			name:   "zero fin aspect ratio",
			curve:  "fin",
			params: map[string]float64{"aspect_ratio": 0},
			check: func(t *testing.T, meta *RunMetadata, series *force.Series) {
				if !math.IsNaN(series.Y[1]) {
					t.Errorf("expected NaN samples, got %v", series.Y[1])
				}
				if !math.IsNaN(meta.Summary.Mean) {
					t.Errorf("mean = %v, want NaN", meta.Summary.Mean)
				}
			},
		},
		{
			name:   "negative umbilical length",
			curve:  "umbilical",
			params: map[string]float64{"length": -10},
			check: func(t *testing.T, meta *RunMetadata, series *force.Series) {
				if meta.Params["length"] != -10 {
					t.Errorf("length = %v", meta.Params["length"])
				}
				for _, d := range meta.Diagnostics {
					if d.Name == "buoyancy_fb1" && d.Value >= 0 {
						t.Errorf("buoyancy = %v, want negative", d.Value)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := New(t.TempDir())
			if err := st.Init(); err != nil {
				t.Fatal(err)
			}

			result := runCurveWith(t, tt.curve, tt.params)
			runID, err := st.Save(result)
			if err != nil {
				t.Fatalf("save failed: %v", err)
			}

			meta, err := st.Load(runID)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			series, err := st.LoadSeries(runID)
			if err != nil {
				t.Fatalf("load series failed: %v", err)
			}
			if series.Len() != result.Series.Len() {
				t.Fatalf("expected %d samples, got %d", result.Series.Len(), series.Len())
			}
			tt.check(t, meta, series)

			if err := WriteCSV(&bytes.Buffer{}, series); err != nil {
				t.Errorf("csv export failed: %v", err)
			}
			var buf bytes.Buffer
			if err := ExportJSON(&buf, meta, series); err != nil {
				t.Fatalf("json export failed: %v", err)
			}
			var data ExportData
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Errorf("exported json does not parse: %v", err)
			}
		})
	}
}

func TestStoreSave_FailureLeavesNoRun(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	st.Init()

	result := runCurve(t, "float")
	result.Series = &force.Series{Name: "float", X: []float64{0, 1}, Y: []float64{0}}

	if _, err := st.Save(result); err == nil {
		t.Fatal("expected error for mismatched series")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed save left %d entries behind", len(entries))
	}
}
