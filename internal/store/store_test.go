package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/perchplan/internal/trajopt"
)

func sampleTrajectory() *trajopt.Trajectory {
	return &trajopt.Trajectory{
		X:     []float64{0, 0.5, 1.0},
		Z:     []float64{0, -0.1, -0.3},
		Theta: []float64{0, 0.2, 0.6},
		Phi:   []float64{0, -0.1, -0.2},
		VX:    []float64{5, 4.5, 3.8},
		VZ:    []float64{0, -0.8, -1.5},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, "cobyla", 0.1, 42.5, sampleTrajectory()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data.Solver != "cobyla" || data.Steps != 3 {
		t.Errorf("header mangled: %+v", data)
	}
	if data.Cost != 42.5 || data.Timestep != 0.1 {
		t.Errorf("run metadata mangled: %+v", data)
	}
	if len(data.Theta) != 3 || data.Theta[2] != 0.6 {
		t.Errorf("pitch channel mangled: %v", data.Theta)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectory.json")
	if err := ExportJSON(path, "stub", 0.05, 1.5, sampleTrajectory()); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if data.Steps != 3 {
		t.Errorf("expected 3 steps, got %d", data.Steps)
	}
}
