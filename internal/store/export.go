// Package store persists planned trajectories for downstream guidance
// tooling.
package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/perchplan/internal/trajopt"
)

type ExportData struct {
	Solver   string    `json:"solver"`
	Timestep float64   `json:"timestep"`
	Steps    int       `json:"steps"`
	Cost     float64   `json:"cost"`
	X        []float64 `json:"x"`
	Z        []float64 `json:"z"`
	Theta    []float64 `json:"theta"`
	Phi      []float64 `json:"phi"`
	VX       []float64 `json:"vx"`
	VZ       []float64 `json:"vz"`
}

func exportData(solverName string, h, cost float64, t *trajopt.Trajectory) ExportData {
	return ExportData{
		Solver:   solverName,
		Timestep: h,
		Steps:    t.Len(),
		Cost:     cost,
		X:        t.X,
		Z:        t.Z,
		Theta:    t.Theta,
		Phi:      t.Phi,
		VX:       t.VX,
		VZ:       t.VZ,
	}
}

func ExportJSON(path, solverName string, h, cost float64, t *trajopt.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, solverName, h, cost, t)
}

func WriteJSON(w io.Writer, solverName string, h, cost float64, t *trajopt.Trajectory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(solverName, h, cost, t))
}
