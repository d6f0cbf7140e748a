package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/perchplan/internal/glider"
	"github.com/san-kum/perchplan/internal/trajopt"
)

const (
	DefaultTotalTime = 2.0
	DefaultSteps     = 20
)

// Config is the on-disk parameter document for one planning run: glider
// geometry and mass properties, the box limits, the horizon discretization
// and the cost weights.
type Config struct {
	Glider  GliderConfig  `yaml:"glider"`
	Limits  LimitsConfig  `yaml:"limits"`
	Horizon HorizonConfig `yaml:"horizon"`
	Weights WeightsConfig `yaml:"weights"`
}

type GliderConfig struct {
	LengthCGToWing      float64 `yaml:"length_cg_to_wing"`
	LengthPivotToElev   float64 `yaml:"length_pivot_to_elevator"`
	LengthCGToPivot     float64 `yaml:"length_cg_to_pivot"`
	SurfaceAreaWing     float64 `yaml:"surface_area_wing"`
	SurfaceAreaElevator float64 `yaml:"surface_area_elevator"`
	Mass                float64 `yaml:"mass"`
	MomentOfInertia     float64 `yaml:"moment_of_inertia"`
}

type LimitsConfig struct {
	Velocity     float64 `yaml:"velocity"`
	Pitch        float64 `yaml:"pitch"`
	Elevator     float64 `yaml:"elevator"`
	PitchRate    float64 `yaml:"pitch_rate"`
	ElevatorRate float64 `yaml:"elevator_rate"`
}

type HorizonConfig struct {
	TotalTime float64 `yaml:"total_time"`
	Steps     int     `yaml:"steps"`
}

type WeightsConfig struct {
	StateDiag [glider.StateDim]float64 `yaml:"state_diag"`
	Input     float64                  `yaml:"input"`
}

func DefaultConfig() *Config {
	m := glider.NewModel()
	return &Config{
		Glider: GliderConfig{
			LengthCGToWing:      m.LWing,
			LengthPivotToElev:   m.LElev,
			LengthCGToPivot:     m.LPivot,
			SurfaceAreaWing:     m.SWing,
			SurfaceAreaElevator: m.SElev,
			Mass:                m.Mass,
			MomentOfInertia:     m.Inertia,
		},
		Limits: LimitsConfig{
			Velocity:     10.0,
			Pitch:        1.57,
			Elevator:     1.57,
			PitchRate:    10.0,
			ElevatorRate: 13.0,
		},
		Horizon: HorizonConfig{
			TotalTime: DefaultTotalTime,
			Steps:     DefaultSteps,
		},
		Weights: WeightsConfig{
			StateDiag: [glider.StateDim]float64{10, 10, 1, 1, 1, 1, 1},
			Input:     0.1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	if c.Glider.Mass <= 0 {
		return fmt.Errorf("config: mass must be positive, got %f", c.Glider.Mass)
	}
	if c.Glider.MomentOfInertia <= 0 {
		return fmt.Errorf("config: moment of inertia must be positive, got %f", c.Glider.MomentOfInertia)
	}
	if c.Horizon.TotalTime <= 0 || c.Horizon.Steps <= 0 {
		return fmt.Errorf("config: horizon must be positive, got %f over %d steps",
			c.Horizon.TotalTime, c.Horizon.Steps)
	}
	return nil
}

// GliderModel builds the dynamics model described by the document.
func (c *Config) GliderModel() *glider.Model {
	return &glider.Model{
		LWing:   c.Glider.LengthCGToWing,
		LElev:   c.Glider.LengthPivotToElev,
		LPivot:  c.Glider.LengthCGToPivot,
		SWing:   c.Glider.SurfaceAreaWing,
		SElev:   c.Glider.SurfaceAreaElevator,
		Mass:    c.Glider.Mass,
		Inertia: c.Glider.MomentOfInertia,
	}
}

// PlannerBounds combines the document's box limits with the caller-supplied
// initial-position anchor sequences.
func (c *Config) PlannerBounds(anchorX, anchorZ []float64) trajopt.Bounds {
	return trajopt.Bounds{
		VelMax:       c.Limits.Velocity,
		PitchMax:     c.Limits.Pitch,
		ElevMax:      c.Limits.Elevator,
		PitchRateMax: c.Limits.PitchRate,
		ElevRateMax:  c.Limits.ElevatorRate,
		AnchorX:      anchorX,
		AnchorZ:      anchorZ,
	}
}

// PlannerWeights builds the quadratic cost weights from the document's
// diagonal state weights and input weight.
func (c *Config) PlannerWeights() trajopt.Weights {
	return trajopt.DiagonalWeights(c.Weights.StateDiag, c.Weights.Input)
}

// Timestep is the uniform collocation timestep h = total/steps.
func (c *Config) Timestep() float64 {
	return c.Horizon.TotalTime / float64(c.Horizon.Steps)
}
