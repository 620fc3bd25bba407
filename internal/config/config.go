package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chargebox/internal/engine"
)

// Physical defaults: ten electrons in a 1000x800 px window at 1e-4 m/px.
const (
	DefaultPopulation = 10
	DefaultWidth      = 0.1  // meters
	DefaultHeight     = 0.08 // meters
	DefaultDt         = 5e-7 // seconds
	DefaultCharge     = -1.602e-19
	DefaultMass       = 9.1093837e-31
	DefaultK          = 8.99e9
	DefaultV0         = 1e3 // m/s
	DefaultMinDist    = 1e-12
	DefaultSubsteps   = 10
	DefaultFrames     = 300
)

type Config struct {
	Population int     `yaml:"population"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Dt         float64 `yaml:"dt"`
	Charge     float64 `yaml:"charge"`
	Mass       float64 `yaml:"mass"`
	K          float64 `yaml:"k"`
	V0         float64 `yaml:"v0"`
	MinDist    float64 `yaml:"min_dist"`
	Seed       int64   `yaml:"seed"`
	Substeps   int     `yaml:"substeps"`
	Frames     int     `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		Population: DefaultPopulation,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Dt:         DefaultDt,
		Charge:     DefaultCharge,
		Mass:       DefaultMass,
		K:          DefaultK,
		V0:         DefaultV0,
		MinDist:    DefaultMinDist,
		Substeps:   DefaultSubsteps,
		Frames:     DefaultFrames,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EngineParams maps the config onto the engine's physical parameters.
func (c *Config) EngineParams() engine.Params {
	return engine.Params{
		Population: c.Population,
		Width:      c.Width,
		Height:     c.Height,
		Dt:         c.Dt,
		Charge:     c.Charge,
		Mass:       c.Mass,
		K:          c.K,
		V0:         c.V0,
		MinDist:    c.MinDist,
	}
}
