package config

import (
	"os"
	"path/filepath"

	"laytime-calculator/internal/model"
	"laytime-calculator/internal/report"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// VoyageConfig is a voyage cost job (examples/jobs/*voyage*.yaml).
type VoyageConfig struct {
	Meta report.Meta `yaml:"meta" json:"meta"`
	// Optional: load vessel parameters from a separate YAML (e.g. examples/vessels/*.yaml).
	// If both VesselFile and Vessel are provided, Vessel overrides VesselFile.
	VesselFile string       `yaml:"vessel_file,omitempty" json:"vessel_file,omitempty"`
	Vessel     VesselConfig `yaml:"vessel" json:"vessel"`
	Route      RouteConfig  `yaml:"route" json:"route"`
	CargoTons  float64      `yaml:"cargo_tons" json:"cargo_tons" validate:"gte=0"`
}

type RouteConfig struct {
	LadenDistanceNM   float64 `yaml:"laden_distance_nm" json:"laden_distance_nm" validate:"gte=0"`
	BallastDistanceNM float64 `yaml:"ballast_distance_nm" json:"ballast_distance_nm" validate:"gte=0"`
	PortDays          float64 `yaml:"port_days" json:"port_days" validate:"gte=0"`
	BunkerPrice       float64 `yaml:"bunker_price" json:"bunker_price" validate:"gte=0"`
	FreshWaterPrice   float64 `yaml:"fresh_water_price" json:"fresh_water_price" validate:"gte=0"`
	PortCostPerCall   float64 `yaml:"port_cost_per_call" json:"port_cost_per_call" validate:"gte=0"`
	PremiumPerMile    float64 `yaml:"premium_per_mile" json:"premium_per_mile" validate:"gte=0"`
	AssistTug         float64 `yaml:"assist_tug" json:"assist_tug" validate:"gte=0"`
	OtherCost         float64 `yaml:"other_cost" json:"other_cost" validate:"gte=0"`
}

func (r RouteConfig) ToModel() model.RouteParams {
	return model.RouteParams{
		LadenDistanceNM:   r.LadenDistanceNM,
		BallastDistanceNM: r.BallastDistanceNM,
		PortDays:          r.PortDays,
		BunkerPrice:       r.BunkerPrice,
		FreshWaterPrice:   r.FreshWaterPrice,
		PortCostPerCall:   r.PortCostPerCall,
		PremiumPerMile:    r.PremiumPerMile,
		AssistTug:         r.AssistTug,
		OtherCost:         r.OtherCost,
	}
}

func Load(path string) (*VoyageConfig, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*VoyageConfig, error) {
	return LoadUncheckedWith(path, func(ref string) (VesselConfig, error) {
		vesselPath := ref
		if !filepath.IsAbs(vesselPath) {
			// Relative paths resolve against the config file directory first,
			// then against the working directory.
			cand := filepath.Join(filepath.Dir(path), vesselPath)
			if _, err := os.Stat(cand); err == nil {
				vesselPath = cand
			}
		}
		return LoadVesselFile(vesselPath)
	})
}

// VesselResolver loads the profile named by vessel_file.
type VesselResolver func(ref string) (VesselConfig, error)

// LoadUncheckedWith is LoadUnchecked with a custom vessel_file lookup, such
// as a profile directory keyed by id.
func LoadUncheckedWith(path string, resolve VesselResolver) (*VoyageConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var c VoyageConfig
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if c.VesselFile != "" {
		loaded, err := resolve(c.VesselFile)
		if err != nil {
			return nil, err
		}
		merged, err := MergeVessel(loaded, c.Vessel)
		if err != nil {
			return nil, err
		}
		c.Vessel = merged
	}
	return &c, nil
}

func (c *VoyageConfig) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := c.Vessel.ToModel(); err != nil {
		return err
	}
	return c.Route.ToModel().Validate()
}
