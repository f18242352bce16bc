package config

import (
	"os"

	"laytime-calculator/internal/model"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// VesselConfig is the on-disk shape of a vessel profile (examples/vessels/*.yaml).
// Exactly one of Owner/Charter is used, selected by Mode.
type VesselConfig struct {
	Name              string            `yaml:"name,omitempty" json:"name,omitempty"`
	LadenSpeedKnots   float64           `yaml:"laden_speed_knots" json:"laden_speed_knots" validate:"gte=0"`
	BallastSpeedKnots float64           `yaml:"ballast_speed_knots" json:"ballast_speed_knots" validate:"gte=0"`
	Mode              string            `yaml:"mode" json:"mode" validate:"required,oneof=owner charter"`
	Consumption       ConsumptionConfig `yaml:"consumption" json:"consumption"`
	Owner             *OwnerConfig      `yaml:"owner,omitempty" json:"owner,omitempty"`
	Charter           *CharterConfig    `yaml:"charter,omitempty" json:"charter,omitempty"`
}

// ConsumptionConfig takes either a single rate, or laden/ballast/port rates.
// Setting any of the three switches to the split form; rate must then be unset.
type ConsumptionConfig struct {
	Rate    float64 `yaml:"rate,omitempty" json:"rate,omitempty" validate:"gte=0"`
	Laden   float64 `yaml:"laden,omitempty" json:"laden,omitempty" validate:"gte=0"`
	Ballast float64 `yaml:"ballast,omitempty" json:"ballast,omitempty" validate:"gte=0"`
	Port    float64 `yaml:"port,omitempty" json:"port,omitempty" validate:"gte=0"`
}

func (c ConsumptionConfig) Split() bool {
	return c.Laden != 0 || c.Ballast != 0 || c.Port != 0
}

func (c ConsumptionConfig) complete() bool {
	return c.Laden != 0 && c.Ballast != 0 && c.Port != 0
}

func (c ConsumptionConfig) check() error {
	if c.Rate != 0 && c.Split() {
		return &model.InvalidInputError{Field: "consumption", Reason: "rate cannot be combined with laden/ballast/port"}
	}
	return nil
}

// OwnerConfig holds monthly Rp amounts plus the purchase price.
type OwnerConfig struct {
	LoanInstallment float64 `yaml:"loan_installment" json:"loan_installment" validate:"gte=0"`
	Crew            float64 `yaml:"crew" json:"crew" validate:"gte=0"`
	Insurance       float64 `yaml:"insurance" json:"insurance" validate:"gte=0"`
	Docking         float64 `yaml:"docking" json:"docking" validate:"gte=0"`
	Maintenance     float64 `yaml:"maintenance" json:"maintenance" validate:"gte=0"`
	Certification   float64 `yaml:"certification" json:"certification" validate:"gte=0"`
	PurchasePrice   float64 `yaml:"purchase_price" json:"purchase_price" validate:"gte=0"`
}

type CharterConfig struct {
	Hire float64 `yaml:"hire" json:"hire" validate:"gte=0"`
}

func (v VesselConfig) Validate() error {
	if err := validate.Struct(v); err != nil {
		return err
	}
	_, err := v.ToModel()
	return err
}

// ToModel builds the calculator's vessel parameters. A cost block that does
// not match the mode is rejected rather than silently ignored.
func (v VesselConfig) ToModel() (model.VesselParams, error) {
	if err := v.Consumption.check(); err != nil {
		return model.VesselParams{}, err
	}
	p := model.VesselParams{
		Name:              v.Name,
		LadenSpeedKnots:   v.LadenSpeedKnots,
		BallastSpeedKnots: v.BallastSpeedKnots,
		Consumption: model.ConsumptionRates{
			Rate:    v.Consumption.Rate,
			Split:   v.Consumption.Split(),
			Laden:   v.Consumption.Laden,
			Ballast: v.Consumption.Ballast,
			Port:    v.Consumption.Port,
		},
	}
	switch model.CostMode(v.Mode) {
	case model.CostModeOwner:
		if v.Charter != nil {
			return p, &model.InvalidInputError{Field: "charter", Reason: "must be empty when mode is owner"}
		}
		var o OwnerConfig
		if v.Owner != nil {
			o = *v.Owner
		}
		p.Costs = model.OwnerCosts{
			LoanInstallment: o.LoanInstallment,
			Crew:            o.Crew,
			Insurance:       o.Insurance,
			Docking:         o.Docking,
			Maintenance:     o.Maintenance,
			Certification:   o.Certification,
			PurchasePrice:   o.PurchasePrice,
		}
	case model.CostModeCharter:
		if v.Owner != nil {
			return p, &model.InvalidInputError{Field: "owner", Reason: "must be empty when mode is charter"}
		}
		var c CharterConfig
		if v.Charter != nil {
			c = *v.Charter
		}
		p.Costs = model.CharterCosts{Hire: c.Hire}
	default:
		return p, &model.InvalidInputError{Field: "mode", Reason: "must be owner or charter (got \"" + v.Mode + "\")"}
	}
	return p, p.Validate()
}

// FromModel is the inverse of ToModel, used when saving profiles.
func FromModel(p model.VesselParams) VesselConfig {
	v := VesselConfig{
		Name:              p.Name,
		LadenSpeedKnots:   p.LadenSpeedKnots,
		BallastSpeedKnots: p.BallastSpeedKnots,
		Mode:              string(p.Mode()),
	}
	if p.Consumption.Split {
		v.Consumption = ConsumptionConfig{Laden: p.Consumption.Laden, Ballast: p.Consumption.Ballast, Port: p.Consumption.Port}
	} else {
		v.Consumption = ConsumptionConfig{Rate: p.Consumption.Rate}
	}
	switch c := p.Costs.(type) {
	case model.OwnerCosts:
		v.Owner = &OwnerConfig{
			LoanInstallment: c.LoanInstallment,
			Crew:            c.Crew,
			Insurance:       c.Insurance,
			Docking:         c.Docking,
			Maintenance:     c.Maintenance,
			Certification:   c.Certification,
			PurchasePrice:   c.PurchasePrice,
		}
	case model.CharterCosts:
		v.Charter = &CharterConfig{Hire: c.Hire}
	}
	return v
}

type vesselFileWrapper struct {
	Vessel VesselConfig `yaml:"vessel"`
}

// LoadVesselFile reads a vessel profile. The file is not validated; callers
// usually merge overrides first.
func LoadVesselFile(path string) (VesselConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return VesselConfig{}, errors.Wrapf(err, "read vessel file %s", path)
	}
	var w vesselFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return VesselConfig{}, errors.Wrapf(err, "parse vessel file %s", path)
	}
	return w.Vessel, nil
}

func SaveVesselFile(path string, v VesselConfig) error {
	raw, err := yaml.Marshal(vesselFileWrapper{Vessel: v})
	if err != nil {
		return errors.Wrap(err, "marshal vessel")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write vessel file %s", path)
	}
	return nil
}

// MergeVessel overlays non-zero fields from override onto base.
// This is used when loading a vessel file and then applying overrides from the request.
// Switching mode drops the cost block of the previous mode.
// A split consumption override on a single-rate base must set all three legs.
func MergeVessel(base, override VesselConfig) (VesselConfig, error) {
	if err := override.Consumption.check(); err != nil {
		return VesselConfig{}, err
	}
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	out.LadenSpeedKnots = pick(out.LadenSpeedKnots, override.LadenSpeedKnots)
	out.BallastSpeedKnots = pick(out.BallastSpeedKnots, override.BallastSpeedKnots)

	if override.Mode != "" && override.Mode != base.Mode {
		out.Mode = override.Mode
		switch model.CostMode(override.Mode) {
		case model.CostModeOwner:
			out.Charter = nil
		case model.CostModeCharter:
			out.Owner = nil
		}
	}

	// A split override replaces the single rate and vice versa.
	switch {
	case override.Consumption.Split():
		if !base.Consumption.Split() && !override.Consumption.complete() {
			return VesselConfig{}, &model.InvalidInputError{
				Field:  "consumption",
				Reason: "base profile uses a single rate; override must set laden, ballast and port",
			}
		}
		out.Consumption = ConsumptionConfig{
			Laden:   pick(out.Consumption.Laden, override.Consumption.Laden),
			Ballast: pick(out.Consumption.Ballast, override.Consumption.Ballast),
			Port:    pick(out.Consumption.Port, override.Consumption.Port),
		}
	case override.Consumption.Rate != 0:
		out.Consumption = ConsumptionConfig{Rate: override.Consumption.Rate}
	}

	if override.Owner != nil {
		o := OwnerConfig{}
		if out.Owner != nil {
			o = *out.Owner
		}
		o.LoanInstallment = pick(o.LoanInstallment, override.Owner.LoanInstallment)
		o.Crew = pick(o.Crew, override.Owner.Crew)
		o.Insurance = pick(o.Insurance, override.Owner.Insurance)
		o.Docking = pick(o.Docking, override.Owner.Docking)
		o.Maintenance = pick(o.Maintenance, override.Owner.Maintenance)
		o.Certification = pick(o.Certification, override.Owner.Certification)
		o.PurchasePrice = pick(o.PurchasePrice, override.Owner.PurchasePrice)
		out.Owner = &o
	}
	if override.Charter != nil {
		c := CharterConfig{}
		if out.Charter != nil {
			c = *out.Charter
		}
		c.Hire = pick(c.Hire, override.Charter.Hire)
		out.Charter = &c
	}
	return out, nil
}

func pick(base, override float64) float64 {
	if override != 0 {
		return override
	}
	return base
}
