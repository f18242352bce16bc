package config

import (
	"fmt"
	"os"

	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/model"
	"laytime-calculator/internal/report"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LaytimeConfig is a laytime job (examples/jobs/*laytime*.yaml).
// Each port log carries either events (span policy) or rows (interval policy).
type LaytimeConfig struct {
	Meta   report.Meta   `yaml:"meta" json:"meta"`
	Policy string        `yaml:"policy,omitempty" json:"policy,omitempty" validate:"omitempty,oneof=span interval_sum"`
	Terms  TermsConfig   `yaml:"terms" json:"terms"`
	POL    PortLogConfig `yaml:"pol" json:"pol"`
	POD    PortLogConfig `yaml:"pod" json:"pod"`
}

type TermsConfig struct {
	FreeTimeDays float64 `yaml:"free_time_days" json:"free_time_days" validate:"gte=0"`
	RatePerDay   float64 `yaml:"rate_per_day" json:"rate_per_day" validate:"gte=0"`
}

type PortLogConfig struct {
	Events []EventConfig `yaml:"events,omitempty" json:"events,omitempty" validate:"dive"`
	Rows   []RowConfig   `yaml:"rows,omitempty" json:"rows,omitempty" validate:"dive"`
}

type EventConfig struct {
	Date string `yaml:"date" json:"date" validate:"required,isodate"`
	Time string `yaml:"time" json:"time" validate:"required,hhmm"`
	Note string `yaml:"note,omitempty" json:"note,omitempty"`
}

type RowConfig struct {
	Date string `yaml:"date,omitempty" json:"date,omitempty" validate:"omitempty,isodate"`
	From string `yaml:"from" json:"from" validate:"required,hhmm"`
	To   string `yaml:"to" json:"to" validate:"required,hhmm"`
	Note string `yaml:"note,omitempty" json:"note,omitempty"`
}

// LaytimeJob is a validated laytime job ready for the engine.
type LaytimeJob struct {
	Meta   report.Meta
	Policy laytime.DurationPolicy
	Terms  model.FreeTimeTerms
	POL    model.PortLog
	POD    model.PortLog
}

func (c TermsConfig) ToModel() model.FreeTimeTerms {
	return model.FreeTimeTerms{FreeTimeDays: c.FreeTimeDays, RatePerDay: c.RatePerDay}
}

func LoadLaytime(path string) (*LaytimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var c LaytimeConfig
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return &c, nil
}

// ToModel validates the job and converts it. An empty policy means interval_sum.
func (c *LaytimeConfig) ToModel() (*LaytimeJob, error) {
	if c == nil {
		return nil, errors.New("laytime config is nil")
	}
	if err := validate.Struct(c); err != nil {
		return nil, err
	}
	policy := laytime.PolicyIntervalSum
	if c.Policy != "" {
		p, err := laytime.ParsePolicy(c.Policy)
		if err != nil {
			return nil, err
		}
		policy = p
	}
	pol, err := c.POL.ToModel(model.LocationPOL)
	if err != nil {
		return nil, err
	}
	pod, err := c.POD.ToModel(model.LocationPOD)
	if err != nil {
		return nil, err
	}
	return &LaytimeJob{
		Meta:   c.Meta,
		Policy: policy,
		Terms:  c.Terms.ToModel(),
		POL:    pol,
		POD:    pod,
	}, nil
}

func (c PortLogConfig) ToModel(loc model.Location) (model.PortLog, error) {
	log := model.PortLog{Location: loc}
	for i, e := range c.Events {
		field := fmt.Sprintf("%s.events[%d]", loc, i)
		d, err := model.ParseDate(e.Date)
		if err != nil {
			return log, &model.InvalidInputError{Field: field + ".date", Reason: err.Error()}
		}
		t, err := model.ParseClock(e.Time)
		if err != nil {
			return log, &model.InvalidInputError{Field: field + ".time", Reason: err.Error()}
		}
		log.Events = append(log.Events, model.VoyageEvent{Location: loc, Date: d, Time: t, Note: e.Note})
	}
	for i, r := range c.Rows {
		field := fmt.Sprintf("%s.rows[%d]", loc, i)
		var d model.Date
		if r.Date != "" {
			parsed, err := model.ParseDate(r.Date)
			if err != nil {
				return log, &model.InvalidInputError{Field: field + ".date", Reason: err.Error()}
			}
			d = parsed
		}
		from, err := model.ParseClock(r.From)
		if err != nil {
			return log, &model.InvalidInputError{Field: field + ".from", Reason: err.Error()}
		}
		to, err := model.ParseClock(r.To)
		if err != nil {
			return log, &model.InvalidInputError{Field: field + ".to", Reason: err.Error()}
		}
		log.Rows = append(log.Rows, model.IntervalRow{Date: d, From: from, To: to, Note: r.Note})
	}
	return log, nil
}
