package models

import (
	"laytime-calculator/internal/config"
	"laytime-calculator/internal/report"
)

// LaytimeResponse represents the response from a laytime calculation
type LaytimeResponse struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	Summary   LaytimeSummary `json:"summary"`
	Formatted Formatted      `json:"formatted"`
	Ledger    []LedgerRow    `json:"ledger,omitempty"`
}

// LaytimeSummary holds the unrounded figures; Formatted holds display strings.
type LaytimeSummary struct {
	Policy        string  `json:"policy"`
	PolHours      float64 `json:"pol_hours"`
	PodHours      float64 `json:"pod_hours"`
	TotalHours    float64 `json:"total_hours"`
	TotalDays     float64 `json:"total_days"`
	FreeTimeDays  float64 `json:"free_time_days"`
	DetentionDays float64 `json:"detention_days"`
	RatePerDay    float64 `json:"rate_per_day"`
	TotalCost     float64 `json:"total_cost"`
}

type Formatted struct {
	Info    []report.Line `json:"info,omitempty"`
	Summary []report.Line `json:"summary"`
}

// LedgerRow represents one entry of a port log with its elapsed hours
type LedgerRow struct {
	Index    int     `json:"index"`
	Location string  `json:"location"`
	Date     string  `json:"date,omitempty"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Note     string  `json:"note,omitempty"`
	Start    string  `json:"start,omitempty"`
	End      string  `json:"end,omitempty"`
	Hours    float64 `json:"hours"`
	CumHours float64 `json:"cum_hours"`
}

type LedgerResponse struct {
	ID     string      `json:"id"`
	Ledger []LedgerRow `json:"ledger"`
}

// VoyageCostResponse represents the response from a voyage cost estimate
type VoyageCostResponse struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	Summary   VoyageSummary    `json:"summary"`
	Breakdown []CostLine       `json:"breakdown"`
	Scenarios []ProfitScenario `json:"scenarios"`
	Formatted VoyageFormatted  `json:"formatted"`
}

type VoyageSummary struct {
	Vessel           string  `json:"vessel"`
	Mode             string  `json:"mode"`
	CargoTons        float64 `json:"cargo_tons"`
	LadenHours       float64 `json:"laden_hours"`
	BallastHours     float64 `json:"ballast_hours"`
	SailingHours     float64 `json:"sailing_hours"`
	VoyageDays       float64 `json:"voyage_days"`
	TotalConsumption float64 `json:"total_consumption"`
	TotalCost        float64 `json:"total_cost"`
	CostPerTon       float64 `json:"cost_per_ton"`
}

type CostLine struct {
	Label  string  `json:"label"`
	Group  string  `json:"group"` // "general" or the cost mode
	Amount float64 `json:"amount"`
}

type ProfitScenario struct {
	ProfitPct     float64 `json:"profit_pct"`
	FreightPerTon float64 `json:"freight_per_ton"`
	Revenue       float64 `json:"revenue"`
	Tax           float64 `json:"tax"`
	NetProfit     float64 `json:"net_profit"`
}

type ScenariosResponse struct {
	ID        string           `json:"id"`
	Scenarios []ProfitScenario `json:"scenarios"`
}

type VoyageFormatted struct {
	Summary   []report.Line        `json:"summary"`
	Scenarios []report.ScenarioRow `json:"scenarios"`
}

// CompareResponse lists vessels from cheapest to most expensive per ton.
type CompareResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked vessel. Failed estimates carry Error and
// come last.
type Ranking struct {
	Rank       int     `json:"rank"`
	VesselID   string  `json:"vessel_id"`
	Vessel     string  `json:"vessel,omitempty"`
	Mode       string  `json:"mode,omitempty"`
	VoyageDays float64 `json:"voyage_days,omitempty"`
	TotalCost  float64 `json:"total_cost,omitempty"`
	CostPerTon float64 `json:"cost_per_ton,omitempty"`
	BunkerCost float64 `json:"bunker_cost,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// VesselInfo represents information about a vessel profile
type VesselInfo struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Mode              string  `json:"mode"`
	File              string  `json:"file"`
	LadenSpeedKnots   float64 `json:"laden_speed_knots"`
	BallastSpeedKnots float64 `json:"ballast_speed_knots"`
}

type VesselResponse struct {
	ID     string              `json:"id"`
	Vessel config.VesselConfig `json:"vessel"`
}

// PolicyInfo represents information about a duration policy
type PolicyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RowShape    string `json:"row_shape"`
	Default     bool   `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
