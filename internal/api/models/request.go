package models

import "laytime-calculator/internal/config"

// LaytimeRequest is the body of POST /api/v1/laytime.
// It carries the same fields as a laytime job file.
type LaytimeRequest struct {
	config.LaytimeConfig
	Options LaytimeOptions `json:"options,omitempty"`
}

type LaytimeOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// VoyageCostRequest is the body of POST /api/v1/voyage-cost.
// vessel_file names a stored vessel profile; vessel fields override it.
type VoyageCostRequest struct {
	config.VoyageConfig
}

// CompareRequest runs one route against several stored vessel profiles.
type CompareRequest struct {
	Route     config.RouteConfig `json:"route" binding:"required"`
	CargoTons float64            `json:"cargo_tons"`
	Vessels   []string           `json:"vessels" binding:"required,min=1"`
}
