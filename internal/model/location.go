package model

import (
	"fmt"
	"strings"
)

// Location identifies which end of the voyage a port log belongs to.
// Keep these values stable; they are intended for CSV output.
type Location string

const (
	LocationPOL Location = "POL"
	LocationPOD Location = "POD"
)

func ParseLocation(s string) (Location, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(LocationPOL):
		return LocationPOL, nil
	case string(LocationPOD):
		return LocationPOD, nil
	default:
		return "", &InvalidInputError{Field: "location", Reason: fmt.Sprintf("unknown location %q, expected POL or POD", s)}
	}
}

// Title is the long form used in report headings.
func (l Location) Title() string {
	switch l {
	case LocationPOL:
		return "Port of Loading (POL)"
	case LocationPOD:
		return "Port of Discharge (POD)"
	default:
		return string(l)
	}
}
