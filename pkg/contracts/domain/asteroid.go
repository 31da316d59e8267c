package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNonFinite is returned for NaN and infinite cell values
var ErrNonFinite = errors.New("value is not a finite number")

// FlagYes is the source value marking a record as near-Earth or potentially hazardous.
// Any other value, including an empty cell, means "no".
const FlagYes = "Y"

// Measurement is an optional numeric cell from the dataset.
// Raw keeps the original text so diagnostics can show what was in the file.
type Measurement struct {
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// ParseMeasurement converts a raw cell into a Measurement.
// An empty cell is absent and not an error. A non-empty cell that is not a
// finite number returns an error alongside an invalid Measurement.
func ParseMeasurement(raw string) (Measurement, error) {
	raw = strings.TrimSpace(raw)
	m := Measurement{Raw: raw}
	if raw == "" {
		return m, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return m, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return m, ErrNonFinite
	}
	m.Value = v
	m.Valid = true
	return m, nil
}

// Present reports whether the cell held a usable, finite number.
func (m Measurement) Present() bool {
	return m.Valid && !math.IsNaN(m.Value) && !math.IsInf(m.Value, 0)
}

// Asteroid is one row of the small-body dataset.
type Asteroid struct {
	// Row is the 1-based data row number in the source file (header excluded)
	Row int `json:"row"`

	Name      string `json:"full_name"`
	NearEarth bool   `json:"neo"`
	Hazardous bool   `json:"pha"`

	// Diameter in km
	Diameter Measurement `json:"diameter"`
	// Albedo is the unitless surface reflectivity
	Albedo Measurement `json:"albedo"`
	// Perihelion distance q in au
	Perihelion Measurement `json:"q"`
	// MOID is the Earth minimum orbit intersection distance in au.
	// Only required to be valid for hazardous objects.
	MOID Measurement `json:"moid"`
}

// IsFlagSet interprets a neo/pha column value.
func IsFlagSet(v string) bool {
	return strings.TrimSpace(v) == FlagYes
}
