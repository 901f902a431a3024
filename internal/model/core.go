package model

import (
	"encoding/json"
	"fmt"
)

// SiteAll is the site selector value meaning "do not filter by site".
const SiteAll = "ALL"

// Column names of the launch table.
const (
	ColLaunchSite             = "Launch Site"
	ColPayloadMass            = "Payload Mass (kg)"
	ColClass                  = "class"
	ColBoosterVersionCategory = "Booster Version Category"
	ColFlightNumber           = "Flight Number"
	ColBoosterVersion         = "Booster Version"
)

// LaunchRecord is one row of the launch table, a single launch attempt.
type LaunchRecord struct {
	FlightNumber           int     `json:"flight_number,omitempty"`
	LaunchSite             string  `json:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg"`
	Outcome                int     `json:"class"` // 1 success, 0 failure
	BoosterVersion         string  `json:"booster_version,omitempty"`
	BoosterVersionCategory string  `json:"booster_version_category"`
}

// Succeeded reports whether the launch outcome is a success.
func (r LaunchRecord) Succeeded() bool {
	return r.Outcome == 1
}

// MatchesSite reports whether the record passes the site selector.
func (r LaunchRecord) MatchesSite(site string) bool {
	return site == SiteAll || r.LaunchSite == site
}

// PayloadRange is the closed payload mass interval [Low, High] in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies inside the interval. An inverted
// interval contains nothing.
func (pr PayloadRange) Contains(mass float64) bool {
	return pr.Low <= mass && mass <= pr.High
}

// Widens reports whether pr includes every mass that other includes.
func (pr PayloadRange) Widens(other PayloadRange) bool {
	if other.Low > other.High {
		return true
	}
	return pr.Low <= other.Low && other.High <= pr.High
}

// ControlState is the current value of every input widget.
type ControlState struct {
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// MarshalJSON encodes the interval as a two-element [low, high] array, the
// shape a range slider reports.
func (pr PayloadRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{pr.Low, pr.High})
}

// UnmarshalJSON accepts either [low, high] or {"low": .., "high": ..}.
func (pr *PayloadRange) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("payload range needs 2 values, got %d", len(pair))
		}
		pr.Low, pr.High = pair[0], pair[1]
		return nil
	}
	var obj struct {
		Low  float64 `json:"low"`
		High float64 `json:"high"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid payload range: %w", err)
	}
	pr.Low, pr.High = obj.Low, obj.High
	return nil
}
