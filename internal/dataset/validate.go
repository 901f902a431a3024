package dataset

import (
	"errors"
	"fmt"
	"math"

	"spacex-dashboard/internal/model"
	"spacex-dashboard/pkg/utils"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidRecord = errors.New("invalid launch record")
)

// ValidationRules defines the requirements a raw row must satisfy.
type ValidationRules struct {
	RequiredFields []string           // fields that must be present and non-empty
	NumericFields  []string           // fields that must be numeric
	IntegerFields  []string           // numeric fields without a fractional part
	MinValues      map[string]float64 // min allowed numeric values
	MaxValues      map[string]float64 // max allowed numeric values
}

// LaunchRules are the rules every row of the launch table must pass.
var LaunchRules = ValidationRules{
	RequiredFields: []string{
		model.ColLaunchSite,
		model.ColPayloadMass,
		model.ColClass,
		model.ColBoosterVersionCategory,
	},
	NumericFields: []string{model.ColPayloadMass, model.ColClass},
	IntegerFields: []string{model.ColClass},
	MinValues: map[string]float64{
		model.ColPayloadMass: 0,
		model.ColClass:       0,
	},
	MaxValues: map[string]float64{
		model.ColClass: 1,
	},
}

// checkHeader verifies every required column is present.
func checkHeader(headers []string, rules ValidationRules) error {
	have := make(map[string]bool, len(headers))
	for _, h := range headers {
		have[h] = true
	}
	for _, field := range rules.RequiredFields {
		if !have[field] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, field)
		}
	}
	return nil
}

// validateRecord applies validation rules to a raw row.
func validateRecord(rec GenericRecord, rules ValidationRules) error {
	for _, field := range rules.RequiredFields {
		val, ok := rec[field]
		if !ok || val == "" {
			return fmt.Errorf("%w: missing required field: %s", ErrInvalidRecord, field)
		}
	}

	for _, field := range rules.NumericFields {
		val, ok := rec[field]
		if !ok {
			continue
		}
		if _, isNum := utils.Numeric(val); !isNum {
			return fmt.Errorf("%w: field %s must be numeric, got %q", ErrInvalidRecord, field, fmt.Sprint(val))
		}
	}

	for _, field := range rules.IntegerFields {
		if num, ok := utils.Numeric(rec[field]); ok && !utils.IsIntegral(num) {
			return fmt.Errorf("%w: field %s must be an integer, got %v", ErrInvalidRecord, field, num)
		}
	}

	for field, min := range rules.MinValues {
		if num, ok := utils.Numeric(rec[field]); ok && num < min {
			return fmt.Errorf("%w: field %s below minimum: got %v, want ≥ %v", ErrInvalidRecord, field, num, min)
		}
	}

	for field, max := range rules.MaxValues {
		if num, ok := utils.Numeric(rec[field]); ok && num > max {
			return fmt.Errorf("%w: field %s above maximum: got %v, want ≤ %v", ErrInvalidRecord, field, num, max)
		}
	}

	return nil
}

// checkLaunch enforces the table invariants on a typed record.
func checkLaunch(rec model.LaunchRecord) error {
	switch {
	case rec.LaunchSite == "":
		return fmt.Errorf("%w: empty launch site", ErrInvalidRecord)
	case rec.BoosterVersionCategory == "":
		return fmt.Errorf("%w: empty booster version category", ErrInvalidRecord)
	case math.IsNaN(rec.PayloadMassKg) || math.IsInf(rec.PayloadMassKg, 0):
		return fmt.Errorf("%w: payload mass is not a number", ErrInvalidRecord)
	case rec.PayloadMassKg < 0:
		return fmt.Errorf("%w: negative payload mass %v", ErrInvalidRecord, rec.PayloadMassKg)
	case rec.Outcome != 0 && rec.Outcome != 1:
		return fmt.Errorf("%w: outcome must be 0 or 1, got %d", ErrInvalidRecord, rec.Outcome)
	}
	return nil
}
