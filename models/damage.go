package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDamagePolicy = errors.New("invalid damage policy")

// DamagePolicy maps the mass of the vehicle hit to the health lost
type DamagePolicy func(mass float64) float64

// LinearDamage removes factor * mass health per hit
func LinearDamage(factor float64) DamagePolicy {
	return func(mass float64) float64 {
		return factor * mass
	}
}

// FixedDamage removes the same amount per hit regardless of mass
func FixedDamage(amount float64) DamagePolicy {
	return func(float64) float64 {
		return amount
	}
}

// ParseDamagePolicy builds a policy by name: "linear" uses factor, "fixed"
// uses amount.
func ParseDamagePolicy(name string, factor, amount float64) (DamagePolicy, error) {
	switch strings.ToLower(name) {
	case "linear", "":
		if factor < 0 {
			return nil, fmt.Errorf("%w: negative linear factor %v", ErrInvalidDamagePolicy, factor)
		}
		return LinearDamage(factor), nil
	case "fixed":
		if amount < 0 {
			return nil, fmt.Errorf("%w: negative fixed amount %v", ErrInvalidDamagePolicy, amount)
		}
		return FixedDamage(amount), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDamagePolicy, name)
	}
}
