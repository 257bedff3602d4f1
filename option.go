// Package go_bsoption prices European calls and puts with the closed-form
// Black-Scholes model and reports their delta and the remaining first-order
// greeks.
package go_bsoption

import (
	"math"

	"github.com/golang/glog"
)

// Option is an immutable set of contract and market parameters. The zero
// value is not a valid option; every pricing method rejects it with a
// *DomainError.
type Option struct {
	ticker       string
	strike       float64 /* K */
	timeToExpiry float64 /* T, years */
	volatility   float64 /* Sigma */
	spot         float64 /* S */
	riskFreeRate float64 /* r */
}

// NewOption validates the parameters and returns the option built from them.
func NewOption(
	ticker string,
	strike float64,
	timeToExpiry float64,
	volatility float64,
	spot float64,
	riskFreeRate float64) (Option, error) {
	o := Option{
		ticker:       ticker,
		strike:       strike,
		timeToExpiry: timeToExpiry,
		volatility:   volatility,
		spot:         spot,
		riskFreeRate: riskFreeRate,
	}
	if err := o.validate(); err != nil {
		return Option{}, err
	}
	return o, nil
}

func (o Option) Ticker() string { return o.ticker }
func (o Option) Strike() float64 { return o.strike }
func (o Option) TimeToExpiry() float64 { return o.timeToExpiry }
func (o Option) Volatility() float64 { return o.volatility }
func (o Option) Spot() float64 { return o.spot }
func (o Option) RiskFreeRate() float64 { return o.riskFreeRate }

func (o Option) validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"spot", o.spot},
		{"strike", o.strike},
		{"time to expiry", o.timeToExpiry},
		{"volatility", o.volatility},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			glog.V(1).Infof("rejecting option %q: %s=%v", o.ticker, p.name, p.value)
			return &DomainError{Param: p.name, Value: p.value}
		}
	}
	if math.IsNaN(o.riskFreeRate) || math.IsInf(o.riskFreeRate, 0) {
		glog.V(1).Infof("rejecting option %q: risk free rate=%v", o.ticker, o.riskFreeRate)
		return &DomainError{Param: "risk free rate", Value: o.riskFreeRate}
	}
	return nil
}
