package go_bsoption

import "math"

// terms holds the quantities every Black-Scholes output is built from.
type terms struct {
	sqrtT    float64
	a        float64 // sigma * sqrt(T), the stdev of log returns to expiry
	d1       float64
	d2       float64
	deflater float64 // exp(-r * T)
}

func (o Option) terms() (terms, error) {
	if err := o.validate(); err != nil {
		return terms{}, err
	}
	t := terms{sqrtT: math.Sqrt(o.timeToExpiry)}
	t.a = o.volatility * t.sqrtT

	// d1 = (ln(S / K) + (r + σ² / 2) * T) / (σ * √T)
	t.d1 = (math.Log(o.spot/o.strike) +
		(o.riskFreeRate+o.volatility*o.volatility/2)*o.timeToExpiry) / t.a
	if math.IsNaN(t.d1) || math.IsInf(t.d1, 0) {
		return terms{}, &NumericOverflowError{Quantity: "d1", Value: t.d1}
	}
	// d2 = d1 - σ * √T
	t.d2 = t.d1 - t.a

	t.deflater = math.Exp(-o.riskFreeRate * o.timeToExpiry)
	if math.IsInf(t.deflater, 0) {
		return terms{}, &NumericOverflowError{Quantity: "discount factor", Value: t.deflater}
	}
	return t, nil
}

// D1 returns the d1 term of the Black-Scholes formula.
func (o Option) D1() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return t.d1, nil
}

// D2 returns d1 - σ√T.
func (o Option) D2() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return t.d2, nil
}

// Discount returns the factor exp(-r * T) that brings the strike to present
// value.
func (o Option) Discount() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return t.deflater, nil
}

// CallPrice returns the European call value S * N(d1) - K * exp(-r * T) * N(d2).
func (o Option) CallPrice() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.callPrice(t), nil
}

// PutPrice returns the European put value K * exp(-r * T) * N(-d2) - S * N(-d1).
func (o Option) PutPrice() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.putPrice(t), nil
}

// CallDelta returns N(d1).
func (o Option) CallDelta() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return normCdf(t.d1), nil
}

// PutDelta returns N(d1) - 1.
func (o Option) PutDelta() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return normCdf(t.d1) - 1, nil
}

// PortfolioDelta returns the delta of numCalls calls and numPuts puts on this
// option. Negative counts are short positions.
func (o Option) PortfolioDelta(numCalls, numPuts int) (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	callDelta := normCdf(t.d1)
	putDelta := callDelta - 1
	return float64(numCalls)*callDelta + float64(numPuts)*putDelta, nil
}

func (o Option) callPrice(t terms) float64 {
	return (o.spot * normCdf(t.d1)) -
		(o.strike * t.deflater * normCdf(t.d2))
}

func (o Option) putPrice(t terms) float64 {
	return (o.strike * t.deflater * normCdf(-t.d2)) -
		(o.spot * normCdf(-t.d1))
}
