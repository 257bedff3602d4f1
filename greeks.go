package go_bsoption

// Greeks is a snapshot of the sensitivities of one call and one put written
// on the same Option.
type Greeks struct {
	CallDelta float64
	PutDelta  float64
	Gamma     float64 // same for call and put
	Vega      float64 // per 1 vol point, same for call and put
	CallTheta float64 // per calendar day
	PutTheta  float64
	CallRho   float64 // per 1% move in r
	PutRho    float64
}

// Greeks computes every sensitivity from a single evaluation of d1 and d2.
func (o Option) Greeks() (Greeks, error) {
	t, err := o.terms()
	if err != nil {
		return Greeks{}, err
	}
	callDelta := normCdf(t.d1)
	return Greeks{
		CallDelta: callDelta,
		PutDelta:  callDelta - 1,
		Gamma:     o.gamma(t),
		Vega:      o.vega(t),
		CallTheta: o.callTheta(t) / 365,
		PutTheta:  o.putTheta(t) / 365,
		CallRho:   o.callRho(t) * 0.01,
		PutRho:    o.putRho(t) * 0.01,
	}, nil
}

func (o Option) Gamma() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.gamma(t), nil
}

func (o Option) Vega() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.vega(t), nil
}

func (o Option) CallTheta() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.callTheta(t) / 365, nil
}

func (o Option) PutTheta() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.putTheta(t) / 365, nil
}

func (o Option) CallRho() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.callRho(t) * 0.01, nil
}

func (o Option) PutRho() (float64, error) {
	t, err := o.terms()
	if err != nil {
		return 0, err
	}
	return o.putRho(t) * 0.01, nil
}

func (o Option) gamma(t terms) float64 {
	return normPdf(t.d1) / (o.spot * t.a)
}

func (o Option) vega(t terms) float64 {
	return o.spot * normPdf(t.d1) * t.sqrtT * 0.01
}

// theta = (-S * N'(d1) * σ / (2 * √T)) - (r * K * exp(-r * T) * N(d2))
func (o Option) callTheta(t terms) float64 {
	return (-o.spot * normPdf(t.d1) * o.volatility / (2 * t.sqrtT)) -
		(o.riskFreeRate * o.strike * t.deflater * normCdf(t.d2))
}

// theta = (-S * N'(d1) * σ / (2 * √T)) + (r * K * exp(-r * T) * N(-d2))
func (o Option) putTheta(t terms) float64 {
	return (-o.spot * normPdf(t.d1) * o.volatility / (2 * t.sqrtT)) +
		(o.riskFreeRate * o.strike * t.deflater * normCdf(-t.d2))
}

// rho = K * T * exp(-r * T) * N(d2)
func (o Option) callRho(t terms) float64 {
	return o.strike * o.timeToExpiry * t.deflater * normCdf(t.d2)
}

// rho = -K * T * exp(-r * T) * N(-d2)
func (o Option) putRho(t terms) float64 {
	return -o.strike * o.timeToExpiry * t.deflater * normCdf(-t.d2)
}
