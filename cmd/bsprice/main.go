// Command bsprice prices one European option with the Black-Scholes model
// and prints the call and put values together with their deltas.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"

	bs "github.com/joshi-prasad/go_bsoption"
)

type config struct {
	Ticker        string
	Spot          float64
	Strike        float64
	Volatility    float64
	YearsToExpiry float64
	RiskFreeRate  float64
	NumCalls      int
	NumPuts       int
}

func defaultConfig() config {
	return config{
		Ticker:        "DRW",
		Spot:          90,
		Strike:        100,
		Volatility:    0.4,
		YearsToExpiry: 0.3,
		RiskFreeRate:  0.05,
		NumCalls:      3,
		NumPuts:       2,
	}
}

func (c *config) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Ticker, "ticker", c.Ticker, "underlying ticker")
	fs.Float64Var(&c.Spot, "spot", c.Spot, "spot price of the underlying")
	fs.Float64Var(&c.Strike, "strike", c.Strike, "strike price")
	fs.Float64Var(&c.Volatility, "sigma", c.Volatility, "annualized volatility")
	fs.Float64Var(&c.YearsToExpiry, "yte", c.YearsToExpiry, "years to expiry")
	fs.Float64Var(&c.RiskFreeRate, "rfr", c.RiskFreeRate, "continuously compounded risk free rate")
	fs.IntVar(&c.NumCalls, "calls", c.NumCalls, "number of calls held, negative for short")
	fs.IntVar(&c.NumPuts, "puts", c.NumPuts, "number of puts held, negative for short")
}

func main() {
	cfg := defaultConfig()
	cfg.registerFlags(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg, os.Stdout); err != nil {
		glog.Exitf("bsprice: %v", err)
	}
}

// run writes nothing to w unless every value was computed.
func run(cfg config, w io.Writer) error {
	opt, err := bs.NewOption(
		cfg.Ticker,
		cfg.Strike,
		cfg.YearsToExpiry,
		cfg.Volatility,
		cfg.Spot,
		cfg.RiskFreeRate)
	if err != nil {
		return fmt.Errorf("building option %s: %w", cfg.Ticker, err)
	}
	glog.V(1).Infof("pricing %s S=%v K=%v sigma=%v T=%v r=%v",
		opt.Ticker(), opt.Spot(), opt.Strike(), opt.Volatility(),
		opt.TimeToExpiry(), opt.RiskFreeRate())

	call, err := opt.CallPrice()
	if err != nil {
		return fmt.Errorf("call price: %w", err)
	}
	put, err := opt.PutPrice()
	if err != nil {
		return fmt.Errorf("put price: %w", err)
	}
	total, err := opt.PortfolioDelta(cfg.NumCalls, cfg.NumPuts)
	if err != nil {
		return fmt.Errorf("portfolio delta: %w", err)
	}
	greeks, err := opt.Greeks()
	if err != nil {
		return fmt.Errorf("greeks: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "The price of the call option is: %s\n", fixed(call, 2))
	fmt.Fprintf(&buf, "The price of the put option is: %s\n", fixed(put, 2))
	fmt.Fprintf(&buf, "The total delta for %d calls and %d puts is: %s\n",
		cfg.NumCalls, cfg.NumPuts, fixed(total, 3))
	fmt.Fprintf(&buf, "The delta of one call option is: %s\n", fixed(greeks.CallDelta, 3))
	fmt.Fprintf(&buf, "The delta of one put option is: %s\n", fixed(greeks.PutDelta, 3))
	_, err = buf.WriteTo(w)
	return err
}

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
