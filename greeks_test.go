package go_bsoption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeks(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
		want Greeks
	}{
		{
			name: "DRW",
			opt:  drw(t),
			want: Greeks{
				CallDelta: 0.3809857305181229,
				PutDelta:  -0.6190142694818771,
				Gamma:     0.01932524257106982,
				Vega:      0.1878413577907986,
				CallTheta: -0.038368684113464106,
				PutTheta:  -0.024874000009312565,
				CallRho:   0.08890875092166929,
				PutRho:    -0.20662483095924952,
			},
		},
		{
			name: "ATM one year",
			opt:  mustOption(t, 100, 100, 0.2, 1, 0.05),
			want: Greeks{
				CallDelta: 0.636830651175619,
				PutDelta:  -0.363169348824381,
				Gamma:     0.018762017345846895,
				Vega:      0.3752403469169379,
				CallTheta: -0.01757267820941972,
				PutTheta:  -0.004542138147766099,
				CallRho:   0.5323248154537634,
				PutRho:    -0.4189046090469506,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.opt.Greeks()
			require.NoError(t, err)

			const tol = 1e-12
			assert.InDelta(t, tc.want.CallDelta, g.CallDelta, tol)
			assert.InDelta(t, tc.want.PutDelta, g.PutDelta, tol)
			assert.InDelta(t, tc.want.Gamma, g.Gamma, tol)
			assert.InDelta(t, tc.want.Vega, g.Vega, tol)
			assert.InDelta(t, tc.want.CallTheta, g.CallTheta, tol)
			assert.InDelta(t, tc.want.PutTheta, g.PutTheta, tol)
			assert.InDelta(t, tc.want.CallRho, g.CallRho, tol)
			assert.InDelta(t, tc.want.PutRho, g.PutRho, tol)
		})
	}
}

func TestGreeksMatchSingleMethods(t *testing.T) {
	o := drw(t)
	g, err := o.Greeks()
	require.NoError(t, err)

	single := []struct {
		name string
		fn   func() (float64, error)
		want float64
	}{
		{"CallDelta", o.CallDelta, g.CallDelta},
		{"PutDelta", o.PutDelta, g.PutDelta},
		{"Gamma", o.Gamma, g.Gamma},
		{"Vega", o.Vega, g.Vega},
		{"CallTheta", o.CallTheta, g.CallTheta},
		{"PutTheta", o.PutTheta, g.PutTheta},
		{"CallRho", o.CallRho, g.CallRho},
		{"PutRho", o.PutRho, g.PutRho},
	}
	for _, s := range single {
		v, err := s.fn()
		require.NoError(t, err, s.name)
		assert.Equal(t, s.want, v, s.name)
	}
}

// Rho of a call minus rho of a put is the strike's sensitivity to r,
// K * T * exp(-r * T) per 1%.
func TestRhoParity(t *testing.T) {
	for _, o := range validGrid() {
		g, err := o.Greeks()
		require.NoError(t, err)
		df, err := o.Discount()
		require.NoError(t, err)
		assert.InDelta(t, o.Strike()*o.TimeToExpiry()*df*0.01, g.CallRho-g.PutRho, 1e-12)
	}
}
