//nolint:funlen // ok for tests
package normalize

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/lapcompare/pkg/model"
)

func pts(xy ...int) []model.Position {
	ret := make([]model.Position, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		ret = append(ret, model.Position{X: xy[i], Y: xy[i+1]})
	}
	return ret
}

func TestNormalize(t *testing.T) {
	type args struct {
		a, b          []model.Position
		width, height int
		margin        int
	}
	tests := []struct {
		name  string
		args  args
		wantA []model.Position
		wantB []model.Position
		ratio float64
	}{
		{
			name:  "fits already",
			args:  args{a: pts(0, 0, 10, 20), b: pts(5, 5), width: 100, height: 100},
			wantA: pts(45, 40, 55, 60),
			wantB: pts(50, 45),
			ratio: 1,
		},
		{
			name:  "negative values are shifted",
			args:  args{a: pts(-10, -20), b: pts(10, 20), width: 100, height: 100},
			wantA: pts(40, 30),
			wantB: pts(60, 70),
			ratio: 1,
		},
		{
			name:  "downscale keeps aspect ratio",
			args:  args{a: pts(0, 0), b: pts(1000, 500), width: 100, height: 100},
			wantA: pts(0, 25),
			wantB: pts(100, 75),
			ratio: 10,
		},
		{
			name:  "x is checked against height, y against width",
			args:  args{a: pts(0, 0), b: pts(200, 200), width: 400, height: 100},
			wantA: pts(0, 150),
			wantB: pts(100, 250),
			ratio: 2,
		},
		{
			name:  "margin reserved before centering",
			args:  args{a: pts(0, 0), b: pts(100, 100), width: 120, height: 120, margin: 10},
			wantA: pts(10, 10),
			wantB: pts(110, 110),
			ratio: 1,
		},
		{
			name:  "degenerate single point",
			args:  args{a: pts(-5, -5), b: pts(-5, -5), width: 100, height: 100},
			wantA: pts(50, 50),
			wantB: pts(50, 50),
			ratio: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Normalize(tt.args.a, tt.args.b,
				tt.args.width, tt.args.height, tt.args.margin)
			require.NoError(t, err)
			assert.InDelta(t, tt.ratio, res.Ratio, 1e-9)
			if diff := cmp.Diff(tt.wantA, tt.args.a); diff != "" {
				t.Errorf("series a mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantB, tt.args.b); diff != "" {
				t.Errorf("series b mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	_, err := Normalize(nil, pts(1, 1), 100, 100, 0)
	assert.ErrorIs(t, err, model.ErrEmptySeries)

	_, err = Normalize(pts(1, 1), []model.Position{}, 100, 100, 0)
	assert.ErrorIs(t, err, model.ErrEmptySeries)

	_, err = Normalize(pts(1, 1), pts(2, 2), 20, 20, 10)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func randomSeries(r *rand.Rand, n, offX, offY, spread int) []model.Position {
	ret := make([]model.Position, n)
	for i := range ret {
		ret[i] = model.Position{
			X: offX + r.Intn(spread) - spread/2,
			Y: offY + r.Intn(spread) - spread/2,
		}
	}
	return ret
}

func TestNormalizeFitsCanvas(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const width, height, margin = 512, 384, 15
	for i := 0; i < 200; i++ {
		a := randomSeries(r, 1+r.Intn(50), r.Intn(20000)-10000, r.Intn(20000)-10000,
			1+r.Intn(30000))
		b := randomSeries(r, 1+r.Intn(50), r.Intn(20000)-10000, r.Intn(20000)-10000,
			1+r.Intn(30000))

		_, err := Normalize(a, b, width, height, margin)
		require.NoError(t, err)

		for _, p := range append(append([]model.Position{}, a...), b...) {
			require.GreaterOrEqual(t, p.X, 0)
			require.GreaterOrEqual(t, p.Y, 0)
			require.Less(t, p.X, height)
			require.Less(t, p.Y, width)
		}
	}
}

func TestNormalizeUniformScale(t *testing.T) {
	a := pts(-1000, -500, 1000, 3000)
	b := pts(0, 0, 250, 1000)
	orig := append(append([]model.Position{}, a...), b...)

	res, err := Normalize(a, b, 200, 200, 0)
	require.NoError(t, err)
	require.Greater(t, res.Ratio, 1.0)

	got := append(append([]model.Position{}, a...), b...)
	for i, p := range orig {
		wantX := int(math.Round(float64(p.X+res.Shift.X)/res.Ratio)) + res.Offset.X
		wantY := int(math.Round(float64(p.Y+res.Shift.Y)/res.Ratio)) + res.Offset.Y
		assert.Equal(t, wantX, got[i].X, "x of point %d", i)
		assert.Equal(t, wantY, got[i].Y, "y of point %d", i)
	}
}
