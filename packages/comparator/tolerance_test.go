package comparator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToleranceEqual(t *testing.T) {
	tests := []struct {
		name    string
		a, b    any
		epsilon float64
		want    bool
	}{
		{"within epsilon", 1.30, 1.301, 0.01, true},
		{"outside epsilon", 1.30, 1.40, 0.01, false},
		{"exactly epsilon apart", 1.0, 1.5, 0.5, true},
		{"zero epsilon equal", 2.0, 2.0, 0, true},
		{"zero epsilon different", 2.0, 3.0, 0, false},
		{"NaN equals NaN", math.NaN(), math.NaN(), 0, true},
		{"NaN never within epsilon of a number", math.NaN(), 1.0, 1e9, false},
		{"signed zeros", math.Copysign(0, -1), 0.0, 0, true},
		{"infinities", math.Inf(1), math.Inf(1), 0, true},
		{"float32 pair", float32(1.3), float32(1.301), 0.01, true},
		{"float32 pair outside", float32(1.3), float32(1.4), 0.01, false},
		{"mixed widths promote", float32(1.3), 1.3, 1e-6, true},
		{"int and float", 2, 2.0005, 0.001, true},
		{"int pair", int64(10), uint8(10), 0, true},
		{"int pair within epsilon", 10, 12, 2, true},
		{"both nil", nil, nil, 0.1, true},
		{"nil and sequence", nil, []float64{}, 0.1, false},
		{"rank 1", []float64{1.3, 1.3}, []float64{1.3, 1.301}, 0.01, true},
		{"rank 1 outside", []float64{1.3, 1.3}, []float64{1.3, 1.5}, 0.01, false},
		{"rank 1 lengths", []float64{1.3}, []float64{1.3, 1.3}, 0.01, false},
		{"rank 2", [][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.3}}, 0.01, true},
		{"rank 2 outside", [][]float64{{1.3, 1.3}}, [][]float64{{1.3, 1.5}}, 0.01, false},
		{"rank 3", [][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.3}}}, 0.01, true},
		{"rank 3 outside", [][][]float32{{{1.3, 1.3}}}, [][][]float32{{{1.3, 1.5}}}, 0.01, false},
		{"rank 4", [][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.301}}}}, 0.01, true},
		{"rank 4 outside", [][][][]float64{{{{1.3, 1.3}}}}, [][][][]float64{{{{1.3, 1.5}}}}, 0.01, false},
		{"rank 5", [][][][][]float64{{{{{1}}}}}, [][][][][]float64{{{{{1.001}}}}}, 0.01, true},
		{"rank mismatch", [][]float64{{1}}, []float64{1}, 0.01, false},
		{"nil rows", [][]float64{nil}, [][]float64{nil}, 0, true},
		{"NaN inside sequence", []float64{math.NaN()}, []float64{math.NaN()}, 0, true},
		{"non numeric leaves", []any{"a", 1.0}, []any{"a", 1.001}, 0.01, true},
		{"non numeric leaves differ", []any{"a", 1.0}, []any{"b", 1.0}, 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToleranceEqual(tt.a, tt.b, tt.epsilon)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToleranceEqual_InvalidEpsilon(t *testing.T) {
	for _, epsilon := range []float64{-0.01, math.NaN()} {
		got, err := ToleranceEqual(1.0, 1.0, epsilon)
		assert.ErrorIs(t, err, ErrInvalidEpsilon)
		assert.False(t, got)

		got, err = ToleranceEqual([][]float64{{1}}, [][]float64{{1}}, epsilon)
		assert.ErrorIs(t, err, ErrInvalidEpsilon)
		assert.False(t, got)
	}
}

func TestToleranceEqual_MatchesDefinition(t *testing.T) {
	values := []float64{0, 1, -1, 1.3, 1.301, 1.4, 1e-9, -2.5, math.Inf(1)}
	epsilons := []float64{0, 0.001, 0.01, 0.5, 1}

	for _, a := range values {
		for _, b := range values {
			for _, eps := range epsilons {
				got, err := ToleranceEqual(a, b, eps)
				require.NoError(t, err)
				want := CanonicalCompare(a, b) == 0 || math.Abs(a-b) <= eps
				assert.Equal(t, want, got, "ToleranceEqual(%v, %v, %v)", a, b, eps)
			}
		}
	}
}

func TestToleranceEqual_Opaque(t *testing.T) {
	type reading struct {
		Label string
		Value float64
	}

	got, err := ToleranceEqual(reading{"a", 1.30}, reading{"a", 1.301}, 0.01)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = ToleranceEqual(reading{"a", 1.30}, reading{"b", 1.30}, 0.01)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = ToleranceEqual(mustParse(t, `{"p":[1.30, 2]}`), mustParse(t, `{"p":[1.301, 2]}`), 0.01)
	require.NoError(t, err)
	assert.True(t, got)
}
