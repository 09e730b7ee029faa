package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0", want: "0"},
		{in: "42", want: "42"},
		{in: "-7.25", want: "-7.25"},
		{in: "+3.50", want: "3.5"},
		{in: ".5", want: "0.5"},
		{in: "-.125", want: "-0.125"},
		{in: "100.000", want: "100"},
		{in: "", wantErr: true},
		{in: "-", wantErr: true},
		{in: "1.", wantErr: true},
		{in: ".", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "1/2", wantErr: true},
		{in: " 1", wantErr: true},
		{in: "1,5", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDecimal(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := MustParseDecimal("0.1")
	b := MustParseDecimal("0.2")

	assert.Equal(t, "0.3", a.Add(b).String())
	assert.Equal(t, "-0.1", a.Subtract(b).String())
	assert.Equal(t, "0.02", a.Multiply(b).String())
	assert.Equal(t, "-0.1", a.Neg().String())
	assert.True(t, a.Add(b).Equal(MustParseDecimal("0.30")))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, NewDecimalFromInt(3).Compare(MustParseDecimal("3.0")))
}

func TestZeroValue(t *testing.T) {
	var zero Decimal

	assert.Equal(t, "0", zero.String())
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, "5", zero.Add(NewDecimalFromInt(5)).String())
}

func TestMustParseDecimalPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseDecimal("x") })
}
