package currency

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Convert_SameCurrencyIsExact(t *testing.T) {
	amounts := []float64{0, 0.1, 1.0 / 3, 12345.6789, 1e12}
	for _, code := range Codes {
		for _, amount := range amounts {
			assert.Equal(t, amount, Convert(amount, code, code), code)
		}
	}
}

func Test_Convert_RoundTripWithinTolerance(t *testing.T) {
	for _, a := range Codes {
		for _, b := range Codes {
			got := Convert(Convert(123.45, a, b), b, a)
			assert.InDelta(t, 123.45, got, 1e-9, "%s -> %s -> %s", a, b, a)
		}
	}
}

func Test_Convert_ThroughBase(t *testing.T) {
	assert.InDelta(t, 111.0, Convert(2, USD, MKD), 1e-9)
	assert.InDelta(t, 1.0, Convert(55.5, MKD, USD), 1e-9)
	assert.InDelta(t, 61.5/55.5, Convert(1, EUR, USD), 1e-9)
}

func Test_ConvertChecked_RejectsUnknownCodes(t *testing.T) {
	_, err := ConvertChecked(1, "XXX", USD)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = ConvertChecked(1, USD, "")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	v, err := ConvertChecked(10, EUR, EUR)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func Test_Codes_SortedByName(t *testing.T) {
	require.Len(t, Codes, 12)
	for i := 1; i < len(Codes); i++ {
		assert.Less(t, Name(Codes[i-1]), Name(Codes[i]))
	}
	assert.Equal(t, AUD, Codes[0])
}

func Test_Format(t *testing.T) {
	assert.Equal(t, "$1,234.50", Format(1234.5, USD))
	assert.Equal(t, "MKD 211.00", Format(211, MKD))
	assert.Equal(t, "¥1,235", Format(1234.56, JPY))
	assert.Equal(t, "-€3.00", Format(-3, EUR))
	assert.Equal(t, "XYZ 1.00", Format(1, "XYZ"))
}
