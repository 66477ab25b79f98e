package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "₿", Symbol("BTC"))
	assert.Equal(t, "Ξ", Symbol("eth"))
	assert.Equal(t, "€", Symbol("EUR"))
	assert.Equal(t, "WAT", Symbol("WAT"))
}

func TestAssetClassPredicates(t *testing.T) {
	assert.True(t, IsStablecoin("USDT"))
	assert.True(t, IsStablecoin("usdc"))
	assert.False(t, IsStablecoin("BTC"))

	assert.True(t, IsFiat("USD"))
	assert.True(t, IsFiat("jpy"))
	assert.False(t, IsFiat("ETH"))

	assert.True(t, IsCrypto("BTC"))
	assert.True(t, IsCrypto("sol"))
	assert.False(t, IsCrypto("USD"))
}

func TestOptimalDecimals(t *testing.T) {
	tests := []struct {
		value    float64
		code     string
		expected int
	}{
		{0, "BTC", 8},
		{0, "USD", 2},
		{0.000005, "BTC", 10},
		{0.0005, "BTC", 8},
		{0.5, "BTC", 5},
		{2, "BTC", 4},
		{0.0005, "ETH", 8},
		{1.5, "ETH", 4},
		{0.005, "USD", 6},
		{0.05, "USD", 4},
		{0.5, "USD", 3},
		{1234.56, "USD", 2},
		{0.000005, "DOGE", 8},
		{50, "DOGE", 2},
		{500, "DOGE", 0},
		{0.005, "EUR", 4},
		{500, "EUR", 2},
		{5000, "EUR", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OptimalDecimals(tt.value, tt.code),
			"OptimalDecimals(%v, %s)", tt.value, tt.code)
	}
}

func TestUSD(t *testing.T) {
	plainColors(t)

	assert.Equal(t, "+$1234.56", USD(1234.56, true))
	assert.Equal(t, "$1234.56", USD(1234.56, false))
	assert.Equal(t, "-$0.0500", USD(-0.05, true))
	assert.Equal(t, "$0.00", USD(0, true))
}

func TestBTCFormat(t *testing.T) {
	plainColors(t)

	assert.Equal(t, "+0.50000 ₿", BTC(0.5, true))
	assert.Equal(t, "-1.2500 ₿", BTC(-1.25, false))
}

func TestETHFormat(t *testing.T) {
	plainColors(t)

	assert.Equal(t, "+2.5000 Ξ", ETH(2.5, true))
}

func TestAutoFiatLeadsWithSymbol(t *testing.T) {
	plainColors(t)

	assert.Equal(t, "+€42.00", Auto(42, "EUR", true))
	assert.Equal(t, "₮10.00", Auto(10, "USDT", false))
}

func TestAutoCryptoTrailsWithSymbol(t *testing.T) {
	plainColors(t)

	assert.Equal(t, "+50.00 DOGE", Auto(50, "DOGE", true))
}

func TestBpsConversions(t *testing.T) {
	assert.Equal(t, 0.25, BpsToPercent(25))
	assert.Equal(t, 25, PercentToBps(0.25))
	assert.Equal(t, -150, PercentToBps(-1.5))
}
