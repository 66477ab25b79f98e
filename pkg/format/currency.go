package format

import (
	"math"
	"strings"
)

// currencySymbols maps ISO-ish currency codes to display symbols.
var currencySymbols = map[string]string{
	"BTC": "₿", "XBT": "₿", "ETH": "Ξ",
	"USD": "$", "EUR": "€", "GBP": "£",
	"JPY": "¥", "CNY": "¥", "KRW": "₩",
	"INR": "₹", "RUB": "₽", "TRY": "₺",
	"AUD": "A$", "CAD": "C$", "CHF": "Fr",
	"HKD": "HK$", "SGD": "S$", "NZD": "NZ$",
	"SEK": "kr", "NOK": "kr", "DKK": "kr",
	"PLN": "zł", "THB": "฿",
	"USDT": "₮", "USDC": "$", "DAI": "$", "BUSD": "$",
}

var stablecoins = map[string]bool{
	"USDT": true, "USDC": true, "DAI": true, "BUSD": true, "UST": true,
	"TUSD": true, "USDP": true, "GUSD": true, "FRAX": true, "LUSD": true,
}

var fiatCodes = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "CNY": true,
	"CAD": true, "AUD": true, "CHF": true, "HKD": true, "SGD": true,
	"NZD": true, "KRW": true, "SEK": true, "NOK": true, "DKK": true,
	"PLN": true, "THB": true, "INR": true, "RUB": true, "TRY": true,
	"BRL": true, "MXN": true, "ARS": true, "CLP": true, "COP": true,
	"PEN": true, "UYU": true, "ZAR": true, "NGN": true, "KES": true,
}

var cryptoCodes = map[string]bool{
	"BTC": true, "XBT": true, "ETH": true, "BNB": true, "XRP": true,
	"ADA": true, "DOGE": true, "SOL": true, "DOT": true, "MATIC": true,
	"SHIB": true, "TRX": true, "AVAX": true, "UNI": true, "ATOM": true,
	"LINK": true, "XMR": true, "XLM": true, "ALGO": true, "VET": true,
	"MANA": true, "SAND": true, "AXS": true, "THETA": true, "FTM": true,
	"NEAR": true, "HNT": true, "GRT": true, "ENJ": true, "CHZ": true,
}

// Symbol returns the display symbol for a currency code, or the code itself
// when no symbol is known.
func Symbol(code string) string {
	if sym, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return sym
	}
	return code
}

// IsStablecoin reports whether code names a USD-pegged stablecoin.
func IsStablecoin(code string) bool {
	return stablecoins[strings.ToUpper(code)]
}

// IsFiat reports whether code names a fiat currency.
func IsFiat(code string) bool {
	return fiatCodes[strings.ToUpper(code)]
}

// IsCrypto reports whether code names a cryptocurrency.
func IsCrypto(code string) bool {
	return cryptoCodes[strings.ToUpper(code)]
}

// OptimalDecimals picks a display precision for a currency amount based on
// its magnitude and asset class. Small BTC amounts get many decimals; large
// fiat amounts get none.
func OptimalDecimals(value float64, code string) int {
	code = strings.ToUpper(code)
	if value == 0 {
		if IsCrypto(code) {
			return 8
		}
		return 2
	}
	abs := math.Abs(value)

	switch code {
	case "BTC", "XBT":
		switch {
		case abs < 0.00001:
			return 10
		case abs < 0.0001:
			return 9
		case abs < 0.001:
			return 8
		case abs < 0.01:
			return 7
		case abs < 0.1:
			return 6
		case abs < 1:
			return 5
		default:
			return 4
		}
	case "ETH":
		switch {
		case abs < 0.001:
			return 8
		case abs < 0.01:
			return 7
		case abs < 0.1:
			return 6
		case abs < 1:
			return 5
		default:
			return 4
		}
	case "USD", "USDT", "USDC", "DAI", "BUSD":
		switch {
		case abs < 0.01:
			return 6
		case abs < 0.1:
			return 4
		case abs < 1:
			return 3
		default:
			return 2
		}
	}

	if IsCrypto(code) {
		switch {
		case abs < 0.00001:
			return 8
		case abs < 0.0001:
			return 6
		case abs < 0.001:
			return 5
		case abs < 0.01:
			return 4
		case abs < 1:
			return 3
		case abs < 100:
			return 2
		default:
			return 0
		}
	}

	// Fiat defaults.
	switch {
	case abs < 0.01:
		return 4
	case abs < 0.1:
		return 3
	case abs < 1000:
		return 2
	default:
		return 0
	}
}

// USD formats a dollar amount with optimal decimals, signed and sign-colored.
func USD(value float64, signed bool) string {
	decimals := OptimalDecimals(value, "USD")
	body := "$" + NumberPlain(math.Abs(value), decimals)
	return ColorBySign(value, ApplySign(value, body, signed))
}

// BTC formats a bitcoin amount with optimal decimals.
func BTC(value float64, signed bool) string {
	decimals := OptimalDecimals(value, "BTC")
	body := NumberPlain(math.Abs(value), decimals) + " ₿"
	return ColorBySign(value, ApplySign(value, body, signed))
}

// ETH formats an ether amount with optimal decimals.
func ETH(value float64, signed bool) string {
	decimals := OptimalDecimals(value, "ETH")
	body := NumberPlain(math.Abs(value), decimals) + " Ξ"
	return ColorBySign(value, ApplySign(value, body, signed))
}

// Auto formats an amount in any known currency: fiat and stablecoins get a
// leading symbol, everything else a trailing symbol or code.
func Auto(value float64, code string, signed bool) string {
	decimals := OptimalDecimals(value, code)
	symbol := Symbol(code)

	if IsFiat(code) || IsStablecoin(code) {
		body := symbol + NumberPlain(math.Abs(value), decimals)
		return ColorBySign(value, ApplySign(value, body, signed))
	}

	body := NumberPlain(math.Abs(value), decimals) + " " + symbol
	return ColorBySign(value, ApplySign(value, body, signed))
}

// BpsToPercent converts basis points to a percentage.
func BpsToPercent(bps int) float64 {
	return float64(bps) / 100.0
}

// PercentToBps converts a percentage to basis points.
func PercentToBps(percent float64) int {
	return int(math.Round(percent * 100))
}
