package models

import "strings"

// Per-kg rates by service type prefix. The prefix match lets the UI pass
// long labels such as "WDF (Wash, Dry, Fold)".
var feeRates = []struct {
	prefix string
	rate   float64
}{
	{"WDF", 500},
	{"WDI", 700},
	{"Iron Only", 200},
	{"Bedding", 1200},
}

const defaultFeeRate = 500

// CalculateFee prices an order: rate(serviceType) * weight + deliveryFee.
// Unknown service types fall back to the default rate. Callers are
// responsible for keeping weight and deliveryFee non-negative.
func CalculateFee(serviceType string, weight, deliveryFee float64) float64 {
	rate := float64(defaultFeeRate)
	for _, r := range feeRates {
		if strings.HasPrefix(serviceType, r.prefix) {
			rate = r.rate
			break
		}
	}
	return rate*weight + deliveryFee
}
