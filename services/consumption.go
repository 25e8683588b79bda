package services

import (
	"strconv"
	"strings"
)

// MonthsPerYear is the fixed number of readings in a consumption profile.
const MonthsPerYear = 12

// ConsumptionSummary is the transient result of aggregating one year of
// monthly readings. It is computed per request and never persisted.
type ConsumptionSummary struct {
	Readings       [MonthsPerYear]float64 `json:"readings"`
	AnnualTotal    float64                `json:"annual_total"`
	MonthlyAverage float64                `json:"monthly_average"`
}

// AggregateConsumption reduces up to twelve raw monthly readings into an
// annual total and a monthly average. Malformed or negative entries count
// as zero, and missing trailing months count as zero too; the average is
// always the total over twelve months.
func AggregateConsumption(raw []string) ConsumptionSummary {
	var summary ConsumptionSummary
	for i := 0; i < MonthsPerYear && i < len(raw); i++ {
		summary.Readings[i] = ParseReading(raw[i])
	}
	for _, r := range summary.Readings {
		summary.AnnualTotal += r
	}
	summary.MonthlyAverage = summary.AnnualTotal / MonthsPerYear
	return summary
}

// ParseReading parses a single monthly reading. Anything that is not a
// non-negative number becomes zero; bad input defaults instead of failing.
func ParseReading(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
