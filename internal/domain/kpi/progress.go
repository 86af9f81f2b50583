package kpi

import "github.com/shopspring/decimal"

// AchievedByConfig sums achieved values per config ID. Records are summed,
// never averaged.
func AchievedByConfig(records []Record) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal, len(records))
	for _, rec := range records {
		sums[rec.ConfigID] = sums[rec.ConfigID].Add(rec.AchievedValue)
	}
	return sums
}

// ProgressScore computes the normalized completion percentage for a set of
// configs: each config contributes min(1, achieved/target), capped so
// overachieving one KPI cannot compensate for another, and the capped ratios
// are averaged unweighted. Returns 0 when there are no configs.
//
// A config with target <= 0 contributes 0 instead of dividing by zero.
func ProgressScore(configs []Config, records []Record) float64 {
	if len(configs) == 0 {
		return 0
	}

	achieved := AchievedByConfig(records)

	total := 0.0
	for _, cfg := range configs {
		if !cfg.TargetValue.IsPositive() {
			continue
		}
		ratio, _ := achieved[cfg.ID].Div(cfg.TargetValue).Float64()
		if ratio > 1 {
			ratio = 1
		}
		total += ratio
	}

	return total / float64(len(configs)) * 100
}
