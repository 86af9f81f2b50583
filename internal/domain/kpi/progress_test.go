package kpi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cfg(id string, target int64) Config {
	return Config{ID: id, TargetValue: decimal.NewFromInt(target)}
}

func rec(configID string, achieved int64) Record {
	return Record{ConfigID: configID, AchievedValue: decimal.NewFromInt(achieved)}
}

func TestProgressScore_NoConfigs(t *testing.T) {
	assert.Zero(t, ProgressScore(nil, []Record{rec("c1", 50)}))
}

func TestProgressScore_NoRecords(t *testing.T) {
	assert.Zero(t, ProgressScore([]Config{cfg("c1", 100)}, nil))
}

func TestProgressScore_RecordsSummedNotAveraged(t *testing.T) {
	configs := []Config{cfg("c1", 100)}
	records := []Record{rec("c1", 30), rec("c1", 30), rec("c1", 20)}

	assert.InDelta(t, 80.0, ProgressScore(configs, records), 0.0001)
}

func TestProgressScore_RatioCappedAtOne(t *testing.T) {
	configs := []Config{cfg("c1", 100)}
	records := []Record{rec("c1", 500)}

	assert.InDelta(t, 100.0, ProgressScore(configs, records), 0.0001)
}

func TestProgressScore_UnweightedAverage(t *testing.T) {
	configs := []Config{cfg("c1", 100), cfg("c2", 1000)}
	records := []Record{rec("c1", 100), rec("c2", 500)}

	// (1.0 + 0.5) / 2 = 75%, regardless of target magnitude.
	assert.InDelta(t, 75.0, ProgressScore(configs, records), 0.0001)
}

func TestProgressScore_ZeroTargetContributesZero(t *testing.T) {
	configs := []Config{cfg("c1", 0), cfg("c2", 100)}
	records := []Record{rec("c1", 40), rec("c2", 100)}

	// The zero-target config stays in the denominator with no contribution.
	assert.InDelta(t, 50.0, ProgressScore(configs, records), 0.0001)
}

func TestAchievedByConfig(t *testing.T) {
	sums := AchievedByConfig([]Record{rec("c1", 10), rec("c2", 5), rec("c1", 7)})

	assert.Equal(t, "17", sums["c1"].String())
	assert.Equal(t, "5", sums["c2"].String())
}

func TestConfigAppliesTo(t *testing.T) {
	month, year := 6, 2025

	evergreen := Config{}
	assert.True(t, evergreen.AppliesTo(6, 2025))
	assert.True(t, evergreen.AppliesTo(12, 2030))

	scoped := Config{ApplicableMonth: &month, ApplicableYear: &year}
	assert.True(t, scoped.AppliesTo(6, 2025))
	assert.False(t, scoped.AppliesTo(7, 2025))
	assert.False(t, scoped.AppliesTo(6, 2026))
}
