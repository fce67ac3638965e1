package domain

import "time"

// Period is a closed day range: both Start and End days are included.
// Periods are value-comparable so they can key caches.
type Period struct {
	Start time.Time `json:"start" example:"2024-01-01T00:00:00Z"`
	End   time.Time `json:"end" example:"2024-01-31T00:00:00Z"`
}

// MissingDataStrategy is the imputation policy applied to days in the
// queried period that have no sleep record.
// @Description Imputation strategy for missing days.
type MissingDataStrategy string

const (
	// StrategyAssumeRecommended optimistically assumes the target was met.
	StrategyAssumeRecommended MissingDataStrategy = "assume_recommended"
	// StrategyUseAverage fills with the mean duration of available records.
	StrategyUseAverage MissingDataStrategy = "use_average"
	// StrategyUseWeeklyPattern fills with the same-weekday mean, falling
	// back to the overall mean when the weekday has no records.
	StrategyUseWeeklyPattern MissingDataStrategy = "use_weekly_pattern"
	// StrategyConservative pessimistically assumes zero sleep.
	StrategyConservative MissingDataStrategy = "conservative"
	// StrategyInterpolate linearly interpolates between the nearest
	// records before and after the missing day.
	StrategyInterpolate MissingDataStrategy = "interpolate"
)

// DebtSeverity buckets total debt hours.
// @Description Severity bucket for cumulative sleep debt.
type DebtSeverity string

const (
	SeverityMinimal     DebtSeverity = "minimal"     // < 5h
	SeverityModerate    DebtSeverity = "moderate"    // 5h - 15h
	SeveritySignificant DebtSeverity = "significant" // 15h - 30h
	SeveritySevere      DebtSeverity = "severe"      // >= 30h
)

// SleepDebtResult is the immutable outcome of one cumulative-debt
// calculation. Daily debt keys are UTC calendar days ("2006-01-02") and
// cover every day in the period exactly once.
// @Description Cumulative sleep debt over a period.
type SleepDebtResult struct {
	TotalDebtHours             float64 `json:"total_debt_hours" example:"12.5"`
	AverageDebtPerNightHours   float64 `json:"average_debt_per_night_hours" example:"1.8"`
	TotalActualSleepHours      float64 `json:"total_actual_sleep_hours" example:"43.5"`
	TotalRecommendedSleepHours float64 `json:"total_recommended_sleep_hours" example:"56.0"`
	// Calendar days in the period with no record, ascending
	MissingDays []string `json:"missing_days" example:"2024-01-03,2024-01-05"`
	// Per-day debt for every day in the period, including imputed days
	DailyDebtHours map[string]float64 `json:"daily_debt_hours"`
	Period         Period             `json:"period"`
	// totalActual / totalRecommended * 100
	Efficiency float64      `json:"efficiency" example:"77.7"`
	Severity   DebtSeverity `json:"severity" example:"moderate"`
	// Records excluded because wakeTime <= bedtime
	SkippedRecords int `json:"skipped_records,omitempty"`
}
