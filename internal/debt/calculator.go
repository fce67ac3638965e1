// Package debt is the sleep-debt computation core: session reconstruction,
// cumulative debt with missing-day imputation, data quality assessment,
// strategy selection and recommendation generation. Everything here is
// pure, synchronous and safe to call from any goroutine as long as the
// caller passes an immutable snapshot of the record list.
package debt

import (
	"math"
	"sort"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
)

const (
	// DefaultRecommendedHours is the nightly sleep target used when no
	// per-user target is configured.
	DefaultRecommendedHours = 8.0

	// DefaultRecoveryRatePerDay is how many debt hours a night of good
	// sleep is assumed to pay back.
	DefaultRecoveryRatePerDay = 1.0
)

// Calculator computes nightly and cumulative sleep debt against a
// recommended-hours target. It holds no mutable state.
type Calculator struct {
	recommendedHours float64
}

// NewCalculator creates a Calculator. Non-positive targets fall back to
// DefaultRecommendedHours.
func NewCalculator(recommendedHours float64) *Calculator {
	if recommendedHours <= 0 {
		recommendedHours = DefaultRecommendedHours
	}
	return &Calculator{recommendedHours: recommendedHours}
}

// RecommendedHours returns the nightly target this calculator uses.
func (c *Calculator) RecommendedHours() float64 {
	return c.recommendedHours
}

// NightlyDebt is the debt for a single record: max(0, target - duration).
func (c *Calculator) NightlyDebt(record domain.SleepRecord) float64 {
	return math.Max(0, c.recommendedHours-record.DurationHours)
}

// CumulativeDebt enumerates every calendar day from startDate to endDate
// inclusive and sums per-day debt. Days with a record use its duration
// (first match wins on duplicates); days without one are imputed via the
// given strategy. Records with wakeTime <= bedtime are skipped and
// counted, never corrected.
func (c *Calculator) CumulativeDebt(records []domain.SleepRecord, startDate, endDate time.Time, strategy domain.MissingDataStrategy) (*domain.SleepDebtResult, error) {
	start := startOfDay(startDate)
	end := startOfDay(endDate)
	if start.After(end) {
		return nil, domain.ErrInvalidRange
	}

	valid, skipped := dropDegenerate(records)

	// Restrict to records whose day falls inside the period; these are
	// also what the imputation strategies see.
	var relevant []domain.SleepRecord
	for _, r := range valid {
		day := startOfDay(r.Date)
		if !day.Before(start) && !day.After(end) {
			relevant = append(relevant, r)
		}
	}

	byDay := make(map[time.Time]domain.SleepRecord, len(relevant))
	for _, r := range relevant {
		day := startOfDay(r.Date)
		if _, ok := byDay[day]; !ok {
			byDay[day] = r
		}
	}

	days := daysIn(start, end)
	result := &domain.SleepDebtResult{
		MissingDays:    []string{},
		DailyDebtHours: make(map[string]float64, days),
		Period:         domain.Period{Start: start, End: end},
		SkippedRecords: skipped,
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		result.TotalRecommendedSleepHours += c.recommendedHours

		if r, ok := byDay[day]; ok {
			dailyDebt := math.Max(0, c.recommendedHours-r.DurationHours)
			result.TotalActualSleepHours += r.DurationHours
			result.TotalDebtHours += dailyDebt
			result.DailyDebtHours[domain.DateKey(day)] = dailyDebt
		} else {
			estimated := c.MissingDayDebt(day, relevant, strategy)
			result.MissingDays = append(result.MissingDays, domain.DateKey(day))
			result.TotalDebtHours += estimated
			result.DailyDebtHours[domain.DateKey(day)] = estimated
		}
	}

	result.AverageDebtPerNightHours = result.TotalDebtHours / float64(days)
	if result.TotalRecommendedSleepHours > 0 {
		result.Efficiency = result.TotalActualSleepHours / result.TotalRecommendedSleepHours * 100
	}
	result.Severity = SeverityFor(result.TotalDebtHours)

	return result, nil
}

// MissingDayDebt estimates the debt for a day with no record. The caller
// supplies the records available for estimation (already filtered to the
// period and free of degenerate entries).
func (c *Calculator) MissingDayDebt(day time.Time, available []domain.SleepRecord, strategy domain.MissingDataStrategy) float64 {
	switch strategy {
	case domain.StrategyAssumeRecommended:
		// Optimistic: assume the target was met.
		return 0

	case domain.StrategyUseAverage:
		if len(available) == 0 {
			return c.recommendedHours
		}
		return math.Max(0, c.recommendedHours-meanDuration(available))

	case domain.StrategyUseWeeklyPattern:
		weekday := day.UTC().Weekday()
		var sameDay []domain.SleepRecord
		for _, r := range available {
			if r.Date.UTC().Weekday() == weekday {
				sameDay = append(sameDay, r)
			}
		}
		if len(sameDay) == 0 {
			return c.MissingDayDebt(day, available, domain.StrategyUseAverage)
		}
		return math.Max(0, c.recommendedHours-meanDuration(sameDay))

	case domain.StrategyConservative:
		// Pessimistic: assume no sleep at all.
		return c.recommendedHours

	case domain.StrategyInterpolate:
		return c.interpolateMissingDay(day, available)

	default:
		return c.recommendedHours
	}
}

// interpolateMissingDay linearly interpolates the duration between the
// nearest records before and after the day. With a single neighbor its
// duration is used directly. With no neighbors at all the estimated
// duration equals the recommended hours, which yields zero debt; that
// mirrors the long-standing behavior this engine replaces and is pinned
// by tests rather than aligned with the conservative fallback.
func (c *Calculator) interpolateMissingDay(day time.Time, available []domain.SleepRecord) float64 {
	sorted := make([]domain.SleepRecord, len(available))
	copy(sorted, available)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var before, after *domain.SleepRecord
	for i := range sorted {
		r := &sorted[i]
		if r.Date.Before(day) {
			before = r
		} else if r.Date.After(day) {
			after = r
			break
		}
	}

	var estimated float64
	switch {
	case before != nil && after != nil:
		span := after.Date.Sub(before.Date)
		elapsed := day.Sub(before.Date)
		ratio := float64(elapsed) / float64(span)
		estimated = before.DurationHours + (after.DurationHours-before.DurationHours)*ratio
	case before != nil:
		estimated = before.DurationHours
	case after != nil:
		estimated = after.DurationHours
	default:
		estimated = c.recommendedHours
	}

	return math.Max(0, c.recommendedHours-estimated)
}

// RecoveryDays returns how many days of paying back dailyRecoveryRate
// hours per night it takes to clear the given debt.
func (c *Calculator) RecoveryDays(currentDebt, dailyRecoveryRate float64) int {
	if currentDebt <= 0 {
		return 0
	}
	if dailyRecoveryRate <= 0 {
		dailyRecoveryRate = DefaultRecoveryRatePerDay
	}
	return int(math.Ceil(currentDebt / dailyRecoveryRate))
}

// WeeklyDebt computes cumulative debt over the 7 days ending at now.
func (c *Calculator) WeeklyDebt(records []domain.SleepRecord, now time.Time, strategy domain.MissingDataStrategy) (*domain.SleepDebtResult, error) {
	return c.CumulativeDebt(records, now.AddDate(0, 0, -7), now, strategy)
}

// MonthlyDebt computes cumulative debt over the month ending at now.
func (c *Calculator) MonthlyDebt(records []domain.SleepRecord, now time.Time, strategy domain.MissingDataStrategy) (*domain.SleepDebtResult, error) {
	return c.CumulativeDebt(records, now.AddDate(0, -1, 0), now, strategy)
}

// SeverityFor buckets total debt hours into a severity level.
func SeverityFor(totalDebtHours float64) domain.DebtSeverity {
	switch {
	case totalDebtHours < 5:
		return domain.SeverityMinimal
	case totalDebtHours < 15:
		return domain.SeverityModerate
	case totalDebtHours < 30:
		return domain.SeveritySignificant
	default:
		return domain.SeveritySevere
	}
}

// dropDegenerate filters out records whose wake time is not after their
// bedtime. These are upstream data-integrity violations: skipped and
// counted, never corrected into negative debt.
func dropDegenerate(records []domain.SleepRecord) ([]domain.SleepRecord, int) {
	valid := make([]domain.SleepRecord, 0, len(records))
	skipped := 0
	for _, r := range records {
		if !r.WakeTime.After(r.Bedtime) {
			skipped++
			continue
		}
		valid = append(valid, r)
	}
	return valid, skipped
}

func meanDuration(records []domain.SleepRecord) float64 {
	sum := 0.0
	for _, r := range records {
		sum += r.DurationHours
	}
	return sum / float64(len(records))
}

// startOfDay truncates a timestamp to its UTC calendar day.
func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysIn counts the days in an inclusive day range.
func daysIn(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}
