package debt

import (
	"math"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
)

const (
	// maxPlausibleStdDevHours normalizes the duration standard deviation
	// into a 0-1 consistency score. Four hours of spread scores zero.
	maxPlausibleStdDevHours = 4.0

	// weekendPatternThresholdHours is the weekend/weekday mean difference
	// above which a weekend pattern is reported (30 minutes).
	weekendPatternThresholdHours = 0.5

	recencyWindowDays = 7
)

// AssessDataQuality computes completeness, consistency, recency and the
// weekend-pattern signal for a record set over a period. Planned records
// are never treated as real data and are excluded from every signal.
func AssessDataQuality(records []domain.SleepRecord, period domain.Period) domain.DataQuality {
	start := startOfDay(period.Start)
	end := startOfDay(period.End)

	real := make([]domain.SleepRecord, 0, len(records))
	for _, r := range records {
		if !r.IsPlanned {
			real = append(real, r)
		}
	}

	var inPeriod []domain.SleepRecord
	seenDays := make(map[string]struct{})
	for _, r := range real {
		day := startOfDay(r.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		inPeriod = append(inPeriod, r)
		seenDays[domain.DateKey(day)] = struct{}{}
	}

	totalDays := daysIn(start, end)
	availableDays := len(seenDays)

	q := domain.DataQuality{
		Completeness:      float64(availableDays) / float64(totalDays),
		Consistency:       assessConsistency(inPeriod),
		Recency:           assessRecency(real, end),
		HasWeekendPattern: assessWeekendPattern(real),
		TotalDays:         totalDays,
		AvailableDays:     availableDays,
	}
	q.OverallScore = (q.Completeness + q.Consistency + q.Recency) / 3.0
	q.Grade = domain.GradeFor(q.OverallScore)
	return q
}

// assessConsistency scores how regular nightly durations are: the
// population standard deviation mapped against a 4-hour ceiling. Fewer
// than two records score zero.
func assessConsistency(records []domain.SleepRecord) float64 {
	if len(records) < 2 {
		return 0
	}

	mean := meanDuration(records)
	variance := 0.0
	for _, r := range records {
		diff := r.DurationHours - mean
		variance += diff * diff
	}
	variance /= float64(len(records))

	return math.Max(0, 1.0-math.Sqrt(variance)/maxPlausibleStdDevHours)
}

// assessRecency is the count of real records in the trailing week of the
// period divided by 7. Deliberately unclamped: more than one record per
// day can push it past 1.
func assessRecency(records []domain.SleepRecord, periodEnd time.Time) float64 {
	windowStart := periodEnd.AddDate(0, 0, -recencyWindowDays)

	recent := 0
	for _, r := range records {
		day := startOfDay(r.Date)
		if !day.Before(windowStart) && !day.After(periodEnd) {
			recent++
		}
	}

	return float64(recent) / float64(recencyWindowDays)
}

// assessWeekendPattern splits all records into Saturday/Sunday vs weekday
// buckets and reports whether the mean durations differ by more than 30
// minutes. Both buckets must be non-empty.
func assessWeekendPattern(records []domain.SleepRecord) bool {
	var weekendTotal, weekdayTotal float64
	var weekendCount, weekdayCount int

	for _, r := range records {
		switch r.Date.UTC().Weekday() {
		case time.Saturday, time.Sunday:
			weekendTotal += r.DurationHours
			weekendCount++
		default:
			weekdayTotal += r.DurationHours
			weekdayCount++
		}
	}

	if weekendCount == 0 || weekdayCount == 0 {
		return false
	}

	weekendAvg := weekendTotal / float64(weekendCount)
	weekdayAvg := weekdayTotal / float64(weekdayCount)
	return math.Abs(weekendAvg-weekdayAvg) > weekendPatternThresholdHours
}
