package debt

import (
	"fmt"
	"sort"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/google/uuid"
)

// fillWindowDays is how far back schedule fill synthesizes planned records.
const fillWindowDays = 30

// FillMissingDays returns the record list extended with planned records
// for every day in the trailing 30 days that has no entry, built from the
// user's habitual schedule. Planned records carry IsPlanned=true and must
// never be treated as real data by quality assessment. The result is
// sorted newest first.
func FillMissingDays(records []domain.SleepRecord, schedule domain.SleepSchedule, userID uuid.UUID, timezone string, now time.Time) []domain.SleepRecord {
	result := make([]domain.SleepRecord, len(records))
	copy(result, records)

	existing := make(map[time.Time]struct{}, len(records))
	for _, r := range records {
		existing[startOfDay(r.Date)] = struct{}{}
	}

	for offset := 0; offset < fillWindowDays; offset++ {
		day := startOfDay(now.AddDate(0, 0, -offset))
		if _, ok := existing[day]; ok {
			continue
		}

		bedtime := combine(day, schedule.Bedtime, 23, 0)
		wakeTime := combine(day, schedule.WakeTime, 7, 0)
		if !wakeTime.After(bedtime) {
			wakeTime = wakeTime.AddDate(0, 0, 1)
		}

		result = append(result, domain.SleepRecord{
			ID:            uuid.New(),
			UserID:        userID,
			Date:          day,
			Bedtime:       bedtime,
			WakeTime:      wakeTime,
			DurationHours: wakeTime.Sub(bedtime).Hours(),
			IsPlanned:     true,
			LocalTimezone: timezone,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result
}

// combine places an HH:MM time of day onto a calendar day, falling back
// to the given defaults when the string does not parse.
func combine(day time.Time, timeOfDay string, defaultHour, defaultMinute int) time.Time {
	hour, minute := defaultHour, defaultMinute
	if h, m, err := ParseTimeOfDay(timeOfDay); err == nil {
		hour, minute = h, m
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

// ParseTimeOfDay parses an HH:MM string into hour and minute.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if _, err = fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	return hour, minute, nil
}
