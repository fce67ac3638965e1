package domain

import (
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/google/uuid"
)

func TestSleepRecord_ToResponse_TimezoneConversion(t *testing.T) {
	quality := QualityGood

	tests := []struct {
		name              string
		record            SleepRecord
		wantLocalBedHr    int
		wantLocalWakeHr   int
		wantLocalBedDay   int
		wantLocalWakeDay  int
		wantLocalBedZone  string
	}{
		{
			name: "San Francisco night logged in UTC",
			// Fell asleep at 10 PM SF time (06:00 UTC next day),
			// woke at 9 AM SF time (17:00 UTC).
			// America/Los_Angeles in Jan = PST (UTC-8)
			record: SleepRecord{
				ID:            uuid.New(),
				UserID:        uuid.New(),
				Date:          time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
				Bedtime:       time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC),
				WakeTime:      time.Date(2024, 1, 16, 17, 0, 0, 0, time.UTC),
				DurationHours: 11,
				Quality:       &quality,
				LocalTimezone: "America/Los_Angeles",
			},
			wantLocalBedHr:   22,
			wantLocalWakeHr:  9,
			wantLocalBedDay:  15,
			wantLocalWakeDay: 16,
			wantLocalBedZone: "PST",
		},
		{
			name: "Warsaw night crossing UTC midnight",
			// 11 PM to 7 AM Warsaw time; CET = UTC+1 in winter
			record: SleepRecord{
				ID:            uuid.New(),
				UserID:        uuid.New(),
				Date:          time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
				Bedtime:       time.Date(2024, 1, 14, 22, 0, 0, 0, time.UTC),
				WakeTime:      time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC),
				DurationHours: 8,
				LocalTimezone: "Europe/Warsaw",
			},
			wantLocalBedHr:   23,
			wantLocalWakeHr:  7,
			wantLocalBedDay:  14,
			wantLocalWakeDay: 15,
			wantLocalBedZone: "CET",
		},
		{
			name: "UTC timezone explicit",
			record: SleepRecord{
				ID:            uuid.New(),
				UserID:        uuid.New(),
				Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Bedtime:       time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
				WakeTime:      time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
				DurationHours: 8,
				LocalTimezone: "UTC",
			},
			wantLocalBedHr:   23,
			wantLocalWakeHr:  7,
			wantLocalBedDay:  15,
			wantLocalWakeDay: 16,
			wantLocalBedZone: "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.record.ToResponse()

			// UTC instants are preserved
			if !resp.Bedtime.Equal(tt.record.Bedtime) {
				t.Errorf("Bedtime instant mismatch: got %v, want %v", resp.Bedtime, tt.record.Bedtime)
			}
			if !resp.WakeTime.Equal(tt.record.WakeTime) {
				t.Errorf("WakeTime instant mismatch: got %v, want %v", resp.WakeTime, tt.record.WakeTime)
			}

			// Local wall-clock times
			if resp.LocalBedtime.Hour() != tt.wantLocalBedHr {
				t.Errorf("LocalBedtime hour = %d, want %d", resp.LocalBedtime.Hour(), tt.wantLocalBedHr)
			}
			if resp.LocalWakeTime.Hour() != tt.wantLocalWakeHr {
				t.Errorf("LocalWakeTime hour = %d, want %d", resp.LocalWakeTime.Hour(), tt.wantLocalWakeHr)
			}
			if resp.LocalBedtime.Day() != tt.wantLocalBedDay {
				t.Errorf("LocalBedtime day = %d, want %d", resp.LocalBedtime.Day(), tt.wantLocalBedDay)
			}
			if resp.LocalWakeTime.Day() != tt.wantLocalWakeDay {
				t.Errorf("LocalWakeTime day = %d, want %d", resp.LocalWakeTime.Day(), tt.wantLocalWakeDay)
			}

			zoneName, _ := resp.LocalBedtime.Zone()
			if zoneName != tt.wantLocalBedZone {
				t.Errorf("LocalBedtime zone = %s, want %s", zoneName, tt.wantLocalBedZone)
			}

			// The date key is the UTC calendar day of the stored Date
			if resp.Date != DateKey(tt.record.Date) {
				t.Errorf("Date = %s, want %s", resp.Date, DateKey(tt.record.Date))
			}
		})
	}
}

// Invalid or empty timezones are preserved as-is on the response while the
// local times fall back to UTC for computation.
func TestSleepRecord_ToResponse_TimezoneFallback(t *testing.T) {
	tests := []struct {
		name          string
		inputTimezone string
	}{
		{"empty timezone", ""},
		{"invalid timezone", "Invalid/Timezone"},
		{"gibberish timezone", "NotATimezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := SleepRecord{
				ID:            uuid.New(),
				UserID:        uuid.New(),
				Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Bedtime:       time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
				WakeTime:      time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
				DurationHours: 8,
				LocalTimezone: tt.inputTimezone,
			}

			resp := record.ToResponse()

			if resp.LocalTimezone != tt.inputTimezone {
				t.Errorf("LocalTimezone = %q, want %q", resp.LocalTimezone, tt.inputTimezone)
			}
			if resp.LocalBedtime.Hour() != 23 {
				t.Errorf("LocalBedtime hour = %d, want 23 (UTC fallback)", resp.LocalBedtime.Hour())
			}
			zoneName, _ := resp.LocalBedtime.Zone()
			if zoneName != "UTC" {
				t.Errorf("LocalBedtime zone = %s, want UTC", zoneName)
			}
		})
	}
}

// DST "spring forward": wall clock loses an hour, but DurationHours and the
// Sub() of the response times both measure elapsed time.
func TestSleepRecord_ToResponse_DSTSpringForward(t *testing.T) {
	// 2024-03-10 01:30 PST (UTC-8) = 09:30 UTC
	// 2024-03-10 03:30 PDT (UTC-7) = 10:30 UTC, elapsed 1 hour
	record := SleepRecord{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Bedtime:       time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
		WakeTime:      time.Date(2024, 3, 10, 10, 30, 0, 0, time.UTC),
		DurationHours: 1,
		LocalTimezone: "America/Los_Angeles",
	}

	resp := record.ToResponse()

	if elapsed := resp.WakeTime.Sub(resp.Bedtime); elapsed != time.Hour {
		t.Errorf("elapsed = %v, want 1h", elapsed)
	}
	if local := resp.LocalWakeTime.Sub(resp.LocalBedtime); local != time.Hour {
		t.Errorf("local elapsed = %v, want 1h (elapsed, not wall-clock)", local)
	}
	if resp.LocalBedtime.Hour() != 1 || resp.LocalBedtime.Minute() != 30 {
		t.Errorf("LocalBedtime = %02d:%02d, want 01:30", resp.LocalBedtime.Hour(), resp.LocalBedtime.Minute())
	}
	if resp.LocalWakeTime.Hour() != 3 || resp.LocalWakeTime.Minute() != 30 {
		t.Errorf("LocalWakeTime = %02d:%02d, want 03:30", resp.LocalWakeTime.Hour(), resp.LocalWakeTime.Minute())
	}

	bedZone, _ := resp.LocalBedtime.Zone()
	wakeZone, _ := resp.LocalWakeTime.Zone()
	if bedZone != "PST" || wakeZone != "PDT" {
		t.Errorf("zones = %s/%s, want PST/PDT", bedZone, wakeZone)
	}
}

func TestSleepQuality_Score(t *testing.T) {
	tests := []struct {
		quality SleepQuality
		want    int
	}{
		{QualityExcellent, 5},
		{QualityGood, 4},
		{QualityFair, 3},
		{QualityPoor, 2},
		{QualityTerrible, 1},
		{SleepQuality("AMAZING"), 0},
	}

	for _, tt := range tests {
		if got := tt.quality.Score(); got != tt.want {
			t.Errorf("Score(%s) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestDateKey(t *testing.T) {
	// Non-UTC timestamps normalize to the UTC calendar day
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"UTC midnight", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "2024-01-15"},
		{"UTC late evening", time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC), "2024-01-15"},
		{"Warsaw just after local midnight", time.Date(2024, 1, 16, 0, 30, 0, 0, warsaw), "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateKey(tt.t); got != tt.want {
				t.Errorf("DateKey(%v) = %s, want %s", tt.t, got, tt.want)
			}
		})
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "A"},
		{0.9, "A"},
		{0.85, "B"},
		{0.75, "C"},
		{0.65, "D"},
		{0.3, "F"},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, "Very High"},
		{0.85, "Very High"},
		{0.8, "High"},
		{0.6, "Medium"},
		{0.45, "Low"},
		{0.1, "Very Low"},
	}

	for _, tt := range tests {
		if got := ConfidenceFor(tt.score); got != tt.want {
			t.Errorf("ConfidenceFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
