package debt

import (
	"math"
	"sort"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/google/uuid"
)

// sessionGap is the maximum distance between consecutive samples that
// still belong to one sleep session.
const sessionGap = 2 * time.Hour

// ReconstructSessions groups raw stage samples into discrete sleep
// sessions and emits one record per session, newest first.
//
// Samples are sorted by start time and partitioned greedily: a gap of
// more than two hours between the previous sample's end and the current
// sample's start opens a new session. Within a session only asleep-like
// samples count toward the duration; in-bed time widens the session
// bounds but is not sleep. Sessions without any asleep-like sample are
// dropped entirely.
func ReconstructSessions(samples []domain.StageSample) []domain.SleepRecord {
	if len(samples) == 0 {
		return nil
	}

	sorted := make([]domain.StageSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartAt.Before(sorted[j].StartAt) })

	var sessions [][]domain.StageSample
	var current []domain.StageSample
	var lastEnd time.Time

	for _, s := range sorted {
		if len(current) > 0 {
			gap := s.StartAt.Sub(lastEnd)
			if math.Abs(gap.Hours()) > sessionGap.Hours() {
				sessions = append(sessions, current)
				current = nil
			}
		}
		current = append(current, s)
		lastEnd = s.EndAt
	}
	if len(current) > 0 {
		sessions = append(sessions, current)
	}

	var records []domain.SleepRecord
	for _, session := range sessions {
		if r, ok := sessionRecord(session); ok {
			records = append(records, r)
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	return records
}

func sessionRecord(session []domain.StageSample) (domain.SleepRecord, bool) {
	var inBed, asleep []domain.StageSample
	for _, s := range session {
		switch {
		case s.Stage == domain.StageInBed:
			inBed = append(inBed, s)
		case s.Stage.IsAsleep():
			asleep = append(asleep, s)
		}
	}

	// In-bed time without any confirmed asleep stage is not sleep; such
	// sessions vanish rather than surface as zero-duration records.
	if len(asleep) == 0 {
		return domain.SleepRecord{}, false
	}

	earliestStart := asleep[0].StartAt
	latestEnd := asleep[0].EndAt
	asleepDuration := time.Duration(0)

	for _, s := range append(inBed, asleep...) {
		if s.StartAt.Before(earliestStart) {
			earliestStart = s.StartAt
		}
		if s.EndAt.After(latestEnd) {
			latestEnd = s.EndAt
		}
	}
	for _, s := range asleep {
		asleepDuration += s.EndAt.Sub(s.StartAt)
	}

	return domain.SleepRecord{
		ID:            uuid.New(),
		Date:          earliestStart,
		Bedtime:       earliestStart,
		WakeTime:      latestEnd,
		DurationHours: asleepDuration.Hours(),
		IsPlanned:     false,
	}, true
}
