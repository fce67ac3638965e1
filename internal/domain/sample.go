package domain

import "time"

// SleepStage classifies a raw interval sample from a sensor source.
// Sub-variants of asleep (core, deep, REM, unspecified) all collapse to
// "asleep-like" during session reconstruction.
// @Description Sleep stage tag for a raw interval sample.
type SleepStage string

const (
	StageInBed             SleepStage = "in_bed"
	StageAwake             SleepStage = "awake"
	StageAsleep            SleepStage = "asleep"
	StageAsleepCore        SleepStage = "asleep_core"
	StageAsleepDeep        SleepStage = "asleep_deep"
	StageAsleepREM         SleepStage = "asleep_rem"
	StageAsleepUnspecified SleepStage = "asleep_unspecified"
)

// IsAsleep reports whether the stage is any asleep variant.
func (s SleepStage) IsAsleep() bool {
	switch s {
	case StageAsleep, StageAsleepCore, StageAsleepDeep, StageAsleepREM, StageAsleepUnspecified:
		return true
	default:
		return false
	}
}

// StageSample is one raw timestamped interval from the sample source,
// covering [StartAt, EndAt).
// @Description Raw sleep-stage interval sample.
type StageSample struct {
	StartAt time.Time  `json:"start_at" validate:"required" example:"2024-01-15T23:00:00Z"`
	EndAt   time.Time  `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-16T07:00:00Z"`
	Stage   SleepStage `json:"stage" validate:"required,oneof=in_bed awake asleep asleep_core asleep_deep asleep_rem asleep_unspecified" enums:"in_bed,awake,asleep,asleep_core,asleep_deep,asleep_rem,asleep_unspecified"`
}

// ImportSamplesRequest is the request body for importing raw stage samples.
// @Description Batch of raw interval samples to reconstruct into sleep records.
type ImportSamplesRequest struct {
	Samples []StageSample `json:"samples" validate:"required,min=1,max=5000,dive"`
	// Optional IANA timezone stored on the reconstructed records
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// ImportSamplesResponse summarizes a sample import.
// @Description Result of importing raw samples: reconstructed sessions and skipped duplicates.
type ImportSamplesResponse struct {
	// Records created from reconstructed sessions, newest first
	Created []SleepRecordResponse `json:"created"`
	// Number of reconstructed sessions skipped as duplicates of existing records
	SkippedDuplicates int `json:"skipped_duplicates"`
}
