package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepQuality is the user-assigned ordinal rating for a night.
// @Description Five-point sleep quality scale.
type SleepQuality string

const (
	QualityExcellent SleepQuality = "EXCELLENT"
	QualityGood      SleepQuality = "GOOD"
	QualityFair      SleepQuality = "FAIR"
	QualityPoor      SleepQuality = "POOR"
	QualityTerrible  SleepQuality = "TERRIBLE"
)

// Score maps the rating to a 1-5 value for averaging. Unknown ratings score 0.
func (q SleepQuality) Score() int {
	switch q {
	case QualityExcellent:
		return 5
	case QualityGood:
		return 4
	case QualityFair:
		return 3
	case QualityPoor:
		return 2
	case QualityTerrible:
		return 1
	default:
		return 0
	}
}

// SleepRecord is one night's (or nap's) sleep entry. Records are created by
// manual entry, by session reconstruction from raw stage samples, or
// synthesized from the user's habitual schedule (IsPlanned=true). Planned
// records are never persisted and never count as real data for quality
// assessment.
type SleepRecord struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID     `gorm:"type:uuid;not null;index:idx_sleep_records_user_date" json:"user_id"`
	Date            time.Time     `gorm:"not null;index:idx_sleep_records_user_date,sort:desc" json:"date"`
	Bedtime         time.Time     `gorm:"not null" json:"bedtime"`
	WakeTime        time.Time     `gorm:"not null" json:"wake_time"`
	DurationHours   float64       `gorm:"not null" json:"duration_hours"`
	Quality         *SleepQuality `gorm:"type:varchar(10)" json:"quality,omitempty"`
	Notes           *string       `gorm:"type:text" json:"notes,omitempty"`
	IsPlanned       bool          `gorm:"not null;default:false" json:"is_planned"`
	LocalTimezone   string        `gorm:"type:varchar(64);not null;default:'UTC'" json:"local_timezone"`
	ClientRequestID *string       `gorm:"type:varchar(255);uniqueIndex:idx_records_user_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// CreateSleepRecordRequest is the request body for logging a night manually.
// @Description Request payload for recording a sleep session.
type CreateSleepRecordRequest struct {
	// Sleep start time in RFC3339 format (UTC recommended)
	Bedtime time.Time `json:"bedtime" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Sleep end time in RFC3339 format (must be after bedtime)
	WakeTime time.Time `json:"wake_time" validate:"required,gtfield=Bedtime" example:"2024-01-16T07:00:00Z"`
	// Optional quality rating
	Quality *SleepQuality `json:"quality,omitempty" validate:"omitempty,oneof=EXCELLENT GOOD FAIR POOR TERRIBLE" example:"GOOD" enums:"EXCELLENT,GOOD,FAIR,POOR,TERRIBLE"`
	// Optional free-form notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
	// Optional IANA timezone for local time display (defaults to user's timezone)
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// UpdateSleepRecordRequest is the request body for editing a record.
// @Description Partial update for a sleep record. Omitted fields are unchanged.
type UpdateSleepRecordRequest struct {
	Bedtime  *time.Time    `json:"bedtime,omitempty"`
	WakeTime *time.Time    `json:"wake_time,omitempty"`
	Quality  *SleepQuality `json:"quality,omitempty" validate:"omitempty,oneof=EXCELLENT GOOD FAIR POOR TERRIBLE"`
	Notes    *string       `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// SleepRecordResponse is the response body for sleep record endpoints.
// @Description Sleep record with UTC and local times.
type SleepRecordResponse struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	Date          string        `json:"date" example:"2024-01-15"`
	Bedtime       time.Time     `json:"bedtime" example:"2024-01-15T23:00:00Z"`
	WakeTime      time.Time     `json:"wake_time" example:"2024-01-16T07:00:00Z"`
	DurationHours float64       `json:"duration_hours" example:"7.5"`
	Quality       *SleepQuality `json:"quality,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	IsPlanned     bool          `json:"is_planned"`
	LocalTimezone string        `json:"local_timezone" example:"Europe/Prague"`
	LocalBedtime  time.Time     `json:"local_bedtime"`
	LocalWakeTime time.Time     `json:"local_wake_time"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (r *SleepRecord) ToResponse() SleepRecordResponse {
	loc := time.UTC
	if r.LocalTimezone != "" {
		if l, err := time.LoadLocation(r.LocalTimezone); err == nil {
			loc = l
		}
	}

	return SleepRecordResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		Date:          DateKey(r.Date),
		Bedtime:       r.Bedtime,
		WakeTime:      r.WakeTime,
		DurationHours: r.DurationHours,
		Quality:       r.Quality,
		Notes:         r.Notes,
		IsPlanned:     r.IsPlanned,
		LocalTimezone: r.LocalTimezone,
		LocalBedtime:  r.Bedtime.In(loc),
		LocalWakeTime: r.WakeTime.In(loc),
		CreatedAt:     r.CreatedAt,
	}
}

// SleepRecordListResponse is the response body for listing sleep records.
// @Description Paginated list of sleep records, newest first.
type SleepRecordListResponse struct {
	Data       []SleepRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepRecordFilter contains filter parameters for listing sleep records.
type SleepRecordFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// DateKey formats a timestamp as its UTC calendar day, the canonical key
// used for daily debt maps and missing-day lists.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
