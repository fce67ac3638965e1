package service

import (
	"context"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/debt"
	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/repository"
	"github.com/cloudnine/sleep-debt-api/pkg/pagination"
	"github.com/google/uuid"
)

// duplicateTolerance is how close an imported session's bounds must be
// to an existing record's to be treated as the same night. Both bedtime
// and wake time must land strictly within it.
const duplicateTolerance = time.Minute

type SleepRecordService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, bool, error)
	Update(ctx context.Context, userID uuid.UUID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	ImportSamples(ctx context.Context, userID uuid.UUID, req *domain.ImportSamplesRequest) (*domain.ImportSamplesResponse, error)
}

type sleepRecordService struct {
	repo     repository.SleepRecordRepository
	userRepo repository.UserRepository
}

func NewSleepRecordService(repo repository.SleepRecordRepository, userRepo repository.UserRepository) SleepRecordService {
	return &sleepRecordService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create creates a new sleep record
// Returns (record, isExisting, error) - isExisting is true if returning existing record due to idempotency
func (s *sleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, bool, error) {
	// Load user to confirm existence and get their home timezone
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	// Determine local timezone for this record
	localTZ := user.Timezone
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		localTZ = *req.LocalTimezone
	}
	if localTZ == "" {
		localTZ = "UTC"
	}

	// Normalize timestamps to UTC for storage and overlap checks
	bedtimeUTC := req.Bedtime.UTC()
	wakeTimeUTC := req.WakeTime.UTC()

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil // Return existing record
		}
	}

	// Check for overlapping sleep periods
	hasOverlap, err := s.repo.HasOverlap(ctx, userID, bedtimeUTC, wakeTimeUTC)
	if err != nil {
		return nil, false, err
	}
	if hasOverlap {
		return nil, false, domain.ErrOverlappingSleep
	}

	record := &domain.SleepRecord{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            nightOf(bedtimeUTC),
		Bedtime:         bedtimeUTC,
		WakeTime:        wakeTimeUTC,
		DurationHours:   wakeTimeUTC.Sub(bedtimeUTC).Hours(),
		Quality:         req.Quality,
		Notes:           req.Notes,
		LocalTimezone:   localTZ,
		ClientRequestID: req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, false, err
	}

	return record, false, nil
}

// Update updates an existing sleep record
func (s *sleepRecordService) Update(ctx context.Context, userID uuid.UUID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	// Check if user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Get existing record
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if record.UserID != userID {
		return nil, domain.ErrNotFound
	}

	// Apply updates
	if req.Bedtime != nil {
		record.Bedtime = req.Bedtime.UTC()
	}
	if req.WakeTime != nil {
		record.WakeTime = req.WakeTime.UTC()
	}
	if req.Quality != nil {
		record.Quality = req.Quality
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	// Validate wake > bedtime after applying updates
	if !record.WakeTime.After(record.Bedtime) {
		return nil, domain.ErrInvalidInput
	}

	// The night and duration follow the times
	record.Date = nightOf(record.Bedtime)
	record.DurationHours = record.WakeTime.Sub(record.Bedtime).Hours()

	// Check for overlapping sleep periods (excluding this record)
	hasOverlap, err := s.repo.HasOverlapExcluding(ctx, userID, record.Bedtime, record.WakeTime, recordID)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, domain.ErrOverlappingSleep
	}

	// Save updates
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *sleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	// Check if user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	// Build response
	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = record.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			Bedtime: last.Bedtime,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// ImportSamples reconstructs sleep sessions from raw stage samples and
// persists them. Sessions whose bedtime lands within a minute of an
// existing record are skipped as duplicates rather than rejected, so
// re-importing an overlapping export is safe.
func (s *sleepRecordService) ImportSamples(ctx context.Context, userID uuid.UUID, req *domain.ImportSamplesRequest) (*domain.ImportSamplesResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	localTZ := user.Timezone
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		localTZ = *req.LocalTimezone
	}
	if localTZ == "" {
		localTZ = "UTC"
	}

	sessions := debt.ReconstructSessions(req.Samples)
	if len(sessions) == 0 {
		return &domain.ImportSamplesResponse{Created: []domain.SleepRecordResponse{}}, nil
	}

	// Fetch existing records covering the sessions' date span for the
	// duplicate check. Sessions come back newest first.
	from := nightOf(sessions[len(sessions)-1].Date)
	to := nightOf(sessions[0].Date)
	existing, err := s.repo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	var toCreate []domain.SleepRecord
	skipped := 0
	for _, session := range sessions {
		if isDuplicateSession(session, existing) {
			skipped++
			continue
		}
		session.UserID = userID
		session.Date = nightOf(session.Date)
		session.LocalTimezone = localTZ
		toCreate = append(toCreate, session)
	}

	if err := s.repo.CreateBatch(ctx, toCreate); err != nil {
		return nil, err
	}

	response := &domain.ImportSamplesResponse{
		Created:           make([]domain.SleepRecordResponse, len(toCreate)),
		SkippedDuplicates: skipped,
	}
	for i := range toCreate {
		response.Created[i] = toCreate[i].ToResponse()
	}

	return response, nil
}

func isDuplicateSession(session domain.SleepRecord, existing []domain.SleepRecord) bool {
	for _, r := range existing {
		if withinTolerance(session.Bedtime, r.Bedtime) && withinTolerance(session.WakeTime, r.WakeTime) {
			return true
		}
	}
	return false
}

func withinTolerance(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff < duplicateTolerance
}

// nightOf maps a bedtime to the UTC calendar day the night belongs to.
func nightOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
