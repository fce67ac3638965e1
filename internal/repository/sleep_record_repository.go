package repository

import (
	"context"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepRecordRepository interface {
	Create(ctx context.Context, record *domain.SleepRecord) error
	CreateBatch(ctx context.Context, records []domain.SleepRecord) error
	Update(ctx context.Context, record *domain.SleepRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepRecord, error)
	HasOverlap(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (bool, error)
	HasOverlapExcluding(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time, excludeID uuid.UUID) (bool, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepRecord, error)
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *sleepRecordRepository) CreateBatch(ctx context.Context, records []domain.SleepRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *sleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *sleepRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error) {
	var record domain.SleepRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *sleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("bedtime DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("bedtime >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("bedtime <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with bedtime < cursor.Bedtime
			// or same bedtime but id < cursor.ID
			query = query.Where(
				"(bedtime < ?) OR (bedtime = ? AND id < ?)",
				cursor.Bedtime, cursor.Bedtime, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.SleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// ListByDateRange fetches every record whose night falls inside the
// inclusive [from, to] range. No pagination; debt calculations need
// the full window.
func (r *sleepRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepRecord, error) {
	var records []domain.SleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// HasOverlap checks if the [bedtime, wakeTime) interval collides with
// an existing tracked night. Planned records don't block real entries.
func (r *sleepRecordRepository) HasOverlap(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SleepRecord{}).
		Where("user_id = ?", userID).
		Where("is_planned = ?", false).
		Where("bedtime < ?", wakeTime).
		Where("wake_time > ?", bedtime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sleepRecordRepository) HasOverlapExcluding(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SleepRecord{}).
		Where("user_id = ?", userID).
		Where("id != ?", excludeID).
		Where("is_planned = ?", false).
		Where("bedtime < ?", wakeTime).
		Where("wake_time > ?", bedtime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sleepRecordRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepRecord, error) {
	var record domain.SleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &record, nil
}
