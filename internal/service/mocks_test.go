package service

import (
	"context"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/google/uuid"
)

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records         map[uuid.UUID]*domain.SleepRecord
	clientRequestID map[string]*domain.SleepRecord
	listResult      []domain.SleepRecord
	err             error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{
		records:         make(map[uuid.UUID]*domain.SleepRecord),
		clientRequestID: make(map[string]*domain.SleepRecord),
	}
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records[record.ID] = record
	if record.ClientRequestID != nil {
		key := record.UserID.String() + ":" + *record.ClientRequestID
		m.clientRequestID[key] = record
	}
	return nil
}

func (m *MockSleepRecordRepository) CreateBatch(ctx context.Context, records []domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	for i := range records {
		r := records[i]
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		m.records[r.ID] = &r
	}
	return nil
}

func (m *MockSleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepRecord
	for _, record := range m.records {
		if record.UserID == userID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (m *MockSleepRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepRecord
	for _, record := range m.records {
		if record.UserID == userID && !record.Date.Before(from) && !record.Date.After(to) {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (m *MockSleepRecordRepository) HasOverlap(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, record := range m.records {
		if record.UserID != userID || record.IsPlanned {
			continue
		}
		if bedtime.Before(record.WakeTime) && wakeTime.After(record.Bedtime) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockSleepRecordRepository) HasOverlapExcluding(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time, excludeID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, record := range m.records {
		if record.UserID != userID || record.ID == excludeID || record.IsPlanned {
			continue
		}
		if bedtime.Before(record.WakeTime) && wakeTime.After(record.Bedtime) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockSleepRecordRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := userID.String() + ":" + clientRequestID
	record, ok := m.clientRequestID[key]
	if !ok {
		return nil, nil
	}
	return record, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output      *domain.LLMInsightsOutput
	err         error
	lastContext *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastContext = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func qualityPtr(q domain.SleepQuality) *domain.SleepQuality {
	return &q
}
