package handler

import (
	"context"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/langfuse"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{
		ID:            uuid.New(),
		Timezone:      req.Timezone,
		UsualBedtime:  "23:00",
		UsualWakeTime: "07:00",
		TrackingGoal:  domain.GoalBalanced,
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.User{
		ID:            id,
		Timezone:      "UTC",
		UsualBedtime:  "23:00",
		UsualWakeTime: "07:00",
		TrackingGoal:  domain.GoalBalanced,
		CreatedAt:     time.Now(),
	}, nil
}

// MockSleepRecordService is a mock implementation of SleepRecordService
type MockSleepRecordService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, bool, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	importFunc func(ctx context.Context, userID uuid.UUID, req *domain.ImportSamplesRequest) (*domain.ImportSamplesResponse, error)
}

func (m *MockSleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          time.Date(req.Bedtime.Year(), req.Bedtime.Month(), req.Bedtime.Day(), 0, 0, 0, 0, time.UTC),
		Bedtime:       req.Bedtime,
		WakeTime:      req.WakeTime,
		DurationHours: req.WakeTime.Sub(req.Bedtime).Hours(),
		Quality:       req.Quality,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, false, nil
}

func (m *MockSleepRecordService) Update(ctx context.Context, userID uuid.UUID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, recordID, req)
	}
	return &domain.SleepRecord{
		ID:            recordID,
		UserID:        userID,
		Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Bedtime:       time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
		WakeTime:      time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
		DurationHours: 8,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockSleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepRecordListResponse{
		Data:       []domain.SleepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockSleepRecordService) ImportSamples(ctx context.Context, userID uuid.UUID, req *domain.ImportSamplesRequest) (*domain.ImportSamplesResponse, error) {
	if m.importFunc != nil {
		return m.importFunc(ctx, userID, req)
	}
	return &domain.ImportSamplesResponse{
		Created:           []domain.SleepRecordResponse{},
		SkippedDuplicates: 0,
	}, nil
}

// MockDebtService is a mock implementation of DebtService
type MockDebtService struct {
	calculateFunc func(ctx context.Context, userID uuid.UUID, query domain.CalculationQuery) (*domain.AutomatedResult, error)
	scheduleFunc  func(ctx context.Context, userID uuid.UUID) (*domain.ScheduledCalculations, error)
}

func (m *MockDebtService) Calculate(ctx context.Context, userID uuid.UUID, query domain.CalculationQuery) (*domain.AutomatedResult, error) {
	if m.calculateFunc != nil {
		return m.calculateFunc(ctx, userID, query)
	}
	return &domain.AutomatedResult{
		Debt: domain.SleepDebtResult{
			TotalDebtHours: 6.5,
			Severity:       domain.SeverityModerate,
			DailyDebtHours: map[string]float64{},
		},
		Strategy:        domain.StrategyUseAverage,
		Settings:        domain.DefaultAutomationSettings(),
		IsReliable:      true,
		ConfidenceLevel: "High",
	}, nil
}

func (m *MockDebtService) Schedule(ctx context.Context, userID uuid.UUID) (*domain.ScheduledCalculations, error) {
	if m.scheduleFunc != nil {
		return m.scheduleFunc(ctx, userID)
	}
	return &domain.ScheduledCalculations{
		Calculations: []domain.ScheduledCalculation{
			{Frequency: domain.FrequencyDaily, Window: domain.WindowLast7Days, Mode: domain.ModeAdaptive},
		},
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{
		History: domain.AutomatedResult{
			Debt: domain.SleepDebtResult{TotalDebtHours: 12, Severity: domain.SeverityModerate},
		},
		Recent: domain.AutomatedResult{
			Debt: domain.SleepDebtResult{TotalDebtHours: 2, Severity: domain.SeverityMinimal},
		},
		Insights: domain.LLMInsightsOutput{
			Summary:      "Your sleep debt is improving.",
			Observations: []string{"Recent week is below the long-term baseline"},
			Guidance:     []string{"Keep your current bedtime"},
		},
	}, nil
}

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
	lastScore  langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return nil
}
