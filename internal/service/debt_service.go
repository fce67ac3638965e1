package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/debt"
	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultDebtPeriodDays is the default lookback for debt calculation.
	DefaultDebtPeriodDays = 30

	// RecentDebtPeriodDays is the short lookback used for trend comparison.
	RecentDebtPeriodDays = 7
)

// DebtService runs automated sleep debt calculations for a user.
type DebtService interface {
	// Calculate runs one automated calculation. A nil query period
	// defaults to the trailing 30 days. When FillFromSchedule is set,
	// untracked days are covered by planned records from the user's
	// habitual schedule before the calculation runs. Goal and Adaptive
	// override the user's stored settings for this request.
	Calculate(ctx context.Context, userID uuid.UUID, query domain.CalculationQuery) (*domain.AutomatedResult, error)
	// Schedule returns the declarative recalculation descriptors for the
	// user's automation settings.
	Schedule(ctx context.Context, userID uuid.UUID) (*domain.ScheduledCalculations, error)
}

type debtService struct {
	recordRepo repository.SleepRecordRepository
	userRepo   repository.UserRepository
	calc       *debt.Calculator

	// One orchestrator per user so the per-period quality cache survives
	// across requests. Rebuilt when the user's settings change.
	mu            sync.Mutex
	orchestrators map[uuid.UUID]*debt.Orchestrator
}

// NewDebtService creates a new DebtService.
func NewDebtService(recordRepo repository.SleepRecordRepository, userRepo repository.UserRepository, calc *debt.Calculator) DebtService {
	return &debtService{
		recordRepo:    recordRepo,
		userRepo:      userRepo,
		calc:          calc,
		orchestrators: make(map[uuid.UUID]*debt.Orchestrator),
	}
}

func (s *debtService) Calculate(ctx context.Context, userID uuid.UUID, query domain.CalculationQuery) (*domain.AutomatedResult, error) {
	tracer := otel.Tracer("sleep-debt-api/debt")
	ctx, span := tracer.Start(ctx, "DebtService.Calculate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := settingsFor(user, query)

	now := time.Now().UTC()
	p := resolvePeriod(query.Period, now, DefaultDebtPeriodDays)
	span.SetAttributes(
		attribute.String("period.start", p.Start.Format(time.RFC3339)),
		attribute.String("period.end", p.End.Format(time.RFC3339)),
		attribute.Bool("schedule.fill", query.FillFromSchedule),
	)

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id":       userID.String(),
		"period_start":  p.Start.Format(time.RFC3339),
		"period_end":    p.End.Format(time.RFC3339),
		"schedule_fill": query.FillFromSchedule,
		"tracking_goal": string(settings.PrimaryGoal),
		"adaptive":      settings.AdaptiveStrategy,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	records, err := s.recordRepo.ListByDateRange(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, err
	}

	if query.FillFromSchedule {
		records = debt.FillMissingDays(records, user.Schedule(), userID, user.Timezone, p.End)
	}

	result, err := s.orchestratorFor(userID, settings).CalculateDebt(records, &p)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("debt.strategy", string(result.Strategy)),
		attribute.String("debt.severity", string(result.Debt.Severity)),
		attribute.Float64("debt.total_hours", result.Debt.TotalDebtHours),
		attribute.String("quality.grade", result.DataQuality.Grade),
	)

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}

func (s *debtService) Schedule(ctx context.Context, userID uuid.UUID) (*domain.ScheduledCalculations, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	scheduled := s.orchestratorFor(userID, settingsFor(user, domain.CalculationQuery{})).ScheduleCalculations()
	return &scheduled, nil
}

// orchestratorFor returns the user's orchestrator, creating or replacing
// it when the settings don't match the current ones.
func (s *debtService) orchestratorFor(userID uuid.UUID, settings domain.AutomationSettings) *debt.Orchestrator {
	s.mu.Lock()
	defer s.mu.Unlock()

	if orch, ok := s.orchestrators[userID]; ok && orch.Settings() == settings {
		return orch
	}

	orch := debt.NewOrchestrator(s.calc, settings)
	s.orchestrators[userID] = orch
	return orch
}

// settingsFor derives automation settings from the user's tracking goal,
// then applies the per-request overrides. With Adaptive false the strategy
// comes from the static goal table instead of measured data quality.
func settingsFor(user *domain.User, query domain.CalculationQuery) domain.AutomationSettings {
	settings := domain.DefaultAutomationSettings()
	if user.TrackingGoal != "" {
		settings.PrimaryGoal = user.TrackingGoal
	}
	if query.Goal != "" {
		settings.PrimaryGoal = query.Goal
	}
	if query.Adaptive != nil {
		settings.AdaptiveStrategy = *query.Adaptive
	}
	return settings
}

// resolvePeriod normalizes an explicit period to day boundaries, or
// defaults to the trailing lookback ending today.
func resolvePeriod(period *domain.Period, now time.Time, lookbackDays int) domain.Period {
	if period != nil {
		return domain.Period{Start: nightOf(period.Start), End: nightOf(period.End)}
	}
	end := nightOf(now)
	return domain.Period{Start: end.AddDate(0, 0, -lookbackDays), End: end}
}
