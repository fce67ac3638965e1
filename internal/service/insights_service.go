package service

import (
	"context"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/llm"
	"github.com/cloudnine/sleep-debt-api/internal/repository"
	"github.com/google/uuid"
)

// InsightsService generates LLM-backed sleep debt insights.
type InsightsService interface {
	// Generate creates sleep debt insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	debtService DebtService
	llmClient   llm.InsightsLLM
	userRepo    repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(debtService DebtService, llmClient llm.InsightsLLM, userRepo repository.UserRepository) InsightsService {
	return &insightsService{
		debtService: debtService,
		llmClient:   llmClient,
		userRepo:    userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// History baseline (~30 days)
	history, err := s.debtService.Calculate(ctx, userID, domain.CalculationQuery{})
	if err != nil {
		return nil, err
	}

	// Recent trajectory (~7 days)
	recentPeriod := resolvePeriod(nil, history.Debt.Period.End, RecentDebtPeriodDays)
	recent, err := s.debtService.Calculate(ctx, userID, domain.CalculationQuery{Period: &recentPeriod})
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Goal:    user.TrackingGoal,
		History: *history,
		Recent:  *recent,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		History:  *history,
		Recent:   *recent,
		Insights: *llmOutput,
	}, nil
}
