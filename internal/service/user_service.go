package service

import (
	"context"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/repository"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:            uuid.New(),
		Timezone:      req.Timezone,
		UsualBedtime:  req.UsualBedtime,
		UsualWakeTime: req.UsualWakeTime,
		TrackingGoal:  req.TrackingGoal,
	}

	// Fall back to the stock schedule and goal when omitted
	if user.UsualBedtime == "" {
		user.UsualBedtime = "23:00"
	}
	if user.UsualWakeTime == "" {
		user.UsualWakeTime = "07:00"
	}
	if user.TrackingGoal == "" {
		user.TrackingGoal = domain.GoalBalanced
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
