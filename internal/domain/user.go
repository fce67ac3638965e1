package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone      string       `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	UsualBedtime  string       `gorm:"type:varchar(5);not null;default:'23:00'" json:"usual_bedtime"`
	UsualWakeTime string       `gorm:"type:varchar(5);not null;default:'07:00'" json:"usual_wake_time"`
	TrackingGoal  TrackingGoal `gorm:"type:varchar(16);not null;default:'balanced'" json:"tracking_goal"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for registering a user with their habitual sleep schedule.
type CreateUserRequest struct {
	// IANA timezone for local time handling
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	// Habitual bedtime as HH:MM, used to synthesize planned records for untracked days
	UsualBedtime string `json:"usual_bedtime" validate:"omitempty,timeofday" example:"23:00"`
	// Habitual wake time as HH:MM
	UsualWakeTime string `json:"usual_wake_time" validate:"omitempty,timeofday" example:"07:00"`
	// Primary tracking goal driving strategy selection when data is poor
	TrackingGoal TrackingGoal `json:"tracking_goal" validate:"omitempty,oneof=motivation health accuracy balanced" example:"balanced" enums:"motivation,health,accuracy,balanced"`
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID            uuid.UUID    `json:"id"`
	Timezone      string       `json:"timezone"`
	UsualBedtime  string       `json:"usual_bedtime"`
	UsualWakeTime string       `json:"usual_wake_time"`
	TrackingGoal  TrackingGoal `json:"tracking_goal"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Timezone:      u.Timezone,
		UsualBedtime:  u.UsualBedtime,
		UsualWakeTime: u.UsualWakeTime,
		TrackingGoal:  u.TrackingGoal,
		CreatedAt:     u.CreatedAt,
	}
}

// Schedule returns the user's habitual sleep schedule.
func (u *User) Schedule() SleepSchedule {
	return SleepSchedule{
		Bedtime:  u.UsualBedtime,
		WakeTime: u.UsualWakeTime,
	}
}

// SleepSchedule is a user's habitual bedtime and wake time, both HH:MM.
type SleepSchedule struct {
	Bedtime  string `json:"bedtime" example:"23:00"`
	WakeTime string `json:"wake_time" example:"07:00"`
}
