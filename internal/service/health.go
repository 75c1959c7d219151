package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"exusiai.dev/roadmap-tracker/internal/pkg/apperr"
	"exusiai.dev/roadmap-tracker/internal/repo"
)

var ErrStorageNotReachable = apperr.New(fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "progress storage is not reachable")

type Health struct {
	ProgressRepo *repo.Progress
}

func NewHealth(progressRepo *repo.Progress) *Health {
	return &Health{
		ProgressRepo: progressRepo,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.ProgressRepo.Ping(ctx); err != nil {
		return errors.Wrap(ErrStorageNotReachable, err.Error())
	}
	return nil
}
