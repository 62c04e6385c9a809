// File: services/coach/coach.go
package coach

import (
	"context"
	"errors"

	coachRepo "pitchside/database/repository/coach"
	"pitchside/models"
	"pitchside/utils"
)

// CoachService owns coach profile management.
type CoachService interface {
	Create(ctx context.Context, in models.CoachInput) (*models.Coach, error)
	Get(ctx context.Context, id string) (*models.Coach, error)
	Update(ctx context.Context, id string, in models.CoachInput) (*models.Coach, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]models.Coach, error)
}

// DefaultCoachService is the concrete implementation.
type DefaultCoachService struct {
	Repo coachRepo.CoachRepository
}

func (s *DefaultCoachService) Create(ctx context.Context, in models.CoachInput) (*models.Coach, error) {
	c := &models.Coach{
		Name:            in.Name,
		Title:           in.Title,
		Bio:             in.Bio,
		Specialty:       in.Specialty,
		ExperienceYears: in.ExperienceYears,
		PhotoURL:        in.PhotoURL,
		Active:          true,
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, utils.StoreError("failed to create coach", err)
	}
	return c, nil
}

func (s *DefaultCoachService) Get(ctx context.Context, id string) (*models.Coach, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, coachRepo.ErrNotFound) {
			return nil, utils.NotFoundError("coach", id)
		}
		return nil, utils.StoreError("failed to load coach", err)
	}
	return c, nil
}

func (s *DefaultCoachService) Update(ctx context.Context, id string, in models.CoachInput) (*models.Coach, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Title = in.Title
	c.Bio = in.Bio
	c.Specialty = in.Specialty
	c.ExperienceYears = in.ExperienceYears
	if in.PhotoURL != "" {
		c.PhotoURL = in.PhotoURL
	}
	if in.Active != nil {
		c.Active = *in.Active
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		if errors.Is(err, coachRepo.ErrNotFound) {
			return nil, utils.NotFoundError("coach", id)
		}
		return nil, utils.StoreError("failed to update coach", err)
	}
	return c, nil
}

func (s *DefaultCoachService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, coachRepo.ErrNotFound) {
			return utils.NotFoundError("coach", id)
		}
		return utils.StoreError("failed to delete coach", err)
	}
	return nil
}

func (s *DefaultCoachService) List(ctx context.Context, activeOnly bool) ([]models.Coach, error) {
	coaches, err := s.Repo.List(ctx, activeOnly)
	if err != nil {
		return nil, utils.StoreError("failed to list coaches", err)
	}
	return coaches, nil
}
