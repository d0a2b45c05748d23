package doctor

import (
	"context"
	"fmt"

	"github.com/dermacare/booking-api/internal/model"
	"github.com/dermacare/booking-api/internal/repository"
	"github.com/dermacare/booking-api/pkg/errors"
)

// fallbackCity is returned when a city search comes up empty, so the app
// always has a directory to show.
const fallbackCity = "chennai"

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Doctor", err)
	}
	return doc, nil
}

// SearchByCity returns the doctors in a city, falling back to the default
// city when none match.
func (s *Service) SearchByCity(ctx context.Context, city string) ([]*model.Doctor, error) {
	if city == "" {
		return nil, errors.BadRequest("City parameter is required", nil)
	}

	doctors, err := s.repo.SearchByCity(ctx, city)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to search doctors: %w", err))
	}

	if len(doctors) == 0 {
		doctors, err = s.repo.SearchByCity(ctx, fallbackCity)
		if err != nil {
			return nil, errors.Internal(fmt.Errorf("failed to search doctors: %w", err))
		}
	}
	return doctors, nil
}
