package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlasproject/atlas-api/internal/apperr"
	"github.com/atlasproject/atlas-api/internal/model"
)

// ListObservations returns observations newest first, joined with country,
// user and optional city names.
func (s *Service) ListObservations(ctx context.Context, filter model.ObservationFilter) ([]model.ObservationView, error) {
	return s.observationRepo.List(ctx, filter)
}

func (s *Service) GetObservation(ctx context.Context, id int) (*model.CulturalObservation, error) {
	return s.observationRepo.GetByID(ctx, id)
}

// CreateObservation records a note for the authenticated user. The author is
// always the authenticated identity; caller-supplied user fields are never
// honoured.
func (s *Service) CreateObservation(ctx context.Context, input model.CreateObservationInput, userID int) (*model.CulturalObservation, error) {
	if strings.TrimSpace(input.Observation) == "" {
		return nil, apperr.Validation("observation text is required")
	}
	if input.CountryID == 0 {
		return nil, apperr.Validation("country_id is required")
	}
	if err := s.checkCountryExists(ctx, input.CountryID); err != nil {
		return nil, err
	}
	if input.CityID != nil {
		if err := s.checkCityExists(ctx, *input.CityID); err != nil {
			return nil, err
		}
	}

	obs := &model.CulturalObservation{
		CountryID:   input.CountryID,
		CityID:      input.CityID,
		UserID:      userID,
		Observation: input.Observation,
	}
	if err := s.observationRepo.Create(ctx, obs); err != nil {
		return nil, fmt.Errorf("failed to create observation: %w", err)
	}
	return obs, nil
}

// UpdateObservation merges the owner-editable fields. Existence is revealed
// to any caller; only the edit itself is gated on ownership.
func (s *Service) UpdateObservation(ctx context.Context, id int, input model.UpdateObservationInput, userID int) (*model.CulturalObservation, error) {
	existing, err := s.observationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load observation: %w", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("observation", id)
	}
	if existing.UserID != userID {
		return nil, apperr.Unauthorized("you can only update your own observations")
	}

	if input.Observation != nil {
		if strings.TrimSpace(*input.Observation) == "" {
			return nil, apperr.Validation("observation text must not be empty")
		}
		existing.Observation = *input.Observation
	}
	if input.CityID != nil {
		if err := s.checkCityExists(ctx, *input.CityID); err != nil {
			return nil, err
		}
		existing.CityID = input.CityID
	}

	if err := s.observationRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update observation: %w", err)
	}
	return existing, nil
}

// DeleteObservation removes an observation owned by userID. Returns false
// without error when the id never existed.
func (s *Service) DeleteObservation(ctx context.Context, id int, userID int) (bool, error) {
	existing, err := s.observationRepo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to load observation: %w", err)
	}
	if existing == nil {
		return false, nil
	}
	if existing.UserID != userID {
		return false, apperr.Unauthorized("you can only delete your own observations")
	}
	return s.observationRepo.Delete(ctx, id)
}
