package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sanitize"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sse"
)

type ProfileServiceImpl struct {
	profile.ProfileRepository
	publisher sse.Publisher
}

func NewProfileService(profileRepo profile.ProfileRepository, publisher sse.Publisher) profile.ProfileService {
	return &ProfileServiceImpl{
		ProfileRepository: profileRepo,
		publisher:         publisher,
	}
}

// Resolve implements profile.ProfileService.
func (s *ProfileServiceImpl) Resolve(ctx context.Context, userID string) (profile.Profile, error) {
	p, err := s.ProfileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return profile.Default(userID), nil
		}
		return profile.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetProfile implements profile.ProfileService.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context) (profile.ProfileResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p, err := s.Resolve(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}
	return profile.ToResponse(p), nil
}

// UpdateProfile implements profile.ProfileService.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, req profile.UpdateProfileRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p, err := s.Resolve(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		p.Name = &name
	}
	if req.PreferredLanguage != nil {
		p.PreferredLanguage = *req.PreferredLanguage
	}
	if req.WeekStartDay != nil {
		p.WeekStartDay = *req.WeekStartDay
	}
	if req.HasVariableSchedule != nil {
		p.HasVariableSchedule = *req.HasVariableSchedule
	}
	if req.DefaultHourlyRate != nil {
		p.DefaultHourlyRate = req.DefaultHourlyRate.InexactFloat64()
	}
	if req.AverageDeductionPercentage != nil {
		p.AverageDeductionPercentage = *req.AverageDeductionPercentage
	}
	if req.DefaultEmployerID != nil {
		if *req.DefaultEmployerID == "" {
			p.DefaultEmployerID = nil
		} else {
			id := *req.DefaultEmployerID
			p.DefaultEmployerID = &id
		}
	}

	return s.save(ctx, p)
}

// UpdateTargets implements profile.ProfileService.
func (s *ProfileServiceImpl) UpdateTargets(ctx context.Context, req profile.UpdateTargetsRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p, err := s.Resolve(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}
	p.Targets = req.Apply(p.Targets)

	return s.save(ctx, p)
}

func (s *ProfileServiceImpl) save(ctx context.Context, p profile.Profile) (profile.ProfileResponse, error) {
	saved, err := s.ProfileRepository.Upsert(ctx, p)
	if err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to save profile: %w", err)
	}

	// Week start and targets change every dashboard figure
	s.publisher.Publish(sse.Event{UserID: saved.UserID, Event: sse.EventProfileChanged})

	return profile.ToResponse(saved), nil
}
