// Package profile manages the doctor's own profile: credentials, fee, image
// and weekly availability. The profile row is created empty at signup; the
// doctor becomes visible in the directory once it is complete.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Tushar123097/hospital-backend/internal/repo"
	entdoc "github.com/Tushar123097/hospital-backend/internal/repo/doctorprofile"
	"github.com/Tushar123097/hospital-backend/internal/schema/schematype"
	"github.com/Tushar123097/hospital-backend/internal/service/directory"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// UpdateRequest carries partial profile edits. Nil fields are left as-is.
type UpdateRequest struct {
	Specialty    *string
	Degree       *string
	Experience   *string
	Fee          *int64
	Image        *string
	Availability []schematype.AvailabilitySlot
}

// Profile pairs the stored row with its derived completeness.
type Profile struct {
	*repo.DoctorProfile
	Complete bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetOwn(ctx context.Context, doctorID uuid.UUID) (*Profile, error)
	UpdateOwn(ctx context.Context, doctorID uuid.UUID, req UpdateRequest) (*Profile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type profileService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &profileService{db: db}
}

func (s *profileService) GetOwn(ctx context.Context, doctorID uuid.UUID) (*Profile, error) {
	p, err := s.db.DoctorProfile.Query().
		Where(entdoc.DoctorID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &Profile{DoctorProfile: p, Complete: directory.IsComplete(p)}, nil
}

func (s *profileService) UpdateOwn(ctx context.Context, doctorID uuid.UUID, req UpdateRequest) (*Profile, error) {
	p, err := s.db.DoctorProfile.Query().
		Where(entdoc.DoctorID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if req.Fee != nil && *req.Fee < 0 {
		return nil, ErrInvalidFee
	}
	for _, slot := range req.Availability {
		if strings.TrimSpace(slot.Day) == "" || slot.From == "" || slot.To == "" {
			return nil, ErrInvalidAvailability
		}
	}

	upd := s.db.DoctorProfile.UpdateOne(p)

	if req.Specialty != nil {
		upd = upd.SetSpecialty(strings.TrimSpace(*req.Specialty))
	}
	if req.Degree != nil {
		upd = upd.SetDegree(strings.TrimSpace(*req.Degree))
	}
	if req.Experience != nil {
		upd = upd.SetExperience(strings.TrimSpace(*req.Experience))
	}
	if req.Fee != nil {
		upd = upd.SetFee(*req.Fee)
	}
	if req.Image != nil {
		upd = upd.SetImage(*req.Image)
	}
	if req.Availability != nil {
		upd = upd.SetAvailability(req.Availability)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &Profile{DoctorProfile: updated, Complete: directory.IsComplete(updated)}, nil
}
