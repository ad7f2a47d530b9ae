// Package directory lists the doctors patients can book with. A doctor shows
// up here only once their profile is complete; incomplete profiles exist but
// are invisible to patients.
package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Tushar123097/hospital-backend/internal/repo"
	entdoc "github.com/Tushar123097/hospital-backend/internal/repo/doctorprofile"
	"github.com/Tushar123097/hospital-backend/internal/repo/predicate"
	entuser "github.com/Tushar123097/hospital-backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ListBookable returns complete doctor profiles with the doctor edge
	// loaded, oldest profile first.
	ListBookable(ctx context.Context) ([]*repo.DoctorProfile, error)

	// GetBookable returns a single bookable doctor by user ID. Incomplete
	// or suspended doctors are reported as not found, same as unknown IDs.
	GetBookable(ctx context.Context, doctorID uuid.UUID) (*repo.DoctorProfile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type directoryService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &directoryService{db: db}
}

// CompletePredicates returns the predicates that define a bookable profile:
// specialty, degree and experience set, and a fee above zero. The booking
// service applies the same predicates so the two can never disagree.
func CompletePredicates() []predicate.DoctorProfile {
	return []predicate.DoctorProfile{
		entdoc.SpecialtyNotNil(),
		entdoc.SpecialtyNEQ(""),
		entdoc.DegreeNotNil(),
		entdoc.DegreeNEQ(""),
		entdoc.ExperienceNotNil(),
		entdoc.ExperienceNEQ(""),
		entdoc.FeeGT(0),
	}
}

// IsComplete reports whether a loaded profile satisfies the bookable rule.
func IsComplete(p *repo.DoctorProfile) bool {
	if p == nil {
		return false
	}
	if p.Specialty == nil || *p.Specialty == "" {
		return false
	}
	if p.Degree == nil || *p.Degree == "" {
		return false
	}
	if p.Experience == nil || *p.Experience == "" {
		return false
	}
	return p.Fee > 0
}

func (s *directoryService) ListBookable(ctx context.Context) ([]*repo.DoctorProfile, error) {
	profiles, err := s.db.DoctorProfile.Query().
		Where(CompletePredicates()...).
		Where(entdoc.HasDoctorWith(
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.DeletedAtIsNil(),
		)).
		WithDoctor().
		Order(entdoc.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookable doctors: %w", err)
	}
	return profiles, nil
}

func (s *directoryService) GetBookable(ctx context.Context, doctorID uuid.UUID) (*repo.DoctorProfile, error) {
	profile, err := s.db.DoctorProfile.Query().
		Where(entdoc.DoctorID(doctorID)).
		Where(CompletePredicates()...).
		Where(entdoc.HasDoctorWith(
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.DeletedAtIsNil(),
		)).
		WithDoctor().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get bookable doctor: %w", err)
	}
	return profile, nil
}
