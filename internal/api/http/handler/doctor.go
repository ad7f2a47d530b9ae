package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Tushar123097/hospital-backend/internal/api/http/middleware"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	"github.com/Tushar123097/hospital-backend/internal/schema/schematype"
	"github.com/Tushar123097/hospital-backend/internal/service/directory"
	"github.com/Tushar123097/hospital-backend/internal/service/profile"
)

type DoctorHandler struct {
	directory directory.Service
	profiles  profile.Service
}

func NewDoctorHandler(dir directory.Service, profiles profile.Service) *DoctorHandler {
	return &DoctorHandler{directory: dir, profiles: profiles}
}

// doctorSummary is the public projection of a bookable doctor.
type doctorSummary struct {
	ID           uuid.UUID                     `json:"id"`
	Name         string                        `json:"name"`
	Specialty    string                        `json:"specialty"`
	Degree       string                        `json:"degree"`
	Experience   string                        `json:"experience"`
	Fee          int64                         `json:"fee"`
	Image        *string                       `json:"image,omitempty"`
	Availability []schematype.AvailabilitySlot `json:"availability,omitempty"`
}

func toDoctorSummary(p *repo.DoctorProfile) doctorSummary {
	s := doctorSummary{
		ID:           p.DoctorID,
		Fee:          p.Fee,
		Image:        p.Image,
		Availability: p.Availability,
	}
	if p.Specialty != nil {
		s.Specialty = *p.Specialty
	}
	if p.Degree != nil {
		s.Degree = *p.Degree
	}
	if p.Experience != nil {
		s.Experience = *p.Experience
	}
	if p.Edges.Doctor != nil {
		s.Name = p.Edges.Doctor.Name
	}
	return s
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	profiles, err := h.directory.ListBookable(c.Context())
	if err != nil {
		return internalError(c)
	}

	out := make([]doctorSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toDoctorSummary(p))
	}
	return ok(c, out)
}

// GET /doctors/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	p, err := h.directory.GetBookable(c.Context(), doctorID)
	if err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, toDoctorSummary(p))
}

// GET /doctors/me/profile  (doctor only)
func (h *DoctorHandler) GetOwnProfile(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.profiles.GetOwn(c.Context(), id.UserID)
	if err != nil {
		return mapProfileError(c, err)
	}
	return ok(c, profileResponse(p))
}

// PUT /doctors/me/profile  (doctor only)
func (h *DoctorHandler) UpdateOwnProfile(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Specialty    *string                       `json:"specialty"`
		Degree       *string                       `json:"degree"`
		Experience   *string                       `json:"experience"`
		Fee          *int64                        `json:"fee"`
		Image        *string                       `json:"image"`
		Availability []schematype.AvailabilitySlot `json:"availability"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.profiles.UpdateOwn(c.Context(), id.UserID, profile.UpdateRequest{
		Specialty:    body.Specialty,
		Degree:       body.Degree,
		Experience:   body.Experience,
		Fee:          body.Fee,
		Image:        body.Image,
		Availability: body.Availability,
	})
	if err != nil {
		return mapProfileError(c, err)
	}
	return ok(c, profileResponse(p))
}

func profileResponse(p *profile.Profile) fiber.Map {
	return fiber.Map{
		"specialty":    p.Specialty,
		"degree":       p.Degree,
		"experience":   p.Experience,
		"fee":          p.Fee,
		"image":        p.Image,
		"availability": p.Availability,
		"complete":     p.Complete,
	}
}

func mapProfileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, profile.ErrInvalidFee):
		return badRequest(c, err.Error())
	case errors.Is(err, profile.ErrInvalidAvailability):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
