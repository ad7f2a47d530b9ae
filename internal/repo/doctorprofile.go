// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Tushar123097/hospital-backend/internal/repo/doctorprofile"
	"github.com/Tushar123097/hospital-backend/internal/repo/user"
	"github.com/Tushar123097/hospital-backend/internal/schema/schematype"
	"github.com/google/uuid"
)

// DoctorProfile is the model entity for the DoctorProfile schema.
type DoctorProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (1:1)
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Specialty holds the value of the "specialty" field.
	Specialty *string `json:"specialty,omitempty"`
	// Degree holds the value of the "degree" field.
	Degree *string `json:"degree,omitempty"`
	// Experience band for display, e.g. "5-10 years"
	Experience *string `json:"experience,omitempty"`
	// Consultation fee; 0 means not set yet
	Fee int64 `json:"fee,omitempty"`
	// Public profile image URL
	Image *string `json:"image,omitempty"`
	// Ordered weekly availability declared by the doctor
	Availability []schematype.AvailabilitySlot `json:"availability,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoctorProfileQuery when eager-loading is set.
	Edges        DoctorProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoctorProfileEdges holds the relations/edges for other nodes in the graph.
type DoctorProfileEdges struct {
	// Doctor holds the value of the doctor edge.
	Doctor *User `json:"doctor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoctorProfileEdges) DoctorOrErr() (*User, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoctorProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctorprofile.FieldAvailability:
			values[i] = new([]byte)
		case doctorprofile.FieldFee:
			values[i] = new(sql.NullInt64)
		case doctorprofile.FieldSpecialty, doctorprofile.FieldDegree, doctorprofile.FieldExperience, doctorprofile.FieldImage:
			values[i] = new(sql.NullString)
		case doctorprofile.FieldCreatedAt, doctorprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctorprofile.FieldID, doctorprofile.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoctorProfile fields.
func (_m *DoctorProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctorprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctorprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctorprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctorprofile.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case doctorprofile.FieldSpecialty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialty", values[i])
			} else if value.Valid {
				_m.Specialty = new(string)
				*_m.Specialty = value.String
			}
		case doctorprofile.FieldDegree:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field degree", values[i])
			} else if value.Valid {
				_m.Degree = new(string)
				*_m.Degree = value.String
			}
		case doctorprofile.FieldExperience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience", values[i])
			} else if value.Valid {
				_m.Experience = new(string)
				*_m.Experience = value.String
			}
		case doctorprofile.FieldFee:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fee", values[i])
			} else if value.Valid {
				_m.Fee = value.Int64
			}
		case doctorprofile.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				_m.Image = new(string)
				*_m.Image = value.String
			}
		case doctorprofile.FieldAvailability:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field availability", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Availability); err != nil {
					return fmt.Errorf("unmarshal field availability: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoctorProfile.
// This includes values selected through modifiers, order, etc.
func (_m *DoctorProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoctor queries the "doctor" edge of the DoctorProfile entity.
func (_m *DoctorProfile) QueryDoctor() *UserQuery {
	return NewDoctorProfileClient(_m.config).QueryDoctor(_m)
}

// Update returns a builder for updating this DoctorProfile.
// Note that you need to call DoctorProfile.Unwrap() before calling this method if this DoctorProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoctorProfile) Update() *DoctorProfileUpdateOne {
	return NewDoctorProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoctorProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoctorProfile) Unwrap() *DoctorProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DoctorProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoctorProfile) String() string {
	var builder strings.Builder
	builder.WriteString("DoctorProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	if v := _m.Specialty; v != nil {
		builder.WriteString("specialty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Degree; v != nil {
		builder.WriteString("degree=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Experience; v != nil {
		builder.WriteString("experience=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fee))
	builder.WriteString(", ")
	if v := _m.Image; v != nil {
		builder.WriteString("image=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("availability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Availability))
	builder.WriteByte(')')
	return builder.String()
}

// DoctorProfiles is a parsable slice of DoctorProfile.
type DoctorProfiles []*DoctorProfile
