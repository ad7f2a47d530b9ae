// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/Tushar123097/hospital-backend/internal/repo/appointment"
	"github.com/Tushar123097/hospital-backend/internal/repo/doctorprofile"
	"github.com/Tushar123097/hospital-backend/internal/repo/tokencounter"
	"github.com/Tushar123097/hospital-backend/internal/repo/user"
	"github.com/Tushar123097/hospital-backend/internal/repo/usersession"
	"github.com/Tushar123097/hospital-backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescToken is the schema descriptor for token field.
	appointmentDescToken := appointmentFields[3].Descriptor()
	// appointment.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	appointment.TokenValidator = appointmentDescToken.Validators[0].(func(int) error)
	// appointmentDescSymptoms is the schema descriptor for symptoms field.
	appointmentDescSymptoms := appointmentFields[5].Descriptor()
	// appointment.SymptomsValidator is a validator for the "symptoms" field. It is called by the builders before save.
	appointment.SymptomsValidator = appointmentDescSymptoms.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	doctorprofileMixin := schema.DoctorProfile{}.Mixin()
	doctorprofileMixinFields0 := doctorprofileMixin[0].Fields()
	_ = doctorprofileMixinFields0
	doctorprofileMixinFields1 := doctorprofileMixin[1].Fields()
	_ = doctorprofileMixinFields1
	doctorprofileFields := schema.DoctorProfile{}.Fields()
	_ = doctorprofileFields
	// doctorprofileDescCreatedAt is the schema descriptor for created_at field.
	doctorprofileDescCreatedAt := doctorprofileMixinFields1[0].Descriptor()
	// doctorprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorprofile.DefaultCreatedAt = doctorprofileDescCreatedAt.Default.(func() time.Time)
	// doctorprofileDescUpdatedAt is the schema descriptor for updated_at field.
	doctorprofileDescUpdatedAt := doctorprofileMixinFields1[1].Descriptor()
	// doctorprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorprofile.DefaultUpdatedAt = doctorprofileDescUpdatedAt.Default.(func() time.Time)
	// doctorprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorprofile.UpdateDefaultUpdatedAt = doctorprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorprofileDescSpecialty is the schema descriptor for specialty field.
	doctorprofileDescSpecialty := doctorprofileFields[1].Descriptor()
	// doctorprofile.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctorprofile.SpecialtyValidator = doctorprofileDescSpecialty.Validators[0].(func(string) error)
	// doctorprofileDescDegree is the schema descriptor for degree field.
	doctorprofileDescDegree := doctorprofileFields[2].Descriptor()
	// doctorprofile.DegreeValidator is a validator for the "degree" field. It is called by the builders before save.
	doctorprofile.DegreeValidator = doctorprofileDescDegree.Validators[0].(func(string) error)
	// doctorprofileDescExperience is the schema descriptor for experience field.
	doctorprofileDescExperience := doctorprofileFields[3].Descriptor()
	// doctorprofile.ExperienceValidator is a validator for the "experience" field. It is called by the builders before save.
	doctorprofile.ExperienceValidator = doctorprofileDescExperience.Validators[0].(func(string) error)
	// doctorprofileDescFee is the schema descriptor for fee field.
	doctorprofileDescFee := doctorprofileFields[4].Descriptor()
	// doctorprofile.DefaultFee holds the default value on creation for the fee field.
	doctorprofile.DefaultFee = doctorprofileDescFee.Default.(int64)
	// doctorprofile.FeeValidator is a validator for the "fee" field. It is called by the builders before save.
	doctorprofile.FeeValidator = doctorprofileDescFee.Validators[0].(func(int64) error)
	// doctorprofileDescID is the schema descriptor for id field.
	doctorprofileDescID := doctorprofileMixinFields0[0].Descriptor()
	// doctorprofile.DefaultID holds the default value on creation for the id field.
	doctorprofile.DefaultID = doctorprofileDescID.Default.(func() uuid.UUID)
	tokencounterMixin := schema.TokenCounter{}.Mixin()
	tokencounterMixinFields0 := tokencounterMixin[0].Fields()
	_ = tokencounterMixinFields0
	tokencounterMixinFields1 := tokencounterMixin[1].Fields()
	_ = tokencounterMixinFields1
	tokencounterFields := schema.TokenCounter{}.Fields()
	_ = tokencounterFields
	// tokencounterDescCreatedAt is the schema descriptor for created_at field.
	tokencounterDescCreatedAt := tokencounterMixinFields1[0].Descriptor()
	// tokencounter.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokencounter.DefaultCreatedAt = tokencounterDescCreatedAt.Default.(func() time.Time)
	// tokencounterDescUpdatedAt is the schema descriptor for updated_at field.
	tokencounterDescUpdatedAt := tokencounterMixinFields1[1].Descriptor()
	// tokencounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tokencounter.DefaultUpdatedAt = tokencounterDescUpdatedAt.Default.(func() time.Time)
	// tokencounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tokencounter.UpdateDefaultUpdatedAt = tokencounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tokencounterDescValue is the schema descriptor for value field.
	tokencounterDescValue := tokencounterFields[2].Descriptor()
	// tokencounter.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	tokencounter.ValueValidator = tokencounterDescValue.Validators[0].(func(int) error)
	// tokencounterDescID is the schema descriptor for id field.
	tokencounterDescID := tokencounterMixinFields0[0].Descriptor()
	// tokencounter.DefaultID holds the default value on creation for the id field.
	tokencounter.DefaultID = tokencounterDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
