// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "token", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"waiting", "confirmed", "completed", "cancelled"}, Default: "waiting"},
		{Name: "symptoms", Type: field.TypeString, Size: 2147483647},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_date_token",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_doctor_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4]},
			},
		},
	}
	// DoctorProfilesColumns holds the columns for the "doctor_profiles" table.
	DoctorProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "degree", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "experience", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "fee", Type: field.TypeInt64, Default: 0},
		{Name: "image", Type: field.TypeString, Nullable: true},
		{Name: "availability", Type: field.TypeJSON, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID, Unique: true},
	}
	// DoctorProfilesTable holds the schema information for the "doctor_profiles" table.
	DoctorProfilesTable = &schema.Table{
		Name:       "doctor_profiles",
		Columns:    DoctorProfilesColumns,
		PrimaryKey: []*schema.Column{DoctorProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctor_profiles_users_doctor_profile",
				Columns:    []*schema.Column{DoctorProfilesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TokenCountersColumns holds the columns for the "token_counters" table.
	TokenCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "value", Type: field.TypeInt},
	}
	// TokenCountersTable holds the schema information for the "token_counters" table.
	TokenCountersTable = &schema.Table{
		Name:       "token_counters",
		Columns:    TokenCountersColumns,
		PrimaryKey: []*schema.Column{TokenCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokencounter_doctor_id_date",
				Unique:  true,
				Columns: []*schema.Column{TokenCountersColumns[3], TokenCountersColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "doctor"}},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		DoctorProfilesTable,
		TokenCountersTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	DoctorProfilesTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
