// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// DoctorProfile is the predicate function for doctorprofile builders.
type DoctorProfile func(*sql.Selector)

// TokenCounter is the predicate function for tokencounter builders.
type TokenCounter func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
