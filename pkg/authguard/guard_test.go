package authguard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	pasetotoken "github.com/Tushar123097/hospital-backend/pkg/paseto"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Role
		wantErr bool
	}{
		{"patient", "patient", RolePatient, false},
		{"doctor", "doctor", RoleDoctor, false},
		{"empty", "", "", true},
		{"admin is not a role here", "admin", "", true},
		{"case sensitive", "Doctor", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// sessionStoreFunc adapts a func to SessionStore for tests.
type sessionStoreFunc func(ctx context.Context, sessionID uuid.UUID) (bool, error)

func (f sessionStoreFunc) Active(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	return f(ctx, sessionID)
}

func newTestManager(t *testing.T) *pasetotoken.Manager {
	t.Helper()

	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:       pasetotoken.ModeLocal,
		Issuer:     "hospital-backend",
		Audience:   "hospital-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, pasetotoken.NewLocalKeys())
	if err != nil {
		t.Fatalf("paseto.New() error = %v", err)
	}
	return mgr
}

func alwaysActive(context.Context, uuid.UUID) (bool, error) { return true, nil }

func TestResolve(t *testing.T) {
	mgr := newTestManager(t)
	guard := New(mgr, sessionStoreFunc(alwaysActive))

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := mgr.IssueAccess(userID, "doctor", &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	id, err := guard.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if id.UserID != userID {
		t.Errorf("UserID = %v, want %v", id.UserID, userID)
	}
	if id.Role != RoleDoctor {
		t.Errorf("Role = %q, want %q", id.Role, RoleDoctor)
	}
}

func TestResolveRejectsEmptyCredential(t *testing.T) {
	guard := New(newTestManager(t), sessionStoreFunc(alwaysActive))

	if _, err := guard.Resolve(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("Resolve(\"\") error = %v, want ErrUnauthenticated", err)
	}
}

func TestResolveRejectsRefreshToken(t *testing.T) {
	mgr := newTestManager(t)
	guard := New(mgr, sessionStoreFunc(alwaysActive))

	tok, err := mgr.IssueRefresh(uuid.Must(uuid.NewV7()), "patient", nil)
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	if _, err := guard.Resolve(context.Background(), tok); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("Resolve(refresh) error = %v, want ErrUnauthenticated", err)
	}
}

func TestResolveRejectsRevokedSession(t *testing.T) {
	mgr := newTestManager(t)
	guard := New(mgr, sessionStoreFunc(func(context.Context, uuid.UUID) (bool, error) {
		return false, nil
	}))

	sessionID := uuid.Must(uuid.NewV7())
	tok, err := mgr.IssueAccess(uuid.Must(uuid.NewV7()), "patient", &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := guard.Resolve(context.Background(), tok); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("Resolve(revoked) error = %v, want ErrUnauthenticated", err)
	}
}

func TestResolveRejectsUnknownRoleClaim(t *testing.T) {
	mgr := newTestManager(t)
	guard := New(mgr, sessionStoreFunc(alwaysActive))

	tok, err := mgr.IssueAccess(uuid.Must(uuid.NewV7()), "superuser", nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := guard.Resolve(context.Background(), tok); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("Resolve(bad role) error = %v, want ErrUnauthenticated", err)
	}
}

func TestRequireRole(t *testing.T) {
	mgr := newTestManager(t)
	guard := New(mgr, sessionStoreFunc(alwaysActive))

	patientTok, err := mgr.IssueAccess(uuid.Must(uuid.NewV7()), "patient", nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := guard.RequireRole(context.Background(), patientTok, RolePatient); err != nil {
		t.Errorf("RequireRole(patient, patient) error = %v", err)
	}

	if _, err := guard.RequireRole(context.Background(), patientTok, RoleDoctor); !errors.Is(err, ErrForbidden) {
		t.Errorf("RequireRole(patient, doctor) error = %v, want ErrForbidden", err)
	}

	if _, err := guard.RequireRole(context.Background(), patientTok, RoleDoctor, RolePatient); err != nil {
		t.Errorf("RequireRole(patient, doctor|patient) error = %v", err)
	}
}
