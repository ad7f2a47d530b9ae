package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	mgr, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "hospital-backend",
		Audience:   "hospital-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return mgr
}

func TestIssueAndVerifyAccess(t *testing.T) {
	mgr := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := mgr.IssueAccess(userID, "doctor", &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := mgr.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Role != "doctor" {
		t.Errorf("Role = %q, want %q", claims.Role, "doctor")
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sessionID)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	mgr := newTestManager(t)

	if _, err := mgr.Verify("v4.local.not-a-token"); err == nil {
		t.Fatal("Verify() accepted a malformed token")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	a := newTestManager(t)
	b := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	tok, err := a.IssueAccess(userID, "patient", nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := b.Verify(tok); err == nil {
		t.Fatal("Verify() accepted a token issued under a different key")
	}
}

func TestRefreshCarriesRole(t *testing.T) {
	mgr := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	tok, err := mgr.IssueRefresh(userID, "patient", nil)
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	claims, err := mgr.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.Role != "patient" {
		t.Errorf("Role = %q, want %q", claims.Role, "patient")
	}
}
