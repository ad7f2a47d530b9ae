package appointment

import (
	"testing"

	entappt "github.com/Tushar123097/hospital-backend/internal/repo/appointment"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entappt.Status
		to   entappt.Status
		want bool
	}{
		{"waiting to confirmed", entappt.StatusWaiting, entappt.StatusConfirmed, true},
		{"waiting to cancelled", entappt.StatusWaiting, entappt.StatusCancelled, true},
		{"waiting to completed skips confirm", entappt.StatusWaiting, entappt.StatusCompleted, false},
		{"confirmed to completed", entappt.StatusConfirmed, entappt.StatusCompleted, true},
		{"confirmed to cancelled", entappt.StatusConfirmed, entappt.StatusCancelled, true},
		{"confirmed back to waiting", entappt.StatusConfirmed, entappt.StatusWaiting, false},
		{"completed is terminal", entappt.StatusCompleted, entappt.StatusCancelled, false},
		{"cancelled is terminal", entappt.StatusCancelled, entappt.StatusWaiting, false},
		{"cancelled to confirmed", entappt.StatusCancelled, entappt.StatusConfirmed, false},
		{"self transition", entappt.StatusWaiting, entappt.StatusWaiting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(entappt.StatusWaiting) {
		t.Error("waiting should not be terminal")
	}
	if IsTerminal(entappt.StatusConfirmed) {
		t.Error("confirmed should not be terminal")
	}
	if !IsTerminal(entappt.StatusCompleted) {
		t.Error("completed should be terminal")
	}
	if !IsTerminal(entappt.StatusCancelled) {
		t.Error("cancelled should be terminal")
	}
}
