package appointment

import (
	entappt "github.com/Tushar123097/hospital-backend/internal/repo/appointment"
)

// The appointment lifecycle is a one-way machine:
//
//	waiting -> confirmed -> completed
//	waiting -> cancelled
//	confirmed -> cancelled
//
// completed and cancelled are terminal. There are no backward moves: a
// cancelled appointment stays cancelled and its token is never reissued.
var transitions = map[entappt.Status][]entappt.Status{
	entappt.StatusWaiting:   {entappt.StatusConfirmed, entappt.StatusCancelled},
	entappt.StatusConfirmed: {entappt.StatusCompleted, entappt.StatusCancelled},
	entappt.StatusCompleted: nil,
	entappt.StatusCancelled: nil,
}

// CanTransition reports whether from -> to is a legal lifecycle move.
func CanTransition(from, to entappt.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further moves.
func IsTerminal(s entappt.Status) bool {
	return len(transitions[s]) == 0
}
