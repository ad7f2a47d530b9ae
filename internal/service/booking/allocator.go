package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Tushar123097/hospital-backend/internal/repo"
	enttc "github.com/Tushar123097/hospital-backend/internal/repo/tokencounter"
)

// casAttempts bounds the conditional-update loop. Each lost race means
// another booking for the same doctor/day got through, so under sane load a
// handful of retries is plenty.
const casAttempts = 5

// allocateToken hands out the next queue token for (doctorID, day) inside tx.
// Tokens for a key are issued as exactly 1, 2, 3, ... with no duplicates and
// no gaps, even under concurrent bookings: the counter row is bumped with a
// conditional update that only succeeds if the value is still the one we
// read, and losers re-read and retry.
//
// maxTokens caps the day when positive; 0 means unlimited.
func allocateToken(ctx context.Context, tx *repo.Tx, doctorID uuid.UUID, day time.Time, maxTokens int) (int, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		counter, err := tx.TokenCounter.Query().
			Where(
				enttc.DoctorID(doctorID),
				enttc.DateEQ(day),
			).
			Only(ctx)

		if repo.IsNotFound(err) {
			// First booking for this doctor/day. A concurrent first
			// booking hits the unique (doctor_id, date) index; the
			// loser re-reads the row the winner created.
			_, err := tx.TokenCounter.Create().
				SetDoctorID(doctorID).
				SetDate(day).
				SetValue(1).
				Save(ctx)
			if repo.IsConstraintError(err) {
				continue
			}
			if err != nil {
				return 0, fmt.Errorf("create token counter: %w", err)
			}
			return 1, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read token counter: %w", err)
		}

		next := counter.Value + 1
		if maxTokens > 0 && next > maxTokens {
			return 0, ErrDayFull
		}

		n, err := tx.TokenCounter.Update().
			Where(
				enttc.ID(counter.ID),
				enttc.ValueEQ(counter.Value),
			).
			SetValue(next).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("bump token counter: %w", err)
		}
		if n == 0 {
			// Someone else bumped it between our read and write.
			continue
		}
		return next, nil
	}
	return 0, ErrContention
}
