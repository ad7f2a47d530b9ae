package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Tushar123097/hospital-backend/config"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	"github.com/Tushar123097/hospital-backend/internal/repo/enttest"
	entuser "github.com/Tushar123097/hospital-backend/internal/repo/user"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func createPatient(t *testing.T, client *repo.Client) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetName("Ravi Kumar").
		SetEmail(fmt.Sprintf("ravi-%s@example.com", uuid.NewString())).
		SetRole(entuser.RolePatient).
		SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return u
}

func createBookableDoctor(t *testing.T, client *repo.Client) *repo.User {
	t.Helper()
	ctx := context.Background()

	u, err := client.User.Create().
		SetName("Asha Rao").
		SetEmail(fmt.Sprintf("asha-%s@example.com", uuid.NewString())).
		SetRole(entuser.RoleDoctor).
		SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	_, err = client.DoctorProfile.Create().
		SetDoctorID(u.ID).
		SetSpecialty("Cardiology").
		SetDegree("MD").
		SetExperience("5-10 years").
		SetFee(500).
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor profile: %v", err)
	}
	return u
}

func futureDay() time.Time {
	return time.Now().AddDate(0, 0, 7)
}

func TestBookAssignsSequentialTokens(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	doctor := createBookableDoctor(t, client)
	patient := createPatient(t, client)
	svc := New(client, nil, config.BookingConfig{})

	day := futureDay()
	for want := 1; want <= 3; want++ {
		b, err := svc.Book(ctx, patient.ID, BookRequest{
			DoctorID: doctor.ID,
			Date:     day,
			Symptoms: "persistent cough",
		})
		if err != nil {
			t.Fatalf("Book #%d: %v", want, err)
		}
		if b.Appointment.Token != want {
			t.Errorf("Book #%d: token = %d, want %d", want, b.Appointment.Token, want)
		}
	}

	counter, err := client.TokenCounter.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query counter: %v", err)
	}
	if counter.Value != 3 {
		t.Errorf("counter value = %d, want 3", counter.Value)
	}
}

func TestBookPastDateLeavesNoTrace(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	doctor := createBookableDoctor(t, client)
	patient := createPatient(t, client)
	svc := New(client, nil, config.BookingConfig{})

	_, err := svc.Book(ctx, patient.ID, BookRequest{
		DoctorID: doctor.ID,
		Date:     time.Now().AddDate(0, 0, -1),
		Symptoms: "fever",
	})
	if !errors.Is(err, ErrPastDate) {
		t.Fatalf("err = %v, want ErrPastDate", err)
	}

	// A rejected booking must not consume a token or leave a row behind.
	if n := client.TokenCounter.Query().CountX(ctx); n != 0 {
		t.Errorf("token counters = %d, want 0", n)
	}
	if n := client.Appointment.Query().CountX(ctx); n != 0 {
		t.Errorf("appointments = %d, want 0", n)
	}
}

func TestBookEmptySymptomsCheckedFirst(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	patient := createPatient(t, client)
	svc := New(client, nil, config.BookingConfig{})

	// Validation runs before the doctor lookup, so even a nonexistent doctor
	// reports the symptoms problem.
	_, err := svc.Book(ctx, patient.ID, BookRequest{
		DoctorID: uuid.New(),
		Date:     futureDay(),
		Symptoms: "   ",
	})
	if !errors.Is(err, ErrEmptySymptoms) {
		t.Fatalf("err = %v, want ErrEmptySymptoms", err)
	}
	if n := client.TokenCounter.Query().CountX(ctx); n != 0 {
		t.Errorf("token counters = %d, want 0", n)
	}
}

func TestBookIncompleteDoctorIsNotBookable(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Doctor exists but the profile was never filled in.
	u, err := client.User.Create().
		SetName("Vikram Shah").
		SetEmail(fmt.Sprintf("vikram-%s@example.com", uuid.NewString())).
		SetRole(entuser.RoleDoctor).
		SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	if _, err := client.DoctorProfile.Create().SetDoctorID(u.ID).Save(ctx); err != nil {
		t.Fatalf("create empty profile: %v", err)
	}

	patient := createPatient(t, client)
	svc := New(client, nil, config.BookingConfig{})

	_, err = svc.Book(ctx, patient.ID, BookRequest{
		DoctorID: u.ID,
		Date:     futureDay(),
		Symptoms: "headache",
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("err = %v, want ErrDoctorNotFound", err)
	}
}

func TestBookRespectsDailyCap(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	doctor := createBookableDoctor(t, client)
	patient := createPatient(t, client)
	svc := New(client, nil, config.BookingConfig{MaxTokensPerDay: 2})

	day := futureDay()
	for i := 0; i < 2; i++ {
		if _, err := svc.Book(ctx, patient.ID, BookRequest{
			DoctorID: doctor.ID,
			Date:     day,
			Symptoms: "checkup",
		}); err != nil {
			t.Fatalf("Book #%d: %v", i+1, err)
		}
	}

	_, err := svc.Book(ctx, patient.ID, BookRequest{
		DoctorID: doctor.ID,
		Date:     day,
		Symptoms: "checkup",
	})
	if !errors.Is(err, ErrDayFull) {
		t.Fatalf("err = %v, want ErrDayFull", err)
	}
	if n := client.Appointment.Query().CountX(ctx); n != 2 {
		t.Errorf("appointments = %d, want 2", n)
	}
}

func TestAllocateTokenCreatesCounter(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	doctorID := uuid.New()
	day := normalizeDay(futureDay())

	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	token, err := allocateToken(ctx, tx, doctorID, day, 0)
	if err != nil {
		t.Fatalf("allocateToken: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if token != 1 {
		t.Errorf("first token = %d, want 1", token)
	}
	counter, err := client.TokenCounter.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query counter: %v", err)
	}
	if counter.Value != 1 {
		t.Errorf("counter value = %d, want 1", counter.Value)
	}
}

func TestAllocateTokenResumesExistingCounter(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	doctorID := uuid.New()
	day := normalizeDay(futureDay())

	if _, err := client.TokenCounter.Create().
		SetDoctorID(doctorID).
		SetDate(day).
		SetValue(41).
		Save(ctx); err != nil {
		t.Fatalf("seed counter: %v", err)
	}

	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	token, err := allocateToken(ctx, tx, doctorID, day, 0)
	if err != nil {
		t.Fatalf("allocateToken: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if token != 42 {
		t.Errorf("token = %d, want 42", token)
	}
}

func TestAllocateTokenHonorsCap(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	doctorID := uuid.New()
	day := normalizeDay(futureDay())

	if _, err := client.TokenCounter.Create().
		SetDoctorID(doctorID).
		SetDate(day).
		SetValue(2).
		Save(ctx); err != nil {
		t.Fatalf("seed counter: %v", err)
	}

	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer tx.Rollback()

	if _, err := allocateToken(ctx, tx, doctorID, day, 2); !errors.Is(err, ErrDayFull) {
		t.Fatalf("err = %v, want ErrDayFull", err)
	}
}

// Concurrent bookings against one doctor/day must hand out tokens that are
// exactly {1..N} for the N that succeed. SQLite rejects some concurrent
// writers outright, which is fine: a failed booking must not leave a gap.
func TestConcurrentBookingsYieldDenseTokens(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	doctor := createBookableDoctor(t, client)
	patient := createPatient(t, client)
	svc := New(client, nil, config.BookingConfig{})

	day := futureDay()
	const attempts = 6

	var (
		mu     sync.Mutex
		tokens []int
		wg     sync.WaitGroup
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := svc.Book(ctx, patient.ID, BookRequest{
				DoctorID: doctor.ID,
				Date:     day,
				Symptoms: "follow-up",
			})
			if err != nil {
				return
			}
			mu.Lock()
			tokens = append(tokens, b.Appointment.Token)
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(tokens) == 0 {
		t.Fatal("no booking succeeded")
	}
	sort.Ints(tokens)
	for i, token := range tokens {
		if token != i+1 {
			t.Fatalf("tokens = %v, want exactly 1..%d", tokens, len(tokens))
		}
	}
}
