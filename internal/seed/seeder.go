// Package seed loads the clinic fixtures into the auth service and document store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sahatech/clinic-seed/internal/fixtures"
	"github.com/sahatech/clinic-seed/internal/models"
	"go.uber.org/zap"
)

// DefaultAppointments is how many appointments a run generates
const DefaultAppointments = 15

// DefaultWindowStart is the earliest appointment time, 1 June 2024 local time
var DefaultWindowStart = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)

// ErrEmptyDirectory is returned when appointments are requested but no doctors or patients were seeded
var ErrEmptyDirectory = errors.New("no doctors or patients to book appointments with")

// RunRecorder stores a summary of a finished run
type RunRecorder interface {
	RecordRun(ctx context.Context, run models.SeedRun) error
}

// Options tune a seeding run
type Options struct {
	Appointments int
	// SkipIfSeeded leaves the directory and activity batches out when doctors already exist
	SkipIfSeeded bool
	WindowStart  time.Time
	Rand         *rand.Rand
	Now          func() time.Time
	Recorder     RunRecorder
}

// Fixtures is the literal data a run writes
type Fixtures struct {
	Users    []models.UserAccount
	Doctors  []models.Doctor
	Patients []models.Patient
	Welcome  models.InboxMessage
	Note     models.InboxMessage
}

// DefaultFixtures returns the clinic's standard sample data
func DefaultFixtures() Fixtures {
	return Fixtures{
		Users:    fixtures.Users(),
		Doctors:  fixtures.Doctors(),
		Patients: fixtures.Patients(),
		Welcome:  fixtures.WelcomeMessage(),
		Note:     fixtures.DoctorNoteMessage(),
	}
}

// Seeder runs the fixture load against injected backends
type Seeder struct {
	accounts AccountService
	store    DocumentStore
	data     Fixtures
	opts     Options
	log      *zap.Logger
	runID    string
}

// New creates a seeder. An unset WindowStart, Rand or Now falls back to the defaults.
func New(accounts AccountService, store DocumentStore, data Fixtures, opts Options, log *zap.Logger) *Seeder {
	if opts.Appointments < 0 {
		opts.Appointments = 0
	}
	if opts.WindowStart.IsZero() {
		opts.WindowStart = DefaultWindowStart
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}

	runID := uuid.New().String()
	return &Seeder{
		accounts: accounts,
		store:    store,
		data:     data,
		opts:     opts,
		log:      log.With(zap.String("run_id", runID)),
		runID:    runID,
	}
}

// RunID identifies this seeder's run in logs and the run summary
func (s *Seeder) RunID() string {
	return s.runID
}

// Run executes every seeding step in order.
// User account failures are logged and skipped; any other failure aborts the run.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	s.log.Info("Starting database seeding")
	report := newReport(s.runID)

	s.log.Info("Seeding users")
	userIDs, err := s.seedUsers(ctx)
	if err != nil {
		return report, err
	}
	report.UserIDs = userIDs

	linked, err := s.linkContacts(ctx, userIDs)
	if err != nil {
		return report, err
	}
	report.ContactsLinked = linked

	if s.opts.SkipIfSeeded {
		existing, err := s.store.Count(ctx, models.CollectionDoctors)
		if err != nil {
			return report, fmt.Errorf("check existing doctors: %w", err)
		}
		if existing > 0 {
			s.log.Info("Doctors already seeded, skipping fixture batches", zap.Int("count", existing))
			report.Skipped = true
			s.record(ctx, report)
			return report, nil
		}
	}

	dir, err := s.seedDirectory(ctx)
	if err != nil {
		return report, err
	}
	report.Doctors = dir.doctors
	report.Patients = dir.patients

	if err := s.seedActivity(ctx, dir, userIDs, report); err != nil {
		return report, err
	}

	s.log.Info("Database seeding completed successfully")
	s.record(ctx, report)
	return report, nil
}

func (s *Seeder) record(ctx context.Context, report *Report) {
	if s.opts.Recorder == nil {
		return
	}
	run := report.Summary(s.opts.Now())
	if err := s.opts.Recorder.RecordRun(ctx, run); err != nil {
		s.log.Warn("Failed to record seed run", zap.Error(err))
	}
}
