package seed

import (
	"time"

	"github.com/sahatech/clinic-seed/internal/models"
)

// Report lists everything a run resolved and wrote
type Report struct {
	RunID           string
	UserIDs         map[models.UserRole]string
	ContactsLinked  bool
	Skipped         bool
	Doctors         []SeededDoctor
	Patients        []SeededPatient
	Appointments    []SeededAppointment
	Transactions    []SeededTransaction
	InboxMessageIDs []string
}

func newReport(runID string) *Report {
	return &Report{
		RunID:   runID,
		UserIDs: make(map[models.UserRole]string),
	}
}

// Summary condenses the report into the record kept in the realtime database
func (r *Report) Summary(finishedAt time.Time) models.SeedRun {
	return models.SeedRun{
		RunID:         r.RunID,
		Users:         len(r.UserIDs),
		Doctors:       len(r.Doctors),
		Patients:      len(r.Patients),
		Appointments:  len(r.Appointments),
		Transactions:  len(r.Transactions),
		InboxMessages: len(r.InboxMessageIDs),
		Skipped:       r.Skipped,
		FinishedAt:    finishedAt.UTC().Format(time.RFC3339),
	}
}
