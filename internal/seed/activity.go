package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sahatech/clinic-seed/internal/models"
	"github.com/sahatech/clinic-seed/internal/utils"
	"go.uber.org/zap"
)

// isoMillis matches the dashboard's ISO-8601 appointment times
const isoMillis = "2006-01-02T15:04:05.000Z"

// SeededAppointment is a generated appointment and, when billed, its transaction id
type SeededAppointment struct {
	ID            string
	TransactionID string
	At            time.Time
	models.Appointment
}

// SeededTransaction is a generated payment with the id it was written under
type SeededTransaction struct {
	ID            string
	AppointmentID string
	models.Transaction
}

// seedActivity writes appointments, their transactions and the inbox messages in one atomic batch
func (s *Seeder) seedActivity(ctx context.Context, dir *directory, userIDs map[models.UserRole]string, report *Report) error {
	batch := s.store.NewBatch()

	s.log.Info("Seeding appointments and transactions", zap.Int("count", s.opts.Appointments))
	if s.opts.Appointments > 0 && (len(dir.doctors) == 0 || len(dir.patients) == 0) {
		return ErrEmptyDirectory
	}

	end := s.opts.Now()
	for i := 0; i < s.opts.Appointments; i++ {
		patient := dir.patients[s.opts.Rand.Intn(len(dir.patients))]
		doctor := dir.doctors[s.opts.Rand.Intn(len(dir.doctors))]
		status := models.AppointmentStatuses[s.opts.Rand.Intn(len(models.AppointmentStatuses))]
		at := s.randomTime(s.opts.WindowStart, end)

		appt := SeededAppointment{
			At: at,
			Appointment: models.Appointment{
				PatientID:       patient.ID,
				PatientName:     patient.Name,
				DoctorID:        doctor.ID,
				DoctorName:      utils.DoctorTitle(doctor.Name),
				DoctorSpecialty: doctor.Specialty,
				DateTime:        at.UTC().Format(isoMillis),
				Status:          status,
			},
		}
		appt.ID = batch.Create(models.CollectionAppointments, appt.Appointment)

		if status == models.StatusCompleted && doctor.HasServicePrice() {
			tx := SeededTransaction{
				AppointmentID: appt.ID,
				Transaction: models.Transaction{
					PatientID:   patient.ID,
					PatientName: patient.Name,
					Date:        at,
					Amount:      *doctor.ServicePrice,
					Status:      models.TransactionSuccess,
					Service:     doctor.Specialty + " Consultation",
				},
			}
			tx.ID = batch.Create(models.CollectionTransactions, tx.Transaction)
			appt.TransactionID = tx.ID
			report.Transactions = append(report.Transactions, tx)
		}
		report.Appointments = append(report.Appointments, appt)
	}

	s.log.Info("Seeding inbox messages")
	adminID := userIDs[models.RoleAdmin]
	receptionistID := userIDs[models.RoleReceptionist]
	if adminID != "" && receptionistID != "" {
		welcome := s.data.Welcome
		welcome.RecipientID = adminID
		report.InboxMessageIDs = append(report.InboxMessageIDs,
			batch.Create(models.CollectionInboxMessages, welcome))

		note := s.data.Note
		note.FromID = userIDs[models.RoleDoctor]
		note.RecipientID = receptionistID
		report.InboxMessageIDs = append(report.InboxMessageIDs,
			batch.Create(models.CollectionInboxMessages, note))
	} else {
		s.log.Info("Skipping inbox messages, admin or receptionist missing")
	}

	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit appointments, transactions and inbox messages: %w", err)
	}
	s.log.Info("Appointments, transactions and inbox messages committed",
		zap.Int("appointments", len(report.Appointments)),
		zap.Int("transactions", len(report.Transactions)),
		zap.Int("inbox_messages", len(report.InboxMessageIDs)))

	return nil
}

// randomTime picks a uniform instant in [start, end). An empty window yields start.
func (s *Seeder) randomTime(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(s.opts.Rand.Int63n(int64(span))))
}
