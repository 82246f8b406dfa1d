package seed

import (
	"context"
	"fmt"

	"github.com/sahatech/clinic-seed/internal/models"
	"github.com/sahatech/clinic-seed/internal/utils"
	"go.uber.org/zap"
)

// SeededDoctor is a doctor fixture with the id it was written under
type SeededDoctor struct {
	ID string
	models.Doctor
}

// SeededPatient is a patient fixture with the id it was written under
type SeededPatient struct {
	ID string
	models.Patient
}

// directory holds the inserted doctors and patients, keyed by fixture name.
// A repeated name keeps its first position but takes the later record.
type directory struct {
	doctors  []SeededDoctor
	patients []SeededPatient

	doctorIndex  map[string]int
	patientIndex map[string]int
}

func newDirectory() *directory {
	return &directory{
		doctorIndex:  make(map[string]int),
		patientIndex: make(map[string]int),
	}
}

func (d *directory) addDoctor(doc SeededDoctor) {
	if i, ok := d.doctorIndex[doc.Name]; ok {
		d.doctors[i] = doc
		return
	}
	d.doctorIndex[doc.Name] = len(d.doctors)
	d.doctors = append(d.doctors, doc)
}

func (d *directory) addPatient(p SeededPatient) {
	if i, ok := d.patientIndex[p.Name]; ok {
		d.patients[i] = p
		return
	}
	d.patientIndex[p.Name] = len(d.patients)
	d.patients = append(d.patients, p)
}

// seedDirectory writes every doctor and patient in one atomic batch
func (s *Seeder) seedDirectory(ctx context.Context) (*directory, error) {
	dir := newDirectory()
	batch := s.store.NewBatch()

	s.log.Info("Seeding doctors", zap.Int("count", len(s.data.Doctors)))
	for _, doctor := range s.data.Doctors {
		id := batch.Create(models.CollectionDoctors, doctor)
		dir.addDoctor(SeededDoctor{ID: id, Doctor: doctor})
	}

	s.log.Info("Seeding patients", zap.Int("count", len(s.data.Patients)))
	for _, patient := range s.data.Patients {
		patient.AvatarURL = utils.PatientAvatarURL(patient.Name)
		id := batch.Create(models.CollectionPatients, patient)
		dir.addPatient(SeededPatient{ID: id, Patient: patient})
	}

	if err := batch.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit doctors and patients: %w", err)
	}
	s.log.Info("Doctors and patients committed", zap.Int("count", batch.Len()))

	return dir, nil
}
