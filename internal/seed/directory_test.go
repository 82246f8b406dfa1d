package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/sahatech/clinic-seed/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDirectoryRepeatedNameKeepsPositionTakesLatest(t *testing.T) {
	dir := newDirectory()
	dir.addDoctor(SeededDoctor{ID: "d1", Doctor: models.Doctor{Name: "a"}})
	dir.addDoctor(SeededDoctor{ID: "d2", Doctor: models.Doctor{Name: "b"}})
	dir.addDoctor(SeededDoctor{ID: "d3", Doctor: models.Doctor{Name: "a"}})

	assert.Len(t, dir.doctors, 2)
	assert.Equal(t, "d3", dir.doctors[0].ID)
	assert.Equal(t, "d2", dir.doctors[1].ID)

	dir.addPatient(SeededPatient{ID: "p1", Patient: models.Patient{Name: "x"}})
	dir.addPatient(SeededPatient{ID: "p2", Patient: models.Patient{Name: "x"}})
	assert.Len(t, dir.patients, 1)
	assert.Equal(t, "p2", dir.patients[0].ID)
}

func TestRandomTimeStaysInWindow(t *testing.T) {
	s := New(nil, nil, Fixtures{}, Options{Rand: rand.New(rand.NewSource(3))}, zap.NewNop())
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	for i := 0; i < 200; i++ {
		at := s.randomTime(start, end)
		assert.False(t, at.Before(start))
		assert.True(t, at.Before(end))
	}

	assert.Equal(t, start, s.randomTime(start, start))
	assert.Equal(t, start, s.randomTime(start, start.Add(-time.Hour)))
}
