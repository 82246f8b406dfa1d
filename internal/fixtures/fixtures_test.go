package fixtures

import (
	"testing"

	"github.com/sahatech/clinic-seed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCoverEveryRole(t *testing.T) {
	roles := map[models.UserRole]string{}
	for _, u := range Users() {
		require.NotEmpty(t, u.Email)
		require.GreaterOrEqual(t, len(u.Password), 6, "firebase rejects passwords shorter than 6 characters")
		roles[u.Role] = u.Email
	}

	assert.Equal(t, map[models.UserRole]string{
		models.RoleAdmin:        "abdlelah2013@gmail.com",
		models.RoleReceptionist: "receptionist@sahatech.com",
		models.RoleDoctor:       "doctor@sahatech.com",
	}, roles)
}

func TestDoctorsArePriced(t *testing.T) {
	doctors := Doctors()
	require.Len(t, doctors, 3)

	prices := map[string]int{}
	for _, d := range doctors {
		require.True(t, d.HasServicePrice(), d.Name)
		prices[d.Name] = *d.ServicePrice
		assert.NotEmpty(t, d.Availability, d.Name)
	}
	assert.Equal(t, 7000, prices["علي الأحمد"])
	assert.Equal(t, 5000, prices["سارة محمود"])
	assert.Equal(t, 4000, prices["خالد عبد الله"])
}

func TestFixturesAreFreshCopies(t *testing.T) {
	a := Doctors()
	*a[0].ServicePrice = 1
	a[0].AvailableDays[0] = "changed"

	b := Doctors()
	assert.Equal(t, 7000, *b[0].ServicePrice)
	assert.Equal(t, "الأحد", b[0].AvailableDays[0])
}

func TestPatientNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Patients() {
		assert.False(t, seen[p.Name], p.Name)
		seen[p.Name] = true
		assert.Empty(t, p.AvatarURL)
	}
	assert.Len(t, seen, 4)
}

func TestInboxMessages(t *testing.T) {
	welcome := WelcomeMessage()
	assert.Equal(t, SystemSenderID, welcome.FromID)
	assert.False(t, welcome.Read)

	note := DoctorNoteMessage()
	assert.Empty(t, note.FromID)
	assert.True(t, note.Read)
}
