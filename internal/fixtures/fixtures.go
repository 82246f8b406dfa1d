// Package fixtures holds the sample records loaded into a fresh clinic project.
package fixtures

import "github.com/sahatech/clinic-seed/internal/models"

const doctorImageBase = "https://placehold.co/100x100.png?text="

const defaultPassword = "123456"

// Users returns the staff accounts, one per dashboard role
func Users() []models.UserAccount {
	return []models.UserAccount{
		{Email: "abdlelah2013@gmail.com", Password: defaultPassword, Name: "عبدالإله القدسي", Role: models.RoleAdmin},
		{Email: "receptionist@sahatech.com", Password: defaultPassword, Name: "فاطمة الزهراء", Role: models.RoleReceptionist},
		{Email: "doctor@sahatech.com", Password: defaultPassword, Name: "أحمد ياسين", Role: models.RoleDoctor},
	}
}

// Doctors returns the clinic directory
func Doctors() []models.Doctor {
	return []models.Doctor{
		{
			Name:             "علي الأحمد",
			Specialty:        "أمراض القلب",
			Image:            doctorImageBase + "A",
			DataAIHint:       "doctor portrait",
			NextAvailable:    "غداً، 10:00 ص",
			IsAvailableToday: true,
			ServicePrice:     price(7000),
			FreeReturnDays:   10,
			AvailableDays:    []string{"الأحد", "الثلاثاء", "الخميس"},
			Availability: []models.AvailabilityDay{
				{Date: "2024-07-28", Slots: []string{"10:00", "10:30", "11:00", "14:00", "14:30"}},
				{Date: "2024-07-30", Slots: []string{"10:00", "10:30", "11:00", "14:00", "14:30"}},
			},
		},
		{
			Name:             "سارة محمود",
			Specialty:        "الأمراض الجلدية",
			Image:            doctorImageBase + "S",
			DataAIHint:       "doctor portrait",
			NextAvailable:    "اليوم، 4:00 م",
			IsAvailableToday: true,
			ServicePrice:     price(5000),
			FreeReturnDays:   14,
			AvailableDays:    []string{"السبت", "الاثنين", "الأربعاء"},
			Availability: []models.AvailabilityDay{
				{Date: "2024-07-27", Slots: []string{"16:00", "16:30", "17:00"}},
				{Date: "2024-07-29", Slots: []string{"16:00", "16:30", "17:00"}},
			},
		},
		{
			Name:             "خالد عبد الله",
			Specialty:        "طب الأطفال",
			Image:            doctorImageBase + "K",
			DataAIHint:       "doctor portrait",
			NextAvailable:    "بعد 3 أيام",
			IsAvailableToday: false,
			ServicePrice:     price(4000),
			FreeReturnDays:   7,
			AvailableDays:    []string{"السبت", "الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس"},
			Availability: []models.AvailabilityDay{
				{Date: "2024-07-31", Slots: []string{"09:00", "09:30", "10:00", "11:00"}},
			},
		},
	}
}

// Patients returns the patient records. Avatars are derived at seed time.
func Patients() []models.Patient {
	return []models.Patient{
		{Name: "محمد قائد", DOB: "1985-05-20", Gender: "ذكر", Phone: "777123456", Address: "صنعاء، شارع حده"},
		{Name: "نورة صالح", DOB: "1992-11-10", Gender: "أنثى", Phone: "777234567", Address: "صنعاء، شارع الزبيري"},
		{Name: "أحمد عبدالكريم", DOB: "2018-01-15", Gender: "ذكر", Phone: "777345678", Address: "صنعاء، شارع تعز"},
		{Name: "فاطمة علي", DOB: "1970-03-30", Gender: "أنثى", Phone: "777456789", Address: "صنعاء، الدائري"},
	}
}

// System sender shown on automated inbox messages
const (
	SystemSenderName = "النظام"
	SystemSenderID   = "system"
)

// WelcomeMessage is sent by the system to the admin.
// Timestamp and RecipientID are filled in by the seeder.
func WelcomeMessage() models.InboxMessage {
	return models.InboxMessage{
		From:    SystemSenderName,
		FromID:  SystemSenderID,
		Title:   "مرحباً بك في صحة تك!",
		Content: "مرحباً بك في نظام صحة تك. لوحة التحكم هذه مصممة لمساعدتك في إدارة عيادتك بكفاءة. تفقد الأقسام المختلفة للبدء.",
		Read:    false,
	}
}

// DoctorNoteMessage is a follow-up request from a doctor to the front desk.
// FromID and RecipientID are filled in by the seeder.
func DoctorNoteMessage() models.InboxMessage {
	return models.InboxMessage{
		From:    "د. علي الأحمد",
		Title:   "استفسار بخصوص المريض محمد قائد",
		Content: "يرجى مراجعة نتائج التحاليل الأخيرة للمريض محمد قائد وتحديد موعد للمتابعة في أقرب وقت ممكن.",
		Read:    true,
	}
}

func price(v int) *int {
	return &v
}
