package models

import "time"

// UserRole represents a staff member's role in the clinic dashboard
type UserRole string

const (
	RoleAdmin        UserRole = "admin"        // Clinic owner, full access
	RoleReceptionist UserRole = "receptionist" // Front desk
	RoleDoctor       UserRole = "doctor"       // Practitioner account
)

// StaffRoles lists the roles that are linked to each other as contacts
var StaffRoles = []UserRole{RoleAdmin, RoleReceptionist, RoleDoctor}

// AppointmentStatus is the lifecycle label shown on the appointments board
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusWaiting   AppointmentStatus = "Waiting"
	StatusCompleted AppointmentStatus = "Completed"
	StatusFollowUp  AppointmentStatus = "Follow-up"
)

// AppointmentStatuses lists every status an appointment can be seeded with
var AppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusWaiting,
	StatusCompleted,
	StatusFollowUp,
}

// TransactionSuccess is the only status seeded transactions carry
const TransactionSuccess = "Success"

// Collection names used by the dashboard
const (
	CollectionUsers         = "users"
	CollectionDoctors       = "doctors"
	CollectionPatients      = "patients"
	CollectionAppointments  = "appointments"
	CollectionTransactions  = "transactions"
	CollectionInboxMessages = "inboxMessages"
)

// SeededCollections is every collection the seeder writes to
var SeededCollections = []string{
	CollectionUsers,
	CollectionDoctors,
	CollectionPatients,
	CollectionAppointments,
	CollectionTransactions,
	CollectionInboxMessages,
}

// UserAccount is a login to create in Firebase Auth plus its profile fields
type UserAccount struct {
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
}

// UserProfile represents a user document keyed by the auth uid
type UserProfile struct {
	Name      string          `json:"name" firestore:"name"`
	Email     string          `json:"email" firestore:"email"`
	Role      UserRole        `json:"role" firestore:"role"`
	Contacts  map[string]bool `json:"contacts,omitempty" firestore:"contacts,omitempty"`
	CreatedAt time.Time       `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// AvailabilityDay is one bookable date and its time slots
type AvailabilityDay struct {
	Date  string   `json:"date" firestore:"date"`
	Slots []string `json:"slots" firestore:"slots"`
}

// Doctor represents a practitioner listed in the clinic directory
type Doctor struct {
	Name             string            `json:"name" firestore:"name"`
	Specialty        string            `json:"specialty" firestore:"specialty"`
	Image            string            `json:"image" firestore:"image"`
	DataAIHint       string            `json:"data_ai_hint" firestore:"data_ai_hint"`
	NextAvailable    string            `json:"nextAvailable" firestore:"nextAvailable"`
	IsAvailableToday bool              `json:"isAvailableToday" firestore:"isAvailableToday"`
	ServicePrice     *int              `json:"servicePrice" firestore:"servicePrice"` // nil when the doctor has no fixed price
	FreeReturnDays   int               `json:"freeReturnDays" firestore:"freeReturnDays"`
	AvailableDays    []string          `json:"availableDays" firestore:"availableDays"`
	Availability     []AvailabilityDay `json:"availability" firestore:"availability"`
}

// HasServicePrice reports whether consultations with this doctor are billable
func (d Doctor) HasServicePrice() bool {
	return d.ServicePrice != nil && *d.ServicePrice != 0
}

// Patient represents a patient record
type Patient struct {
	Name      string    `json:"name" firestore:"name"`
	DOB       string    `json:"dob" firestore:"dob"`
	Gender    string    `json:"gender" firestore:"gender"`
	Phone     string    `json:"phone" firestore:"phone"`
	Address   string    `json:"address" firestore:"address"`
	AvatarURL string    `json:"avatarUrl" firestore:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// Appointment links a patient to a doctor at a point in time.
// Names and specialty are denormalized for the dashboard list views.
type Appointment struct {
	PatientID       string            `json:"patientId" firestore:"patientId"`
	PatientName     string            `json:"patientName" firestore:"patientName"`
	DoctorID        string            `json:"doctorId" firestore:"doctorId"`
	DoctorName      string            `json:"doctorName" firestore:"doctorName"`
	DoctorSpecialty string            `json:"doctorSpecialty" firestore:"doctorSpecialty"`
	DateTime        string            `json:"dateTime" firestore:"dateTime"` // ISO-8601, UTC
	Status          AppointmentStatus `json:"status" firestore:"status"`
}

// Transaction is a payment recorded for a completed appointment
type Transaction struct {
	PatientID   string    `json:"patientId" firestore:"patientId"`
	PatientName string    `json:"patientName" firestore:"patientName"`
	Date        time.Time `json:"date" firestore:"date"`
	Amount      int       `json:"amount" firestore:"amount"`
	Status      string    `json:"status" firestore:"status"`
	Service     string    `json:"service" firestore:"service"`
}

// InboxMessage is a dashboard notification addressed to one user
type InboxMessage struct {
	From        string    `json:"from" firestore:"from"`
	FromID      string    `json:"fromId" firestore:"fromId"`
	Title       string    `json:"title" firestore:"title"`
	Content     string    `json:"content" firestore:"content"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	Read        bool      `json:"read" firestore:"read"`
	RecipientID string    `json:"recipientId" firestore:"recipientId"`
}

// SeedRun summarises one seeding run, stored in the realtime database
type SeedRun struct {
	RunID         string `json:"runId"`
	Users         int    `json:"users"`
	Doctors       int    `json:"doctors"`
	Patients      int    `json:"patients"`
	Appointments  int    `json:"appointments"`
	Transactions  int    `json:"transactions"`
	InboxMessages int    `json:"inboxMessages"`
	Skipped       bool   `json:"skipped"`
	FinishedAt    string `json:"finishedAt"`
}
