package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"studioslot/internal/client"
	"studioslot/internal/email"
	"studioslot/internal/schedule"
)

const (
	StatusPending         = "pending"
	StatusConfirmed       = "confirmed"
	StatusCancelled       = "cancelled"
	StatusEngineerRequest = "engineer-request"
	StatusMixingRequest   = "mixing-request"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// RequestTime is the placeholder start time of engineer and mixing requests,
// which never occupy the calendar.
const RequestTime = "12:00 AM"

// MaxDurationHours caps a single booking at one calendar day.
const MaxDurationHours = 24

type Booking struct {
	ID                    int       `db:"id" json:"id"`
	ServiceType           string    `db:"service_type" json:"service_type" example:"studio-access"`
	Date                  string    `db:"date" json:"date" example:"2024-06-01"`
	Time                  string    `db:"time" json:"time" example:"2:00 PM"`
	Duration              string    `db:"duration" json:"duration" example:"4"`
	Name                  string    `db:"name" json:"name"`
	Email                 string    `db:"email" json:"email"`
	Phone                 string    `db:"phone" json:"phone"`
	ProjectType           string    `db:"project_type" json:"project_type"`
	Message               string    `db:"message" json:"message"`
	Status                string    `db:"status" json:"status" example:"pending"`
	ClientID              *int      `db:"client_id" json:"client_id"`
	RequiresVerification  bool      `db:"requires_verification" json:"requires_verification"`
	VerificationCompleted bool      `db:"verification_completed" json:"verification_completed"`
	PaymentStatus         string    `db:"payment_status" json:"payment_status" example:"unpaid"`
	PaymentAmount         *float64  `db:"payment_amount" json:"payment_amount"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
}

// IsServiceRequest reports whether b is an engineer or mixing request rather
// than a studio session.
func (b *Booking) IsServiceRequest() bool {
	return b.ServiceType == StatusEngineerRequest || b.ServiceType == StatusMixingRequest
}

// Occupancy is b as seen by the conflict checker. Service requests never
// hold a slot.
func (b *Booking) Occupancy() schedule.Occupancy {
	return schedule.Occupancy{
		Date:      b.Date,
		Time:      b.Time,
		Duration:  b.Duration,
		Confirmed: b.Status == StatusConfirmed && !b.IsServiceRequest(),
	}
}

func (b *Booking) Details() email.BookingDetails {
	return email.BookingDetails{
		ID:          b.ID,
		ServiceType: b.ServiceType,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Date:        b.Date,
		Time:        b.Time,
		Duration:    b.Duration,
		ProjectType: b.ProjectType,
		Message:     b.Message,
	}
}

// ClientBooking is a booking stored together with its client profile.
type ClientBooking struct {
	Booking   *Booking
	Client    *client.Client
	NewClient bool
}

func Occupancies(bookings []Booking) []schedule.Occupancy {
	out := make([]schedule.Occupancy, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookings[i].Occupancy())
	}
	return out
}

// Duration is a booking length in hours. Clients send it either as a JSON
// number or a string; an absent, null or empty value means unspecified.
type Duration string

func (d *Duration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Duration(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("duration must be a number of hours")
	}
	*d = Duration(n.String())
	return nil
}

// Hours validates d. Zero with ok means unspecified.
func (d Duration) Hours() (hours int, ok bool) {
	if d == "" {
		return 0, true
	}
	h, err := strconv.Atoi(string(d))
	if err != nil || h <= 0 || h > MaxDurationHours {
		return 0, false
	}
	return h, true
}

type CreateBookingRequest struct {
	ServiceType string   `json:"service_type" binding:"required,max=50" example:"studio-access"`
	Date        string   `json:"date" binding:"required,isodate" example:"2024-06-01"`
	Time        string   `json:"time" binding:"required,timelabel" example:"2:00 PM"`
	Duration    Duration `json:"duration" swaggertype:"string" example:"4"`
	Name        string   `json:"name" binding:"required,max=100" example:"Alice Smith"`
	Email       string   `json:"email" binding:"required,email,max=120" example:"alice@example.com"`
	Phone       string   `json:"phone" binding:"max=20" example:"555-0100"`
	ProjectType string   `json:"project_type" binding:"max=50" example:"album"`
	Message     string   `json:"message" example:"Vocal tracking for two songs"`
}

type CreateBookingResponse struct {
	Message              string   `json:"message" example:"Booking request submitted successfully"`
	Booking              *Booking `json:"booking"`
	RequiresVerification bool     `json:"requires_verification"`
	ClientID             int      `json:"client_id"`
	VerificationMessage  string   `json:"verification_message,omitempty" example:"ID verification required for first-time clients"`
}

// ServiceRequest is an engineer or mixing enquiry.
type ServiceRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=120"`
	Phone   string `json:"phone" binding:"max=20"`
	Message string `json:"message" binding:"required"`
}

type ServiceRequestResponse struct {
	Message string   `json:"message" example:"Engineer request submitted successfully"`
	Request *Booking `json:"request"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled" example:"confirmed"`
	Force  bool   `json:"force"`
}

type UpdateStatusResponse struct {
	Message string   `json:"message" example:"Booking confirmed successfully"`
	Booking *Booking `json:"booking"`
}

type Stats struct {
	Total     int `db:"total" json:"total"`
	Pending   int `db:"pending" json:"pending"`
	Confirmed int `db:"confirmed" json:"confirmed"`
	Blocked   int `db:"-" json:"blocked"`
}

// NewBooking is a row about to be inserted.
type NewBooking struct {
	ServiceType          string
	Date                 string
	Time                 string
	Duration             string
	Name                 string
	Email                string
	Phone                string
	ProjectType          string
	Message              string
	Status               string
	ClientID             *int
	RequiresVerification bool
}
