package email

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// BookingDetails is what a notification says about a booking.
type BookingDetails struct {
	ID          int
	ServiceType string
	Name        string
	Email       string
	Phone       string
	Date        string
	Time        string
	Duration    string
	ProjectType string
	Message     string
}

func (d BookingDetails) when() string {
	when := d.Date
	if t, err := time.Parse("2006-01-02", d.Date); err == nil {
		when = t.Format("Monday, Jan 2, 2006")
	}
	if d.Time != "" {
		when += " at " + d.Time
	}
	return when
}

func (d BookingDetails) summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Service: %s\n", d.ServiceType)
	fmt.Fprintf(&b, "When: %s\n", d.when())
	if d.Duration != "" {
		fmt.Fprintf(&b, "Duration: %s hours\n", d.Duration)
	}
	if d.ProjectType != "" {
		fmt.Fprintf(&b, "Project: %s\n", d.ProjectType)
	}
	return b.String()
}

// SendStudioNotification tells the studio about a new booking or request.
func (s *Service) SendStudioNotification(ctx context.Context, d BookingDetails) error {
	subject := fmt.Sprintf("New %s request from %s", d.ServiceType, d.Name)
	body := fmt.Sprintf(`New booking request #%d

Name: %s
Email: %s
Phone: %s
%s
Message:
%s
`, d.ID, d.Name, d.Email, d.Phone, d.summary(), d.Message)

	return s.enqueue(ctx, EmailJob{
		Type:    "studio_notification",
		To:      s.studioEmail,
		Name:    s.studioName,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
}

func (s *Service) SendBookingConfirmation(ctx context.Context, d BookingDetails) error {
	subject := "Booking Confirmed - " + s.studioName
	body := fmt.Sprintf(`Hi %s,

Your session is confirmed!

%s
See you at the studio!

- %s`, d.Name, d.summary(), s.studioName)

	return s.enqueue(ctx, EmailJob{
		Type:    "booking_confirmation",
		To:      d.Email,
		Name:    d.Name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
}

func (s *Service) SendCancellation(ctx context.Context, d BookingDetails) error {
	subject := "Booking Cancelled - " + s.studioName
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled:

%s
Reply to this email if you would like to pick another time.

- %s`, d.Name, d.summary(), s.studioName)

	return s.enqueue(ctx, EmailJob{
		Type:    "booking_cancellation",
		To:      d.Email,
		Name:    d.Name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
}
