package client

import "time"

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationFailed   = "failed"
)

type Client struct {
	ID                 int        `db:"id" json:"id"`
	Email              string     `db:"email" json:"email"`
	Name               string     `db:"name" json:"name"`
	Phone              string     `db:"phone" json:"phone"`
	IsVerified         bool       `db:"is_verified" json:"is_verified"`
	VerificationStatus string     `db:"verification_status" json:"verification_status"`
	FirstBookingDate   *time.Time `db:"first_booking_date" json:"first_booking_date,omitempty"`
	TotalBookings      int        `db:"total_bookings" json:"total_bookings"`
	TotalSpent         float64    `db:"total_spent" json:"total_spent"`
	AdminNotes         string     `db:"admin_notes" json:"admin_notes"`
	IsFlagged          bool       `db:"is_flagged" json:"is_flagged"`
	FlagReason         string     `db:"flag_reason" json:"flag_reason"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// NeedsVerification reports whether the studio still has to check the
// client's ID before a session.
func (c *Client) NeedsVerification() bool {
	if c.IsVerified {
		return false
	}
	return c.VerificationStatus == VerificationPending || c.VerificationStatus == VerificationFailed
}

// Contact is the client data carried on a booking or request form.
type Contact struct {
	Name  string
	Email string
	Phone string
}

type UpdateClientRequest struct {
	AdminNotes         *string `json:"admin_notes"`
	IsFlagged          *bool   `json:"is_flagged"`
	FlagReason         *string `json:"flag_reason" binding:"omitempty,max=200"`
	VerificationStatus *string `json:"verification_status" binding:"omitempty,oneof=pending verified failed"`
}

// AdminUpdate is UpdateClientRequest with the derived verification flag.
type AdminUpdate struct {
	AdminNotes         *string
	IsFlagged          *bool
	FlagReason         *string
	VerificationStatus *string
	IsVerified         *bool
}
