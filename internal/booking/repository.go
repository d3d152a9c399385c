package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studioslot/internal/client"
	"studioslot/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

const bookingColumns = `id, service_type, to_char(booking_date, 'YYYY-MM-DD') AS date,
	booking_time AS time, COALESCE(duration, '') AS duration, name, email,
	COALESCE(phone, '') AS phone, COALESCE(project_type, '') AS project_type,
	COALESCE(message, '') AS message, status, client_id, requires_verification,
	verification_completed, payment_status, payment_amount, created_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, nb NewBooking) (*Booking, error) {
	return insertBooking(ctx, r.db, nb)
}

// CreateForClient upserts the profile for contact and inserts nb for it in
// one transaction.
func (r *PostgresRepository) CreateForClient(ctx context.Context, contact client.Contact, nb NewBooking) (*ClientBooking, error) {
	var out ClientBooking
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		cl, created, err := client.Upsert(ctx, tx, contact)
		if err != nil {
			return fmt.Errorf("upsert client: %w", err)
		}

		nb.ClientID = &cl.ID
		nb.RequiresVerification = cl.NeedsVerification()
		b, err := insertBooking(ctx, tx, nb)
		if err != nil {
			return err
		}

		out = ClientBooking{Booking: b, Client: cl, NewClient: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func insertBooking(ctx context.Context, q sqlx.QueryerContext, nb NewBooking) (*Booking, error) {
	query := `
		INSERT INTO bookings (service_type, booking_date, booking_time, duration, name, email, phone,
			project_type, message, status, client_id, requires_verification, verification_completed)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13)
		RETURNING ` + bookingColumns

	var b Booking
	err := sqlx.GetContext(ctx, q, &b, query,
		nb.ServiceType, nb.Date, nb.Time, nb.Duration, nb.Name, nb.Email, nb.Phone,
		nb.ProjectType, nb.Message, nb.Status, nb.ClientID, nb.RequiresVerification, !nb.RequiresVerification,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

// List returns bookings newest first, optionally filtered by status.
func (r *PostgresRepository) List(ctx context.Context, status string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC
	`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, status); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *PostgresRepository) ListConfirmed(ctx context.Context) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'confirmed'
		ORDER BY booking_date, id
	`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *PostgresRepository) ListConfirmedByDate(ctx context.Context, date string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_date = $1 AND status = 'confirmed'
		ORDER BY id
	`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, date); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, status string) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE id = $1
		RETURNING ` + bookingColumns

	var b Booking
	if err := r.db.GetContext(ctx, &b, query, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

// Confirm marks the booking confirmed. Only the first confirmation counts
// amount against the client and records it as the payment due; both happen
// in the same transaction as the status change.
func (r *PostgresRepository) Confirm(ctx context.Context, id int, amount float64) (*Booking, error) {
	var b Booking
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var first bool
		var clientID *int
		err := tx.QueryRowxContext(ctx,
			`SELECT first_confirmed_at IS NULL, client_id FROM bookings WHERE id = $1 FOR UPDATE`,
			id,
		).Scan(&first, &clientID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}
			return err
		}

		if first && clientID != nil {
			if err := client.RecordBooking(ctx, tx, *clientID, amount); err != nil {
				return fmt.Errorf("record client booking: %w", err)
			}
		}

		query := `
			UPDATE bookings
			SET status = 'confirmed',
				payment_amount = CASE WHEN first_confirmed_at IS NULL AND $2::numeric > 0 THEN $2::numeric ELSE payment_amount END,
				first_confirmed_at = COALESCE(first_confirmed_at, NOW())
			WHERE id = $1
			RETURNING ` + bookingColumns
		return tx.GetContext(ctx, &b, query, id, amount)
	})
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *PostgresRepository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed
		FROM bookings
	`

	var st Stats
	if err := r.db.GetContext(ctx, &st, query); err != nil {
		return nil, err
	}

	return &st, nil
}
