package client

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrClientNotFound = errors.New("client not found")

const clientColumns = `id, email, name, COALESCE(phone, '') AS phone, is_verified, verification_status,
	first_booking_date, total_bookings, total_spent, COALESCE(admin_notes, '') AS admin_notes,
	is_flagged, COALESCE(flag_reason, '') AS flag_reason, created_at, updated_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*Client, error) {
	query := `SELECT ` + clientColumns + `
		FROM clients
		WHERE id = $1
	`

	var c Client
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	return &c, nil
}

// Upsert creates the profile for contact.Email on first contact, otherwise
// refreshes its name and phone. It reports whether a profile was created.
func Upsert(ctx context.Context, q sqlx.QueryerContext, contact Contact) (*Client, bool, error) {
	query := `
		INSERT INTO clients (email, name, phone, verification_status)
		VALUES ($1, $2, NULLIF($3, ''), 'pending')
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
			phone = COALESCE(EXCLUDED.phone, clients.phone),
			updated_at = NOW()
		RETURNING ` + clientColumns + `, (xmax = 0) AS inserted`

	var row struct {
		Client
		Inserted bool `db:"inserted"`
	}
	if err := sqlx.GetContext(ctx, q, &row, query, contact.Email, contact.Name, contact.Phone); err != nil {
		return nil, false, err
	}

	return &row.Client, row.Inserted, nil
}

// RecordBooking counts one confirmed booking of amount against the client.
func RecordBooking(ctx context.Context, e sqlx.ExecerContext, id int, amount float64) error {
	query := `
		UPDATE clients
		SET total_bookings = total_bookings + 1,
			total_spent = total_spent + $2,
			first_booking_date = COALESCE(first_booking_date, NOW()),
			updated_at = NOW()
		WHERE id = $1
	`

	res, err := e.ExecContext(ctx, query, id, amount)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Client, error) {
	query := `SELECT ` + clientColumns + `
		FROM clients
		ORDER BY created_at DESC
	`

	clients := []Client{}
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *PostgresRepository) UpdateAdmin(ctx context.Context, id int, upd AdminUpdate) (*Client, error) {
	query := `
		UPDATE clients
		SET admin_notes = COALESCE($2, admin_notes),
			is_flagged = COALESCE($3, is_flagged),
			flag_reason = COALESCE($4, flag_reason),
			verification_status = COALESCE($5, verification_status),
			is_verified = COALESCE($6, is_verified),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + clientColumns

	var c Client
	err := r.db.GetContext(ctx, &c, query, id, upd.AdminNotes, upd.IsFlagged, upd.FlagReason, upd.VerificationStatus, upd.IsVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	return &c, nil
}
