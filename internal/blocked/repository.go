package blocked

import (
	"context"
	"errors"

	"studioslot/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrBlockedSlotNotFound = errors.New("blocked slot not found")
	ErrSlotAlreadyBlocked  = errors.New("time slot already blocked")
)

const slotColumns = `id, to_char(block_date, 'YYYY-MM-DD') AS date, block_time AS time,
	COALESCE(reason, '') AS reason, created_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, slot NewSlot) (*BlockedSlot, error) {
	query := `
		INSERT INTO blocked_slots (block_date, block_time, reason)
		VALUES ($1, $2, $3)
		RETURNING ` + slotColumns

	var b BlockedSlot
	if err := r.db.GetContext(ctx, &b, query, slot.Date, slot.Time, slot.Reason); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSlotAlreadyBlocked
		}
		return nil, err
	}

	return &b, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, date, time string) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM blocked_slots WHERE block_date = $1 AND block_time = $2)`,
		date, time)
}

// BulkCreate inserts slots in one transaction, skipping ones already blocked,
// and returns how many rows were added.
func (r *PostgresRepository) BulkCreate(ctx context.Context, slots []NewSlot) (int, error) {
	query := `
		INSERT INTO blocked_slots (block_date, block_time, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (block_date, block_time) DO NOTHING
	`

	inserted := 0
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, query)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range slots {
			res, err := stmt.ExecContext(ctx, s.Date, s.Time, s.Reason)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blocked_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBlockedSlotNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByDate(ctx context.Context, date string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blocked_slots WHERE block_date = $1`, date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) List(ctx context.Context) ([]BlockedSlot, error) {
	query := `SELECT ` + slotColumns + `
		FROM blocked_slots
		ORDER BY block_date, id
	`

	slots := []BlockedSlot{}
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *PostgresRepository) ListByDate(ctx context.Context, date string) ([]BlockedSlot, error) {
	query := `SELECT ` + slotColumns + `
		FROM blocked_slots
		WHERE block_date = $1
		ORDER BY id
	`

	slots := []BlockedSlot{}
	if err := r.db.SelectContext(ctx, &slots, query, date); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM blocked_slots`); err != nil {
		return 0, err
	}
	return n, nil
}
