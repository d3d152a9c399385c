package booking

import (
	"context"

	"studioslot/internal/client"
)

type Repository interface {
	Create(ctx context.Context, nb NewBooking) (*Booking, error)
	CreateForClient(ctx context.Context, contact client.Contact, nb NewBooking) (*ClientBooking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	List(ctx context.Context, status string) ([]Booking, error)
	ListConfirmed(ctx context.Context) ([]Booking, error)
	ListConfirmedByDate(ctx context.Context, date string) ([]Booking, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Booking, error)
	Confirm(ctx context.Context, id int, amount float64) (*Booking, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context) (*Stats, error)
}
