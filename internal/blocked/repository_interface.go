package blocked

import "context"

type Repository interface {
	Create(ctx context.Context, slot NewSlot) (*BlockedSlot, error)
	Exists(ctx context.Context, date, time string) (bool, error)
	BulkCreate(ctx context.Context, slots []NewSlot) (int, error)
	Delete(ctx context.Context, id int) error
	DeleteByDate(ctx context.Context, date string) (int64, error)
	List(ctx context.Context) ([]BlockedSlot, error)
	ListByDate(ctx context.Context, date string) ([]BlockedSlot, error)
	Count(ctx context.Context) (int, error)
}
