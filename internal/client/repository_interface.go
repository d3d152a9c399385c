package client

import "context"

type Repository interface {
	FindByID(ctx context.Context, id int) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	UpdateAdmin(ctx context.Context, id int, upd AdminUpdate) (*Client, error)
}
