package client

import (
	"context"

	"studioslot/internal/config"
)

type Service interface {
	// PriceFor is the amount due for a confirmed booking of hours.
	PriceFor(hours int) float64
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id int) (*Client, error)
	UpdateAdmin(ctx context.Context, id int, req UpdateClientRequest) (*Client, error)
}

type service struct {
	repo   Repository
	studio *config.Studio
}

func NewService(repo Repository, studio *config.Studio) Service {
	return &service{
		repo:   repo,
		studio: studio,
	}
}

func (s *service) PriceFor(hours int) float64 {
	return s.studio.PriceFor(hours)
}

func (s *service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int) (*Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateAdmin(ctx context.Context, id int, req UpdateClientRequest) (*Client, error) {
	upd := AdminUpdate{
		AdminNotes:         req.AdminNotes,
		IsFlagged:          req.IsFlagged,
		FlagReason:         req.FlagReason,
		VerificationStatus: req.VerificationStatus,
	}
	if req.VerificationStatus != nil {
		verified := *req.VerificationStatus == VerificationVerified
		upd.IsVerified = &verified
	}

	return s.repo.UpdateAdmin(ctx, id, upd)
}
