package repository

import (
	"context"

	"imf-gadget-api/internal/model"
)

// UserRepository persists user records. Get methods return (nil, nil)
// when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUserName(ctx context.Context, userName string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
}

// GadgetRepository persists gadget records.
type GadgetRepository interface {
	Create(ctx context.Context, gadget *model.Gadget) error
	GetByID(ctx context.Context, id string) (*model.Gadget, error)
	List(ctx context.Context, status *model.GadgetStatus) ([]model.Gadget, error)
	Save(ctx context.Context, gadget *model.Gadget) error
}
