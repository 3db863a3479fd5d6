package repository

import (
	"context"
	"errors"

	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/models"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	// List returns all admin accounts, newest first.
	List(ctx context.Context) ([]models.Admin, error)
	// GetByUID is a point lookup; ErrAdminNotFound when absent.
	GetByUID(ctx context.Context, uid string) (*models.Admin, error)
	// Create upserts the record keyed by uid and stamps createdAt.
	Create(ctx context.Context, in models.AdminCreate) (*models.Admin, error)
}
