package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// OwnerIDKey is the context key for the acting user's owner ID
	OwnerIDKey ctxKey = "owner_id"
	// SkipOwnerScopeKey is the context key for skipping owner scoping (super admin)
	SkipOwnerScopeKey ctxKey = "skip_owner_scope"
)

// WithOwner adds the acting owner's ID to the context
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, OwnerIDKey, ownerID)
}

// WithSkipOwnerScope adds the skip-owner-scope flag to the context (super admins)
func WithSkipOwnerScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipOwnerScopeKey, skip)
}

// GetOwnerID extracts the acting owner's ID from the context
func GetOwnerID(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(OwnerIDKey).(uuid.UUID)
	return ownerID, ok
}

// scopedOwner returns the owner ID queries must be limited to, or false when
// the request is unscoped (super admin)
func scopedOwner(ctx context.Context) (uuid.UUID, bool) {
	if skip, ok := ctx.Value(SkipOwnerScopeKey).(bool); ok && skip {
		return uuid.Nil, false
	}
	return GetOwnerID(ctx)
}

// ShopOwnerScope filters shops to those the acting owner holds solely.
// Super admins see all shops.
func ShopOwnerScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		ownerID, ok := scopedOwner(ctx)
		if !ok {
			return db
		}
		return db.Where("owner_id = ?", ownerID)
	}
}

// LeaseOwnerScope filters leases to those on the acting owner's shops.
func LeaseOwnerScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		ownerID, ok := scopedOwner(ctx)
		if !ok {
			return db
		}
		shopIDs := db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.Shop{}).Select("id").Where("owner_id = ?", ownerID)
		return db.Where("shop_id IN (?)", shopIDs)
	}
}

// ExpenseOwnerScope filters expenses to the acting owner's own plus the
// common ones shared across the estate.
func ExpenseOwnerScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		ownerID, ok := scopedOwner(ctx)
		if !ok {
			return db
		}
		return db.Where("owner_id = ? OR allocation = ?", ownerID, enum.ExpenseAllocationCommon)
	}
}

// PaymentOwnerScope filters payments to leases on the acting owner's shops.
func PaymentOwnerScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		ownerID, ok := scopedOwner(ctx)
		if !ok {
			return db
		}
		shopIDs := db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.Shop{}).Select("id").Where("owner_id = ?", ownerID)
		leaseIDs := db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.Lease{}).Select("id").Where("shop_id IN (?)", shopIDs)
		return db.Where("lease_id IN (?)", leaseIDs)
	}
}
