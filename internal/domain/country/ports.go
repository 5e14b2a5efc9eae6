package country

import (
	"context"

	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// CountryRepository stores whole Country aggregates. Save is a single atomic write.
type CountryRepository interface {
	FindByUserID(ctx context.Context, userID shared.UserID) (*Country, error)
	FindByID(ctx context.Context, id string, userID shared.UserID) (*Country, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, c *Country) error
	Save(ctx context.Context, c *Country) error
	Delete(ctx context.Context, id string, userID shared.UserID) error
}

// UserDirectory owns the account-side "has country" flag
type UserDirectory interface {
	SetHasCountry(ctx context.Context, userID shared.UserID, hasCountry bool) error
}
