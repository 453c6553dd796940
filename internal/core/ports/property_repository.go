package ports

import (
	"context"

	"github.com/homeandown/listings-api/internal/core/domain"
)

// ListPropertiesFilter is the explicit query specification for the public
// listing endpoint. Zero values (or nil pointers) mean "no predicate"; all
// supplied predicates combine with logical AND on top of status = active.
type ListPropertiesFilter struct {
	ListingType  string   // exact match
	City         string   // case-insensitive substring match
	PropertyType string   // exact match
	MinPrice     *float64 // price >= MinPrice
	MaxPrice     *float64 // price <= MaxPrice
	Bedrooms     *int     // exact match
	Bathrooms    *int     // exact match
}

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	// Insert stores a new property and returns its assigned ID.
	Insert(ctx context.Context, p *domain.Property) (string, error)
	// FindByID returns domain.ErrPropertyNotFound when no row matches;
	// a malformed ID is treated the same as a missing row.
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// List returns active properties matching filter, ordered by creation
	// time descending. An empty result is a valid, non-error outcome.
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, error)
}
