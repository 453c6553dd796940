package ports

import (
	"context"

	"github.com/homeandown/listings-api/internal/core/domain"
)

// CreatePropertyInput carries all data needed to create a listing. OwnerID
// is always the authenticated caller, never client-supplied.
type CreatePropertyInput struct {
	Title            string
	Description      string
	PropertyType     string
	ListingType      string
	AreaSqft         float64
	Address          string
	City             string
	State            string
	ZipCode          string
	Price            *float64
	MonthlyRent      *float64
	SecurityDeposit  *float64
	Bedrooms         int
	Bathrooms        int
	Latitude         *float64
	Longitude        *float64
	Images           []string
	Amenities        []string
	AvailableFrom    string
	FurnishingStatus string
	Balcony          *int
	Possession       string
	OwnerID          string
}

// PropertyDetail is the single-property view: the listing plus a best-effort
// owner contact block (nil when the owner cannot be resolved).
type PropertyDetail struct {
	Property *domain.Property
	Owner    *domain.Owner
}

// PropertyService defines the listing use cases.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (string, error)
	Get(ctx context.Context, id string) (*PropertyDetail, error)
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, error)
}
