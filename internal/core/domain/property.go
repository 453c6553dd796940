package domain

import (
	"errors"
	"time"
)

// ListingType distinguishes sale listings from rentals.
type ListingType string

const (
	ListingSale ListingType = "SALE"
	ListingRent ListingType = "RENT"
)

// PropertyStatusActive is the only status surfaced by the public listing
// endpoint. Other statuses (sold, withdrawn) are set by admin flows outside
// this service.
const PropertyStatusActive = "active"

var ErrPropertyNotFound = errors.New("property not found")

// Property is the core listing aggregate. Images and amenities are native
// ordered string sequences; the store keeps them as arrays, so no text
// serialization happens at any layer.
type Property struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	PropertyType     string      `json:"property_type"`
	ListingType      ListingType `json:"listing_type"`
	AreaSqft         float64     `json:"area_sqft"`
	Price            *float64    `json:"price"`
	MonthlyRent      *float64    `json:"monthly_rent"`
	SecurityDeposit  *float64    `json:"security_deposit"`
	Bedrooms         int         `json:"bedrooms"`
	Bathrooms        int         `json:"bathrooms"`
	Latitude         *float64    `json:"latitude"`
	Longitude        *float64    `json:"longitude"`
	Address          string      `json:"address"`
	City             string      `json:"city"`
	State            string      `json:"state"`
	ZipCode          string      `json:"zip_code"`
	Images           []string    `json:"images"`
	Amenities        []string    `json:"amenities"`
	Status           string      `json:"status"`
	OwnerID          string      `json:"owner_id"`
	AvailableFrom    string      `json:"available_from,omitempty"`
	FurnishingStatus string      `json:"furnishing_status,omitempty"`
	Balcony          *int        `json:"balcony,omitempty"`
	Possession       string      `json:"possession,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// Owner is the best-effort contact block embedded in single-property
// responses. Nil when the owner reference is absent or dangling.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
