package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeandown/listings-api/internal/core/domain"
	"github.com/homeandown/listings-api/internal/core/ports"
)

// PropertyService implements the listing use cases.
type PropertyService struct {
	properties ports.PropertyRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewPropertyService(properties ports.PropertyRepository, users ports.UserRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{properties: properties, users: users, logger: logger}
}

// Create stores a new active listing owned by the authenticated caller.
func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (string, error) {
	images := input.Images
	if images == nil {
		images = []string{}
	}
	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	p := &domain.Property{
		Title:            input.Title,
		Description:      input.Description,
		PropertyType:     input.PropertyType,
		ListingType:      domain.ListingType(input.ListingType),
		AreaSqft:         input.AreaSqft,
		Price:            input.Price,
		MonthlyRent:      input.MonthlyRent,
		SecurityDeposit:  input.SecurityDeposit,
		Bedrooms:         input.Bedrooms,
		Bathrooms:        input.Bathrooms,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		ZipCode:          input.ZipCode,
		Images:           images,
		Amenities:        amenities,
		Status:           domain.PropertyStatusActive,
		OwnerID:          input.OwnerID,
		AvailableFrom:    input.AvailableFrom,
		FurnishingStatus: input.FurnishingStatus,
		Balcony:          input.Balcony,
		Possession:       input.Possession,
		CreatedAt:        time.Now().UTC(),
	}

	id, err := s.properties.Insert(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return "", err
	}

	s.logger.Info().Str("property_id", id).Str("owner_id", input.OwnerID).
		Str("listing_type", input.ListingType).Msg("property created")
	return id, nil
}

// Get returns one property with its owner contact block resolved best-effort:
// a missing or dangling owner reference yields Owner == nil, not an error.
func (s *PropertyService) Get(ctx context.Context, id string) (*ports.PropertyDetail, error) {
	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.PropertyDetail{Property: p}
	if p.OwnerID != "" {
		owner, err := s.users.FindByID(ctx, p.OwnerID)
		if err == nil {
			detail.Owner = &domain.Owner{
				Name:  owner.FullName(),
				Email: owner.Email,
				Phone: owner.PhoneNumber,
			}
		} else {
			s.logger.Debug().Str("property_id", p.ID).Str("owner_id", p.OwnerID).Msg("owner not resolved")
		}
	}
	return detail, nil
}

// List applies the filter specification to the active-listings query.
func (s *PropertyService) List(ctx context.Context, filter ports.ListPropertiesFilter) ([]*domain.Property, error) {
	return s.properties.List(ctx, filter)
}
