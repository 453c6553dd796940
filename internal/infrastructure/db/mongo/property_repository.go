package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homeandown/listings-api/internal/core/domain"
	"github.com/homeandown/listings-api/internal/core/ports"
)

const collectionProperties = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

type mongoProperty struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Description      string             `bson:"description"`
	PropertyType     string             `bson:"property_type"`
	ListingType      string             `bson:"listing_type"`
	AreaSqft         float64            `bson:"area_sqft"`
	Price            *float64           `bson:"price,omitempty"`
	MonthlyRent      *float64           `bson:"monthly_rent,omitempty"`
	SecurityDeposit  *float64           `bson:"security_deposit,omitempty"`
	Bedrooms         int                `bson:"bedrooms"`
	Bathrooms        int                `bson:"bathrooms"`
	Latitude         *float64           `bson:"latitude,omitempty"`
	Longitude        *float64           `bson:"longitude,omitempty"`
	Address          string             `bson:"address"`
	City             string             `bson:"city"`
	State            string             `bson:"state"`
	ZipCode          string             `bson:"zip_code"`
	Images           []string           `bson:"images"`
	Amenities        []string           `bson:"amenities"`
	Status           string             `bson:"status"`
	OwnerID          string             `bson:"owner_id,omitempty"`
	AvailableFrom    string             `bson:"available_from,omitempty"`
	FurnishingStatus string             `bson:"furnishing_status,omitempty"`
	Balcony          *int               `bson:"balcony,omitempty"`
	Possession       string             `bson:"possession,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func fromDomain(p *domain.Property) mongoProperty {
	return mongoProperty{
		Title:            p.Title,
		Description:      p.Description,
		PropertyType:     p.PropertyType,
		ListingType:      string(p.ListingType),
		AreaSqft:         p.AreaSqft,
		Price:            p.Price,
		MonthlyRent:      p.MonthlyRent,
		SecurityDeposit:  p.SecurityDeposit,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		ZipCode:          p.ZipCode,
		Images:           p.Images,
		Amenities:        p.Amenities,
		Status:           p.Status,
		OwnerID:          p.OwnerID,
		AvailableFrom:    p.AvailableFrom,
		FurnishingStatus: p.FurnishingStatus,
		Balcony:          p.Balcony,
		Possession:       p.Possession,
		CreatedAt:        p.CreatedAt,
	}
}

func (m *mongoProperty) toDomain() *domain.Property {
	images := m.Images
	if images == nil {
		images = []string{}
	}
	amenities := m.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &domain.Property{
		ID:               m.ID.Hex(),
		Title:            m.Title,
		Description:      m.Description,
		PropertyType:     m.PropertyType,
		ListingType:      domain.ListingType(m.ListingType),
		AreaSqft:         m.AreaSqft,
		Price:            m.Price,
		MonthlyRent:      m.MonthlyRent,
		SecurityDeposit:  m.SecurityDeposit,
		Bedrooms:         m.Bedrooms,
		Bathrooms:        m.Bathrooms,
		Latitude:         m.Latitude,
		Longitude:        m.Longitude,
		Address:          m.Address,
		City:             m.City,
		State:            m.State,
		ZipCode:          m.ZipCode,
		Images:           images,
		Amenities:        amenities,
		Status:           m.Status,
		OwnerID:          m.OwnerID,
		AvailableFrom:    m.AvailableFrom,
		FurnishingStatus: m.FurnishingStatus,
		Balcony:          m.Balcony,
		Possession:       m.Possession,
		CreatedAt:        m.CreatedAt,
	}
}

// buildListFilter translates the query specification into a bson document.
// Predicates are applied in a fixed order on top of status = active; every
// supplied filter narrows the result (logical AND).
func buildListFilter(f ports.ListPropertiesFilter) bson.M {
	filter := bson.M{"status": domain.PropertyStatusActive}

	if f.ListingType != "" {
		filter["listing_type"] = f.ListingType
	}
	if f.City != "" {
		filter["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.City), Options: "i"}
	}
	if f.PropertyType != "" {
		filter["property_type"] = f.PropertyType
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}
	if f.Bedrooms != nil {
		filter["bedrooms"] = *f.Bedrooms
	}
	if f.Bathrooms != nil {
		filter["bathrooms"] = *f.Bathrooms
	}
	return filter
}

// Insert stores a new property document and returns its assigned ID.
func (r *PropertyRepository) Insert(ctx context.Context, p *domain.Property) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, fromDomain(p))
	if err != nil {
		return "", fmt.Errorf("insert property: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert property: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID treats a malformed ID the same as a missing row.
func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProperty
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return mp.toDomain(), nil
}

// List returns active properties matching filter, newest first. The result
// set is unbounded; pagination is a known, deliberate omission.
func (r *PropertyRepository) List(ctx context.Context, filter ports.ListPropertiesFilter) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, buildListFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer cur.Close(ctx)

	props := make([]*domain.Property, 0)
	for cur.Next(ctx) {
		var mp mongoProperty
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		props = append(props, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return props, nil
}

// EnsureIndexes creates the indexes backing the listing query and owner
// lookups.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
