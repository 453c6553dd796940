package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homeandown/listings-api/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	FirstName          string             `bson:"first_name"`
	LastName           string             `bson:"last_name"`
	Email              string             `bson:"email"`
	PasswordHash       string             `bson:"password_hash"`
	UserType           string             `bson:"user_type"`
	Status             string             `bson:"status"`
	VerificationStatus string             `bson:"verification_status"`
	PhoneNumber        string             `bson:"phone_number,omitempty"`
	Agency             string             `bson:"agency,omitempty"`
	Experience         string             `bson:"experience,omitempty"`
	LicenseNumber      string             `bson:"license_number,omitempty"`
	ProfileImageURL    string             `bson:"profile_image_url,omitempty"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

func (m *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                 m.ID.Hex(),
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		UserType:           m.UserType,
		Status:             m.Status,
		VerificationStatus: m.VerificationStatus,
		PhoneNumber:        m.PhoneNumber,
		Agency:             m.Agency,
		Experience:         m.Experience,
		LicenseNumber:      m.LicenseNumber,
		ProfileImageURL:    m.ProfileImageURL,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// Create inserts a new user document. The unique index on email turns a
// racing duplicate registration into domain.ErrUserExists instead of
// admitting two rows.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		UserType:           user.UserType,
		Status:             user.Status,
		VerificationStatus: user.VerificationStatus,
		PhoneNumber:        user.PhoneNumber,
		Agency:             user.Agency,
		Experience:         user.Experience,
		LicenseNumber:      user.LicenseNumber,
		ProfileImageURL:    user.ProfileImageURL,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

// FindByID treats a malformed ID the same as a missing row.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

// ListAgents returns active agents newest-first, projected down to the
// public directory fields.
func (r *UserRepository) ListAgents(ctx context.Context) ([]domain.AgentProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_type": domain.UserTypeAgent,
		"status":    domain.UserStatusActive,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{
			"first_name":          1,
			"last_name":           1,
			"email":               1,
			"phone_number":        1,
			"agency":              1,
			"experience":          1,
			"license_number":      1,
			"verification_status": 1,
			"profile_image_url":   1,
		})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer cur.Close(ctx)

	profiles := make([]domain.AgentProfile, 0)
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode agent: %w", err)
		}
		profiles = append(profiles, domain.AgentProfile{
			ID:                 mu.ID.Hex(),
			FirstName:          mu.FirstName,
			LastName:           mu.LastName,
			Email:              mu.Email,
			PhoneNumber:        mu.PhoneNumber,
			Agency:             mu.Agency,
			Experience:         mu.Experience,
			LicenseNumber:      mu.LicenseNumber,
			VerificationStatus: mu.VerificationStatus,
			ProfileImageURL:    mu.ProfileImageURL,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return profiles, nil
}

// EnsureIndexes creates the indexes the repository relies on. The unique
// email index backs duplicate-registration detection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_type", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
