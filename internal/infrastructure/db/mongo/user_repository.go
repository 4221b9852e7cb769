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

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

const collectionUsers = "users"

type UserRepository struct {
	coll *mongo.Collection
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password"`
	FirstName     string             `bson:"firstName"`
	LastName      string             `bson:"lastName"`
	Image         string             `bson:"image"`
	Phone         string             `bson:"phone"`
	WhatsApp      string             `bson:"whatsApp"`
	Type          string             `bson:"type"`
	Disabled      bool               `bson:"disabled"`
	Blocked       bool               `bson:"blocked"`
	BlockReason   string             `bson:"blockReason,omitempty"`
	BlockedAt     int64              `bson:"blockedAt,omitempty"`
	EmailVerified bool               `bson:"emailVerified"`
	CreatedAt     int64              `bson:"createdAt"`
	UpdatedAt     int64              `bson:"updatedAt"`
}

func toMongoUser(u *domain.User) mongoUser {
	doc := mongoUser{
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Image:         u.Image,
		Phone:         u.Phone,
		WhatsApp:      u.WhatsApp,
		Type:          string(u.Role),
		Disabled:      u.Disabled,
		Blocked:       u.Blocked,
		BlockReason:   u.BlockReason,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt.Unix(),
		UpdatedAt:     u.UpdatedAt.Unix(),
	}
	if u.BlockedAt != nil {
		doc.BlockedAt = u.BlockedAt.Unix()
	}
	return doc
}

func (mu *mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:            mu.ID.Hex(),
		Email:         mu.Email,
		PasswordHash:  mu.PasswordHash,
		FirstName:     mu.FirstName,
		LastName:      mu.LastName,
		Image:         mu.Image,
		Phone:         mu.Phone,
		WhatsApp:      mu.WhatsApp,
		Role:          domain.Role(mu.Type),
		Disabled:      mu.Disabled,
		Blocked:       mu.Blocked,
		BlockReason:   mu.BlockReason,
		EmailVerified: mu.EmailVerified,
		CreatedAt:     unixToTime(mu.CreatedAt),
		UpdatedAt:     unixToTime(mu.UpdatedAt),
	}
	if mu.BlockedAt != 0 {
		at := unixToTime(mu.BlockedAt)
		u.BlockedAt = &at
	}
	return u
}

// objectID maps an unparsable id to not found; such a user cannot exist.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrUserNotFound
	}
	return oid, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoUser(user))
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

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	out := make([]*domain.User, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// Update rewrites the profile and status fields. Email, password and creation
// time are left untouched.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	oid, err := objectID(user.ID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set := bson.M{
		"firstName":     user.FirstName,
		"lastName":      user.LastName,
		"image":         user.Image,
		"phone":         user.Phone,
		"whatsApp":      user.WhatsApp,
		"type":          string(user.Role),
		"disabled":      user.Disabled,
		"blocked":       user.Blocked,
		"emailVerified": user.EmailVerified,
		"updatedAt":     time.Now().UTC().Unix(),
	}
	update := bson.M{"$set": set}
	if user.Blocked {
		set["blockReason"] = user.BlockReason
		if user.BlockedAt != nil {
			set["blockedAt"] = user.BlockedAt.Unix()
		}
	} else {
		update["$unset"] = bson.M{"blockReason": "", "blockedAt": ""}
	}

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
