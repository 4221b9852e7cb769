package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

const (
	collectionRooms      = "rooms"
	collectionCategories = "categories"
	collectionGallery    = "gallery"
)

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

type RoomRepository struct {
	col *mongo.Collection
}

var _ ports.RoomRepository = (*RoomRepository)(nil)

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, room); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (r *RoomRepository) FindByRoomID(ctx context.Context, roomID int) (*domain.Room, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var room domain.Room
	if err := r.col.FindOne(ctx, bson.M{"roomId": roomID}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Room, error) {
	cur, err := r.col.Find(ctx, filter, opts.SetSort(bson.D{{Key: "roomId", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := []*domain.Room{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	return out, nil
}

func (r *RoomRepository) List(ctx context.Context, skip, limit int64) ([]*domain.Room, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count rooms: %w", err)
	}
	opts := options.Find().SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	rooms, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *RoomRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Room, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return r.find(ctx, bson.M{"category": category}, options.Find())
}

func (r *RoomRepository) Update(ctx context.Context, roomID int, patch ports.RoomPatch) (*domain.Room, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set := bson.M{}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Available != nil {
		set["available"] = *patch.Available
	}
	if patch.MaxGuests != nil {
		set["maxGuests"] = *patch.MaxGuests
	}
	if patch.SpecialDescription != nil {
		set["specialDescription"] = *patch.SpecialDescription
	}
	if patch.Photos != nil {
		set["photos"] = patch.Photos
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if len(set) == 0 {
		return r.FindByRoomID(ctx, roomID)
	}
	set["updatedAt"] = time.Now().UTC()

	var room domain.Room
	err := r.col.FindOneAndUpdate(ctx, bson.M{"roomId": roomID}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("update room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) Delete(ctx context.Context, roomID int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"roomId": roomID})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

type CategoryRepository struct {
	col *mongo.Collection
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(collectionCategories)}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var c domain.Category
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := []*domain.Category{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return out, nil
}

func (r *CategoryRepository) Update(ctx context.Context, name string, patch ports.CategoryPatch) (*domain.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Features != nil {
		set["features"] = patch.Features
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Disabled != nil {
		set["disabled"] = *patch.Disabled
	}

	var c domain.Category
	err := r.col.FindOneAndUpdate(ctx, bson.M{"name": name}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&c)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrCategoryNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Gallery
// ---------------------------------------------------------------------------

type GalleryRepository struct {
	col *mongo.Collection
}

var _ ports.GalleryRepository = (*GalleryRepository)(nil)

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{col: db.Collection(collectionGallery)}
}

func (r *GalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrGalleryItemExists
		}
		return fmt.Errorf("insert gallery item: %w", err)
	}
	return nil
}

func (r *GalleryRepository) FindByName(ctx context.Context, name string) (*domain.GalleryItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var item domain.GalleryItem
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("find gallery item: %w", err)
	}
	return &item, nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.GalleryItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	out := []*domain.GalleryItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode gallery: %w", err)
	}
	return out, nil
}

func (r *GalleryRepository) Update(ctx context.Context, name string, patch ports.GalleryPatch) (*domain.GalleryItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Disabled != nil {
		set["disabled"] = *patch.Disabled
	}

	var item domain.GalleryItem
	err := r.col.FindOneAndUpdate(ctx, bson.M{"name": name}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&item)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrGalleryItemNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrGalleryItemExists
		}
		return nil, fmt.Errorf("update gallery item: %w", err)
	}
	return &item, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGalleryItemNotFound
	}
	return nil
}
