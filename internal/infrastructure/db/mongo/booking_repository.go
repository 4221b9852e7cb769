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
	collectionBookings = "bookings"
	collectionCounters = "counters"

	bookingCounterID = "bookingId"
)

// BookingRepository stores bookings and keeps their sequence in a counter
// document, so allocation is a single atomic $inc.
type BookingRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

var _ ports.BookingRepository = (*BookingRepository)(nil)

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{
		col:      db.Collection(collectionBookings),
		counters: db.Collection(collectionCounters),
	}
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (r *BookingRepository) NextSequence(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var c counter
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": bookingCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next booking sequence: %w", err)
	}
	return c.Seq, nil
}

// SyncSequence raises the counter to the highest stored booking id. It runs
// at startup so a database seeded without the counter, or one with gaps left
// by deletions, does not hand out ids that are already taken.
func (r *BookingRepository) SyncSequence(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "maxId", Value: bson.D{{Key: "$max", Value: "$bookingId"}}},
		}}},
	})
	if err != nil {
		return 0, fmt.Errorf("find highest booking id: %w", err)
	}
	var rows []struct {
		MaxID int64 `bson:"maxId"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("find highest booking id: %w", err)
	}
	var highest int64
	if len(rows) > 0 {
		highest = rows[0].MaxID
	}

	var c counter
	err = r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": bookingCounterID},
		bson.M{"$max": bson.M{"seq": sequenceFor(highest)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("sync booking sequence: %w", err)
	}
	return c.Seq, nil
}

// sequenceFor returns the counter value that has already issued bookingID.
func sequenceFor(bookingID int64) int64 {
	if seq := bookingID - domain.BookingIDOffset; seq > 0 {
		return seq
	}
	return 0
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrBookingIDTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var b domain.Booking
	if err := r.col.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "bookingId", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	out := []*domain.Booking{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, bookingID int64, patch ports.BookingPatch) (*domain.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.RoomID != nil {
		set["roomId"] = *patch.RoomID
	}
	if patch.GuestEmail != nil {
		set["email"] = *patch.GuestEmail
	}
	if patch.BookerRole != nil {
		set["userType"] = *patch.BookerRole
	}
	if patch.Start != nil {
		set["start"] = patch.Start.UTC()
	}
	if patch.End != nil {
		set["end"] = patch.End.UTC()
	}

	var b domain.Booking
	err := r.col.FindOneAndUpdate(ctx, bson.M{"bookingId": bookingID}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

const collectionBookingEvents = "booking_events"

// BookingEventRepository persists the booking audit trail.
type BookingEventRepository struct {
	col *mongo.Collection
}

var _ ports.BookingEventRepository = (*BookingEventRepository)(nil)

func NewBookingEventRepository(db *mongo.Database) *BookingEventRepository {
	return &BookingEventRepository{col: db.Collection(collectionBookingEvents)}
}

func (r *BookingEventRepository) Insert(ctx context.Context, event *domain.BookingEvent) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.col.InsertOne(ctx, bookingEventDocument(event))
	return err
}

func bookingEventDocument(event *domain.BookingEvent) bson.M {
	return bson.M{
		"_id":        event.ID,
		"bookingId":  event.BookingID,
		"action":     string(event.Action),
		"actorEmail": event.ActorEmail,
		"actorRole":  string(event.ActorRole),
		"at":         event.At.UTC(),
	}
}
