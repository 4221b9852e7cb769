// Package memory implements the repository ports on process memory. It backs
// STORE_DRIVER=memory for local runs and the service and router tests; data
// does not survive a restart.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// Store holds every collection behind one lock.
type Store struct {
	mu         sync.Mutex
	users      map[string]*domain.User // by id
	nextUserID int
	bookings   map[int64]*domain.Booking
	bookingSeq int64
	events     []*domain.BookingEvent
	rooms      map[int]*domain.Room
	categories map[string]*domain.Category
	gallery    map[string]*domain.GalleryItem
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]*domain.User),
		bookings:   make(map[int64]*domain.Booking),
		rooms:      make(map[int]*domain.Room),
		categories: make(map[string]*domain.Category),
		gallery:    make(map[string]*domain.GalleryItem),
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

func (s *Store) BookingEvents() *BookingEventRepository { return &BookingEventRepository{s: s} }

func (s *Store) Rooms() *RoomRepository { return &RoomRepository{s: s} }

func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }

func (s *Store) Gallery() *GalleryRepository { return &GalleryRepository{s: s} }

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type UserRepository struct{ s *Store }

var _ ports.UserRepository = (*UserRepository)(nil)

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.BlockedAt != nil {
		at := *u.BlockedAt
		clone.BlockedAt = &at
	}
	return &clone
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.s.nextUserID++
	stored := cloneUser(user)
	stored.ID = strconv.Itoa(r.s.nextUserID)
	r.s.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	updated := cloneUser(user)
	updated.Email = current.Email
	updated.PasswordHash = current.PasswordHash
	updated.CreatedAt = current.CreatedAt
	r.s.users[user.ID] = updated
	return cloneUser(updated), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

type BookingRepository struct{ s *Store }

var _ ports.BookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) NextSequence(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.bookingSeq++
	return r.s.bookingSeq, nil
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.bookings[b.BookingID]; taken {
		return domain.ErrBookingIDTaken
	}
	clone := *b
	r.s.bookings[b.BookingID] = &clone
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, bookingID int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *BookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Booking, 0, len(r.s.bookings))
	for _, b := range r.s.bookings {
		clone := *b
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingID < out[j].BookingID })
	return out, nil
}

func (r *BookingRepository) Update(_ context.Context, bookingID int64, patch ports.BookingPatch) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if patch.RoomID != nil {
		b.RoomID = *patch.RoomID
	}
	if patch.GuestEmail != nil {
		b.GuestEmail = *patch.GuestEmail
	}
	if patch.BookerRole != nil {
		b.BookerRole = *patch.BookerRole
	}
	if patch.Start != nil {
		b.Start = *patch.Start
	}
	if patch.End != nil {
		b.End = *patch.End
	}
	b.UpdatedAt = time.Now().UTC()
	clone := *b
	return &clone, nil
}

func (r *BookingRepository) Delete(_ context.Context, bookingID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[bookingID]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.s.bookings, bookingID)
	return nil
}

// SetSequence moves the booking sequence, e.g. to simulate a counter that
// lags behind existing data.
func (r *BookingRepository) SetSequence(seq int64) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.bookingSeq = seq
}

type BookingEventRepository struct{ s *Store }

var _ ports.BookingEventRepository = (*BookingEventRepository)(nil)

func (r *BookingEventRepository) Insert(_ context.Context, event *domain.BookingEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *event
	r.s.events = append(r.s.events, &clone)
	return nil
}

// Events returns the audit trail in insertion order.
func (r *BookingEventRepository) Events() []domain.BookingEvent {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.BookingEvent, len(r.s.events))
	for i, e := range r.s.events {
		out[i] = *e
	}
	return out
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

type RoomRepository struct{ s *Store }

var _ ports.RoomRepository = (*RoomRepository)(nil)

// cloneStrings copies s, keeping an empty list empty rather than nil.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

func cloneRoom(r *domain.Room) *domain.Room {
	clone := *r
	clone.Photos = cloneStrings(r.Photos)
	return &clone
}

func (r *RoomRepository) Create(_ context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.rooms[room.RoomID]; taken {
		return domain.ErrRoomExists
	}
	r.s.rooms[room.RoomID] = cloneRoom(room)
	return nil
}

func (r *RoomRepository) FindByRoomID(_ context.Context, roomID int) (*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	room, ok := r.s.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

func (r *RoomRepository) sorted() []*domain.Room {
	out := make([]*domain.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		out = append(out, cloneRoom(room))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out
}

func (r *RoomRepository) List(_ context.Context, skip, limit int64) ([]*domain.Room, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := r.sorted()
	total := int64(len(all))
	if skip >= total {
		return []*domain.Room{}, total, nil
	}
	end := skip + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[skip:end], total, nil
}

func (r *RoomRepository) ListByCategory(_ context.Context, category string) ([]*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*domain.Room
	for _, room := range r.sorted() {
		if room.Category == category {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r *RoomRepository) Update(_ context.Context, roomID int, patch ports.RoomPatch) (*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	room, ok := r.s.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	if patch.Category != nil {
		room.Category = *patch.Category
	}
	if patch.Available != nil {
		room.Available = *patch.Available
	}
	if patch.MaxGuests != nil {
		room.MaxGuests = *patch.MaxGuests
	}
	if patch.SpecialDescription != nil {
		room.SpecialDescription = *patch.SpecialDescription
	}
	if patch.Photos != nil {
		room.Photos = cloneStrings(patch.Photos)
	}
	if patch.Notes != nil {
		room.Notes = *patch.Notes
	}
	room.UpdatedAt = time.Now().UTC()
	return cloneRoom(room), nil
}

func (r *RoomRepository) Delete(_ context.Context, roomID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[roomID]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.s.rooms, roomID)
	return nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

type CategoryRepository struct{ s *Store }

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func cloneCategory(c *domain.Category) *domain.Category {
	clone := *c
	clone.Features = cloneStrings(c.Features)
	return &clone
}

func (r *CategoryRepository) Create(_ context.Context, c *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.categories[c.Name]; taken {
		return domain.ErrCategoryExists
	}
	r.s.categories[c.Name] = cloneCategory(c)
	return nil
}

func (r *CategoryRepository) FindByName(_ context.Context, name string) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[name]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return cloneCategory(c), nil
}

func (r *CategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, cloneCategory(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepository) Update(_ context.Context, name string, patch ports.CategoryPatch) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[name]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	if patch.Name != nil && *patch.Name != name {
		if _, taken := r.s.categories[*patch.Name]; taken {
			return nil, domain.ErrCategoryExists
		}
		delete(r.s.categories, name)
		c.Name = *patch.Name
		r.s.categories[c.Name] = c
	}
	if patch.Price != nil {
		c.Price = *patch.Price
	}
	if patch.Features != nil {
		c.Features = cloneStrings(patch.Features)
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}
	if patch.Disabled != nil {
		c.Disabled = *patch.Disabled
	}
	c.UpdatedAt = time.Now().UTC()
	return cloneCategory(c), nil
}

func (r *CategoryRepository) Delete(_ context.Context, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[name]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.s.categories, name)
	return nil
}

// ---------------------------------------------------------------------------
// Gallery
// ---------------------------------------------------------------------------

type GalleryRepository struct{ s *Store }

var _ ports.GalleryRepository = (*GalleryRepository)(nil)

func (r *GalleryRepository) Create(_ context.Context, item *domain.GalleryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.gallery[item.Name]; taken {
		return domain.ErrGalleryItemExists
	}
	clone := *item
	r.s.gallery[item.Name] = &clone
	return nil
}

func (r *GalleryRepository) FindByName(_ context.Context, name string) (*domain.GalleryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.gallery[name]
	if !ok {
		return nil, domain.ErrGalleryItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *GalleryRepository) List(_ context.Context) ([]*domain.GalleryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.GalleryItem, 0, len(r.s.gallery))
	for _, item := range r.s.gallery {
		clone := *item
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *GalleryRepository) Update(_ context.Context, name string, patch ports.GalleryPatch) (*domain.GalleryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.gallery[name]
	if !ok {
		return nil, domain.ErrGalleryItemNotFound
	}
	if patch.Name != nil && *patch.Name != name {
		if _, taken := r.s.gallery[*patch.Name]; taken {
			return nil, domain.ErrGalleryItemExists
		}
		delete(r.s.gallery, name)
		item.Name = *patch.Name
		r.s.gallery[item.Name] = item
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Disabled != nil {
		item.Disabled = *patch.Disabled
	}
	item.UpdatedAt = time.Now().UTC()
	clone := *item
	return &clone, nil
}

func (r *GalleryRepository) Delete(_ context.Context, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.gallery[name]; !ok {
		return domain.ErrGalleryItemNotFound
	}
	delete(r.s.gallery, name)
	return nil
}
