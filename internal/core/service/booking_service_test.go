package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
	"github.com/hotelhub/hotel-admin/internal/infrastructure/db/memory"
)

type bookingFixture struct {
	svc      *BookingService
	bookings *memory.BookingRepository
	events   *memory.BookingEventRepository
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()
	store := memory.NewStore()
	f := bookingFixture{bookings: store.Bookings(), events: store.BookingEvents()}
	f.svc = NewBookingService(f.bookings, f.events, zerolog.Nop())
	return f
}

func mustBook(t *testing.T, svc *BookingService, caller *domain.Identity) *domain.Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), caller, ports.CreateBookingInput{RoomID: 5, Start: "2024-01-01", End: "2024-01-03"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return b
}

func strPtr(s string) *string { return &s }

func TestBookingService_Create_BindsOwnerFromIdentity(t *testing.T) {
	f := newBookingFixture(t)

	b := mustBook(t, f.svc, customerCaller)
	if b.GuestEmail != customerCaller.Email {
		t.Fatalf("expected guest email %q, got %q", customerCaller.Email, b.GuestEmail)
	}
	if b.BookerRole != domain.RoleCustomer {
		t.Fatalf("expected booker role customer, got %s", b.BookerRole)
	}
	if b.RoomID != 5 {
		t.Fatalf("expected room 5, got %d", b.RoomID)
	}
	if !b.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %s", b.Start)
	}

	admin := mustBook(t, f.svc, adminCaller)
	if admin.GuestEmail != adminCaller.Email || admin.BookerRole != domain.RoleAdmin {
		t.Fatalf("admin booking not bound to admin identity: %+v", admin)
	}
}

func TestBookingService_Create_SequentialIDs(t *testing.T) {
	f := newBookingFixture(t)

	for i := int64(1); i <= 5; i++ {
		b := mustBook(t, f.svc, customerCaller)
		if want := domain.BookingIDOffset + i; b.BookingID != want {
			t.Fatalf("booking %d: expected id %d, got %d", i, want, b.BookingID)
		}
	}

	stored, _ := f.bookings.List(context.Background())
	if len(stored) != 5 {
		t.Fatalf("expected 5 stored bookings, got %d", len(stored))
	}
}

func TestBookingService_Create_RequiresIdentity(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), nil, ports.CreateBookingInput{RoomID: 5, Start: "2024-01-01", End: "2024-01-03"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestBookingService_Create_Validation(t *testing.T) {
	f := newBookingFixture(t)

	cases := map[string]ports.CreateBookingInput{
		"missing room":   {Start: "2024-01-01", End: "2024-01-03"},
		"missing start":  {RoomID: 5, End: "2024-01-03"},
		"missing end":    {RoomID: 5, Start: "2024-01-01"},
		"negative room":  {RoomID: -1, Start: "2024-01-01", End: "2024-01-03"},
		"bad start":      {RoomID: 5, Start: "next tuesday", End: "2024-01-03"},
		"end before":     {RoomID: 5, Start: "2024-01-03", End: "2024-01-01"},
		"blank start":    {RoomID: 5, Start: "   ", End: "2024-01-03"},
		"bad end format": {RoomID: 5, Start: "2024-01-01", End: "03/01/2024"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := f.svc.Create(context.Background(), customerCaller, in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	stored, _ := f.bookings.List(context.Background())
	if len(stored) != 0 {
		t.Fatalf("rejected requests must not persist bookings, got %d", len(stored))
	}
}

func TestBookingService_Create_SkipsTakenIDs(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	mustBook(t, f.svc, customerCaller) // 1201
	mustBook(t, f.svc, customerCaller) // 1202
	f.bookings.SetSequence(0)

	b, err := f.svc.Create(ctx, customerCaller, ports.CreateBookingInput{RoomID: 7, Start: "2024-03-01", End: "2024-03-02"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.BookingID != 1203 {
		t.Fatalf("expected id 1203 after skipping taken ids, got %d", b.BookingID)
	}
}

func TestBookingService_Create_GivesUpAfterRetries(t *testing.T) {
	f := newBookingFixture(t)

	for i := 0; i < maxAllocationAttempts; i++ {
		mustBook(t, f.svc, customerCaller)
	}
	f.bookings.SetSequence(0)

	_, err := f.svc.Create(context.Background(), customerCaller, ports.CreateBookingInput{RoomID: 7, Start: "2024-03-01", End: "2024-03-02"})
	if !errors.Is(err, domain.ErrBookingIDTaken) {
		t.Fatalf("expected ErrBookingIDTaken, got %v", err)
	}
}

func TestBookingService_AdminOnlyOperations(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	b := mustBook(t, f.svc, customerCaller)

	if _, err := f.svc.List(ctx, customerCaller); !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("List: expected ErrAdminOnly, got %v", err)
	}
	if _, err := f.svc.Get(ctx, customerCaller, b.BookingID); !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("Get: expected ErrAdminOnly, got %v", err)
	}
	if _, err := f.svc.Update(ctx, customerCaller, b.BookingID, ports.UpdateBookingInput{}); !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("Update: expected ErrAdminOnly, got %v", err)
	}
	if err := f.svc.Delete(ctx, customerCaller, b.BookingID); !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("Delete: expected ErrAdminOnly, got %v", err)
	}
	if err := f.svc.Delete(ctx, nil, b.BookingID); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("Delete anonymous: expected ErrUnauthenticated, got %v", err)
	}

	if _, err := f.bookings.FindByID(ctx, b.BookingID); err != nil {
		t.Fatalf("booking must survive a refused delete: %v", err)
	}
}

func TestBookingService_Update_KeepsBookingID(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	b := mustBook(t, f.svc, customerCaller)

	updated, err := f.svc.Update(ctx, adminCaller, b.BookingID, ports.UpdateBookingInput{Start: strPtr("2024-01-02")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.BookingID != b.BookingID {
		t.Fatalf("booking id changed: %d -> %d", b.BookingID, updated.BookingID)
	}
	if !updated.Start.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start not updated: %s", updated.Start)
	}
	if updated.GuestEmail != customerCaller.Email {
		t.Fatalf("unpatched fields must be kept, got %q", updated.GuestEmail)
	}
}

func TestBookingService_Update_Validation(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	b := mustBook(t, f.svc, customerCaller) // 2024-01-01 .. 2024-01-03

	role := "manager"
	zero := 0
	cases := map[string]ports.UpdateBookingInput{
		"end before start": {Start: strPtr("2024-02-05"), End: strPtr("2024-02-01")},
		"bad role":         {BookerRole: &role},
		"zero room":        {RoomID: &zero},
		"bad date":         {End: strPtr("soon")},
		"blank email":      {GuestEmail: strPtr(" ")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := f.svc.Update(ctx, adminCaller, b.BookingID, in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if _, err := f.svc.Update(ctx, adminCaller, 9999, ports.UpdateBookingInput{}); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_Delete(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	b := mustBook(t, f.svc, customerCaller)

	if err := f.svc.Delete(ctx, adminCaller, b.BookingID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := f.svc.Get(ctx, adminCaller, b.BookingID); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound after delete, got %v", err)
	}
	if err := f.svc.Delete(ctx, adminCaller, b.BookingID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestBookingService_RecordsAuditTrail(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	b := mustBook(t, f.svc, customerCaller)
	if _, err := f.svc.Update(ctx, adminCaller, b.BookingID, ports.UpdateBookingInput{End: strPtr("2024-01-05")}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := f.svc.Delete(ctx, adminCaller, b.BookingID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	events := f.events.Events()
	want := []domain.BookingAction{domain.BookingCreated, domain.BookingUpdated, domain.BookingDeleted}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, e := range events {
		if e.Action != want[i] || e.BookingID != b.BookingID || e.ID == "" {
			t.Fatalf("event %d: unexpected %+v", i, e)
		}
	}
	if events[0].ActorEmail != customerCaller.Email || events[2].ActorRole != domain.RoleAdmin {
		t.Fatalf("unexpected actors: %+v", events)
	}
}

type failingEventRepo struct{}

func (failingEventRepo) Insert(context.Context, *domain.BookingEvent) error {
	return errors.New("audit store down")
}

func TestBookingService_AuditFailureDoesNotFailBooking(t *testing.T) {
	store := memory.NewStore()
	svc := NewBookingService(store.Bookings(), failingEventRepo{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), customerCaller, ports.CreateBookingInput{RoomID: 1, Start: "2024-01-01", End: "2024-01-01"}); err != nil {
		t.Fatalf("audit failure must not fail the booking: %v", err)
	}
}

type brokenBookingRepo struct {
	ports.BookingRepository
}

func (brokenBookingRepo) NextSequence(context.Context) (int64, error) { return 1, nil }

func (brokenBookingRepo) Create(context.Context, *domain.Booking) error {
	return errors.New("connection reset")
}

func TestBookingService_Create_StorageError(t *testing.T) {
	svc := NewBookingService(brokenBookingRepo{}, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), customerCaller, ports.CreateBookingInput{RoomID: 1, Start: "2024-01-01", End: "2024-01-02"})
	if err == nil || errors.Is(err, domain.ErrBookingIDTaken) {
		t.Fatalf("expected a storage error without retries, got %v", err)
	}
}
