package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/api/metrics"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/booking. The booking belongs to the caller; any
// owner fields in the body are ignored.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Room and dates"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/booking [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), caller(c), ports.CreateBookingInput{
		RoomID: req.RoomID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.BookerRole.String()).Inc()
	return c.JSON(http.StatusCreated, bookingResponse{Message: "Booking created successfully", Result: booking})
}

// List handles GET /api/booking.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookingListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/booking [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{List: bookings})
}

// Get handles GET /api/booking/:bookingId.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId  path      int  true  "Booking id (e.g. 1201)"
// @Success      200        {object}  bookingResponse
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/booking/{bookingId} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := intParam(c, "bookingId")
	if err != nil {
		return err
	}
	booking, err := h.service.Get(c.Request().Context(), caller(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingResponse{Result: booking})
}

// Update handles PUT /api/booking/:bookingId. A bookingId in the body is ignored.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId  path      int                   true  "Booking id"
// @Param        body       body      updateBookingRequest  true  "Fields to update"
// @Success      200        {object}  bookingResponse
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/booking/{bookingId} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := intParam(c, "bookingId")
	if err != nil {
		return err
	}
	var req updateBookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Update(c.Request().Context(), caller(c), id, ports.UpdateBookingInput{
		RoomID:     req.RoomID,
		GuestEmail: req.GuestEmail,
		BookerRole: req.BookerRole,
		Start:      req.Start,
		End:        req.End,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingResponse{Message: "Booking updated successfully", Result: booking})
}

// Delete handles DELETE /api/booking/:bookingId.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId  path      int  true  "Booking id"
// @Success      200        {object}  messageResponse
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/booking/{bookingId} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "bookingId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), caller(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking deleted successfully"})
}
