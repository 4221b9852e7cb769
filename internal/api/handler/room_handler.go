package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// RoomHandler serves the room inventory. Reads are public, writes are
// admin-gated at the router.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List handles GET /api/rooms?pageIndex=&pageSize=.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Param        pageIndex  query     int  false  "Zero based page index (default 0)"
// @Param        pageSize   query     int  false  "Page size (default 5)"
// @Success      200        {object}  roomPageResponse
// @Failure      400        {object}  map[string]string
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	pageIndex, err := intQuery(c, "pageIndex", 0)
	if err != nil {
		return err
	}
	pageSize, err := intQuery(c, "pageSize", 0)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), pageIndex, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomPageResponse{Rooms: page.Rooms, TotalCount: page.TotalCount})
}

// Get handles GET /api/rooms/:roomId.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        roomId  path      int  true  "Room number"
// @Success      200     {object}  roomResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/rooms/{roomId} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := intParam(c, "roomId")
	if err != nil {
		return err
	}
	room, err := h.service.Get(c.Request().Context(), int(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomResponse{Room: room})
}

// ListByCategory handles GET /api/rooms/category/:category.
//
// @Summary      List rooms of a category
// @Tags         rooms
// @Produce      json
// @Param        category  path      string  true  "Category name"
// @Success      200       {object}  roomListResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/rooms/category/{category} [get]
func (h *RoomHandler) ListByCategory(c echo.Context) error {
	rooms, err := h.service.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomListResponse{Rooms: rooms})
}

// Create handles POST /api/rooms.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  roomResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	room, err := h.service.Create(c.Request().Context(), domain.Room{
		RoomID:             req.RoomID,
		Category:           req.Category,
		Available:          *req.Available,
		MaxGuests:          req.MaxGuests,
		SpecialDescription: req.SpecialDescription,
		Photos:             req.Photos,
		Notes:              req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, roomResponse{Message: "Room created successfully", Room: room})
}

// Update handles PUT /api/rooms/:roomId.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        roomId  path      int                true  "Room number"
// @Param        body    body      updateRoomRequest  true  "Fields to update"
// @Success      200     {object}  roomResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/rooms/{roomId} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := intParam(c, "roomId")
	if err != nil {
		return err
	}
	var req updateRoomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	room, err := h.service.Update(c.Request().Context(), int(id), ports.RoomPatch{
		Category:           req.Category,
		Available:          req.Available,
		MaxGuests:          req.MaxGuests,
		SpecialDescription: req.SpecialDescription,
		Photos:             req.Photos,
		Notes:              req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomResponse{Message: "Room updated successfully", Room: room})
}

// Delete handles DELETE /api/rooms/:roomId.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        roomId  path      int  true  "Room number"
// @Success      200     {object}  messageResponse
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/rooms/{roomId} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "roomId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), int(id)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Room deleted successfully"})
}
