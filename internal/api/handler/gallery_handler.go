package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List handles GET /api/gallery.
//
// @Summary      List gallery items
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  galleryListResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleryListResponse{Gallery: items})
}

// Create handles POST /api/gallery.
//
// @Summary      Add a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGalleryRequest  true  "Gallery item"
// @Success      201   {object}  galleryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req createGalleryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), domain.GalleryItem{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, galleryResponse{Message: "Gallery item created successfully", Item: item})
}

// Update handles PUT /api/gallery/:name.
//
// @Summary      Update a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string                true  "Item name"
// @Param        body  body      updateGalleryRequest  true  "Fields to update"
// @Success      200   {object}  galleryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/gallery/{name} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	var req updateGalleryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("name"), ports.GalleryPatch{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Disabled:    req.Disabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleryResponse{Message: "Gallery item updated successfully", Item: item})
}

// Delete handles DELETE /api/gallery/:name.
//
// @Summary      Delete a gallery item
// @Tags         gallery
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Item name"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/gallery/{name} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Gallery item deleted successfully"})
}

// Toggle handles PATCH /api/gallery/:name/toggle.
//
// @Summary      Show or hide a gallery item
// @Tags         gallery
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Item name"
// @Success      200   {object}  galleryResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/gallery/{name}/toggle [patch]
func (h *GalleryHandler) Toggle(c echo.Context) error {
	item, err := h.service.Toggle(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleryResponse{Message: "Gallery item status updated", Item: item})
}
