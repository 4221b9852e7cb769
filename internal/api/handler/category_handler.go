package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /api/categories.
//
// @Summary      List room categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryListResponse{Categories: categories})
}

// Get handles GET /api/categories/:name.
//
// @Summary      Get a room category
// @Tags         categories
// @Produce      json
// @Param        name  path      string  true  "Category name"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/categories/{name} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryResponse{Category: category})
}

// Create handles POST /api/categories.
//
// @Summary      Create a room category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.service.Create(c.Request().Context(), domain.Category{
		Name:        req.Name,
		Price:       req.Price,
		Features:    req.Features,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, categoryResponse{Message: "Category created successfully", Category: category})
}

// Update handles PUT /api/categories/:name.
//
// @Summary      Update a room category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string                 true  "Category name"
// @Param        body  body      updateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/categories/{name} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.service.Update(c.Request().Context(), c.Param("name"), ports.CategoryPatch{
		Name:        req.Name,
		Price:       req.Price,
		Features:    req.Features,
		Description: req.Description,
		Image:       req.Image,
		Disabled:    req.Disabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryResponse{Message: "Category updated successfully", Category: category})
}

// Delete handles DELETE /api/categories/:name.
//
// @Summary      Delete a room category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Category name"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/categories/{name} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Category deleted successfully"})
}

// Toggle handles PATCH /api/categories/:name/toggle.
//
// @Summary      Enable or disable a room category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Category name"
// @Success      200   {object}  categoryResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/categories/{name}/toggle [patch]
func (h *CategoryHandler) Toggle(c echo.Context) error {
	category, err := h.service.Toggle(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryResponse{Message: "Category status updated", Category: category})
}
