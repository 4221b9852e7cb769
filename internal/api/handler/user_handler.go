package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// UserHandler serves the admin user routes. The :key path parameter is an
// email when it contains '@' and a user id otherwise.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{List: users})
}

// Get handles GET /api/users/:key.
//
// @Summary      Get a user by email or id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "Email or user id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{key} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), caller(c), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Update handles PUT /api/users/:key. Only the provided fields change.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string             true  "Email or user id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{key} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), caller(c), c.Param("key"), ports.UpdateUserInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		WhatsApp:      req.WhatsApp,
		Image:         req.Image,
		Type:          req.Type,
		Disabled:      req.Disabled,
		EmailVerified: req.EmailVerified,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Message: "User updated successfully", User: user})
}

// Delete handles DELETE /api/users/:key.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "Email or user id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{key} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), caller(c), c.Param("key")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// Toggle handles PATCH /api/users/:key/toggle.
//
// @Summary      Enable or disable a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "Email or user id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{key}/toggle [patch]
func (h *UserHandler) Toggle(c echo.Context) error {
	user, err := h.service.ToggleDisabled(c.Request().Context(), caller(c), c.Param("key"))
	if err != nil {
		return err
	}
	msg := "User enabled"
	if user.Disabled {
		msg = "User disabled"
	}
	return c.JSON(http.StatusOK, userResponse{Message: msg, User: user})
}

// Block handles PATCH /api/users/:key/block.
//
// @Summary      Block a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string            true   "Email or user id"
// @Param        body  body      blockUserRequest  false  "Block reason"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{key}/block [patch]
func (h *UserHandler) Block(c echo.Context) error {
	var req blockUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Block(c.Request().Context(), caller(c), c.Param("key"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Message: "User blocked", User: user})
}

// Unblock handles PATCH /api/users/:key/unblock.
//
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "Email or user id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{key}/unblock [patch]
func (h *UserHandler) Unblock(c echo.Context) error {
	user, err := h.service.Unblock(c.Request().Context(), caller(c), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Message: "User unblocked", User: user})
}
