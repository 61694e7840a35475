package http

import (
	"net/http"

	"loanlift-backend/internal/adapter/middleware"
	"loanlift-backend/internal/domain/apperr"
	userdomain "loanlift-backend/internal/domain/user"
	"loanlift-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerReq struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// Register upserts the caller's account. The email always comes from the
// verified token, never from the body.
func (h *UserHandler) Register(c echo.Context) error {
	email := middleware.PrincipalEmail(c)
	if email == "" {
		return writeError(c, apperr.ErrUnauthorized)
	}

	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	a, err := h.uc.Register(c.Request().Context(), user.RegisterInput{
		Email:    email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.uc.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleAdmin, userdomain.RoleManager); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type setRoleReq struct {
	Role string `json:"role"`
}

func (h *UserHandler) SetRole(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.uc.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleAdmin); err != nil {
		return writeError(c, err)
	}

	var req setRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	a, err := h.uc.SetRole(ctx, c.Param("email"), userdomain.Role(req.Role))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

type setSuspendedReq struct {
	Suspended bool   `json:"suspended"`
	Reason    string `json:"reason"`
}

func (h *UserHandler) SetSuspended(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.uc.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleAdmin); err != nil {
		return writeError(c, err)
	}

	var req setSuspendedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	a, err := h.uc.SetSuspended(ctx, c.Param("email"), req.Suspended, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}
