package http

import (
	"context"
	"net/http"

	"loanlift-backend/internal/adapter/middleware"
	"loanlift-backend/internal/domain/apperr"
	userdomain "loanlift-backend/internal/domain/user"
	"loanlift-backend/internal/usecase/application"
	"loanlift-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	uc    *application.Usecase
	users *user.Usecase
}

func NewApplicationHandler(uc *application.Usecase, users *user.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, users: users}
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	acct, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c))
	if err != nil {
		return writeError(c, err)
	}

	var req application.SubmitInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.Email = acct.Email
	dto, err := h.uc.Submit(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// ListForUser returns the applications for the email in the path.
// Callers may only read their own history.
func (h *ApplicationHandler) ListForUser(c echo.Context) error {
	ctx := c.Request().Context()
	acct, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	if email := c.Param("email"); email != acct.Email {
		return writeError(c, apperr.Forbiddenf("cannot list applications for %s", email))
	}
	list, err := h.uc.ListForUser(ctx, acct.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) ListPending(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleManager, userdomain.RoleAdmin); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListPending(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) ListApproved(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleManager, userdomain.RoleAdmin); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListApproved(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	return h.transition(c, h.uc.Approve)
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	return h.transition(c, h.uc.Reject)
}

func (h *ApplicationHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.uc.Cancel)
}

func (h *ApplicationHandler) transition(
	c echo.Context,
	op func(ctx context.Context, applicationID string, actor application.Actor) (*application.ApplicationDTO, error),
) error {
	ctx := c.Request().Context()
	acct, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	dto, err := op(ctx, c.Param("application_id"), application.Actor{Email: acct.Email, Role: acct.Role})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
