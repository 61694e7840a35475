package http

import (
	"net/http"

	"loanlift-backend/internal/adapter/middleware"
	userdomain "loanlift-backend/internal/domain/user"
	"loanlift-backend/internal/usecase/loanoffer"
	"loanlift-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type LoanOfferHandler struct {
	uc    *loanoffer.Usecase
	users *user.Usecase
}

func NewLoanOfferHandler(uc *loanoffer.Usecase, users *user.Usecase) *LoanOfferHandler {
	return &LoanOfferHandler{uc: uc, users: users}
}

func (h *LoanOfferHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleManager, userdomain.RoleAdmin); err != nil {
		return writeError(c, err)
	}

	var req loanoffer.OfferInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	o, err := h.uc.Create(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *LoanOfferHandler) Get(c echo.Context) error {
	o, err := h.uc.Get(c.Request().Context(), c.Param("offer_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// List doubles as search when ?q= is present.
func (h *LoanOfferHandler) List(c echo.Context) error {
	list, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanOfferHandler) ListHome(c echo.Context) error {
	list, err := h.uc.ListHome(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanOfferHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleManager, userdomain.RoleAdmin); err != nil {
		return writeError(c, err)
	}

	var req loanoffer.OfferInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	o, err := h.uc.Update(ctx, c.Param("offer_id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *LoanOfferHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c), userdomain.RoleManager, userdomain.RoleAdmin); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(ctx, c.Param("offer_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
