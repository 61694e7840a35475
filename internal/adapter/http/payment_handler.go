package http

import (
	"net/http"

	"loanlift-backend/internal/adapter/middleware"
	"loanlift-backend/internal/usecase/payment"
	"loanlift-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc    *payment.Usecase
	users *user.Usecase
}

func NewPaymentHandler(uc *payment.Usecase, users *user.Usecase) *PaymentHandler {
	return &PaymentHandler{uc: uc, users: users}
}

func (h *PaymentHandler) CreateCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	acct, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c))
	if err != nil {
		return writeError(c, err)
	}

	var req payment.CreateCheckoutInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.Email = acct.Email
	dto, err := h.uc.CreateCheckout(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Settle is the processor return URL. The session reference arrives via
// ?session_id= and everything else is re-fetched from the processor, so a
// tampered query string can at worst settle someone's paid session.
func (h *PaymentHandler) Settle(c echo.Context) error {
	dto, err := h.uc.Settle(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()
	acct, err := h.users.Authorize(ctx, middleware.PrincipalEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListPayments(ctx, acct.Email, c.QueryParam("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
