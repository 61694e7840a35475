package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "loanlift-backend/internal/domain/application"
	"loanlift-backend/internal/domain/uow"
	userdomain "loanlift-backend/internal/domain/user"
	"loanlift-backend/internal/testutil/appmock"
	"loanlift-backend/internal/testutil/uowmock"
	"loanlift-backend/internal/testutil/usermock"
	appuc "loanlift-backend/internal/usecase/application"
	useruc "loanlift-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	borrowerEmail = "borrower@example.com"
	managerEmail  = "manager@example.com"
)

// asPrincipal mirrors what middleware.Auth stores after verifying a token.
func asPrincipal(c echo.Context, email string) {
	c.Set("principal_email", email)
}

func testUsers() *useruc.Usecase {
	return useruc.NewUsecase(usermock.Stored(
		&userdomain.Account{Email: borrowerEmail, Role: userdomain.RoleBorrower},
		&userdomain.Account{Email: managerEmail, Role: userdomain.RoleManager},
	))
}

func newAppHandler(repo *appmock.Repo, tx *uowmock.UoW) *ApplicationHandler {
	return NewApplicationHandler(appuc.NewUsecase(repo, tx), testUsers())
}

func TestSubmitApplication_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &appmock.Repo{
		CreateFn: func(ctx context.Context, a *domain.Application) error { return nil },
	}
	h := newAppHandler(repo, uowmock.New())

	reqBody := map[string]any{
		"offer_id":       strings.Repeat("o", 32),
		"monthly_income": 4200.50,
		"purpose":        "inventory restock",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asPrincipal(c, borrowerEmail)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	var got appuc.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Email != borrowerEmail {
		t.Fatalf("email = %s, want token principal", got.Email)
	}
	if got.Status != domain.StatusPending || got.FeeStatus != domain.FeeUnpaid {
		t.Fatalf("fresh application: %+v", got)
	}
}

func TestSubmitApplication_NoPrincipal(t *testing.T) {
	e := newEchoWithValidator()
	h := newAppHandler(&appmock.Repo{}, uowmock.New())

	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(map[string]any{"offer_id": "x"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestApprove_ManagerOnly(t *testing.T) {
	e := newEchoWithValidator()
	appID := strings.Repeat("a", 32)
	stored := &domain.Application{
		ApplicationID: appID,
		Email:         borrowerEmail,
		Status:        domain.StatusPending,
		FeeStatus:     domain.FeeUnpaid,
		AppliedAt:     time.Now().UTC(),
	}
	repo := &appmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domain.Application, error) {
			if id != appID {
				return nil, gorm.ErrRecordNotFound
			}
			return stored, nil
		},
	}
	h := newAppHandler(repo, uowmock.PassThrough(uow.Repos{Applications: repo}))

	call := func(principal string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodPatch, "/applications/approve/"+appID, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("application_id")
		c.SetParamValues(appID)
		asPrincipal(c, principal)
		if err := h.Approve(c); err != nil {
			t.Fatalf("Approve error: %v", err)
		}
		return rec
	}

	if rec := call(borrowerEmail); rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("borrower approve: status = %d, want 403", rec.Code)
	}
	if stored.Status != domain.StatusPending {
		t.Fatalf("forbidden call must not mutate, got %s", stored.Status)
	}

	rec := call(managerEmail)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("manager approve: status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var dto appuc.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != domain.StatusApproved || dto.FeeStatus != domain.FeePaid {
		t.Fatalf("approved dto: %+v", dto)
	}

	// Second approve hits the terminal guard.
	if rec := call(managerEmail); rec.Code != stdhttp.StatusConflict {
		t.Fatalf("double approve: status = %d, want 409", rec.Code)
	}
}

func TestCancel_ForeignBorrowerForbidden(t *testing.T) {
	e := newEchoWithValidator()
	appID := strings.Repeat("a", 32)
	stored := &domain.Application{
		ApplicationID: appID,
		Email:         "someone-else@example.com",
		Status:        domain.StatusPending,
	}
	repo := &appmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return stored, nil
		},
	}
	h := newAppHandler(repo, uowmock.PassThrough(uow.Repos{Applications: repo}))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/applications/cancel/"+appID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(appID)
	asPrincipal(c, borrowerEmail)

	if err := h.Cancel(c); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestListPending_RequiresManager(t *testing.T) {
	e := newEchoWithValidator()
	repo := &appmock.Repo{
		ListByStatusFn: func(ctx context.Context, s domain.Status) ([]domain.Application, error) {
			return []domain.Application{{ApplicationID: strings.Repeat("a", 32), Status: s}}, nil
		},
	}
	h := newAppHandler(repo, uowmock.New())

	req := httptest.NewRequest(stdhttp.MethodGet, "/applications/pending", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asPrincipal(c, borrowerEmail)
	if err := h.ListPending(c); err != nil {
		t.Fatalf("ListPending error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("borrower: status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/applications/pending", nil), rec)
	asPrincipal(c, managerEmail)
	if err := h.ListPending(c); err != nil {
		t.Fatalf("ListPending error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("manager: status = %d, want 200", rec.Code)
	}
}

func TestApprove_UnknownApplication(t *testing.T) {
	e := newEchoWithValidator()
	repo := &appmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newAppHandler(repo, uowmock.PassThrough(uow.Repos{Applications: repo}))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/applications/approve/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues("missing")
	asPrincipal(c, managerEmail)

	if err := h.Approve(c); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListForUser_SelfOnly(t *testing.T) {
	e := newEchoWithValidator()
	repo := &appmock.Repo{
		ListByEmailFn: func(ctx context.Context, email string) ([]domain.Application, error) {
			return []domain.Application{{ApplicationID: strings.Repeat("a", 32), Email: email}}, nil
		},
	}
	h := newAppHandler(repo, uowmock.New())

	list := func(principal, pathEmail string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodGet, "/applications/user/"+pathEmail, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("email")
		c.SetParamValues(pathEmail)
		asPrincipal(c, principal)
		if err := h.ListForUser(c); err != nil {
			t.Fatalf("ListForUser error: %v", err)
		}
		return rec
	}

	if rec := list(borrowerEmail, managerEmail); rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("foreign email: status = %d, want 403", rec.Code)
	}
	if rec := list(borrowerEmail, borrowerEmail); rec.Code != stdhttp.StatusOK {
		t.Fatalf("own email: status = %d, want 200", rec.Code)
	}
}
