package mysql

import (
	"context"
	"errors"
	"testing"

	domain "loanlift-backend/internal/domain/user"

	"gorm.io/gorm"
)

func TestUser_CreateGetSave(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := &domain.Account{Email: "b@example.com", Name: "Borrower", Role: domain.RoleBorrower}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "b@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.Name != "Borrower" || got.Role != domain.RoleBorrower {
		t.Errorf("unexpected account: %+v", got)
	}

	got.Role = domain.RoleManager
	got.Suspended = true
	got.SuspendReason = "review"
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := repo.GetByEmail(ctx, "b@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if again.Role != domain.RoleManager || !again.Suspended {
		t.Errorf("update not persisted: %+v", again)
	}

	if _, err := repo.GetByEmail(ctx, "ghost@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing: want ErrRecordNotFound, got %v", err)
	}
}

func TestUser_List(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if err := repo.Create(ctx, &domain.Account{Email: email, Role: domain.RoleBorrower}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("List: %v %v", list, err)
	}
}
