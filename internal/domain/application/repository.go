package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row; callers must be inside a tx.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	ListByEmail(ctx context.Context, email string) ([]Application, error)
	ListByStatus(ctx context.Context, s Status) ([]Application, error)
	Save(ctx context.Context, a *Application) error
}
