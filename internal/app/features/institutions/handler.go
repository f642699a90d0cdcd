// internal/app/features/institutions/handler.go
package institutions

import (
	"context"

	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"go.uber.org/zap"
)

// Service is the orchestrator surface used by this feature.
type Service interface {
	ListAllComplete(ctx context.Context) ([]orchestrator.InstitutionComplete, error)
	ListActiveComplete(ctx context.Context) ([]orchestrator.InstitutionComplete, error)
	ListInactiveComplete(ctx context.Context) ([]orchestrator.InstitutionComplete, error)
	ListAllWithUsersAndClassrooms(ctx context.Context) ([]orchestrator.InstitutionWithUsers, error)
	GetComplete(ctx context.Context, id string) (orchestrator.InstitutionComplete, error)
	GetCompleteWithUsers(ctx context.Context, id string) (orchestrator.InstitutionWithUsers, error)
	CreateWithUsers(ctx context.Context, req orchestrator.CreateInstitutionRequest) (models.Institution, error)
	UpdateInstitution(ctx context.Context, id string, req orchestrator.UpdateInstitutionRequest) (models.Institution, error)
	DeleteInstitution(ctx context.Context, id string) (models.Institution, error)
	RestoreInstitution(ctx context.Context, id string) (models.Institution, error)
}

// Handler is the feature-level entry point for the institutions API.
type Handler struct {
	Svc Service
	Log *zap.Logger
}

func NewHandler(svc Service, logger *zap.Logger) *Handler {
	return &Handler{
		Svc: svc,
		Log: logger,
	}
}
