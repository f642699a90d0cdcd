// internal/app/features/classrooms/handler.go
package classrooms

import (
	"context"

	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"go.uber.org/zap"
)

type Service interface {
	ListAllClassrooms(ctx context.Context) ([]models.Classroom, error)
	ListActiveClassrooms(ctx context.Context) ([]models.Classroom, error)
	ListInactiveClassrooms(ctx context.Context) ([]models.Classroom, error)
	GetClassroom(ctx context.Context, id string) (models.Classroom, error)
	CreateClassroom(ctx context.Context, req orchestrator.CreateClassroomRequest) (models.Classroom, error)
	UpdateClassroom(ctx context.Context, id string, req orchestrator.UpdateClassroomRequest) (models.Classroom, error)
	DeleteClassroom(ctx context.Context, id string) (models.Classroom, error)
	RestoreClassroom(ctx context.Context, id string) (models.Classroom, error)
}

// Handler serves the classrooms API.
type Handler struct {
	Svc Service
	Log *zap.Logger
}

func NewHandler(svc Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}
