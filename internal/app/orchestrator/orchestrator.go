// Package orchestrator keeps institutions, their classrooms, and the
// director records held by the user service consistent with each other.
//
// Nothing here is transactional. Multi-step writes run in a fixed order and
// a failure part way through leaves the earlier steps committed: an
// institution without a director or classrooms, or a classroom whose
// institution never learned about it. Director changes are pushed to the
// user service best-effort; failures are logged and counted but never fail
// the local save.
package orchestrator

import (
	"context"
	"time"

	"github.com/dalemusser/institutionhub/internal/app/clients/userservice"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"go.uber.org/zap"
)

// InstitutionStore is the persistence the orchestrator needs for institutions.
// GetByID returns nil, nil when the institution does not exist.
type InstitutionStore interface {
	GetByID(ctx context.Context, id string) (*models.Institution, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Institution, error)
	Save(ctx context.Context, inst models.Institution) (models.Institution, error)
	List(ctx context.Context) ([]models.Institution, error)
}

type ClassroomStore interface {
	GetByID(ctx context.Context, id string) (*models.Classroom, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Classroom, error)
	Save(ctx context.Context, cl models.Classroom) (models.Classroom, error)
	List(ctx context.Context) ([]models.Classroom, error)
}

// UserGateway is the subset of the user service client used here. Lookups
// and updates return nil, nil when the user does not exist.
type UserGateway interface {
	CreateUser(ctx context.Context, req userservice.UserRequest) (*models.RemoteUser, error)
	GetUser(ctx context.Context, id string) (*models.RemoteUser, error)
	UpdateUser(ctx context.Context, id string, req userservice.UserRequest) (*models.RemoteUser, error)
}

// fanOutLimit caps concurrent per-institution work in list compositions.
const fanOutLimit = 8

type Orchestrator struct {
	institutions InstitutionStore
	classrooms   ClassroomStore
	users        UserGateway
	log          *zap.Logger
	now          func() time.Time
}

func New(institutions InstitutionStore, classrooms ClassroomStore, users UserGateway, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		institutions: institutions,
		classrooms:   classrooms,
		users:        users,
		log:          logger,
		now: func() time.Time {
			// Mongo keeps millisecond precision.
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}
