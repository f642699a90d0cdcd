package orchestrator

import (
	"context"
	"time"

	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// InstitutionView holds the institution fields shared by composed reads.
type InstitutionView struct {
	ID                     string                        `json:"institutionId"`
	InstitutionInformation models.InstitutionInformation `json:"institutionInformation"`
	Address                models.Address                `json:"address"`
	ContactMethods         []models.ContactMethod        `json:"contactMethods"`
	GradingType            string                        `json:"gradingType"`
	ClassroomType          string                        `json:"classroomType"`
	Schedules              []models.Schedule             `json:"schedules"`
	UGEL                   string                        `json:"ugel"`
	DRE                    string                        `json:"dre"`
	Status                 string                        `json:"status"`
	CreatedAt              time.Time                     `json:"createdAt"`
	UpdatedAt              time.Time                     `json:"updatedAt"`
	DeletedAt              *time.Time                    `json:"deletedAt"`
}

// InstitutionComplete is an institution with its classrooms loaded.
type InstitutionComplete struct {
	InstitutionView
	Classrooms   []models.Classroom `json:"classrooms"`
	DirectorID   string             `json:"directorId"`
	AuxiliaryIDs []string           `json:"auxiliaryIds"`
}

// InstitutionWithUsers is an institution with its classrooms, director and
// auxiliaries loaded. Director is nil when the user service does not know
// the stored director.
type InstitutionWithUsers struct {
	InstitutionView
	Classrooms  []models.Classroom  `json:"classrooms"`
	Director    *models.RemoteUser  `json:"director"`
	Auxiliaries []models.RemoteUser `json:"auxiliaries"`
}

func viewOf(inst models.Institution) InstitutionView {
	return InstitutionView{
		ID:                     inst.ID,
		InstitutionInformation: inst.InstitutionInformation,
		Address:                inst.Address,
		ContactMethods:         inst.ContactMethods,
		GradingType:            inst.GradingType,
		ClassroomType:          inst.ClassroomType,
		Schedules:              inst.Schedules,
		UGEL:                   inst.UGEL,
		DRE:                    inst.DRE,
		Status:                 inst.Status,
		CreatedAt:              inst.CreatedAt,
		UpdatedAt:              inst.UpdatedAt,
		DeletedAt:              inst.DeletedAt,
	}
}

// GetComplete loads one institution with its classrooms.
func (o *Orchestrator) GetComplete(ctx context.Context, id string) (InstitutionComplete, error) {
	inst, err := o.institutions.GetByID(ctx, id)
	if err != nil {
		return InstitutionComplete{}, err
	}
	if inst == nil {
		return InstitutionComplete{}, apperr.NotFound("institution not found")
	}
	return o.complete(ctx, *inst)
}

func (o *Orchestrator) ListAllComplete(ctx context.Context) ([]InstitutionComplete, error) {
	all, err := o.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return fanOut(ctx, all, o.complete)
}

func (o *Orchestrator) ListActiveComplete(ctx context.Context) ([]InstitutionComplete, error) {
	active, err := o.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return fanOut(ctx, active, o.complete)
}

func (o *Orchestrator) ListInactiveComplete(ctx context.Context) ([]InstitutionComplete, error) {
	inactive, err := o.ListInactive(ctx)
	if err != nil {
		return nil, err
	}
	return fanOut(ctx, inactive, o.complete)
}

// GetCompleteWithUsers loads one institution with classrooms and users.
func (o *Orchestrator) GetCompleteWithUsers(ctx context.Context, id string) (InstitutionWithUsers, error) {
	inst, err := o.institutions.GetByID(ctx, id)
	if err != nil {
		return InstitutionWithUsers{}, err
	}
	if inst == nil {
		return InstitutionWithUsers{}, apperr.NotFound("institution not found")
	}
	return o.withUsers(ctx, *inst)
}

func (o *Orchestrator) ListAllWithUsersAndClassrooms(ctx context.Context) ([]InstitutionWithUsers, error) {
	all, err := o.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return fanOut(ctx, all, o.withUsers)
}

// complete fetches the institution's classrooms in one batch.
func (o *Orchestrator) complete(ctx context.Context, inst models.Institution) (InstitutionComplete, error) {
	out := InstitutionComplete{
		InstitutionView: viewOf(inst),
		Classrooms:      []models.Classroom{},
		DirectorID:      inst.DirectorID,
		AuxiliaryIDs:    inst.AuxiliaryIDs,
	}
	if len(inst.ClassroomIDs) == 0 {
		return out, nil
	}
	cls, err := o.classrooms.GetByIDs(ctx, inst.ClassroomIDs)
	if err != nil {
		return InstitutionComplete{}, err
	}
	if cls != nil {
		out.Classrooms = cls
	}
	return out, nil
}

// withUsers fetches classrooms one by one, the director and every auxiliary
// concurrently and joins them once all have finished. Missing classrooms and
// users are dropped; any other failure fails the whole read.
func (o *Orchestrator) withUsers(ctx context.Context, inst models.Institution) (InstitutionWithUsers, error) {
	g, gctx := errgroup.WithContext(ctx)

	classrooms := make([]*models.Classroom, len(inst.ClassroomIDs))
	for i, id := range inst.ClassroomIDs {
		g.Go(func() error {
			cl, err := o.classrooms.GetByID(gctx, id)
			classrooms[i] = cl
			return err
		})
	}

	var director *models.RemoteUser
	if inst.DirectorID != "" {
		g.Go(func() error {
			u, err := o.users.GetUser(gctx, inst.DirectorID)
			director = u
			return err
		})
	}

	auxiliaries := make([]*models.RemoteUser, len(inst.AuxiliaryIDs))
	for i, id := range inst.AuxiliaryIDs {
		g.Go(func() error {
			u, err := o.users.GetUser(gctx, id)
			auxiliaries[i] = u
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return InstitutionWithUsers{}, err
	}

	return InstitutionWithUsers{
		InstitutionView: viewOf(inst),
		Classrooms:      compact(classrooms),
		Director:        director,
		Auxiliaries:     compact(auxiliaries),
	}, nil
}

// compact drops nil entries and dereferences the rest, keeping order.
func compact[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, p := range in {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// fanOut applies fn to every item concurrently, bounded by fanOutLimit, and
// returns the results in input order. The first error cancels the rest.
func fanOut[In, Out any](ctx context.Context, items []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, item := range items {
		g.Go(func() error {
			v, err := fn(gctx, item)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
