package orchestrator

import (
	"context"
	"slices"

	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"go.uber.org/zap"
)

func (o *Orchestrator) ListAllClassrooms(ctx context.Context) ([]models.Classroom, error) {
	return o.classrooms.List(ctx)
}

func (o *Orchestrator) ListActiveClassrooms(ctx context.Context) ([]models.Classroom, error) {
	return o.filterClassrooms(ctx, models.Classroom.IsActive)
}

func (o *Orchestrator) ListInactiveClassrooms(ctx context.Context) ([]models.Classroom, error) {
	return o.filterClassrooms(ctx, models.Classroom.IsInactive)
}

func (o *Orchestrator) filterClassrooms(ctx context.Context, keep func(models.Classroom) bool) ([]models.Classroom, error) {
	all, err := o.classrooms.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Classroom, 0, len(all))
	for _, cl := range all {
		if keep(cl) {
			out = append(out, cl)
		}
	}
	return out, nil
}

// GetClassroom returns a classroom that has not been soft-deleted.
func (o *Orchestrator) GetClassroom(ctx context.Context, id string) (models.Classroom, error) {
	cl, err := o.classrooms.GetByID(ctx, id)
	if err != nil {
		return models.Classroom{}, err
	}
	if cl == nil || cl.DeletedAt != nil {
		return models.Classroom{}, apperr.NotFound("classroom not found or deleted")
	}
	return *cl, nil
}

// CreateClassroom saves the classroom first and then appends it to its
// institution. When the institution does not exist the classroom stays
// saved and NotFound is returned.
func (o *Orchestrator) CreateClassroom(ctx context.Context, req CreateClassroomRequest) (models.Classroom, error) {
	now := o.now()
	cl, err := o.classrooms.Save(ctx, models.Classroom{
		InstitutionID: req.InstitutionID,
		Name:          clean(req.ClassroomName),
		Age:           clean(req.ClassroomAge),
		Capacity:      req.Capacity,
		Color:         clean(req.Color),
		Status:        models.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return models.Classroom{}, err
	}

	inst, err := o.institutions.GetByID(ctx, req.InstitutionID)
	if err != nil {
		return models.Classroom{}, err
	}
	if inst == nil {
		o.log.Warn("classroom saved for unknown institution",
			zap.String("classroom_id", cl.ID),
			zap.String("institution_id", req.InstitutionID))
		return models.Classroom{}, apperr.NotFound("institution not found with id: " + req.InstitutionID)
	}

	if !slices.Contains(inst.ClassroomIDs, cl.ID) {
		inst.ClassroomIDs = append(inst.ClassroomIDs, cl.ID)
		inst.UpdatedAt = o.now()
		if _, err := o.institutions.Save(ctx, *inst); err != nil {
			return models.Classroom{}, err
		}
	}
	return cl, nil
}

// UpdateClassroom changes name, age, capacity and color. The owning
// institution never changes.
func (o *Orchestrator) UpdateClassroom(ctx context.Context, id string, req UpdateClassroomRequest) (models.Classroom, error) {
	cl, err := o.GetClassroom(ctx, id)
	if err != nil {
		return models.Classroom{}, err
	}

	cl.Name = clean(req.ClassroomName)
	cl.Age = clean(req.ClassroomAge)
	cl.Capacity = req.Capacity
	cl.Color = clean(req.Color)
	cl.UpdatedAt = o.now()
	return o.classrooms.Save(ctx, cl)
}

// DeleteClassroom soft-deletes the classroom. Its id stays in the owning
// institution's classroom list. Deleting an already deleted classroom
// refreshes its deletion time.
func (o *Orchestrator) DeleteClassroom(ctx context.Context, id string) (models.Classroom, error) {
	cl, err := o.classrooms.GetByID(ctx, id)
	if err != nil {
		return models.Classroom{}, err
	}
	if cl == nil {
		return models.Classroom{}, apperr.NotFound("classroom not found")
	}

	now := o.now()
	cl.Status = models.StatusInactive
	cl.DeletedAt = &now
	cl.UpdatedAt = now
	return o.classrooms.Save(ctx, *cl)
}

func (o *Orchestrator) RestoreClassroom(ctx context.Context, id string) (models.Classroom, error) {
	cl, err := o.classrooms.GetByID(ctx, id)
	if err != nil {
		return models.Classroom{}, err
	}
	if cl == nil {
		return models.Classroom{}, apperr.NotFound("classroom not found")
	}
	if cl.DeletedAt == nil {
		return models.Classroom{}, apperr.AlreadyInState("classroom is already active")
	}

	cl.Status = models.StatusActive
	cl.DeletedAt = nil
	cl.UpdatedAt = o.now()
	return o.classrooms.Save(ctx, *cl)
}
