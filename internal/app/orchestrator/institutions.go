package orchestrator

import (
	"context"

	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"go.uber.org/zap"
)

// ListAll returns every institution, deleted or not.
func (o *Orchestrator) ListAll(ctx context.Context) ([]models.Institution, error) {
	return o.institutions.List(ctx)
}

// ListActive returns institutions that are ACTIVE and not soft-deleted.
func (o *Orchestrator) ListActive(ctx context.Context) ([]models.Institution, error) {
	return o.filterInstitutions(ctx, models.Institution.IsActive)
}

// ListInactive returns institutions that are INACTIVE or soft-deleted.
func (o *Orchestrator) ListInactive(ctx context.Context) ([]models.Institution, error) {
	return o.filterInstitutions(ctx, models.Institution.IsInactive)
}

func (o *Orchestrator) filterInstitutions(ctx context.Context, keep func(models.Institution) bool) ([]models.Institution, error) {
	all, err := o.institutions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Institution, 0, len(all))
	for _, inst := range all {
		if keep(inst) {
			out = append(out, inst)
		}
	}
	return out, nil
}

// CreateWithUsers saves the institution, creates its director in the user
// service, then creates the requested classrooms in request order.
//
// Steps commit one at a time. If the director cannot be created the
// institution stays saved without one; if a classroom fails the ones
// before it stay saved and the institution keeps an empty classroom list.
func (o *Orchestrator) CreateWithUsers(ctx context.Context, req CreateInstitutionRequest) (models.Institution, error) {
	if req.Director == nil {
		return models.Institution{}, apperr.Invalid("director is required")
	}

	now := o.now()
	inst := models.Institution{
		Status:                 models.StatusActive,
		InstitutionInformation: req.InstitutionInformation.model(),
		Address:                req.Address.model(),
		ContactMethods:         contactMethods(req.ContactMethods),
		GradingType:            req.GradingType,
		ClassroomType:          req.ClassroomType,
		Schedules:              schedules(req.Schedules),
		ClassroomIDs:           []string{},
		UGEL:                   req.UGEL,
		DRE:                    req.DRE,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	inst, err := o.institutions.Save(ctx, inst)
	if err != nil {
		return models.Institution{}, err
	}
	log := o.log.With(zap.String("institution_id", inst.ID))

	director, err := o.users.CreateUser(ctx, req.Director.userRequest(inst.ID))
	if err != nil {
		log.Error("director creation failed; institution left without director", zap.Error(err))
		return models.Institution{}, err
	}
	if director == nil || director.ID == "" {
		log.Error("user service returned no director id")
		return models.Institution{}, apperr.Remote("user service returned no director", nil)
	}

	inst.DirectorID = director.ID
	inst.AuxiliaryIDs = []string{}
	inst, err = o.institutions.Save(ctx, inst)
	if err != nil {
		return models.Institution{}, err
	}

	if len(req.Classrooms) == 0 {
		log.Info("institution created", zap.String("director_id", inst.DirectorID))
		return inst, nil
	}

	ids := make([]string, 0, len(req.Classrooms))
	for _, in := range req.Classrooms {
		cl, err := o.classrooms.Save(ctx, models.Classroom{
			InstitutionID: inst.ID,
			Name:          clean(in.ClassroomName),
			Age:           clean(in.ClassroomAge),
			Capacity:      in.Capacity,
			Color:         clean(in.Color),
			Status:        models.StatusActive,
			CreatedAt:     o.now(),
			UpdatedAt:     o.now(),
		})
		if err != nil {
			log.Error("classroom creation failed", zap.Int("created", len(ids)), zap.Error(err))
			return models.Institution{}, err
		}
		ids = append(ids, cl.ID)
	}

	inst.ClassroomIDs = ids
	inst, err = o.institutions.Save(ctx, inst)
	if err != nil {
		return models.Institution{}, err
	}
	log.Info("institution created",
		zap.String("director_id", inst.DirectorID),
		zap.Int("classrooms", len(ids)))
	return inst, nil
}

// UpdateInstitution overwrites the institution's fields. When the director
// changes, the old director is unlinked and the new one linked in the user
// service before the institution is saved; either call may fail without
// affecting the save.
func (o *Orchestrator) UpdateInstitution(ctx context.Context, id string, req UpdateInstitutionRequest) (models.Institution, error) {
	inst, err := o.institutions.GetByID(ctx, id)
	if err != nil {
		return models.Institution{}, err
	}
	if inst == nil {
		return models.Institution{}, apperr.NotFound("institution not found")
	}

	oldDirector := inst.DirectorID
	newDirector := req.DirectorID

	inst.InstitutionInformation = req.InstitutionInformation.model()
	inst.Address = req.Address.model()
	inst.ContactMethods = contactMethods(req.ContactMethods)
	inst.GradingType = req.GradingType
	inst.ClassroomType = req.ClassroomType
	inst.Schedules = schedules(req.Schedules)
	inst.DirectorID = newDirector
	inst.AuxiliaryIDs = req.AuxiliaryIDs
	if inst.AuxiliaryIDs == nil {
		inst.AuxiliaryIDs = []string{}
	}
	inst.UGEL = req.UGEL
	inst.DRE = req.DRE
	inst.UpdatedAt = o.now()

	if oldDirector != "" && oldDirector != newDirector {
		o.swapDirector(ctx, inst.ID, oldDirector, newDirector)
	}

	saved, err := o.institutions.Save(ctx, *inst)
	if err != nil {
		return models.Institution{}, err
	}
	return saved, nil
}

// DeleteInstitution soft-deletes the institution. Its classrooms and users
// are left untouched.
func (o *Orchestrator) DeleteInstitution(ctx context.Context, id string) (models.Institution, error) {
	inst, err := o.institutions.GetByID(ctx, id)
	if err != nil {
		return models.Institution{}, err
	}
	if inst == nil {
		return models.Institution{}, apperr.NotFound("institution not found")
	}
	if inst.DeletedAt != nil {
		return models.Institution{}, apperr.AlreadyInState("institution is already deleted")
	}

	now := o.now()
	inst.Status = models.StatusInactive
	inst.DeletedAt = &now
	inst.UpdatedAt = now
	return o.institutions.Save(ctx, *inst)
}

func (o *Orchestrator) RestoreInstitution(ctx context.Context, id string) (models.Institution, error) {
	inst, err := o.institutions.GetByID(ctx, id)
	if err != nil {
		return models.Institution{}, err
	}
	if inst == nil {
		return models.Institution{}, apperr.NotFound("institution not found")
	}
	if inst.DeletedAt == nil {
		return models.Institution{}, apperr.AlreadyInState("institution is not deleted")
	}

	inst.Status = models.StatusActive
	inst.DeletedAt = nil
	inst.UpdatedAt = o.now()
	return o.institutions.Save(ctx, *inst)
}
