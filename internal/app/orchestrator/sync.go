package orchestrator

import (
	"context"

	"github.com/dalemusser/institutionhub/internal/app/clients/userservice"
	"github.com/dalemusser/institutionhub/internal/app/system/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	branchUnlink = "unlink"
	branchLink   = "link"
)

// swapDirector unlinks oldID from the institution and links newID to it,
// concurrently. Each branch contains its own failures; swapDirector returns
// once both have finished.
func (o *Orchestrator) swapDirector(ctx context.Context, institutionID, oldID, newID string) {
	var g errgroup.Group
	g.Go(func() error {
		o.relinkUser(ctx, branchUnlink, oldID, "")
		return nil
	})
	g.Go(func() error {
		o.relinkUser(ctx, branchLink, newID, institutionID)
		return nil
	})
	_ = g.Wait()
}

// relinkUser rewrites the institution reference of one user. Failures are
// logged and counted, never returned.
func (o *Orchestrator) relinkUser(ctx context.Context, branch, userID, institutionID string) {
	log := o.log.With(
		zap.String("branch", branch),
		zap.String("user_id", userID),
		zap.String("institution_id", institutionID))

	if userID == "" {
		return
	}

	u, err := o.users.GetUser(ctx, userID)
	if err != nil {
		metrics.RecordDirectorSync(branch, metrics.OutcomeFailed)
		log.Error("director sync: lookup failed", zap.Error(err))
		return
	}
	if u == nil {
		metrics.RecordDirectorSync(branch, metrics.OutcomeNotFound)
		log.Warn("director sync: user not found")
		return
	}

	req := userservice.RequestFromUser(*u)
	req.InstitutionID = institutionID
	updated, err := o.users.UpdateUser(ctx, userID, req)
	switch {
	case err != nil:
		metrics.RecordDirectorSync(branch, metrics.OutcomeFailed)
		log.Error("director sync: update failed", zap.Error(err))
	case updated == nil:
		metrics.RecordDirectorSync(branch, metrics.OutcomeNotFound)
		log.Warn("director sync: user disappeared before update")
	default:
		metrics.RecordDirectorSync(branch, metrics.OutcomeOK)
		log.Info("director sync: done")
	}
}
