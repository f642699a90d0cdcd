// internal/app/store/institutions/institutionstore.go
package institutionstore

import (
	"context"
	"errors"

	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists institutions. It does no status filtering; callers decide
// what counts as active.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("institutions")}
}

// GetByID returns the institution with the given id, or nil when none exists.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Institution, error) {
	if id == "" {
		return nil, nil
	}
	var inst models.Institution
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&inst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("load institution", err)
	}
	return &inst, nil
}

// GetByIDs loads the institutions whose ids are listed. Missing ids are
// skipped and the result order is unspecified.
func (s *Store) GetByIDs(ctx context.Context, ids []string) ([]models.Institution, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperr.Storage("find institutions", err)
	}
	defer cur.Close(ctx)
	var out []models.Institution
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Storage("decode institutions", err)
	}
	return out, nil
}

// Save upserts inst by id, assigning a new id on first save, and returns
// the stored value.
func (s *Store) Save(ctx context.Context, inst models.Institution) (models.Institution, error) {
	if inst.ID == "" {
		inst.ID = primitive.NewObjectID().Hex()
	}
	inst.NameCI = text.Fold(inst.InstitutionInformation.InstitutionName)
	if inst.ClassroomIDs == nil {
		inst.ClassroomIDs = []string{}
	}
	if inst.AuxiliaryIDs == nil {
		inst.AuxiliaryIDs = []string{}
	}

	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": inst.ID}, inst, options.Replace().SetUpsert(true))
	if err != nil {
		return models.Institution{}, apperr.Storage("save institution", err)
	}
	return inst, nil
}

// List returns every institution, deleted or not, ordered by folded name.
func (s *Store) List(ctx context.Context) ([]models.Institution, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Storage("list institutions", err)
	}
	defer cur.Close(ctx)
	out := []models.Institution{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Storage("decode institutions", err)
	}
	return out, nil
}
