// internal/app/store/classrooms/classroomstore.go
package classroomstore

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

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("classrooms")}
}

// GetByID returns the classroom, deleted or not, or nil when none exists.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Classroom, error) {
	if id == "" {
		return nil, nil
	}
	var cl models.Classroom
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("load classroom", err)
	}
	return &cl, nil
}

// GetByIDs loads classrooms in one query. Order is unspecified.
func (s *Store) GetByIDs(ctx context.Context, ids []string) ([]models.Classroom, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperr.Storage("find classrooms", err)
	}
	defer cur.Close(ctx)
	var out []models.Classroom
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Storage("decode classrooms", err)
	}
	return out, nil
}

func (s *Store) Save(ctx context.Context, cl models.Classroom) (models.Classroom, error) {
	if cl.ID == "" {
		cl.ID = primitive.NewObjectID().Hex()
	}
	cl.NameCI = text.Fold(cl.Name)

	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": cl.ID}, cl, options.Replace().SetUpsert(true))
	if err != nil {
		return models.Classroom{}, apperr.Storage("save classroom", err)
	}
	return cl, nil
}

func (s *Store) List(ctx context.Context) ([]models.Classroom, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Storage("list classrooms", err)
	}
	defer cur.Close(ctx)
	out := []models.Classroom{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Storage("decode classrooms", err)
	}
	return out, nil
}
