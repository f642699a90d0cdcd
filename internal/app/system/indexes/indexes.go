// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names owned by this service.
const (
	InstitutionsCollection = "institutions"
	ClassroomsCollection   = "classrooms"
)

/*
EnsureAll is called from EnsureSchema at startup. Each ensure* function is
idempotent; problems are collected so every failing collection is reported.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureInstitutions(ctx, db); err != nil {
		problems = append(problems, InstitutionsCollection+": "+err.Error())
	}
	if err := ensureClassrooms(ctx, db); err != nil {
		problems = append(problems, ClassroomsCollection+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureInstitutions(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(InstitutionsCollection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Active/inactive listings sorted by name.
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "name_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_institutions_status_nameci_id"),
		},
		// Unfiltered listing.
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_institutions_nameci_id"),
		},
		{
			Keys:    bson.D{{Key: "director_id", Value: 1}},
			Options: options.Index().SetName("idx_institutions_director"),
		},
	})
}

func ensureClassrooms(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(ClassroomsCollection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "institution_id", Value: 1}},
			Options: options.Index().SetName("idx_classrooms_institution"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "name_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_classrooms_status_nameci_id"),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Reconcile a set of desired indexes for one collection                      */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	return (a != nil && *a) == (b != nil && *b)
}

// isOptionsConflictErr reports IndexOptionsConflict, returned when the same
// keys already exist under a different name or with different options.
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 85 {
		return true
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := map[string]existingIndex{} // sig -> index
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out, cur.Err()
}

// recreate drops the index called oldName and creates m in its place.
func recreate(ctx context.Context, coll *mongo.Collection, oldName string, m mongo.IndexModel) error {
	if _, err := coll.Indexes().DropOne(ctx, oldName); err != nil {
		return fmt.Errorf("drop %s: %w", oldName, err)
	}
	if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	existing, err := listIndexes(ctx, coll)
	if err != nil {
		// A missing collection lists as empty on modern servers; anything
		// else is logged and we fall through to plain creation.
		zap.L().Warn("list indexes failed",
			zap.String("collection", coll.Name()),
			zap.Error(err))
		existing = map[string]existingIndex{}
	}

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()
		log := zap.L().With(
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig))

		ex, ok := existing[desiredSig]
		switch {
		case ok && sameBoolPtr(desiredUnique, ex.Unique) && (desiredName == "" || ex.Name == desiredName):
			log.Debug("reusing existing index")
			continue

		case ok:
			// Same keys, different name or options.
			if err := recreate(ctx, coll, ex.Name, m); err != nil {
				log.Warn("index recreate failed", zap.Error(err))
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				continue
			}
			log.Info("index recreated",
				zap.String("from", ex.Name),
				zap.Duration("took", time.Since(start)))
			continue
		}

		created, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil && isOptionsConflictErr(err) {
			// Another instance created it between our list and create.
			if fresh, lerr := listIndexes(ctx, coll); lerr == nil {
				if match, found := fresh[desiredSig]; found && sameBoolPtr(desiredUnique, match.Unique) {
					log.Info("reusing existing index (post-conflict)", zap.String("existing", match.Name))
					continue
				}
			}
		}
		if err != nil {
			log.Warn("index ensure failed",
				zap.Duration("took", time.Since(start)),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		log.Info("index ensured",
			zap.String("created_name", created),
			zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
