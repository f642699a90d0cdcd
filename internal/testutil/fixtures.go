package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/institutionhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures inserts test documents directly, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// Institution returns an unsaved, fully populated active institution.
func Institution(name string) models.Institution {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.Institution{
		ID:     primitive.NewObjectID().Hex(),
		Status: models.StatusActive,
		InstitutionInformation: models.InstitutionInformation{
			InstitutionName:  name,
			CodeInstitution:  "COD-1",
			ModularCode:      "0123456",
			InstitutionType:  "PUBLICA",
			InstitutionLevel: "INICIAL",
			Gender:           "MIXTO",
			Slogan:           "Aprender jugando",
			LogoURL:          "https://example.edu/logo.png",
		},
		NameCI: text.Fold(name),
		Address: models.Address{
			Street:     "Av. Principal 123",
			District:   "Miraflores",
			Province:   "Lima",
			Department: "Lima",
			PostalCode: "15074",
		},
		ContactMethods: []models.ContactMethod{{Type: "EMAIL", Value: "info@example.edu"}},
		GradingType:    "LITERAL",
		ClassroomType:  "POR_EDAD",
		Schedules:      []models.Schedule{{Type: "MANANA", EntryTime: "08:00", ExitTime: "13:00"}},
		ClassroomIDs:   []string{},
		AuxiliaryIDs:   []string{},
		UGEL:           "UGEL 07",
		DRE:            "DRE Lima",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Classroom returns an unsaved active classroom belonging to institutionID.
func Classroom(institutionID, name string) models.Classroom {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.Classroom{
		ID:            primitive.NewObjectID().Hex(),
		InstitutionID: institutionID,
		Name:          name,
		NameCI:        text.Fold(name),
		Age:           "3",
		Capacity:      20,
		Color:         "azul",
		Status:        models.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CreateInstitution inserts an active institution with the given name.
func (f *Fixtures) CreateInstitution(ctx context.Context, name string) models.Institution {
	f.t.Helper()
	inst := Institution(name)
	if _, err := f.db.Collection("institutions").InsertOne(ctx, inst); err != nil {
		f.t.Fatalf("failed to create test institution: %v", err)
	}
	return inst
}

// CreateInactiveInstitution inserts a soft-deleted institution.
func (f *Fixtures) CreateInactiveInstitution(ctx context.Context, name string) models.Institution {
	f.t.Helper()
	inst := Institution(name)
	deleted := inst.CreatedAt
	inst.Status = models.StatusInactive
	inst.DeletedAt = &deleted
	if _, err := f.db.Collection("institutions").InsertOne(ctx, inst); err != nil {
		f.t.Fatalf("failed to create test institution: %v", err)
	}
	return inst
}

// CreateClassroom inserts an active classroom.
func (f *Fixtures) CreateClassroom(ctx context.Context, institutionID, name string) models.Classroom {
	f.t.Helper()
	cl := Classroom(institutionID, name)
	if _, err := f.db.Collection("classrooms").InsertOne(ctx, cl); err != nil {
		f.t.Fatalf("failed to create test classroom: %v", err)
	}
	return cl
}
