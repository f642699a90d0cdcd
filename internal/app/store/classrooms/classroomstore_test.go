package classroomstore_test

import (
	"testing"
	"time"

	classroomstore "github.com/dalemusser/institutionhub/internal/app/store/classrooms"
	"github.com/dalemusser/institutionhub/internal/testutil"
)

func TestStore_SaveAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classroomstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := testutil.Classroom("inst-1", "Sala 1")
	cl.ID = ""

	saved, err := store.Save(ctx, cl)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if saved.NameCI != "sala 1" {
		t.Errorf("NameCI = %q", saved.NameCI)
	}

	got, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected classroom")
	}
	if got.InstitutionID != "inst-1" || got.Capacity != 20 || got.Age != "3" {
		t.Errorf("unexpected classroom: %+v", got)
	}
}

func TestStore_GetByID_ReturnsDeleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classroomstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := testutil.Classroom("inst-1", "Sala 2")
	now := time.Now().UTC().Truncate(time.Millisecond)
	cl.Status = "INACTIVE"
	cl.DeletedAt = &now
	if _, err := store.Save(ctx, cl); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil || got.DeletedAt == nil {
		t.Fatalf("expected soft-deleted classroom to be returned, got %+v", got)
	}
}

func TestStore_GetByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classroomstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.GetByID(ctx, "nope")
	if err != nil || got != nil {
		t.Errorf("GetByID(missing) = %v, %v", got, err)
	}
}

func TestStore_GetByIDsAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classroomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fx.CreateClassroom(ctx, "inst-1", "Sala B")
	b := fx.CreateClassroom(ctx, "inst-1", "sala a")
	fx.CreateClassroom(ctx, "inst-2", "Sala C")

	got, err := store.GetByIDs(ctx, []string{a.ID, b.ID})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 classrooms, got %d", len(got))
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 classrooms, got %d", len(all))
	}
	if all[0].Name != "sala a" || all[1].Name != "Sala B" || all[2].Name != "Sala C" {
		t.Errorf("unexpected order: %q %q %q", all[0].Name, all[1].Name, all[2].Name)
	}
}
