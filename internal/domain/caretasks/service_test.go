package caretasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"petplus/internal/adapters/storage/memory"
	"petplus/internal/domain/pets"
	"petplus/internal/platform/persistence"
	"petplus/internal/ports/kvstore"
)

// -------------------------
// Test helpers
// -------------------------

type testEnv struct {
	store kvstore.Store
	gw    *persistence.Gateway
	repo  *persistence.Collection[CareTask]
	svc   *Service
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	store := memory.NewStore()
	gw := persistence.NewGateway(store, nil)
	repo := persistence.NewCollection[CareTask](gw, CollectionKey)
	return testEnv{
		store: store,
		gw:    gw,
		repo:  repo,
		svc:   NewService(repo, nil),
	}
}

func (e testEnv) raw(t *testing.T) string {
	t.Helper()

	v, _, err := e.store.Get(context.Background(), CollectionKey)
	if err != nil {
		t.Fatalf("store get: %v", err)
	}
	return v
}

func sameTask(a, b CareTask) bool {
	return a.ID == b.ID &&
		a.PetID == b.PetID &&
		a.CareType == b.CareType &&
		a.Note == b.Note &&
		a.Date.Equal(b.Date) &&
		a.IsCompleted == b.IsCompleted
}

// -------------------------
// Constructors
// -------------------------

func TestNewTask_Defaults(t *testing.T) {
	before := time.Now()
	task := NewTask("pet-1", CareTypeWalk, "park")
	after := time.Now()

	if task.ID == "" {
		t.Fatalf("expected non-empty id")
	}
	if task.IsCompleted {
		t.Fatalf("expected isCompleted=false")
	}
	if task.Date.Before(before) || task.Date.After(after) {
		t.Fatalf("date %v outside [%v, %v]", task.Date, before, after)
	}
	if task.PetID != "pet-1" || task.CareType != CareTypeWalk || task.Note != "park" {
		t.Fatalf("fields not copied: %#v", task)
	}
}

func TestNewTask_NoValidation(t *testing.T) {
	task := NewTask("", CareType("grooming"), "")
	if task.CareType != "grooming" || task.PetID != "" {
		t.Fatalf("constructor must not validate, got %#v", task)
	}
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]CreateInput{
		"empty pet":         {PetID: " ", CareType: CareTypeFeeding},
		"unknown care type": {PetID: "pet-1", CareType: "grooming"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := env.svc.Create(context.Background(), in); err != ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Create_AllowsEmptyNote(t *testing.T) {
	env := newTestEnv(t)

	task, err := env.svc.Create(context.Background(), CreateInput{PetID: "pet-1", CareType: CareTypeMedication})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.Note != "" {
		t.Fatalf("expected empty note, got %q", task.Note)
	}
}

// -------------------------
// Today filter
// -------------------------

func TestToday_DayBoundaries(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, loc)

	yesterday := CareTask{ID: "yesterday", Date: time.Date(2025, 3, 9, 23, 59, 59, 0, loc)}
	early := CareTask{ID: "early", Date: time.Date(2025, 3, 10, 0, 0, 1, 0, loc)}
	late := CareTask{ID: "late", Date: time.Date(2025, 3, 10, 23, 59, 59, 0, loc)}
	tomorrow := CareTask{ID: "tomorrow", Date: time.Date(2025, 3, 11, 0, 0, 1, 0, loc)}

	got := Today([]CareTask{yesterday, early, late, tomorrow}, now)
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("expected [early late], got %#v", got)
	}
}

func TestToday_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, loc)

	// 02:00 UTC del 11 = 21:00 del 10 en UTC-5
	stored := CareTask{ID: "utc", Date: time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)}

	if got := Today([]CareTask{stored}, now); len(got) != 1 {
		t.Fatalf("expected task to be today in local time, got %#v", got)
	}
}

func TestService_Today(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	loc := time.FixedZone("UTC+2", 2*60*60)
	day1 := time.Date(2025, 6, 1, 23, 59, 59, 0, loc)
	day2 := time.Date(2025, 6, 2, 0, 0, 1, 0, loc)

	env.svc.now = func() time.Time { return day1 }
	if _, err := env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: CareTypeWalk}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	env.svc.now = func() time.Time { return day2 }
	created, err := env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: CareTypeFeeding})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := env.svc.Today(ctx)
	if err != nil {
		t.Fatalf("Today error: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("expected only %s, got %#v", created.ID, got)
	}
}

// -------------------------
// Toggle
// -------------------------

func TestToggle_FlipsOnlyTarget(t *testing.T) {
	tasks := []CareTask{
		{ID: "a", IsCompleted: false},
		{ID: "b", IsCompleted: false},
		{ID: "c", IsCompleted: true},
	}

	out, found := Toggle(tasks, "b")
	if !found {
		t.Fatalf("expected found")
	}
	if out[0].IsCompleted || !out[1].IsCompleted || !out[2].IsCompleted {
		t.Fatalf("unexpected result %#v", out)
	}
	if tasks[1].IsCompleted {
		t.Fatalf("input slice must not be modified")
	}
}

func TestService_Toggle_Middle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var created []CareTask
	for _, ct := range []CareType{CareTypeFeeding, CareTypeWalk, CareTypeMedication} {
		task, err := env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: ct})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		created = append(created, task)
	}

	toggled, err := env.svc.Toggle(ctx, created[1].ID)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !toggled.IsCompleted {
		t.Fatalf("expected toggled task to be completed")
	}

	stored, err := env.svc.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for i, task := range stored {
		want := created[i]
		if i == 1 {
			want.IsCompleted = true
		}
		if !sameTask(task, want) {
			t.Fatalf("task %d: expected %#v, got %#v", i, want, task)
		}
	}
}

func TestService_Toggle_UnknownID_StoreUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: CareTypeWalk, Note: "n"}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	before := env.raw(t)

	if _, err := env.svc.Toggle(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if after := env.raw(t); after != before {
		t.Fatalf("store changed:\nbefore=%s\nafter=%s", before, after)
	}
}

func TestService_Toggle_Twice_RestoresState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, _ := env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: CareTypeWalk})
	_, _ = env.svc.Toggle(ctx, task.ID)
	back, err := env.svc.Toggle(ctx, task.ID)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if back.IsCompleted {
		t.Fatalf("expected isCompleted=false after two toggles")
	}
}

// -------------------------
// Delete
// -------------------------

func TestService_DeleteByPet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _ = env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: CareTypeWalk})
	keep, _ := env.svc.Create(ctx, CreateInput{PetID: "pet-2", CareType: CareTypeWalk})
	_, _ = env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: CareTypeFeeding})

	n, err := env.svc.DeleteByPet(ctx, "pet-1")
	if err != nil {
		t.Fatalf("DeleteByPet error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}

	items, _ := env.svc.List(ctx)
	if len(items) != 1 || items[0].ID != keep.ID {
		t.Fatalf("expected only %s left, got %#v", keep.ID, items)
	}
}

func TestService_DeleteByPet_NothingToRemove_NoWrite(t *testing.T) {
	env := newTestEnv(t)

	n, err := env.svc.DeleteByPet(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("DeleteByPet error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 removed, got %d", n)
	}
	if _, found, _ := env.store.Get(context.Background(), CollectionKey); found {
		t.Fatalf("expected no write when nothing was removed")
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	env := newTestEnv(t)

	if err := env.svc.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// -------------------------
// Views
// -------------------------

func TestBuildViews_UnknownPetFallback(t *testing.T) {
	tasks := []CareTask{
		{ID: "a", PetID: "pet-1", CareType: CareTypeFeeding},
		{ID: "b", PetID: "gone", CareType: CareTypeMedication},
	}

	views := BuildViews(tasks, map[string]string{"pet-1": "Buddy"})
	if views[0].PetName != "Buddy" || views[0].CareLabel != "Feeding" {
		t.Fatalf("unexpected view %#v", views[0])
	}
	if views[1].PetName != UnknownPetName || views[1].CareLabel != "Medication" {
		t.Fatalf("unexpected view %#v", views[1])
	}
}

// -------------------------
// Scenario
// -------------------------

func TestScenario_Buddy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	petsSvc := pets.NewService(
		persistence.NewCollection[pets.Pet](env.gw, pets.CollectionKey),
		env.svc,
		pets.CascadeTasks,
		nil,
	)

	pet, err := petsSvc.Create(ctx, pets.CreateInput{Name: "Buddy", Type: "Dog", Age: 3})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	task, err := env.svc.Create(ctx, CreateInput{PetID: pet.ID, CareType: CareTypeFeeding, Note: "2 cups"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.PetID != pet.ID {
		t.Fatalf("expected petId %s, got %s", pet.ID, task.PetID)
	}
	if task.IsCompleted {
		t.Fatalf("expected new task not completed")
	}

	toggled, err := env.svc.Toggle(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	want := task
	want.IsCompleted = true
	if !sameTask(toggled, want) {
		t.Fatalf("expected %#v, got %#v", want, toggled)
	}

	// releer desde el store: lo mismo quedó persistido
	stored, err := env.svc.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !sameTask(stored, want) {
		t.Fatalf("stored task mismatch: %#v", stored)
	}

	// borrar la mascota arrastra sus tareas
	if err := petsSvc.Delete(ctx, pet.ID); err != nil {
		t.Fatalf("delete pet: %v", err)
	}
	items, _ := env.svc.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected tasks removed by cascade, got %#v", items)
	}
}

// -------------------------
// Stored shape
// -------------------------

func TestService_Create_OverInvalidTasks_FailsAndKeepsData(t *testing.T) {
	cases := map[string]string{
		"empty object": `[{}]`,
		"null item":    `[null]`,
		"without date": `[{"id":"a","petId":"pet-1","careType":"walk","note":"","isCompleted":false}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			if err := env.store.Set(ctx, CollectionKey, raw); err != nil {
				t.Fatalf("seed: %v", err)
			}

			_, err := env.svc.Create(ctx, CreateInput{PetID: "pet-1", CareType: CareTypeWalk})
			if !errors.Is(err, persistence.ErrMalformedData) {
				t.Fatalf("expected ErrMalformedData, got %v", err)
			}
			if got := env.raw(t); got != raw {
				t.Fatalf("stored value changed: %q", got)
			}
		})
	}
}
