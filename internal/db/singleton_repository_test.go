package db

import (
	"testing"
	"time"

	"github.com/terraincognita07/vital/internal/models"
)

func TestProfileReadBeforeFirstUpsert(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(newTestDatabase(t))

	_, found, err := repos.Profile.Read()
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if found {
		t.Fatal("expected no profile before first upsert")
	}
}

func TestProfileUpsertKeepsSingleRowWithLastWrite(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	repos := NewRepositories(database)

	first := models.Profile{
		Name:     stringPtr("Alex"),
		Age:      int64Ptr(30),
		HeightCM: float64Ptr(180),
		WeightKG: float64Ptr(81),
	}
	if err := repos.Profile.Upsert(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	stored, found, err := repos.Profile.Read()
	if err != nil || !found {
		t.Fatalf("read after first upsert: found=%v err=%v", found, err)
	}
	firstStamp := stored.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	second := models.Profile{
		Name:     stringPtr("Sam"),
		HeightCM: float64Ptr(175),
	}
	if err := repos.Profile.Upsert(second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := database.Model(&models.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count profile rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one profile row, got %d", count)
	}

	stored, found, err = repos.Profile.Read()
	if err != nil || !found {
		t.Fatalf("read after second upsert: found=%v err=%v", found, err)
	}
	if stored.Name == nil || *stored.Name != "Sam" {
		t.Fatalf("expected last-write name Sam, got %v", stored.Name)
	}
	// The replace covers every field: age was present in the first write and
	// absent in the second, so it must now be null.
	if stored.Age != nil {
		t.Fatalf("expected age replaced with null, got %d", *stored.Age)
	}
	if !stored.UpdatedAt.After(firstStamp) {
		t.Fatalf("expected updated_at to increase: first=%v second=%v", firstStamp, stored.UpdatedAt)
	}
}

func TestGoalsUpsertAndRead(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(newTestDatabase(t))

	_, found, err := repos.Goals.Read()
	if err != nil {
		t.Fatalf("read goals: %v", err)
	}
	if found {
		t.Fatal("expected no goals before first upsert")
	}

	goals := models.Goals{
		StepsGoal: int64Ptr(8000),
		WaterGoal: int64Ptr(2000),
		SleepGoal: float64Ptr(8),
	}
	if err := repos.Goals.Upsert(goals); err != nil {
		t.Fatalf("upsert goals: %v", err)
	}

	stored, found, err := repos.Goals.Read()
	if err != nil || !found {
		t.Fatalf("read after upsert: found=%v err=%v", found, err)
	}
	if stored.ID != models.SingletonID {
		t.Fatalf("expected fixed id %d, got %d", models.SingletonID, stored.ID)
	}
	if stored.StepsGoal == nil || *stored.StepsGoal != 8000 {
		t.Fatalf("expected steps_goal 8000, got %v", stored.StepsGoal)
	}
	if stored.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at stamped on upsert")
	}
}
