package repository

import (
	"testing"
	"time"

	"ossu_arabic_backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserProgress{}))
	return db
}

func TestUpsertInsertsThenOverwrites(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	first := &model.UserProgress{
		UserID:    "u1",
		CourseID:  "c1",
		LessonID:  "l1",
		Progress:  40,
		Completed: false,
		Timestamp: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Upsert(first))

	second := &model.UserProgress{
		UserID:    "u1",
		CourseID:  "c1",
		LessonID:  "l1",
		Progress:  100,
		Completed: true,
		TimeSpent: 1200,
		Timestamp: time.Now(),
	}
	require.NoError(t, repo.Upsert(second))

	rows, err := repo.FindByUser("u1")
	require.NoError(t, err)
	require.Len(t, rows, 1, "conflicting upsert must overwrite, not duplicate")
	assert.Equal(t, 100, rows[0].Progress)
	assert.True(t, rows[0].Completed)
	assert.Equal(t, 1200, rows[0].TimeSpent)
}

func TestFindByUserAndCourseOrdering(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	base := time.Now()
	for i, lesson := range []string{"l1", "l2", "l3"} {
		require.NoError(t, repo.Upsert(&model.UserProgress{
			UserID:    "u1",
			CourseID:  "c1",
			LessonID:  lesson,
			Progress:  100,
			Completed: true,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Upsert(&model.UserProgress{
		UserID:   "u1",
		CourseID: "c2",
		LessonID: "other",
	}))

	rows, err := repo.FindByUserAndCourse("u1", "c1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "l3", rows[0].LessonID, "rows come back newest first")
	assert.Equal(t, "l1", rows[2].LessonID)
}

func TestBuildMapping(t *testing.T) {
	now := time.Now()
	rows := []model.UserProgress{
		{UserID: "u1", CourseID: "c1", LessonID: "l1", Progress: 100, Completed: true, Timestamp: now},
		{UserID: "u1", CourseID: "c1", LessonID: "l2", Progress: 30, Completed: false, Timestamp: now},
		{UserID: "u1", CourseID: "c2", LessonID: "l1", Progress: 70, Completed: false, TimeSpent: 300, Timestamp: now},
	}

	mapping := BuildMapping(rows)
	require.Len(t, mapping, 2)
	require.Len(t, mapping["c1"], 2)

	assert.True(t, mapping["c1"]["l1"].Completed)
	assert.Equal(t, 30, mapping["c1"]["l2"].Progress)
	assert.Equal(t, 300, mapping["c2"]["l1"].TimeSpent)

	assert.Empty(t, BuildMapping(nil))
}
