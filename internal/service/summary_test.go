package service

import (
	"testing"
	"time"

	"ossu_arabic_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func lessonAt(completed bool, ts time.Time) model.LessonProgress {
	progress := 0
	if completed {
		progress = 100
	}
	return model.LessonProgress{Progress: progress, Completed: completed, Timestamp: ts}
}

func TestSummarizeEmptyMapping(t *testing.T) {
	assert.Equal(t, ProgressSummary{}, Summarize(nil))
	assert.Equal(t, ProgressSummary{}, Summarize(model.ProgressMapping{}))
}

func TestSummarizeHalfCompletedCourse(t *testing.T) {
	now := time.Now()
	mapping := model.ProgressMapping{
		"courseA": {
			"lessonA": lessonAt(true, now),
			"lessonB": lessonAt(false, now),
		},
	}

	s := Summarize(mapping)
	assert.Equal(t, 1, s.TotalCourses)
	assert.Equal(t, 2, s.TotalLessons)
	assert.Equal(t, 1, s.CompletedLessons)
	assert.Equal(t, 50, s.OverallProgress)
	assert.Equal(t, 0, s.CompletedCourses, "0.5 is below the completion threshold")
	assert.Equal(t, 10, s.Points)
}

func TestSummarizeThresholdMetExactly(t *testing.T) {
	now := time.Now()
	mapping := model.ProgressMapping{
		"courseA": {
			"l1": lessonAt(true, now),
			"l2": lessonAt(true, now),
			"l3": lessonAt(true, now),
			"l4": lessonAt(true, now),
			"l5": lessonAt(false, now),
		},
	}

	s := Summarize(mapping)
	assert.Equal(t, 1, s.CompletedCourses, "4 of 5 meets the 0.8 threshold exactly")
	assert.Equal(t, 100+4*10, s.Points)
	assert.Equal(t, 80, s.OverallProgress)
}

func TestSummarizeZeroLessonCourseNeverComplete(t *testing.T) {
	mapping := model.ProgressMapping{
		"empty": {},
	}

	s := Summarize(mapping)
	assert.Equal(t, 1, s.TotalCourses)
	assert.Equal(t, 0, s.TotalLessons)
	assert.Equal(t, 0, s.CompletedCourses)
	assert.Equal(t, 0, s.OverallProgress)
	assert.Equal(t, 0, s.Points)
}

func TestSummarizePointsFormula(t *testing.T) {
	now := time.Now()
	mapping := model.ProgressMapping{
		"done": {
			"l1": lessonAt(true, now),
			"l2": lessonAt(true, now),
		},
		"partial": {
			"l1": lessonAt(true, now),
			"l2": lessonAt(false, now),
			"l3": lessonAt(false, now),
		},
	}

	s := Summarize(mapping)
	assert.Equal(t, 1, s.CompletedCourses)
	assert.Equal(t, 3, s.CompletedLessons)
	assert.Equal(t, 100*s.CompletedCourses+10*s.CompletedLessons, s.Points)
}

func TestSummarizeOverallProgressRounding(t *testing.T) {
	now := time.Now()
	// 1 of 3 lessons = 33.33 -> 33; 2 of 3 = 66.67 -> 67
	oneOfThree := model.ProgressMapping{
		"c": {
			"l1": lessonAt(true, now),
			"l2": lessonAt(false, now),
			"l3": lessonAt(false, now),
		},
	}
	assert.Equal(t, 33, Summarize(oneOfThree).OverallProgress)

	twoOfThree := model.ProgressMapping{
		"c": {
			"l1": lessonAt(true, now),
			"l2": lessonAt(true, now),
			"l3": lessonAt(false, now),
		},
	}
	assert.Equal(t, 67, Summarize(twoOfThree).OverallProgress)
}

func TestSummarizeOverallProgressBounds(t *testing.T) {
	now := time.Now()
	all := model.ProgressMapping{
		"c": {
			"l1": lessonAt(true, now),
			"l2": lessonAt(true, now),
		},
	}
	s := Summarize(all)
	assert.Equal(t, 100, s.OverallProgress)

	none := model.ProgressMapping{
		"c": {
			"l1": lessonAt(false, now),
			"l2": lessonAt(false, now),
		},
	}
	assert.Equal(t, 0, Summarize(none).OverallProgress)
}

func TestStreakSingleDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	mapping := model.ProgressMapping{
		"c": {
			"l1": lessonAt(true, now.Add(-2*time.Hour)),
		},
	}
	assert.Equal(t, 1, summarizeAt(mapping, now).Streak)
}

func TestStreakTwoDaysThenGap(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	mapping := model.ProgressMapping{
		"c": {
			"today":     lessonAt(true, now),
			"yesterday": lessonAt(true, now.AddDate(0, 0, -1)),
			"lastWeek":  lessonAt(true, now.AddDate(0, 0, -7)),
		},
	}
	assert.Equal(t, 2, summarizeAt(mapping, now).Streak)
}

func TestStreakSameDayDuplicatesCountOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	mapping := model.ProgressMapping{
		"c": {
			"l1": lessonAt(true, now.Add(-1*time.Hour)),
			"l2": lessonAt(true, now.Add(-2*time.Hour)),
			"l3": lessonAt(true, now.Add(-3*time.Hour)),
		},
	}
	assert.Equal(t, 1, summarizeAt(mapping, now).Streak)
}

func TestStreakBrokenByGapBeforeToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	mapping := model.ProgressMapping{
		"c": {
			"old": lessonAt(true, now.AddDate(0, 0, -3)),
		},
	}
	assert.Equal(t, 0, summarizeAt(mapping, now).Streak)
}

func TestStreakAcrossCourses(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	mapping := model.ProgressMapping{
		"courseA": {
			"l1": lessonAt(true, now),
		},
		"courseB": {
			"l1": lessonAt(true, now.AddDate(0, 0, -1)),
			"l2": lessonAt(true, now.AddDate(0, 0, -2)),
		},
	}
	assert.Equal(t, 3, summarizeAt(mapping, now).Streak)
}

func TestStreakNoTimestamps(t *testing.T) {
	mapping := model.ProgressMapping{
		"c": {
			"l1": {Progress: 50, Completed: false},
		},
	}
	assert.Equal(t, 0, Summarize(mapping).Streak)
}

func TestStreakMonotoneInGap(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	prev := -1
	for gap := 1; gap <= 5; gap++ {
		mapping := model.ProgressMapping{
			"c": {
				"today": lessonAt(true, now),
				"older": lessonAt(true, now.AddDate(0, 0, -gap)),
			},
		}
		streak := summarizeAt(mapping, now).Streak
		if prev >= 0 {
			assert.LessOrEqual(t, streak, prev, "streak must not grow as the gap widens")
		}
		prev = streak
	}
}
