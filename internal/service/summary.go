package service

import (
	"math"
	"sort"
	"time"

	"ossu_arabic_backend/internal/model"
)

// ProgressSummary is the aggregate view returned by the progress and
// profile endpoints.
type ProgressSummary struct {
	TotalCourses     int `json:"totalCourses"`
	CompletedCourses int `json:"completedCourses"`
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	OverallProgress  int `json:"overallProgress"`
	Streak           int `json:"streak"`
	Points           int `json:"points"`
}

// courseCompletionThreshold: a course counts as complete once 80% of its
// lessons are done. A course with no lessons is never complete.
const courseCompletionThreshold = 0.8

const (
	pointsPerCourse = 100
	pointsPerLesson = 10
)

// Summarize reduces a per-user progress mapping to its summary. Total over
// any well-formed input; an empty or nil mapping yields the zero summary.
func Summarize(mapping model.ProgressMapping) ProgressSummary {
	return summarizeAt(mapping, time.Now())
}

func summarizeAt(mapping model.ProgressMapping, now time.Time) ProgressSummary {
	var s ProgressSummary
	if len(mapping) == 0 {
		return s
	}

	s.TotalCourses = len(mapping)
	for _, lessons := range mapping {
		s.TotalLessons += len(lessons)

		courseCompleted := 0
		for _, lesson := range lessons {
			if lesson.Completed {
				courseCompleted++
			}
		}
		s.CompletedLessons += courseCompleted

		if len(lessons) > 0 &&
			float64(courseCompleted)/float64(len(lessons)) >= courseCompletionThreshold {
			s.CompletedCourses++
			s.Points += pointsPerCourse
		}
		s.Points += courseCompleted * pointsPerLesson
	}

	if s.TotalLessons > 0 {
		s.OverallProgress = int(math.Round(float64(s.CompletedLessons) / float64(s.TotalLessons) * 100))
	}

	s.Streak = streakAt(mapping, now)
	return s
}

// streakAt counts consecutive calendar days with activity, ending today or
// at the most recent active day before a gap. Timestamps are deduplicated
// to day granularity first so same-day activity never double-increments.
func streakAt(mapping model.ProgressMapping, now time.Time) int {
	today := dayOf(now)

	seen := map[time.Time]struct{}{}
	var days []time.Time
	for _, lessons := range mapping {
		for _, lesson := range lessons {
			if lesson.Timestamp.IsZero() {
				continue
			}
			day := dayOf(lesson.Timestamp.In(now.Location()))
			if _, ok := seen[day]; !ok {
				seen[day] = struct{}{}
				days = append(days, day)
			}
		}
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	for _, day := range days {
		offset := int(today.Sub(day).Hours() / 24)
		if offset == streak {
			streak++
		} else if offset > streak {
			break
		}
	}
	return streak
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
