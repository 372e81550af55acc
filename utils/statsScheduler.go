package utils

import (
	"log"
	"talenta/config"
	"talenta/storage"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RefreshCourseStats recomputes the denormalized enrollment count and
// average rating for one course and overwrites them. The counters are
// derived values; this is the only write path for them.
func RefreshCourseStats(courseId uint) {
	count, err := storage.Store.CountCourseEnrollments(courseId)
	if err != nil {
		logScheduler("Error counting enrollments: " + err.Error())
		return
	}

	rating, err := storage.Store.AverageCourseRating(courseId)
	if err != nil {
		logScheduler("Error averaging ratings: " + err.Error())
		return
	}

	if err := storage.Store.UpdateCourseStats(courseId, int(count), rating); err != nil {
		logScheduler("Error updating course stats: " + err.Error())
	}
}

// refreshAllCourseStats walks the whole catalog
func refreshAllCourseStats() {
	courses, err := storage.Store.GetCourses("", "", false)
	if err != nil {
		logScheduler("Error fetching courses: " + err.Error())
		return
	}

	for _, course := range courses {
		RefreshCourseStats(course.ID)
	}
	logScheduler("Course stats refreshed")
}

// InitializeStatsScheduler starts the periodic aggregation job that
// keeps enrollment counts and ratings from drifting.
func InitializeStatsScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.StatsCronSpec, refreshAllCourseStats); err != nil {
		log.Fatalf("Failed to schedule stats job: %v", err)
	}

	c.Start()
	logScheduler("Stats scheduler started (" + config.AppConfig.StatsCronSpec + ")")
	return c
}
