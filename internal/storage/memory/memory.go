// Package memory implements the storage repositories over process-local
// slices. It is the fallback adapter used when no database is configured
// (demos, tests) and must mirror every filter, sort and delete rule of the
// postgres adapter so the two stay drop-in interchangeable.
package memory

import (
	"sort"
	"sync"
	"time"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
)

// state holds all in-memory collections behind one lock. It is owned by the
// Store built in NewStore; there are no package-level singletons so tests can
// run against isolated instances.
type state struct {
	mu              sync.RWMutex
	users           []models.User
	jobs            []models.Job
	applications    []models.JobApplication
	announcements   []models.Announcement
	contactMessages []models.ContactMessage
}

// NewStore assembles an in-memory storage.Store.
func NewStore() *storage.Store {
	s := &state{}
	return &storage.Store{
		Users:           &userRepo{s},
		Jobs:            &jobRepo{s},
		Applications:    &applicationRepo{s},
		Announcements:   &announcementRepo{s},
		ContactMessages: &contactMessageRepo{s},
	}
}

// sortByCreatedAtDesc orders newest first; insertion order breaks ties.
func sortJobsByCreatedAtDesc(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}

func sortApplicationsByCreatedAtDesc(apps []models.JobApplication) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
}

func sortAnnouncementsByCreatedAtDesc(items []models.Announcement) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// sortAnnouncementsByPublishedAtDesc matches the postgres
// "ORDER BY published_at DESC NULLS LAST" semantics: items without a publish
// date fall back to the zero time and therefore sort last.
func sortAnnouncementsByPublishedAtDesc(items []models.Announcement) {
	at := func(a models.Announcement) time.Time {
		if a.PublishedAt == nil {
			return time.Time{}
		}
		return *a.PublishedAt
	}
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}

func sortContactMessagesByCreatedAtDesc(msgs []models.ContactMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
	})
}
