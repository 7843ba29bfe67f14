package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/storage/memory"
	"company-site-api/internal/transport/dto"
)

func ptr[T any](v T) *T { return &v }

func createTestJob(t *testing.T, store *storage.Store, title string) *models.Job {
	t.Helper()
	job, err := store.Jobs.Create(context.Background(), &dto.CreateJobRequest{
		Title:        title,
		Department:   "Engineering",
		Type:         "full-time",
		Location:     "Remote",
		Description:  "Build things",
		Requirements: "Go experience",
		Skills:       []string{"go", "postgres"},
	})
	require.NoError(t, err)
	return job
}

func TestJobRepo_CreateDefaults(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	job, err := store.Jobs.Create(ctx, &dto.CreateJobRequest{
		Title:        "Backend Engineer",
		Department:   "Engineering",
		Type:         "full-time",
		Location:     "Lisbon",
		SalaryMin:    ptr(60000),
		Description:  "APIs all day",
		Requirements: "Go",
		Skills:       []string{"go", "gin", "sql"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.True(t, job.IsActive, "jobs default to active")
	assert.Equal(t, []string{"go", "gin", "sql"}, job.Skills, "skills keep their order")
	assert.Nil(t, job.SalaryMax)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestJobRepo_ListActiveNewestFirst(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	first := createTestJob(t, store, "First")
	time.Sleep(2 * time.Millisecond)
	second := createTestJob(t, store, "Second")

	jobs, err := store.Jobs.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
}

func TestJobRepo_SoftDelete(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	job := createTestJob(t, store, "Doomed")
	keeper := createTestJob(t, store, "Keeper")

	require.NoError(t, store.Jobs.SoftDelete(ctx, job.ID))

	jobs, err := store.Jobs.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, keeper.ID, jobs[0].ID)

	// Still retrievable by id, flagged inactive.
	got, err := store.Jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// Deleting again, or deleting an unknown id, is a no-op.
	assert.NoError(t, store.Jobs.SoftDelete(ctx, job.ID))
	assert.NoError(t, store.Jobs.SoftDelete(ctx, uuid.New()))
}

func TestJobRepo_Update(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	job := createTestJob(t, store, "Old Title")

	updated, err := store.Jobs.Update(ctx, job.ID, &dto.UpdateJobRequest{
		Title:     ptr("New Title"),
		SalaryMax: ptr(90000),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 90000, *updated.SalaryMax)
	// Untouched fields survive.
	assert.Equal(t, "Engineering", updated.Department)
	assert.Equal(t, []string{"go", "postgres"}, updated.Skills)

	_, err = store.Jobs.Update(ctx, uuid.New(), &dto.UpdateJobRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestApplicationRepo_CreateForcesPending(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	job := createTestJob(t, store, "Hiring")

	app, err := store.Applications.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:     job.ID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
}

func TestApplicationRepo_CreateUnknownJob(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := store.Applications.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:     uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestApplicationRepo_ListAllWithJobTitle(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	job := createTestJob(t, store, "Platform Engineer")
	_, err := store.Applications.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:     job.ID,
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)

	apps, err := store.Applications.ListAllWithJobTitle(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Platform Engineer", apps[0].JobTitle)
	assert.Equal(t, job.ID, apps[0].JobID)
}

func TestApplicationRepo_ListAllIncludesSoftDeletedJobs(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	job := createTestJob(t, store, "Short Lived")
	_, err := store.Applications.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:     job.ID,
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.com",
	})
	require.NoError(t, err)

	// Soft delete keeps the job record, so the join still resolves.
	require.NoError(t, store.Jobs.SoftDelete(ctx, job.ID))

	apps, err := store.Applications.ListAllWithJobTitle(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Short Lived", apps[0].JobTitle)
}

func TestApplicationRepo_UpdateStatus(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	job := createTestJob(t, store, "Hiring")
	app, err := store.Applications.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:     job.ID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	updated, err := store.Applications.UpdateStatus(ctx, app.ID, models.ApplicationStatusReviewing)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusReviewing, updated.Status)

	_, err = store.Applications.UpdateStatus(ctx, uuid.New(), models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAnnouncementRepo_ListPublished(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)

	_, err := store.Announcements.Create(ctx, &dto.CreateAnnouncementRequest{
		Title: "Draft", Content: "c", Category: "news",
	})
	require.NoError(t, err)

	published1, err := store.Announcements.Create(ctx, &dto.CreateAnnouncementRequest{
		Title: "Older", Content: "c", Category: "news",
		IsPublished: ptr(true), PublishedAt: &older,
	})
	require.NoError(t, err)

	published2, err := store.Announcements.Create(ctx, &dto.CreateAnnouncementRequest{
		Title: "Newer", Content: "c", Category: "news",
		IsPublished: ptr(true), PublishedAt: &newer,
	})
	require.NoError(t, err)

	// Published but never dated: sorts after every dated item.
	dateless, err := store.Announcements.Create(ctx, &dto.CreateAnnouncementRequest{
		Title: "Dateless", Content: "c", Category: "news",
		IsPublished: ptr(true),
	})
	require.NoError(t, err)

	items, err := store.Announcements.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3, "drafts are excluded")
	assert.Equal(t, published2.ID, items[0].ID)
	assert.Equal(t, published1.ID, items[1].ID)
	assert.Equal(t, dateless.ID, items[2].ID)
}

func TestAnnouncementRepo_Delete(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	item, err := store.Announcements.Create(ctx, &dto.CreateAnnouncementRequest{
		Title: "Gone soon", Content: "c", Category: "news",
	})
	require.NoError(t, err)

	require.NoError(t, store.Announcements.Delete(ctx, item.ID))

	all, err := store.Announcements.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Hard delete is idempotent.
	assert.NoError(t, store.Announcements.Delete(ctx, item.ID))
	assert.NoError(t, store.Announcements.Delete(ctx, uuid.New()))
}

func TestContactMessageRepo(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	msg, err := store.ContactMessages.Create(ctx, &dto.CreateContactMessageRequest{
		Name: "Visitor", Email: "v@example.com", Subject: "Hi", Message: "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactMessageStatusUnread, msg.Status)

	updated, err := store.ContactMessages.UpdateStatus(ctx, msg.ID, models.ContactMessageStatusRead)
	require.NoError(t, err)
	assert.Equal(t, models.ContactMessageStatusRead, updated.Status)

	_, err = store.ContactMessages.UpdateStatus(ctx, uuid.New(), models.ContactMessageStatusRead)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.ContactMessages.Delete(ctx, msg.ID))
	msgs, err := store.ContactMessages.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	assert.NoError(t, store.ContactMessages.Delete(ctx, msg.ID))
}

func TestUserRepo_Upsert(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	id := uuid.New()
	created, err := store.Users.Upsert(ctx, &dto.UpsertUserRequest{
		ID:        id,
		Email:     ptr("admin@example.com"),
		FirstName: ptr("Admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", *created.Email)

	// Merge: nil fields keep the stored values.
	merged, err := store.Users.Upsert(ctx, &dto.UpsertUserRequest{
		ID:       id,
		LastName: ptr("User"),
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", *merged.Email)
	assert.Equal(t, "Admin", *merged.FirstName)
	assert.Equal(t, "User", *merged.LastName)

	byEmail, err := store.Users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	// A different user cannot take the same email.
	_, err = store.Users.Upsert(ctx, &dto.UpsertUserRequest{
		ID:    uuid.New(),
		Email: ptr("admin@example.com"),
	})
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestSeed(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, memory.Seed(ctx, store))

	jobs, err := store.Jobs.ListActive(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, jobs)

	apps, err := store.Applications.ListAllWithJobTitle(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, apps)
	for _, app := range apps {
		assert.NotEmpty(t, app.JobTitle)
	}

	announcements, err := store.Announcements.ListPublished(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, announcements)

	msgs, err := store.ContactMessages.ListAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, msgs)
}
