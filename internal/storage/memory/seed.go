package memory

import (
	"context"
	"fmt"
	"time"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

func ptr[T any](v T) *T { return &v }

// Seed loads a small set of demo jobs, announcements, applications and
// contact messages so the API is not empty when running without a database.
func Seed(ctx context.Context, store *storage.Store) error {
	frontend, err := store.Jobs.Create(ctx, &dto.CreateJobRequest{
		Title:        "Senior Frontend Developer",
		Department:   "Engineering",
		Type:         "full-time",
		Location:     "Remote",
		SalaryMin:    ptr(80000),
		SalaryMax:    ptr(120000),
		Description:  "We are looking for a Senior Frontend Developer to join our team. You will be responsible for building user-facing features using React and TypeScript.",
		Requirements: "5+ years of experience with React, TypeScript, and modern frontend tools. Experience with state management libraries and testing frameworks.",
		Benefits:     ptr("Health insurance, 401k matching, flexible work hours, remote work options"),
		Skills:       []string{"React", "TypeScript", "JavaScript", "CSS", "HTML"},
	})
	if err != nil {
		return fmt.Errorf("seed: frontend job: %w", err)
	}

	backend, err := store.Jobs.Create(ctx, &dto.CreateJobRequest{
		Title:        "Backend Engineer",
		Department:   "Engineering",
		Type:         "full-time",
		Location:     "New York, NY",
		SalaryMin:    ptr(90000),
		SalaryMax:    ptr(140000),
		Description:  "Join our backend team to build scalable APIs and services. You'll work with Go, PostgreSQL, and cloud technologies.",
		Requirements: "3+ years of backend development experience. Strong knowledge of databases and API design.",
		Benefits:     ptr("Competitive salary, stock options, health benefits, learning budget"),
		Skills:       []string{"Go", "PostgreSQL", "API Design", "AWS", "Docker"},
	})
	if err != nil {
		return fmt.Errorf("seed: backend job: %w", err)
	}

	now := time.Now()
	announcements := []dto.CreateAnnouncementRequest{
		{
			Title:       "Company Expansion Announcement",
			Content:     "We're excited to announce that we are expanding to new markets! We'll be opening offices in three new cities this year.",
			Category:    "company-news",
			IsPublished: ptr(true),
			PublishedAt: ptr(now.Add(-24 * time.Hour)),
		},
		{
			Title:       "New Product Launch",
			Content:     "Our latest product feature is now live! This update includes improved performance and new collaboration tools.",
			Category:    "product-update",
			IsPublished: ptr(true),
			PublishedAt: ptr(now.Add(-72 * time.Hour)),
		},
	}
	for i := range announcements {
		if _, err := store.Announcements.Create(ctx, &announcements[i]); err != nil {
			return fmt.Errorf("seed: announcement: %w", err)
		}
	}

	if _, err := store.Applications.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:        frontend.ID,
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@example.com",
		PortfolioURL: ptr("https://johndoe.dev"),
		CoverLetter:  ptr("I am very interested in this position and believe my skills in React and TypeScript make me a great fit for your team."),
		ResumeURL:    ptr("https://example.com/resumes/john-doe-resume.pdf"),
	}); err != nil {
		return fmt.Errorf("seed: application: %w", err)
	}

	reviewing, err := store.Applications.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:       backend.ID,
		FirstName:   "Jane",
		LastName:    "Smith",
		Email:       "jane.smith@example.com",
		CoverLetter: ptr("I have extensive experience in backend development. I would love to contribute to your team's success."),
		ResumeURL:   ptr("https://example.com/resumes/jane-smith-resume.pdf"),
	})
	if err != nil {
		return fmt.Errorf("seed: application: %w", err)
	}
	if _, err := store.Applications.UpdateStatus(ctx, reviewing.ID, models.ApplicationStatusReviewing); err != nil {
		return fmt.Errorf("seed: application status: %w", err)
	}

	if _, err := store.ContactMessages.Create(ctx, &dto.CreateContactMessageRequest{
		Name:    "Sarah Wilson",
		Email:   "sarah.wilson@example.com",
		Subject: "Partnership Inquiry",
		Message: "Hi, I represent a software agency and we're interested in exploring partnership opportunities with your company.",
	}); err != nil {
		return fmt.Errorf("seed: contact message: %w", err)
	}

	return nil
}
