// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	SubmitApplication(c *gin.Context)
	SubmitApplicationForJob(c *gin.Context)
	ListApplications(c *gin.Context)
	ListApplicationsForJob(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
}

// AnnouncementHandlerInterface defines the methods needed by the announcement routes.
type AnnouncementHandlerInterface interface {
	ListPublishedAnnouncements(c *gin.Context)
	ListAllAnnouncements(c *gin.Context)
	CreateAnnouncement(c *gin.Context)
	UpdateAnnouncement(c *gin.Context)
	DeleteAnnouncement(c *gin.Context)
}

// ContactHandlerInterface defines the methods needed by the contact routes.
type ContactHandlerInterface interface {
	SubmitContactMessage(c *gin.Context)
	ListContactMessages(c *gin.Context)
	UpdateContactMessageStatus(c *gin.Context)
	DeleteContactMessage(c *gin.Context)
}

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetCurrentUser(c *gin.Context)
}

// AdminHandlerInterface defines the methods needed by the admin routes.
type AdminHandlerInterface interface {
	Summary(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ AnnouncementHandlerInterface = (*AnnouncementHandler)(nil)
var _ ContactHandlerInterface = (*ContactHandler)(nil)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ AdminHandlerInterface = (*AdminHandler)(nil)
