package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	StartMeeting(c *ginext.Context)
	EndMeeting(c *ginext.Context)
	RecordAttendance(c *ginext.Context)
	LeaveEvent(c *ginext.Context)
	SendCertificates(c *ginext.Context)
	GetTemplate(c *ginext.Context)
	SetTemplate(c *ginext.Context)
	DownloadCertificate(c *ginext.Context)
	ListEventCertificates(c *ginext.Context)
	ListMyCertificates(c *ginext.Context)
	ListEligibleAttendees(c *ginext.Context)
	ListNotifications(c *ginext.Context)
	MarkNotificationRead(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter wires the route table. Everything under /api except user
// registration requires a session; auth is passed separately so the
// ambient middlewares still cover the public routes.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	// Users: registration is open, the rest requires a session.
	api.POST("/users", h.CreateUser)

	authed := api.Group("")
	authed.Use(auth)
	{
		// Events
		authed.POST("/events", h.CreateEvent)
		authed.GET("/events", h.ListEvents)
		authed.GET("/events/:id", h.GetEvent)
		authed.PUT("/events/:id", h.UpdateEvent)
		authed.DELETE("/events/:id", h.DeleteEvent)

		// Meeting lifecycle
		authed.POST("/events/:id/start", h.StartMeeting)
		authed.POST("/events/:id/end", h.EndMeeting)

		// Attendance
		authed.POST("/events/:id/attendance", h.RecordAttendance)
		authed.POST("/events/:id/leave", h.LeaveEvent)

		// Certificates
		authed.POST("/events/:id/certificates/send", h.SendCertificates)
		authed.GET("/events/:id/certificates/template", h.GetTemplate)
		authed.POST("/events/:id/certificates/template", h.SetTemplate)
		authed.GET("/events/:id/certificates/download", h.DownloadCertificate)
		authed.GET("/events/:id/certificates", h.ListEventCertificates)
		authed.GET("/events/:id/certificates/attendees", h.ListEligibleAttendees)
		authed.GET("/certificates", h.ListMyCertificates)

		// Notifications
		authed.GET("/notifications", h.ListNotifications)
		authed.POST("/notifications/:id/read", h.MarkNotificationRead)

		// Users
		authed.GET("/users", h.ListUsers)
		authed.GET("/users/:id", h.GetUser)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
