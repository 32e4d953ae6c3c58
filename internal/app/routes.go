package app

import (
	"github.com/gorilla/mux"
	"github.com/vivektiwari660/edx-platform/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar sync
	r.HandleFunc("/api/calendar_sync/course/{courseKey}/assignments.ics", deps.ICSFeedHandler.CourseAssignments).Methods("GET")
	r.HandleFunc("/api/calendar_sync/course/{courseKey}/start.ics", deps.ICSFeedHandler.CourseStart).Methods("GET")

	// Courses
	r.HandleFunc("/api/course", deps.CourseHandler.CreateCourse).Methods("POST")
	r.HandleFunc("/api/course/{courseKey}", deps.CourseHandler.GetCourse).Methods("GET")

	// Assignments
	r.HandleFunc("/api/course/{courseKey}/assignment", deps.AssignmentHandler.RegisterAssignment).Methods("POST")
	r.HandleFunc("/api/course/{courseKey}/assignment", deps.AssignmentHandler.GetAssignments).Methods("GET")

	// Site configuration
	r.HandleFunc("/api/site-configuration/{domain}", deps.SiteConfigHandler.GetConfiguration).Methods("GET")
	r.HandleFunc("/api/site-configuration/{domain}", deps.SiteConfigHandler.StoreConfiguration).Methods("PUT")

	// User management
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
}
