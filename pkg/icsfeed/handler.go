package icsfeed

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/vivektiwari660/edx-platform/pkg/course"
	"github.com/vivektiwari660/edx-platform/pkg/user"
)

type Handler struct {
	service       *Service
	courses       course.Service
	defaultDomain string
}

func NewHandler(service *Service, courses course.Service, defaultDomain string) *Handler {
	return &Handler{service: service, courses: courses, defaultDomain: defaultDomain}
}

// CourseAssignments streams one calendar document per assignment of the
// course, in provider order, for the user in the request context.
func (h *Handler) CourseAssignments(w http.ResponseWriter, r *http.Request) {
	currentUser, err := user.CurrentUser(r.Context())
	if err != nil {
		http.Error(w, "no current user", http.StatusForbidden)
		return
	}

	courseRecord, ok := h.resolveCourse(w, r)
	if !ok {
		return
	}

	docs, err := h.service.CourseAssignmentCalendars(r.Context(), courseRecord, currentUser, h.domain(r), r.Header.Get("Accept-Language"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", courseRecord.Key+"-assignments.ics"))
	w.WriteHeader(http.StatusOK)
	for doc := range docs {
		if _, err := w.Write(doc); err != nil {
			// Client went away; the sequence is safe to abandon.
			log.Debugf("aborted assignment calendar stream: %v", err)
			return
		}
	}
}

// CourseStart serves the single calendar document for the course start date.
func (h *Handler) CourseStart(w http.ResponseWriter, r *http.Request) {
	courseRecord, ok := h.resolveCourse(w, r)
	if !ok {
		return
	}

	doc := h.service.CourseStartCalendar(r.Context(), courseRecord, h.domain(r), r.Header.Get("Accept-Language"))

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", courseRecord.Key+"-start.ics"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		log.Debugf("failed to write start calendar: %v", err)
	}
}

func (h *Handler) resolveCourse(w http.ResponseWriter, r *http.Request) (course.Course, bool) {
	vars := mux.Vars(r)
	courseKey := vars["courseKey"]

	courseRecord, err := h.courses.GetByKey(r.Context(), courseKey)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			http.Error(w, "course not found", http.StatusNotFound)
			return course.Course{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return course.Course{}, false
	}
	return courseRecord, true
}

// domain reports the requesting site's domain, used to namespace event ids.
func (h *Handler) domain(r *http.Request) string {
	if r.Host != "" {
		return r.Host
	}
	return h.defaultDomain
}
