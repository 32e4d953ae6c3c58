package assignment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/vivektiwari660/edx-platform/pkg/course"
	"github.com/vivektiwari660/edx-platform/pkg/user"
)

type Handler struct {
	service *ServiceImpl
	courses course.Service
}

type AssignmentDTO struct {
	Id       int       `json:"id"`
	Title    string    `json:"title"`
	DueDate  time.Time `json:"dueDate"`
	BlockKey string    `json:"blockKey"`
}

func NewHandler(service *ServiceImpl, courses course.Service) *Handler {
	return &Handler{service: service, courses: courses}
}

func (h *Handler) RegisterAssignment(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new assignment")
	w.Header().Set("Content-Type", "application/json")

	courseRecord, ok := h.resolveCourse(w, r)
	if !ok {
		return
	}

	var dto AssignmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assignment := dtoToAssignment(dto)
	assignment.CourseId = courseRecord.Id
	created, err := h.service.Create(r.Context(), assignment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(assignmentToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	courseRecord, ok := h.resolveCourse(w, r)
	if !ok {
		return
	}

	userId, _ := user.CurrentId(r.Context())
	assignments, err := h.service.GetCourseAssignments(r.Context(), courseRecord.Id, userId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]AssignmentDTO, 0, len(assignments))
	for _, assignment := range assignments {
		dtos = append(dtos, assignmentToDTO(assignment))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
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

func assignmentToDTO(a Assignment) AssignmentDTO {
	return AssignmentDTO{Id: a.Id, Title: a.Title, DueDate: a.DueDate, BlockKey: a.BlockKey}
}

func dtoToAssignment(dto AssignmentDTO) Assignment {
	return Assignment{Id: dto.Id, Title: dto.Title, DueDate: dto.DueDate, BlockKey: dto.BlockKey}
}
