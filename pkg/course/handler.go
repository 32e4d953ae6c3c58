package course

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/vivektiwari660/edx-platform/internal/rest"
)

type Handler struct {
	service Service
}

type CourseDTO struct {
	Id          int       `json:"id"`
	Key         string    `json:"courseKey"`
	DisplayName string    `json:"displayName"`
	StartDate   time.Time `json:"startDate"`
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new course")
	w.Header().Set("Content-Type", "application/json")

	var dto CourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Key == "" {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid course",
			Details: "'courseKey' must not be empty",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.service.Create(r.Context(), dtoToCourse(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(courseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	courseKey := vars["courseKey"]

	course, err := h.service.GetByKey(r.Context(), courseKey)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(courseToDTO(course)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func courseToDTO(c Course) CourseDTO {
	return CourseDTO{Id: c.Id, Key: c.Key, DisplayName: c.DisplayName, StartDate: c.StartDate}
}

func dtoToCourse(dto CourseDTO) Course {
	return Course{Id: dto.Id, Key: dto.Key, DisplayName: dto.DisplayName, StartDate: dto.StartDate}
}
