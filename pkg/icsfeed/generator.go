package icsfeed

import (
	"context"
	"fmt"
	"html"
	"iter"

	"github.com/vivektiwari660/edx-platform/internal/config"
	"github.com/vivektiwari660/edx-platform/internal/utils"
	"github.com/vivektiwari660/edx-platform/pkg/assignment"
	"github.com/vivektiwari660/edx-platform/pkg/course"
	"github.com/vivektiwari660/edx-platform/pkg/user"
)

const (
	configKeyPlatformName     = "platform_name"
	configKeyEmailFromAddress = "email_from_address"

	msgAssignmentDue = "AssignmentDueDescription"
	msgCourseBegins  = "CourseBeginsTitle"
)

// ConfigProvider resolves one site configuration value, falling back to the
// given default when the site carries no override.
type ConfigProvider interface {
	GetValue(ctx context.Context, domain string, key string, defaultValue string) string
}

// Translator renders a localized message template.
type Translator interface {
	Localize(lang string, messageID string, data map[string]any) string
}

// Service turns course and assignment data into serialized calendar invites.
type Service struct {
	assignments assignment.Provider
	siteConfig  ConfigProvider
	translator  Translator
	clock       utils.Clock
	defaults    config.Site
}

func NewService(assignments assignment.Provider, siteConfig ConfigProvider, translator Translator, clock utils.Clock, defaults config.Site) *Service {
	return &Service{
		assignments: assignments,
		siteConfig:  siteConfig,
		translator:  translator,
		clock:       clock,
		defaults:    defaults,
	}
}

// CourseAssignmentCalendars yields one serialized calendar document per
// assignment of the course for the given user, in the order the assignment
// provider returns them. The sequence is lazy and forward-only; every
// document in one batch shares a single generation timestamp. An empty
// assignment list produces an empty sequence.
func (s *Service) CourseAssignmentCalendars(ctx context.Context, c course.Course, u user.User, domain string, lang string) (iter.Seq[[]byte], error) {
	assignments, err := s.assignments.GetCourseAssignments(ctx, c.Id, u.Id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course assignments: %w", err)
	}

	organizerName, organizerEmail := s.organizer(ctx, domain)
	now := s.clock.Now().UTC()

	return func(yield func([]byte) bool) {
		for _, a := range assignments {
			description := s.translator.Localize(lang, msgAssignmentDue, map[string]any{
				"Assignment": html.EscapeString(a.Title),
				"Course":     html.EscapeString(c.DisplayNameOrDefault()),
			})
			doc := EventICS(
				EventID(u.Id, a.BlockKey, DateTypeDue, domain),
				a.Title,
				description,
				now,
				a.DueDate,
				organizerName,
				organizerEmail,
			)
			if !yield(doc) {
				return
			}
		}
	}, nil
}

// CourseStartCalendar builds the single calendar document announcing the
// course start date. Its event id uses user id 0 and the course key, so it is
// shared by all users of the site.
func (s *Service) CourseStartCalendar(ctx context.Context, c course.Course, domain string, lang string) []byte {
	organizerName, organizerEmail := s.organizer(ctx, domain)
	now := s.clock.Now().UTC()

	// Unlike the assignment description, the title is not HTML-escaped.
	title := s.translator.Localize(lang, msgCourseBegins, map[string]any{
		"Course": c.DisplayNameOrDefault(),
	})

	return EventICS(
		EventID(0, c.Key, DateTypeStart, domain),
		title,
		"",
		now,
		c.StartDate,
		organizerName,
		organizerEmail,
	)
}

func (s *Service) organizer(ctx context.Context, domain string) (string, string) {
	name := s.siteConfig.GetValue(ctx, domain, configKeyPlatformName, s.defaults.PlatformName)
	email := s.siteConfig.GetValue(ctx, domain, configKeyEmailFromAddress, s.defaults.EmailFromAddress)
	return name, email
}
