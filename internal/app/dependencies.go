package app

import (
	"database/sql"

	"github.com/vivektiwari660/edx-platform/internal/config"
	"github.com/vivektiwari660/edx-platform/internal/translation"
	"github.com/vivektiwari660/edx-platform/internal/utils"
	"github.com/vivektiwari660/edx-platform/pkg/assignment"
	"github.com/vivektiwari660/edx-platform/pkg/course"
	"github.com/vivektiwari660/edx-platform/pkg/icsfeed"
	"github.com/vivektiwari660/edx-platform/pkg/siteconfig"
	"github.com/vivektiwari660/edx-platform/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserService user.Service
	UserHandler *user.Handler

	CourseRepository *course.RepositoryImpl
	CourseService    *course.ServiceImpl
	CourseHandler    *course.Handler

	AssignmentRepository *assignment.RepositoryImpl
	AssignmentService    *assignment.ServiceImpl
	AssignmentHandler    *assignment.Handler

	SiteConfigRepository *siteconfig.RepositoryImpl
	SiteConfigService    *siteconfig.ServiceImpl
	SiteConfigHandler    *siteconfig.Handler

	Translator *translation.Translator

	ICSFeedService *icsfeed.Service
	ICSFeedHandler *icsfeed.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.CourseRepository = course.NewRepository(db)
	deps.CourseService = course.NewService(deps.CourseRepository)
	deps.CourseHandler = course.NewHandler(deps.CourseService)

	deps.AssignmentRepository = assignment.NewRepository(db)
	deps.AssignmentService = assignment.NewService(deps.AssignmentRepository)
	deps.AssignmentHandler = assignment.NewHandler(deps.AssignmentService, deps.CourseService)

	deps.SiteConfigRepository = siteconfig.NewRepository(db)
	deps.SiteConfigService = siteconfig.NewService(deps.SiteConfigRepository)
	deps.SiteConfigHandler = siteconfig.NewHandler(deps.SiteConfigService)

	translator, err := translation.New()
	if err != nil {
		return nil, err
	}
	deps.Translator = translator

	deps.Clock = &utils.SystemClock{}
	deps.ICSFeedService = icsfeed.NewService(deps.AssignmentService, deps.SiteConfigService, deps.Translator, deps.Clock, cfg.Site)
	deps.ICSFeedHandler = icsfeed.NewHandler(deps.ICSFeedService, deps.CourseService, cfg.Site.Domain)

	return deps, nil
}
