// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	attendancefeature "github.com/izo-kin/gcc-fellowship-backend/internal/app/features/attendance"
	exportsfeature "github.com/izo-kin/gcc-fellowship-backend/internal/app/features/exports"
	healthfeature "github.com/izo-kin/gcc-fellowship-backend/internal/app/features/health"
	leadersfeature "github.com/izo-kin/gcc-fellowship-backend/internal/app/features/leaders"
	membersfeature "github.com/izo-kin/gcc-fellowship-backend/internal/app/features/members"
	meetupsfeature "github.com/izo-kin/gcc-fellowship-backend/internal/app/features/meetups"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema setup
// have completed. Each feature gets the shared *mongo.Database handle at
// construction; nothing reaches for ambient global state, so every
// handler is testable against a substitute database.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Admin reporting: per-day meetups and the weekly missed-meetup report
	meetupsHandler := meetupsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/admin", meetupsfeature.Routes(meetupsHandler))

	// CSV and PDF downloads
	exportsHandler := exportsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/export", exportsfeature.Routes(exportsHandler))

	// Leader-scoped API: roster management and attendance reporting
	membersHandler := membersfeature.NewHandler(deps.MongoDatabase, logger)
	attendanceHandler := attendancefeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/leader/{leaderID}", func(pr chi.Router) {
		pr.Post("/add-member", membersHandler.HandleAddMember)
		pr.Get("/members", membersHandler.ServeMembers)
		pr.Post("/attendance", attendanceHandler.HandleRecord)
	})

	// Root: service banner, leader registration and login
	leadersHandler := leadersfeature.NewHandler(deps.MongoDatabase, appCfg.PasscodeLength, logger)
	r.Mount("/", leadersfeature.Routes(leadersHandler))

	return r, nil
}
