package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/ddjproj/reimbursement-tracking/internal/account"
	"github.com/ddjproj/reimbursement-tracking/internal/auth"
	"github.com/ddjproj/reimbursement-tracking/internal/reimbursement"
	"github.com/ddjproj/reimbursement-tracking/internal/transport/middleware"
	"github.com/ddjproj/reimbursement-tracking/internal/transport/swagger"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, accountHandler *account.Handler, reimbursementHandler *reimbursement.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes. Register and login are public; logout revokes the
		// presented token whatever its state.
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Post("/login", authHandler.Login)
			sr.Post("/logout", authHandler.Logout)
		})

		// Public reimbursement type listing (no auth required)
		r.Get("/reimbursement-types", reimbursementHandler.Types)

		// Everything below resolves the token into a principal. A bad or
		// missing token does not fail here; the services deny per
		// operation.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.PrincipalMiddleware)

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/me", accountHandler.Me)
				ur.Get("/", accountHandler.GetAll)
				ur.Get("/{id}", accountHandler.GetByID)
				ur.Patch("/{id}/role", accountHandler.UpdateRole)
				ur.Post("/{id}/upgrade", accountHandler.ProcessUpgrade)
				ur.Delete("/{id}", accountHandler.Delete)
			})

			pr.Route("/reimbursements", func(rr chi.Router) {
				rr.Post("/", reimbursementHandler.Create)
				rr.Get("/", reimbursementHandler.GetAll)
				rr.Get("/mine", reimbursementHandler.GetMine)
				rr.Get("/{id}", reimbursementHandler.GetByID)
				rr.Put("/{id}", reimbursementHandler.Update)
				rr.Patch("/{id}/resolve", reimbursementHandler.Resolve)
			})
		})
	})
}
