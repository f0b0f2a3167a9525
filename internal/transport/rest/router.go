package rest

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/inventory-management/internal/auth"
	"github.com/frahmantamala/inventory-management/internal/borrow"
	"github.com/frahmantamala/inventory-management/internal/inventory"
	"github.com/frahmantamala/inventory-management/internal/transport/middleware"
	"github.com/frahmantamala/inventory-management/internal/transport/swagger"
	"github.com/frahmantamala/inventory-management/internal/user"
)

// RegisterAllRoutes wires every handler onto the router. Route shapes and
// their auth requirements mirror the original API: listing inventory, adding
// users, and the two report endpoints are deliberately public.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, allowedOrigins string, requestTimeout time.Duration, authHandler *auth.Handler, userHandler *user.Handler, inventoryHandler *inventory.Handler, borrowHandler *borrow.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	if requestTimeout > 0 {
		router.Use(chiMiddleware.Timeout(requestTimeout))
	}
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
		})

		r.Route("/user", func(sr chi.Router) {
			sr.Get("/getAll", userHandler.GetAll)
			sr.Get("/getBy/{id}", userHandler.GetByID)
			sr.Post("/add", userHandler.Create)

			sr.Group(func(ar chi.Router) {
				ar.Use(authHandler.AuthMiddleware)
				ar.Use(authHandler.RequireAdmin)
				ar.Put("/update/{id}", userHandler.Update)
				ar.Delete("/delete/{id}", userHandler.Delete)
			})
		})

		r.Route("/inventory", func(sr chi.Router) {
			sr.Get("/getAll", inventoryHandler.GetAll)
			sr.Get("/getBy/{inventoryId}", inventoryHandler.GetByID)

			sr.Group(func(ar chi.Router) {
				ar.Use(authHandler.AuthMiddleware)
				ar.Use(authHandler.RequireAdmin)
				ar.Post("/add", inventoryHandler.Create)
				ar.Put("/update/{inventoryId}", inventoryHandler.Update)
				ar.Delete("/delete/{inventoryId}", inventoryHandler.Delete)
			})
		})

		r.Route("/borrowRecord", func(sr chi.Router) {
			sr.Post("/usageReport", borrowHandler.UsageReport)
			sr.Post("/borrowAnalysis", borrowHandler.BorrowAnalysis)

			sr.Group(func(ar chi.Router) {
				ar.Use(authHandler.AuthMiddleware)
				ar.Get("/getAll", borrowHandler.GetAll)
				ar.Get("/getBy/{borrowId}", borrowHandler.GetByID)
				ar.Post("/borrowItem", borrowHandler.BorrowItem)
				ar.Post("/returnItem", borrowHandler.ReturnItem)

				ar.Group(func(mr chi.Router) {
					mr.Use(authHandler.RequireAdmin)
					mr.Put("/updateBorrow/{borrowId}", borrowHandler.Update)
					mr.Delete("/deleteBorrow/{borrowId}", borrowHandler.Delete)
				})
			})
		})
	})
}
