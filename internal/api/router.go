package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jthomsen/motorlot/internal/api/handlers"
	"github.com/jthomsen/motorlot/internal/api/middleware"
	"github.com/jthomsen/motorlot/internal/config"
	"github.com/jthomsen/motorlot/internal/service"
	"github.com/jthomsen/motorlot/internal/view"
)

func NewRouter(services *service.Services, renderer *view.Renderer, cfg *config.Config, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Identity(services.Auth.Tokens()))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	base := &handlers.Base{
		Renderer:  renderer,
		Inventory: services.Inventory,
		Log:       log,
	}
	pagesHandler := handlers.NewPagesHandler(base)
	accountHandler := handlers.NewAccountHandler(base, services.Auth, !cfg.IsDevelopment())
	inventoryHandler := handlers.NewInventoryHandler(base)

	r.Get("/", pagesHandler.Home)

	r.Route("/account", func(r chi.Router) {
		// Public auth routes
		r.Get("/login", accountHandler.LoginPage)
		r.Post("/login", accountHandler.Login)
		r.Get("/register", accountHandler.RegisterPage)
		r.Post("/register", accountHandler.Register)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)
			r.Get("/", accountHandler.ManagementPage)
			r.Get("/update", accountHandler.UpdatePage)
			r.Post("/update", accountHandler.UpdateProfile)
			r.Post("/password", accountHandler.ChangePassword)
			r.Get("/logout", accountHandler.Logout)
		})
	})

	r.Route("/inv", func(r chi.Router) {
		// Public browsing routes
		r.Get("/type/{classificationID}", inventoryHandler.Classification)
		r.Get("/detail/{vehicleID}", inventoryHandler.Detail)
		r.Get("/search", inventoryHandler.SearchPage)
		r.Get("/search/results", inventoryHandler.SearchResults)

		// Management routes, employees and admins only
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePrivileged)
			r.Get("/", inventoryHandler.ManagementPage)
			r.Get("/add-classification", inventoryHandler.AddClassificationPage)
			r.Post("/add-classification", inventoryHandler.AddClassification)
			r.Get("/add-inventory", inventoryHandler.AddVehiclePage)
			r.Post("/add-inventory", inventoryHandler.AddVehicle)
			r.Get("/edit/{vehicleID}", inventoryHandler.EditVehiclePage)
			r.Post("/update", inventoryHandler.UpdateVehicle)
			r.Get("/delete/{vehicleID}", inventoryHandler.DeleteVehiclePage)
			r.Post("/delete", inventoryHandler.DeleteVehicle)
			r.Get("/getInventory/{classificationID}", inventoryHandler.ClassificationJSON)
		})
	})

	r.NotFound(pagesHandler.NotFound)

	return r
}
