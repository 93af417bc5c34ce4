package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/Lslreddy/surplus-to-success/pkg/app"
	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/services/profile/application/handlers"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/profile/application/services"
)

// ProfileRoutes registers auth and profile endpoints on the provided chi
// router. Registration and login are public; profile reads and writes
// require a session.
func ProfileRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(svcs, a.SessionStore, a.Logger).Execute)
		r.Post("/login", handlers.NewLoginHandler(svcs, a.SessionStore, a.Logger).Execute)
		r.Post("/logout", handlers.NewLogoutHandler(a.SessionStore).Execute)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Route("/profile", func(r chi.Router) {
			r.Get("/me", handlers.NewGetMyProfileHandler(svcs).Execute)
			r.Patch("/me", handlers.NewUpdateMyProfileHandler(svcs).Execute)
		})
	})
}
