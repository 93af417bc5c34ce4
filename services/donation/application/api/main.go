package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/Lslreddy/surplus-to-success/pkg/app"
	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/services/donation/application/handlers"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// DonationRoutes registers donation lifecycle endpoints on the provided chi
// router. The category directory is public; everything else sits behind
// session authentication.
func DonationRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Get("/categories", handlers.NewListCategoriesHandler(svcs).Execute)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", handlers.NewListAvailableDonationsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostDonationHandler(svcs).Execute)
			r.Get("/mine", handlers.NewListMyDonationsHandler(svcs).Execute)
			if a.Photos != nil {
				r.Post("/photos", handlers.NewUploadPhotoHandler(a.Photos).Execute)
			}
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetDonationHandler(svcs).Execute)
				r.Post("/claim", handlers.NewClaimDonationHandler(svcs).Execute)
				r.Post("/volunteer", handlers.NewVolunteerForDeliveryHandler(svcs).Execute)
				r.Post("/delivered", handlers.NewMarkDeliveredHandler(svcs).Execute)
			})
		})

		r.Get("/claims/mine", handlers.NewListMyClaimsHandler(svcs).Execute)
		r.Get("/deliveries/available", handlers.NewListAwaitingPickupHandler(svcs).Execute)
		r.Get("/deliveries/mine", handlers.NewListMyDeliveriesHandler(svcs).Execute)

		r.Post("/admin/donations/expire", handlers.NewExpireDonationsHandler(svcs).Execute)
	})
}
