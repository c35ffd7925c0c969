package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireSession)

	mux := pat.New()

	// Discovery
	mux.Post("/discovery/search", standardMiddleware.ThenFunc(app.discoveryHandler.SearchBusinesses))
	mux.Get("/discovery/presets", standardMiddleware.ThenFunc(app.discoveryHandler.GetPresets))

	// Businesses
	mux.Get("/business/:id", standardMiddleware.ThenFunc(app.businessHandler.GetBusinessByID))
	mux.Post("/business/:id/book", authMiddleware.ThenFunc(app.businessHandler.BookAppointment))

	return mux
}
