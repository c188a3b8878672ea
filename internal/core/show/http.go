// Copyright (c) 2026 Marquee. All rights reserved.

package show

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marquee-live/marquee/internal/platform/apperr"
	requestutil "github.com/marquee-live/marquee/internal/platform/request"
	"github.com/marquee-live/marquee/internal/web/flash"
	"github.com/marquee-live/marquee/internal/web/render"
)

type Handler struct {
	service *Service
	render  *render.Renderer
	flash   *flash.Store
}

func NewHandler(service *Service, renderer *render.Renderer, flashes *flash.Store) *Handler {
	return &Handler{service: service, render: renderer, flash: flashes}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listShows)
	router.Get("/create", handler.createShowForm)
	router.Post("/create", handler.createShow)
}

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.ListAll(request.Context())
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "shows", render.Page{
		Title:   "Shows",
		Flashes: handler.flash.Consume(request),
		Data:    rows,
	})
}

func (handler *Handler) createShowForm(writer http.ResponseWriter, request *http.Request) {
	handler.render.HTML(writer, request, http.StatusOK, "show_new", render.Page{
		Title:   "New Show",
		Flashes: handler.flash.Consume(request),
		Data:    &Form{},
	})
}

// createShow persists a new show. The success notice is flashed only after
// the row is actually stored; any failure re-renders the form with the
// failure flashed instead.
func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		handler.render.Error(writer, request, err)
		return
	}
	form := &Form{
		ArtistID:  requestutil.Field(request, FieldArtistID),
		VenueID:   requestutil.Field(request, FieldVenueID),
		StartTime: requestutil.Field(request, FieldStartTime),
	}

	if _, err := handler.service.Create(request.Context(), form); err != nil {
		message := "An error occurred. Requested show could not be listed."
		if apperr.IsValidation(err) {
			message = "Please fix the following errors: " + apperr.As(err).DetailsLine()
		}

		status := http.StatusInternalServerError
		if ae := apperr.As(err); ae != nil {
			status = ae.HTTPStatus
		}

		// Rendered directly rather than queued; the user never navigates away.
		handler.render.HTML(writer, request, status, "show_new", render.Page{
			Title:   "New Show",
			Flashes: append(handler.flash.Consume(request), message),
			Data:    form,
		})
		return
	}

	handler.flash.Add(writer, request, "Requested show was successfully listed")
	http.Redirect(writer, request, "/", http.StatusSeeOther)
}
