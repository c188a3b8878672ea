// Copyright (c) 2026 Marquee. All rights reserved.

package venue

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/marquee-live/marquee/internal/core/schedule"
	"github.com/marquee-live/marquee/internal/platform/apperr"
	requestutil "github.com/marquee-live/marquee/internal/platform/request"
	"github.com/marquee-live/marquee/internal/web/flash"
	"github.com/marquee-live/marquee/internal/web/render"
)

// SearchPage is the search-results view data.
type SearchPage struct {
	Count      int
	Results    []schedule.SearchResult
	SearchTerm string
}

// EditPage is the edit-form view data.
type EditPage struct {
	ID   int
	Form *Form
}

type Handler struct {
	service *Service
	render  *render.Renderer
	flash   *flash.Store
}

func NewHandler(service *Service, renderer *render.Renderer, flashes *flash.Store) *Handler {
	return &Handler{service: service, render: renderer, flash: flashes}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listVenues)
	router.Post("/search", handler.searchVenues)
	router.Get("/create", handler.createVenueForm)
	router.Post("/create", handler.createVenue)
	router.Get("/{id}", handler.getVenue)
	router.Delete("/{id}", handler.deleteVenue)
	router.Get("/{id}/edit", handler.editVenueForm)
	router.Post("/{id}/edit", handler.editVenue)
}

func (handler *Handler) listVenues(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.ListGrouped(request.Context())
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "venues", render.Page{
		Title:   "Venues",
		Flashes: handler.flash.Consume(request),
		Data:    groups,
	})
}

func (handler *Handler) searchVenues(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		handler.render.Error(writer, request, err)
		return
	}
	term := requestutil.Field(request, "search_term")

	results, err := handler.service.Search(request.Context(), term)
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "search_venues", render.Page{
		Title:   "Search Venues",
		Flashes: handler.flash.Consume(request),
		Data: SearchPage{
			Count:      len(results),
			Results:    results,
			SearchTerm: term,
		},
	})
}

func (handler *Handler) getVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Get(request.Context(), venueID)
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "venue_show", render.Page{
		Title:   detail.Name,
		Flashes: handler.flash.Consume(request),
		Data:    detail,
	})
}

func (handler *Handler) createVenueForm(writer http.ResponseWriter, request *http.Request) {
	handler.render.HTML(writer, request, http.StatusOK, "venue_new", render.Page{
		Title:   "New Venue",
		Flashes: handler.flash.Consume(request),
		Data:    &Form{},
	})
}

func (handler *Handler) createVenue(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		handler.render.Error(writer, request, err)
		return
	}
	form := formFromRequest(request)

	created, err := handler.service.Create(request.Context(), form)
	if err != nil {
		handler.renderFormFailure(writer, request, err, "venue_new", "New Venue", form,
			"An error occurred. Venue "+form.Name+" could not be listed.")
		return
	}

	handler.flash.Add(writer, request, "Venue "+created.Name+" was successfully listed!")
	http.Redirect(writer, request, "/", http.StatusSeeOther)
}

func (handler *Handler) deleteVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	name, err := handler.service.Delete(request.Context(), venueID)
	if err != nil {
		if isNotFound(err) {
			handler.render.Error(writer, request, err)
			return
		}
		handler.flash.Add(writer, request, "An error occurred. Venue "+name+" could not be deleted.")
		writer.WriteHeader(http.StatusNoContent)
		return
	}

	handler.flash.Add(writer, request, "Venue "+name+" was successfully deleted!")
	writer.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) editVenueForm(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Get(request.Context(), venueID)
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "venue_edit", render.Page{
		Title:   "Edit " + detail.Name,
		Flashes: handler.flash.Consume(request),
		Data:    EditPage{ID: venueID, Form: FormFromVenue(&detail.Venue)},
	})
}

func (handler *Handler) editVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseForm(request); err != nil {
		handler.render.Error(writer, request, err)
		return
	}
	form := formFromRequest(request)

	updated, err := handler.service.Update(request.Context(), venueID, form)
	if err != nil {
		if isNotFound(err) {
			handler.render.Error(writer, request, err)
			return
		}
		handler.renderFormFailure(writer, request, err, "venue_edit", "Edit Venue",
			EditPage{ID: venueID, Form: form},
			"An error occurred. Venue "+form.Name+" could not be updated.")
		return
	}

	handler.flash.Add(writer, request, "Venue "+updated.Name+" was successfully updated!")
	http.Redirect(writer, request, "/venues/"+strconv.Itoa(venueID), http.StatusSeeOther)
}

// renderFormFailure re-renders a form page after a failed submission:
// validation failures report every failing field and its reason, persistence
// failures report the generic notice. The message is rendered directly in
// this response rather than queued, since the user never navigates away.
func (handler *Handler) renderFormFailure(writer http.ResponseWriter, request *http.Request, err error, templateName, title string, data any, failureMessage string) {
	message := failureMessage
	if apperr.IsValidation(err) {
		message = "Please fix the following errors: " + apperr.As(err).DetailsLine()
	}

	status := http.StatusInternalServerError
	if ae := apperr.As(err); ae != nil {
		status = ae.HTTPStatus
	}

	handler.render.HTML(writer, request, status, templateName, render.Page{
		Title:   title,
		Flashes: append(handler.flash.Consume(request), message),
		Data:    data,
	})
}

func isNotFound(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.HTTPStatus == http.StatusNotFound
}

// formFromRequest maps the submitted fields onto the typed form.
func formFromRequest(request *http.Request) *Form {
	return &Form{
		Name:               requestutil.Field(request, FieldName),
		City:               requestutil.Field(request, FieldCity),
		State:              requestutil.Field(request, FieldState),
		Address:            requestutil.Field(request, FieldAddress),
		Phone:              requestutil.Field(request, FieldPhone),
		ImageLink:          requestutil.Field(request, FieldImageLink),
		FacebookLink:       requestutil.Field(request, FieldFacebookLink),
		Genres:             requestutil.Fields(request, FieldGenres),
		Website:            requestutil.Field(request, FieldWebsite),
		SeekingTalent:      requestutil.Checkbox(request, FieldSeekingTalent),
		SeekingDescription: requestutil.Field(request, FieldSeekingDescription),
	}
}
