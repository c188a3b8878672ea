// Copyright (c) 2026 Marquee. All rights reserved.

package artist

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
	router.Get("/", handler.listArtists)
	router.Post("/search", handler.searchArtists)
	router.Get("/create", handler.createArtistForm)
	router.Post("/create", handler.createArtist)
	router.Get("/{id}", handler.getArtist)
	router.Delete("/{id}", handler.deleteArtist)
	router.Get("/{id}/edit", handler.editArtistForm)
	router.Post("/{id}/edit", handler.editArtist)
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	refs, err := handler.service.List(request.Context())
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "artists", render.Page{
		Title:   "Artists",
		Flashes: handler.flash.Consume(request),
		Data:    refs,
	})
}

func (handler *Handler) searchArtists(writer http.ResponseWriter, request *http.Request) {
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

	handler.render.HTML(writer, request, http.StatusOK, "search_artists", render.Page{
		Title:   "Search Artists",
		Flashes: handler.flash.Consume(request),
		Data: SearchPage{
			Count:      len(results),
			Results:    results,
			SearchTerm: term,
		},
	})
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Get(request.Context(), artistID)
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "artist_show", render.Page{
		Title:   detail.Name,
		Flashes: handler.flash.Consume(request),
		Data:    detail,
	})
}

func (handler *Handler) createArtistForm(writer http.ResponseWriter, request *http.Request) {
	handler.render.HTML(writer, request, http.StatusOK, "artist_new", render.Page{
		Title:   "New Artist",
		Flashes: handler.flash.Consume(request),
		Data:    &Form{},
	})
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		handler.render.Error(writer, request, err)
		return
	}
	form := formFromRequest(request)

	created, err := handler.service.Create(request.Context(), form)
	if err != nil {
		handler.renderFormFailure(writer, request, err, "artist_new", "New Artist", form,
			"An error occurred. Artist "+form.Name+" could not be listed.")
		return
	}

	handler.flash.Add(writer, request, "Artist "+created.Name+" was successfully listed!")
	http.Redirect(writer, request, "/", http.StatusSeeOther)
}

func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	name, err := handler.service.Delete(request.Context(), artistID)
	if err != nil {
		if isNotFound(err) {
			handler.render.Error(writer, request, err)
			return
		}
		handler.flash.Add(writer, request, "An error occurred. Artist "+name+" could not be deleted.")
		writer.WriteHeader(http.StatusNoContent)
		return
	}

	handler.flash.Add(writer, request, "Artist "+name+" was successfully deleted!")
	writer.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) editArtistForm(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Get(request.Context(), artistID)
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	handler.render.HTML(writer, request, http.StatusOK, "artist_edit", render.Page{
		Title:   "Edit " + detail.Name,
		Flashes: handler.flash.Consume(request),
		Data:    EditPage{ID: artistID, Form: FormFromArtist(&detail.Artist)},
	})
}

func (handler *Handler) editArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.render.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseForm(request); err != nil {
		handler.render.Error(writer, request, err)
		return
	}
	form := formFromRequest(request)

	updated, err := handler.service.Update(request.Context(), artistID, form)
	if err != nil {
		if isNotFound(err) {
			handler.render.Error(writer, request, err)
			return
		}
		handler.renderFormFailure(writer, request, err, "artist_edit", "Edit Artist",
			EditPage{ID: artistID, Form: form},
			"An error occurred. Artist "+form.Name+" could not be updated.")
		return
	}

	handler.flash.Add(writer, request, "Artist "+updated.Name+" was successfully updated!")
	http.Redirect(writer, request, "/artists/"+strconv.Itoa(artistID), http.StatusSeeOther)
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
		Phone:              requestutil.Field(request, FieldPhone),
		ImageLink:          requestutil.Field(request, FieldImageLink),
		FacebookLink:       requestutil.Field(request, FieldFacebookLink),
		Genres:             requestutil.Fields(request, FieldGenres),
		Website:            requestutil.Field(request, FieldWebsite),
		SeekingVenue:       requestutil.Checkbox(request, FieldSeekingVenue),
		SeekingDescription: requestutil.Field(request, FieldSeekingDescription),
	}
}
