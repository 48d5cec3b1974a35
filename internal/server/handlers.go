package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formfield/pkg/binder"
	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/htmltag"
	"github.com/goliatone/go-formfield/pkg/render"
)

// formKey names the hidden input carrying the form id.
const formKey = "_form"

type listResponse struct {
	Forms []string `json:"forms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{Forms: s.store.IDs()})
}

// handleForm renders a blank form. Query parameters prefill values; errors
// are never shown before a submission.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	set, ok := s.lookup(w, r)
	if !ok {
		return
	}
	values := set.Extract(binder.Query(r))

	opts := s.render
	opts.SuppressErrors = true
	s.writeForm(w, r, http.StatusOK, set, values, opts)
}

// handleSubmit validates a submission. Invalid submissions get the form back
// with errors, or the violations as JSON when the client asked for JSON.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	set, ok := s.lookup(w, r)
	if !ok {
		return
	}
	body, err := binder.Body(r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, binder.ErrUnsupportedMediaType) || errors.Is(err, binder.ErrMissingContentType) {
			status = http.StatusUnsupportedMediaType
		}
		s.logger.Debug().Err(err).Str("form", set.ID()).Msg("bind failed")
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	result := set.Validate(body)
	s.logger.Debug().
		Str("form", set.ID()).
		Int("violations", len(result.Violations)).
		Msg("submission validated")

	switch {
	case result.Valid():
		writeJSON(w, http.StatusOK, result)
	case wantsJSON(r):
		writeJSON(w, http.StatusUnprocessableEntity, result)
	default:
		opts := s.render
		opts.SuppressErrors = false
		opts.Siblings = nil
		s.writeForm(w, r, http.StatusUnprocessableEntity, set, result.Values, opts)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*definition.Set, bool) {
	id := chi.URLParam(r, "id")
	set, err := s.store.Set(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, definition.ErrFormNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return nil, false
	}
	return set, true
}

func (s *Server) writeForm(w http.ResponseWriter, r *http.Request, status int, set *definition.Set, values map[string]any, opts field.RenderOptions) {
	hidden := []render.Hidden{render.HiddenValue(formKey, set.ID())}
	if s.hidden != nil {
		hidden = render.MergeHidden(s.hidden(r), hidden)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s.formHTML(set, values, hidden, opts)))
}

func (s *Server) formHTML(set *definition.Set, values map[string]any, hidden []render.Hidden, opts field.RenderOptions) string {
	inner := render.HiddenHTML(hidden) +
		set.Render(values, opts) +
		htmltag.Build("button", htmltag.NewAttrs("type", "submit"), "Submit")
	attrs := htmltag.NewAttrs(
		"method", "post",
		"action", s.basePath+"/forms/"+set.ID(),
		"novalidate", true,
	)
	form := htmltag.Build("form", attrs, inner)
	if title := set.Title(); title != "" {
		form = htmltag.Build("h1", htmltag.Attrs{}, htmltag.Escape(title)) + form
	}
	return form
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(accept)
	return err == nil && mediaType == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
