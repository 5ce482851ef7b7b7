package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"
)

// HTTPHandler maps the five catalog operations onto HTTP/JSON.
type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeFields(w, r)
	if !ok {
		return
	}

	b, err := h.service.Create(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	f, ok := decodeFields(w, r)
	if !ok {
		return
	}

	b, err := h.service.Update(r.Context(), id, f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("book %d deleted", deleted),
	})
}

// parseID reads the {id} path value. A non-numeric id cannot match any
// record, so it reports not found rather than bad request.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, httpx.CodeNotFound, "book not found", nil)
		return 0, false
	}
	return id, true
}

func decodeFields(w http.ResponseWriter, r *http.Request) (Fields, bool) {
	var f Fields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeBadRequest, "invalid request body", nil)
		return Fields{}, false
	}
	return f, true
}

// writeError maps the gateway's error taxonomy to status codes. Store
// errors pass the raw message through.
func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]httpx.ErrorDetail, 0, len(verr.Details))
		for _, d := range verr.Details {
			details = append(details, httpx.ErrorDetail{Field: d.Field, Message: d.Message})
		}
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, "title and author are required", details)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, httpx.CodeNotFound, "book not found", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, httpx.CodeStore, err.Error(), nil)
	}
}
