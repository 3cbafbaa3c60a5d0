package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// BookHandler serves catalog and circulation endpoints.
type BookHandler struct {
	catalog  service.CatalogService
	circ     service.CirculationService
	validate *validator.Validate
}

func NewBookHandler(catalog service.CatalogService, circ service.CirculationService, validate *validator.Validate) *BookHandler {
	return &BookHandler{catalog: catalog, circ: circ, validate: validate}
}

type addBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	ISBN          string `json:"isbn" validate:"required"`
	Genre         string `json:"genre" validate:"required"`
	PublishedDate string `json:"published_date" validate:"omitempty,datetime=2006-01-02"`
	Description   string `json:"description"`
}

type checkoutRequest struct {
	UserID  int32  `json:"user_id" validate:"required"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
	Notes   string `json:"notes"`
}

type returnRequest struct {
	Condition string `json:"condition" validate:"required,oneof=excellent good fair poor damaged"`
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	book, err := h.catalog.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"book": book})
}

func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	book := &domain.Book{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
		Genre:  req.Genre,
	}
	if req.PublishedDate != "" {
		book.PublishedDate = &req.PublishedDate
	}
	if req.Description != "" {
		book.Description = &req.Description
	}

	if err := h.catalog.AddBook(r.Context(), book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"book": book})
}

func (h *BookHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	co, err := h.circ.Checkout(r.Context(), id, req.UserID, req.DueDate, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"checkout": co})
}

func (h *BookHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	co, err := h.circ.Return(r.Context(), id, domain.CheckoutCondition(req.Condition))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"checkout": co})
}

func (h *BookHandler) CurrentCheckout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	co, err := h.circ.CurrentCheckout(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"checkout": co})
}

func (h *BookHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	history, err := h.circ.History(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"checkouts": history})
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid id")
		return 0, false
	}
	return int32(id), true
}
