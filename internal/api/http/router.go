package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes.
func NewRouter(books *BookHandler, users *UserHandler, dashboard *DashboardHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, RequestLogger)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/books", books.List).Methods(http.MethodGet)
	api.HandleFunc("/books", books.Add).Methods(http.MethodPost)
	api.HandleFunc("/books/{id}", books.Get).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}/checkout", books.CurrentCheckout).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}/checkout", books.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/books/{id}/return", books.Return).Methods(http.MethodPost)
	api.HandleFunc("/books/{id}/history", books.History).Methods(http.MethodGet)

	api.HandleFunc("/users", users.List).Methods(http.MethodGet)
	api.HandleFunc("/users", users.Add).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", users.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/status", users.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}/checkouts", users.Checkouts).Methods(http.MethodGet)

	api.HandleFunc("/dashboard/stats", dashboard.Stats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/activity", dashboard.RecentActivity).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/popular", dashboard.PopularBooks).Methods(http.MethodGet)

	return r
}
