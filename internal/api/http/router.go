package http

import (
	"net/http"

	"renthive-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires the transport routes around the lifecycle engine. Every
// route below /api requires a valid bearer token.
func NewRouter(tokens security.TokenManager, requests *RequestHandler, notifications *NotificationHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/requests", requests.Create).Methods(http.MethodPost)
	api.HandleFunc("/requests", requests.List).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id:[0-9]+}", requests.Get).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id:[0-9]+}/approve", requests.Approve).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/reject", requests.Reject).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/cancel", requests.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/pay", requests.Pay).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/handover", requests.ConfirmHandover).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/return", requests.ConfirmReturn).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/complete", requests.Complete).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/dispute", requests.OpenDispute).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/transactions", requests.ListTransactions).Methods(http.MethodGet)

	api.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notifications.MarkAsRead).Methods(http.MethodPost)

	return r
}
