package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"reviewhub/internal/client/model"
	"reviewhub/internal/client/repository"
	"reviewhub/internal/client/service"
	"reviewhub/pkg/logger"
)

type ClientHandler struct {
	Clients *service.ClientService
	Reviews *service.ReviewService
	QR      *service.QRService
}

func NewClientHandler(clients *service.ClientService, reviews *service.ReviewService, qr *service.QRService) *ClientHandler {
	return &ClientHandler{Clients: clients, Reviews: reviews, QR: qr}
}

// writeError translates the store taxonomy into HTTP status codes. NotFound
// and empty-list conditions are expected traffic and are not logged here.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, repository.ErrUnsafePath):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNoReviews):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		logger.Sugar.Errorf("Request failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.Clients.CreateClient(req.ClientID, req.ClientDetails, req.SeedFile)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(doc)
}

func (h *ClientHandler) GetClientDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "Missing clientId parameter", http.StatusBadRequest)
		return
	}

	detail, err := h.Clients.GetClientDetail(clientID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, detail)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "Missing clientId parameter", http.StatusBadRequest)
		return
	}

	doc, err := h.Clients.GetClient(clientID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, doc)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "Missing clientId parameter", http.StatusBadRequest)
		return
	}

	var details model.ClientDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.Clients.UpdateClient(clientID, details)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, doc)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "Missing clientId parameter", http.StatusBadRequest)
		return
	}

	if err := h.Clients.DeleteClient(clientID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Client deleted successfully"))
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries, err := h.Clients.ListClients()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, summaries)
}

func (h *ClientHandler) ListDataFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	files, err := h.Clients.ListDataFiles()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, files)
}

func (h *ClientHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "Missing clientId parameter", http.StatusBadRequest)
		return
	}

	reviews, err := h.Reviews.ListReviews(clientID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, reviews)
}

func (h *ClientHandler) RandomReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "Missing clientId parameter", http.StatusBadRequest)
		return
	}

	review, err := h.Reviews.RandomReview(clientID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, model.ReviewResponse{Review: review})
}

func (h *ClientHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	added, err := h.Reviews.AddReview(req.ClientID, req.Review)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(model.ReviewResponse{Review: added})
}

func (h *ClientHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Reviews.DeleteReview(req.ClientID, req.Review); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Review deleted successfully"))
}

func (h *ClientHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "Missing clientId parameter", http.StatusBadRequest)
		return
	}

	png, url, err := h.QR.Generate(clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Review-Url", url)
	w.Write(png)
}
