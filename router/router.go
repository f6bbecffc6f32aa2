package router

import (
	"net/http"

	"reviewhub/config"
	clientHandler "reviewhub/internal/client"
	"reviewhub/internal/client/repository"
	"reviewhub/internal/client/service"
	"reviewhub/middleware"
)

func Setup(cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	repo := repository.NewClientRepository(cfg.DataDir)
	clientService := service.NewClientService(repo)
	reviewService := service.NewReviewService(repo)
	qrService := service.NewQRService(cfg.BaseURL)
	h := clientHandler.NewClientHandler(clientService, reviewService, qrService)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/api/files", h.ListDataFiles)
	mux.HandleFunc("/api/clients", h.ListClients)
	mux.HandleFunc("/api/clients/create", h.CreateClient)
	mux.HandleFunc("/api/clients/detail", h.GetClientDetail)
	mux.HandleFunc("/api/clients/full", h.GetClient)
	mux.HandleFunc("/api/clients/update", h.UpdateClient)
	mux.HandleFunc("/api/clients/delete", h.DeleteClient)
	mux.HandleFunc("/api/reviews", h.ListReviews)
	mux.HandleFunc("/api/reviews/random", h.RandomReview)
	mux.HandleFunc("/api/reviews/add", h.AddReview)
	mux.HandleFunc("/api/reviews/delete", h.DeleteReview)
	mux.HandleFunc("/api/qr", h.GenerateQR)

	return middleware.CORSMiddleware(middleware.RequestID(mux))
}
