package rest

import (
	"net/http"

	"jeopardai/internal/service"
	"jeopardai/internal/transport/rest/handler"
	"jeopardai/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	BoardService *service.BoardService
	JudgeService *service.JudgeService
	CORSOrigin   string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	boardHandler := handler.NewBoardHandler(c.BoardService)
	judgeHandler := handler.NewJudgeHandler(c.JudgeService)

	// Middleware (apply first)
	r.Use(middleware.RequestID)
	r.Use(corsMiddleware(c.CORSOrigin))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/rounds/{round}", boardHandler.GetRound).Methods("GET", "OPTIONS")
	v1.HandleFunc("/answers", judgeHandler.SubmitAnswer).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
