package http

import (
	"net/http"

	"lab-supply-ledger/internal/delivery/http/handler"
	"lab-supply-ledger/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	materialHandler     *handler.MaterialHandler
	requestHandler      *handler.RequestHandler
	reportHandler       *handler.ReportHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	materialHandler *handler.MaterialHandler,
	requestHandler *handler.RequestHandler,
	reportHandler *handler.ReportHandler,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		materialHandler:     materialHandler,
		requestHandler:      requestHandler,
		reportHandler:       reportHandler,
		requestIDMiddleware: requestIDMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor management
	api.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	// Material catalogue
	api.HandleFunc("/materials", r.materialHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/materials", r.materialHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/materials/{id}", r.materialHandler.Update).Methods(http.MethodPut)

	// Request ledger
	api.HandleFunc("/requests", r.requestHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/requests", r.requestHandler.GetAll).Methods(http.MethodGet)

	// Reporting
	api.HandleFunc("/reports/usage", r.reportHandler.GetUsage).Methods(http.MethodGet)
	api.HandleFunc("/reports/usage/export", r.reportHandler.ExportUsage).Methods(http.MethodPost)

	// Middleware
	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
