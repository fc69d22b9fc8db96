//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/geocode"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/storage"
)

type Storage interface {
	Orders(ctx context.Context, query string) []order.Order
	AddOrder(ctx context.Context, o order.Order) (order.Order, error)
	GetOrder(ctx context.Context, code string) (order.Order, error)
	UpdateOrder(ctx context.Context, code string, patch order.Patch) (order.Order, error)
	StartPreparing(ctx context.Context, code, employee string) (order.Order, error)
	ScanItem(ctx context.Context, code, sku string, qty int) (order.Order, error)
	ConfirmOrder(ctx context.Context, code, carrier string) (order.Order, error)
	RejectOrder(ctx context.Context, code, reason string) (order.Order, error)
	ShipOrder(ctx context.Context, code string) (order.Order, error)
	Tab(ctx context.Context, status order.Status, query string) order.TabView
	Tabs(ctx context.Context, query string) []order.TabView
	OrderHistory(ctx context.Context, code string) ([]storage.HistoryEntry, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type LabelRenderer interface {
	Render(ctx context.Context, code, locale string) ([]byte, error)
}

type PlaceFinder interface {
	Lookup(ctx context.Context, key, query string) ([]geocode.Place, error)
}

type Deps struct {
	Storage Storage
	Users   UserRepo
	Labels  LabelRenderer
	Places  PlaceFinder
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	labels       LabelRenderer
	places       PlaceFinder
	sessions     *sessionStore
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(deps Deps, auditManager *AuditManager, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		storage:      deps.Storage,
		userRepo:     deps.Users,
		labels:       deps.Labels,
		places:       deps.Places,
		sessions:     newSessionStore(),
		logger:       logger,
		AuditManager: auditManager,
	}
}

// Run serves until Shutdown is called.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.logger.Info("HTTP server shutdown completed")
	return nil
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.auditLogMiddleware)

	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet).Name("handleListOrders")
	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost).Name("handleCreateOrder")
	api.HandleFunc("/orders/{code}", s.handleGetOrder).Methods(http.MethodGet).Name("handleGetOrder")
	api.HandleFunc("/orders/{code}", s.handleUpdateOrder).Methods(http.MethodPatch).Name("handleUpdateOrder")

	api.HandleFunc("/orders/{code}/prepare", s.handlePrepare).Methods(http.MethodPost).Name("handlePrepare")
	api.HandleFunc("/orders/{code}/scan", s.handleScan).Methods(http.MethodPost).Name("handleScan")
	api.HandleFunc("/orders/{code}/confirm", s.handleConfirm).Methods(http.MethodPost).Name("handleConfirm")
	api.HandleFunc("/orders/{code}/reject", s.handleReject).Methods(http.MethodPost).Name("handleReject")
	api.HandleFunc("/orders/{code}/ship", s.handleShip).Methods(http.MethodPost).Name("handleShip")

	api.HandleFunc("/orders/{code}/progress", s.handleProgress).Methods(http.MethodGet).Name("handleProgress")
	api.HandleFunc("/orders/{code}/history", s.handleOrderHistory).Methods(http.MethodGet).Name("handleOrderHistory")
	api.HandleFunc("/orders/{code}/label.pdf", s.handleLabel).Methods(http.MethodGet).Name("handleLabel")
	api.HandleFunc("/orders/{code}/barcode.png", s.handleBarcode).Methods(http.MethodGet).Name("handleBarcode")

	api.HandleFunc("/tabs", s.handleTabs).Methods(http.MethodGet).Name("handleTabs")
	api.HandleFunc("/tabs/{status}", s.handleTab).Methods(http.MethodGet).Name("handleTab")
	api.HandleFunc("/places", s.handlePlaces).Methods(http.MethodGet).Name("handlePlaces")

	api.HandleFunc("/session", s.handleLogin).Methods(http.MethodPost).Name("handleLogin")
	api.HandleFunc("/session", s.handleLogout).Methods(http.MethodDelete).Name("handleLogout")

	return router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
