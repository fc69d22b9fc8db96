package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/barcode"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
)

const defaultLocale = "en"

type intakeRequest struct {
	Code     string          `json:"code"`
	Customer string          `json:"customer"`
	Phone    string          `json:"phone"`
	City     string          `json:"city"`
	Status   string          `json:"status"`
	Products []order.Product `json:"products"`
}

type patchRequest struct {
	Status           *string         `json:"status"`
	Customer         *string         `json:"customer"`
	Phone            *string         `json:"phone"`
	City             *string         `json:"city"`
	Products         []order.Product `json:"products"`
	Carrier          *string         `json:"carrier"`
	AssignedEmployee *string         `json:"assigned_employee"`
	RejectReason     *string         `json:"reject_reason"`
	RejectedAt       *time.Time      `json:"rejected_at"`
}

func (p patchRequest) toPatch() (order.Patch, error) {
	patch := order.Patch{
		Customer:         p.Customer,
		Phone:            p.Phone,
		City:             p.City,
		Products:         p.Products,
		Carrier:          p.Carrier,
		AssignedEmployee: p.AssignedEmployee,
		RejectReason:     p.RejectReason,
		RejectedAt:       p.RejectedAt,
	}
	if p.Status != nil {
		status, err := order.ParseStatus(*p.Status)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Status = &status
	}
	return patch, nil
}

type progressResponse struct {
	Code           string         `json:"code"`
	Status         order.Status   `json:"status"`
	Progress       order.Progress `json:"progress"`
	ReadyToConfirm bool           `json:"ready_to_confirm"`
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.storage.Orders(r.Context(), r.URL.Query().Get("q")))
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}

	o := order.Order{
		Code:     req.Code,
		Customer: req.Customer,
		Phone:    req.Phone,
		City:     req.City,
		Products: req.Products,
	}
	if req.Status != "" {
		status, err := order.ParseStatus(req.Status)
		if err != nil {
			s.respondErr(w, err)
			return
		}
		o.Status = status
	}

	created, err := s.storage.AddOrder(r.Context(), o)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.storage.GetOrder(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		s.respondErr(w, err)
		return
	}

	updated, err := s.storage.UpdateOrder(r.Context(), mux.Vars(r)["code"], patch)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handlePrepare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Employee string `json:"employee"`
	}
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			s.respondErr(w, err)
			return
		}
	}
	s.respondOrder(w)(s.storage.StartPreparing(r.Context(), mux.Vars(r)["code"], req.Employee))
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	req := struct {
		SKU string `json:"sku"`
		Qty int    `json:"qty"`
	}{Qty: 1}
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.respondOrder(w)(s.storage.ScanItem(r.Context(), mux.Vars(r)["code"], req.SKU, req.Qty))
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Carrier string `json:"carrier"`
	}
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			s.respondErr(w, err)
			return
		}
	}
	s.respondOrder(w)(s.storage.ConfirmOrder(r.Context(), mux.Vars(r)["code"], req.Carrier))
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.respondOrder(w)(s.storage.RejectOrder(r.Context(), mux.Vars(r)["code"], req.Reason))
}

func (s *Server) handleShip(w http.ResponseWriter, r *http.Request) {
	s.respondOrder(w)(s.storage.ShipOrder(r.Context(), mux.Vars(r)["code"]))
}

func (s *Server) respondOrder(w http.ResponseWriter) func(order.Order, error) {
	return func(o order.Order, err error) {
		if err != nil {
			s.respondErr(w, err)
			return
		}
		respondJSON(w, http.StatusOK, o)
	}
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	o, err := s.storage.GetOrder(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, progressResponse{
		Code:           o.Code,
		Status:         o.Status,
		Progress:       order.OrderProgress(o),
		ReadyToConfirm: order.ReadyToConfirm(o),
	})
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.storage.OrderHistory(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleLabel(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if _, err := s.storage.GetOrder(r.Context(), code); err != nil {
		s.respondErr(w, err)
		return
	}

	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = defaultLocale
	}
	pdf, err := s.labels.Render(r.Context(), code, locale)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="order-%s.pdf"`, code))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleBarcode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if _, err := s.storage.GetOrder(r.Context(), code); err != nil {
		s.respondErr(w, err)
		return
	}

	width, height := barcode.DefaultWidth, barcode.DefaultHeight
	if v, err := strconv.Atoi(r.URL.Query().Get("width")); err == nil && v > 0 {
		width = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("height")); err == nil && v > 0 {
		height = v
	}

	img, err := barcode.Code128PNG(code, width, height)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	status, err := order.ParseStatus(mux.Vars(r)["status"])
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.storage.Tab(r.Context(), status, r.URL.Query().Get("q")))
}

func (s *Server) handleTabs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.storage.Tabs(r.Context(), r.URL.Query().Get("q")))
}
