package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/booking"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/event"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/shipment"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage/postgres"
	"github.com/oceanbooking/oceanbooking/pkg/util"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
}

type API struct {
	bookingMgr  booking.BookingManager
	shipmentMgr shipment.ShipmentManager
	eventCtrl   event.EventController

	httpServer *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	dbStorage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	eventCtrl := event.NewEventController(dbStorage)
	bookingMgr := booking.NewBookingManager(dbStorage, eventCtrl)
	shipmentMgr := shipment.NewShipmentManager(dbStorage)
	return NewAPIWithController(bookingMgr, shipmentMgr, eventCtrl, cfg.LocalAddress)
}

func NewAPIWithController(bookingMgr booking.BookingManager, shipmentMgr shipment.ShipmentManager, eventCtrl event.EventController, localAddress string) (*API, error) {
	apiServer := &API{
		bookingMgr:  bookingMgr,
		shipmentMgr: shipmentMgr,
		eventCtrl:   eventCtrl,
	}

	r := mux.NewRouter()
	r.HandleFunc("/bookings", apiServer.createBooking).Methods(http.MethodPost)
	r.HandleFunc("/bookings", apiServer.listBookings).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{reference}", apiServer.getBooking).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{reference}", apiServer.updateBooking).Methods(http.MethodPut)
	r.HandleFunc("/bookings/{reference}/cancel", apiServer.cancelBooking).Methods(http.MethodPost)
	r.HandleFunc("/shipments", apiServer.listShipments).Methods(http.MethodGet)
	r.HandleFunc("/shipments/{reference}", apiServer.getShipment).Methods(http.MethodGet)
	r.HandleFunc("/events", apiServer.listEvents).Methods(http.MethodGet)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

func (a *API) createBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var requested model.Booking
	if err := json.NewDecoder(r.Body).Decode(&requested); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := booking.CreateBookingRequest{Booking: requested}
	result, err := a.bookingMgr.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		writeBookingError(w, "createBooking", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("createBooking failed to encode/write response: %v", err)
	}
}

func (a *API) getBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := mux.Vars(r)["reference"]

	result, err := a.bookingMgr.Get(ctx, reference)
	if err != nil {
		writeBookingError(w, "getBooking", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("getBooking failed to encode/write response: %v", err)
	}
}

func (a *API) updateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := mux.Vars(r)["reference"]

	var requested model.Booking
	if err := json.NewDecoder(r.Body).Decode(&requested); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := booking.UpdateBookingRequest{
		Reference: reference,
		Booking:   requested,
	}
	result, err := a.bookingMgr.UpdateByReference(ctx, time.Now().Unix(), req)
	if err != nil {
		writeBookingError(w, "updateBooking", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("updateBooking failed to encode/write response: %v", err)
	}
}

func (a *API) cancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := mux.Vars(r)["reference"]

	req := booking.CancelBookingRequest{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	req.Reference = reference

	result, err := a.bookingMgr.CancelByReference(ctx, time.Now().Unix(), req)
	if err != nil {
		writeBookingError(w, "cancelBooking", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("cancelBooking failed to encode/write response: %v", err)
	}
}

func (a *API) listBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := storage.ListBookingsRequest{Limit: 20}
	ok := parsePagination(w, r, &req.Offset, &req.Limit)
	if !ok {
		return
	}
	req.DocumentStatuses = parseDocumentStatuses(r)

	result, err := a.bookingMgr.List(ctx, req)
	if err != nil {
		writeBookingError(w, "listBookings", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("listBookings failed to encode/write response: %v", err)
	}
}

func parsePagination(w http.ResponseWriter, r *http.Request, offset *int, limit *int) bool {
	offsetStr := r.URL.Query().Get("offset")
	limitStr := r.URL.Query().Get("limit")
	if offsetStr != "" {
		v, err := strconv.ParseInt(offsetStr, 10, 32)
		if err != nil || v < 0 {
			http.Error(w, "offset is invalid", http.StatusBadRequest)
			return false
		}
		*offset = int(v)
	}
	if limitStr != "" {
		v, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil || v < 1 {
			http.Error(w, "limit is invalid", http.StatusBadRequest)
			return false
		}
		*limit = int(v)
	}
	return true
}

func parseDocumentStatuses(r *http.Request) []model.BookingStatus {
	values := r.URL.Query()["document_status"]
	statuses := make([]model.BookingStatus, 0, len(values))
	for _, v := range values {
		statuses = append(statuses, model.BookingStatus(v))
	}
	return statuses
}

func writeBookingError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidParameter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrBookingNotFound),
		errors.Is(err, model.ErrVesselNotFound),
		errors.Is(err, model.ErrShipmentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrVesselNameConflict),
		errors.Is(err, model.ErrVesselAmbiguous),
		errors.Is(err, model.ErrInvalidBookingStatus):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logrus.Errorf("%s: %v", operation, err)
		http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), http.StatusInternalServerError)
	}
}
