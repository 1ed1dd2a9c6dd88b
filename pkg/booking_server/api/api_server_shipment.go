package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/sirupsen/logrus"
)

func (a *API) getShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reference := mux.Vars(r)["reference"]

	result, err := a.shipmentMgr.Get(ctx, reference)
	if err != nil {
		writeBookingError(w, "getShipment", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("getShipment failed to encode/write response: %v", err)
	}
}

func (a *API) listShipments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := storage.ListShipmentsRequest{Limit: 20}
	if ok := parsePagination(w, r, &req.Offset, &req.Limit); !ok {
		return
	}
	req.DocumentStatuses = parseDocumentStatuses(r)

	result, err := a.shipmentMgr.List(ctx, req)
	if err != nil {
		writeBookingError(w, "listShipments", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("listShipments failed to encode/write response: %v", err)
	}
}

func (a *API) listEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := storage.ListEventsRequest{Limit: 20}
	if ok := parsePagination(w, r, &req.Offset, &req.Limit); !ok {
		return
	}
	req.DocumentReference = r.URL.Query().Get("document_reference")
	for _, v := range r.URL.Query()["event_type"] {
		req.EventTypes = append(req.EventTypes, model.BookingStatus(v))
	}

	result, err := a.eventCtrl.ListShipmentEvents(ctx, req)
	if err != nil {
		writeBookingError(w, "listEvents", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("listEvents failed to encode/write response: %v", err)
	}
}
