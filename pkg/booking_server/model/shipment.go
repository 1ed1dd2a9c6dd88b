package model

import "github.com/shopspring/decimal"

// Shipment is the aggregate derived from a booking once the carrier confirms
// it. It reuses the booking's child data and adds carrier-side collections.
type Shipment struct {
	ID                      string   `json:"-"` // Internal storage key.
	BookingID               string   `json:"-"` // Internal reference to the booking root.
	CarrierBookingReference string   `json:"carrier_booking_reference"`
	TermsAndConditions      string   `json:"terms_and_conditions,omitempty"`
	ConfirmationDateTime    DateTime `json:"shipment_created_datetime"`

	Booking             *Booking             `json:"booking,omitempty"`
	ShipmentLocations   []ShipmentLocation   `json:"shipment_locations"`
	ShipmentCutOffTimes []ShipmentCutOffTime `json:"shipment_cut_off_times"`
	CarrierClauses      []CarrierClause      `json:"carrier_clauses"`
	ConfirmedEquipments []ConfirmedEquipment `json:"confirmed_equipments"`
	Charges             []Charge             `json:"charges"`
	Transports          []Transport          `json:"transports"`
}

// ShipmentSummary is the flat listing projection of a shipment.
type ShipmentSummary struct {
	CarrierBookingReference        string        `json:"carrier_booking_reference"`
	CarrierBookingRequestReference string        `json:"carrier_booking_request_reference"`
	DocumentStatus                 BookingStatus `json:"document_status"`
	TermsAndConditions             string        `json:"terms_and_conditions,omitempty"`
	ConfirmationDateTime           DateTime      `json:"shipment_created_datetime"`
}

type ShipmentCutOffTime struct {
	CutOffDateTimeCode string   `json:"cut_off_datetime_code"` // DCO, VCO, FCO, LCO, ECP or EFC.
	CutOffDateTime     DateTime `json:"cut_off_datetime"`
}

type CarrierClause struct {
	ClauseContent string `json:"clause_content"`
}

// ConfirmedEquipment is the carrier-confirmed projection of requested
// equipment.
type ConfirmedEquipment struct {
	SizeType string `json:"confirmed_equipment_size_type"`
	Units    int    `json:"confirmed_equipment_units"`
}

type Charge struct {
	ChargeType       string          `json:"charge_type"`
	CurrencyAmount   decimal.Decimal `json:"currency_amount"`
	CurrencyCode     string          `json:"currency_code"`
	PaymentTermCode  string          `json:"payment_term_code"` // PRE or COL.
	CalculationBasis string          `json:"calculation_basis"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         decimal.Decimal `json:"quantity"`
}

// Transport is one leg of the shipment's transport plan.
type Transport struct {
	TransportPlanStage               string    `json:"transport_plan_stage"` // PRC, MNC or ONC.
	TransportPlanStageSequenceNumber int       `json:"transport_plan_stage_sequence_number"`
	TransportName                    string    `json:"transport_name,omitempty"`
	TransportReference               string    `json:"transport_reference,omitempty"`
	ModeOfTransport                  string    `json:"mode_of_transport,omitempty"` // VESSEL, RAIL, TRUCK or BARGE.
	LoadLocation                     *Location `json:"load_location,omitempty"`
	DischargeLocation                *Location `json:"discharge_location,omitempty"`
	PlannedDepartureDate             *DateTime `json:"planned_departure_date,omitempty"`
	PlannedArrivalDate               *DateTime `json:"planned_arrival_date,omitempty"`
	VesselName                       string    `json:"vessel_name,omitempty"`
	VesselIMONumber                  string    `json:"vessel_imo_number,omitempty"`
	ImportVoyageNumber               string    `json:"import_voyage_number,omitempty"`
	ExportVoyageNumber               string    `json:"export_voyage_number,omitempty"`
	IsUnderShippersResponsibility    *bool     `json:"is_under_shippers_responsibility,omitempty"`
}
