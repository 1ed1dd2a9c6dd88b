package model

import "github.com/shopspring/decimal"

type BookingStatus string

const (
	BookingStatusReceived            BookingStatus = "RECE"
	BookingStatusPendingUpdate       BookingStatus = "PENU"
	BookingStatusPendingConfirmation BookingStatus = "PENC"
	BookingStatusConfirmed           BookingStatus = "CONF"
	BookingStatusRejected            BookingStatus = "REJE"
	BookingStatusCancelled           BookingStatus = "CANC"
	BookingStatusCompleted           BookingStatus = "CMPL"
)

// CanBeUpdated reports whether a booking in this status accepts a full-replace update.
func (s BookingStatus) CanBeUpdated() bool {
	return s == BookingStatusReceived || s == BookingStatusPendingUpdate
}

// CanBeCancelled reports whether a booking in this status accepts cancellation.
func (s BookingStatus) CanBeCancelled() bool {
	switch s {
	case BookingStatusReceived, BookingStatusPendingUpdate, BookingStatusConfirmed, BookingStatusPendingConfirmation:
		return true
	}
	return false
}

// Booking is the aggregate root of a shipping booking. The child collections
// are owned exclusively by the booking and are persisted/fetched together
// with it.
type Booking struct {
	ID                             string        `json:"-"`                                        // Internal storage key, never exposed.
	CarrierBookingRequestReference string        `json:"carrier_booking_request_reference"`        // Caller visible, system generated reference.
	DocumentStatus                 BookingStatus `json:"document_status"`                          // Lifecycle status of the booking.
	ReceiptTypeAtOrigin            string        `json:"receipt_type_at_origin"`                   // CY, SD or CFS.
	DeliveryTypeAtDestination      string        `json:"delivery_type_at_destination"`             // CY, SD or CFS.
	CargoMovementTypeAtOrigin      string        `json:"cargo_movement_type_at_origin"`            // FCL, LCL or BB.
	CargoMovementTypeAtDestination string        `json:"cargo_movement_type_at_destination"`       // FCL, LCL or BB.
	ServiceContractReference       string        `json:"service_contract_reference"`               //
	PaymentTermCode                string        `json:"payment_term_code,omitempty"`              // PRE or COL.
	IsPartialLoadAllowed           *bool         `json:"is_partial_load_allowed"`                  //
	IsExportDeclarationRequired    *bool         `json:"is_export_declaration_required"`           //
	ExportDeclarationReference     *string       `json:"export_declaration_reference,omitempty"`   // Required when IsExportDeclarationRequired is true.
	IsImportLicenseRequired        *bool         `json:"is_import_license_required"`               //
	ImportLicenseReference         *string       `json:"import_license_reference,omitempty"`       // Required when IsImportLicenseRequired is true.
	IsAMSACIFilingRequired         *bool         `json:"is_ams_aci_filing_required,omitempty"`     //
	IsDestinationFilingRequired    *bool         `json:"is_destination_filing_required,omitempty"` //
	ContractQuotationReference     string        `json:"contract_quotation_reference,omitempty"`   //
	ExpectedDepartureDate          *Date         `json:"expected_departure_date,omitempty"`        //
	ExpectedArrivalDateStart       *Date         `json:"expected_arrival_date_start,omitempty"`    //
	ExpectedArrivalDateEnd         *Date         `json:"expected_arrival_date_end,omitempty"`      //
	TransportDocumentTypeCode      string        `json:"transport_document_type_code,omitempty"`   // BOL or SWB.
	TransportDocumentReference     string        `json:"transport_document_reference,omitempty"`   //
	BookingChannelReference        string        `json:"booking_channel_reference,omitempty"`      //
	IncoTerms                      string        `json:"inco_terms,omitempty"`                     //
	CommunicationChannelCode       string        `json:"communication_channel_code"`               // EI, EM or AO.
	IsEquipmentSubstitutionAllowed *bool         `json:"is_equipment_substitution_allowed"`        //
	ExportVoyageNumber             string        `json:"export_voyage_number,omitempty"`           //
	VesselID                       *string       `json:"-"`                                        // Internal reference to a resolved vessel row.
	VesselName                     string        `json:"vessel_name,omitempty"`                    //
	VesselIMONumber                string        `json:"vessel_imo_number,omitempty"`              //
	BookingRequestDateTime         DateTime      `json:"booking_request_datetime"`                 // When the booking was requested.
	UpdatedDateTime                DateTime      `json:"updated_datetime"`                         // When the booking was last updated.

	InvoicePayableAt          *Location                  `json:"invoice_payable_at,omitempty"` //
	PlaceOfIssue              *Location                  `json:"place_of_issue,omitempty"`     //
	Commodities               []Commodity                `json:"commodities"`                  //
	ValueAddedServiceRequests []ValueAddedServiceRequest `json:"value_added_service_requests"` //
	References                []Reference                `json:"references"`                   //
	RequestedEquipments       []RequestedEquipment       `json:"requested_equipments"`         //
	DocumentParties           []DocumentParty            `json:"document_parties"`             //
	ShipmentLocations         []ShipmentLocation         `json:"shipment_locations"`           //
}

// BookingSummary is the flat listing projection of a booking root.
type BookingSummary struct {
	CarrierBookingRequestReference string        `json:"carrier_booking_request_reference"`
	DocumentStatus                 BookingStatus `json:"document_status"`
	ReceiptTypeAtOrigin            string        `json:"receipt_type_at_origin"`
	DeliveryTypeAtDestination      string        `json:"delivery_type_at_destination"`
	ServiceContractReference       string        `json:"service_contract_reference"`
	BookingRequestDateTime         DateTime      `json:"booking_request_datetime"`
	UpdatedDateTime                DateTime      `json:"updated_datetime"`
}

type Commodity struct {
	CommodityType           string          `json:"commodity_type"`                      //
	HSCode                  string          `json:"hs_code,omitempty"`                   // Harmonized system code.
	CargoGrossWeight        decimal.Decimal `json:"cargo_gross_weight"`                  //
	CargoGrossWeightUnit    string          `json:"cargo_gross_weight_unit"`             // KGM or LBR.
	ExportLicenseIssueDate  *Date           `json:"export_license_issue_date,omitempty"` //
	ExportLicenseExpiryDate *Date           `json:"export_license_expiry_date,omitempty"`
}

type ValueAddedServiceRequest struct {
	ValueAddedServiceCode string `json:"value_added_service_code"`
}

type Reference struct {
	ReferenceType  string `json:"reference_type"` // FF, SI, PO, CR, AAO, ECR, CSI, BPR, BID or SAC.
	ReferenceValue string `json:"reference_value"`
}

// RequestedEquipment carries the equipment demand of a booking. The number
// of equipment references must not exceed Units.
type RequestedEquipment struct {
	SizeType            string   `json:"requested_equipment_size_type"` // ISO 6346 size/type code.
	Units               int      `json:"requested_equipment_units"`     //
	IsShipperOwned      bool     `json:"is_shipper_owned"`              //
	EquipmentReferences []string `json:"equipment_references,omitempty"`
}

type DocumentParty struct {
	Party            Party    `json:"party"`                       //
	PartyFunction    string   `json:"party_function"`              // OS, CN, COW, COX, N1, N2, NI, DDR, DDS, BA, CA or HE.
	DisplayedAddress []string `json:"displayed_address,omitempty"` // Position significant address lines.
	IsToBeNotified   bool     `json:"is_to_be_notified"`           //
}

type Party struct {
	ID               string                 `json:"-"` // Internal storage key.
	PartyName        string                 `json:"party_name"`
	TaxReference1    string                 `json:"tax_reference_1,omitempty"`
	TaxReference2    string                 `json:"tax_reference_2,omitempty"`
	PublicKey        string                 `json:"public_key,omitempty"`
	Address          *Address               `json:"address,omitempty"`
	ContactDetails   []PartyContactDetails  `json:"party_contact_details"`
	IdentifyingCodes []PartyIdentifyingCode `json:"identifying_codes,omitempty"`
}

type PartyContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type PartyIdentifyingCode struct {
	ResponsibleAgencyCode string `json:"dcsa_responsible_agency_code"` // ISO, UNECE, LLOYD, BIC, DID, DUNS, FMC, DCSA or SMDG.
	CodeListName          string `json:"code_list_name,omitempty"`
	PartyCode             string `json:"party_code"`
}

type ShipmentLocation struct {
	Location         Location  `json:"location"`                  //
	LocationTypeCode string    `json:"shipment_location_type_code"` // PRE, POL, POD, PDE, PCF, PSR, OIR, DRL, ORI, IEL, PTP, RTP or FCD.
	DisplayedName    string    `json:"displayed_name,omitempty"`  //
	EventDateTime    *DateTime `json:"event_datetime,omitempty"`  //
}

type Location struct {
	ID             string   `json:"id,omitempty"` // Internal storage key.
	LocationName   string   `json:"location_name,omitempty"`
	UNLocationCode string   `json:"un_location_code,omitempty"`
	Latitude       string   `json:"latitude,omitempty"`
	Longitude      string   `json:"longitude,omitempty"`
	Address        *Address `json:"address,omitempty"`
}

type Address struct {
	ID           string `json:"-"` // Internal storage key.
	Name         string `json:"name,omitempty"`
	Street       string `json:"street,omitempty"`
	StreetNumber string `json:"street_number,omitempty"`
	Floor        string `json:"floor,omitempty"`
	PostCode     string `json:"post_code,omitempty"`
	City         string `json:"city,omitempty"`
	StateRegion  string `json:"state_region,omitempty"`
	Country      string `json:"country,omitempty"`
}

// Vessel is an independent entity. Bookings reference vessels but never
// create them.
type Vessel struct {
	ID              string `json:"-"` // Internal storage key.
	VesselName      string `json:"vessel_name"`
	VesselIMONumber string `json:"vessel_imo_number"`
	VesselFlag      string `json:"vessel_flag,omitempty"`
	VesselCallSign  string `json:"vessel_call_sign,omitempty"`
}
