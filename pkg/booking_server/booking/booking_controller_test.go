package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/booking"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/oceanbooking/oceanbooking/pkg/util"
	mock_event "github.com/oceanbooking/oceanbooking/test/mock/booking_server/event"
	mock_storage "github.com/oceanbooking/oceanbooking/test/mock/booking_server/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BookingManagerTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	storage    *mock_storage.MockBookingStorage
	tx         *mock_storage.MockTx
	eventCtrl  *mock_event.MockEventController
	bookingMgr booking.BookingManager
}

func TestBookingManager(t *testing.T) {
	suite.Run(t, new(BookingManagerTestSuite))
}

func (s *BookingManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockBookingStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.eventCtrl = mock_event.NewMockEventController(s.ctrl)
	s.bookingMgr = booking.NewBookingManager(s.storage, s.eventCtrl)
}

func (s *BookingManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func validBooking() model.Booking {
	departure := model.NewDateFromStringNoError("2024-04-01")
	return model.Booking{
		ReceiptTypeAtOrigin:            "CY",
		DeliveryTypeAtDestination:      "CY",
		CargoMovementTypeAtOrigin:      "FCL",
		CargoMovementTypeAtDestination: "FCL",
		ServiceContractReference:       "SC-2024-0001",
		CommunicationChannelCode:       "EI",
		IsPartialLoadAllowed:           util.Ptr(false),
		IsExportDeclarationRequired:    util.Ptr(false),
		IsImportLicenseRequired:        util.Ptr(false),
		IsEquipmentSubstitutionAllowed: util.Ptr(true),
		ExpectedDepartureDate:          &departure,
		Commodities: []model.Commodity{
			{
				CommodityType:        "Mobile phones",
				HSCode:               "851712",
				CargoGrossWeight:     decimal.NewFromInt(12000),
				CargoGrossWeightUnit: "KGM",
			},
		},
	}
}

// expectEmptyAssembly registers the aggregate fetches of a booking without
// requested equipments, document parties or shipment locations.
func (s *BookingManagerTestSuite) expectEmptyAssembly(commodities []model.Commodity) {
	s.storage.EXPECT().GetCommoditiesByBookingID(gomock.Any(), s.tx, gomock.Any()).Return(commodities, nil)
	s.storage.EXPECT().GetValueAddedServiceRequestsByBookingID(gomock.Any(), s.tx, gomock.Any()).Return(nil, nil)
	s.storage.EXPECT().GetReferencesByBookingID(gomock.Any(), s.tx, gomock.Any()).Return(nil, nil)
	s.storage.EXPECT().GetRequestedEquipmentsByBookingID(gomock.Any(), s.tx, gomock.Any()).Return(nil, nil)
	s.storage.EXPECT().GetDocumentPartiesByBookingID(gomock.Any(), s.tx, gomock.Any()).Return(nil, nil)
	s.storage.EXPECT().GetShipmentLocationsByBookingID(gomock.Any(), s.tx, gomock.Any()).Return(nil, nil)
}

func (s *BookingManagerTestSuite) TestCreateBooking() {
	ts := time.Now().Unix()
	req := booking.CreateBookingRequest{Booking: validBooking()}

	var persisted model.Booking
	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.storage.EXPECT().CreateBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, b model.Booking) (model.Booking, error) {
			s.Assert().NotEmpty(b.ID)
			s.Assert().NotEmpty(b.CarrierBookingRequestReference)
			s.Assert().Equal(model.BookingStatusReceived, b.DocumentStatus)
			s.Assert().Nil(b.VesselID)
			s.Assert().Equal(ts, b.BookingRequestDateTime.Unix())
			s.Assert().Equal(ts, b.UpdatedDateTime.Unix())
			persisted = b
			return b, nil
		},
	)
	s.storage.EXPECT().CreateCommodities(gomock.Any(), s.tx, gomock.Any(), req.Booking.Commodities).Return(nil)
	s.storage.EXPECT().CreateValueAddedServiceRequests(gomock.Any(), s.tx, gomock.Any(), gomock.Len(0)).Return(nil)
	s.storage.EXPECT().CreateReferences(gomock.Any(), s.tx, gomock.Any(), gomock.Len(0)).Return(nil)
	s.storage.EXPECT().SetBookingInvoicePayableAt(gomock.Any(), s.tx, gomock.Any(), gomock.Nil()).Return(nil)
	s.storage.EXPECT().SetBookingPlaceOfIssue(gomock.Any(), s.tx, gomock.Any(), gomock.Nil()).Return(nil)
	s.storage.EXPECT().GetBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, id string) (model.Booking, error) {
			s.Assert().Equal(persisted.ID, id)
			return persisted, nil
		},
	)
	s.expectEmptyAssembly(req.Booking.Commodities)
	s.eventCtrl.EXPECT().EmitBookingEvent(gomock.Any(), s.tx, ts, gomock.Any(), "").Return(model.ShipmentEvent{}, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	res, err := s.bookingMgr.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().NotEmpty(res.CarrierBookingRequestReference)
	s.Assert().Equal(model.BookingStatusReceived, res.DocumentStatus)
	s.Assert().Equal(req.Booking.Commodities, res.Commodities)
	s.Assert().Empty(res.ValueAddedServiceRequests)
	s.Assert().NotNil(res.ValueAddedServiceRequests)
	s.Assert().Empty(res.References)
}

func (s *BookingManagerTestSuite) TestCreateBookingWithChildren() {
	ts := time.Now().Unix()
	b := validBooking()
	b.RequestedEquipments = []model.RequestedEquipment{
		{
			SizeType:            "22G1",
			Units:               2,
			EquipmentReferences: []string{"APZU4812090", "APZU4812091"},
		},
	}
	b.DocumentParties = []model.DocumentParty{
		{
			Party: model.Party{
				PartyName: "O->C Forwarding Ltd.",
				Address:   &model.Address{Street: "Ruijterkade", City: "Amsterdam", Country: "Netherlands"},
				ContactDetails: []model.PartyContactDetails{
					{Name: "Henrik", Email: "henrik@example.com"},
				},
				IdentifyingCodes: []model.PartyIdentifyingCode{
					{ResponsibleAgencyCode: "SMDG", PartyCode: "MSK"},
				},
			},
			PartyFunction:    "CN",
			DisplayedAddress: []string{"Ruijterkade 7", "Amsterdam"},
			IsToBeNotified:   true,
		},
	}
	b.ShipmentLocations = []model.ShipmentLocation{
		{
			Location:         model.Location{LocationName: "Rotterdam", UNLocationCode: "NLRTM"},
			LocationTypeCode: "POL",
		},
	}
	b.InvoicePayableAt = &model.Location{UNLocationCode: "NLRTM"}
	req := booking.CreateBookingRequest{Booking: b}

	var persisted model.Booking
	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.storage.EXPECT().CreateBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, b model.Booking) (model.Booking, error) {
			persisted = b
			return b, nil
		},
	)
	s.storage.EXPECT().CreateCommodities(gomock.Any(), s.tx, gomock.Any(), b.Commodities).Return(nil)
	s.storage.EXPECT().CreateValueAddedServiceRequests(gomock.Any(), s.tx, gomock.Any(), gomock.Len(0)).Return(nil)
	s.storage.EXPECT().CreateReferences(gomock.Any(), s.tx, gomock.Any(), gomock.Len(0)).Return(nil)

	var equipmentID string
	s.storage.EXPECT().CreateRequestedEquipment(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, rec storage.RequestedEquipmentRec) error {
			s.Assert().NotEmpty(rec.ID)
			s.Assert().Equal("22G1", rec.SizeType)
			s.Assert().Equal(2, rec.Units)
			equipmentID = rec.ID
			return nil
		},
	)
	s.storage.EXPECT().CreateEquipmentReferences(gomock.Any(), s.tx, gomock.Any(), b.RequestedEquipments[0].EquipmentReferences).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, requestedEquipmentID string, references []string) error {
			s.Assert().Equal(equipmentID, requestedEquipmentID)
			return nil
		},
	)

	var addressID, partyID string
	s.storage.EXPECT().CreateAddress(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, address model.Address) error {
			s.Assert().NotEmpty(address.ID)
			s.Assert().Equal("Amsterdam", address.City)
			addressID = address.ID
			return nil
		},
	)
	s.storage.EXPECT().CreateParty(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, party storage.PartyRec) error {
			s.Require().NotNil(party.AddressID)
			s.Assert().Equal(addressID, *party.AddressID)
			partyID = party.ID
			return nil
		},
	)
	s.storage.EXPECT().CreatePartyContactDetails(gomock.Any(), s.tx, gomock.Any(), b.DocumentParties[0].Party.ContactDetails).Return(nil)
	s.storage.EXPECT().CreatePartyIdentifyingCodes(gomock.Any(), s.tx, gomock.Any(), b.DocumentParties[0].Party.IdentifyingCodes).Return(nil)
	s.storage.EXPECT().CreateDocumentParty(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, rec storage.DocumentPartyRec) error {
			s.Assert().Equal(partyID, rec.PartyID)
			s.Assert().Equal("CN", rec.PartyFunction)
			s.Assert().True(rec.IsToBeNotified)
			return nil
		},
	)
	s.storage.EXPECT().CreateDisplayedAddresses(gomock.Any(), s.tx, gomock.Any(), b.DocumentParties[0].DisplayedAddress).Return(nil)

	// The shipment location and the invoice payable at each create a
	// location row.
	s.storage.EXPECT().CreateLocation(gomock.Any(), s.tx, gomock.Any()).Return(nil).Times(2)
	s.storage.EXPECT().CreateShipmentLocation(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, rec storage.ShipmentLocationRec) error {
			s.Assert().Equal("POL", rec.LocationTypeCode)
			s.Assert().NotEmpty(rec.LocationID)
			return nil
		},
	)
	s.storage.EXPECT().SetBookingInvoicePayableAt(gomock.Any(), s.tx, gomock.Any(), gomock.Not(gomock.Nil())).Return(nil)
	s.storage.EXPECT().SetBookingPlaceOfIssue(gomock.Any(), s.tx, gomock.Any(), gomock.Nil()).Return(nil)

	// The re-read returns the row as it is persisted: no child collections
	// and the invoice payable at reduced to a location reference.
	s.storage.EXPECT().GetBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, id string) (model.Booking, error) {
			root := persisted
			root.Commodities = nil
			root.RequestedEquipments = nil
			root.DocumentParties = nil
			root.ShipmentLocations = nil
			root.InvoicePayableAt = &model.Location{ID: "location-1"}
			return root, nil
		},
	)
	s.storage.EXPECT().GetLocation(gomock.Any(), s.tx, "location-1").Return(
		storage.LocationRec{ID: "location-1", UNLocationCode: "NLRTM"}, nil)
	s.expectEmptyAssembly(b.Commodities)
	s.eventCtrl.EXPECT().EmitBookingEvent(gomock.Any(), s.tx, ts, gomock.Any(), "").Return(model.ShipmentEvent{}, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	res, err := s.bookingMgr.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Require().NotNil(res.InvoicePayableAt)
	s.Assert().Equal("NLRTM", res.InvoicePayableAt.UNLocationCode)
}

func (s *BookingManagerTestSuite) TestCreateBookingWithVesselIMONumber() {
	ts := time.Now().Unix()
	b := validBooking()
	b.VesselIMONumber = "9321483"
	req := booking.CreateBookingRequest{Booking: b}

	vessel := model.Vessel{ID: "vessel-1", VesselName: "King of the Seas", VesselIMONumber: "9321483"}

	var persisted model.Booking
	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	// The insert round-trips only the booking columns: the vessel fields of
	// the request are not part of the row, and vessel_id is still unset.
	s.storage.EXPECT().CreateBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, b model.Booking) (model.Booking, error) {
			stored := b
			stored.VesselName = ""
			stored.VesselIMONumber = ""
			stored.VesselID = nil
			stored.Commodities = nil
			persisted = stored
			return stored, nil
		},
	)
	gomock.InOrder(
		s.storage.EXPECT().GetVesselByIMONumber(gomock.Any(), s.tx, "9321483").Return(vessel, nil),
		s.storage.EXPECT().SetBookingVesselID(gomock.Any(), s.tx, gomock.Any(), "vessel-1").Return(nil),
	)
	s.storage.EXPECT().CreateCommodities(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().CreateValueAddedServiceRequests(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().CreateReferences(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().SetBookingInvoicePayableAt(gomock.Any(), s.tx, gomock.Any(), gomock.Nil()).Return(nil)
	s.storage.EXPECT().SetBookingPlaceOfIssue(gomock.Any(), s.tx, gomock.Any(), gomock.Nil()).Return(nil)
	s.storage.EXPECT().GetBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, id string) (model.Booking, error) {
			s.Assert().Equal(persisted.ID, id)
			root := persisted
			root.VesselID = util.Ptr("vessel-1")
			return root, nil
		},
	)
	s.storage.EXPECT().GetVessel(gomock.Any(), s.tx, "vessel-1").Return(vessel, nil)
	s.expectEmptyAssembly(b.Commodities)
	s.eventCtrl.EXPECT().EmitBookingEvent(gomock.Any(), s.tx, ts, gomock.Any(), "").Return(model.ShipmentEvent{}, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	res, err := s.bookingMgr.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal("King of the Seas", res.VesselName)
	s.Assert().Equal("9321483", res.VesselIMONumber)
}

func (s *BookingManagerTestSuite) TestCreateBookingVesselNameConflict() {
	ts := time.Now().Unix()
	b := validBooking()
	b.VesselName = "Queen of the Seas"
	b.VesselIMONumber = "9321483"
	req := booking.CreateBookingRequest{Booking: b}

	vessel := model.Vessel{ID: "vessel-1", VesselName: "King of the Seas", VesselIMONumber: "9321483"}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().CreateBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, b model.Booking) (model.Booking, error) {
				return b, nil
			},
		),
		s.storage.EXPECT().GetVesselByIMONumber(gomock.Any(), s.tx, "9321483").Return(vessel, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bookingMgr.Create(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrVesselNameConflict)
}

func (s *BookingManagerTestSuite) TestCreateBookingVesselAmbiguous() {
	ts := time.Now().Unix()
	b := validBooking()
	b.VesselName = "King of the Seas"
	req := booking.CreateBookingRequest{Booking: b}

	vessels := []model.Vessel{
		{ID: "vessel-1", VesselName: "King of the Seas"},
		{ID: "vessel-2", VesselName: "King of the Seas"},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().CreateBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, b model.Booking) (model.Booking, error) {
				return b, nil
			},
		),
		s.storage.EXPECT().GetVesselsByName(gomock.Any(), s.tx, "King of the Seas").Return(vessels, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bookingMgr.Create(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrVesselAmbiguous)
}

func (s *BookingManagerTestSuite) TestCreateBookingVesselNotFound() {
	ts := time.Now().Unix()
	b := validBooking()
	b.VesselName = "Ghost Ship"
	req := booking.CreateBookingRequest{Booking: b}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().CreateBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, b model.Booking) (model.Booking, error) {
				return b, nil
			},
		),
		s.storage.EXPECT().GetVesselsByName(gomock.Any(), s.tx, "Ghost Ship").Return(nil, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bookingMgr.Create(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrVesselNotFound)
}

func (s *BookingManagerTestSuite) TestCreateBookingValidationError() {
	ts := time.Now().Unix()

	b := validBooking()
	b.Commodities = nil
	_, err := s.bookingMgr.Create(s.ctx, ts, booking.CreateBookingRequest{Booking: b})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	b = validBooking()
	b.IsImportLicenseRequired = util.Ptr(true)
	_, err = s.bookingMgr.Create(s.ctx, ts, booking.CreateBookingRequest{Booking: b})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	b = validBooking()
	b.ExpectedDepartureDate = nil
	_, err = s.bookingMgr.Create(s.ctx, ts, booking.CreateBookingRequest{Booking: b})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	b = validBooking()
	b.RequestedEquipments = []model.RequestedEquipment{
		{SizeType: "22G1", Units: 1, EquipmentReferences: []string{"APZU4812090", "APZU4812091"}},
	}
	_, err = s.bookingMgr.Create(s.ctx, ts, booking.CreateBookingRequest{Booking: b})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *BookingManagerTestSuite) TestUpdateBooking() {
	ts := time.Now().Unix()
	requestedAt := model.NewDateTimeFromUnix(ts - 3600)

	oldBooking := validBooking()
	oldBooking.ID = "booking-1"
	oldBooking.CarrierBookingRequestReference = "ref-1"
	oldBooking.DocumentStatus = model.BookingStatusPendingUpdate
	oldBooking.BookingRequestDateTime = requestedAt
	oldBooking.UpdatedDateTime = requestedAt

	newBooking := validBooking()
	newBooking.ServiceContractReference = "SC-2024-0002"
	req := booking.UpdateBookingRequest{Reference: "ref-1", Booking: newBooking}

	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.storage.EXPECT().GetBookingByReference(gomock.Any(), s.tx, "ref-1").Return(oldBooking, nil)
	s.storage.EXPECT().UpdateBooking(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, b model.Booking) error {
			s.Assert().Equal("booking-1", b.ID)
			s.Assert().Equal("ref-1", b.CarrierBookingRequestReference)
			s.Assert().Equal(model.BookingStatusPendingUpdate, b.DocumentStatus)
			s.Assert().Equal("SC-2024-0002", b.ServiceContractReference)
			s.Assert().Equal(requestedAt, b.BookingRequestDateTime)
			s.Assert().Equal(ts, b.UpdatedDateTime.Unix())
			return nil
		},
	)

	s.storage.EXPECT().DeleteCommoditiesByBookingID(gomock.Any(), s.tx, "booking-1").Return(int64(1), nil)
	s.storage.EXPECT().DeleteValueAddedServiceRequestsByBookingID(gomock.Any(), s.tx, "booking-1").Return(int64(0), nil)
	s.storage.EXPECT().DeleteReferencesByBookingID(gomock.Any(), s.tx, "booking-1").Return(int64(0), nil)
	s.storage.EXPECT().DeleteEquipmentReferencesByBookingID(gomock.Any(), s.tx, "booking-1").Return(int64(0), nil)
	s.storage.EXPECT().DeleteRequestedEquipmentsByBookingID(gomock.Any(), s.tx, "booking-1").Return(int64(0), nil)
	s.storage.EXPECT().DeleteDocumentPartiesByBookingID(gomock.Any(), s.tx, "booking-1").Return(int64(0), nil)
	s.storage.EXPECT().DeleteShipmentLocationsByBookingID(gomock.Any(), s.tx, "booking-1").Return(int64(0), nil)
	s.storage.EXPECT().CreateCommodities(gomock.Any(), s.tx, "booking-1", newBooking.Commodities).Return(nil)
	s.storage.EXPECT().CreateValueAddedServiceRequests(gomock.Any(), s.tx, "booking-1", gomock.Len(0)).Return(nil)
	s.storage.EXPECT().CreateReferences(gomock.Any(), s.tx, "booking-1", gomock.Len(0)).Return(nil)
	s.storage.EXPECT().SetBookingInvoicePayableAt(gomock.Any(), s.tx, "booking-1", gomock.Nil()).Return(nil)
	s.storage.EXPECT().SetBookingPlaceOfIssue(gomock.Any(), s.tx, "booking-1", gomock.Nil()).Return(nil)

	updated := oldBooking
	updated.ServiceContractReference = "SC-2024-0002"
	updated.UpdatedDateTime = model.NewDateTimeFromUnix(ts)
	s.storage.EXPECT().GetBooking(gomock.Any(), s.tx, "booking-1").Return(updated, nil)
	s.expectEmptyAssembly(newBooking.Commodities)
	s.eventCtrl.EXPECT().EmitBookingEvent(gomock.Any(), s.tx, ts, gomock.Any(), "").Return(model.ShipmentEvent{}, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	res, err := s.bookingMgr.UpdateByReference(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal("ref-1", res.CarrierBookingRequestReference)
	s.Assert().Equal("SC-2024-0002", res.ServiceContractReference)
	s.Assert().Equal(model.BookingStatusPendingUpdate, res.DocumentStatus)
}

func (s *BookingManagerTestSuite) TestUpdateBookingInvalidStatus() {
	ts := time.Now().Unix()

	oldBooking := validBooking()
	oldBooking.ID = "booking-1"
	oldBooking.DocumentStatus = model.BookingStatusConfirmed

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetBookingByReference(gomock.Any(), s.tx, "ref-1").Return(oldBooking, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	req := booking.UpdateBookingRequest{Reference: "ref-1", Booking: validBooking()}
	_, err := s.bookingMgr.UpdateByReference(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrInvalidBookingStatus)
}

func (s *BookingManagerTestSuite) TestUpdateBookingNotFound() {
	ts := time.Now().Unix()

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetBookingByReference(gomock.Any(), s.tx, "no-such-ref").Return(model.Booking{}, model.ErrBookingNotFound),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	req := booking.UpdateBookingRequest{Reference: "no-such-ref", Booking: validBooking()}
	_, err := s.bookingMgr.UpdateByReference(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrBookingNotFound)
}

func (s *BookingManagerTestSuite) TestCancelBooking() {
	ts := time.Now().Unix()

	oldBooking := validBooking()
	oldBooking.ID = "booking-1"
	oldBooking.CarrierBookingRequestReference = "ref-1"
	oldBooking.DocumentStatus = model.BookingStatusConfirmed

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetBookingByReference(gomock.Any(), s.tx, "ref-1").Return(oldBooking, nil),
		s.storage.EXPECT().UpdateBookingStatus(gomock.Any(), s.tx, "ref-1", model.BookingStatusCancelled, model.NewDateTimeFromUnix(ts)).Return(int64(1), nil),
		s.eventCtrl.EXPECT().EmitBookingEvent(gomock.Any(), s.tx, ts, gomock.Any(), "shipper ordered elsewhere").DoAndReturn(
			func(ctx context.Context, tx storage.Tx, ts int64, b model.Booking, reason string) (model.ShipmentEvent, error) {
				s.Assert().Equal(model.BookingStatusCancelled, b.DocumentStatus)
				return model.ShipmentEvent{}, nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	req := booking.CancelBookingRequest{Reference: "ref-1", Reason: "shipper ordered elsewhere"}
	res, err := s.bookingMgr.CancelByReference(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(model.BookingStatusCancelled, res.DocumentStatus)
	s.Assert().Equal(ts, res.UpdatedDateTime.Unix())
}

func (s *BookingManagerTestSuite) TestCancelBookingInvalidStatus() {
	ts := time.Now().Unix()

	oldBooking := validBooking()
	oldBooking.DocumentStatus = model.BookingStatusCompleted

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetBookingByReference(gomock.Any(), s.tx, "ref-1").Return(oldBooking, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bookingMgr.CancelByReference(s.ctx, ts, booking.CancelBookingRequest{Reference: "ref-1"})
	s.Require().ErrorIs(err, model.ErrInvalidBookingStatus)
}

func (s *BookingManagerTestSuite) TestCancelBookingUpdateFailed() {
	ts := time.Now().Unix()

	oldBooking := validBooking()
	oldBooking.DocumentStatus = model.BookingStatusReceived

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetBookingByReference(gomock.Any(), s.tx, "ref-1").Return(oldBooking, nil),
		s.storage.EXPECT().UpdateBookingStatus(gomock.Any(), s.tx, "ref-1", model.BookingStatusCancelled, gomock.Any()).Return(int64(0), nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bookingMgr.CancelByReference(s.ctx, ts, booking.CancelBookingRequest{Reference: "ref-1"})
	s.Require().ErrorIs(err, model.ErrBookingUpdateFailed)
}

func (s *BookingManagerTestSuite) TestGetBooking() {
	b := validBooking()
	b.ID = "booking-1"
	b.CarrierBookingRequestReference = "ref-1"
	b.DocumentStatus = model.BookingStatusReceived
	b.VesselID = util.Ptr("vessel-1")

	s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil)
	s.storage.EXPECT().GetBookingByReference(gomock.Any(), s.tx, "ref-1").Return(b, nil)
	s.expectEmptyAssembly(b.Commodities)
	s.storage.EXPECT().GetVessel(gomock.Any(), s.tx, "vessel-1").Return(
		model.Vessel{ID: "vessel-1", VesselName: "King of the Seas", VesselIMONumber: "9321483"}, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	res, err := s.bookingMgr.Get(s.ctx, "ref-1")
	s.Require().NoError(err)
	s.Assert().Equal("King of the Seas", res.VesselName)
	s.Assert().Equal("9321483", res.VesselIMONumber)
	s.Assert().Equal(b.Commodities, res.Commodities)
}

func (s *BookingManagerTestSuite) TestListBookings() {
	req := storage.ListBookingsRequest{
		Offset:           0,
		Limit:            20,
		DocumentStatuses: []model.BookingStatus{model.BookingStatusReceived},
	}
	result := storage.ListBookingsResult{
		Total: 1,
		Records: []model.BookingSummary{
			{CarrierBookingRequestReference: "ref-1", DocumentStatus: model.BookingStatusReceived},
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListBookings(gomock.Any(), s.tx, req).Return(result, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.bookingMgr.List(s.ctx, req)
	s.Require().NoError(err)
	s.Assert().Equal(result, res)

	_, err = s.bookingMgr.List(s.ctx, storage.ListBookingsRequest{Offset: 0, Limit: 0})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}
