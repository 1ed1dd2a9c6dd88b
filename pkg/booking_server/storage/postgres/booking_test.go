package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage/postgres"
	"github.com/oceanbooking/oceanbooking/pkg/util"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BookingStorageTestSuite struct {
	BaseTestSuite
	storage storage.BookingStorage
}

func TestBookingStorage(t *testing.T) {
	suite.Run(t, new(BookingStorageTestSuite))
}

func (s *BookingStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/booking"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *BookingStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *BookingStorageTestSuite) TestCreateBooking() {
	booking := model.Booking{
		ID:                             "booking-new",
		CarrierBookingRequestReference: "ref-new",
		DocumentStatus:                 model.BookingStatusReceived,
		ReceiptTypeAtOrigin:            "CY",
		DeliveryTypeAtDestination:      "CY",
		CargoMovementTypeAtOrigin:      "FCL",
		CargoMovementTypeAtDestination: "FCL",
		ServiceContractReference:       "SC-2024-0099",
		PaymentTermCode:                "PRE",
		IsPartialLoadAllowed:           util.Ptr(false),
		IsExportDeclarationRequired:    util.Ptr(true),
		ExportDeclarationReference:     util.Ptr("ED-42"),
		IsImportLicenseRequired:        util.Ptr(false),
		ContractQuotationReference:     "CQ-7",
		ExpectedDepartureDate:          util.Ptr(model.NewDateFromStringNoError("2024-04-01")),
		TransportDocumentTypeCode:      "BOL",
		IncoTerms:                      "FOB",
		CommunicationChannelCode:       "EI",
		IsEquipmentSubstitutionAllowed: util.Ptr(true),
		ExportVoyageNumber:             "2419E",
		BookingRequestDateTime:         model.NewDateTimeFromUnix(1711901000),
		UpdatedDateTime:                model.NewDateTimeFromUnix(1711901000),
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := s.storage.CreateBooking(ctx, tx, booking)
	s.Require().NoError(err)
	s.Assert().Equal(booking.BookingRequestDateTime.Unix(), created.BookingRequestDateTime.Unix())
	s.Assert().Equal(booking.UpdatedDateTime.Unix(), created.UpdatedDateTime.Unix())
	created.BookingRequestDateTime = booking.BookingRequestDateTime
	created.UpdatedDateTime = booking.UpdatedDateTime
	s.Assert().Equal(booking, created)
	s.Require().NoError(tx.Commit(ctx))

	tx, ctx, err = s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	fetched, err := s.storage.GetBookingByReference(ctx, tx, "ref-new")
	s.Require().NoError(err)
	s.Assert().Equal("booking-new", fetched.ID)
	s.Assert().Equal(model.BookingStatusReceived, fetched.DocumentStatus)
	s.Assert().Equal(util.Ptr("ED-42"), fetched.ExportDeclarationReference)
}

func (s *BookingStorageTestSuite) TestGetBooking() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	booking, err := s.storage.GetBooking(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal("ref-1", booking.CarrierBookingRequestReference)
	s.Assert().Equal(model.BookingStatusReceived, booking.DocumentStatus)
	s.Assert().Equal("CY", booking.ReceiptTypeAtOrigin)
	s.Assert().Equal("SC-2024-0001", booking.ServiceContractReference)
	s.Assert().Nil(booking.VesselID)
	s.Assert().Nil(booking.InvoicePayableAt)

	_, err = s.storage.GetBooking(ctx, tx, "no-such-booking")
	s.Assert().ErrorIs(err, model.ErrBookingNotFound)

	_, err = s.storage.GetBookingByReference(ctx, tx, "no-such-reference")
	s.Assert().ErrorIs(err, model.ErrBookingNotFound)
}

func (s *BookingStorageTestSuite) TestUpdateBooking() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	booking, err := s.storage.GetBooking(ctx, tx, "booking-1")
	s.Require().NoError(err)

	booking.ReceiptTypeAtOrigin = "SD"
	booking.ServiceContractReference = "SC-2024-0042"
	booking.PaymentTermCode = "COL"
	booking.IsPartialLoadAllowed = util.Ptr(true)
	booking.ExpectedDepartureDate = util.Ptr(model.NewDateFromStringNoError("2024-05-01"))
	booking.UpdatedDateTime = model.NewDateTimeFromUnix(1712000000)
	s.Require().NoError(s.storage.UpdateBooking(ctx, tx, booking))

	updated, err := s.storage.GetBooking(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal("SD", updated.ReceiptTypeAtOrigin)
	s.Assert().Equal("SC-2024-0042", updated.ServiceContractReference)
	s.Assert().Equal("COL", updated.PaymentTermCode)
	s.Assert().Equal(util.Ptr(true), updated.IsPartialLoadAllowed)
	s.Assert().Equal(booking.ExpectedDepartureDate, updated.ExpectedDepartureDate)
	s.Assert().Equal(int64(1712000000), updated.UpdatedDateTime.Unix())

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestUpdateBookingStatus() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	affected, err := s.storage.UpdateBookingStatus(ctx, tx, "ref-1", model.BookingStatusCancelled, model.NewDateTimeFromUnix(1712000000))
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), affected)

	booking, err := s.storage.GetBookingByReference(ctx, tx, "ref-1")
	s.Require().NoError(err)
	s.Assert().Equal(model.BookingStatusCancelled, booking.DocumentStatus)
	s.Assert().Equal(int64(1712000000), booking.UpdatedDateTime.Unix())

	affected, err = s.storage.UpdateBookingStatus(ctx, tx, "no-such-reference", model.BookingStatusCancelled, model.NewDateTimeFromUnix(1712000000))
	s.Require().NoError(err)
	s.Assert().Equal(int64(0), affected)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestSetBookingVesselAndLocations() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.CreateLocation(ctx, tx, storage.LocationRec{
		ID:             "location-1",
		LocationName:   "Port of Rotterdam",
		UNLocationCode: "NLRTM",
	}))
	s.Require().NoError(s.storage.SetBookingVesselID(ctx, tx, "booking-1", "vessel-1"))
	s.Require().NoError(s.storage.SetBookingInvoicePayableAt(ctx, tx, "booking-1", util.Ptr("location-1")))
	s.Require().NoError(s.storage.SetBookingPlaceOfIssue(ctx, tx, "booking-1", util.Ptr("location-1")))

	booking, err := s.storage.GetBooking(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(util.Ptr("vessel-1"), booking.VesselID)
	s.Require().NotNil(booking.InvoicePayableAt)
	s.Assert().Equal("location-1", booking.InvoicePayableAt.ID)
	s.Require().NotNil(booking.PlaceOfIssue)
	s.Assert().Equal("location-1", booking.PlaceOfIssue.ID)

	s.Require().NoError(s.storage.SetBookingInvoicePayableAt(ctx, tx, "booking-1", nil))
	booking, err = s.storage.GetBooking(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Nil(booking.InvoicePayableAt)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestCommodities() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	commodities := []model.Commodity{
		{
			CommodityType:           "Electronics",
			HSCode:                  "851713",
			CargoGrossWeight:        decimal.NewFromInt(12000),
			CargoGrossWeightUnit:    "KGM",
			ExportLicenseIssueDate:  util.Ptr(model.NewDateFromStringNoError("2024-01-15")),
			ExportLicenseExpiryDate: util.Ptr(model.NewDateFromStringNoError("2024-12-31")),
		},
		{
			CommodityType:        "Furniture",
			CargoGrossWeight:     decimal.RequireFromString("850.5"),
			CargoGrossWeightUnit: "LBR",
		},
	}
	s.Require().NoError(s.storage.CreateCommodities(ctx, tx, "booking-1", commodities))

	fetched, err := s.storage.GetCommoditiesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Require().Equal(2, len(fetched))
	s.Assert().Equal("Electronics", fetched[0].CommodityType)
	s.Assert().Equal("851713", fetched[0].HSCode)
	s.Assert().True(fetched[0].CargoGrossWeight.Equal(decimal.NewFromInt(12000)))
	s.Assert().Equal("KGM", fetched[0].CargoGrossWeightUnit)
	s.Assert().Equal(commodities[0].ExportLicenseIssueDate, fetched[0].ExportLicenseIssueDate)
	s.Assert().Equal(commodities[0].ExportLicenseExpiryDate, fetched[0].ExportLicenseExpiryDate)
	s.Assert().Equal("Furniture", fetched[1].CommodityType)
	s.Assert().True(fetched[1].CargoGrossWeight.Equal(decimal.RequireFromString("850.5")))
	s.Assert().Nil(fetched[1].ExportLicenseIssueDate)

	deleted, err := s.storage.DeleteCommoditiesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), deleted)

	fetched, err = s.storage.GetCommoditiesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Empty(fetched)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestValueAddedServiceRequests() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	requests := []model.ValueAddedServiceRequest{
		{ValueAddedServiceCode: "SCON"},
		{ValueAddedServiceCode: "CINS"},
	}
	s.Require().NoError(s.storage.CreateValueAddedServiceRequests(ctx, tx, "booking-1", requests))

	fetched, err := s.storage.GetValueAddedServiceRequestsByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(requests, fetched)

	deleted, err := s.storage.DeleteValueAddedServiceRequestsByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), deleted)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestReferences() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	references := []model.Reference{
		{ReferenceType: "FF", ReferenceValue: "FF-001"},
		{ReferenceType: "PO", ReferenceValue: "PO-4711"},
	}
	s.Require().NoError(s.storage.CreateReferences(ctx, tx, "booking-1", references))

	fetched, err := s.storage.GetReferencesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(references, fetched)

	deleted, err := s.storage.DeleteReferencesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), deleted)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestRequestedEquipment() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	rec := storage.RequestedEquipmentRec{
		ID:             "equipment-1",
		BookingID:      "booking-1",
		SizeType:       "22G1",
		Units:          3,
		IsShipperOwned: true,
	}
	s.Require().NoError(s.storage.CreateRequestedEquipment(ctx, tx, rec))
	s.Require().NoError(s.storage.CreateEquipmentReferences(ctx, tx, "equipment-1", []string{"APZU4812090", "APZU4812091"}))

	recs, err := s.storage.GetRequestedEquipmentsByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Require().Equal(1, len(recs))
	s.Assert().Equal(rec, recs[0])

	references, err := s.storage.GetEquipmentReferencesByRequestedEquipmentID(ctx, tx, "equipment-1")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"APZU4812090", "APZU4812091"}, references)

	deleted, err := s.storage.DeleteEquipmentReferencesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), deleted)

	deleted, err = s.storage.DeleteRequestedEquipmentsByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), deleted)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestDocumentParties() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	address := model.Address{
		ID:           "address-1",
		Name:         "Head Office",
		Street:       "Ruijggoordweg",
		StreetNumber: "100",
		PostCode:     "1047 HM",
		City:         "Amsterdam",
		Country:      "Netherlands",
	}
	s.Require().NoError(s.storage.CreateAddress(ctx, tx, address))

	fetchedAddress, err := s.storage.GetAddress(ctx, tx, "address-1")
	s.Require().NoError(err)
	s.Assert().Equal(address, fetchedAddress)

	party := storage.PartyRec{
		ID:            "party-1",
		PartyName:     "Globeteam",
		TaxReference1: "NL859951480B01",
		AddressID:     util.Ptr("address-1"),
	}
	s.Require().NoError(s.storage.CreateParty(ctx, tx, party))

	fetchedParty, err := s.storage.GetParty(ctx, tx, "party-1")
	s.Require().NoError(err)
	s.Assert().Equal(party, fetchedParty)

	contacts := []model.PartyContactDetails{
		{Name: "Henrik Larsen", Email: "hl@globeteam.example", Phone: "+31 2 3456 7890"},
	}
	s.Require().NoError(s.storage.CreatePartyContactDetails(ctx, tx, "party-1", contacts))

	fetchedContacts, err := s.storage.GetPartyContactDetailsByPartyID(ctx, tx, "party-1")
	s.Require().NoError(err)
	s.Assert().Equal(contacts, fetchedContacts)

	codes := []model.PartyIdentifyingCode{
		{ResponsibleAgencyCode: "SMDG", CodeListName: "LCL", PartyCode: "MSK"},
	}
	s.Require().NoError(s.storage.CreatePartyIdentifyingCodes(ctx, tx, "party-1", codes))

	fetchedCodes, err := s.storage.GetPartyIdentifyingCodesByPartyID(ctx, tx, "party-1")
	s.Require().NoError(err)
	s.Assert().Equal(codes, fetchedCodes)

	documentParty := storage.DocumentPartyRec{
		ID:             "document-party-1",
		BookingID:      "booking-1",
		PartyID:        "party-1",
		PartyFunction:  "OS",
		IsToBeNotified: true,
	}
	s.Require().NoError(s.storage.CreateDocumentParty(ctx, tx, documentParty))
	s.Require().NoError(s.storage.CreateDisplayedAddresses(ctx, tx, "document-party-1", []string{"Globeteam", "Ruijggoordweg 100", "Amsterdam"}))

	documentParties, err := s.storage.GetDocumentPartiesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Require().Equal(1, len(documentParties))
	s.Assert().Equal(documentParty, documentParties[0])

	lines, err := s.storage.GetDisplayedAddressesByDocumentPartyID(ctx, tx, "document-party-1")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Globeteam", "Ruijggoordweg 100", "Amsterdam"}, lines)

	deleted, err := s.storage.DeleteDocumentPartiesByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), deleted)

	lines, err = s.storage.GetDisplayedAddressesByDocumentPartyID(ctx, tx, "document-party-1")
	s.Require().NoError(err)
	s.Assert().Empty(lines)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestShipmentLocations() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	location := storage.LocationRec{
		ID:             "location-pol",
		LocationName:   "Port of Rotterdam",
		UNLocationCode: "NLRTM",
		Latitude:       "51.9496",
		Longitude:      "4.1453",
	}
	s.Require().NoError(s.storage.CreateLocation(ctx, tx, location))

	fetchedLocation, err := s.storage.GetLocation(ctx, tx, "location-pol")
	s.Require().NoError(err)
	s.Assert().Equal(location, fetchedLocation)

	rec := storage.ShipmentLocationRec{
		BookingID:        "booking-1",
		LocationID:       "location-pol",
		LocationTypeCode: "POL",
		DisplayedName:    "Rotterdam",
		EventDateTime:    util.Ptr(model.NewDateTimeFromUnix(1712000000)),
	}
	s.Require().NoError(s.storage.CreateShipmentLocation(ctx, tx, rec))

	recs, err := s.storage.GetShipmentLocationsByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Require().Equal(1, len(recs))
	s.Assert().Equal(rec.LocationID, recs[0].LocationID)
	s.Assert().Equal(rec.LocationTypeCode, recs[0].LocationTypeCode)
	s.Assert().Equal(rec.DisplayedName, recs[0].DisplayedName)
	s.Require().NotNil(recs[0].EventDateTime)
	s.Assert().Equal(int64(1712000000), recs[0].EventDateTime.Unix())

	deleted, err := s.storage.DeleteShipmentLocationsByBookingID(ctx, tx, "booking-1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), deleted)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *BookingStorageTestSuite) TestVessels() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	vessel, err := s.storage.GetVessel(ctx, tx, "vessel-1")
	s.Require().NoError(err)
	s.Assert().Equal("OCEAN HARMONY", vessel.VesselName)
	s.Assert().Equal("9321483", vessel.VesselIMONumber)

	_, err = s.storage.GetVessel(ctx, tx, "no-such-vessel")
	s.Assert().ErrorIs(err, model.ErrVesselNotFound)

	vessel, err = s.storage.GetVesselByIMONumber(ctx, tx, "9411245")
	s.Require().NoError(err)
	s.Assert().Equal("vessel-2", vessel.ID)
	s.Assert().Equal("PACIFIC STAR", vessel.VesselName)

	_, err = s.storage.GetVesselByIMONumber(ctx, tx, "0000000")
	s.Assert().ErrorIs(err, model.ErrVesselNotFound)

	vessels, err := s.storage.GetVesselsByName(ctx, tx, "OCEAN HARMONY")
	s.Require().NoError(err)
	s.Require().Equal(1, len(vessels))
	s.Assert().Equal("vessel-1", vessels[0].ID)

	vessels, err = s.storage.GetVesselsByName(ctx, tx, "PACIFIC STAR")
	s.Require().NoError(err)
	s.Require().Equal(2, len(vessels))
	s.Assert().Equal("vessel-2", vessels[0].ID)
	s.Assert().Equal("vessel-3", vessels[1].ID)

	vessels, err = s.storage.GetVesselsByName(ctx, tx, "GHOST SHIP")
	s.Require().NoError(err)
	s.Assert().Empty(vessels)
}

func (s *BookingStorageTestSuite) TestListBookings() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	baseReq := storage.ListBookingsRequest{
		Offset: 0,
		Limit:  10,
	}

	// Ordered by booking request time, newest first.
	result, err := s.storage.ListBookings(ctx, tx, baseReq)
	s.Require().NoError(err)
	s.Assert().Equal(3, result.Total)
	s.Require().Equal(3, len(result.Records))
	s.Assert().Equal("ref-2", result.Records[0].CarrierBookingRequestReference)
	s.Assert().Equal("ref-1", result.Records[1].CarrierBookingRequestReference)
	s.Assert().Equal("ref-3", result.Records[2].CarrierBookingRequestReference)
	s.Assert().Equal(model.BookingStatusConfirmed, result.Records[0].DocumentStatus)
	s.Assert().Equal("SC-2024-0002", result.Records[0].ServiceContractReference)

	// Offset and limit.
	req := baseReq
	req.Offset = 1
	req.Limit = 1
	result, err = s.storage.ListBookings(ctx, tx, req)
	s.Require().NoError(err)
	s.Assert().Equal(3, result.Total)
	s.Require().Equal(1, len(result.Records))
	s.Assert().Equal("ref-1", result.Records[0].CarrierBookingRequestReference)

	// Status filter.
	req = baseReq
	req.DocumentStatuses = []model.BookingStatus{model.BookingStatusReceived, model.BookingStatusCancelled}
	result, err = s.storage.ListBookings(ctx, tx, req)
	s.Require().NoError(err)
	s.Assert().Equal(2, result.Total)
	s.Require().Equal(2, len(result.Records))
	s.Assert().Equal("ref-1", result.Records[0].CarrierBookingRequestReference)
	s.Assert().Equal("ref-3", result.Records[1].CarrierBookingRequestReference)

	// No match.
	req = baseReq
	req.DocumentStatuses = []model.BookingStatus{model.BookingStatusCompleted}
	result, err = s.storage.ListBookings(ctx, tx, req)
	s.Require().NoError(err)
	s.Assert().Equal(0, result.Total)
	s.Assert().Empty(result.Records)
}
