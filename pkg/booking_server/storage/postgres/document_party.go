package postgres

import (
	"context"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

func (s *_Storage) CreateAddress(ctx context.Context, tx storage.Tx, address model.Address) error {
	query := `
INSERT INTO address (id, "name", street, street_number, floor, post_code, city, state_region, country)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.Exec(
		ctx,
		query,
		address.ID,
		address.Name,
		address.Street,
		address.StreetNumber,
		address.Floor,
		address.PostCode,
		address.City,
		address.StateRegion,
		address.Country,
	)
	return err
}

func (s *_Storage) GetAddress(ctx context.Context, tx storage.Tx, id string) (model.Address, error) {
	query := `
SELECT id, "name", street, street_number, floor, post_code, city, state_region, country
FROM address WHERE id = $1`
	address := model.Address{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.Name,
		&address.Street,
		&address.StreetNumber,
		&address.Floor,
		&address.PostCode,
		&address.City,
		&address.StateRegion,
		&address.Country,
	)
	return address, err
}

func (s *_Storage) CreateParty(ctx context.Context, tx storage.Tx, party storage.PartyRec) error {
	query := `
INSERT INTO party (id, party_name, tax_reference_1, tax_reference_2, public_key, address_id)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(
		ctx,
		query,
		party.ID,
		party.PartyName,
		party.TaxReference1,
		party.TaxReference2,
		party.PublicKey,
		party.AddressID,
	)
	return err
}

func (s *_Storage) GetParty(ctx context.Context, tx storage.Tx, id string) (storage.PartyRec, error) {
	query := `
SELECT id, party_name, tax_reference_1, tax_reference_2, public_key, address_id
FROM party WHERE id = $1`
	party := storage.PartyRec{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&party.ID,
		&party.PartyName,
		&party.TaxReference1,
		&party.TaxReference2,
		&party.PublicKey,
		&party.AddressID,
	)
	return party, err
}

func (s *_Storage) CreatePartyContactDetails(ctx context.Context, tx storage.Tx, partyID string, details []model.PartyContactDetails) error {
	query := `INSERT INTO party_contact_details (party_id, "name", email, phone) VALUES ($1, $2, $3, $4)`
	for _, d := range details {
		if _, err := tx.Exec(ctx, query, partyID, d.Name, d.Email, d.Phone); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetPartyContactDetailsByPartyID(ctx context.Context, tx storage.Tx, partyID string) ([]model.PartyContactDetails, error) {
	query := `SELECT "name", email, phone FROM party_contact_details WHERE party_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []model.PartyContactDetails
	for rows.Next() {
		d := model.PartyContactDetails{}
		if err := rows.Scan(&d.Name, &d.Email, &d.Phone); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *_Storage) CreatePartyIdentifyingCodes(ctx context.Context, tx storage.Tx, partyID string, codes []model.PartyIdentifyingCode) error {
	query := `
INSERT INTO party_identifying_code (party_id, responsible_agency_code, code_list_name, party_code)
VALUES ($1, $2, $3, $4)`
	for _, c := range codes {
		if _, err := tx.Exec(ctx, query, partyID, c.ResponsibleAgencyCode, c.CodeListName, c.PartyCode); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetPartyIdentifyingCodesByPartyID(ctx context.Context, tx storage.Tx, partyID string) ([]model.PartyIdentifyingCode, error) {
	query := `
SELECT responsible_agency_code, code_list_name, party_code
FROM party_identifying_code WHERE party_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []model.PartyIdentifyingCode
	for rows.Next() {
		c := model.PartyIdentifyingCode{}
		if err := rows.Scan(&c.ResponsibleAgencyCode, &c.CodeListName, &c.PartyCode); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

func (s *_Storage) CreateDocumentParty(ctx context.Context, tx storage.Tx, rec storage.DocumentPartyRec) error {
	query := `
INSERT INTO document_party (id, booking_id, party_id, party_function, is_to_be_notified)
VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query, rec.ID, rec.BookingID, rec.PartyID, rec.PartyFunction, rec.IsToBeNotified)
	return err
}

func (s *_Storage) GetDocumentPartiesByBookingID(ctx context.Context, tx storage.Tx, bookingID string) ([]storage.DocumentPartyRec, error) {
	query := `
SELECT id, booking_id, party_id, party_function, is_to_be_notified
FROM document_party WHERE booking_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []storage.DocumentPartyRec
	for rows.Next() {
		rec := storage.DocumentPartyRec{}
		if err := rows.Scan(&rec.ID, &rec.BookingID, &rec.PartyID, &rec.PartyFunction, &rec.IsToBeNotified); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteDocumentPartiesByBookingID removes the document party rows and their
// displayed address lines. Party rows are left behind on purpose; replace
// recreates parties from scratch.
func (s *_Storage) DeleteDocumentPartiesByBookingID(ctx context.Context, tx storage.Tx, bookingID string) (int64, error) {
	query := `
DELETE FROM displayed_address
WHERE document_party_id IN (SELECT id FROM document_party WHERE booking_id = $1)`
	if _, err := tx.Exec(ctx, query, bookingID); err != nil {
		return 0, err
	}
	result, err := tx.Exec(ctx, `DELETE FROM document_party WHERE booking_id = $1`, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *_Storage) CreateDisplayedAddresses(ctx context.Context, tx storage.Tx, documentPartyID string, lines []string) error {
	query := `
INSERT INTO displayed_address (document_party_id, address_line, address_line_number)
VALUES ($1, $2, $3)`
	for i, line := range lines {
		if _, err := tx.Exec(ctx, query, documentPartyID, line, i); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetDisplayedAddressesByDocumentPartyID(ctx context.Context, tx storage.Tx, documentPartyID string) ([]string, error) {
	query := `
SELECT address_line FROM displayed_address
WHERE document_party_id = $1 ORDER BY address_line_number ASC`
	rows, err := tx.Query(ctx, query, documentPartyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
