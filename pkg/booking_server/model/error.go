package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrBookingError = errors.New("")     // Base error for Booking
var ErrVesselError = errors.New("")      // Base error for Vessel
var ErrShipmentError = errors.New("")    // Base error for Shipment
var ErrEventError = errors.New("")       // Base error for Shipment Event

// Booking errors
var ErrBookingNotFound = fmt.Errorf("booking not found%w", ErrBookingError)
var ErrInvalidBookingStatus = fmt.Errorf("booking status does not allow the operation%w", ErrBookingError)
var ErrBookingUpdateFailed = fmt.Errorf("booking update failed%w", ErrBookingError)

// Vessel errors
var ErrVesselNotFound = fmt.Errorf("vessel not found%w", ErrVesselError)
var ErrVesselNameConflict = fmt.Errorf("vessel name does not match existing vessel IMO number%w", ErrVesselError)
var ErrVesselAmbiguous = fmt.Errorf("unable to identify unique vessel, provide a vessel IMO number%w", ErrVesselError)

// Shipment errors
var ErrShipmentNotFound = fmt.Errorf("shipment not found%w", ErrShipmentError)

// Shipment Event errors
var ErrEventCreationFailed = fmt.Errorf("failed to create shipment event%w", ErrEventError)
var ErrCallbackUnreachable = fmt.Errorf("callback endpoint is unreachable%w", ErrEventError)
