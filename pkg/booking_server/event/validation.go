package event

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

func ValidateListEventsRequest(req storage.ListEventsRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Limit, validation.Required),
		validation.Field(&req.Offset, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
