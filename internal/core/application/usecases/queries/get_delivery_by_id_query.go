package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetDeliveryByIDQueryIsNotConstructed = errors.New(
		"GetDeliveryByIDQuery must be created via NewGetDeliveryByIDQuery constructor",
	)
)

// GetDeliveryByIDQuery retrieves a single delivery by its identifier.
type GetDeliveryByIDQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByIDQuery creates a query for one delivery.
func NewGetDeliveryByIDQuery(deliveryID kernel.UUID) (GetDeliveryByIDQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryByIDQuery{}, err
	}

	return GetDeliveryByIDQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByIDQueryIsNotConstructed)
}

// DeliveryID returns the identifier being looked up.
func (q GetDeliveryByIDQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
