package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// DeliveryFee is the fixed surcharge added to every order regardless of its
// contents, in currency units.
const DeliveryFee = 2.99

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through a constructor. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrNoLineItems is returned when attempting to create an order without any
	// accepted line items. Such an order must never exist.
	ErrNoLineItems = errors.New("order must contain at least one line item")
	// ErrDeliveryAddressIsRequired is returned when no delivery address could be resolved.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Order represents a customer's order in the system. It is the aggregate root
// that manages the lifecycle from placement through agent assignment to
// delivery.
//
// Order follows these invariants:
//   - Must reference a valid customer and restaurant
//   - Carries at least one line item; the line items are a name/price snapshot
//     taken at placement and never change afterwards
//   - The total includes exactly one delivery fee and is rounded to 2 decimals
//   - Status transitions follow the table defined on Status
//   - The estimated delivery time is set only at agent assignment
type Order struct {
	id                kernel.ID
	customerID        kernel.ID
	restaurantID      kernel.ID
	items             []LineItem
	totalPrice        float64
	status            Status
	orderTime         time.Time
	deliveryAddress   string
	agentID           *kernel.ID
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Placed status from already-filtered line items.
// The total price is the sum of the line-item subtotals plus the delivery fee,
// rounded to 2 decimals.
//
// Callers are responsible for filtering unknown or unavailable menu items
// before construction; an empty items slice is rejected so that an order with
// zero accepted line items is never created.
func NewOrder(
	id, customerID, restaurantID kernel.ID,
	items []LineItem,
	deliveryAddress string,
	orderTime time.Time,
) (*Order, error) {
	o := &Order{
		status: StatusPlaced,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.orderTime = orderTime

	total := 0.0
	for _, li := range o.items {
		total += li.Subtotal()
	}
	o.totalPrice = kernel.RoundToCents(total + DeliveryFee)

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// preserving the captured total, lifecycle state, and assignment.
//
// The status and agent pairing is validated: a placed order must not carry an
// agent, while assigned, out-for-delivery, and delivered orders must.
func RestoreOrder(
	id, customerID, restaurantID kernel.ID,
	items []LineItem,
	totalPrice float64,
	status Status,
	orderTime time.Time,
	deliveryAddress string,
	agentID *kernel.ID,
	estimatedDelivery *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, items, deliveryAddress, orderTime)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := validateStatusAgentPairing(status, agentID != nil); err != nil {
		return nil, err
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
		assigned := *agentID
		o.agentID = &assigned
	}
	if estimatedDelivery != nil {
		eta := *estimatedDelivery
		o.estimatedDelivery = &eta
	}

	o.totalPrice = totalPrice
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order was placed against.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// Items returns a copy of the line-item snapshot.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// TotalPrice returns the order total including the delivery fee,
// rounded to 2 decimals.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderTime returns the placement timestamp.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// DeliveryAddress returns the address the order is delivered to.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// AgentID returns the assigned delivery agent's identifier.
// Returns nil while no agent is assigned.
func (o *Order) AgentID() *kernel.ID {
	if o.agentID == nil {
		return nil
	}
	id := *o.agentID
	return &id
}

// EstimatedDelivery returns the delivery estimate set at assignment.
// Returns nil while no agent is assigned.
func (o *Order) EstimatedDelivery() *time.Time {
	if o.estimatedDelivery == nil {
		return nil
	}
	eta := *o.estimatedDelivery
	return &eta
}

// Assign attaches a delivery agent and moves the order to Assigned.
// The delivery estimate is recorded at this point and only at this point.
//
// Returns an error if the agent identifier is invalid or the order is not
// awaiting assignment.
func (o *Order) Assign(agentID kernel.ID, estimatedDelivery time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	o.estimatedDelivery = &estimatedDelivery
	return nil
}

// ChangeStatus moves the order to the given status.
// Transitions outside the status table are rejected and leave the order
// unchanged. Releasing the delivery agent when an order is delivered is the
// caller's responsibility; the order keeps its agent reference for history.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func validateStatusAgentPairing(status Status, hasAgent bool) error {
	needsAgent := status == StatusAssigned || status == StatusOutForDelivery || status == StatusDelivered
	if needsAgent && !hasAgent {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no agent", status))
	}
	if status == StatusPlaced && hasAgent {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have an agent", status))
	}
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}

	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}
