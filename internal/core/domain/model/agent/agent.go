// Package agent provides the DeliveryAgent aggregate and its availability
// state machine.
package agent

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized DeliveryAgent.
	ErrAgentIsNotConstructed = errors.New("DeliveryAgent must be created via NewDeliveryAgent constructor")
	// ErrAgentIsBusy is returned when assigning an order to an agent that already carries one.
	ErrAgentIsBusy = errors.New("delivery agent is busy")
	// ErrAgentHasNoOrder is returned when completing a delivery for an idle agent.
	ErrAgentHasNoOrder = errors.New("delivery agent has no current order")
)

// DeliveryAgent represents a courier who carries orders from restaurants to
// customers.
//
// DeliveryAgent follows these invariants:
//   - Status is Busy if and only if a current order is set
//   - Status is Available if and only if no current order is set
//   - The delivery counter increments exactly once per completed delivery
//
// New agents start Available with no current order and zero deliveries.
type DeliveryAgent struct {
	id              kernel.ID
	name            string
	phone           string
	vehicleType     string
	status          Status
	currentOrder    *kernel.ID
	totalDeliveries int

	guard guard.ConstructorGuard
}

// NewDeliveryAgent creates an agent in Available status with no current order.
func NewDeliveryAgent(id kernel.ID, name, phone, vehicleType string) (*DeliveryAgent, error) {
	a := &DeliveryAgent{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	a.phone = phone
	a.vehicleType = vehicleType
	return a, nil
}

// RestoreDeliveryAgent reconstructs an agent aggregate from persistent storage.
// The status and current-order pairing is validated so a corrupted document
// cannot produce an agent that violates the busy-iff-carrying invariant.
func RestoreDeliveryAgent(
	id kernel.ID,
	name, phone, vehicleType string,
	status Status,
	currentOrder *kernel.ID,
	totalDeliveries int,
) (*DeliveryAgent, error) {
	a, err := NewDeliveryAgent(id, name, phone, vehicleType)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if (status == StatusBusy) != (currentOrder != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s does not match current order presence", status))
	}
	if currentOrder != nil {
		if err := currentOrder.Validate(); err != nil {
			return nil, err
		}
		orderID := *currentOrder
		a.currentOrder = &orderID
	}

	a.status = status
	a.totalDeliveries = totalDeliveries
	return a, nil
}

// Validate ensures the DeliveryAgent was created through a constructor.
func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their identifiers.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's identifier.
func (a *DeliveryAgent) ID() kernel.ID {
	return a.id
}

// Name returns the agent's name.
func (a *DeliveryAgent) Name() string {
	return a.name
}

// Phone returns the agent's phone number.
func (a *DeliveryAgent) Phone() string {
	return a.phone
}

// VehicleType returns the vehicle the agent delivers with.
func (a *DeliveryAgent) VehicleType() string {
	return a.vehicleType
}

// Status returns the agent's availability status.
func (a *DeliveryAgent) Status() Status {
	return a.status
}

// CurrentOrder returns the identifier of the order the agent is delivering.
// Returns nil while the agent is available.
func (a *DeliveryAgent) CurrentOrder() *kernel.ID {
	if a.currentOrder == nil {
		return nil
	}
	orderID := *a.currentOrder
	return &orderID
}

// TotalDeliveries returns the number of deliveries the agent has completed.
func (a *DeliveryAgent) TotalDeliveries() int {
	return a.totalDeliveries
}

// IsAvailable reports whether the agent can take an order.
func (a *DeliveryAgent) IsAvailable() bool {
	return a.status == StatusAvailable
}

// Assign gives the agent an order to deliver, moving it to Busy.
// Returns ErrAgentIsBusy if the agent already carries an order.
func (a *DeliveryAgent) Assign(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if a.status == StatusBusy {
		return ErrAgentIsBusy
	}

	a.status = StatusBusy
	a.currentOrder = &orderID
	return nil
}

// CompleteDelivery marks the current delivery as done: the agent returns to
// Available, the current order is cleared, and the delivery counter increments.
// Returns ErrAgentHasNoOrder if the agent has nothing to deliver.
func (a *DeliveryAgent) CompleteDelivery() error {
	if a.currentOrder == nil {
		return ErrAgentHasNoOrder
	}

	a.status = StatusAvailable
	a.currentOrder = nil
	a.totalDeliveries++
	return nil
}

func (a *DeliveryAgent) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAgent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}
