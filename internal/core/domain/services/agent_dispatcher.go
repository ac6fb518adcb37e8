package services

import (
	"errors"
	"math/rand"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/order"
)

// Delivery estimate window applied at assignment, in minutes.
const (
	minDeliveryEstimateMinutes = 15
	maxDeliveryEstimateMinutes = 45
)

// ErrAgentNotFound is returned when no delivery agent is available for order
// dispatch. This occurs when either no agents are provided or every provided
// agent is busy with another order.
var ErrAgentNotFound = errors.New("no available delivery agent found")

// AgentDispatcher is a domain service responsible for picking a delivery agent
// for a placed order and executing the assignment workflow.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting an agent uniformly at random among the available ones
//   - Estimating the delivery time at the moment of assignment
//   - Ensuring atomic order assignment workflow
//
// Business rules:
//   - Orders must be valid and awaiting assignment
//   - Only available agents are considered
//   - Every available agent has an equal chance of being selected
//   - The delivery estimate is drawn from a fixed 15 to 45 minute window
//
// Example usage:
//
//	dispatcher := NewAgentDispatcher(rnd)
//	agents := []*agent.DeliveryAgent{agent1, agent2, agent3}
//
//	assignedAgent, err := dispatcher.Dispatch(order, agents, time.Now())
//	if errors.Is(err, ErrAgentNotFound) {
//	    // Everyone is busy, the order stays placed
//	    return
//	}
type AgentDispatcher struct {
	rnd *rand.Rand
}

// NewAgentDispatcher creates a new AgentDispatcher using the given random
// source for agent selection and delivery estimates. The source is injected so
// assignment behavior stays reproducible in tests.
func NewAgentDispatcher(rnd *rand.Rand) AgentDispatcher {
	return AgentDispatcher{rnd: rnd}
}

// Dispatch picks a random available agent for the given order and executes the
// assignment workflow: the agent becomes busy with the order and the order
// moves to Assigned with a delivery estimate relative to now.
//
// Returns ErrAgentNotFound if no agent is available; the order is left
// untouched in that case.
func (d AgentDispatcher) Dispatch(
	o *order.Order,
	agents []*agent.DeliveryAgent,
	now time.Time,
) (*agent.DeliveryAgent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	selected, err := d.pickAvailableAgent(agents)
	if err != nil {
		return nil, err
	}

	if err = selected.Assign(o.ID()); err != nil {
		return nil, err
	}

	if err = o.Assign(selected.ID(), now.Add(d.deliveryEstimate())); err != nil {
		return nil, err
	}

	return selected, nil
}

// pickAvailableAgent selects one agent uniformly at random among the available
// ones. Busy agents are skipped.
func (d AgentDispatcher) pickAvailableAgent(agents []*agent.DeliveryAgent) (*agent.DeliveryAgent, error) {
	available := make([]*agent.DeliveryAgent, 0, len(agents))
	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}

		if a.IsAvailable() {
			available = append(available, a)
		}
	}

	if len(available) == 0 {
		return nil, ErrAgentNotFound
	}

	return available[d.rnd.Intn(len(available))], nil
}

// deliveryEstimate draws a random duration from the estimate window,
// bounds inclusive.
func (d AgentDispatcher) deliveryEstimate() time.Duration {
	minutes := minDeliveryEstimateMinutes +
		d.rnd.Intn(maxDeliveryEstimateMinutes-minDeliveryEstimateMinutes+1)
	return time.Duration(minutes) * time.Minute
}
