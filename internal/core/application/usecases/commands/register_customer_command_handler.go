package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. Allocates the next customer identifier and creates the
// aggregate with an empty order history.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration operations.
// Requires a CustomerUoWFactory for transactional persistence.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Returns the identifier assigned to the new customer.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	customerID, err := customerRepo.NextID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	aggregate, err := customer.NewCustomer(customerID, cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = customerRepo.Add(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return customerID, nil
}
