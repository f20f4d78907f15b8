package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrMarkOrderPreparingCommandIsNotConstructed = errors.New(
	"MarkOrderPreparingCommand must be created via NewMarkOrderPreparingCommand constructor",
)

// MarkOrderPreparingCommand moves a paid order to the barista.
//
// Example:
//
//	cmd, err := NewMarkOrderPreparingCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	outcome, err := handler.Handle(ctx, cmd)
//	if err == nil && !outcome.Transitioned {
//	    // the order was not Paid
//	}
type MarkOrderPreparingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderPreparingCommand(orderID kernel.UUID) (MarkOrderPreparingCommand, error) {
	command := MarkOrderPreparingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkOrderPreparingCommand{}, err
	}

	return command, nil
}

func (c MarkOrderPreparingCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPreparingCommandIsNotConstructed)
}

func (c MarkOrderPreparingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderPreparingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
