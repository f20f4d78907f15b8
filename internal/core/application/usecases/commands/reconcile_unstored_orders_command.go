package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var ErrReconcileUnstoredOrdersCommandIsNotConstructed = errors.New(
	"ReconcileUnstoredOrdersCommand must be created via NewReconcileUnstoredOrdersCommand constructor",
)

// ReconcileUnstoredOrdersCommand asks to retry saving paid orders that
// PlaceOrder could not store. It has no parameters.
type ReconcileUnstoredOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileUnstoredOrdersCommand() ReconcileUnstoredOrdersCommand {
	return ReconcileUnstoredOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c ReconcileUnstoredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileUnstoredOrdersCommandIsNotConstructed)
}
