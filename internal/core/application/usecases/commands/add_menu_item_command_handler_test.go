package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

func TestAddMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	eatery := testRestaurant(t)
	cmd, err := commands.NewAddMenuItemCommand(eatery.ID(), "Tiramisu", 6.50, "House made", "desserts")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, eatery.ID()).Return(eatery, nil).Once(),
		restaurantRepo.On("Update", ctx, mock.AnythingOfType("*restaurant.Restaurant")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddMenuItemCommandHandler(factory)
	itemID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// The fixture already carries item_1 and item_2
	assert.Equal(t, 3, itemID.Sequence())
	assert.Len(t, eatery.Menu(), 3)

	added, err := eatery.MenuItem(itemID)
	require.NoError(t, err)
	assert.Equal(t, "Tiramisu", added.Name())
	assert.True(t, added.IsAvailable())
}

func TestAddMenuItemCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := context.Background()

	restaurantID := testID(t, kernel.RestaurantPrefix, 9)
	cmd, err := commands.NewAddMenuItemCommand(restaurantID, "Tiramisu", 6.50, "", "desserts")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurant_id", restaurantID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddMenuItemCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	restaurantRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddMenuItemCommand_Validation(t *testing.T) {
	eatery := testRestaurant(t)

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(eatery.ID(), "", 6.50, "", "")
		assert.ErrorIs(t, err, commands.ErrMenuItemNameIsRequired)
	})

	t.Run("rejects unconstructed restaurant id", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(kernel.ID{}, "Tiramisu", 6.50, "", "")
		assert.Error(t, err)
	})
}
