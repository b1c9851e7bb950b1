package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateStockCommand(t *testing.T) {
	driverID := createDriverID(t)

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewUpdateStockCommand(driverID, 4)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, 4, cmd.Amount())
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		_, err := commands.NewUpdateStockCommand(driverID, 0)
		assert.ErrorIs(t, err, commands.ErrAmountIsInvalid)

		_, err = commands.NewUpdateStockCommand(driverID, -2)
		assert.ErrorIs(t, err, commands.ErrAmountIsInvalid)
	})

	t.Run("rejects invalid driver id", func(t *testing.T) {
		_, err := commands.NewUpdateStockCommand(kernel.DriverID{}, 4)
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateStockCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateStockCommandIsNotConstructed)
	})
}

func TestUpdateStockCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	driverID := createDriverID(t)
	driverEntity := createDriverWithStock(t, 2)

	cmd, err := commands.NewUpdateStockCommand(driverID, 5)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("GetForUpdate", ctx, driverID).Return(driverEntity, nil).Once(),
		mockRepo.On("Update", ctx, driverEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateStockCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 7, driverEntity.Stock())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStockCommandHandler_Handle_ExceedsCap(t *testing.T) {
	// Arrange
	ctx := t.Context()
	driverID := createDriverID(t)
	driverEntity := createDriverWithStock(t, 7)

	cmd, err := commands.NewUpdateStockCommand(driverID, 5)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("DriverRepository").Return(mockRepo).Once()
	mockRepo.On("GetForUpdate", ctx, driverID).Return(driverEntity, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateStockCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, 7, driverEntity.Stock())
	mockRepo.AssertNotCalled(t, "Update", ctx, driverEntity)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateStockCommandHandler_Handle_DriverNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	driverID := createDriverID(t)

	cmd, err := commands.NewUpdateStockCommand(driverID, 3)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("DriverRepository").Return(mockRepo).Once()
	mockRepo.On("GetForUpdate", ctx, driverID).
		Return((*driver.Driver)(nil), errs.NewObjectNotFoundError("driverID", driverID.String())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateStockCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
