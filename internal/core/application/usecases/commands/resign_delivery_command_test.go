package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResignDeliveryCommand(t *testing.T) {
	driverID := createDriverID(t)
	requestID := createRequestID(t)

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewResignDeliveryCommand(driverID, requestID)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.DriverID().IsEqual(driverID))
		assert.True(t, cmd.RequestID().IsEqual(requestID))
	})

	t.Run("rejects invalid ids", func(t *testing.T) {
		_, err := commands.NewResignDeliveryCommand(kernel.DriverID{}, requestID)
		assert.Error(t, err)

		_, err = commands.NewResignDeliveryCommand(driverID, kernel.RequestID{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ResignDeliveryCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrResignDeliveryCommandIsNotConstructed)
	})
}
