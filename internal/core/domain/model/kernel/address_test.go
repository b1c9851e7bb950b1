package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should accept addresses inside service areas", func(t *testing.T) {
		for _, value := range []string{
			"三鷹市下連雀1-1-1",
			"武蔵野市吉祥寺本町2-2-2",
		} {
			addr, err := kernel.NewAddress(value)
			require.NoError(t, err, value)
			assert.Equal(t, value, addr.String())
			assert.NoError(t, addr.Validate())
		}
	})

	t.Run("should reject empty address", func(t *testing.T) {
		_, err := kernel.NewAddress("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject addresses outside service areas", func(t *testing.T) {
		for _, value := range []string{
			"新宿区西新宿1-1-1",
			"somewhere else entirely",
		} {
			_, err := kernel.NewAddress(value)
			require.Error(t, err, value)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestAddress_IsEqual(t *testing.T) {
	addr1, err := kernel.NewAddress("三鷹市下連雀1-1-1")
	require.NoError(t, err)
	addr2, err := kernel.NewAddress("武蔵野市中町1-5-5")
	require.NoError(t, err)
	addr3, err := kernel.NewAddress("三鷹市下連雀1-1-1")
	require.NoError(t, err)

	assert.True(t, addr1.IsEqual(addr3))
	assert.False(t, addr1.IsEqual(addr2))
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var addr kernel.Address
		err := addr.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})
}
