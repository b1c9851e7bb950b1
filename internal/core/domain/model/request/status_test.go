package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValidate(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		wantErr bool
	}{
		{"pending is valid", Pending, false},
		{"in progress is valid", InProgress, false},
		{"unknown is invalid", Unknown, true},
		{"out of range is invalid", Status(42), true},
		{"negative is invalid", Status(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Pending", Pending.String())
	assert.Equal(t, "InProgress", InProgress.String())
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Unknown", Status(99).String())
}

func TestStatusAssign(t *testing.T) {
	t.Run("pending can be assigned", func(t *testing.T) {
		newStatus, err := Pending.Assign()
		assert.NoError(t, err)
		assert.Equal(t, InProgress, newStatus)
	})

	t.Run("in progress cannot be assigned again", func(t *testing.T) {
		_, err := InProgress.Assign()
		assert.Error(t, err)
	})

	t.Run("unknown cannot be assigned", func(t *testing.T) {
		_, err := Unknown.Assign()
		assert.Error(t, err)
	})
}

func TestStatusRelease(t *testing.T) {
	t.Run("in progress can be released", func(t *testing.T) {
		newStatus, err := InProgress.Release()
		assert.NoError(t, err)
		assert.Equal(t, Pending, newStatus)
	})

	t.Run("pending cannot be released", func(t *testing.T) {
		_, err := Pending.Release()
		assert.Error(t, err)
	})
}

func TestStatusValidateCanHaveDriver(t *testing.T) {
	tests := []struct {
		name      string
		status    Status
		hasDriver bool
		wantErr   bool
	}{
		{"pending without driver", Pending, false, false},
		{"pending with driver", Pending, true, true},
		{"in progress with driver", InProgress, true, false},
		{"in progress without driver", InProgress, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.ValidateCanHaveDriver(tt.hasDriver)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
