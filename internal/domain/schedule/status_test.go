package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Active(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusConfirmed.Active())

	assert.False(t, StatusCanceled.Active())
	assert.False(t, StatusCompleted.Active())
	assert.False(t, StatusNoShow.Active())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusNoShow.Valid())

	assert.False(t, Status("WAITING").Valid())
	assert.False(t, Status("").Valid())
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, DefaultStatus())
}
