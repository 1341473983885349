//go:build unit

package timesheet_test

import (
	"testing"
	"time"

	"shiftboard/internal/domain/timesheet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	shiftID := uuid.New()
	clockIn := time.Now().UTC().Truncate(time.Second)

	e := timesheet.NewEntry(companyID, userID, shiftID, clockIn)
	require.NotNil(t, e)

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.Equal(t, companyID, e.CompanyID())
	assert.Equal(t, userID, e.UserID())
	assert.Equal(t, shiftID, e.ShiftID())
	assert.Equal(t, clockIn, e.ClockIn())
}
