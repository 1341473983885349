//go:build unit

package shift_test

import (
	"testing"
	"time"

	"shiftboard/internal/domain/shift"
	"shiftboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShift(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		s, err := builder.NewShiftBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, shift.StatusScheduled, s.Status())
	})

	t.Run("タイトル検証", func(t *testing.T) {
		cases := []struct {
			name  string
			title string
			errIs error
		}{
			{name: "タイトル有りOK", title: "Night Shift"},
			{name: "空タイトルNG", title: "", errIs: shift.ErrEmptyTitle},
			{name: "空白のみNG", title: "   ", errIs: shift.ErrEmptyTitle},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				s, err := builder.NewShiftBuilder().WithTitle(c.title).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, s)
				} else {
					require.ErrorIs(t, err, c.errIs)
					require.Nil(t, s)
				}
			})
		}
	})

	t.Run("時間帯検証", func(t *testing.T) {
		base := time.Now().Truncate(time.Hour)

		cases := []struct {
			name  string
			start time.Time
			end   time.Time
			errIs error
		}{
			{name: "終了が開始の後OK", start: base, end: base.Add(8 * time.Hour)},
			{name: "終了と開始が同時刻NG", start: base, end: base, errIs: shift.ErrInvalidTimeSpan},
			{name: "終了が開始の前NG", start: base, end: base.Add(-time.Hour), errIs: shift.ErrInvalidTimeSpan},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				s, err := builder.NewShiftBuilder().WithTimeSpan(c.start, c.end).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, s)
				} else {
					require.ErrorIs(t, err, c.errIs)
					require.Nil(t, s)
				}
			})
		}
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"SCHEDULED", "COMPLETED", "CANCELLED"} {
		st, err := shift.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, st.String())
	}

	_, err := shift.NewStatus("OPEN")
	require.ErrorIs(t, err, shift.ErrInvalidStatus)

	_, err = shift.NewStatus("scheduled")
	require.ErrorIs(t, err, shift.ErrInvalidStatus)
}
