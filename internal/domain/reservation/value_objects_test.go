//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"carreserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "通常の時刻OK", input: "09:30", want: "09:30"},
		{name: "0時OK", input: "00:00", want: "00:00"},
		{name: "23:59 OK", input: "23:59", want: "23:59"},
		{name: "前後の空白は無視", input: " 10:15 ", want: "10:15"},
		{name: "24時NG", input: "24:00", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "分が60はNG", input: "10:60", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "負の時間NG", input: "-1:00", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "コロン無しNG", input: "1030", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "数字以外NG", input: "ab:cd", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "空文字NG", input: "", errIs: reservation.ErrInvalidTimeOfDay},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reservation.ParseTimeOfDay(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestTimeOfDayOn(t *testing.T) {
	tod, err := reservation.NewTimeOfDay(14, 30)
	require.NoError(t, err)

	date := time.Date(2025, 6, 15, 8, 45, 59, 999, time.UTC)
	got := tod.On(date, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC), got)
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("終了は開始より後でなければならない", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base)
		require.ErrorIs(t, err, reservation.ErrEndNotAfterStart)

		_, err = reservation.NewTimeSlot(base, base.Add(-time.Hour))
		require.ErrorIs(t, err, reservation.ErrEndNotAfterStart)
	})

	t.Run("秒以下は切り捨て", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot(base.Add(30*time.Second), base.Add(time.Hour+45*time.Second))
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(time.Hour), slot.End())
	})

	t.Run("切り捨て後に同時刻になったらNG", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base.Add(10*time.Second), base.Add(50*time.Second))
		require.ErrorIs(t, err, reservation.ErrEndNotAfterStart)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	slot := func(startHour, endHour int) reservation.TimeSlot {
		s, err := reservation.NewTimeSlot(
			time.Date(2025, 6, 15, startHour, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 15, endHour, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		return s
	}

	cases := []struct {
		name string
		a, b reservation.TimeSlot
		want bool
	}{
		{name: "部分的に重なる", a: slot(10, 12), b: slot(11, 13), want: true},
		{name: "包含する", a: slot(9, 17), b: slot(10, 12), want: true},
		{name: "同一区間", a: slot(10, 12), b: slot(10, 12), want: true},
		{name: "境界で接するだけ（後続）", a: slot(10, 12), b: slot(12, 14), want: false},
		{name: "境界で接するだけ（先行）", a: slot(10, 12), b: slot(8, 10), want: false},
		{name: "完全に離れている", a: slot(10, 12), b: slot(14, 16), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Overlaps(c.b))
			assert.Equal(t, c.want, c.b.Overlaps(c.a), "Overlaps must be symmetric")
		})
	}
}

func TestTimeSlotContains(t *testing.T) {
	slot, err := reservation.NewTimeSlot(
		time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.True(t, slot.Contains(slot.Start()), "start is inside the half-open interval")
	assert.False(t, slot.Contains(slot.End()), "end is outside the half-open interval")
	assert.True(t, slot.Contains(slot.Start().Add(time.Hour)))
	assert.False(t, slot.Contains(slot.Start().Add(-time.Minute)))
}

func TestBlockingPolicy(t *testing.T) {
	t.Run("デフォルトはキャンセル以外すべてブロック", func(t *testing.T) {
		policy := reservation.DefaultBlockingPolicy()

		assert.True(t, policy.Blocks(reservation.StatusPending))
		assert.True(t, policy.Blocks(reservation.StatusApproved))
		assert.True(t, policy.Blocks(reservation.StatusRejected))
		assert.True(t, policy.Blocks(reservation.StatusCompleted))
		assert.False(t, policy.Blocks(reservation.StatusCancelled))
	})

	t.Run("承認済みのみブロックする構成", func(t *testing.T) {
		policy, err := reservation.NewBlockingPolicy([]string{"approved"})
		require.NoError(t, err)

		assert.True(t, policy.Blocks(reservation.StatusApproved))
		assert.False(t, policy.Blocks(reservation.StatusPending))
	})

	t.Run("未知のステータスはエラー", func(t *testing.T) {
		_, err := reservation.NewBlockingPolicy([]string{"approved", "bogus"})
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}
