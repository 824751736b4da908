//go:build unit

package timeline_test

import (
	"fmt"
	"testing"
	"time"

	"carreserve/internal/domain/timeline"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d, hour, minute int) time.Time {
	return time.Date(2025, 6, 15+d, hour, minute, 0, 0, time.UTC)
}

func booking(start, end time.Time, make, model string) timeline.Booking {
	return timeline.Booking{
		ID:         uuid.New(),
		Start:      start,
		End:        end,
		CarMake:    make,
		CarModel:   model,
		OwnerLabel: "member@example.com",
	}
}

func defaultWindow() timeline.Window {
	return timeline.NewWindow(day(0, 0, 0), 3, 9, 21, timeline.DefaultLaneWidth)
}

func TestLayout(t *testing.T) {
	t.Run("入力と同数のエントリを返す", func(t *testing.T) {
		items := []timeline.Booking{
			booking(day(0, 10, 0), day(0, 12, 0), "Toyota", "Sienna"),
			booking(day(0, 13, 0), day(0, 14, 30), "Honda", "Odyssey"),
			booking(day(1, 9, 0), day(1, 11, 0), "Toyota", "Sienna"),
		}

		entries := timeline.Layout(items, defaultWindow())
		require.Len(t, entries, len(items))

		for i, e := range entries {
			assert.Equal(t, items[i].ID, e.ID, "order must follow the input")
		}
	})

	t.Run("座標は開始時刻から決まる", func(t *testing.T) {
		start := day(0, 10, 30)
		end := day(0, 12, 45)
		entries := timeline.Layout([]timeline.Booking{booking(start, end, "Toyota", "Sienna")}, defaultWindow())
		require.Len(t, entries, 1)

		e := entries[0]
		assert.Equal(t, start.UnixMilli(), e.X)
		assert.InDelta(t, 10.5, e.Y, 1e-9)
		assert.InDelta(t, 2.25, e.Height, 1e-9)
		assert.Equal(t, "10:30", e.StartTime)
		assert.Equal(t, "12:45", e.EndTime)
		assert.Equal(t, "member@example.com\nToyota Sienna", e.Label)
	})

	t.Run("同日内は開始時刻順に横へずれる", func(t *testing.T) {
		// 入力順をばらしても、日内の開始時刻ランクでオフセットが決まる
		third := booking(day(0, 15, 0), day(0, 16, 0), "Honda", "Odyssey")
		first := booking(day(0, 9, 0), day(0, 10, 0), "Toyota", "Sienna")
		second := booking(day(0, 11, 0), day(0, 12, 0), "Subaru", "Outback")

		entries := timeline.Layout([]timeline.Booking{third, first, second}, defaultWindow())
		require.Len(t, entries, 3)

		offsets := map[uuid.UUID]int{}
		for _, e := range entries {
			offsets[e.ID] = e.XOffset
		}

		assert.Equal(t, 0, offsets[first.ID])
		assert.Equal(t, timeline.DefaultLaneWidth, offsets[second.ID])
		assert.Equal(t, 2*timeline.DefaultLaneWidth, offsets[third.ID])
	})

	t.Run("日が変わればランクはリセット", func(t *testing.T) {
		a := booking(day(0, 10, 0), day(0, 11, 0), "Toyota", "Sienna")
		b := booking(day(0, 12, 0), day(0, 13, 0), "Toyota", "Sienna")
		c := booking(day(1, 10, 0), day(1, 11, 0), "Toyota", "Sienna")

		entries := timeline.Layout([]timeline.Booking{a, b, c}, defaultWindow())

		offsets := map[uuid.UUID]int{}
		for _, e := range entries {
			offsets[e.ID] = e.XOffset
		}
		assert.Equal(t, 0, offsets[a.ID])
		assert.Equal(t, timeline.DefaultLaneWidth, offsets[b.ID])
		assert.Equal(t, 0, offsets[c.ID], "new day starts at lane zero")
	})

	t.Run("色は車種の初出順で割り当て同じ車種は同色", func(t *testing.T) {
		a := booking(day(0, 9, 0), day(0, 10, 0), "Toyota", "Sienna")
		b := booking(day(0, 10, 0), day(0, 11, 0), "Honda", "Odyssey")
		c := booking(day(1, 9, 0), day(1, 10, 0), "Toyota", "Sienna")

		entries := timeline.Layout([]timeline.Booking{a, b, c}, defaultWindow())
		require.Len(t, entries, 3)

		assert.Equal(t, entries[0].Color, entries[2].Color, "same make+model shares a color")
		assert.NotEqual(t, entries[0].Color, entries[1].Color, "distinct cars get distinct colors")
	})

	t.Run("パレットを使い切ったら循環する", func(t *testing.T) {
		items := make([]timeline.Booking, 0, timeline.PaletteSize+1)
		for i := 0; i <= timeline.PaletteSize; i++ {
			items = append(items, booking(
				day(0, 9, 0), day(0, 10, 0),
				"Make", fmt.Sprintf("Model-%d", i),
			))
		}

		entries := timeline.Layout(items, defaultWindow())
		require.Len(t, entries, timeline.PaletteSize+1)

		assert.Equal(t, entries[0].Color, entries[timeline.PaletteSize].Color,
			"color %d wraps back to color 0", timeline.PaletteSize)
	})

	t.Run("空入力は空の結果", func(t *testing.T) {
		entries := timeline.Layout(nil, defaultWindow())
		assert.Empty(t, entries)
	})
}

func TestWindow(t *testing.T) {
	t.Run("開始は日の頭に切り詰める", func(t *testing.T) {
		w := timeline.NewWindow(day(0, 14, 37), 3, 9, 21, 50)
		assert.Equal(t, day(0, 0, 0), w.From)
		assert.Equal(t, day(3, 0, 0), w.Until())
	})

	t.Run("日数ゼロ以下はデフォルトに丸める", func(t *testing.T) {
		w := timeline.NewWindow(day(0, 0, 0), 0, 9, 21, 50)
		assert.Equal(t, 3, w.Days)
	})

	t.Run("DayTicks は各日の開始を返す", func(t *testing.T) {
		w := timeline.NewWindow(day(0, 0, 0), 3, 9, 21, 50)
		ticks := w.DayTicks()
		require.Len(t, ticks, 3)
		assert.Equal(t, day(0, 0, 0), ticks[0])
		assert.Equal(t, day(2, 0, 0), ticks[2])
	})

	t.Run("HourTicks は表示時間帯を両端含みで返す", func(t *testing.T) {
		w := timeline.NewWindow(day(0, 0, 0), 3, 9, 21, 50)
		ticks := w.HourTicks()
		require.Len(t, ticks, 13)

		want := make([]timeline.HourTick, 0, 13)
		for h := 9; h <= 21; h++ {
			want = append(want, timeline.HourTick{Hour: h, Label: fmt.Sprintf("%02d:00", h)})
		}
		assert.Empty(t, cmp.Diff(want, ticks))
	})
}
