package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// palette matches the dashboard chart colors; one per distinct car,
// assigned in first-seen order and cycling when the fleet outgrows it.
var palette = []string{
	"#9b87f5",
	"#7E69AB",
	"#6E59A5",
	"#8B5CF6",
	"#D946EF",
	"#F97316",
	"#0EA5E9",
	"#1EAEDB",
}

// PaletteSize is exported for tests asserting the cycling behavior.
const PaletteSize = 8

const DefaultLaneWidth = 50

// Window is the visible range of the timeline: a run of consecutive days
// starting at From, showing StartHour..EndHour of each day.
type Window struct {
	From      time.Time
	Days      int
	StartHour int
	EndHour   int
	LaneWidth int
}

func NewWindow(from time.Time, days, startHour, endHour, laneWidth int) Window {
	if days <= 0 {
		days = 3
	}
	if laneWidth <= 0 {
		laneWidth = DefaultLaneWidth
	}
	y, m, d := from.Date()
	return Window{
		From:      time.Date(y, m, d, 0, 0, 0, 0, from.Location()),
		Days:      days,
		StartHour: startHour,
		EndHour:   endHour,
		LaneWidth: laneWidth,
	}
}

func (w Window) Until() time.Time {
	return w.From.AddDate(0, 0, w.Days)
}

// DayTicks returns the start of each visible day, for chart axis rendering.
func (w Window) DayTicks() []time.Time {
	ticks := make([]time.Time, w.Days)
	for i := range ticks {
		ticks[i] = w.From.AddDate(0, 0, i)
	}
	return ticks
}

// HourTicks returns the visible hours as "HH:00" labels.
func (w Window) HourTicks() []HourTick {
	if w.EndHour < w.StartHour {
		return nil
	}
	ticks := make([]HourTick, 0, w.EndHour-w.StartHour+1)
	for h := w.StartHour; h <= w.EndHour; h++ {
		anchor := time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC)
		ticks = append(ticks, HourTick{Hour: h, Label: anchor.Format("15:04")})
	}
	return ticks
}

type HourTick struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

// Booking is the flat input row: a reservation joined with its car and an
// owner display label, already scoped to the window by the caller.
type Booking struct {
	ID         uuid.UUID
	Start      time.Time
	End        time.Time
	CarMake    string
	CarModel   string
	OwnerLabel string
}

// Entry is one renderable timeline bar.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	X         int64     `json:"x"`      // start instant, unix millis
	Y         float64   `json:"y"`      // fractional start hour
	Height    float64   `json:"height"` // duration in hours
	Label     string    `json:"label"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Color     string    `json:"color"`
	XOffset   int       `json:"xOffset"`
}

// Layout places every booking on the timeline. One entry per input, no
// filtering or clipping; bookings outside the visible hour range keep their
// real coordinates and the renderer decides what to do with them.
//
// Colors are keyed by make+model in first-seen input order. Within a calendar
// day entries are ranked by ascending start time and pushed sideways by
// rank * lane width so overlapping bars stay distinguishable.
func Layout(items []Booking, window Window) []Entry {
	colors := assignColors(items)
	lanes := assignLanes(items)

	entries := make([]Entry, len(items))
	for i, item := range items {
		startHour := fractionalHour(item.Start)
		endHour := fractionalHour(item.End)

		entries[i] = Entry{
			ID:        item.ID,
			X:         item.Start.UnixMilli(),
			Y:         startHour,
			Height:    endHour - startHour,
			Label:     item.OwnerLabel + "\n" + item.CarMake + " " + item.CarModel,
			StartTime: item.Start.Format("15:04"),
			EndTime:   item.End.Format("15:04"),
			Color:     colors[colorKey(item)],
			XOffset:   lanes[item.ID] * window.LaneWidth,
		}
	}
	return entries
}

func colorKey(b Booking) string {
	return b.CarMake + "-" + b.CarModel
}

func assignColors(items []Booking) map[string]string {
	colors := make(map[string]string)
	for _, item := range items {
		key := colorKey(item)
		if _, ok := colors[key]; !ok {
			colors[key] = palette[len(colors)%len(palette)]
		}
	}
	return colors
}

// assignLanes ranks bookings within each calendar day by start time and maps
// each booking id to its zero-based position in that ordering.
func assignLanes(items []Booking) map[uuid.UUID]int {
	byDay := make(map[string][]Booking)
	for _, item := range items {
		day := item.Start.Format("2006-01-02")
		byDay[day] = append(byDay[day], item)
	}

	lanes := make(map[uuid.UUID]int, len(items))
	for _, day := range byDay {
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Start.Before(day[j].Start)
		})
		for idx, item := range day {
			lanes[item.ID] = idx
		}
	}
	return lanes
}

func fractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}
