package mapview

import (
	"fmt"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

// DefaultZoom is the fixed zoom level used whenever the viewport recenters.
const DefaultZoom = 12

// dayPalette is the fixed marker palette. Days beyond the palette reuse
// colors cyclically; the numbered badge, not the color, disambiguates days
// across cycles.
var dayPalette = []string{
	"#2F5D46", // forest green
	"#C16A4A", // terracotta
	"#F59E0B", // amber
	"#8B5CF6", // purple
}

// DayColor returns the palette color for a 1-based day index.
func DayColor(day int) string {
	return dayPalette[(day-1)%len(dayPalette)]
}

type Center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Revision  int     `json:"revision"`
}

type Popup struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Detail   string `json:"detail,omitempty"`
}

// Marker is one geographic pin. Activity markers carry a day badge and color;
// the destination marker carries neither.
type Marker struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Day       int     `json:"day,omitempty"`
	Color     string  `json:"color,omitempty"`
	Badge     string  `json:"badge,omitempty"`
	Popup     Popup   `json:"popup"`
}

// View is the rendered map document. When Placeholder is set no map should be
// instantiated; Markers is empty and Center is absent.
type View struct {
	Placeholder bool     `json:"placeholder"`
	Message     string   `json:"message,omitempty"`
	Center      *Center  `json:"center,omitempty"`
	Zoom        int      `json:"zoom,omitempty"`
	Destination *Marker  `json:"destination_marker,omitempty"`
	Markers     []Marker `json:"markers"`
}

// Build projects a destination center and a day-partitioned activity list
// onto geographic markers. Activities missing a latitude or longitude are
// skipped; a zero coordinate counts as missing. With no usable activity
// coordinates at all the result is a placeholder panel, never a map with only
// the destination pin.
func Build(destName string, center Center, days []domain.ItineraryDay) View {
	markers := []Marker{}
	for _, day := range days {
		for _, act := range day.Activities {
			if act.Latitude == 0 || act.Longitude == 0 {
				continue
			}
			markers = append(markers, Marker{
				Latitude:  act.Latitude,
				Longitude: act.Longitude,
				Day:       day.Day,
				Color:     DayColor(day.Day),
				Badge:     fmt.Sprintf("%d", day.Day),
				Popup: Popup{
					Title:    act.Name,
					Subtitle: fmt.Sprintf("Day %d · %s", day.Day, act.Category),
					Detail:   fmt.Sprintf("%gh · ₹%.0f", act.EstimatedTimeHours, act.EstimatedCost),
				},
			})
		}
	}

	if len(markers) == 0 {
		return View{
			Placeholder: true,
			Message:     "No attraction coordinates available.",
			Markers:     markers,
		}
	}

	return View{
		Center: &center,
		Zoom:   DefaultZoom,
		Destination: &Marker{
			Latitude:  center.Latitude,
			Longitude: center.Longitude,
			Popup: Popup{
				Title:    destName,
				Subtitle: "Trip Destination",
			},
		},
		Markers: markers,
	}
}
