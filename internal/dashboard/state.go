package dashboard

import (
	"ulascansenturk/weather-dashboard/internal/forecast"
)

// State is the dashboard's application state. It is passed in and returned
// explicitly; nothing is kept between requests.
type State struct {
	LastClicked *forecast.Coordinate
}

// ClickEvent is a map click as reported by the map widget.
type ClickEvent struct {
	Lat float64
	Lng float64
}

// Apply folds a click into the state and returns the coordinate to fetch.
// An out-of-range click leaves the state unchanged.
func Apply(state State, ev ClickEvent) (State, forecast.Coordinate, error) {
	coord, err := forecast.NewCoordinate(ev.Lat, ev.Lng)
	if err != nil {
		return state, forecast.Coordinate{}, err
	}
	return State{LastClicked: &coord}, coord, nil
}
