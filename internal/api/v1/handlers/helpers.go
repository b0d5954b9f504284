package handlers

import (
	"encoding/json"
	"fmt"
	"github.com/rs/zerolog/log"
	"net/http"
	"net/url"
	"strconv"
	"ulascansenturk/weather-dashboard/internal/dashboard"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// clickFromQuery reads a click from the query string. ok is false when
// neither coordinate parameter is present. The longitude may be sent as
// "lon" or "lng".
func clickFromQuery(q url.Values) (ev dashboard.ClickEvent, ok bool, err error) {
	latStr := q.Get("lat")
	lonStr := q.Get("lon")
	if lonStr == "" {
		lonStr = q.Get("lng")
	}

	if latStr == "" && lonStr == "" {
		return dashboard.ClickEvent{}, false, nil
	}
	if latStr == "" || lonStr == "" {
		return dashboard.ClickEvent{}, true, fmt.Errorf("both 'lat' and 'lon' parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return dashboard.ClickEvent{}, true, fmt.Errorf("invalid 'lat' parameter %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return dashboard.ClickEvent{}, true, fmt.Errorf("invalid 'lon' parameter %q", lonStr)
	}

	return dashboard.ClickEvent{Lat: lat, Lng: lon}, true, nil
}
