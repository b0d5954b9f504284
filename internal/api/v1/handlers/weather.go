package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/dashboard"
	"ulascansenturk/weather-dashboard/internal/db/weatherlookup"
	"ulascansenturk/weather-dashboard/internal/providers"
	"ulascansenturk/weather-dashboard/internal/service"
)

const defaultLookupLimit = 10

type WeatherHandler struct {
	weatherService service.WeatherService
	renderer       *dashboard.Renderer
	timeout        time.Duration
	limits         dashboard.Limits
	mapSettings    dashboard.MapSettings
}

type Option func(*WeatherHandler)

func WithLimits(limits dashboard.Limits) Option {
	return func(h *WeatherHandler) {
		h.limits = limits
	}
}

func WithMapSettings(settings dashboard.MapSettings) Option {
	return func(h *WeatherHandler) {
		h.mapSettings = settings
	}
}

// NewWeatherHandler builds the handler. timeout bounds each request and is
// raised to providers.RequestTimeout when smaller, so a forecast call always
// gets its full budget.
func NewWeatherHandler(weatherService service.WeatherService, renderer *dashboard.Renderer, timeout time.Duration, opts ...Option) *WeatherHandler {
	h := &WeatherHandler{
		weatherService: weatherService,
		renderer:       renderer,
		timeout:        timeout,
		limits:         dashboard.DefaultLimits,
		mapSettings:    dashboard.MapSettings{CenterLat: 36.5, CenterLon: 127.8, Zoom: 4},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.timeout < providers.RequestTimeout {
		h.timeout = providers.RequestTimeout
	}
	return h
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		h.Dashboard(w, r)
	case "/api/v1/weather":
		h.GetWeather(w, r)
	case "/api/v1/lookups":
		h.GetLookups(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

// GetWeather returns the dashboard view for one coordinate as JSON.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ev, ok, err := clickFromQuery(r.URL.Query())
	if !ok {
		respondWithError(w, http.StatusBadRequest, "coordinate parameters 'lat' and 'lon' are required")
		return
	}
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, coord, err := dashboard.Apply(dashboard.State{}, ev)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := dashboard.Build(ctx, h.weatherService, state, h.limits)
	if err != nil {
		log.Error().Err(err).Float64("lat", coord.Latitude).Float64("lon", coord.Longitude).Msg("failed to get weather data")
		if service.IsFetchError(err) {
			respondWithError(w, http.StatusBadGateway, "failed to fetch weather data: "+err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get weather data: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// Dashboard renders the HTML page. The optional lat/lng query parameters are the map click.
func (h *WeatherHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	page := &dashboard.Page{Map: h.mapSettings}
	status := http.StatusOK

	ev, ok, err := clickFromQuery(r.URL.Query())
	switch {
	case !ok:
		page.View, _ = dashboard.Build(r.Context(), h.weatherService, page.State, h.limits)
	case err != nil:
		status = http.StatusBadRequest
		page.View = dashboard.View{Error: err.Error()}
	default:
		state, _, applyErr := dashboard.Apply(page.State, ev)
		if applyErr != nil {
			status = http.StatusBadRequest
			page.View = dashboard.View{Error: applyErr.Error()}
			break
		}
		page.State = state

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		var buildErr error
		page.View, buildErr = dashboard.Build(ctx, h.weatherService, state, h.limits)
		if buildErr != nil {
			log.Error().Err(buildErr).Str("coordinate", state.LastClicked.String()).Msg("failed to get weather data")
		}
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		log.Error().Err(err).Msg("failed to render dashboard")
		respondWithError(w, http.StatusInternalServerError, "failed to render dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("failed to write dashboard")
	}
}

// GetLookups lists the most recent lookups from the lookup log.
func (h *WeatherHandler) GetLookups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultLookupLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > weatherlookup.MaxRecentLookups {
			respondWithError(w, http.StatusBadRequest, "parameter 'limit' must be between 1 and "+strconv.Itoa(weatherlookup.MaxRecentLookups))
			return
		}
		limit = n
	}

	lookups, err := h.weatherService.RecentLookups(limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list lookups")
		respondWithError(w, http.StatusInternalServerError, "failed to list lookups: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, LookupsResponse{Lookups: lookups})
}
