package handlers

import (
	"ulascansenturk/weather-dashboard/internal/db/weatherlookup"
)

type LookupsResponse struct {
	Lookups []weatherlookup.WeatherLookup `json:"lookups"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
