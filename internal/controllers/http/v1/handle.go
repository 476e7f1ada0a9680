package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-screen/config"
	"weather-screen/internal/models"
	"weather-screen/internal/repositories"
)

// LocationsResponse represents the location search response
type LocationsResponse struct {
	Query     string            `json:"query" example:"Lon"`
	Locations []models.Location `json:"locations"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: city"`
}

// SearchLocations godoc
// @Summary Search locations
// @Description Resolves a city-name fragment to candidate locations, in provider order
// @Tags Locations
// @Produce json
// @Param q query string true "City-name fragment" example(Lon)
// @Success 200 {object} LocationsResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - missing query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations [get]
//
//	curl -X GET "http://localhost:8080/locations?q=Lon"
func (r *routes) handleLocationsCall(c *fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: q",
		})
	}

	locations, err := r.service.SearchLocations(c.UserContext(), query)
	if err != nil {
		r.l.Error(err, map[string]any{"query": query})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to search locations",
		})
	}

	if locations == nil {
		locations = []models.Location{}
	}

	return c.JSON(LocationsResponse{
		Query:     query,
		Locations: locations,
	})
}

// GetForecast godoc
// @Summary Get weather forecast
// @Description Retrieves current conditions and the daily forecast for a city
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(Istanbul)
// @Param days query integer false "Number of forecast days (1-14, default: 7)" minimum(1) maximum(14) example(3)
// @Success 200 {object} models.Forecast "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - missing city"
// @Failure 404 {object} ErrorResponse "No matching location"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /forecast [get]
//
//	curl -X GET "http://localhost:8080/forecast?city=Istanbul&days=3"
func (r *routes) handleForecastCall(c *fiber.Ctx) error {
	city := c.Query("city")
	if strings.TrimSpace(city) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: city",
		})
	}

	forecastDays := r.defaultDays
	if window := c.Query("days"); window != "" {
		if days, err := strconv.Atoi(window); err == nil && days > 0 && days <= config.MaxForecastDays {
			forecastDays = days
		} else {
			// Log warning but continue with default value
			r.l.Warning("invalid days parameter, using default", map[string]any{
				"provided": window,
				"default":  forecastDays,
			})
		}
	}

	forecast, err := r.service.FetchForecast(c.UserContext(), city, forecastDays)
	if err != nil {
		if repositories.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "No matching location for " + strconv.Quote(city),
			})
		}

		r.l.Error(err, map[string]any{
			"city": city,
			"days": forecastDays,
		})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}

	return c.JSON(forecast)
}
