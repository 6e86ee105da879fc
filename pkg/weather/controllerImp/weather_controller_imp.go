package controllerImp

import (
	"context"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/geo"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/weather"
)

type resolver interface {
	Resolve(ctx context.Context, addr string) (geo.LocationDetails, error)
}

type weatherAPI interface {
	ByCoordinates(ctx context.Context, lat, lon float64) (weather.WeatherData, error)
	ByLocationName(ctx context.Context, name string) (weather.WeatherData, error)
	HourlyForecast(ctx context.Context, lat, lon float64, hours int) ([]weather.ForecastEntry, error)
}

type WeatherCtrl struct {
	svc      weatherAPI
	resolver resolver
}

func New(svc weatherAPI, r resolver) *WeatherCtrl {
	return &WeatherCtrl{svc: svc, resolver: r}
}

func (h *WeatherCtrl) ByCoordinates(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if errLat != nil || errLon != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid coordinates"})
	}

	data, err := h.svc.ByCoordinates(c.Request().Context(), lat, lon)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, data)
}

func (h *WeatherCtrl) ByLocation(c echo.Context) error {
	location := c.QueryParam("location")
	if location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Location is required"})
	}

	data, err := h.svc.ByLocationName(c.Request().Context(), location)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, data)
}

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if errLat != nil || errLon != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid coordinates"})
	}
	hours := 24
	if v := c.QueryParam("hours"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}

	entries, err := h.svc.HourlyForecast(c.Request().Context(), lat, lon, hours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}

type ipDetails struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	District string `json:"district"`
}

type currentResponse struct {
	weather.WeatherData
	IPDetails ipDetails `json:"ipDetails"`
}

// Current serves weather for the caller's own address. Each stage degrades
// independently: a failed lookup answers a default snapshot, a failed
// weather call answers a default snapshot that keeps the resolved location.
// This endpoint never surfaces an upstream failure.
func (h *WeatherCtrl) Current(c echo.Context) error {
	addr := clientAddr(c)
	ctx := c.Request().Context()

	details, err := h.resolver.Resolve(ctx, addr)
	if err != nil {
		log.Printf("[weather] IP lookup failed: %v", err)
		return c.JSON(http.StatusOK, currentResponse{
			WeatherData: defaultSnapshot("Unknown Location"),
			IPDetails:   ipDetails{City: "Unknown", Country: "Unknown", District: "Unknown"},
		})
	}

	resolved := ipDetails{City: details.City, Country: details.Country, District: details.District}
	data, err := h.svc.ByCoordinates(ctx, details.Lat, details.Lon)
	if err != nil {
		log.Printf("[weather] provider call failed: %v", err)
		return c.JSON(http.StatusOK, currentResponse{
			WeatherData: defaultSnapshot("Unknown"),
			IPDetails:   resolved,
		})
	}

	return c.JSON(http.StatusOK, currentResponse{WeatherData: data, IPDetails: resolved})
}

func defaultSnapshot(location string) weather.WeatherData {
	return weather.WeatherData{
		Temperature: 20,
		Humidity:    50,
		WindSpeed:   5,
		Rainfall:    0,
		Location:    location,
	}
}

// clientAddr picks the forwarded address when present, otherwise the peer
// address. Loopback callers get "" so the resolver self-locates.
func clientAddr(c echo.Context) string {
	addr := c.Request().Header.Get("X-Forwarded-For")
	if addr == "" {
		addr = c.Request().RemoteAddr
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}
	} else if i := strings.IndexByte(addr, ','); i >= 0 {
		addr = strings.TrimSpace(addr[:i])
	}

	if strings.Contains(addr, "127.0.0.1") || strings.Contains(addr, "::1") {
		return ""
	}
	return addr
}
