package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/apperrors"
)

const iconBaseURL = "https://openweathermap.org/img/wn/"

// WeatherData is the uniform snapshot served to clients regardless of which
// provider fields were present.
type WeatherData struct {
	Temperature      float64 `json:"temperature"`
	Humidity         float64 `json:"humidity"`
	WindSpeed        float64 `json:"windSpeed"`
	Rainfall         float64 `json:"rainfall"`
	IsRaining        bool    `json:"isRaining"`
	Location         string  `json:"location"`
	WeatherCondition string  `json:"weatherCondition"`
	WeatherIcon      string  `json:"weatherIcon"`
}

// ForecastEntry is one 3-hour forecast slot normalized to an hourly rate.
type ForecastEntry struct {
	Time time.Time `json:"time"`
	WeatherData
}

// Service fetches current conditions and forecasts from OpenWeatherMap.
// Every call is a single attempt with a fixed 5s timeout.
type Service struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		baseURL: "https://api.openweathermap.org/data/2.5",
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *Service) ByCoordinates(ctx context.Context, lat, lon float64) (WeatherData, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	return s.current(ctx, values)
}

func (s *Service) ByLocationName(ctx context.Context, name string) (WeatherData, error) {
	values := url.Values{}
	values.Set("q", name)
	return s.current(ctx, values)
}

func (s *Service) current(ctx context.Context, values url.Values) (WeatherData, error) {
	values.Set("appid", s.apiKey)
	values.Set("units", "metric")

	var payload currentPayload
	if err := s.get(ctx, s.baseURL+"/weather?"+values.Encode(), &payload); err != nil {
		return WeatherData{}, err
	}
	if len(payload.Weather) == 0 {
		return WeatherData{}, apperrors.Upstream("weather payload missing condition data", nil)
	}

	amount, raining := extractRainfall(payload.Weather[0].ID, payload.Rain, payload.Precipitation)
	return WeatherData{
		Temperature:      payload.Main.Temp,
		Humidity:         payload.Main.Humidity,
		WindSpeed:        payload.Wind.Speed,
		Rainfall:         amount,
		IsRaining:        raining,
		Location:         payload.Name,
		WeatherCondition: payload.Weather[0].Description,
		WeatherIcon:      iconURL(payload.Weather[0].Icon),
	}, nil
}

// HourlyForecast returns up to ceil(hours/3) slots; the provider forecasts
// in 3-hour intervals.
func (s *Service) HourlyForecast(ctx context.Context, lat, lon float64, hours int) ([]ForecastEntry, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("appid", s.apiKey)
	values.Set("units", "metric")

	var payload forecastPayload
	if err := s.get(ctx, s.baseURL+"/forecast?"+values.Encode(), &payload); err != nil {
		return nil, err
	}

	slots := (hours + 2) / 3
	if slots > len(payload.List) {
		slots = len(payload.List)
	}

	out := make([]ForecastEntry, 0, slots)
	for _, item := range payload.List[:slots] {
		if len(item.Weather) == 0 {
			continue
		}
		amount, raining := extractRainfall(item.Weather[0].ID, item.Rain, nil)
		out = append(out, ForecastEntry{
			Time: time.Unix(item.Dt, 0).UTC(),
			WeatherData: WeatherData{
				Temperature:      item.Main.Temp,
				Humidity:         item.Main.Humidity,
				WindSpeed:        item.Wind.Speed,
				Rainfall:         amount,
				IsRaining:        raining,
				Location:         payload.City.Name,
				WeatherCondition: item.Weather[0].Description,
				WeatherIcon:      iconURL(item.Weather[0].Icon),
			},
		})
	}
	return out, nil
}

func (s *Service) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperrors.Upstream("failed to build weather request", err)
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return apperrors.Upstream("weather provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return apperrors.Upstream(fmt.Sprintf("weather provider returned %d: %s", resp.StatusCode, msg), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Upstream("failed to decode weather payload", err)
	}
	return nil
}

func iconURL(code string) string {
	return iconBaseURL + code + "@2x.png"
}
