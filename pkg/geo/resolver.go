package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/apperrors"
)

// LocationDetails is the approximate location of a network address.
type LocationDetails struct {
	Country  string  `json:"country"`
	City     string  `json:"city"`
	District string  `json:"district"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// Resolver looks up an address against one of two providers. Addresses the
// providers cannot see from outside (empty, loopback, 192.168.*) go to the
// self-locating ipapi.co endpoint; everything else goes to ip-api.com with
// the address in the path and a fixed field mask. One attempt per call,
// no cross-provider fallback.
type Resolver struct {
	selfLookupURL string // ipapi.co-style, no input parameter
	addrLookupURL string // ip-api.com-style, address as path segment
	httpc         *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		selfLookupURL: "https://ipapi.co/json/",
		addrLookupURL: "http://ip-api.com/json",
		httpc:         &http.Client{Timeout: 3 * time.Second},
	}
}

func (r *Resolver) Resolve(ctx context.Context, addr string) (LocationDetails, error) {
	if addr == "" || addr == "127.0.0.1" || addr == "::1" || strings.HasPrefix(addr, "192.168.") {
		return r.resolveSelf(ctx)
	}
	return r.resolveAddr(ctx, addr)
}

// ipapi.co infers the caller's address from the connection itself.
func (r *Resolver) resolveSelf(ctx context.Context) (LocationDetails, error) {
	var payload struct {
		CountryName string  `json:"country_name"`
		City        string  `json:"city"`
		Region      string  `json:"region"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}
	if err := r.get(ctx, r.selfLookupURL, &payload); err != nil {
		return LocationDetails{}, err
	}
	return LocationDetails{
		Country:  payload.CountryName,
		City:     payload.City,
		District: payload.Region,
		Lat:      payload.Latitude,
		Lon:      payload.Longitude,
	}, nil
}

func (r *Resolver) resolveAddr(ctx context.Context, addr string) (LocationDetails, error) {
	// Field mask 524497 = country, city, regionName, lat, lon, status.
	u := fmt.Sprintf("%s/%s?fields=524497", strings.TrimRight(r.addrLookupURL, "/"), addr)
	var payload struct {
		Country    string  `json:"country"`
		City       string  `json:"city"`
		RegionName string  `json:"regionName"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
	}
	if err := r.get(ctx, u, &payload); err != nil {
		return LocationDetails{}, err
	}
	return LocationDetails{
		Country:  payload.Country,
		City:     payload.City,
		District: payload.RegionName,
		Lat:      payload.Lat,
		Lon:      payload.Lon,
	}, nil
}

func (r *Resolver) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperrors.Upstream("Unable to fetch IP details.", err)
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return apperrors.Upstream("Unable to fetch IP details.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.Upstream(fmt.Sprintf("Unable to fetch IP details: status %d", resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Upstream("Unable to fetch IP details.", err)
	}
	return nil
}
