package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(selfURL, addrURL string) *Resolver {
	return &Resolver{
		selfLookupURL: selfURL,
		addrLookupURL: addrURL,
		httpc:         &http.Client{Timeout: 3 * time.Second},
	}
}

func selfServer(t *testing.T, hits *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"country_name": "Sri Lanka",
			"city": "Colombo",
			"region": "Western",
			"latitude": 6.9271,
			"longitude": 79.8612
		}`))
	}))
}

func addrServer(t *testing.T, hits *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		assert.Equal(t, "/8.8.8.8", r.URL.Path)
		assert.Equal(t, "524497", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"country": "United States",
			"city": "Mountain View",
			"regionName": "California",
			"lat": 37.386,
			"lon": -122.0838
		}`))
	}))
}

func TestResolve_LoopbackUsesSelfLookup(t *testing.T) {
	var selfHits, addrHits int
	self := selfServer(t, &selfHits)
	defer self.Close()
	addr := addrServer(t, &addrHits)
	defer addr.Close()

	r := testResolver(self.URL, addr.URL)

	for _, in := range []string{"", "127.0.0.1", "::1", "192.168.1.44"} {
		details, err := r.Resolve(context.Background(), in)
		require.NoError(t, err, "addr %q", in)
		assert.Equal(t, "Sri Lanka", details.Country)
		assert.Equal(t, "Colombo", details.City)
		assert.Equal(t, "Western", details.District)
		assert.Equal(t, 6.9271, details.Lat)
		assert.Equal(t, 79.8612, details.Lon)
	}
	assert.Equal(t, 4, selfHits)
	assert.Zero(t, addrHits)
}

func TestResolve_PublicAddressUsesAddrLookup(t *testing.T) {
	var selfHits, addrHits int
	self := selfServer(t, &selfHits)
	defer self.Close()
	addr := addrServer(t, &addrHits)
	defer addr.Close()

	details, err := testResolver(self.URL, addr.URL).Resolve(context.Background(), "8.8.8.8")
	require.NoError(t, err)

	assert.Equal(t, "United States", details.Country)
	assert.Equal(t, "Mountain View", details.City)
	assert.Equal(t, "California", details.District)
	assert.Equal(t, 37.386, details.Lat)
	assert.Equal(t, -122.0838, details.Lon)
	assert.Equal(t, 1, addrHits)
	assert.Zero(t, selfHits)
}

func TestResolve_NonOKStatusFailsWithoutFallback(t *testing.T) {
	var selfHits int
	self := selfServer(t, &selfHits)
	defer self.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	_, err := testResolver(self.URL, failing.URL).Resolve(context.Background(), "8.8.8.8")
	require.Error(t, err)
	// No cross-provider fallback: the working self-lookup was never tried.
	assert.Zero(t, selfHits)
}

func TestResolve_MalformedPayloadFails(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer bad.Close()

	_, err := testResolver(bad.URL, bad.URL).Resolve(context.Background(), "")
	require.Error(t, err)
}
