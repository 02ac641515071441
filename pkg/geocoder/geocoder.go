package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GeocoderInterface resolves a place to a coordinate pair. attraction may be
// empty to resolve the city itself. Resolution never fails: lookup errors
// fall back to a static city table and ultimately to a fixed default
// coordinate. The fallback is keyed on the city alone, so an attraction name
// that happens to contain a table city never redirects the match.
type GeocoderInterface interface {
	Resolve(ctx context.Context, city, attraction string) (float64, float64)
}

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	lookupTimeout  = 10 * time.Second

	// Terminal fallback: Paris.
	defaultLat = 48.8566
	defaultLng = 2.3522
)

type fallbackCity struct {
	key string
	lat float64
	lng float64
}

// fallbackCoords is an ordered list, not a map: matching is by substring and
// the first match wins, so iteration order must be fixed.
var fallbackCoords = []fallbackCity{
	{"paris", 48.8566, 2.3522},
	{"tokyo", 35.6762, 139.6503},
	{"new york", 40.7128, -74.0060},
	{"london", 51.5074, -0.1278},
	{"san francisco", 37.7749, -122.4194},
	{"los angeles", 34.0522, -118.2437},
	{"rome", 41.9028, 12.4964},
	{"barcelona", 41.3851, 2.1734},
	{"singapore", 1.3521, 103.8198},
	{"sydney", -33.8688, 151.2093},
	{"dubai", 25.2048, 55.2708},
	{"bangkok", 13.7563, 100.5018},
	{"hong kong", 22.3193, 114.1694},
	{"berlin", 52.5200, 13.4050},
	{"amsterdam", 52.3676, 4.9041},
	{"madrid", 40.4168, -3.7038},
}

// FallbackCoordinates matches the city name against the static table by
// case-insensitive substring containment and returns the default coordinate
// when nothing matches.
func FallbackCoordinates(city string) (float64, float64) {
	lower := strings.ToLower(city)
	for _, entry := range fallbackCoords {
		if strings.Contains(lower, entry.key) {
			return entry.lat, entry.lng
		}
	}
	return defaultLat, defaultLng
}

// NominatimGeocoder resolves place names through the Nominatim search API.
type NominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &NominatimGeocoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
		userAgent:  "wandermind",
	}
}

func (g *NominatimGeocoder) Resolve(ctx context.Context, city, attraction string) (float64, float64) {
	query := city
	if attraction != "" {
		query = fmt.Sprintf("%s, %s", attraction, city)
	}

	lat, lng, err := g.lookup(ctx, query)
	if err == nil {
		return lat, lng
	}
	log.Printf("Geocoding error for %s: %v", query, err)
	return FallbackCoordinates(city)
}

func (g *NominatimGeocoder) lookup(ctx context.Context, query string) (float64, float64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", g.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no results for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, lng, nil
}
