package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cor0nius/maplinks"
)

// This file contains the HTTP handlers for the service. Both link handlers
// follow the same pattern: ensure the method is GET, parse the request
// parameters, drive the maplinks builders and write the JSON response. The
// builders themselves never fail, so the only client errors are malformed
// coordinates and unknown providers.

type allLinksResponse struct {
	Latitude  float64                      `json:"latitude"`
	Longitude float64                      `json:"longitude"`
	Zoom      int                          `json:"zoom"`
	Links     map[maplinks.Provider]string `json:"links"`
}

type linkResponse struct {
	Provider maplinks.Provider `json:"provider"`
	URL      string            `json:"url"`
}

// parseCoordinates reads the lat/lon query parameters. Range clamping is left
// to the builders; only syntactically invalid numbers are rejected here.
func parseCoordinates(r *http.Request) (lat, lon float64, err error) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		return 0, 0, fmt.Errorf("lat and lon query parameters are required")
	}
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %v", err)
	}
	lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %v", err)
	}
	return lat, lon, nil
}

func (cfg *apiConfig) parseZoom(r *http.Request) int {
	zoomStr := r.URL.Query().Get("zoom")
	if zoomStr == "" {
		return cfg.defaultZoom
	}
	zoom, err := strconv.Atoi(zoomStr)
	if err != nil {
		cfg.logger.Debug("invalid zoom parameter, using default", "zoom", zoomStr)
		return cfg.defaultZoom
	}
	return zoom
}

// handlerLinks returns the plain-map link for every provider at the given
// coordinates. Providers that cannot build a link from coordinates alone are
// left out of the response.
func (cfg *apiConfig) handlerLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	lat, lon, err := parseCoordinates(r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Error getting location data", err)
		return
	}
	zoom := cfg.parseZoom(r)
	cfg.logger.Debug("links request", "lat", lat, "lon", lon, "zoom", zoom)

	links := maplinks.AllURLs(lat, lon, zoom)
	for provider := range links {
		linksBuiltTotal.WithLabelValues(string(provider)).Inc()
	}

	cfg.respondWithJSON(w, http.StatusOK, allLinksResponse{
		Latitude:  lat,
		Longitude: lon,
		Zoom:      zoom,
		Links:     links,
	})
}

// handlerLink returns the link for a single provider, honoring the optional
// search and directions parameters where the provider supports them.
func (cfg *apiConfig) handlerLink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	provider := maplinks.Provider(r.URL.Query().Get("provider"))
	if maplinks.New(provider) == nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Unknown provider", nil)
		return
	}

	url, ok := cfg.buildLink(provider, r)
	if !ok {
		cfg.respondWithError(w, http.StatusNotFound, "No link can be built from the given parameters", nil)
		return
	}
	linksBuiltTotal.WithLabelValues(string(provider)).Inc()

	cfg.respondWithJSON(w, http.StatusOK, linkResponse{
		Provider: provider,
		URL:      url,
	})
}

// buildLink configures the provider's builder from the request parameters.
// Parameters a provider has no use for are ignored, matching the library's
// permissive policy.
func (cfg *apiConfig) buildLink(provider maplinks.Provider, r *http.Request) (string, bool) {
	query := r.URL.Query().Get("q")
	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")
	travelMode := r.URL.Query().Get("mode")
	zoom := cfg.parseZoom(r)
	lat, lon, coordsErr := parseCoordinates(r)
	hasCoords := coordsErr == nil

	switch provider {
	case maplinks.GoogleMaps:
		b := maplinks.NewGoogle().Zoom(zoom)
		if hasCoords {
			b.Coordinates(lat, lon)
		}
		if query != "" {
			b.Query(query)
		}
		if origin != "" {
			b.From(origin)
		}
		if destination != "" {
			b.To(destination)
		}
		if travelMode != "" {
			b.TravelMode(travelMode)
		}
		return b.URL()
	case maplinks.BingMaps:
		b := maplinks.NewBing().Zoom(zoom)
		if hasCoords {
			b.Coordinates(lat, lon)
		}
		if query != "" {
			b.Search(query)
		}
		if origin != "" {
			b.From(origin)
		}
		if destination != "" {
			b.To(destination)
		}
		if travelMode != "" {
			b.TravelMode(travelMode)
		}
		return b.URL()
	case maplinks.AppleMaps:
		b := maplinks.NewApple().Zoom(zoom)
		if hasCoords {
			b.Coordinates(lat, lon)
		}
		if query != "" {
			b.Query(query)
		}
		if origin != "" {
			b.From(origin)
		}
		if destination != "" {
			b.To(destination)
		}
		if travelMode != "" {
			b.TransportType(travelMode)
		}
		return b.URL()
	case maplinks.OpenStreetMap:
		b := maplinks.NewOSM().Zoom(zoom)
		if hasCoords {
			b.Coordinates(lat, lon)
		}
		if query != "" {
			b.Query(query)
		}
		if fromLat, fromLon, ok := splitCoords(origin); ok {
			b.From(fromLat, fromLon)
		}
		if toLat, toLon, ok := splitCoords(destination); ok {
			b.To(toLat, toLon)
		}
		return b.URL()
	case maplinks.Waze:
		b := maplinks.NewWaze().Zoom(zoom)
		if hasCoords {
			b.Coordinates(lat, lon)
		}
		if query != "" {
			b.Query(query)
		}
		if destination != "" {
			if toLat, toLon, ok := splitCoords(destination); ok {
				b.Coordinates(toLat, toLon)
			} else {
				b.Query(destination)
			}
			b.Navigate()
		}
		return b.URL()
	case maplinks.YandexMaps:
		b := maplinks.NewYandex().Zoom(zoom)
		if hasCoords {
			b.Coordinates(lat, lon)
		}
		if query != "" {
			b.Query(query)
		}
		if fromLat, fromLon, ok := splitCoords(origin); ok {
			b.From(fromLat, fromLon)
		}
		if toLat, toLon, ok := splitCoords(destination); ok {
			b.To(toLat, toLon)
		}
		if travelMode != "" {
			b.RouteType(travelMode)
		}
		return b.URL()
	case maplinks.HereWeGo:
		b := maplinks.NewHERE().Zoom(zoom)
		if hasCoords {
			b.Coordinates(lat, lon)
		}
		if query != "" {
			b.Query(query)
		}
		if fromLat, fromLon, ok := splitCoords(origin); ok {
			b.From(fromLat, fromLon)
		}
		if toLat, toLon, ok := splitCoords(destination); ok {
			b.To(toLat, toLon)
		}
		if travelMode != "" {
			b.TransportType(travelMode)
		}
		return b.URL()
	}
	return "", false
}

// splitCoords parses a "lat,lon" pair from a request parameter.
func splitCoords(s string) (lat, lon float64, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// handlerHealthz reports service liveness.
func (cfg *apiConfig) handlerHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	type healthResponse struct {
		Status string `json:"status"`
	}
	cfg.respondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
