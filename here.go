package maplinks

import (
	"fmt"
	"net/url"
)

// This file contains the HERE WeGo builder. HERE splits its linking surface
// across two hosts: map and search views live on wego.here.com, while shared
// routes go through share.here.com with the endpoints as path segments.

const (
	hereBaseURL  = "https://wego.here.com"
	hereShareURL = "https://share.here.com"

	hereDefaultScheme    = "normal"
	hereDefaultTransport = "d"
)

var (
	hereSchemes = []string{"normal", "satellite", "terrain"}
	// d driving, w walking, b bicycling, t transit.
	hereTransportTypes = []string{"d", "w", "b", "t"}
)

// HEREBuilder assembles HERE WeGo links. Construct it with NewHERE.
type HEREBuilder struct {
	baseBuilder

	scheme string

	query string

	fromLat       float64
	fromLon       float64
	hasFrom       bool
	toLat         float64
	toLon         float64
	hasTo         bool
	transportType string
}

// NewHERE returns a fresh HERE WeGo builder with default zoom and the normal
// scheme.
func NewHERE() *HEREBuilder {
	return &HEREBuilder{
		baseBuilder: newBase(1, 20),
		scheme:      hereDefaultScheme,
	}
}

// Reset restores the builder to its constructor defaults.
func (b *HEREBuilder) Reset() {
	*b = *NewHERE()
}

// Coordinates sets the map center (clamped) and returns the builder.
func (b *HEREBuilder) Coordinates(lat, lon float64) *HEREBuilder {
	b.SetCoordinates(lat, lon)
	return b
}

// Zoom sets the zoom level (clamped to [1, 20]) and returns the builder.
func (b *HEREBuilder) Zoom(zoom int) *HEREBuilder {
	b.SetZoom(zoom)
	return b
}

// Scheme selects "normal", "satellite" or "terrain". Unknown values fall
// back to "normal".
func (b *HEREBuilder) Scheme(scheme string) *HEREBuilder {
	b.scheme = pickEnum(scheme, hereDefaultScheme, hereSchemes...)
	return b
}

// Query sets the free-text search term.
func (b *HEREBuilder) Query(query string) *HEREBuilder {
	b.query = query
	return b
}

// From sets the route origin as a coordinate pair (clamped). The origin is
// optional; a route without one starts from the current location.
func (b *HEREBuilder) From(lat, lon float64) *HEREBuilder {
	b.fromLat = clampFloat(lat, -90, 90)
	b.fromLon = clampFloat(lon, -180, 180)
	b.hasFrom = true
	return b
}

// To sets the route destination as a coordinate pair (clamped). Setting a
// destination is sufficient to commit the builder to directions mode.
func (b *HEREBuilder) To(lat, lon float64) *HEREBuilder {
	b.toLat = clampFloat(lat, -90, 90)
	b.toLon = clampFloat(lon, -180, 180)
	b.hasTo = true
	return b
}

// TransportType selects "d" (driving), "w" (walking), "b" (bicycling) or
// "t" (transit). Unknown values fall back to "d".
func (b *HEREBuilder) TransportType(transport string) *HEREBuilder {
	b.transportType = pickEnum(transport, hereDefaultTransport, hereTransportTypes...)
	return b
}

func (b *HEREBuilder) resolveMode() mode {
	switch {
	case b.query != "":
		return modeSearch
	case b.hasTo:
		return modeDirections
	case b.hasCoords:
		return modeMap
	}
	return modeNone
}

// URL renders the link for the current builder state. The second return is
// false when no mode's minimum fields are satisfied.
func (b *HEREBuilder) URL() (string, bool) {
	switch b.resolveMode() {
	case modeSearch:
		return b.searchURL(), true
	case modeDirections:
		return b.directionsURL(), true
	case modeMap:
		return b.mapURL(), true
	}
	return "", false
}

// mapParam serializes the wego map parameter: lat,lon,zoom,scheme.
func (b *HEREBuilder) mapParam() string {
	return fmt.Sprintf("%s,%s,%d,%s", formatFloat(b.lat), formatFloat(b.lon), b.zoom, b.scheme)
}

func (b *HEREBuilder) searchURL() string {
	out := hereBaseURL + "/search/" + url.PathEscape(b.query)
	if b.hasCoords {
		var q queryParams
		q.add("map", b.mapParam())
		out += "?" + q.encode()
	}
	return out
}

func (b *HEREBuilder) directionsURL() string {
	path := "/r/"
	if b.hasFrom {
		path += formatCoords(b.fromLat, b.fromLon) + "/"
	}
	path += formatCoords(b.toLat, b.toLon)
	transport := b.transportType
	if transport == "" {
		transport = hereDefaultTransport
	}
	var q queryParams
	q.add("m", transport)
	return hereShareURL + path + "?" + q.encode()
}

func (b *HEREBuilder) mapURL() string {
	var q queryParams
	q.add("map", b.mapParam())
	return hereBaseURL + "/?" + q.encode()
}
