package maplinks

import (
	"net/url"
	"strconv"
)

// This file contains the Apple Maps builder. Apple's scheme is the plainest
// of the set: a handful of short parameters on maps.apple.com, sorted by key
// before encoding (url.Values.Encode does exactly that, so this builder is
// the one place the standard encoder fits).

const (
	appleBaseURL = "https://maps.apple.com/"

	appleDefaultMapType   = "m"
	appleDefaultTransport = "d"

	// Apple accepts one zoom step more than the other providers.
	appleMaxZoom = 21
)

var (
	// m standard, k satellite, h hybrid, r transit.
	appleMapTypes = []string{"m", "k", "h", "r"}
	// d driving, w walking, r transit.
	appleTransportTypes = []string{"d", "w", "r"}
)

// AppleBuilder assembles Apple Maps links. Construct it with NewApple.
type AppleBuilder struct {
	baseBuilder

	mapType string

	query string

	origin        string
	destination   string
	transportType string
}

// NewApple returns a fresh Apple Maps builder with default zoom and map type.
func NewApple() *AppleBuilder {
	return &AppleBuilder{
		baseBuilder: newBase(1, appleMaxZoom),
		mapType:     appleDefaultMapType,
	}
}

// Reset restores the builder to its constructor defaults.
func (b *AppleBuilder) Reset() {
	*b = *NewApple()
}

// Coordinates sets the map center (clamped) and returns the builder.
func (b *AppleBuilder) Coordinates(lat, lon float64) *AppleBuilder {
	b.SetCoordinates(lat, lon)
	return b
}

// Zoom sets the zoom level (clamped to [1, 21]) and returns the builder.
func (b *AppleBuilder) Zoom(zoom int) *AppleBuilder {
	b.SetZoom(zoom)
	return b
}

// MapType selects "m" (standard), "k" (satellite), "h" (hybrid) or
// "r" (transit). Unknown values fall back to "m".
func (b *AppleBuilder) MapType(mapType string) *AppleBuilder {
	b.mapType = pickEnum(mapType, appleDefaultMapType, appleMapTypes...)
	return b
}

// Query sets the free-text search term.
func (b *AppleBuilder) Query(query string) *AppleBuilder {
	b.query = query
	return b
}

// From sets the directions origin. The origin alone does not select
// directions mode; Apple routes from the current location when it is absent.
func (b *AppleBuilder) From(origin string) *AppleBuilder {
	b.origin = origin
	return b
}

// To sets the directions destination. Setting a destination is sufficient to
// commit the builder to directions mode.
func (b *AppleBuilder) To(destination string) *AppleBuilder {
	b.destination = destination
	return b
}

// TransportType selects "d" (driving), "w" (walking) or "r" (transit).
// Unknown values fall back to "d". The common long names are accepted as
// aliases and shortened to their flag form.
func (b *AppleBuilder) TransportType(transport string) *AppleBuilder {
	switch transport {
	case "driving":
		transport = "d"
	case "walking":
		transport = "w"
	case "transit":
		transport = "r"
	}
	b.transportType = pickEnum(transport, appleDefaultTransport, appleTransportTypes...)
	return b
}

func (b *AppleBuilder) resolveMode() mode {
	switch {
	case b.query != "":
		return modeSearch
	case b.destination != "":
		return modeDirections
	case b.hasCoords:
		return modeMap
	}
	return modeNone
}

// URL renders the link for the current builder state. The second return is
// false when no mode's minimum fields are satisfied.
func (b *AppleBuilder) URL() (string, bool) {
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

func (b *AppleBuilder) searchURL() string {
	q := url.Values{}
	q.Set("q", b.query)
	if b.hasCoords {
		q.Set("sll", b.latLon())
	}
	return appleBaseURL + "?" + q.Encode()
}

func (b *AppleBuilder) directionsURL() string {
	q := url.Values{}
	if b.origin != "" {
		q.Set("saddr", b.origin)
	}
	q.Set("daddr", b.destination)
	if b.transportType != "" {
		q.Set("dirflg", b.transportType)
	}
	return appleBaseURL + "?" + q.Encode()
}

func (b *AppleBuilder) mapURL() string {
	q := url.Values{}
	q.Set("ll", b.latLon())
	q.Set("z", strconv.Itoa(b.zoom))
	q.Set("t", b.mapType)
	return appleBaseURL + "?" + q.Encode()
}
