package maplinks

import "strconv"

// This file contains the Yandex Maps builder. Yandex serializes every
// coordinate pair longitude-first, the reverse of all other providers. The
// inversion is kept local to this builder as a formatting rule rather than
// generalized, so the other providers cannot pick it up by accident.

const (
	yandexBaseURL = "https://yandex.ru/maps/"

	yandexDefaultLayer     = "map"
	yandexDefaultRouteType = "auto"
)

var (
	// map scheme, sat satellite, skl hybrid.
	yandexLayers = []string{"map", "sat", "skl"}
	// auto driving, mt transit, pd pedestrian.
	yandexRouteTypes = []string{"auto", "mt", "pd"}
)

// YandexBuilder assembles Yandex Maps links. Construct it with NewYandex.
type YandexBuilder struct {
	baseBuilder

	layer string

	query string

	fromLat   float64
	fromLon   float64
	hasFrom   bool
	toLat     float64
	toLon     float64
	hasTo     bool
	routeType string
}

// NewYandex returns a fresh Yandex Maps builder with default zoom and the
// map layer.
func NewYandex() *YandexBuilder {
	return &YandexBuilder{
		baseBuilder: newBase(1, 20),
		layer:       yandexDefaultLayer,
	}
}

// Reset restores the builder to its constructor defaults.
func (b *YandexBuilder) Reset() {
	*b = *NewYandex()
}

// Coordinates sets the map center (clamped) and returns the builder.
func (b *YandexBuilder) Coordinates(lat, lon float64) *YandexBuilder {
	b.SetCoordinates(lat, lon)
	return b
}

// Zoom sets the zoom level (clamped to [1, 20]) and returns the builder.
func (b *YandexBuilder) Zoom(zoom int) *YandexBuilder {
	b.SetZoom(zoom)
	return b
}

// Layer selects "map", "sat" or "skl". Unknown values fall back to "map".
func (b *YandexBuilder) Layer(layer string) *YandexBuilder {
	b.layer = pickEnum(layer, yandexDefaultLayer, yandexLayers...)
	return b
}

// Query sets the free-text search term.
func (b *YandexBuilder) Query(query string) *YandexBuilder {
	b.query = query
	return b
}

// From sets the route origin as a coordinate pair (clamped).
func (b *YandexBuilder) From(lat, lon float64) *YandexBuilder {
	b.fromLat = clampFloat(lat, -90, 90)
	b.fromLon = clampFloat(lon, -180, 180)
	b.hasFrom = true
	return b
}

// To sets the route destination as a coordinate pair (clamped).
func (b *YandexBuilder) To(lat, lon float64) *YandexBuilder {
	b.toLat = clampFloat(lat, -90, 90)
	b.toLon = clampFloat(lon, -180, 180)
	b.hasTo = true
	return b
}

// RouteType selects "auto", "mt" (transit) or "pd" (pedestrian). Unknown
// values fall back to "auto".
func (b *YandexBuilder) RouteType(routeType string) *YandexBuilder {
	b.routeType = pickEnum(routeType, yandexDefaultRouteType, yandexRouteTypes...)
	return b
}

func (b *YandexBuilder) resolveMode() mode {
	switch {
	case b.query != "":
		return modeSearch
	case b.hasFrom || b.hasTo:
		return modeDirections
	case b.hasCoords:
		return modeMap
	}
	return modeNone
}

// URL renders the link for the current builder state. The second return is
// false when no mode's minimum fields are satisfied.
func (b *YandexBuilder) URL() (string, bool) {
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

func (b *YandexBuilder) searchURL() string {
	var q queryParams
	q.add("text", b.query)
	if b.hasCoords {
		q.add("ll", b.lonLat())
		q.add("z", strconv.Itoa(b.zoom))
	}
	return yandexBaseURL + "?" + q.encode()
}

func (b *YandexBuilder) directionsURL() string {
	from := ""
	if b.hasFrom {
		from = formatCoords(b.fromLon, b.fromLat)
	}
	to := ""
	if b.hasTo {
		to = formatCoords(b.toLon, b.toLat)
	}
	routeType := b.routeType
	if routeType == "" {
		routeType = yandexDefaultRouteType
	}
	var q queryParams
	q.add("rtext", from+"~"+to)
	q.add("rtt", routeType)
	return yandexBaseURL + "?" + q.encode()
}

func (b *YandexBuilder) mapURL() string {
	var q queryParams
	q.add("ll", b.lonLat())
	q.add("z", strconv.Itoa(b.zoom))
	q.add("l", b.layer)
	return yandexBaseURL + "?" + q.encode()
}
