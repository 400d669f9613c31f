package maplinks

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// This file contains the OpenStreetMap builder. OSM encodes the plain map
// view into the URL fragment (#map=zoom/lat/lon) rather than the query
// string, and its embeddable form wants a bounding box instead of a
// center/zoom pair, which is derived here from the zoom level.

const (
	osmBaseURL = "https://www.openstreetmap.org"

	osmDefaultLayer  = "standard"
	osmDefaultEngine = "fossgis_osrm_car"
)

// osmLayerCodes maps the layer names accepted by Layer to the single-letter
// codes that appear in the URL fragment. The standard layer has no code.
var osmLayerCodes = map[string]string{
	"standard":  "",
	"cycle":     "C",
	"transport": "T",
	"hot":       "H",
}

var osmEngines = []string{
	"fossgis_osrm_car",
	"fossgis_osrm_bike",
	"fossgis_osrm_foot",
	"graphhopper_car",
	"graphhopper_bicycle",
	"graphhopper_foot",
}

// OSMBuilder assembles OpenStreetMap links. Construct it with NewOSM.
type OSMBuilder struct {
	baseBuilder

	layer  string
	marker bool

	query string

	fromLat float64
	fromLon float64
	hasFrom bool
	toLat   float64
	toLon   float64
	hasTo   bool
	engine  string

	embed embedConfig
}

// NewOSM returns a fresh OpenStreetMap builder with default zoom and the
// standard layer.
func NewOSM() *OSMBuilder {
	return &OSMBuilder{
		baseBuilder: newBase(1, 20),
		layer:       osmDefaultLayer,
	}
}

// Reset restores the builder to its constructor defaults.
func (b *OSMBuilder) Reset() {
	*b = *NewOSM()
}

// Coordinates sets the map center (clamped) and returns the builder.
func (b *OSMBuilder) Coordinates(lat, lon float64) *OSMBuilder {
	b.SetCoordinates(lat, lon)
	return b
}

// Zoom sets the zoom level (clamped to [1, 20]) and returns the builder.
func (b *OSMBuilder) Zoom(zoom int) *OSMBuilder {
	b.SetZoom(zoom)
	return b
}

// Layer selects "standard", "cycle", "transport" or "hot". Unknown values
// fall back to "standard".
func (b *OSMBuilder) Layer(layer string) *OSMBuilder {
	if _, ok := osmLayerCodes[layer]; !ok {
		layer = osmDefaultLayer
	}
	b.layer = layer
	return b
}

// Marker places a pin at the set coordinates on the plain map view.
func (b *OSMBuilder) Marker() *OSMBuilder {
	b.marker = true
	return b
}

// Query sets the free-text search term.
func (b *OSMBuilder) Query(query string) *OSMBuilder {
	b.query = query
	return b
}

// From sets the route origin as a coordinate pair (clamped).
func (b *OSMBuilder) From(lat, lon float64) *OSMBuilder {
	b.fromLat = clampFloat(lat, -90, 90)
	b.fromLon = clampFloat(lon, -180, 180)
	b.hasFrom = true
	return b
}

// To sets the route destination as a coordinate pair (clamped).
func (b *OSMBuilder) To(lat, lon float64) *OSMBuilder {
	b.toLat = clampFloat(lat, -90, 90)
	b.toLon = clampFloat(lon, -180, 180)
	b.hasTo = true
	return b
}

// Engine selects the routing engine for directions links. Unknown values
// fall back to the OSRM car profile.
func (b *OSMBuilder) Engine(engine string) *OSMBuilder {
	b.engine = pickEnum(engine, osmDefaultEngine, osmEngines...)
	return b
}

// Embed requests iframe output with the given dimensions (floored at zero).
func (b *OSMBuilder) Embed(width, height int) *OSMBuilder {
	b.embed.set(width, height)
	return b
}

func (b *OSMBuilder) resolveMode() mode {
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
func (b *OSMBuilder) URL() (string, bool) {
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

func (b *OSMBuilder) searchURL() string {
	var q queryParams
	q.add("query", b.query)
	return osmBaseURL + "/search?" + q.encode()
}

func (b *OSMBuilder) directionsURL() string {
	from := ""
	if b.hasFrom {
		from = formatCoords(b.fromLat, b.fromLon)
	}
	to := ""
	if b.hasTo {
		to = formatCoords(b.toLat, b.toLon)
	}
	engine := b.engine
	if engine == "" {
		engine = osmDefaultEngine
	}
	var q queryParams
	q.add("engine", engine)
	q.add("route", from+";"+to)
	return osmBaseURL + "/directions?" + q.encode()
}

func (b *OSMBuilder) mapURL() string {
	fragment := fmt.Sprintf("#map=%d/%s/%s", b.zoom, formatFloat(b.lat), formatFloat(b.lon))
	if code := osmLayerCodes[b.layer]; code != "" {
		fragment += "&layers=" + code
	}
	if b.marker {
		var q queryParams
		q.add("mlat", formatFloat(b.lat))
		q.add("mlon", formatFloat(b.lon))
		return osmBaseURL + "/?" + q.encode() + fragment
	}
	return osmBaseURL + "/" + fragment
}

// EmbedHTML renders the iframe snippet. The bounding box is derived from the
// center and zoom; it returns false when Embed was not requested or no
// coordinates are set.
func (b *OSMBuilder) EmbedHTML() (string, bool) {
	if !b.embed.enabled || !b.hasCoords {
		return "", false
	}
	// One full world span at zoom 0, halved per level; the latitude span is
	// half the longitude span for the usual 2:1 viewport.
	lonDelta := 360 / math.Exp2(float64(b.zoom))
	latDelta := lonDelta / 2
	bbox := strings.Join([]string{
		formatFloat(clampFloat(b.lon-lonDelta, -180, 180)),
		formatFloat(clampFloat(b.lat-latDelta, -90, 90)),
		formatFloat(clampFloat(b.lon+lonDelta, -180, 180)),
		formatFloat(clampFloat(b.lat+latDelta, -90, 90)),
	}, ",")
	q := url.Values{}
	q.Set("bbox", bbox)
	q.Set("layer", "mapnik")
	q.Set("marker", b.latLon())
	return renderIframe(b.embed, osmBaseURL+"/export/embed.html?"+q.Encode()), true
}
