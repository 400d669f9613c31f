package maplinks

import (
	"fmt"
	"strconv"
	"strings"
)

// This file contains the Google Maps builder. Google has the widest surface
// of the supported providers: search, directions with waypoints, Street View
// panoramas, plain map views and an embeddable form, all built on the
// documented Maps URLs scheme (https://developers.google.com/maps/documentation/urls).

const (
	googleBaseURL      = "https://www.google.com/maps"
	googleEmbedBaseURL = "https://maps.google.com/maps"

	// GoogleMaxWaypoints is the number of intermediate stops Google accepts
	// in a directions link; longer lists are truncated.
	GoogleMaxWaypoints = 9

	googleDefaultBasemap    = "roadmap"
	googleDefaultTravelMode = "driving"
)

var (
	googleBasemaps    = []string{"roadmap", "satellite", "terrain"}
	googleTravelModes = []string{"driving", "walking", "bicycling", "transit"}
	googleAvoidables  = []string{"tolls", "highways", "ferries"}
)

// GoogleBuilder assembles Google Maps links. The zero value is not usable;
// construct it with NewGoogle.
type GoogleBuilder struct {
	baseBuilder

	basemap string

	query        string
	queryPlaceID string

	origin             string
	originPlaceID      string
	destination        string
	destinationPlaceID string
	travelMode         string
	waypoints          []string
	waypointPlaceIDs   []string
	avoid              []string

	streetView bool
	pano       string
	heading    float64
	hasHeading bool
	pitch      float64
	hasPitch   bool
	fov        float64
	hasFOV     bool

	embed embedConfig
}

// NewGoogle returns a fresh Google Maps builder with default zoom and basemap.
func NewGoogle() *GoogleBuilder {
	return &GoogleBuilder{
		baseBuilder: newBase(1, 20),
		basemap:     googleDefaultBasemap,
	}
}

// Reset restores the builder to its constructor defaults.
func (b *GoogleBuilder) Reset() {
	*b = *NewGoogle()
}

// Coordinates sets the map center (clamped) and returns the builder.
func (b *GoogleBuilder) Coordinates(lat, lon float64) *GoogleBuilder {
	b.SetCoordinates(lat, lon)
	return b
}

// Zoom sets the zoom level (clamped to [1, 20]) and returns the builder.
func (b *GoogleBuilder) Zoom(zoom int) *GoogleBuilder {
	b.SetZoom(zoom)
	return b
}

// Basemap selects the map display type: "roadmap", "satellite" or "terrain".
// Unknown values fall back to "roadmap".
func (b *GoogleBuilder) Basemap(basemap string) *GoogleBuilder {
	b.basemap = pickEnum(basemap, googleDefaultBasemap, googleBasemaps...)
	return b
}

// Query sets the free-text search term.
func (b *GoogleBuilder) Query(query string) *GoogleBuilder {
	b.query = query
	return b
}

// QueryPlaceID pins the search to a specific place identifier.
func (b *GoogleBuilder) QueryPlaceID(id string) *GoogleBuilder {
	b.queryPlaceID = id
	return b
}

// From sets the directions origin.
func (b *GoogleBuilder) From(origin string) *GoogleBuilder {
	b.origin = origin
	return b
}

// FromPlaceID pins the origin to a specific place identifier.
func (b *GoogleBuilder) FromPlaceID(id string) *GoogleBuilder {
	b.originPlaceID = id
	return b
}

// To sets the directions destination.
func (b *GoogleBuilder) To(destination string) *GoogleBuilder {
	b.destination = destination
	return b
}

// ToPlaceID pins the destination to a specific place identifier.
func (b *GoogleBuilder) ToPlaceID(id string) *GoogleBuilder {
	b.destinationPlaceID = id
	return b
}

// TravelMode selects "driving", "walking", "bicycling" or "transit".
// Unknown values fall back to "driving".
func (b *GoogleBuilder) TravelMode(mode string) *GoogleBuilder {
	b.travelMode = pickEnum(mode, googleDefaultTravelMode, googleTravelModes...)
	return b
}

// Waypoints sets the intermediate stops for a directions link. The list is
// truncated to GoogleMaxWaypoints entries.
func (b *GoogleBuilder) Waypoints(waypoints ...string) *GoogleBuilder {
	if len(waypoints) > GoogleMaxWaypoints {
		waypoints = waypoints[:GoogleMaxWaypoints]
	}
	b.waypoints = waypoints
	return b
}

// WaypointPlaceIDs sets the place identifiers paired with the waypoints.
// The list is stored as given; at render time it is truncated to the length
// of the (already truncated) waypoint list so the two stay index-aligned no
// matter which setter ran first.
func (b *GoogleBuilder) WaypointPlaceIDs(ids ...string) *GoogleBuilder {
	b.waypointPlaceIDs = ids
	return b
}

// Avoid sets the route features to avoid. Entries outside the allow-list
// ("tolls", "highways", "ferries") are silently dropped.
func (b *GoogleBuilder) Avoid(features ...string) *GoogleBuilder {
	b.avoid = filterAllowed(features, googleAvoidables)
	return b
}

// StreetView requests Street View mode at the set coordinates. Without
// coordinates (and without a panorama id) the flag has no effect.
func (b *GoogleBuilder) StreetView() *GoogleBuilder {
	b.streetView = true
	return b
}

// Pano selects a Street View panorama by its identifier.
func (b *GoogleBuilder) Pano(id string) *GoogleBuilder {
	b.pano = id
	return b
}

// Heading sets the Street View compass heading, clamped to [-180, 360].
func (b *GoogleBuilder) Heading(heading float64) *GoogleBuilder {
	b.heading = clampFloat(heading, -180, 360)
	b.hasHeading = true
	return b
}

// Pitch sets the Street View camera pitch, clamped to [-90, 90].
func (b *GoogleBuilder) Pitch(pitch float64) *GoogleBuilder {
	b.pitch = clampFloat(pitch, -90, 90)
	b.hasPitch = true
	return b
}

// FOV sets the Street View field of view, clamped to [10, 100].
func (b *GoogleBuilder) FOV(fov float64) *GoogleBuilder {
	b.fov = clampFloat(fov, 10, 100)
	b.hasFOV = true
	return b
}

// Embed requests iframe output with the given dimensions (floored at zero).
func (b *GoogleBuilder) Embed(width, height int) *GoogleBuilder {
	b.embed.set(width, height)
	return b
}

// resolveMode applies the fixed output precedence: Street View beats search,
// search beats directions, directions beat the plain map. A caller who sets
// fields for several intents gets the highest-priority one; this is by
// contract, not an accident of field ordering.
func (b *GoogleBuilder) resolveMode() mode {
	switch {
	case b.pano != "" || (b.streetView && b.hasCoords):
		return modeStreetView
	case b.query != "":
		return modeSearch
	case b.origin != "" || b.destination != "":
		return modeDirections
	case b.hasCoords:
		return modeMap
	}
	return modeNone
}

// URL renders the link for the current builder state. The second return is
// false when no mode's minimum fields are satisfied.
func (b *GoogleBuilder) URL() (string, bool) {
	switch b.resolveMode() {
	case modeStreetView:
		return b.streetViewURL(), true
	case modeSearch:
		return b.searchURL(), true
	case modeDirections:
		return b.directionsURL(), true
	case modeMap:
		return b.mapURL(), true
	}
	return "", false
}

func (b *GoogleBuilder) streetViewURL() string {
	var q queryParams
	q.add("api", "1")
	q.add("map_action", "pano")
	if b.pano != "" {
		q.add("pano", b.pano)
	} else {
		q.add("viewpoint", b.latLon())
	}
	if b.hasHeading {
		q.add("heading", formatFloat(b.heading))
	}
	if b.hasPitch {
		q.add("pitch", formatFloat(b.pitch))
	}
	if b.hasFOV {
		q.add("fov", formatFloat(b.fov))
	}
	return googleBaseURL + "/@?" + q.encode()
}

func (b *GoogleBuilder) searchURL() string {
	var q queryParams
	q.add("api", "1")
	q.add("query", b.query)
	if b.queryPlaceID != "" {
		q.add("query_place_id", b.queryPlaceID)
	}
	return googleBaseURL + "/search/?" + q.encode()
}

func (b *GoogleBuilder) directionsURL() string {
	var q queryParams
	q.add("api", "1")
	if b.origin != "" {
		q.add("origin", b.origin)
		if b.originPlaceID != "" {
			q.add("origin_place_id", b.originPlaceID)
		}
	}
	if b.destination != "" {
		q.add("destination", b.destination)
		if b.destinationPlaceID != "" {
			q.add("destination_place_id", b.destinationPlaceID)
		}
	}
	if b.travelMode != "" {
		q.add("travelmode", b.travelMode)
	}
	if len(b.waypoints) > 0 {
		q.add("waypoints", strings.Join(b.waypoints, "|"))
		// Pair the place ids against the waypoint list as it stands now,
		// never against the list some earlier setter call saw.
		ids := b.waypointPlaceIDs
		if len(ids) > len(b.waypoints) {
			ids = ids[:len(b.waypoints)]
		}
		if len(ids) > 0 {
			q.add("waypoint_place_ids", strings.Join(ids, "|"))
		}
	}
	if len(b.avoid) > 0 {
		q.add("avoid", strings.Join(b.avoid, ","))
	}
	return googleBaseURL + "/dir/?" + q.encode()
}

func (b *GoogleBuilder) mapURL() string {
	// The terrain layer has no basemap value in the api=1 scheme; Google
	// links it through the data-path form instead.
	if b.basemap == "terrain" {
		return fmt.Sprintf("%s/@%s,%dz/data=!5m1!1e4", googleBaseURL, b.latLon(), b.zoom)
	}
	var q queryParams
	q.add("api", "1")
	q.add("map_action", "map")
	q.add("center", b.latLon())
	q.add("zoom", strconv.Itoa(b.zoom))
	q.add("basemap", b.basemap)
	return googleBaseURL + "/@?" + q.encode()
}

// EmbedHTML renders the iframe snippet. It returns false when Embed was not
// requested or when neither a query nor coordinates are available for the
// embeddable form.
func (b *GoogleBuilder) EmbedHTML() (string, bool) {
	if !b.embed.enabled {
		return "", false
	}
	var q queryParams
	switch {
	case b.query != "":
		q.add("q", b.query)
	case b.hasCoords:
		q.add("q", b.latLon())
		q.add("z", strconv.Itoa(b.zoom))
	default:
		return "", false
	}
	q.add("output", "embed")
	return renderIframe(b.embed, googleEmbedBaseURL+"?"+q.encode()), true
}
