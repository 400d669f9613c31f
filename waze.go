package maplinks

import "strconv"

// This file contains the Waze builder. Waze deep links are the smallest
// scheme of the set: everything goes through the /ul universal link with a
// couple of parameters, and navigation is a flag on top of the map or search
// view rather than a separate mode.

const wazeBaseURL = "https://waze.com/ul"

// WazeBuilder assembles Waze deep links. Construct it with NewWaze.
type WazeBuilder struct {
	baseBuilder

	query    string
	navigate bool
}

// NewWaze returns a fresh Waze builder with default zoom.
func NewWaze() *WazeBuilder {
	return &WazeBuilder{baseBuilder: newBase(1, 20)}
}

// Reset restores the builder to its constructor defaults.
func (b *WazeBuilder) Reset() {
	*b = *NewWaze()
}

// Coordinates sets the map center (clamped) and returns the builder.
func (b *WazeBuilder) Coordinates(lat, lon float64) *WazeBuilder {
	b.SetCoordinates(lat, lon)
	return b
}

// Zoom sets the zoom level (clamped to [1, 20]) and returns the builder.
func (b *WazeBuilder) Zoom(zoom int) *WazeBuilder {
	b.SetZoom(zoom)
	return b
}

// Query sets the free-text search term.
func (b *WazeBuilder) Query(query string) *WazeBuilder {
	b.query = query
	return b
}

// Navigate asks Waze to start navigating to the link target on open.
func (b *WazeBuilder) Navigate() *WazeBuilder {
	b.navigate = true
	return b
}

func (b *WazeBuilder) resolveMode() mode {
	switch {
	case b.query != "":
		return modeSearch
	case b.hasCoords:
		return modeMap
	}
	return modeNone
}

// URL renders the link for the current builder state. The second return is
// false when neither a query nor coordinates are set.
func (b *WazeBuilder) URL() (string, bool) {
	var q queryParams
	switch b.resolveMode() {
	case modeSearch:
		q.add("q", b.query)
	case modeMap:
		q.add("ll", b.latLon())
		q.add("zoom", strconv.Itoa(b.zoom))
	default:
		return "", false
	}
	if b.navigate {
		q.add("navigate", "yes")
	}
	return wazeBaseURL + "?" + q.encode(), true
}
