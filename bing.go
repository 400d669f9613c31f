package maplinks

import (
	"strconv"
	"strings"
)

// This file contains the Bing Maps builder. Bing's linking scheme has a few
// encoding quirks the other providers lack: coordinate pairs in the cp
// parameter are '~'-separated, business searches pack their sort type and
// page number into the same parameter value, and collections of pushpins are
// serialized as one '_'-delimited string.

const (
	bingBaseURL = "https://bing.com/maps/default.aspx"

	bingDefaultStyle      = "r"
	bingDefaultTravelMode = "d"
)

var (
	// r road, a aerial, h hybrid, o bird's-eye, b bird's-eye hybrid.
	bingStyles      = []string{"r", "a", "h", "o", "b"}
	bingTravelModes = []string{"d", "w", "t"}
)

// BingPoint is one entry of a Bing collection: a pushpin with an optional
// title, notes, link and photo.
type BingPoint struct {
	Lat   float64
	Lon   float64
	Title string
	Notes string
	URL   string
	Photo string
}

// serialize renders the point in Bing's sp format,
// point.lat_lon_title_notes_url_photo, with the trailing empty fields
// dropped.
func (p BingPoint) serialize() string {
	fields := []string{p.Title, p.Notes, p.URL, p.Photo}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	parts := append([]string{
		formatFloat(clampFloat(p.Lat, -90, 90)),
		formatFloat(clampFloat(p.Lon, -180, 180)),
	}, fields...)
	return "point." + strings.Join(parts, "_")
}

// BingBuilder assembles Bing Maps links. Construct it with NewBing.
type BingBuilder struct {
	baseBuilder

	style string

	search string

	business    string
	sortType    int
	hasSortType bool
	pageNumber  int
	hasPageNum  bool

	origin      string
	destination string
	originLat   float64
	originLon   float64
	hasOrigin   bool
	destLat     float64
	destLon     float64
	hasDest     bool
	travelMode  string

	birdsEye     bool
	scene        string
	direction    float64
	hasDirection bool

	points []BingPoint
}

// NewBing returns a fresh Bing Maps builder with default zoom and road style.
func NewBing() *BingBuilder {
	return &BingBuilder{
		baseBuilder: newBase(1, 20),
		style:       bingDefaultStyle,
	}
}

// Reset restores the builder to its constructor defaults.
func (b *BingBuilder) Reset() {
	*b = *NewBing()
}

// Coordinates sets the map center (clamped) and returns the builder.
func (b *BingBuilder) Coordinates(lat, lon float64) *BingBuilder {
	b.SetCoordinates(lat, lon)
	return b
}

// Zoom sets the zoom level (clamped to [1, 20]) and returns the builder.
func (b *BingBuilder) Zoom(zoom int) *BingBuilder {
	b.SetZoom(zoom)
	return b
}

// Style selects the map style code ("r", "a", "h", "o", "b"). Unknown values
// fall back to "r".
func (b *BingBuilder) Style(style string) *BingBuilder {
	b.style = pickEnum(style, bingDefaultStyle, bingStyles...)
	return b
}

// Search sets the free-text search term (the where1 parameter).
func (b *BingBuilder) Search(query string) *BingBuilder {
	b.search = query
	return b
}

// BusinessSearch sets a local business search term (the ss parameter).
func (b *BingBuilder) BusinessSearch(query string) *BingBuilder {
	b.business = query
	return b
}

// SortType sets the business-search result ordering.
func (b *BingBuilder) SortType(sortType int) *BingBuilder {
	b.sortType = sortType
	b.hasSortType = true
	return b
}

// Page sets the business-search result page.
func (b *BingBuilder) Page(page int) *BingBuilder {
	b.pageNumber = page
	b.hasPageNum = true
	return b
}

// From sets the route origin address. It replaces a coordinate origin.
func (b *BingBuilder) From(origin string) *BingBuilder {
	b.origin = origin
	b.hasOrigin = false
	return b
}

// FromCoordinates sets the route origin as a coordinate pair (clamped). It
// replaces an address origin.
func (b *BingBuilder) FromCoordinates(lat, lon float64) *BingBuilder {
	b.originLat = clampFloat(lat, -90, 90)
	b.originLon = clampFloat(lon, -180, 180)
	b.hasOrigin = true
	b.origin = ""
	return b
}

// To sets the route destination address. It replaces a coordinate
// destination.
func (b *BingBuilder) To(destination string) *BingBuilder {
	b.destination = destination
	b.hasDest = false
	return b
}

// ToCoordinates sets the route destination as a coordinate pair (clamped).
// It replaces an address destination.
func (b *BingBuilder) ToCoordinates(lat, lon float64) *BingBuilder {
	b.destLat = clampFloat(lat, -90, 90)
	b.destLon = clampFloat(lon, -180, 180)
	b.hasDest = true
	b.destination = ""
	return b
}

// TravelMode selects "d" (driving), "w" (walking) or "t" (transit). Unknown
// values fall back to "d".
func (b *BingBuilder) TravelMode(mode string) *BingBuilder {
	b.travelMode = pickEnum(mode, bingDefaultTravelMode, bingTravelModes...)
	return b
}

// BirdsEye requests the bird's-eye view at the set coordinates.
func (b *BingBuilder) BirdsEye() *BingBuilder {
	b.birdsEye = true
	return b
}

// Scene selects a bird's-eye scene by its identifier.
func (b *BingBuilder) Scene(id string) *BingBuilder {
	b.scene = id
	return b
}

// Direction sets the bird's-eye viewing direction, clamped to [-180, 360].
func (b *BingBuilder) Direction(direction float64) *BingBuilder {
	b.direction = clampFloat(direction, -180, 360)
	b.hasDirection = true
	return b
}

// Points sets the collection of pushpins rendered on the map.
func (b *BingBuilder) Points(points ...BingPoint) *BingBuilder {
	b.points = points
	return b
}

// resolveMode mirrors the Google precedence chain with Bing's branch set:
// bird's-eye beats the searches, searches beat directions, directions beat
// the plain map. A collection of points is enough to render a map without
// coordinates.
func (b *BingBuilder) resolveMode() mode {
	switch {
	case b.scene != "" || (b.birdsEye && b.hasCoords):
		return modeStreetView
	case b.search != "" || b.business != "":
		return modeSearch
	case b.origin != "" || b.destination != "" || b.hasOrigin || b.hasDest:
		return modeDirections
	case b.hasCoords || len(b.points) > 0:
		return modeMap
	}
	return modeNone
}

// URL renders the link for the current builder state. The second return is
// false when no mode's minimum fields are satisfied.
func (b *BingBuilder) URL() (string, bool) {
	switch b.resolveMode() {
	case modeStreetView:
		return b.birdsEyeURL(), true
	case modeSearch:
		return b.searchURL(), true
	case modeDirections:
		return b.directionsURL(), true
	case modeMap:
		return b.mapURL(), true
	}
	return "", false
}

// cp serializes the coordinates in Bing's '~'-separated form.
func (b *BingBuilder) cp() string {
	return formatFloat(b.lat) + "~" + formatFloat(b.lon)
}

func (b *BingBuilder) birdsEyeURL() string {
	var q queryParams
	if b.hasCoords {
		q.add("cp", b.cp())
	}
	q.add("style", "o")
	if b.hasDirection {
		q.add("dir", formatFloat(b.direction))
	}
	if b.scene != "" {
		q.add("scene", b.scene)
	}
	q.add("lvl", strconv.Itoa(b.zoom))
	return bingBaseURL + "?" + q.encode()
}

func (b *BingBuilder) searchURL() string {
	var q queryParams
	if b.business != "" {
		// Sort type and page ride along inside the ss value itself; Bing
		// does not accept them as separate parameters.
		value := "yp." + b.business
		if b.hasSortType {
			value += "~sst." + strconv.Itoa(b.sortType)
		}
		if b.hasPageNum {
			value += "~pg." + strconv.Itoa(b.pageNumber)
		}
		q.add("ss", value)
	} else {
		q.add("where1", b.search)
	}
	if b.hasCoords {
		q.add("cp", b.cp())
		q.add("lvl", strconv.Itoa(b.zoom))
	}
	return bingBaseURL + "?" + q.encode()
}

func (b *BingBuilder) directionsURL() string {
	// Each route endpoint is either an adr. address or a pos. coordinate
	// pair, with lat and lon '_'-separated inside the pos form.
	from := ""
	switch {
	case b.origin != "":
		from = "adr." + b.origin
	case b.hasOrigin:
		from = "pos." + formatFloat(b.originLat) + "_" + formatFloat(b.originLon)
	}
	to := ""
	switch {
	case b.destination != "":
		to = "adr." + b.destination
	case b.hasDest:
		to = "pos." + formatFloat(b.destLat) + "_" + formatFloat(b.destLon)
	}
	var q queryParams
	q.add("rtp", from+"~"+to)
	if b.travelMode != "" {
		q.add("mode", b.travelMode)
	}
	return bingBaseURL + "?" + q.encode()
}

func (b *BingBuilder) mapURL() string {
	var q queryParams
	if b.hasCoords {
		q.add("cp", b.cp())
		q.add("lvl", strconv.Itoa(b.zoom))
	}
	q.add("style", b.style)
	if len(b.points) > 0 {
		serialized := make([]string, len(b.points))
		for i, p := range b.points {
			serialized[i] = p.serialize()
		}
		q.add("sp", strings.Join(serialized, "~"))
	}
	return bingBaseURL + "?" + q.encode()
}
