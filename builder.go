package maplinks

import (
	"net/url"
	"strconv"
	"strings"
)

// This file contains the shared state and validation logic embedded by every
// provider builder: coordinate and zoom clamping, float serialization, the
// permissive enum handling, and an insertion-ordered query encoder.
//
// The validation policy across the whole package is deliberately permissive:
// out-of-range numbers are clamped into range, unknown enum values silently
// fall back to the provider's default, and invalid list entries are filtered
// out. No setter ever reports an error; a builder either produces a
// best-effort URL or no URL at all.

// DefaultZoom is the zoom level a builder starts with before SetZoom is called.
const DefaultZoom = 12

// output mode of a builder, resolved from field presence at render time.
type mode int

const (
	modeNone mode = iota
	modeMap
	modeSearch
	modeDirections
	modeStreetView
)

// baseBuilder carries the fields and validation shared by all providers.
// Concrete builders embed it and expose chaining setters on top.
type baseBuilder struct {
	lat       float64
	lon       float64
	hasCoords bool
	zoom      int
	minZoom   int
	maxZoom   int
}

func newBase(minZoom, maxZoom int) baseBuilder {
	return baseBuilder{
		zoom:    DefaultZoom,
		minZoom: minZoom,
		maxZoom: maxZoom,
	}
}

// SetCoordinates stores a clamped latitude/longitude pair. Latitude is clamped
// to [-90, 90] and longitude to [-180, 180]; values already in range are
// stored unchanged.
func (b *baseBuilder) SetCoordinates(lat, lon float64) {
	b.lat = clampFloat(lat, -90, 90)
	b.lon = clampFloat(lon, -180, 180)
	b.hasCoords = true
}

// SetZoom stores the zoom level clamped to the provider's supported range.
func (b *baseBuilder) SetZoom(zoom int) {
	b.zoom = clampInt(zoom, b.minZoom, b.maxZoom)
}

// HasCoordinates reports whether a coordinate pair has been set. Both fields
// are always populated together, so a single flag is enough.
func (b *baseBuilder) HasCoordinates() bool {
	return b.hasCoords
}

// latLon serializes the stored coordinates as "lat,lon", the default order
// for every provider except Yandex.
func (b *baseBuilder) latLon() string {
	return formatCoords(b.lat, b.lon)
}

// lonLat serializes the stored coordinates longitude-first. Only Yandex uses
// this order; it is a per-provider formatting rule, not a package-wide one.
func (b *baseBuilder) lonLat() string {
	return formatCoords(b.lon, b.lat)
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// formatFloat renders a float without trailing zeros, so 40.7484 stays
// "40.7484" and 15 becomes "15".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCoords(first, second float64) string {
	return formatFloat(first) + "," + formatFloat(second)
}

// pickEnum returns value if it is one of allowed, otherwise fallback. This is
// the package-wide silent-fallback policy for enumerated strings.
func pickEnum(value, fallback string, allowed ...string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return fallback
}

// filterAllowed intersects values with the allow-list, preserving order and
// dropping duplicates along with anything not on the list.
func filterAllowed(values, allowed []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		for _, a := range allowed {
			if v == a {
				out = append(out, v)
				seen[v] = true
				break
			}
		}
	}
	return out
}

// queryParams is a query-string encoder that keeps insertion order. Most
// providers document their parameters in a fixed order, so the alphabetical
// ordering of url.Values.Encode cannot be used for them.
type queryParams struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

func (q *queryParams) add(key, value string) {
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
}

// encode renders the parameters in insertion order using standard
// form-encoding (spaces become '+').
func (q *queryParams) encode() string {
	var sb strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
