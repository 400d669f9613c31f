// Package maplinks builds shareable deep links for third-party map services.
//
// Each provider has a fluent builder: chained setters configure coordinates,
// search text, route endpoints or view flags, and a terminal URL call renders
// the provider's linking scheme. Builders never return errors; invalid input
// is clamped or replaced with defaults, and a builder whose state satisfies
// no output mode simply produces no URL. Builders are plain values owned by
// a single caller and are not safe for concurrent use.
package maplinks

// Provider identifies one of the supported map services.
type Provider string

const (
	// GoogleMaps is the provider using Google Maps.
	GoogleMaps Provider = "google"
	// BingMaps is the provider using Bing Maps.
	BingMaps Provider = "bing"
	// AppleMaps is the provider using Apple Maps.
	AppleMaps Provider = "apple"
	// OpenStreetMap is the provider using OpenStreetMap.org.
	OpenStreetMap Provider = "openstreetmap"
	// Waze is the provider using Waze deep links.
	Waze Provider = "waze"
	// YandexMaps is the provider using Yandex Maps.
	YandexMaps Provider = "yandex"
	// HereWeGo is the provider using HERE WeGo.
	HereWeGo Provider = "here"
)

// Providers returns the supported providers in their canonical order. The
// slice is freshly allocated on every call.
func Providers() []Provider {
	return []Provider{
		GoogleMaps,
		BingMaps,
		AppleMaps,
		OpenStreetMap,
		Waze,
		YandexMaps,
		HereWeGo,
	}
}

// Builder is the minimal surface shared by every provider builder: the
// coordinate/zoom base concern and the terminal operations. The full fluent
// API lives on the concrete builder types returned by the New* constructors.
type Builder interface {
	SetCoordinates(lat, lon float64)
	SetZoom(zoom int)
	URL() (string, bool)
	Reset()
}

// Embedder is implemented by builders whose provider has an embeddable form.
type Embedder interface {
	EmbedHTML() (string, bool)
}

// New returns a fresh, default-initialized builder for the given provider,
// or nil if the provider is unknown. Callers needing the provider-specific
// fluent API should use the concrete constructors instead.
func New(provider Provider) Builder {
	switch provider {
	case GoogleMaps:
		return NewGoogle()
	case BingMaps:
		return NewBing()
	case AppleMaps:
		return NewApple()
	case OpenStreetMap:
		return NewOSM()
	case Waze:
		return NewWaze()
	case YandexMaps:
		return NewYandex()
	case HereWeGo:
		return NewHERE()
	}
	return nil
}

// AllURLs builds the plain-map link for every provider at the given
// coordinates and zoom. Providers that cannot produce a URL from coordinates
// alone are left out of the result rather than reported as errors. Iterate
// with Providers for a deterministic order.
func AllURLs(lat, lon float64, zoom int) map[Provider]string {
	urls := make(map[Provider]string, len(Providers()))
	for _, p := range Providers() {
		b := New(p)
		b.SetCoordinates(lat, lon)
		b.SetZoom(zoom)
		if u, ok := b.URL(); ok {
			urls[p] = u
		}
	}
	return urls
}
