package maplinks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Tests ---

func TestNew(t *testing.T) {
	for _, p := range Providers() {
		t.Run(string(p), func(t *testing.T) {
			require.NotNil(t, New(p), "expected a builder for provider %q", p)
		})
	}

	assert.Nil(t, New("atlantis"), "unknown provider should yield nil")
}

func TestAllURLs(t *testing.T) {
	urls := AllURLs(40.7484, -73.9857, 15)

	require.Len(t, urls, len(Providers()), "every provider should build a plain-map URL from coordinates alone")
	for _, p := range Providers() {
		url, ok := urls[p]
		require.True(t, ok, "missing provider %q", p)
		assert.NotEmpty(t, url, "empty URL for provider %q", p)
		assert.True(t, strings.HasPrefix(url, "https://"), "URL for %q should be absolute: %q", p, url)
	}

	assert.Contains(t, urls[GoogleMaps], "center=40.7484%2C-73.9857")
	assert.Contains(t, urls[GoogleMaps], "zoom=15")
	assert.Contains(t, urls[YandexMaps], "ll=-73.9857%2C40.7484")
}

func TestAllURLsClampsInput(t *testing.T) {
	urls := AllURLs(1000, -1000, 99)

	require.Contains(t, urls, GoogleMaps)
	assert.Contains(t, urls[GoogleMaps], "center=90%2C-180")
	assert.Contains(t, urls[GoogleMaps], "zoom=20")
}

func TestBuilderReset(t *testing.T) {
	b := NewGoogle().Coordinates(40.7484, -73.9857).Zoom(15).Query("pizza")
	_, ok := b.URL()
	require.True(t, ok)

	b.Reset()

	url, ok := b.URL()
	assert.False(t, ok, "a reset builder should produce no URL")
	assert.Empty(t, url)
}

func TestBuilderInterfaceRoundTrip(t *testing.T) {
	for _, p := range Providers() {
		t.Run(string(p), func(t *testing.T) {
			b := New(p)
			b.SetCoordinates(40.7484, -73.9857)
			b.SetZoom(15)

			url, ok := b.URL()
			require.True(t, ok, "expected a URL for provider %q", p)
			assert.NotEmpty(t, url)

			b.Reset()
			_, ok = b.URL()
			assert.False(t, ok, "reset should clear provider %q", p)
		})
	}
}

func TestEmbedderImplementations(t *testing.T) {
	var _ Embedder = NewGoogle()
	var _ Embedder = NewOSM()
}
