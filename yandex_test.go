package maplinks

import (
	"strings"
	"testing"
)

// --- Tests ---

func TestYandexURL(t *testing.T) {
	testCases := []struct {
		name    string
		build   func() *YandexBuilder
		wantURL string
		wantOK  bool
	}{
		{
			name:    "No Fields Set Yields No URL",
			build:   NewYandex,
			wantURL: "",
			wantOK:  false,
		},
		{
			name: "Plain Map Serializes Longitude First",
			build: func() *YandexBuilder {
				return NewYandex().Coordinates(55.7558, 37.6173).Zoom(15)
			},
			wantURL: "https://yandex.ru/maps/?ll=37.6173%2C55.7558&z=15&l=map",
			wantOK:  true,
		},
		{
			name: "Satellite Layer",
			build: func() *YandexBuilder {
				return NewYandex().Coordinates(55.7558, 37.6173).Layer("sat")
			},
			wantURL: "https://yandex.ru/maps/?ll=37.6173%2C55.7558&z=12&l=sat",
			wantOK:  true,
		},
		{
			name: "Invalid Layer Falls Back To Map",
			build: func() *YandexBuilder {
				return NewYandex().Coordinates(55.7558, 37.6173).Layer("x-ray")
			},
			wantURL: "https://yandex.ru/maps/?ll=37.6173%2C55.7558&z=12&l=map",
			wantOK:  true,
		},
		{
			name: "Search",
			build: func() *YandexBuilder {
				return NewYandex().Query("Red Square")
			},
			wantURL: "https://yandex.ru/maps/?text=Red+Square",
			wantOK:  true,
		},
		{
			name: "Search With Coordinates",
			build: func() *YandexBuilder {
				return NewYandex().Query("Red Square").Coordinates(55.7558, 37.6173)
			},
			wantURL: "https://yandex.ru/maps/?text=Red+Square&ll=37.6173%2C55.7558&z=12",
			wantOK:  true,
		},
		{
			name: "Directions Serialize Longitude First",
			build: func() *YandexBuilder {
				return NewYandex().From(55.7558, 37.6173).To(59.9343, 30.3351)
			},
			wantURL: "https://yandex.ru/maps/?rtext=37.6173%2C55.7558~30.3351%2C59.9343&rtt=auto",
			wantOK:  true,
		},
		{
			name: "Pedestrian Route Type",
			build: func() *YandexBuilder {
				return NewYandex().From(55.7558, 37.6173).To(59.9343, 30.3351).RouteType("pd")
			},
			wantURL: "https://yandex.ru/maps/?rtext=37.6173%2C55.7558~30.3351%2C59.9343&rtt=pd",
			wantOK:  true,
		},
		{
			name: "Invalid Route Type Falls Back To Auto",
			build: func() *YandexBuilder {
				return NewYandex().From(55.7558, 37.6173).To(59.9343, 30.3351).RouteType("sleigh")
			},
			wantURL: "https://yandex.ru/maps/?rtext=37.6173%2C55.7558~30.3351%2C59.9343&rtt=auto",
			wantOK:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url, ok := tc.build().URL()
			if ok != tc.wantOK {
				t.Fatalf("unexpected ok. got %v, want %v", ok, tc.wantOK)
			}
			if url != tc.wantURL {
				t.Errorf("unexpected URL.\ngot  %q\nwant %q", url, tc.wantURL)
			}
		})
	}
}

func TestYandexCoordinateOrderInversion(t *testing.T) {
	url, ok := NewYandex().Coordinates(55.7558, 37.6173).URL()
	if !ok {
		t.Fatal("expected a URL")
	}
	if !strings.Contains(url, "ll=37.6173%2C55.7558") {
		t.Errorf("expected longitude-first serialization, got %q", url)
	}
	if strings.Contains(url, "ll=55.7558") {
		t.Errorf("latitude must not come first for Yandex, got %q", url)
	}
}
