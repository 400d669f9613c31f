package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cor0nius/maplinks"
	dto "github.com/prometheus/client_model/go"
)

func testConfig() *apiConfig {
	return &apiConfig{
		defaultZoom: 12,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// --- Tests ---

func TestHandlerLinks(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
		check      func(t *testing.T, body string)
	}{
		{
			name:       "Success",
			method:     http.MethodGet,
			target:     "/api/links?lat=40.7484&lon=-73.9857&zoom=15",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body string) {
				var resp allLinksResponse
				if err := json.Unmarshal([]byte(body), &resp); err != nil {
					t.Fatalf("could not decode response: %v", err)
				}
				if resp.Latitude != 40.7484 || resp.Longitude != -73.9857 || resp.Zoom != 15 {
					t.Errorf("unexpected echo of request parameters: %+v", resp)
				}
				if len(resp.Links) != len(maplinks.Providers()) {
					t.Errorf("expected a link per provider, got %d", len(resp.Links))
				}
				for p, u := range resp.Links {
					if !strings.HasPrefix(u, "https://") {
						t.Errorf("link for %q is not absolute: %q", p, u)
					}
				}
			},
		},
		{
			name:       "Default Zoom Applied",
			method:     http.MethodGet,
			target:     "/api/links?lat=40.7484&lon=-73.9857",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body string) {
				var resp allLinksResponse
				if err := json.Unmarshal([]byte(body), &resp); err != nil {
					t.Fatalf("could not decode response: %v", err)
				}
				if resp.Zoom != 12 {
					t.Errorf("expected default zoom 12, got %d", resp.Zoom)
				}
			},
		},
		{
			name:       "Missing Coordinates",
			method:     http.MethodGet,
			target:     "/api/links",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Error getting location data"}`,
		},
		{
			name:       "Invalid Latitude",
			method:     http.MethodGet,
			target:     "/api/links?lat=north&lon=-73.9857",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Error getting location data"}`,
		},
		{
			name:       "Wrong Method",
			method:     http.MethodPost,
			target:     "/api/links?lat=40.7484&lon=-73.9857",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"Method Not Allowed"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			req := httptest.NewRequest(tc.method, tc.target, nil)
			rr := httptest.NewRecorder()

			cfg.handlerLinks(rr, req)

			if status := rr.Code; status != tc.wantStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tc.wantStatus)
			}
			if tc.wantBody != "" && rr.Body.String() != tc.wantBody {
				t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), tc.wantBody)
			}
			if tc.check != nil {
				tc.check(t, rr.Body.String())
			}
		})
	}
}

func TestHandlerLink(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
		check      func(t *testing.T, resp linkResponse)
	}{
		{
			name:       "Google Plain Map",
			target:     "/api/link?provider=google&lat=40.7484&lon=-73.9857&zoom=15",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp linkResponse) {
				if resp.Provider != maplinks.GoogleMaps {
					t.Errorf("unexpected provider %q", resp.Provider)
				}
				if !strings.Contains(resp.URL, "center=40.7484%2C-73.9857") {
					t.Errorf("unexpected URL %q", resp.URL)
				}
			},
		},
		{
			name:       "Apple Walking Directions",
			target:     "/api/link?provider=apple&destination=Empire+State+Building&mode=walking",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp linkResponse) {
				if !strings.Contains(resp.URL, "daddr=Empire+State+Building") {
					t.Errorf("expected destination in %q", resp.URL)
				}
				if !strings.Contains(resp.URL, "dirflg=w") {
					t.Errorf("expected walking flag in %q", resp.URL)
				}
				if strings.Contains(resp.URL, "saddr") {
					t.Errorf("origin must be omitted in %q", resp.URL)
				}
			},
		},
		{
			name:       "Yandex Route From Coordinate Pairs",
			target:     "/api/link?provider=yandex&origin=55.7558,37.6173&destination=59.9343,30.3351",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp linkResponse) {
				if !strings.Contains(resp.URL, "rtext=37.6173%2C55.7558~30.3351%2C59.9343") {
					t.Errorf("unexpected route serialization in %q", resp.URL)
				}
			},
		},
		{
			name:       "Unrecognized Short Provider Name",
			target:     "/api/link?provider=osm&lat=51.5&lon=-0.12",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Unknown provider"}`,
		},
		{
			name:       "Unknown Provider",
			target:     "/api/link?provider=atlantis&lat=40.7484&lon=-73.9857",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Unknown provider"}`,
		},
		{
			name:       "No Buildable Link",
			target:     "/api/link?provider=waze",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"No link can be built from the given parameters"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			cfg.handlerLink(rr, req)

			if status := rr.Code; status != tc.wantStatus {
				t.Errorf("handler returned wrong status code: got %v want %v (body %s)", status, tc.wantStatus, rr.Body.String())
			}
			if tc.wantBody != "" && rr.Body.String() != tc.wantBody {
				t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), tc.wantBody)
			}
			if tc.check != nil {
				var resp linkResponse
				if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
					t.Fatalf("could not decode response: %v", err)
				}
				tc.check(t, resp)
			}
		})
	}
}

func TestHandlerLinksCountsMetrics(t *testing.T) {
	linksBuiltTotal.Reset()

	cfg := testConfig()
	req := httptest.NewRequest(http.MethodGet, "/api/links?lat=40.7484&lon=-73.9857", nil)
	rr := httptest.NewRecorder()

	cfg.handlerLinks(rr, req)

	counter := linksBuiltTotal.WithLabelValues(string(maplinks.GoogleMaps))
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("could not read metric: %v", err)
	}
	if metric.Counter == nil || *metric.Counter.Value != 1 {
		t.Errorf("expected the google counter to be 1, got %+v", metric.Counter)
	}
}

func TestHandlerHealthz(t *testing.T) {
	cfg := testConfig()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	cfg.handlerHealthz(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != `{"status":"ok"}` {
		t.Errorf("handler returned unexpected body: %v", rr.Body.String())
	}
}

func TestSplitCoords(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{name: "Valid Pair", input: "55.7558,37.6173", wantLat: 55.7558, wantLon: 37.6173, wantOK: true},
		{name: "Spaces Tolerated", input: " 55.7558 , 37.6173 ", wantLat: 55.7558, wantLon: 37.6173, wantOK: true},
		{name: "Missing Longitude", input: "55.7558", wantOK: false},
		{name: "Not Numbers", input: "here,there", wantOK: false},
		{name: "Empty", input: "", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lat, lon, ok := splitCoords(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("unexpected ok. got %v, want %v", ok, tc.wantOK)
			}
			if ok && (lat != tc.wantLat || lon != tc.wantLon) {
				t.Errorf("unexpected coordinates. got (%v, %v), want (%v, %v)", lat, lon, tc.wantLat, tc.wantLon)
			}
		})
	}
}
