package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Place
		wantOK bool
	}{
		{
			name:   "plain pair",
			in:     "40.71,-74.0",
			want:   Place{Lat: 40.71, Lng: -74.0, Name: "40.71,-74.00", UTCOffsetHours: -5},
			wantOK: true,
		},
		{
			name:   "spaced pair",
			in:     " 51.5 , -0.12 ",
			want:   Place{Lat: 51.5, Lng: -0.12, Name: "51.50,-0.12", UTCOffsetHours: 0},
			wantOK: true,
		},
		{
			name:   "eastern offset",
			in:     "35.68,139.69",
			want:   Place{Lat: 35.68, Lng: 139.69, Name: "35.68,139.69", UTCOffsetHours: 9},
			wantOK: true,
		},
		{name: "free text", in: "tokyo"},
		{name: "too many parts", in: "1,2,3"},
		{name: "latitude out of range", in: "91,0"},
		{name: "longitude out of range", in: "0,181"},
		{name: "not numbers", in: "north,west"},
		{name: "empty", in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Reykjavik" {
			t.Errorf("query name = %q, want Reykjavik", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"Reykjavík","latitude":64.15,"longitude":-21.95,"timezone":"Atlantic/Reykjavik","country":"Iceland"}]}`))
	}))
	defer srv.Close()

	r := &Resolver{Endpoint: srv.URL, Client: srv.Client()}
	p, err := r.Geocode(context.Background(), "Reykjavik")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if p.Name != "Reykjavík" || p.Lat != 64.15 || p.Lng != -21.95 {
		t.Errorf("place = %+v", p)
	}
	// Atlantic/Reykjavik is UTC year-round
	if p.UTCOffsetHours != 0 {
		t.Errorf("offset = %v, want 0", p.UTCOffsetHours)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	r := &Resolver{Endpoint: srv.URL, Client: srv.Client()}
	if _, err := r.Geocode(context.Background(), "xyzzy"); err == nil {
		t.Fatal("expected error for empty result set")
	}
}

func TestGeocodeUnknownTimezoneFallsBackToLongitude(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"name":"Somewhere","latitude":10,"longitude":75,"timezone":"Not/AZone"}]}`))
	}))
	defer srv.Close()

	r := &Resolver{Endpoint: srv.URL, Client: srv.Client()}
	p, err := r.Geocode(context.Background(), "Somewhere")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if p.UTCOffsetHours != 5 {
		t.Errorf("offset = %v, want 5 from longitude", p.UTCOffsetHours)
	}
}

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := &Resolver{Endpoint: srv.URL, Client: srv.Client()}

	t.Run("empty query yields default", func(t *testing.T) {
		p, err := r.Resolve(context.Background(), "")
		if err != nil || p != Default {
			t.Errorf("Resolve(\"\") = %+v, %v", p, err)
		}
	})

	t.Run("coordinate pair skips the network", func(t *testing.T) {
		p, err := r.Resolve(context.Background(), "12,34")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if p.Lat != 12 || p.Lng != 34 {
			t.Errorf("place = %+v", p)
		}
	})

	t.Run("geocode failure falls back to default", func(t *testing.T) {
		p, err := r.Resolve(context.Background(), "atlantis")
		if err == nil {
			t.Fatal("expected error from failing endpoint")
		}
		if p != Default {
			t.Errorf("place = %+v, want Default", p)
		}
	})
}
