package stats

import (
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	jsonutils "github.com/twitsprout/tools/json"
)

func TestExpvarHandler(t *testing.T) {
	e := NewExpvar()
	e.Count("requests", 1, nil)
	e.Count("requests", 2, nil)
	e.Gauge("open_conns", 4, []string{"postgres"})
	e.Gauge("open_conns", 3, []string{"postgres"})
	e.Histogram("duration", 0.5, []string{"200", "list_albums"})
	e.Histogram("duration", 1.5, []string{"200", "list_albums"})

	wr := httptest.NewRecorder()
	e.Handler().ServeHTTP(wr, httptest.NewRequest("GET", "/metrics", nil))

	var res map[string]map[string]float64
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error returned from decoding response body: %s", err.Error())
	}
	exp := map[string]map[string]float64{
		"counters": {"requests": 3},
		"gauges":   {"open_conns{postgres}": 3},
		"histograms": {
			"duration{200,list_albums}.count": 2,
			"duration{200,list_albums}.sum":   2,
		},
	}
	if !cmp.Equal(exp, res) {
		t.Fatalf("unexpected metrics returned: %s", cmp.Diff(exp, res))
	}
}

func TestExpvarClientsAreIndependent(t *testing.T) {
	a, b := NewExpvar(), NewExpvar()
	a.Count("requests", 1, nil)
	if got := b.counters.Get("requests"); got != nil {
		t.Fatalf("expected a fresh client to be empty, got %s", got.String())
	}
}
