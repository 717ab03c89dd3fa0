package stats

import (
	"expvar"
	"net/http"
	"strings"

	"github.com/twitsprout/tools"
)

// Expvar implements tools.StatsClient on top of unpublished expvar maps.
// Histograms keep a running count and sum per name and label set.
type Expvar struct {
	counters   *expvar.Map
	gauges     *expvar.Map
	histograms *expvar.Map
}

var _ tools.StatsClient = (*Expvar)(nil)

// NewExpvar returns an empty Expvar client.
func NewExpvar() *Expvar {
	return &Expvar{
		counters:   new(expvar.Map).Init(),
		gauges:     new(expvar.Map).Init(),
		histograms: new(expvar.Map).Init(),
	}
}

// Count adds incBy to the counter.
func (e *Expvar) Count(name string, incBy float64, labels []string) {
	e.counters.AddFloat(key(name, labels), incBy)
}

// Gauge sets the gauge to value.
func (e *Expvar) Gauge(name string, value float64, labels []string) {
	f := new(expvar.Float)
	f.Set(value)
	e.gauges.Set(key(name, labels), f)
}

// Histogram records one observation of value.
func (e *Expvar) Histogram(name string, value float64, labels []string) {
	k := key(name, labels)
	e.histograms.AddFloat(k+".count", 1)
	e.histograms.AddFloat(k+".sum", value)
}

// Handler serves every recorded value as a JSON object.
func (e *Expvar) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"counters":` + e.counters.String() +
			`,"gauges":` + e.gauges.String() +
			`,"histograms":` + e.histograms.String() + "}\n"))
	})
}

func key(name string, labels []string) string {
	if len(labels) == 0 {
		return name
	}
	return name + "{" + strings.Join(labels, ",") + "}"
}
