package panels

import (
	"strconv"

	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate charts API requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return series("Request Rate", "HTTP requests per second").
		WithTarget(PromQuery("ptm:http_requests:rate5m", "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max"))
}

// LatencyPercentiles charts p50, p95 and p99 API latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	p := series("Latency Percentiles", "HTTP request duration percentiles").
		Unit("s").
		Legend(TableLegend("mean", "max"))
	for i, q := range []float64{0.50, 0.95, 0.99} {
		p.WithTarget(PromQuery(Quantile(q, "ptm_http_request_duration_seconds"),
			percentileLegend(q), string(rune('A'+i))))
	}
	return p
}

// ErrorRate charts 5xx responses as a share of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "HTTP 5xx error rate as percentage of total requests").
		WithTarget(PromQuery("ptm:http_errors:rate5m / ptm:http_requests:rate5m * 100", "error %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

func percentileLegend(q float64) string {
	return "p" + strconv.Itoa(int(q*100+0.5))
}
