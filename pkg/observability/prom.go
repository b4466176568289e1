package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "algoviz"

// PrometheusHooks records every hook event as Prometheus metrics. One value
// implements all hook interfaces.
type PrometheusHooks struct {
	gatherer prometheus.Gatherer

	generated    *prometheus.CounterVec
	generateTime *prometheus.HistogramVec
	treeNodes    prometheus.Histogram

	searches   *prometheus.CounterVec
	searchTime *prometheus.HistogramVec
	visited    *prometheus.HistogramVec

	renders    *prometheus.CounterVec
	renderTime *prometheus.HistogramVec

	ciphers *prometheus.CounterVec

	cacheOps   *prometheus.CounterVec
	cacheBytes *prometheus.CounterVec

	requests    *prometheus.CounterVec
	requestTime *prometheus.HistogramVec
}

// NewPrometheusHooks creates the metrics and registers them with reg.
func NewPrometheusHooks(reg *prometheus.Registry) *PrometheusHooks {
	p := &PrometheusHooks{
		gatherer: reg,
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "trees_generated_total",
			Help: "Trees generated, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		generateTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "generate_duration_seconds",
			Help: "Tree generation latency.", Buckets: prometheus.DefBuckets,
		}, []string{"mode"}),
		treeNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "tree_nodes",
			Help: "Node count of generated trees.", Buckets: prometheus.LinearBuckets(5, 5, 10),
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "searches_total",
			Help: "Searches run, by algorithm and whether the target was found.",
		}, []string{"algorithm", "found"}),
		searchTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "search_duration_seconds",
			Help: "Search latency.", Buckets: prometheus.DefBuckets,
		}, []string{"algorithm"}),
		visited: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "search_visited_nodes",
			Help: "Visit log length per search.", Buckets: prometheus.LinearBuckets(5, 5, 10),
		}, []string{"algorithm"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "renders_total",
			Help: "Artifacts rendered, by format and outcome.",
		}, []string{"format", "outcome"}),
		renderTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "render_duration_seconds",
			Help: "Render latency.", Buckets: prometheus.DefBuckets,
		}, []string{"format"}),
		ciphers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cipher_runs_total",
			Help: "Cipher runs, by cipher, mode and outcome.",
		}, []string{"cipher", "mode", "outcome"}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_operations_total",
			Help: "Cache lookups and writes, by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_written_bytes_total",
			Help: "Bytes written to the cache.",
		}, []string{"key_type"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help: "HTTP request latency.", Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		p.generated, p.generateTime, p.treeNodes,
		p.searches, p.searchTime, p.visited,
		p.renders, p.renderTime,
		p.ciphers,
		p.cacheOps, p.cacheBytes,
		p.requests, p.requestTime,
	)
	return p
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusHooks) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

// Register installs p as the pipeline, cipher, cache and HTTP hooks.
func (p *PrometheusHooks) Register() {
	SetPipelineHooks(p)
	SetCipherHooks(p)
	SetCacheHooks(p)
	SetHTTPHooks(p)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (p *PrometheusHooks) OnGenerateStart(context.Context, string, int) {}

func (p *PrometheusHooks) OnGenerateComplete(_ context.Context, mode string, nodeCount int, d time.Duration, err error) {
	p.generated.WithLabelValues(mode, outcome(err)).Inc()
	if err != nil {
		return
	}
	p.generateTime.WithLabelValues(mode).Observe(d.Seconds())
	p.treeNodes.Observe(float64(nodeCount))
}

func (p *PrometheusHooks) OnSearchStart(context.Context, string, string) {}

func (p *PrometheusHooks) OnSearchComplete(_ context.Context, algorithm string, visited int, found bool, d time.Duration, err error) {
	if err != nil {
		p.searches.WithLabelValues(algorithm, "error").Inc()
		return
	}
	p.searches.WithLabelValues(algorithm, strconv.FormatBool(found)).Inc()
	p.searchTime.WithLabelValues(algorithm).Observe(d.Seconds())
	p.visited.WithLabelValues(algorithm).Observe(float64(visited))
}

func (p *PrometheusHooks) OnRenderStart(context.Context, string) {}

func (p *PrometheusHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	p.renders.WithLabelValues(format, outcome(err)).Inc()
	if err == nil {
		p.renderTime.WithLabelValues(format).Observe(d.Seconds())
	}
}

func (p *PrometheusHooks) OnCipher(_ context.Context, cipher, mode string, _ int, _ time.Duration, err error) {
	p.ciphers.WithLabelValues(cipher, mode, outcome(err)).Inc()
}

func (p *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	p.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (p *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	p.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (p *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	p.cacheOps.WithLabelValues(keyType, "set").Inc()
	p.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (p *PrometheusHooks) OnRequest(context.Context, string, string) {}

func (p *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestTime.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ CipherHooks   = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
	_ HTTPHooks     = (*PrometheusHooks)(nil)
)
