package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
)

func TestObserveToolCall(t *testing.T) {
	m := New()

	m.ObserveToolCall("list_pods", false, 10*time.Millisecond)
	m.ObserveToolCall("list_pods", false, 20*time.Millisecond)
	m.ObserveToolCall("list_pods", true, 5*time.Millisecond)

	if diff := cmp.Diff(2.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("list_pods", ResultSuccess))); diff != "" {
		t.Errorf("tool_calls_total{result=success}: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("list_pods", ResultError))); diff != "" {
		t.Errorf("tool_calls_total{result=error}: -want, +got:\n%s", diff)
	}
}

func TestObserveLogFetch(t *testing.T) {
	m := New()

	m.ObserveLogFetch(nil)
	m.ObserveLogFetch(errors.New("boom"))
	m.ObserveLogFetch(nil)

	if diff := cmp.Diff(2.0, testutil.ToFloat64(m.logFetches.WithLabelValues(ResultSuccess))); diff != "" {
		t.Errorf("pod_log_fetches_total{result=success}: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(1.0, testutil.ToFloat64(m.logFetches.WithLabelValues(ResultError))); diff != "" {
		t.Errorf("pod_log_fetches_total{result=error}: -want, +got:\n%s", diff)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	// Must not panic.
	m.ObserveToolCall("list_pods", false, time.Second)
	m.ObserveLogFetch(nil)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveToolCall("get_logs", false, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if diff := cmp.Diff(http.StatusOK, rec.Code); diff != "" {
		t.Fatalf("GET /metrics: -want, +got:\n%s", diff)
	}
	if !strings.Contains(rec.Body.String(), `kube_readonly_mcp_tool_calls_total{result="success",tool="get_logs"} 1`) {
		t.Errorf("GET /metrics: tool call counter missing from:\n%s", rec.Body.String())
	}
}
