/*
Package main is the main entrypoint into the mcp server.
*/
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap/zapcore"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	xplogging "github.com/crossplane/crossplane-runtime/pkg/logging"
	"github.com/crossplane/function-sdk-go/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/metrics"
	"github.com/upbound/kube-readonly-mcp-server/internal/tool"
)

const (
	version = "0.0.1"
	name    = "kube-readonly-mcp-server"
	desc    = "Read-only Kubernetes MCP Server"
)

const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

// Command contains all the options for the runnable.
type Command struct {
	Debug   bool `default:"false" env:"DEBUG"    help:"Run with debug logging."   name:"debug"    short:"d"`
	DevMode bool `default:"false" env:"DEV_MODE" help:"Enables logging dev mode." name:"dev-mode"`

	Transport      string `default:"http"  enum:"stdio,http" env:"TRANSPORT"       help:"Transport to serve MCP over. One of stdio or http."`
	Port           string `default:":8081"                    env:"PORT"            help:"Address to listen on when serving over http."                              short:"p"`
	MetricsAddress string `default:""                         env:"METRICS_ADDRESS" help:"Address to serve Prometheus metrics on. Metrics are not served if empty."`

	Kubeconfig string        `default:""    help:"Location of the kubeconfig to use for the API clients. Default is to use the incluster config."`
	Context    string        `default:""    help:"Kubeconfig context to use. Default is the current context."`
	Timeout    time.Duration `default:"30s" env:"REQUEST_TIMEOUT" help:"Timeout for every request to the API server."`
	QPS        float32       `default:"50"  env:"QPS"             help:"Client side rate limit for requests to the API server."`
	Burst      int           `default:"100" env:"BURST"           help:"Client side burst for requests to the API server."`

	Concurrency int `default:"4" env:"CONCURRENCY" help:"Number of pods whose logs are read at once."`
}

func main() {
	cmd := Command{}

	kongCtx := kong.Parse(&cmd,
		kong.Name(name),
		kong.Description(desc),
		kong.UsageOnError(),
	)

	// initialize a new MCP server.
	s := server.NewMCPServer(
		desc,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	// specify logging options. stdout carries MCP frames in stdio mode.
	zapOpts := []zap.Opts{zap.WriteTo(os.Stderr)}
	if cmd.Debug {
		zapOpts = append(zapOpts, zap.Level(zapcore.DebugLevel))
	}
	if cmd.DevMode {
		zapOpts = append(zapOpts, zap.UseDevMode(true))
	}

	zl := zap.New(zapOpts...)
	nzl := zl.WithName(name)
	log := logging.NewLogrLogger(nzl)
	ctrllog.SetLogger(nzl)

	cfg, err := cluster.GetConfig(
		cluster.WithKubeconfig(cmd.Kubeconfig),
		cluster.WithContext(cmd.Context),
		cluster.WithTimeout(cmd.Timeout),
		cluster.WithRateLimits(cmd.QPS, cmd.Burst),
	)
	kongCtx.FatalIfErrorf(err, "failed to retrieve Kubeconfig")

	c, err := cluster.NewForConfig(cfg)
	kongCtx.FatalIfErrorf(err, "failed to construct clientset")

	m := metrics.New()
	if cmd.MetricsAddress != "" {
		go serveMetrics(log, cmd.MetricsAddress, m)
	}

	// Set up tools and corresponding handlers.
	ts := tool.NewServer(c,
		tool.WithLogging(log),
		tool.WithMetrics(m),
		tool.WithConcurrency(cmd.Concurrency),
	)
	s.AddTools(ts.Tools()...)

	switch cmd.Transport {
	case transportStdio:
		log.Info("Serving MCP over stdio")
		kongCtx.FatalIfErrorf(server.ServeStdio(s), "failed to serve stdio")
	case transportHTTP:
		ss := server.NewStreamableHTTPServer(s)

		log.Info(fmt.Sprintf("Streamable HTTP server starting at http://localhost%s/mcp", cmd.Port))
		kongCtx.FatalIfErrorf(ss.Start(cmd.Port), "failed to start streamable HTTP server")
	}
}

func serveMetrics(log xplogging.Logger, addr string, m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("Metrics server starting", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Info("Metrics server stopped", "error", err)
	}
}
