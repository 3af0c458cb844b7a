// Command dilinkctl is a thin, flag-based wrapper around the dilink
// resolver: it loads a RawInterface fixture, runs the pipeline, and
// prints a diagnostics report. It stands in for the front-end, CLI, and
// code generator that are all external collaborators out of scope for
// the core module itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wiregraph/dilink"
	"github.com/wiregraph/dilink/model"
	"github.com/wiregraph/dilink/resolved"
)

func main() {
	var inputPath string
	var metricsAddr string
	var development bool

	flag.StringVar(&inputPath, "input", "", "path to a YAML RawInterface fixture")
	flag.StringVar(&metricsAddr, "metrics-bind-address", "", "address to serve Prometheus metrics on (empty disables)")
	flag.BoolVar(&development, "development", false, "use a human-readable, verbose logger")
	flag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "dilinkctl: -input is required")
		os.Exit(2)
	}

	zapLog, err := newZapLogger(development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dilinkctl: building logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync()
	log := zapr.NewLogger(zapLog)

	raw, err := loadFixture(inputPath)
	if err != nil {
		log.Error(err, "loading fixture", "path", inputPath)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	opts := []dilink.Option{dilink.WithLogger(log), dilink.WithMetrics(registry)}

	if metricsAddr != "" {
		go serveMetrics(log, metricsAddr, registry)
	}

	resolver := dilink.New(opts...)
	roots, err := resolver.Resolve(context.Background(), raw)
	if err != nil {
		log.Error(err, "resolve failed")
		os.Exit(1)
	}

	if report(roots) {
		os.Exit(1)
	}
}

func newZapLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadFixture(path string) (model.RawInterface, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.RawInterface{}, err
	}
	defer f.Close()

	var raw model.RawInterface
	if err := yaml.NewDecoder(f).Decode(&raw); err != nil {
		return model.RawInterface{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return raw, nil
}

func serveMetrics(log logr.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error(err, "metrics server stopped")
	}
}

// report prints a human-readable diagnostics summary and reports
// whether any root carried at least one diagnostic -- the signal a
// caller uses to decide the generator should not emit code for that
// root.
func report(roots []*resolved.ResolvedComponent) (anyDiagnostics bool) {
	for _, root := range roots {
		anyDiagnostics = reportTree(root, "") || anyDiagnostics
	}
	return anyDiagnostics
}

func reportTree(c *resolved.ResolvedComponent, indent string) bool {
	if c == nil {
		return false
	}
	found := len(c.Diagnostics) > 0
	if found {
		fmt.Printf("%s%s: %d diagnostic(s)\n", indent, c.Type, len(c.Diagnostics))
		for _, d := range c.Diagnostics {
			fmt.Printf("%s  - %s\n", indent, d.Error())
		}
	} else {
		fmt.Printf("%s%s: ok\n", indent, c.Type)
	}
	for _, child := range c.Children {
		found = reportTree(child, indent+"  ") || found
	}
	return found
}
