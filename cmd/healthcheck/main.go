// Command healthcheck probes a running server's /api/health endpoint and
// exits with status 0 when it reports healthy and 1 otherwise. It is meant
// for container HEALTHCHECK instructions, where no HTTP client is installed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/amivoice-web/internal/adapter"
	"github.com/MKhiriev/amivoice-web/internal/logger"
)

const (
	defaultURL     = "http://127.0.0.1:5000"
	defaultTimeout = 3 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	url := fs.String("url", defaultURL, "base URL of the server to probe")
	timeout := fs.Duration("timeout", defaultTimeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	probe, err := adapter.NewHTTPHealthProbe(*url, *timeout, logger.Nop())
	if err != nil {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return 1
	}

	return check(context.Background(), probe, *timeout, stdout, stderr)
}

func check(ctx context.Context, probe adapter.HealthProbe, timeout time.Duration, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report, err := probe.Check(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s (version %s, %s)\n", report.Status, report.Version, report.Timestamp)
	return 0
}
