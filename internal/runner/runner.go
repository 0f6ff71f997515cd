package runner

import (
	"context"
	"strconv"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/mickeyl/lanagent/internal/server"
	"github.com/mickeyl/lanagent/pkg/advertise"
	"github.com/mickeyl/lanagent/pkg/discovery/neigh"
	"github.com/mickeyl/lanagent/pkg/discovery/probe"
	"github.com/mickeyl/lanagent/pkg/netinfo"
	"github.com/mickeyl/lanagent/pkg/scan"
	"github.com/mickeyl/lanagent/pkg/version"
)

// Runner contains the internal logic of the program
type Runner struct {
	options    *Options
	scheduler  *scan.Scheduler
	server     *server.Server
	advertiser *advertise.Advertiser
	cancel     context.CancelFunc
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	cache := scan.NewCache()
	engine := scan.NewEngine(
		netinfo.NewInspector(),
		probe.NewProber(probeConcurrency()),
		neigh.NewReader(),
		cache,
	)

	srv, err := server.New(options.Port, cache)
	if err != nil {
		return nil, err
	}

	return &Runner{
		options:   options,
		scheduler: scan.NewScheduler(engine, scanInterval()),
		server:    srv,
	}, nil
}

// Run starts the HTTP server, registers the mdns record and begins
// the periodic scan loop, then returns. The caller decides when to
// shut down via Close.
func (r *Runner) Run() error {
	if info, err := host.Info(); err == nil {
		gologger.Verbose().Msgf("running on %s (%s %s)", info.Hostname, info.Platform, info.PlatformVersion)
	}

	go r.server.Start()
	gologger.Info().Msgf("access the api at: http://0.0.0.0:%d/scan", r.server.Port())

	advertiser, err := advertise.Register(r.server.Port(), version.Version)
	if err != nil {
		return err
	}
	r.advertiser = advertiser

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go r.scheduler.Run(ctx)

	return nil
}

// Close stops the scan loop, deregisters the mdns record and shuts
// down the HTTP server.
func (r *Runner) Close() {
	if r.cancel != nil {
		r.cancel()
	}
	if r.advertiser != nil {
		r.advertiser.Shutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.server.Shutdown(shutdownCtx); err != nil {
		gologger.Warning().Msgf("error shutting down http server: %v", err)
	}
}

func scanInterval() time.Duration {
	interval, err := time.ParseDuration(ScanIntervalEnv)
	if err != nil || interval <= 0 {
		gologger.Warning().Msgf("invalid LANAGENT_SCAN_INTERVAL %q, using default", ScanIntervalEnv)
		return scan.DefaultInterval
	}
	return interval
}

func probeConcurrency() int {
	concurrency, err := strconv.Atoi(ProbeConcurrencyEnv)
	if err != nil || concurrency < 1 {
		return probe.DefaultConcurrency
	}
	return concurrency
}
