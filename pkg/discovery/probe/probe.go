package probe

import (
	"context"
	"os/exec"
	"time"

	"github.com/projectdiscovery/gologger"
	osutils "github.com/projectdiscovery/utils/os"
	syncutil "github.com/projectdiscovery/utils/sync"
)

const (
	// DefaultConcurrency caps the number of in-flight probes per sweep.
	DefaultConcurrency = 50

	probeTimeout = 2 * time.Second
)

// Prober sends reachability probes to candidate hosts.
type Prober struct {
	concurrency int
}

// NewProber returns a Prober with the given concurrency cap; values
// below 1 fall back to DefaultConcurrency.
func NewProber(concurrency int) *Prober {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Prober{concurrency: concurrency}
}

// Probe pings ip once with OS-appropriate arguments. Any failure
// (timeout, unreachable host, missing binary) returns false.
func (p *Prober) Probe(ctx context.Context, ip string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", pingArgs(ip)...)
	return cmd.Run() == nil
}

// Sweep probes every address with bounded parallelism and waits for
// all probes to settle before returning. Individual results are
// discarded.
func (p *Prober) Sweep(ctx context.Context, ips []string) {
	awg, err := syncutil.New(syncutil.WithSize(p.concurrency))
	if err != nil {
		gologger.Warning().Msgf("failed to create probe waitgroup: %v", err)
		return
	}

	for _, ip := range ips {
		select {
		case <-ctx.Done():
			goto done
		default:
		}

		awg.Add()
		go func(target string) {
			defer awg.Done()
			_ = p.Probe(ctx, target)
		}(ip)
	}

done:
	awg.Wait()
}

func pingArgs(ip string) []string {
	switch {
	case osutils.IsOSX():
		return []string{"-c", "1", "-W", "1", "-t", "1", ip}
	case osutils.IsWindows():
		return []string{"-n", "1", "-w", "1000", ip}
	default:
		return []string{"-c", "1", "-W", "1", ip}
	}
}
