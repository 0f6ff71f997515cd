package scan

import (
	"context"

	"github.com/projectdiscovery/gologger"
	"github.com/rs/xid"

	"github.com/mickeyl/lanagent/pkg/netinfo"
	"github.com/mickeyl/lanagent/pkg/types"
)

// maxHosts bounds the number of addresses probed per cycle.
const maxHosts = 254

// NetworkInspector provides the primary interface's address details.
type NetworkInspector interface {
	PrimaryNetwork() (netinfo.NetworkInfo, bool)
	PrimaryMachine() (types.Device, bool)
}

// Prober triggers address resolution for a set of candidate hosts.
type Prober interface {
	Sweep(ctx context.Context, ips []string)
}

// NeighborReader dumps the resolved neighbor table.
type NeighborReader interface {
	Read(ctx context.Context) ([]types.Device, error)
}

// Engine runs one discovery cycle: compute the host range of the
// primary network, trigger resolution traffic for every candidate,
// read back the neighbor table, merge in the local machine and publish
// the result to the cache.
type Engine struct {
	inspector NetworkInspector
	prober    Prober
	reader    NeighborReader
	cache     *Cache
}

// NewEngine wires the scan collaborators around a shared result cache.
func NewEngine(inspector NetworkInspector, prober Prober, reader NeighborReader, cache *Cache) *Engine {
	return &Engine{
		inspector: inspector,
		prober:    prober,
		reader:    reader,
		cache:     cache,
	}
}

// Scan performs one discovery cycle and returns a snapshot of the
// published list. A cycle that finds no local network or cannot read
// the neighbor table returns an empty list and leaves the previously
// cached result in place; stale-but-available data is preferred over
// empty data.
func (e *Engine) Scan(ctx context.Context) []types.Device {
	cycle := xid.New().String()

	network, ok := e.inspector.PrimaryNetwork()
	if !ok {
		gologger.Warning().Msgf("scan %s: no local network found, keeping cached results", cycle)
		return nil
	}

	hosts, err := netinfo.HostRange(network.IP, network.Netmask)
	if err != nil {
		gologger.Warning().Msgf("scan %s: could not compute host range: %v", cycle, err)
		return nil
	}
	if len(hosts) > maxHosts {
		hosts = hosts[:maxHosts]
	}

	gologger.Verbose().Msgf("scan %s: probing %d hosts on %s (%s)", cycle, len(hosts), network.IP, network.Netmask)
	e.prober.Sweep(ctx, hosts)

	devices, err := e.reader.Read(ctx)
	if err != nil {
		gologger.Error().Msgf("scan %s: error reading neighbor table: %v", cycle, err)
		return nil
	}

	if local, ok := e.inspector.PrimaryMachine(); ok && !containsIP(devices, local.IP) {
		devices = append(devices, local)
	}

	e.cache.Replace(devices)
	return e.cache.Snapshot()
}

func containsIP(devices []types.Device, ip string) bool {
	for _, device := range devices {
		if device.IP == ip {
			return true
		}
	}
	return false
}
