// Package advertise publishes the agent's HTTP endpoint on the local
// network via mDNS/DNS-SD so other agents and browsers can find it
// without configuration.
package advertise

import (
	"fmt"
	"os"
	"strings"

	"github.com/grandcat/zeroconf"
	"github.com/projectdiscovery/gologger"
)

const (
	// ServiceType is the DNS-SD service type the agent registers under.
	ServiceType = "_lanagent._tcp"

	domain      = "local."
	description = "LAN Agent network scanner with JSON API"
)

// Advertiser is a registered mDNS service record.
type Advertiser struct {
	server *zeroconf.Server
}

// Register announces the service. The instance name is derived from
// the short hostname and the bound port so multiple agents on one
// subnet stay distinguishable.
func Register(port int, version string) (*Advertiser, error) {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}
	hostname = strings.Split(hostname, ".")[0]

	instance := fmt.Sprintf("lanagent-%s-%d", hostname, port)
	txt := []string{
		"version=" + version,
		"path=/scan",
		"description=" + description,
		"hostname=" + hostname,
	}

	server, err := zeroconf.Register(instance, ServiceType, domain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mdns service: %w", err)
	}

	gologger.Info().Msgf("service registered via mdns as: %s", instance)
	gologger.Verbose().Msgf("service type: %s.%s", ServiceType, domain)
	return &Advertiser{server: server}, nil
}

// Shutdown deregisters the service record.
func (a *Advertiser) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
	}
}
