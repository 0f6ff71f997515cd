package netinfo

import (
	"fmt"
	"net"

	"github.com/projectdiscovery/mapcidr"
)

// HostRange returns every usable host address of the subnet containing
// ip, in ascending order. The network and broadcast addresses are
// excluded. Truncation for scan cost is left to the caller.
func HostRange(ip, netmask string) ([]string, error) {
	addr := net.ParseIP(ip)
	if addr == nil || addr.To4() == nil {
		return nil, fmt.Errorf("invalid IPv4 address: %s", ip)
	}
	maskIP := net.ParseIP(netmask)
	if maskIP == nil || maskIP.To4() == nil {
		return nil, fmt.Errorf("invalid netmask: %s", netmask)
	}

	mask := net.IPMask(maskIP.To4())
	if _, bits := mask.Size(); bits != 32 {
		return nil, fmt.Errorf("non-contiguous netmask: %s", netmask)
	}

	network := &net.IPNet{IP: addr.To4().Mask(mask), Mask: mask}
	ips, err := mapcidr.IPAddresses(network.String())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", network.String(), err)
	}

	hosts := make([]string, 0, len(ips))
	for _, candidate := range ips {
		candidateIP := net.ParseIP(candidate)
		if candidateIP == nil || isNetworkOrBroadcast(candidateIP.To4(), network) {
			continue
		}
		hosts = append(hosts, candidate)
	}
	return hosts, nil
}

// isNetworkOrBroadcast checks if an IP is the network or broadcast
// address of the given network.
func isNetworkOrBroadcast(ip net.IP, network *net.IPNet) bool {
	if ip.Equal(network.IP) {
		return true
	}
	broadcast := make(net.IP, len(network.IP))
	copy(broadcast, network.IP)
	for i := range broadcast {
		broadcast[i] |= ^network.Mask[i]
	}
	return ip.Equal(broadcast)
}
