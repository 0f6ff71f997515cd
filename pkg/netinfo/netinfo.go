// Package netinfo inspects the local network interfaces to determine
// which subnet the agent should scan and how the local machine itself
// appears on it.
package netinfo

import (
	"net"
	"strings"

	gopsutilnet "github.com/shirou/gopsutil/v3/net"

	"github.com/mickeyl/lanagent/pkg/types"
)

// DefaultNetmask is assumed when an interface address reports no prefix.
const DefaultNetmask = "255.255.255.0"

// virtualPrefixes name interfaces that never represent the primary
// machine: loopback, container bridges and virtual ethernet pairs.
var virtualPrefixes = []string{"lo", "docker", "br-", "veth"}

// NetworkInfo is the primary interface's address and netmask. It is
// recomputed at the start of every scan cycle, never cached, since the
// topology may change between cycles.
type NetworkInfo struct {
	IP      string
	Netmask string
}

// Inspector enumerates local network interfaces.
type Inspector struct {
	interfaces func() (gopsutilnet.InterfaceStatList, error)
}

// NewInspector returns an Inspector backed by the OS interface table.
func NewInspector() *Inspector {
	return &Inspector{interfaces: gopsutilnet.Interfaces}
}

// PrimaryNetwork returns the first non-loopback IPv4 address of any
// interface together with its netmask. The second return value is
// false when no interface qualifies; callers treat that as "nothing to
// scan", not as an error.
func (i *Inspector) PrimaryNetwork() (NetworkInfo, bool) {
	ifaces, err := i.interfaces()
	if err != nil {
		return NetworkInfo{}, false
	}
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			ip, mask, ok := parseAddr(addr.Addr)
			if !ok || ip == "127.0.0.1" {
				continue
			}
			return NetworkInfo{IP: ip, Netmask: mask}, true
		}
	}
	return NetworkInfo{}, false
}

// PrimaryMachine returns the local machine's own device entry: the
// first interface that is not virtual and carries both a non-loopback
// IPv4 address and a valid hardware address.
func (i *Inspector) PrimaryMachine() (types.Device, bool) {
	ifaces, err := i.interfaces()
	if err != nil {
		return types.Device{}, false
	}
	for _, iface := range ifaces {
		if isVirtual(iface.Name) {
			continue
		}
		var ipAddr string
		for _, addr := range iface.Addrs {
			ip, _, ok := parseAddr(addr.Addr)
			if ok && ip != "127.0.0.1" {
				ipAddr = ip
				break
			}
		}
		if ipAddr == "" || !types.IsValidMAC(iface.HardwareAddr) {
			continue
		}
		return types.Device{IP: ipAddr, MAC: types.NormalizeMAC(iface.HardwareAddr)}, true
	}
	return types.Device{}, false
}

func isVirtual(name string) bool {
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// parseAddr accepts both CIDR ("192.168.1.5/24") and bare IP forms and
// returns the IPv4 address with its dotted netmask.
func parseAddr(s string) (string, string, bool) {
	if ip, ipnet, err := net.ParseCIDR(s); err == nil {
		ip4 := ip.To4()
		if ip4 == nil {
			return "", "", false
		}
		mask := DefaultNetmask
		if len(ipnet.Mask) == net.IPv4len {
			mask = net.IP(ipnet.Mask).String()
		}
		return ip4.String(), mask, true
	}
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return "", "", false
	}
	return ip.To4().String(), DefaultNetmask, true
}
