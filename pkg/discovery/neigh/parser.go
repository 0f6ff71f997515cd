package neigh

import (
	"strings"

	"github.com/mickeyl/lanagent/pkg/types"
)

// Parser extracts a device from one line of neighbor-table output.
type Parser interface {
	ParseLine(line string) (types.Device, bool)
}

// arpParser handles macOS-style `arp -a` output:
//
//	gateway (192.168.1.1) at aa:bb:cc:dd:ee:ff on en0 ifscope [ethernet]
type arpParser struct{}

func (arpParser) ParseLine(line string) (types.Device, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[2] != "at" {
		return types.Device{}, false
	}
	ip := strings.Trim(fields[1], "()")
	mac := fields[3]
	if !types.IsValidMAC(mac) {
		return types.Device{}, false
	}
	return types.Device{IP: ip, MAC: types.NormalizeMAC(mac)}, true
}

// ipNeighParser handles `ip neigh show` output:
//
//	192.168.1.1 dev eth0 lladdr aa:bb:cc:dd:ee:ff STALE
type ipNeighParser struct{}

func (ipNeighParser) ParseLine(line string) (types.Device, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return types.Device{}, false
	}
	var mac string
	for i, field := range fields {
		if field == "lladdr" && i+1 < len(fields) {
			mac = fields[i+1]
			break
		}
	}
	if mac == "" || !types.IsValidMAC(mac) {
		return types.Device{}, false
	}
	return types.Device{IP: fields[0], MAC: types.NormalizeMAC(mac)}, true
}
