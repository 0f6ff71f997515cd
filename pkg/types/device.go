package types

import "strings"

// incompleteMarkers are the literals arp/ip emit for unresolved entries.
var incompleteMarkers = []string{"(incomplete)", "<incomplete>"}

// Device represents a discovered host on the local network.
type Device struct {
	IP  string `json:"ip"`
	MAC string `json:"mac"`
}

// IsValidMAC reports whether mac is a colon-separated MAC address of
// exactly six two-digit hex groups. The incomplete-entry markers used
// by OS tools are rejected outright.
func IsValidMAC(mac string) bool {
	for _, marker := range incompleteMarkers {
		if mac == marker {
			return false
		}
	}
	parts := strings.Split(mac, ":")
	if len(parts) != 6 {
		return false
	}
	for _, part := range parts {
		if len(part) != 2 {
			return false
		}
		if !isHexDigit(part[0]) || !isHexDigit(part[1]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// NormalizeMAC uppercases a MAC address for publication.
func NormalizeMAC(mac string) string {
	return strings.ToUpper(mac)
}
