package neigh

import (
	"testing"

	"github.com/mickeyl/lanagent/pkg/types"
)

func TestArpParserParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   types.Device
		wantOK bool
	}{
		{
			name:   "resolved entry",
			line:   "gateway (192.168.1.1) at aa:bb:cc:dd:ee:ff on en0 ifscope [ethernet]",
			want:   types.Device{IP: "192.168.1.1", MAC: "AA:BB:CC:DD:EE:FF"},
			wantOK: true,
		},
		{
			name:   "unknown hostname",
			line:   "? (192.168.1.37) at 0c:d0:f8:94:2a:01 on en0 ifscope [ethernet]",
			want:   types.Device{IP: "192.168.1.37", MAC: "0C:D0:F8:94:2A:01"},
			wantOK: true,
		},
		{
			name:   "incomplete entry",
			line:   "? (192.168.1.200) at (incomplete) on en0 ifscope [ethernet]",
			wantOK: false,
		},
		{
			name:   "short line",
			line:   "gateway (192.168.1.1) at",
			wantOK: false,
		},
		{
			name:   "wrong shape",
			line:   "some unrelated command output here",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
	}

	parser := arpParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIpNeighParserParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   types.Device
		wantOK bool
	}{
		{
			name:   "stale entry",
			line:   "192.168.1.1 dev eth0 lladdr aa:bb:cc:dd:ee:ff STALE",
			want:   types.Device{IP: "192.168.1.1", MAC: "AA:BB:CC:DD:EE:FF"},
			wantOK: true,
		},
		{
			name:   "reachable entry",
			line:   "192.168.1.42 dev wlan0 lladdr 00:11:22:33:44:55 REACHABLE",
			want:   types.Device{IP: "192.168.1.42", MAC: "00:11:22:33:44:55"},
			wantOK: true,
		},
		{
			name:   "failed entry without lladdr",
			line:   "192.168.1.200 dev eth0 nud FAILED",
			wantOK: false,
		},
		{
			name:   "incomplete mac literal",
			line:   "192.168.1.201 dev eth0 lladdr (incomplete) STALE",
			wantOK: false,
		},
		{
			name:   "short line",
			line:   "192.168.1.1 dev eth0",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
	}

	parser := ipNeighParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
