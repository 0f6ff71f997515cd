package netinfo

import (
	"testing"

	gopsutilnet "github.com/shirou/gopsutil/v3/net"
)

func fakeInspector(list gopsutilnet.InterfaceStatList) *Inspector {
	return &Inspector{interfaces: func() (gopsutilnet.InterfaceStatList, error) {
		return list, nil
	}}
}

func TestPrimaryNetwork(t *testing.T) {
	tests := []struct {
		name   string
		ifaces gopsutilnet.InterfaceStatList
		want   NetworkInfo
		wantOK bool
	}{
		{
			name: "skips loopback, picks first real address",
			ifaces: gopsutilnet.InterfaceStatList{
				{Name: "lo", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
				{Name: "eth0", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "192.168.1.5/24"}}},
			},
			want:   NetworkInfo{IP: "192.168.1.5", Netmask: "255.255.255.0"},
			wantOK: true,
		},
		{
			name: "skips ipv6 addresses",
			ifaces: gopsutilnet.InterfaceStatList{
				{Name: "eth0", Addrs: gopsutilnet.InterfaceAddrList{
					{Addr: "fe80::1/64"},
					{Addr: "10.1.2.3/16"},
				}},
			},
			want:   NetworkInfo{IP: "10.1.2.3", Netmask: "255.255.0.0"},
			wantOK: true,
		},
		{
			name: "bare address gets default netmask",
			ifaces: gopsutilnet.InterfaceStatList{
				{Name: "eth0", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "192.168.7.9"}}},
			},
			want:   NetworkInfo{IP: "192.168.7.9", Netmask: DefaultNetmask},
			wantOK: true,
		},
		{
			name: "loopback only",
			ifaces: gopsutilnet.InterfaceStatList{
				{Name: "lo", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fakeInspector(tt.ifaces).PrimaryNetwork()
			if ok != tt.wantOK {
				t.Fatalf("PrimaryNetwork() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("PrimaryNetwork() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPrimaryMachine(t *testing.T) {
	tests := []struct {
		name    string
		ifaces  gopsutilnet.InterfaceStatList
		wantIP  string
		wantMAC string
		wantOK  bool
	}{
		{
			name: "skips virtual interfaces and uppercases mac",
			ifaces: gopsutilnet.InterfaceStatList{
				{Name: "lo", HardwareAddr: "00:00:00:00:00:00", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
				{Name: "docker0", HardwareAddr: "02:42:ac:11:00:02", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "172.17.0.1/16"}}},
				{Name: "veth1a2b", HardwareAddr: "aa:aa:aa:aa:aa:aa", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "172.18.0.1/16"}}},
				{Name: "br-f00d", HardwareAddr: "bb:bb:bb:bb:bb:bb", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "172.19.0.1/16"}}},
				{Name: "eth0", HardwareAddr: "aa:bb:cc:dd:ee:ff", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "192.168.1.5/24"}}},
			},
			wantIP:  "192.168.1.5",
			wantMAC: "AA:BB:CC:DD:EE:FF",
			wantOK:  true,
		},
		{
			name: "skips interfaces without valid mac",
			ifaces: gopsutilnet.InterfaceStatList{
				{Name: "tun0", HardwareAddr: "", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "10.8.0.2/24"}}},
				{Name: "en0", HardwareAddr: "de:ad:be:ef:00:01", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "192.168.0.20/24"}}},
			},
			wantIP:  "192.168.0.20",
			wantMAC: "DE:AD:BE:EF:00:01",
			wantOK:  true,
		},
		{
			name: "no qualifying interface",
			ifaces: gopsutilnet.InterfaceStatList{
				{Name: "lo", Addrs: gopsutilnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
				{Name: "eth0", HardwareAddr: "aa:bb:cc:dd:ee:ff"},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fakeInspector(tt.ifaces).PrimaryMachine()
			if ok != tt.wantOK {
				t.Fatalf("PrimaryMachine() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.IP != tt.wantIP || got.MAC != tt.wantMAC {
				t.Errorf("PrimaryMachine() = %+v, want {IP:%s MAC:%s}", got, tt.wantIP, tt.wantMAC)
			}
		})
	}
}
