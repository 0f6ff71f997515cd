package scan

import (
	"sync"

	"github.com/mickeyl/lanagent/pkg/types"
)

// Cache holds the device list of the most recent completed scan.
// It is written by the engine and read by the HTTP layer; readers
// always receive an independent copy so a running cycle can replace
// the list without racing an in-flight response.
type Cache struct {
	mutex   sync.RWMutex
	devices []types.Device
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Replace swaps the cached list wholesale. Older results are
// discarded, not versioned.
func (c *Cache) Replace(devices []types.Device) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.devices = devices
}

// Snapshot returns a copy of the latest device list.
func (c *Cache) Snapshot() []types.Device {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	snapshot := make([]types.Device, len(c.devices))
	copy(snapshot, c.devices)
	return snapshot
}
