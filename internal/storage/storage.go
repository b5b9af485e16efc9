// Package storage is the game's persistence surface: a per-device key-value
// store with get/set/remove semantics. The daily ledger and the selected
// region live under the two well-known keys, mirroring the browser-local
// storage layout older clients used.
package storage

// Well-known keys.
const (
	KeyRegion    = "audio-birdle-region"
	KeyGameState = "audio-birdle-game-state"
)

// Store persists opaque string values per device. Implementations must treat
// a missing key as (value="", ok=false, err=nil); errors are reserved for
// backend failures.
type Store interface {
	Get(deviceID, key string) (string, bool, error)
	Set(deviceID, key, value string) error
	Remove(deviceID, key string) error
}
