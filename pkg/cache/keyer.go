package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer derives cache keys for the pipeline's two cacheable artifacts:
// parsed entity graphs and rendered outputs.
type Keyer interface {
	// GraphKey generates a key for a parsed entity graph. The fingerprint
	// covers the scanned file set (paths, sizes, mtimes).
	GraphKey(fingerprint string, opts GraphKeyOpts) string

	// RenderKey generates a key for a rendered artifact derived from the
	// graph with the given content hash.
	RenderKey(graphHash string, opts RenderKeyOpts) string
}

// GraphKeyOpts captures everything besides the scan fingerprint that
// changes what a parse produces.
type GraphKeyOpts struct {
	Languages []string // sorted names of the languages that took part
}

// RenderKeyOpts captures the render parameters that shape an artifact.
type RenderKeyOpts struct {
	Format   string
	Entity   string
	Depth    int
	Detailed bool
}

// DefaultKeyer generates hash-based keys with stable class prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a parsed entity graph.
func (k *DefaultKeyer) GraphKey(fingerprint string, opts GraphKeyOpts) string {
	return hashKey("graph", fingerprint, opts)
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return hashKey("render", graphHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
