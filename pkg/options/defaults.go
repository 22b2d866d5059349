package options

const (
	// DefaultMaxIndirections is the default maximum pointer-tree depth.
	DefaultMaxIndirections = 2

	// DefaultBufferSizeLimit is the default maximum record V length, in
	// bytes, the transport accepts per entry.
	DefaultBufferSizeLimit = 1000

	// DefaultAddressSize is the default transport address width, in hex
	// characters (20 bytes).
	DefaultAddressSize = 40

	// DefaultConcurrentRequests is the default cap on in-flight
	// transport operations per tree level.
	DefaultConcurrentRequests = 5

	// MinFanout is the floor spec.md places on pointer-buffer fan-out:
	// below 2, a buffer could never branch, so a tree requiring more
	// than one level could never collapse to a root. tree.Build rejects
	// a configuration whose computed fan-out falls below this floor once
	// a payload spans more than one fragment.
	MinFanout = 2
)
