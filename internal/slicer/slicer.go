// Package slicer splits a payload into an ordered sequence of
// fixed-size byte-range fragments. It performs no content inspection —
// no rolling hash, no compression — the pointer-tree builder is what
// gives the resulting fragments their addressing structure.
package slicer

// Slice splits payload into fragments of at most limit bytes each,
// preserving order. Every fragment except possibly the last is exactly
// limit bytes. An empty payload yields a single empty fragment, so
// callers never have to special-case "no data" separately from "one
// small fragment".
func Slice(payload []byte, limit int) [][]byte {
	if limit <= 0 {
		limit = len(payload)
		if limit == 0 {
			limit = 1
		}
	}

	if len(payload) == 0 {
		return [][]byte{{}}
	}

	count := (len(payload) + limit - 1) / limit
	fragments := make([][]byte, 0, count)
	for offset := 0; offset < len(payload); offset += limit {
		end := offset + limit
		if end > len(payload) {
			end = len(payload)
		}
		fragments = append(fragments, payload[offset:end])
	}
	return fragments
}
