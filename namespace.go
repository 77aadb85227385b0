package logfox

// NAMESPACES

// Segments splits a namespace into its segments.
// Both "::" and "/" delimit segments, so "app::db" and "example.com/app/db" are accepted alike.
// The empty namespace has no segments.
func Segments(ns string) []string {
	if ns == "" {
		return nil
	}

	segs := make([]string, 0, 4)
	var start int
	for i := 0; i < len(ns); i++ {
		switch {
		case ns[i] == '/':
			segs = append(segs, ns[start:i])
			start = i + 1
		case ns[i] == ':' && i+1 < len(ns) && ns[i+1] == ':':
			segs = append(segs, ns[start:i])
			i++
			start = i + 1
		}
	}
	return append(segs, ns[start:])
}

// HasPrefix reports whether the segments of prefix lead the segments of ns.
// Comparison is segment-wise: "app::db" is a prefix of "app::db::pool" but not of "app::dbx".
func HasPrefix(ns, prefix string) bool {
	return hasSegmentPrefix(Segments(ns), Segments(prefix))
}

func hasSegmentPrefix(segs, prefix []string) bool {
	if len(prefix) > len(segs) {
		return false
	}
	for i, p := range prefix {
		if segs[i] != p {
			return false
		}
	}
	return true
}

// top returns the leading segment, or "" for an empty namespace.
func top(segs []string) string {
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}
