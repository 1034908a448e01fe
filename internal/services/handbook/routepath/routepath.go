// Package routepath stores canonical HTTP paths for the handbook.
package routepath

import "strings"

const (
	Root         = "/"
	Health       = "/up"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "handbook.css"
)

// reserved lists first path segments owned by operational routes.
var reserved = []string{
	strings.Trim(Health, "/"),
	strings.Trim(Metrics, "/"),
	strings.Trim(StaticPrefix, "/"),
}

// Page returns the path for a handbook page name.
func Page(name string) string {
	return Root + name
}

// IsReserved reports whether name collides with an operational route.
func IsReserved(name string) bool {
	for _, segment := range reserved {
		if name == segment {
			return true
		}
	}
	return false
}

// IsSegment reports whether name can stand alone as one URL path segment
// without escaping.
func IsSegment(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '~':
		default:
			return false
		}
	}
	return true
}
