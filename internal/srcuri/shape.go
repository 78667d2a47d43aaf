package srcuri

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Shape identifies which remote form a locator was parsed as.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeAuthenticated
	ShapeBare
	ShapeSCP
)

func (s Shape) String() string {
	switch s {
	case ShapeAuthenticated:
		return "authenticated"
	case ShapeBare:
		return "bare"
	case ShapeSCP:
		return "scp"
	default:
		return "unknown"
	}
}

var (
	// userinfo runs to the last @ of the authority, so an @ inside a
	// username or token never reaches the host.
	authenticatedPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.-]*)://([^/\s]+)@([^@/\s]+)/(\S+)$`)
	barePattern          = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.-]*)://(\S+)$`)
	scpPattern           = regexp.MustCompile(`^([^@/:\s]+)@([^:/\s]+):(\S+)$`)

	// privateMarker is the user@ prefix of an SCP-like locator.
	privateMarker = regexp.MustCompile(`^[^@/:\s]+@`)
)

// Remote is a locator split into its parts.
// User never carries a password; Credentials reports whether one was present.
type Remote struct {
	Shape       Shape
	Scheme      string
	User        string
	Credentials bool
	Host        string
	Path        string
}

// Parse classifies raw into the first matching shape.
func Parse(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)

	if m := authenticatedPattern.FindStringSubmatch(raw); m != nil {
		user, _, hasPassword := strings.Cut(m[2], ":")
		// an empty path falls through to the degenerate bare form
		if user != "" && trimPath(m[4]) != "" {
			return Remote{
				Shape:       ShapeAuthenticated,
				Scheme:      strings.ToLower(m[1]),
				User:        user,
				Credentials: hasPassword,
				Host:        m[3],
				Path:        trimPath(m[4]),
			}, nil
		}
	}

	if m := barePattern.FindStringSubmatch(raw); m != nil {
		rest := strings.TrimRight(m[2], "/")
		host, path, _ := strings.Cut(rest, "/")
		// userinfo without a path never reaches the authenticated shape
		credentials := false
		if i := strings.LastIndex(host, "@"); i >= 0 {
			host = host[i+1:]
			credentials = true
		}
		scheme := strings.ToLower(m[1])
		if host != "" || (scheme == "file" && path != "") {
			return Remote{
				Shape:       ShapeBare,
				Scheme:      scheme,
				Credentials: credentials,
				Host:        host,
				Path:        trimPath(path),
			}, nil
		}
	}

	if r, ok := parseSCP(raw); ok {
		return r, nil
	}

	return Remote{}, fmt.Errorf("%q does not match <scheme>://<user>@<host>/<path>, <scheme>://<host> or <user>@<host>:<path>: %w", raw, bbgen.ErrUnrecognizedURIFormat)
}

func parseSCP(raw string) (Remote, bool) {
	m := scpPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Remote{}, false
	}
	path := trimPath(m[3])
	if path == "" {
		return Remote{}, false
	}
	return Remote{
		Shape: ShapeSCP,
		User:  m[1],
		Host:  m[2],
		Path:  path,
	}, true
}

// IsPrivate reports whether locator uses the user@host:path private transport.
func IsPrivate(locator string) bool {
	return privateMarker.MatchString(locator)
}

func trimPath(p string) string {
	return strings.Trim(p, "/")
}

func isHTTPScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}

func hostname(host string) string {
	// bracketed IPv6 literals keep their colons
	if strings.HasPrefix(host, "[") {
		if i := strings.Index(host, "]"); i >= 0 {
			return host[:i+1]
		}
		return host
	}
	name, _, _ := strings.Cut(host, ":")
	return name
}
