package cmd

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultUser = "admin"
	defaultPort = 22
)

// hostSpec is one parsed [user@]hostname[:port] target specifier.
type hostSpec struct {
	User string
	Host string
	Port int
}

var portPattern = regexp.MustCompile(`^[0-9]+$`)

// parseHostSpec splits a raw target token into user, host, and port. The
// user prefix is split at the first "@", the port suffix at the last ":".
// Missing parts default to "admin" and 22. The token is not resolved or
// probed; reachability is only discovered at deploy time.
func parseHostSpec(token string) (hostSpec, error) {
	spec := hostSpec{User: defaultUser, Port: defaultPort}
	rest := token
	if i := strings.Index(rest, "@"); i >= 0 {
		if rest[:i] == "" {
			return hostSpec{}, fmt.Errorf("invalid target %q: empty user before @", token)
		}
		spec.User = rest[:i]
		rest = rest[i+1:]
	}
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		p := rest[i+1:]
		if !portPattern.MatchString(p) {
			return hostSpec{}, fmt.Errorf("invalid target %q: port %q is not numeric", token, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return hostSpec{}, fmt.Errorf("invalid target %q: port %q out of range", token, p)
		}
		spec.Port = n
		rest = rest[:i]
	}
	if strings.TrimSpace(rest) == "" {
		return hostSpec{}, fmt.Errorf("invalid target %q: missing hostname", token)
	}
	spec.Host = rest
	return spec, nil
}

// addr returns the dialable host:port form of the specifier.
func (h hostSpec) addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}
