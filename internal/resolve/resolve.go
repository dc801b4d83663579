// Package resolve reverse-resolves IP addresses to hostnames. It is not part
// of the aggregation path; the resolve subcommand is its only caller.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Resolver is the subset of net.Resolver needed for reverse lookups.
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Default is the system resolver.
var Default Resolver = net.DefaultResolver

// ResolutionError reports a failed reverse lookup for one IP address.
type ResolutionError struct {
	IP  string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %s: %v", e.IP, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Hostname returns the primary hostname for ip with any trailing dot
// removed. The lookup is attempted exactly once; there is no caching and
// no retry.
func Hostname(ctx context.Context, r Resolver, ip string) (string, error) {
	names, err := r.LookupAddr(ctx, ip)
	if err != nil {
		return "", &ResolutionError{IP: ip, Err: err}
	}
	if len(names) == 0 {
		return "", &ResolutionError{IP: ip, Err: errors.New("no PTR records")}
	}
	return strings.TrimSuffix(names[0], "."), nil
}
