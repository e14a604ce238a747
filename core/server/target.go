package server

import (
	"fmt"
	"net"
	"strconv"

	"webboot/core/utils"
)

const (
	// DefaultPort is used when no port value is configured at all.
	DefaultPort = "5000"
	// WildcardHost binds every network interface.
	WildcardHost = "0.0.0.0"
	// MaxPort is the highest valid TCP port.
	MaxPort = 65535
)

// TargetKind tells what a ListenTarget points at.
type TargetKind int

const (
	TargetInvalid TargetKind = iota
	TargetPort
	TargetPipe
)

// ListenTarget is the normalized form of the configured port value.
type ListenTarget struct {
	Kind TargetKind
	Port int
	Pipe string
	// Raw is the value the target was derived from.
	Raw string
}

// NormalizePort converts a port value (number or string) into a listen target.
//
// A value whose leading characters parse as a base-10 integer becomes a
// port when it lies in 0..MaxPort and is invalid otherwise. A value with no
// integer prefix is kept verbatim as a pipe name, so "-1" is invalid while
// "/run/app.sock" is a valid pipe.
func NormalizePort(val any) ListenTarget {
	var raw string
	switch v := val.(type) {
	case nil:
		raw = DefaultPort
	case string:
		raw = v
	case int:
		raw = strconv.Itoa(v)
	case int64:
		raw = strconv.FormatInt(v, 10)
	default:
		raw = fmt.Sprint(v)
	}
	if raw == "" {
		raw = DefaultPort
	}

	n, ok := utils.LeadingInt(raw)
	if !ok {
		return ListenTarget{Kind: TargetPipe, Pipe: raw, Raw: raw}
	}
	if n >= 0 && n <= MaxPort {
		return ListenTarget{Kind: TargetPort, Port: int(n), Raw: raw}
	}
	return ListenTarget{Kind: TargetInvalid, Raw: raw}
}

// Valid reports whether the target can be bound.
func (t ListenTarget) Valid() bool {
	return t.Kind != TargetInvalid
}

// Network returns the net.Listen network for the target.
func (t ListenTarget) Network() string {
	if t.Kind == TargetPipe {
		return "unix"
	}
	return "tcp"
}

// Address returns the net.Listen address for the target.
func (t ListenTarget) Address() string {
	if t.Kind == TargetPipe {
		return t.Pipe
	}
	return net.JoinHostPort(WildcardHost, strconv.Itoa(t.Port))
}

// String names the target the way operator diagnostics do ("Port 5000").
func (t ListenTarget) String() string {
	switch t.Kind {
	case TargetPort:
		return "Port " + strconv.Itoa(t.Port)
	case TargetPipe:
		return "Pipe " + t.Pipe
	default:
		return fmt.Sprintf("Port %q", t.Raw)
	}
}
