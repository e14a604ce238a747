package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"go.uber.org/zap"
)

// ErrInvalidPort is returned by Bind for a target that NormalizePort rejected.
var ErrInvalidPort = errors.New("invalid port")

// BindCode classifies a bind failure.
type BindCode int

const (
	BindOther BindCode = iota
	BindPermissionDenied
	BindAddressInUse
	BindInvalidTarget
)

// BindError describes a failed attempt to bind a listen target.
type BindError struct {
	Target ListenTarget
	Err    error
}

// Code classifies the underlying OS error.
func (e *BindError) Code() BindCode {
	switch {
	case errors.Is(e.Err, ErrInvalidPort):
		return BindInvalidTarget
	case errors.Is(e.Err, syscall.EACCES):
		return BindPermissionDenied
	case errors.Is(e.Err, syscall.EADDRINUSE):
		return BindAddressInUse
	default:
		return BindOther
	}
}

// Fatal reports whether the failure is one the process reports and exits on.
// Other codes are environment faults that are not masked.
func (e *BindError) Fatal() bool {
	return e.Code() != BindOther
}

func (e *BindError) Error() string {
	switch e.Code() {
	case BindPermissionDenied:
		return e.Target.String() + " requires elevated privileges"
	case BindAddressInUse:
		return e.Target.String() + " is already in use"
	case BindInvalidTarget:
		return e.Target.String() + " is not a valid port or pipe name"
	default:
		return fmt.Sprintf("bind %s: %v", e.Target, e.Err)
	}
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Bind opens a listener for the target on every network interface.
// The returned error is always a *BindError.
func Bind(target ListenTarget) (net.Listener, error) {
	if !target.Valid() {
		return nil, &BindError{Target: target, Err: ErrInvalidPort}
	}

	ln, err := net.Listen(target.Network(), target.Address())
	if err != nil {
		return nil, &BindError{Target: target, Err: err}
	}
	return ln, nil
}

// OnBindError handles a failed Bind. Fatal failures are written to w and
// terminate through exit with status 1; anything else is written to the
// exceptions logger and re-raised as a panic.
func OnBindError(err error, w io.Writer, exit func(int), exceptions *zap.Logger) {
	var be *BindError
	if errors.As(err, &be) && be.Fatal() {
		fmt.Fprintln(w, be.Error())
		exit(1)
		return
	}

	exceptions.Error("Uncaught exception", zap.Error(err), zap.Stack("stack"))
	_ = exceptions.Sync()
	panic(err)
}

// Describe names a bound address for the listening log line.
func Describe(addr net.Addr) string {
	switch a := addr.(type) {
	case *net.TCPAddr:
		return fmt.Sprintf("port %d", a.Port)
	case *net.UnixAddr:
		return "pipe " + a.Name
	default:
		return addr.String()
	}
}
