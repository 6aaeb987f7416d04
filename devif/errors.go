package devif

import (
	"errors"
	"fmt"
	"syscall"
)

// Protocol-expected signals. These are branches of normal control flow,
// not failures, and are matched by exact errno before anything else is
// inspected. The values are the canonical winerror.h codes; they are
// declared here (rather than taken from x/sys/windows) so the portable
// core and its fakes compile on every GOOS.
const (
	ERROR_INSUFFICIENT_BUFFER = syscall.Errno(122)
	ERROR_NO_MORE_ITEMS       = syscall.Errno(259)
	ERROR_NOT_FOUND           = syscall.Errno(1168)
)

// ErrSetClosed is returned by every operation on a DeviceInterfaceSet
// after Close, including repeated Close calls. The underlying handle is
// released exactly once.
var ErrSetClosed = errors.New("devif: device interface set is closed")

// protocolViolation reports an unrecoverable break of the setupapi sizing
// contract: a zero-size probe that succeeded, or a fetch whose reported
// size or type disagrees with the probe. Buffer layouts can no longer be
// trusted past such a point, so this never returns.
func protocolViolation(op, format string, args ...any) {
	panic(fmt.Sprintf("devif: protocol violation in %s: %s", op, fmt.Sprintf(format, args...)))
}

// decodeFault reports a raw property buffer whose length is incompatible
// with its type tag. Same tier as protocolViolation: reinterpreting the
// buffer anyway would read past its end or truncate silently.
func decodeFault(format string, args ...any) {
	panic("devif: decode fault: " + fmt.Sprintf(format, args...))
}
