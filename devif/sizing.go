package devif

import "fmt"

// The setupapi two-call convention, shared by the three variable-length
// queries of this package (interface detail, property key list, property
// value):
//
//  1. probe with a nil buffer; the call must fail with
//     ERROR_INSUFFICIENT_BUFFER and report the required size
//  2. allocate exactly that size
//  3. fetch into the allocation
//  4. the size reported by the fetch must equal the size reported by the
//     probe
//
// A probe that succeeds, or a fetch that disagrees with its probe, means
// the subsystem broke its own contract (or this package mismanaged a
// buffer) and interpretation must not continue: both panic. Any errno
// other than the expected insufficient-buffer signal is an ordinary
// platform error and is returned wrapped.

// fetchSized runs one probe+fetch round for a query measured in elements
// of E. A required count of zero yields a nil slice without a fetch call.
func fetchSized[E any](op string, q func(dst []E) (uint32, error)) ([]E, error) {
	required, err := q(nil)
	if err == nil {
		protocolViolation(op, "zero-size probe succeeded")
	}
	if err != ERROR_INSUFFICIENT_BUFFER {
		return nil, fmt.Errorf("%s: size probe: %w", op, err)
	}
	if required == 0 {
		return nil, nil
	}

	buf := make([]E, required)
	got, err := q(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch: %w", op, err)
	}
	if got != required {
		protocolViolation(op, "fetch reported size %d, probe reported %d", got, required)
	}
	return buf, nil
}

// fetchSizedBytes is fetchSized for byte buffers that the caller will
// reinterpret as a C structure: the allocation honors the structure's
// natural alignment.
func fetchSizedBytes(op string, align int, q func(dst []byte) (uint32, error)) ([]byte, error) {
	required, err := q(nil)
	if err == nil {
		protocolViolation(op, "zero-size probe succeeded")
	}
	if err != ERROR_INSUFFICIENT_BUFFER {
		return nil, fmt.Errorf("%s: size probe: %w", op, err)
	}
	if required == 0 {
		return nil, nil
	}

	buf := allocAligned(int(required), align)
	got, err := q(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch: %w", op, err)
	}
	if got != required {
		protocolViolation(op, "fetch reported size %d, probe reported %d", got, required)
	}
	return buf, nil
}
