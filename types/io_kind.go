package types

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
)

// IOKind is the category of an I/O failure.
type IOKind int

const (
	IOKindOther = IOKind(iota)
	IOKindNotFound
	IOKindPermissionDenied
	IOKindAlreadyExists
	IOKindConnectionRefused
	IOKindConnectionReset
	IOKindConnectionAborted
	IOKindNotConnected
	IOKindBrokenPipe
	IOKindWouldBlock
	IOKindInvalidInput
	IOKindTimedOut
	IOKindInterrupted
	IOKindUnexpectedEOF
	IOKindClosed
	endOfIOKind
)

func (k IOKind) String() string {
	switch k {
	case IOKindOther:
		return "other"
	case IOKindNotFound:
		return "not_found"
	case IOKindPermissionDenied:
		return "permission_denied"
	case IOKindAlreadyExists:
		return "already_exists"
	case IOKindConnectionRefused:
		return "connection_refused"
	case IOKindConnectionReset:
		return "connection_reset"
	case IOKindConnectionAborted:
		return "connection_aborted"
	case IOKindNotConnected:
		return "not_connected"
	case IOKindBrokenPipe:
		return "broken_pipe"
	case IOKindWouldBlock:
		return "would_block"
	case IOKindInvalidInput:
		return "invalid_input"
	case IOKindTimedOut:
		return "timed_out"
	case IOKindInterrupted:
		return "interrupted"
	case IOKindUnexpectedEOF:
		return "unexpected_eof"
	case IOKindClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// IOKindOf returns the category of err.
func IOKindOf(err error) IOKind {
	if err == nil {
		return IOKindOther
	}

	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return IOKindUnexpectedEOF
	case errors.Is(err, fs.ErrNotExist):
		return IOKindNotFound
	case errors.Is(err, fs.ErrPermission):
		return IOKindPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return IOKindAlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return IOKindInvalidInput
	case errors.Is(err, fs.ErrClosed), errors.Is(err, net.ErrClosed), errors.Is(err, io.ErrClosedPipe):
		return IOKindClosed
	case errors.Is(err, os.ErrDeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return IOKindTimedOut
	}

	if kind := ioKindFromErrno(err); kind != IOKindOther {
		return kind
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return IOKindTimedOut
	}

	return IOKindOther
}
