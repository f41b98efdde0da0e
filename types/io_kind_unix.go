//go:build unix

package types

import (
	"errors"

	"golang.org/x/sys/unix"
)

func ioKindFromErrno(err error) IOKind {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return IOKindOther
	}

	switch errno {
	case unix.ENOENT:
		return IOKindNotFound
	case unix.EACCES, unix.EPERM:
		return IOKindPermissionDenied
	case unix.EEXIST:
		return IOKindAlreadyExists
	case unix.ECONNREFUSED:
		return IOKindConnectionRefused
	case unix.ECONNRESET:
		return IOKindConnectionReset
	case unix.ECONNABORTED:
		return IOKindConnectionAborted
	case unix.ENOTCONN:
		return IOKindNotConnected
	case unix.EPIPE:
		return IOKindBrokenPipe
	case unix.EAGAIN:
		return IOKindWouldBlock
	case unix.EINVAL:
		return IOKindInvalidInput
	case unix.ETIMEDOUT:
		return IOKindTimedOut
	case unix.EINTR:
		return IOKindInterrupted
	}
	return IOKindOther
}
