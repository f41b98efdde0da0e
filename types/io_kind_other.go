//go:build !unix

package types

func ioKindFromErrno(err error) IOKind {
	return IOKindOther
}
