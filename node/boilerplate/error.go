package boilerplate

import "fmt"

type ErrNotImplemented struct {
	Func string
}

func (e ErrNotImplemented) Error() string {
	return fmt.Sprintf("%s is not implemented", e.Func)
}
