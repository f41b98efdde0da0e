package types

import (
	"fmt"
	"reflect"
)

// ObjectID identifies a stage instance; it is used to tell stages apart in
// logs and to check that a combinator hands back the very instances
// it was given.
type ObjectID uint64

func (id ObjectID) String() string {
	return fmt.Sprintf("0x%X", uint64(id))
}

// GetObjectID returns the identity of obj if it is a pointer-like value,
// and zero otherwise.
func GetObjectID(obj any) ObjectID {
	if obj == nil {
		return ObjectID(0)
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer,
		reflect.Chan,
		reflect.Func,
		reflect.Map,
		reflect.UnsafePointer:
		if v.IsNil() {
			return ObjectID(0)
		}
		return ObjectID(uint64(v.Pointer()))
	}
	return ObjectID(0)
}
