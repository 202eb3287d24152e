package rop

import (
	"errors"
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// recovered converts a value obtained from recover into an error.
func recovered(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	return errors.New(fmt.Sprint(v))
}
