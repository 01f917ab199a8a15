package registry

import "reflect"

// Invocation goes through reflection so the registry can hold callables of
// any signature behind a single []any calling convention. Argument and
// return type agreement is the caller's responsibility; a genuine type
// mismatch panics exactly as reflect.Value.Call does.

// callFunc calls fn with args and returns its results.
func callFunc(fn any, args []any) []any {
	results := reflect.ValueOf(fn).Call(reflectValuesOf(args))
	return unreflectValues(results)
}

// reflectValuesOf returns reflected values for all of the args.
func reflectValuesOf(args []any) []reflect.Value {
	rArgs := make([]reflect.Value, len(args))
	for i := range args {
		rArgs[i] = reflect.ValueOf(args[i])
	}

	return rArgs
}

// unreflectValues returns the actual values of the reflected values.
func unreflectValues(rVals []reflect.Value) []any {
	if len(rVals) == 0 {
		return nil
	}

	vals := make([]any, 0, len(rVals))
	for i := range rVals {
		vals = append(vals, rVals[i].Interface())
	}

	return vals
}
