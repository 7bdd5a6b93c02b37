package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/reusee/catdraw/vars"
)

var (
	errorType    = reflect.TypeFor[error]()
	durationType = reflect.TypeFor[time.Duration]()
)

type argParser func(str string, ret reflect.Value) error

var argParsers = map[reflect.Kind]argParser{

	reflect.Bool: func(str string, ret reflect.Value) error {
		ret.SetBool(vars.StrToBool(str))
		return nil
	},

	reflect.Int:   parseInt,
	reflect.Int8:  parseInt,
	reflect.Int16: parseInt,
	reflect.Int32: parseInt,
	reflect.Int64: parseInt,

	reflect.Uint:   parseUint,
	reflect.Uint8:  parseUint,
	reflect.Uint16: parseUint,
	reflect.Uint32: parseUint,
	reflect.Uint64: parseUint,

	reflect.Float32: parseFloat,
	reflect.Float64: parseFloat,

	reflect.String: func(str string, ret reflect.Value) error {
		ret.SetString(str)
		return nil
	},
}

func parseFloat(str string, ret reflect.Value) error {
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("convert %s to float: %w", str, err)
	}
	ret.SetFloat(v)
	return nil
}

func parseInt(str string, ret reflect.Value) error {
	v, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return fmt.Errorf("convert %s to int: %w", str, err)
	}
	ret.SetInt(v)
	return nil
}

func parseUint(str string, ret reflect.Value) error {
	v, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return fmt.Errorf("convert %s to unsigned int: %w", str, err)
	}
	ret.SetUint(v)
	return nil
}

func parseDurationArg(str string, ret reflect.Value) error {
	d, err := parseDuration(str)
	if err != nil {
		return fmt.Errorf("convert %s to duration: %w", str, err)
	}
	ret.SetInt(int64(d))
	return nil
}

// parseArg converts the first word to t. Pointer parameters are optional and
// get a pointer to zero when no word is left.
func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		return elem.Addr(), nil
	}
	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}

	parse := argParsers[t.Kind()]
	if t == durationType {
		parse = parseDurationArg
	}
	if parse == nil {
		return reflect.Value{}, fmt.Errorf("unsupported type: %v", t)
	}
	ret := reflect.New(t).Elem()
	if err := parse(args[0], ret); err != nil {
		return reflect.Value{}, err
	}
	return ret, nil
}

// parseDuration accepts Go duration strings and bare numbers meaning seconds
func parseDuration(str string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(str, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(str)
}
