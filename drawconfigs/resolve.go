package drawconfigs

import (
	"fmt"
	"time"

	"github.com/reusee/catdraw/configs"
)

// resolve picks the flag when given, then the first config file that sets
// the value, then def. A zero in a config file is a setting, not a miss.
func resolve[T configs.Configurable](loader configs.Loader, flag *T, def T) T {
	if flag != nil {
		return *flag
	}
	if value, ok := configs.Lookup[T](loader); ok {
		return value
	}
	return def
}

// resolveDuration is resolve for durations, which configs spell as strings
func resolveDuration[T interface {
	configs.Configurable
	~int64
}](loader configs.Loader, flag *time.Duration, def time.Duration) T {
	if flag != nil {
		return T(*flag)
	}
	expr := T(0).ConfigExpr()
	str, ok := configs.Lookup[durationString[T]](loader)
	if !ok {
		return T(def)
	}
	value, err := time.ParseDuration(string(str))
	if err != nil {
		panic(fmt.Errorf("%s: %w", expr, err))
	}
	return T(value)
}

// durationString reads a duration setting at the path of T
type durationString[T configs.Configurable] string

func (durationString[T]) ConfigExpr() string {
	var t T
	return t.ConfigExpr()
}

// nonNegative panics on a negative count; flags bypass the schema
func nonNegative[T interface {
	configs.Configurable
	~int
}](v T) T {
	if v < 0 {
		panic(fmt.Errorf("%s: negative value %d", v.ConfigExpr(), v))
	}
	return v
}

// positive panics on a zero or negative interval
func positive[T interface {
	configs.Configurable
	~int64
}](v T) T {
	if v <= 0 {
		panic(fmt.Errorf("%s: non-positive interval %v", v.ConfigExpr(), time.Duration(v)))
	}
	return v
}
