package functions

import (
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/glyph"
	"github.com/arthur-debert/textplot/pkg/threshold"
)

var (
	thresholdType = reflect.TypeOf(threshold.Threshold{})
	glyphsType    = reflect.TypeOf([]string{})
)

// decode overlays args onto out, a pointer to an options struct already
// holding defaults. Decoding is strict: no string to number coercion, and
// integer options reject fractional values.
func decode(function string, args Args, out interface{}) error {
	known := optionNames(out)
	for _, name := range args.Names() {
		if !known[name] {
			return errors.Newf(errors.ErrUnknownOption, "unknown option '%s' for %s, available are <%s>",
				name, function, strings.Join(sortedKeys(known), ", ")).
				WithDetail("function", function).
				WithDetail("option", name)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			integralFloatHookFunc(),
			thresholdHookFunc(),
			glyphStringHookFunc(),
		),
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to build option decoder")
	}
	if err := decoder.Decode(map[string]interface{}(args)); err != nil {
		return errors.Wrapf(err, errors.ErrOptionType, "invalid options for %s", function).
			WithDetail("function", function)
	}
	return nil
}

// integralFloatHookFunc accepts 3.0 for an integer option but not 3.5.
func integralFloatHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Int64 && t.Kind() != reflect.Int {
			return data, nil
		}
		if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
			return data, nil
		}
		v := reflect.ValueOf(data).Float()
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, errors.Newf(errors.ErrOptionType, "expected an integer, got %g", v)
		}
		return int64(v), nil
	}
}

// thresholdHookFunc lets a threshold be written as a "value:color" string or
// a [value, color] pair besides the {value, color} table form.
func thresholdHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != thresholdType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			th, err := threshold.Parse(v)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"value": th.Value, "color": th.Color}, nil
		case []interface{}:
			if len(v) != 2 {
				return nil, errors.Newf(errors.ErrThresholdInvalid,
					"threshold pair must have 2 entries (value, color), got %d", len(v))
			}
			return map[string]interface{}{"value": v[0], "color": v[1]}, nil
		}
		return data, nil
	}
}

// glyphStringHookFunc splits a compact string such as " .:#" into glyphs.
func glyphStringHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != glyphsType || f.Kind() != reflect.String {
			return data, nil
		}
		return glyph.Split(data.(string)), nil
	}
}

// optionNames collects the mapstructure names of the struct out points to.
func optionNames(out interface{}) map[string]bool {
	t := reflect.TypeOf(out)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("mapstructure")
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			names[name] = true
		}
	}
	return names
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
