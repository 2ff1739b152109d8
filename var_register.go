package cmdline

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType        = reflect.TypeFor[time.Duration]()
	valueHandlerType    = reflect.TypeFor[ValueHandler]()
)

// reflectConverter converts a token to a value assignable to a field
type reflectConverter func(token string) (reflect.Value, error)

// getFieldValueHandler returns a ValueHandler that stores converted tokens to `fieldValue`.
// Pointer fields are allocated on each set.
func getFieldValueHandler(fieldValue reflect.Value) (ValueHandler, error) {
	valueType := fieldValue.Type()

	// func(string) error, ValueHandler and other func types of the same signature
	if valueType.Kind() == reflect.Func && valueType.ConvertibleTo(valueHandlerType) {
		if fieldValue.IsNil() {
			return nil, errors.New("func is nil")
		}
		return fieldValue.Convert(valueHandlerType).Interface().(ValueHandler), nil
	}

	if valueType.Kind() == reflect.Pointer {
		convert := getConverter(valueType.Elem())
		if convert == nil {
			return nil, fmt.Errorf("unsupported field type %s", valueType)
		}
		return func(token string) error {
			v, err := convert(token)
			if err != nil {
				return err
			}
			ptr := reflect.New(valueType.Elem())
			ptr.Elem().Set(v)
			fieldValue.Set(ptr)
			return nil
		}, nil
	}

	convert := getConverter(valueType)
	if convert == nil {
		return nil, fmt.Errorf("unsupported field type %s", valueType)
	}
	return func(token string) error {
		v, err := convert(token)
		if err != nil {
			return err
		}
		fieldValue.Set(v)
		return nil
	}, nil
}

// getSwitchCallback returns a callback setting a bool (or *bool) field to true
func getSwitchCallback(fieldValue reflect.Value) func() {
	if fieldValue.Kind() == reflect.Pointer {
		return func() {
			ptr := reflect.New(fieldValue.Type().Elem())
			ptr.Elem().SetBool(true)
			fieldValue.Set(ptr)
		}
	}
	return func() {
		fieldValue.SetBool(true)
	}
}

// getConverter returns nil for unsupported types
func getConverter(valueType reflect.Type) reflectConverter {
	if reflect.PointerTo(valueType).Implements(textUnmarshalerType) {
		return func(token string) (reflect.Value, error) {
			ptr := reflect.New(valueType)
			if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(token)); err != nil {
				return reflect.Value{}, err
			}
			return ptr.Elem(), nil
		}
	}
	if valueType == durationType {
		return convertTo(Duration, valueType)
	}

	switch valueType.Kind() {
	case reflect.String:
		return convertTo(String, valueType)
	case reflect.Bool:
		return convertTo(Bool, valueType)
	case reflect.Int:
		return convertTo(Int, valueType)
	case reflect.Int64:
		return convertTo(Int64, valueType)
	case reflect.Uint:
		return convertTo(Uint, valueType)
	case reflect.Uint64:
		return convertTo(Uint64, valueType)
	case reflect.Float64:
		return convertTo(Float64, valueType)
	default:
		return nil
	}
}

func convertTo[T any](convert Converter[T], valueType reflect.Type) reflectConverter {
	return func(token string) (reflect.Value, error) {
		v, err := convert(token)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v).Convert(valueType), nil
	}
}

// isSwitchField tells whether a field tagged as named argument should become a switch
func isSwitchField(valueType reflect.Type) bool {
	if valueType.Kind() == reflect.Pointer {
		valueType = valueType.Elem()
	}
	return valueType.Kind() == reflect.Bool &&
		!reflect.PointerTo(valueType).Implements(textUnmarshalerType)
}
