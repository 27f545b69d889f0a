package calldata

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/tos-network/glsdk/common"
)

// FromGo converts a native Go value into a calldata value tree.
//
// Supported inputs are nil, bool, every integer kind, *big.Int, *uint256.Int,
// string, []byte, common.Address, existing Values, and slices, arrays and
// string-keyed maps of supported inputs. Nil pointers become Null. Anything
// else fails with ErrUnsupportedValueType.
func FromGo(x interface{}) (Value, error) {
	return fromGo(x, 0)
}

func fromGo(x interface{}, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, ErrMaxDepthExceeded
	}
	switch v := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return Str(v), nil
	case []byte:
		return Bytes(append([]byte{}, v...)), nil
	case int:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint64:
		return NewUint(v), nil
	case *big.Int:
		if v == nil {
			return Null{}, nil
		}
		return NewBigInt(v), nil
	case big.Int:
		return NewBigInt(&v), nil
	case *uint256.Int:
		if v == nil {
			return Null{}, nil
		}
		return Int{x: v.ToBig()}, nil
	case common.Address:
		return NewAddress(v), nil
	case *common.Address:
		if v == nil {
			return Null{}, nil
		}
		return NewAddress(*v), nil
	case []interface{}:
		arr := make(Array, len(v))
		for i, elem := range v {
			conv, err := fromGo(elem, depth+1)
			if err != nil {
				return nil, wrapPath(err, fmt.Sprintf("[%d]", i))
			}
			arr[i] = conv
		}
		return arr, nil
	case map[string]interface{}:
		m := make(Map, len(v))
		for k, elem := range v {
			conv, err := fromGo(elem, depth+1)
			if err != nil {
				return nil, wrapPath(err, fmt.Sprintf("[%q]", k))
			}
			m[k] = conv
		}
		return m, nil
	}
	return fromReflect(reflect.ValueOf(x), depth)
}

func fromReflect(rv reflect.Value, depth int) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return fromGo(rv.Elem().Interface(), depth)
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NewUint(rv.Uint()), nil
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return Bytes(b), nil
		}
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}, nil
		}
		arr := make(Array, rv.Len())
		for i := range arr {
			conv, err := fromGo(rv.Index(i).Interface(), depth+1)
			if err != nil {
				return nil, wrapPath(err, fmt.Sprintf("[%d]", i))
			}
			arr[i] = conv
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key %s", ErrUnsupportedValueType, rv.Type().Key())
		}
		m := make(Map, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			conv, err := fromGo(iter.Value().Interface(), depth+1)
			if err != nil {
				return nil, wrapPath(err, fmt.Sprintf("[%q]", k))
			}
			m[k] = conv
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValueType, rv.Type())
}

// ToGo converts a value tree back into plain Go values: nil, bool, *big.Int,
// []byte, string, common.Address, []interface{} and map[string]interface{}.
func ToGo(v Value) interface{} {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Int:
		return v.Big()
	case Bytes:
		return []byte(v)
	case Str:
		return string(v)
	case Address:
		return v.Address
	case Array:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			out[i] = ToGo(elem)
		}
		return out
	case Map:
		out := make(map[string]interface{}, len(v))
		for k, elem := range v {
			out[k] = ToGo(elem)
		}
		return out
	}
	return nil
}
