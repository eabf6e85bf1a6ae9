package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// ValueKind is the structural class of a chain-agnostic argument value
type ValueKind int

const (
	KindNull ValueKind = iota
	KindPrimitive
	KindRecord
	KindList
	KindEnum
	KindIntEnum
	KindMapEntries
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindPrimitive:
		return "primitive"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	case KindEnum:
		return "enum"
	case KindIntEnum:
		return "integer enum"
	case KindMapEntries:
		return "map entries"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a classified form value. The concrete types below are the only
// implementations.
type Value interface {
	Kind() ValueKind
}

type Null struct{}

// Primitive is a leaf: string, bool, number, json.Number or []byte
type Primitive struct {
	Raw any
}

// Record is a plain object. Used for named structs, tuple-structs keyed by
// index, Result values and string-keyed maps.
type Record struct {
	Fields map[string]any
}

// List is an ordered array: vectors, tuples and positional tuple-structs
type List struct {
	Items []any
}

// Enum is a tagged variant value {tag, values?}
type Enum struct {
	Tag    string
	Values []any
}

// IntEnum is an integer-discriminant value {enum: n}
type IntEnum struct {
	Discriminant uint32
}

// MapEntries is a list whose every element has a map-entry shape.
// Items keeps the raw list so a Vec can still consume it.
type MapEntries struct {
	Entries []MapEntry
	Items   []any
}

// MapEntry is one key/value pair with optional per-entry type hints
type MapEntry struct {
	Key       any
	Value     any
	KeyType   string
	ValueType string
}

func (Null) Kind() ValueKind       { return KindNull }
func (Primitive) Kind() ValueKind  { return KindPrimitive }
func (Record) Kind() ValueKind     { return KindRecord }
func (List) Kind() ValueKind       { return KindList }
func (Enum) Kind() ValueKind       { return KindEnum }
func (IntEnum) Kind() ValueKind    { return KindIntEnum }
func (MapEntries) Kind() ValueKind { return KindMapEntries }

// ListItems returns the raw items of a List or MapEntries value
func ListItems(v Value) ([]any, bool) {
	switch lv := v.(type) {
	case List:
		return lv.Items, true
	case MapEntries:
		return lv.Items, true
	}
	return nil, false
}

// Classify performs the single structural pass that turns a raw form value
// into a Value. Enum shapes are recognised before plain records.
func Classify(raw any) (Value, error) {
	return classify(raw, classifyObject)
}

// ClassifyRecord is Classify for positions whose schema declares a struct.
// Every object is read as a Record, even one shaped like {tag} or {enum}.
func ClassifyRecord(raw any) (Value, error) {
	return classify(raw, func(fields map[string]any) (Value, error) {
		return Record{Fields: fields}, nil
	})
}

func classify(raw any, object func(map[string]any) (Value, error)) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case string, bool, json.Number, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Primitive{Raw: v}, nil
	case map[string]any:
		return object(v)
	case map[any]any:
		fields := make(map[string]any, len(v))
		for k, val := range v {
			fields[fmt.Sprint(k)] = val
		}
		return object(fields)
	case []any:
		return classifyList(v), nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return classifyList(items), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, NewCodecError(ErrTypeMismatch, "", "", "unsupported object key type %s", rv.Type().Key())
		}
		fields := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value().Interface()
		}
		return object(fields)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null{}, nil
		}
		return classify(rv.Elem().Interface(), object)
	}

	return nil, NewCodecError(ErrTypeMismatch, "", "", "unsupported value of Go type %T", raw)
}

func classifyObject(fields map[string]any) (Value, error) {
	if tag, ok := fields["tag"]; ok && onlyKeys(fields, "tag", "values") {
		name, ok := tag.(string)
		if !ok {
			return nil, NewCodecError(ErrInvalidEnumValue, "", "", "enum tag must be a string, got %T", tag)
		}
		values, err := enumValues(fields["values"])
		if err != nil {
			return nil, err
		}
		return Enum{Tag: name, Values: values}, nil
	}

	if n, ok := fields["enum"]; ok && len(fields) == 1 {
		d, err := discriminant(n)
		if err != nil {
			return nil, err
		}
		return IntEnum{Discriminant: d}, nil
	}

	return Record{Fields: fields}, nil
}

func classifyList(items []any) Value {
	if len(items) == 0 {
		return List{Items: items}
	}
	entries := make([]MapEntry, 0, len(items))
	for _, item := range items {
		entry, ok := asMapEntry(item)
		if !ok {
			return List{Items: items}
		}
		entries = append(entries, entry)
	}
	return MapEntries{Entries: entries, Items: items}
}

// asMapEntry recognises {key, value, keyType?, valueType?} and the positional
// {"0": {value, type}, "1": {value, type}} form.
func asMapEntry(item any) (MapEntry, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return MapEntry{}, false
	}

	if _, hasKey := obj["key"]; hasKey {
		if _, hasValue := obj["value"]; !hasValue || !onlyKeys(obj, "key", "value", "keyType", "valueType") {
			return MapEntry{}, false
		}
		keyType, _ := obj["keyType"].(string)
		valueType, _ := obj["valueType"].(string)
		return MapEntry{Key: obj["key"], Value: obj["value"], KeyType: keyType, ValueType: valueType}, true
	}

	if len(obj) != 2 {
		return MapEntry{}, false
	}
	k, kok := typedSlot(obj["0"])
	v, vok := typedSlot(obj["1"])
	if !kok || !vok {
		return MapEntry{}, false
	}
	return MapEntry{Key: k.value, Value: v.value, KeyType: k.typ, ValueType: v.typ}, true
}

type slot struct {
	value any
	typ   string
}

func typedSlot(raw any) (slot, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return slot{}, false
	}
	value, ok := obj["value"]
	if !ok || !onlyKeys(obj, "value", "type") {
		return slot{}, false
	}
	typ, _ := obj["type"].(string)
	return slot{value: value, typ: typ}, true
}

func onlyKeys(obj map[string]any, allowed ...string) bool {
	for k := range obj {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func enumValues(raw any) ([]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice {
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return values, nil
	}
	return nil, NewCodecError(ErrInvalidEnumValue, "", "", "enum values must be a list, got %T", raw)
}

func discriminant(raw any) (uint32, error) {
	var n float64
	switch v := raw.(type) {
	case json.Number:
		i, err := strconv.ParseUint(v.String(), 10, 32)
		if err != nil {
			return 0, NewCodecError(ErrInvalidEnumValue, "", "", "discriminant %s is not a u32", v)
		}
		return uint32(i), nil
	case string:
		i, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, NewCodecError(ErrInvalidEnumValue, "", "", "discriminant %q is not a u32", v)
		}
		return uint32(i), nil
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint32:
		return v, nil
	case uint64:
		n = float64(v)
	default:
		return 0, NewCodecError(ErrInvalidEnumValue, "", "", "discriminant must be numeric, got %T", raw)
	}
	if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
		return 0, NewCodecError(ErrInvalidEnumValue, "", "", "discriminant %v is not a u32", n)
	}
	return uint32(n), nil
}
