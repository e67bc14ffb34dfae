package value

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// FromJSON decodes a single JSON document into a Value, preserving
// numeric precision by decoding numbers as json.Number rather than
// float64 (a plain float64 decode would violate the "Num is never
// NaN/Inf, arithmetic is BigDecimal-correct" invariant of spec.md §3
// for large or high-precision literals).
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Null, err
	}
	return FromInterface(raw)
}

// FromInterface converts a decoded-with-UseNumber() interface{} tree
// (as produced by encoding/json) into a Value.
func FromInterface(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return Null, err
		}
		return Num(d), nil
	case float64:
		return Num(decimal.NewFromFloat(t)), nil
	case string:
		return Str(t), nil
	case []interface{}:
		xs := make([]Value, len(t))
		for i, e := range t {
			v, err := FromInterface(e)
			if err != nil {
				return Null, err
			}
			xs[i] = v
		}
		return List(xs), nil
	case map[string]interface{}:
		return fromOrderedMap(t, nil)
	case *Obj:
		return ObjVal(t), nil
	default:
		return Null, fmt.Errorf("value: unsupported JSON-decoded type %T", raw)
	}
}

// fromOrderedMap builds an Obj from a map[string]interface{}. When
// keyOrder is supplied (from a streaming decode that tracked key
// order) it is used; otherwise Go's map iteration order applies,
// which is the best available for a one-shot json.Unmarshal of an
// object (stdlib does not expose object key order).
func fromOrderedMap(m map[string]interface{}, keyOrder []string) (Value, error) {
	o := NewObj()
	keys := keyOrder
	if keys == nil {
		keys = make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
	}
	for _, k := range keys {
		v, err := FromInterface(m[k])
		if err != nil {
			return Null, err
		}
		o.Set(k, v)
	}
	return ObjVal(o), nil
}

// ToInterface converts a Value into plain interface{} (map/slice/etc)
// suitable for json.Marshal or for handing to external callers that
// expect standard Go JSON-ish data.
func ToInterface(v Value) interface{} {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNum:
		return jsonNumber(v.n)
	case KindStr:
		return v.s
	case KindList:
		xs := make([]interface{}, len(v.list))
		for i, e := range v.list {
			xs[i] = ToInterface(e)
		}
		return xs
	case KindObj:
		m := make(map[string]interface{}, v.obj.Len())
		v.obj.Range(func(k string, ev Value) bool {
			m[k] = ToInterface(ev)
			return true
		})
		return m
	default:
		return nil
	}
}

func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// MarshalJSON renders v as JSON text.
func MarshalJSON(v Value) ([]byte, error) {
	return marshalOrdered(v)
}

// marshalOrdered marshals a Value to JSON while preserving Obj
// insertion order, which encoding/json's map-based marshaling of
// ToInterface's output cannot do on its own.
func marshalOrdered(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNum:
		buf.WriteString(v.n.String())
	case KindStr:
		b, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindList:
		buf.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObj:
		buf.WriteByte('{')
		first := true
		var rangeErr error
		v.obj.Range(func(k string, ev Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			kb, err := json.Marshal(k)
			if err != nil {
				rangeErr = err
				return false
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := writeJSON(buf, ev); err != nil {
				rangeErr = err
				return false
			}
			return true
		})
		if rangeErr != nil {
			return rangeErr
		}
		buf.WriteByte('}')
	}
	return nil
}
