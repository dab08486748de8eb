package comparator

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ParseJSON converts a JSON document into a Value. Arrays become sequences of
// any, numbers float64, null Absent, and objects opaque map[string]any values
// that display as their compacted JSON text.
func ParseJSON(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, fmt.Errorf("invalid JSON document")
	}
	return fromJSON(gjson.ParseBytes(data)), nil
}

func fromJSON(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Value{}
	case gjson.False, gjson.True:
		return Value{kind: Bool, typ: boolType, b: r.Bool()}
	case gjson.Number:
		return Value{kind: Float, typ: float64Type, f: r.Float(), bits: 64}
	case gjson.String:
		return Value{kind: String, typ: stringType, s: r.Str}
	}

	if r.IsArray() {
		items := r.Array()
		elems := make([]Value, len(items))
		for i, item := range items {
			elems[i] = fromJSON(item)
		}
		return Value{kind: Sequence, typ: anyType, elems: elems}
	}

	return Value{kind: Opaque, typ: objectType, ref: r.Value(), raw: string(pretty.Ugly([]byte(r.Raw)))}
}
