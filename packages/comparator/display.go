package comparator

import (
	"fmt"
	"strconv"
	"strings"
)

// Display renders v for diagnostics. Scalars print in their natural form,
// sequences as bracketed comma-separated lists ("[[1, 2], [3, 4]]"), and
// absent values as "null". A sequence that contains itself shows "[...]"
// where it repeats.
func Display(v any) string {
	var sb strings.Builder
	writeValue(&sb, Of(v))
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.kind {
	case Absent:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.b))
	case Int:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case Uint:
		sb.WriteString(strconv.FormatUint(v.u, 10))
	case Float:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, v.bits))
	case String:
		sb.WriteString(v.s)
	case Sequence:
		if v.cyclic {
			sb.WriteString("[...]")
			return
		}
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, e)
		}
		sb.WriteByte(']')
	default:
		if v.raw != "" {
			sb.WriteString(v.raw)
			return
		}
		fmt.Fprintf(sb, "%v", v.ref)
	}
}
