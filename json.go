package fdon

import (
	"io"
	"strconv"
)

// AppendJSON renders v as JSON per spec.md §6's mapping table,
// appending to and returning dst. RawString and EscapedString/
// TimestampString contents are JSON-escaped at render time; Date
// renders as a JSON string of its opaque text.
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.Kind() {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.boolVal {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindInt, KindTimestampNumber:
		return strconv.AppendInt(dst, v.intVal, 10)
	case KindFloat:
		return strconv.AppendFloat(dst, v.floatVal, 'g', -1, 64)
	case KindRawString, KindDate:
		return appendJSONString(dst, v.strVal)
	case KindEscapedString, KindTimestampString:
		return appendJSONString(dst, v.escVal)
	case KindArray:
		dst = append(dst, '[')
		for i, elem := range v.arrayVal {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = elem.AppendJSON(dst)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		first := true
		if v.objectVal != nil {
			v.objectVal.Range(func(key string, val Value) bool {
				if !first {
					dst = append(dst, ',')
				}
				first = false
				dst = appendJSONString(dst, key)
				dst = append(dst, ':')
				dst = val.AppendJSON(dst)
				return true
			})
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

// WriteJSON writes v's JSON rendering to w.
func (v Value) WriteJSON(w io.Writer) error {
	_, err := w.Write(v.AppendJSON(nil))
	return err
}

// appendJSONString appends s to dst as a quoted, JSON-escaped string.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '"':
			dst = append(dst, '\\', '"')
		case b == '\\':
			dst = append(dst, '\\', '\\')
		case b == '\n':
			dst = append(dst, '\\', 'n')
		case b == '\r':
			dst = append(dst, '\\', 'r')
		case b == '\t':
			dst = append(dst, '\\', 't')
		case b < 0x20:
			const hex = "0123456789abcdef"
			dst = append(dst, '\\', 'u', '0', '0', hex[b>>4], hex[b&0xf])
		default:
			dst = append(dst, b)
		}
	}
	return append(dst, '"')
}
