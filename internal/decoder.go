package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValueKind identifies which interpretation of a raw value succeeded.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindJSON
	KindText
	KindBinary
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindJSON:
		return "json"
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// DecodedValue is the tagged result of decoding one raw store value. Exactly
// one of Object, Text or Bytes is populated, according to Kind.
type DecodedValue struct {
	Kind   ValueKind
	Object map[string]any
	Text   string
	Bytes  []byte
}

// Decode interprets a raw value on the message path. The chain is:
// absent value, JSON object, lossy UTF-8 text. A value that parses as a JSON
// array or scalar is not message-shaped and falls through to text. Decode
// never fails; there is no binary outcome on this path.
func Decode(value []byte) DecodedValue {
	if value == nil {
		return DecodedValue{Kind: KindAbsent}
	}

	var parsed any
	if err := json.Unmarshal(value, &parsed); err == nil {
		if obj, ok := parsed.(map[string]any); ok {
			return DecodedValue{Kind: KindJSON, Object: obj}
		}
	}

	return DecodedValue{Kind: KindText, Text: lossyString(value)}
}

// DecodeArchival interprets a raw value on the generic store-scan path used
// by dump and search. Unlike Decode it accepts any valid JSON (re-indented
// into Text for output) and retains undecodable bytes as Binary.
func DecodeArchival(value []byte) DecodedValue {
	if value == nil {
		return DecodedValue{Kind: KindAbsent}
	}

	if json.Valid(value) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, value, "", "  "); err == nil {
			dv := DecodedValue{Kind: KindJSON, Text: buf.String()}
			var obj map[string]any
			if json.Unmarshal(value, &obj) == nil {
				dv.Object = obj
			}
			return dv
		}
	}

	if utf8.Valid(value) && printableRatio(value) >= 0.85 {
		return DecodedValue{Kind: KindText, Text: string(value)}
	}

	return DecodedValue{Kind: KindBinary, Bytes: value}
}

// lossyString decodes bytes as UTF-8, replacing invalid sequences rather
// than failing.
func lossyString(value []byte) string {
	if utf8.Valid(value) {
		return string(value)
	}
	return strings.ToValidUTF8(string(value), string(utf8.RuneError))
}

func printableRatio(value []byte) float64 {
	if len(value) == 0 {
		return 1
	}
	printable := 0
	total := 0
	for _, r := range string(value) {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}
	return float64(printable) / float64(total)
}
