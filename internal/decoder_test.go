package internal

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		want  ValueKind
	}{
		{"nil value", nil, KindAbsent},
		{"json object", []byte(`{"type":1,"text":"hello"}`), KindJSON},
		{"empty json object", []byte(`{}`), KindJSON},
		{"json array falls through", []byte(`[1,2,3]`), KindText},
		{"json scalar falls through", []byte(`42`), KindText},
		{"json string falls through", []byte(`"hello"`), KindText},
		{"plain text", []byte("not json"), KindText},
		{"empty value", []byte{}, KindText},
		{"invalid utf8", []byte{0xff, 0xfe, 'h', 'i'}, KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.value)
			if got.Kind != tt.want {
				t.Errorf("Decode(%q).Kind = %v, want %v", tt.value, got.Kind, tt.want)
			}
		})
	}
}

func TestDecodeJSONObject(t *testing.T) {
	got := Decode([]byte(`{"type":1,"text":"hello"}`))
	if got.Kind != KindJSON {
		t.Fatalf("Decode() kind = %v, want %v", got.Kind, KindJSON)
	}
	if got.Object["text"] != "hello" {
		t.Errorf("Decode().Object[text] = %v, want hello", got.Object["text"])
	}
	if n, ok := got.Object["type"].(float64); !ok || n != 1 {
		t.Errorf("Decode().Object[type] = %v, want 1", got.Object["type"])
	}
}

func TestDecodeLossyText(t *testing.T) {
	// Invalid byte sequences are replaced, never raised.
	got := Decode([]byte{'h', 'i', 0xff, '!'})
	if got.Kind != KindText {
		t.Fatalf("Decode() kind = %v, want %v", got.Kind, KindText)
	}
	if got.Text == "" {
		t.Error("Decode().Text should not be empty for lossy decode")
	}
}

func TestDecodeArchival(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		want  ValueKind
	}{
		{"nil value", nil, KindAbsent},
		{"json object", []byte(`{"a":1}`), KindJSON},
		{"json array kept as json", []byte(`[1,2]`), KindJSON},
		{"readable text", []byte("some plain notes"), KindText},
		{"binary blob", []byte{0x00, 0x01, 0x02, 0xff, 0xfe, 0x00, 0x01, 0x02}, KindBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeArchival(tt.value)
			if got.Kind != tt.want {
				t.Errorf("DecodeArchival(%v).Kind = %v, want %v", tt.value, got.Kind, tt.want)
			}
		})
	}
}

func TestDecodeArchivalPrettyPrints(t *testing.T) {
	got := DecodeArchival([]byte(`{"a":1}`))
	if got.Kind != KindJSON {
		t.Fatalf("DecodeArchival() kind = %v, want %v", got.Kind, KindJSON)
	}
	want := "{\n  \"a\": 1\n}"
	if got.Text != want {
		t.Errorf("DecodeArchival().Text = %q, want %q", got.Text, want)
	}
}

func TestDecodeArchivalBinaryKeepsBytes(t *testing.T) {
	raw := []byte{0x00, 0xff, 0x10, 0x80, 0x00, 0xff, 0x10, 0x80}
	got := DecodeArchival(raw)
	if got.Kind != KindBinary {
		t.Fatalf("DecodeArchival() kind = %v, want %v", got.Kind, KindBinary)
	}
	if string(got.Bytes) != string(raw) {
		t.Error("DecodeArchival() should retain raw bytes unchanged")
	}
}
