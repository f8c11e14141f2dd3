package entries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ircama/construct-editor/entries"
	"github.com/Ircama/construct-editor/grammar"
)

func TestFormatFieldLabels(t *testing.T) {
	tests := []struct {
		fmt      string
		expected string
	}{
		{">B", "Int8ub"},
		{">h", "Int16sb"},
		{"<L", "Int32ul"},
		{"<q", "Int64sl"},
		{"=H", "Int16un"},
		{">f", "Float32b"},
		{"<d", "Float64l"},
		{"=e", "Float16n"},
	}

	m := newFakeModel(nil)
	for _, tt := range tests {
		t.Run(tt.fmt, func(t *testing.T) {
			e := build(t, m, &grammar.FormatField{Fmt: tt.fmt})
			assert.Equal(t, tt.expected, e.TypeLabel())
		})
	}

	// Unknown format strings display raw.
	e := build(t, m, &grammar.FormatField{Fmt: ">X"})
	assert.Equal(t, `FormatField[">X"]`, e.TypeLabel())
}

func TestIntegerValueLabels(t *testing.T) {
	m := newFakeModel(nil)
	e := build(t, m, &grammar.FormatField{Fmt: ">H"})

	// Small values render plain decimal.
	m.root = 5
	assert.Equal(t, "5", e.ValueLabel())

	// Larger values get the parallel hex form.
	m.root = 300
	assert.Equal(t, "300   /   0x12C", e.ValueLabel())

	// Hex mode renders hex only, regardless of magnitude.
	m.format = entries.FormatHex
	assert.Equal(t, "0x12C", e.ValueLabel())
	m.root = 5
	assert.Equal(t, "0x5", e.ValueLabel())

	// Non-integer values fall back to the plain rendering.
	m.format = entries.FormatDec
	m.root = "garbage"
	assert.Equal(t, "garbage", e.ValueLabel())

	m.root = nil
	assert.Equal(t, "", e.ValueLabel())
}

func TestFormatFieldPanel(t *testing.T) {
	m := newFakeModel(7)

	e := build(t, m, &grammar.FormatField{Fmt: ">B"})
	p, ok := e.Panel().(entries.IntegerPanel)
	require.True(t, ok)
	assert.Equal(t, "7", p.Text)

	// Floats edit as plain read-only text.
	m.root = 1.5
	e = build(t, m, &grammar.FormatField{Fmt: ">f"})
	assert.Equal(t, "1.5", e.ValueLabel())
	_, ok = e.Panel().(entries.DefaultPanel)
	assert.True(t, ok)
}

func TestBytesIntegerLabels(t *testing.T) {
	tests := []struct {
		name     string
		con      *grammar.BytesInteger
		expected string
	}{
		{"u24 big", &grammar.BytesInteger{Length: 3}, "Int24ub"},
		{"u24 little", &grammar.BytesInteger{Length: 3, Swapped: true}, "Int24ul"},
		{"s24 big", &grammar.BytesInteger{Length: 3, Signed: true}, "Int24sb"},
		{"s24 little", &grammar.BytesInteger{Length: 3, Signed: true, Swapped: true}, "Int24sl"},
		{"u40", &grammar.BytesInteger{Length: 5}, "BytesInteger[5]"},
		{"s48", &grammar.BytesInteger{Length: 6, Signed: true}, "BytesInteger[6, signed]"},
	}

	m := newFakeModel(3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := build(t, m, tt.con)
			assert.Equal(t, tt.expected, e.TypeLabel())
			assert.Equal(t, "3", e.ValueLabel())

			_, ok := e.Panel().(entries.IntegerPanel)
			assert.True(t, ok)
		})
	}
}

func TestBitsIntegerLabels(t *testing.T) {
	m := newFakeModel(12)

	e := build(t, m, &grammar.BitsInteger{Length: 12})
	assert.Equal(t, "BitsInteger[12]", e.TypeLabel())
	assert.Equal(t, "12   /   0xC", e.ValueLabel())

	e = build(t, m, &grammar.BitsInteger{Length: 4, Signed: true})
	assert.Equal(t, "BitsInteger[4, signed]", e.TypeLabel())
}

func TestBytesLabels(t *testing.T) {
	m := newFakeModel([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	e := build(t, m, &grammar.Bytes{Length: 2})
	assert.Equal(t, "de ad be ef", e.ValueLabel())

	// The byte count tracks the live value, not the declared length.
	assert.Equal(t, "Byte[4]", e.TypeLabel())

	// Byte blocks decoded as strings render the same way.
	m.root = "AB"
	assert.Equal(t, "41 42", e.ValueLabel())
	assert.Equal(t, "Byte[2]", e.TypeLabel())

	// Without a readable value the declared length stands in.
	m.root = nil
	assert.Equal(t, "", e.ValueLabel())
	assert.Equal(t, "Byte[2]", e.TypeLabel())
}

func TestEnumLabels(t *testing.T) {
	con := &grammar.Enum{
		Sub: &grammar.FormatField{Fmt: ">B"},
		Symbols: []grammar.Symbol{
			{Value: 6, Name: "TCP"},
			{Value: 17, Name: "UDP"},
		},
	}

	m := newFakeModel(6)
	e := build(t, m, con)

	assert.Equal(t, "Int8ub as Enum", e.TypeLabel())
	assert.Equal(t, "6 (TCP)", e.ValueLabel())

	// Unmapped codes repeat the code in place of the name.
	m.root = 9
	assert.Equal(t, "9 (9)", e.ValueLabel())

	// Non-integer values render plain.
	m.root = "broken"
	assert.Equal(t, "broken", e.ValueLabel())

	m.root = 17
	p, ok := e.Panel().(entries.ChoicePanel)
	require.True(t, ok)
	assert.Equal(t, "17 (UDP)", p.Selected)
	require.Len(t, p.Choices, 2)
	assert.Equal(t, "6 (TCP)", p.Choices[0].Display())
}

func TestFlagsEnumLabels(t *testing.T) {
	con := &grammar.FlagsEnum{
		Sub: &grammar.FormatField{Fmt: ">B"},
		Flags: []grammar.Flag{
			{Name: "ack", Value: 1},
			{Name: "syn", Value: 2},
			{Name: "fin", Value: 4},
		},
	}

	m := newFakeModel(map[string]any{"ack": true, "syn": false, "fin": true})
	e := build(t, m, con)

	assert.Equal(t, "Int8ub as Flags", e.TypeLabel())

	// Set flags join in declaration order.
	assert.Equal(t, "ack | fin", e.ValueLabel())

	p, ok := e.Panel().(entries.FlagsPanel)
	require.True(t, ok)
	require.Len(t, p.Flags, 3)
	assert.Equal(t, entries.FlagState{Name: "ack", Value: 1, Set: true}, p.Flags[0])
	assert.Equal(t, entries.FlagState{Name: "syn", Value: 2, Set: false}, p.Flags[1])

	// A non-mapping value renders plain.
	m.root = 3
	assert.Equal(t, "3", e.ValueLabel())
}

func TestComputedLabels(t *testing.T) {
	m := newFakeModel(7)
	e := build(t, m, &grammar.Computed{})

	assert.Equal(t, "Computed", e.TypeLabel())
	assert.Equal(t, "7", e.ValueLabel())

	// Computed byte blocks render as hex.
	m.root = []byte{0x01, 0xFF}
	assert.Equal(t, "01 ff", e.ValueLabel())

	p, ok := e.Panel().(entries.DefaultPanel)
	require.True(t, ok)
	assert.True(t, p.ReadOnly)
}

func TestTimestampLabels(t *testing.T) {
	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	m := newFakeModel(stamp)
	e := build(t, m, &grammar.TimestampAdapter{Sub: &grammar.FormatField{Fmt: ">L"}})

	assert.Equal(t, "Timestamp", e.TypeLabel())
	assert.Equal(t, "2020-01-02 03:04:05 +00:00", e.ValueLabel())

	p, ok := e.Panel().(entries.TimestampPanel)
	require.True(t, ok)
	assert.Equal(t, stamp, p.Value)

	// Values that never went through the adapter render plain.
	m.root = 1577934245
	assert.Equal(t, "1577934245", e.ValueLabel())
}

func TestPositionLeaves(t *testing.T) {
	m := newFakeModel(32)

	e := build(t, m, &grammar.Tell{})
	assert.Equal(t, "Tell", e.TypeLabel())
	assert.Equal(t, "32", e.ValueLabel())

	e = build(t, m, &grammar.Seek{Offset: 4})
	assert.Equal(t, "Seek", e.TypeLabel())
	assert.Equal(t, "", e.ValueLabel())

	e = build(t, m, &grammar.Pass{})
	assert.Equal(t, "Pass", e.TypeLabel())
	assert.Equal(t, "", e.ValueLabel())
}
