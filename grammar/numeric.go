package grammar

// FormatField is a fixed-width integer or float described by a struct-style
// format string: '>'/'<'/'=' endianness followed by a width code, e.g. ">H"
// for a big-endian unsigned 16-bit integer.
type FormatField struct {
	base
	Fmt string
}

func (*FormatField) Kind() KindEnum { return KindFormatField }

// BytesInteger is an integer stored in Length whole bytes.
type BytesInteger struct {
	base
	Length  int
	Signed  bool
	Swapped bool
}

func (*BytesInteger) Kind() KindEnum { return KindBytesInteger }

// BitsInteger is an integer stored in Length bits.
type BitsInteger struct {
	base
	Length int
	Signed bool
}

func (*BitsInteger) Kind() KindEnum { return KindBitsInteger }

// Bytes is a raw byte block of a static Length or a context-dependent one.
type Bytes struct {
	base
	Length   int
	LengthOf CountFunc
}

func (*Bytes) Kind() KindEnum { return KindBytes }
