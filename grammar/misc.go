package grammar

// Const wraps a construct whose parsed value must equal Value.
type Const struct {
	base
	Sub   Construct
	Value any
}

func (*Const) Kind() KindEnum      { return KindConst }
func (c *Const) Subcon() Construct { return c.Sub }

// Default wraps a construct that falls back to Value when absent.
type Default struct {
	base
	Sub   Construct
	Value any
}

func (*Default) Kind() KindEnum      { return KindDefault }
func (d *Default) Subcon() Construct { return d.Sub }

// Computed is a derived value evaluated from the parse context; it occupies
// no bytes and is read-only in the editor.
type Computed struct {
	base
	Func func(*Context) any
}

func (*Computed) Kind() KindEnum { return KindComputed }

// TimestampAdapter wraps an integer construct carrying a calendar timestamp.
type TimestampAdapter struct {
	base
	Sub Construct
}

func (*TimestampAdapter) Kind() KindEnum      { return KindTimestamp }
func (t *TimestampAdapter) Subcon() Construct { return t.Sub }

// Tell records the current stream position; read-only.
type Tell struct {
	base
}

func (*Tell) Kind() KindEnum { return KindTell }

// Seek moves the stream position; it produces no editable value.
type Seek struct {
	base
	Offset int
	Whence int
}

func (*Seek) Kind() KindEnum { return KindSeek }

// Pass parses and builds nothing.
type Pass struct {
	base
}

func (*Pass) Kind() KindEnum { return KindPass }

// Pointer parses Sub at another stream offset.
type Pointer struct {
	base
	Offset   int
	OffsetOf CountFunc
	Sub      Construct
}

func (*Pointer) Kind() KindEnum      { return KindPointer }
func (p *Pointer) Subcon() Construct { return p.Sub }

// Peek parses Sub without consuming input.
type Peek struct {
	base
	Sub Construct
}

func (*Peek) Kind() KindEnum      { return KindPeek }
func (p *Peek) Subcon() Construct { return p.Sub }

// RawCopy parses Sub while keeping the raw bytes alongside the value.
type RawCopy struct {
	base
	Sub Construct
}

func (*RawCopy) Kind() KindEnum      { return KindRawCopy }
func (r *RawCopy) Subcon() Construct { return r.Sub }

// Transformed parses Sub over a byte-transformed stream.
type Transformed struct {
	base
	Sub Construct
}

func (*Transformed) Kind() KindEnum      { return KindTransformed }
func (t *Transformed) Subcon() Construct { return t.Sub }

// Restreamed parses Sub over a re-chunked stream.
type Restreamed struct {
	base
	Sub Construct
}

func (*Restreamed) Kind() KindEnum      { return KindRestreamed }
func (r *Restreamed) Subcon() Construct { return r.Sub }
