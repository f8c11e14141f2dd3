package editor_test

import (
	"fmt"

	"github.com/Ircama/construct-editor/editor"
	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/preprocess"
)

func Example() {
	spec := `
name: packet
type: struct
fields:
  - name: version
    type: int
    size: 1
  - name: body
    type: bytes
    length: 3
  - name: proto
    type: enum
    of: {type: int, size: 1}
    symbols:
      - {value: 6, name: TCP}
      - {value: 17, name: UDP}
`

	con, err := grammar.ParseSpec([]byte(spec))
	if err != nil {
		fmt.Println(err)
		return
	}

	obj := map[string]any{
		"version": 2,
		"body":    []byte{1, 2, 3},
		"proto":   6,
	}

	m := editor.NewModel()
	if err := m.Load(con, preprocess.Object(con, obj)); err != nil {
		fmt.Println(err)
		return
	}

	root := m.GetChildren(nil)[0]
	for _, e := range m.GetChildren(root) {
		fmt.Printf("%s: %s = %s\n", e.Name(), e.TypeLabel(), e.ValueLabel())
	}

	proto := m.GetChildren(root)[2]
	if err := m.SetValue(int64(17), proto, int(editor.ColumnValue)); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("edited:", proto.ValueLabel())

	if err := m.Processor.Undo(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("undone:", proto.ValueLabel())

	// Output:
	// version: Int8ub = 2
	// body: Byte[3] = 01 02 03
	// proto: Int8ub as Enum = 6 (TCP)
	// edited: 17 (UDP)
	// undone: 6 (TCP)
}
