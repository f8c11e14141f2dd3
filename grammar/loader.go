package grammar

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader errors
var (
	// ErrUnknownSpecType indicates a node with an unrecognized type string.
	ErrUnknownSpecType = errors.New("unknown spec node type")

	// ErrBadSpecField indicates a node parameter that cannot be satisfied.
	ErrBadSpecField = errors.New("invalid spec node parameter")
)

// LoadSpec loads and builds a format spec from a YAML file.
func LoadSpec(path string) (Construct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	return ParseSpec(data)
}

// ParseSpec builds a format spec from YAML data. The document is a single
// node, usually a named struct.
func ParseSpec(data []byte) (Construct, error) {
	var root specNode

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse spec YAML: %w", err)
	}

	return buildNode(&root, root.Name)
}

// buildNode turns one spec node into a construct. at names the node's
// position for error reporting.
func buildNode(n *specNode, at string) (Construct, error) {
	sub, err := buildBare(n, at)
	if err != nil {
		return nil, err
	}

	if n.Name == "" && n.Doc == "" {
		return sub, nil
	}

	return &Renamed{NewName: n.Name, NewDocs: n.Doc, Sub: sub}, nil
}

func buildBare(n *specNode, at string) (Construct, error) {
	switch n.Type {
	case "struct":
		fields := make([]Construct, 0, len(n.Fields))
		for i := range n.Fields {
			f := &n.Fields[i]

			c, err := buildNode(f, at+"."+f.Name)
			if err != nil {
				return nil, err
			}

			fields = append(fields, c)
		}

		return &Struct{Fields: fields}, nil

	case "array":
		sub, err := buildSub(n, at)
		if err != nil {
			return nil, err
		}

		arr := &Array{Count: n.Count, Sub: sub}
		if n.CountOf != "" {
			arr.CountOf = contextInt(n.CountOf)
			arr.CountDesc = n.CountOf
		}

		return arr, nil

	case "greedy":
		sub, err := buildSub(n, at)
		if err != nil {
			return nil, err
		}

		return &GreedyRange{Sub: sub}, nil

	case "int", "float":
		return buildNumber(n, at)

	case "bits":
		if n.Bits <= 0 {
			return nil, fmt.Errorf("%s: %w: bits must be positive", at, ErrBadSpecField)
		}

		return &BitsInteger{Length: n.Bits, Signed: n.Signed}, nil

	case "bytes":
		b := &Bytes{Length: n.Length}
		if n.LengthOf != "" {
			b.LengthOf = contextInt(n.LengthOf)
		}

		return b, nil

	case "enum":
		sub, err := buildSub(n, at)
		if err != nil {
			return nil, err
		}

		symbols := make([]Symbol, 0, len(n.Symbols))
		for _, s := range n.Symbols {
			symbols = append(symbols, Symbol{Value: s.Value, Name: s.Name})
		}

		return &Enum{Sub: sub, Symbols: symbols}, nil

	case "flags":
		sub, err := buildSub(n, at)
		if err != nil {
			return nil, err
		}

		flags := make([]Flag, 0, len(n.Set))
		for _, f := range n.Set {
			flags = append(flags, Flag{Name: f.Name, Value: f.Value})
		}

		return &FlagsEnum{Sub: sub, Flags: flags}, nil

	case "timestamp":
		sub, err := buildSub(n, at)
		if err != nil {
			return nil, err
		}

		return &TimestampAdapter{Sub: sub}, nil

	case "if":
		if n.Cond == nil || n.Then == nil {
			return nil, fmt.Errorf("%s: %w: if needs cond and then", at, ErrBadSpecField)
		}

		then, err := buildNode(n.Then, at+".then")
		if err != nil {
			return nil, err
		}

		els := Construct(&Pass{})
		if n.Else != nil {
			els, err = buildNode(n.Else, at+".else")
			if err != nil {
				return nil, err
			}
		}

		field, equals := n.Cond.Field, n.Cond.Equals

		return &IfThenElse{
			Cond: func(ctx *Context) bool {
				v, ok := ctx.Get(field)
				return ok && EqualValues(v, equals)
			},
			CondDesc: fmt.Sprintf("%s == %v", field, equals),
			Then:     then,
			Else:     els,
		}, nil

	case "switch":
		if n.KeyOf == "" {
			return nil, fmt.Errorf("%s: %w: switch needs key_of", at, ErrBadSpecField)
		}

		cases := make([]Case, 0, len(n.Cases))
		for i := range n.Cases {
			c := &n.Cases[i]

			sub, err := buildNode(&c.Of, fmt.Sprintf("%s.case[%v]", at, c.Key))
			if err != nil {
				return nil, err
			}

			cases = append(cases, Case{Key: normalizeKey(c.Key), Sub: sub})
		}

		var def Construct
		if n.DefaultCase != nil {
			var err error

			def, err = buildNode(n.DefaultCase, at+".default")
			if err != nil {
				return nil, err
			}
		}

		field := n.KeyOf

		return &Switch{
			Key: func(ctx *Context) any {
				v, _ := ctx.Get(field)
				return normalizeKey(v)
			},
			KeyDesc: field,
			Cases:   cases,
			Default: def,
		}, nil

	case "const":
		sub, err := buildSub(n, at)
		if err != nil {
			return nil, err
		}

		return &Const{Sub: sub, Value: n.Value}, nil

	case "computed":
		if n.Field == "" {
			return nil, fmt.Errorf("%s: %w: computed needs field", at, ErrBadSpecField)
		}

		field := n.Field

		return &Computed{Func: func(ctx *Context) any {
			v, _ := ctx.Get(field)
			return v
		}}, nil

	case "tell":
		return &Tell{}, nil

	case "pass":
		return &Pass{}, nil

	default:
		return nil, fmt.Errorf("%s: %w: %q", at, ErrUnknownSpecType, n.Type)
	}
}

// buildSub builds the `of:` child of a node.
func buildSub(n *specNode, at string) (Construct, error) {
	if n.Of == nil {
		return nil, fmt.Errorf("%s: %w: %s needs of", at, ErrBadSpecField, n.Type)
	}

	return buildNode(n.Of, at+".of")
}

// buildNumber maps size/endian/signed onto a struct-style format string, or
// onto BytesInteger for widths without a format code.
func buildNumber(n *specNode, at string) (Construct, error) {
	endian := ""

	switch n.Endian {
	case "", "big":
		endian = ">"
	case "little":
		endian = "<"
	case "native":
		endian = "="
	default:
		return nil, fmt.Errorf("%s: %w: endian %q", at, ErrBadSpecField, n.Endian)
	}

	if n.Type == "float" {
		switch n.Size {
		case 2:
			return &FormatField{Fmt: endian + "e"}, nil
		case 4:
			return &FormatField{Fmt: endian + "f"}, nil
		case 8:
			return &FormatField{Fmt: endian + "d"}, nil
		default:
			return nil, fmt.Errorf("%s: %w: float size %d", at, ErrBadSpecField, n.Size)
		}
	}

	var code string

	switch n.Size {
	case 1:
		code = "B"
	case 2:
		code = "H"
	case 4:
		code = "L"
	case 8:
		code = "Q"
	default:
		// No single format code; whole-byte integers of any width work
		// as BytesInteger.
		if n.Size <= 0 {
			return nil, fmt.Errorf("%s: %w: int size %d", at, ErrBadSpecField, n.Size)
		}

		return &BytesInteger{Length: n.Size, Signed: n.Signed, Swapped: n.Endian == "little"}, nil
	}

	if n.Signed {
		code = string(code[0] + 'a' - 'A')
	}

	return &FormatField{Fmt: endian + code}, nil
}

// contextInt builds a CountFunc reading an integer field from the context.
func contextInt(field string) CountFunc {
	return func(ctx *Context) int {
		v, ok := ctx.Get(field)
		if !ok {
			return 0
		}

		n, ok := AsInt64(v)
		if !ok {
			return 0
		}

		return int(n)
	}
}

// normalizeKey folds all integer widths to int64 so switch case lookup works
// across YAML, JSON and edited values.
func normalizeKey(v any) any {
	if n, ok := AsInt64(v); ok {
		return n
	}

	return v
}
