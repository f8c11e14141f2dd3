package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/meta"
	"github.com/Ircama/construct-editor/preprocess"
)

func condEquals(field string, want any) grammar.CondFunc {
	return func(ctx *grammar.Context) bool {
		v, ok := ctx.Get(field)
		return ok && grammar.EqualValues(v, want)
	}
}

func keyOf(field string) grammar.KeyFunc {
	return func(ctx *grammar.Context) any {
		v, _ := ctx.Get(field)
		return v
	}
}

func TestStructContexts(t *testing.T) {
	con := &grammar.Struct{Fields: []grammar.Construct{
		grammar.Field("version", &grammar.FormatField{Fmt: ">B"}),
		grammar.Field("inner", &grammar.Struct{Fields: []grammar.Construct{
			grammar.Field("length", &grammar.FormatField{Fmt: ">H"}),
		}}),
	}}

	obj := map[string]any{
		"version": 2,
		"inner":   map[string]any{"length": 7},
	}

	out := preprocess.Object(con, obj)

	// The walk tags in place: the root wrapper holds the same map.
	fields, ok := meta.Unwrap(out).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, meta.Unwrap(fields["version"]))

	ctx := meta.LookupContext(fields["version"])
	require.NotNil(t, ctx)
	v, ok := ctx.Get("version")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// Nested fields see their own scope plus the enclosing ones.
	inner, ok := meta.Unwrap(fields["inner"]).(map[string]any)
	require.True(t, ok)

	ctx = meta.LookupContext(inner["length"])
	require.NotNil(t, ctx)
	v, ok = ctx.Get("length")
	require.True(t, ok)
	assert.Equal(t, 7, v)
	v, ok = ctx.Get("version")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestConditionalDescent(t *testing.T) {
	con := &grammar.Struct{Fields: []grammar.Construct{
		grammar.Field("has_body", &grammar.FormatField{Fmt: ">B"}),
		grammar.Field("body", &grammar.IfThenElse{
			Cond: condEquals("has_body", 1),
			Then: &grammar.Struct{Fields: []grammar.Construct{
				grammar.Field("size", &grammar.FormatField{Fmt: ">H"}),
			}},
			Else: &grammar.Pass{},
		}),
	}}

	obj := map[string]any{
		"has_body": 1,
		"body":     map[string]any{"size": 9},
	}

	out := preprocess.Object(con, obj)
	fields := meta.Unwrap(out).(map[string]any)

	// The taken branch was walked as a struct: its fields are tagged and
	// scoped under the conditional's position.
	body := meta.Unwrap(fields["body"]).(map[string]any)
	ctx := meta.LookupContext(body["size"])
	require.NotNil(t, ctx)

	v, ok := ctx.Get("has_body")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// The conditional's own value carries the context its predicate reads.
	ctx = meta.LookupContext(fields["body"])
	require.NotNil(t, ctx)
	assert.True(t, condEquals("has_body", 1)(ctx))
}

func TestSwitchDescent(t *testing.T) {
	con := &grammar.Struct{Fields: []grammar.Construct{
		grammar.Field("proto", &grammar.FormatField{Fmt: ">B"}),
		grammar.Field("payload", &grammar.Switch{
			Key: keyOf("proto"),
			Cases: []grammar.Case{
				{Key: 6, Sub: &grammar.Struct{Fields: []grammar.Construct{
					grammar.Field("port", &grammar.FormatField{Fmt: ">H"}),
				}}},
			},
			Default: &grammar.Bytes{Length: 4},
		}),
	}}

	obj := map[string]any{
		"proto":   6,
		"payload": map[string]any{"port": 80},
	}

	out := preprocess.Object(con, obj)
	fields := meta.Unwrap(out).(map[string]any)

	payload := meta.Unwrap(fields["payload"]).(map[string]any)
	ctx := meta.LookupContext(payload["port"])
	require.NotNil(t, ctx)
	v, _ := ctx.Get("proto")
	assert.Equal(t, 6, v)

	// An unmatched key falls to the default branch: the payload stays a
	// tagged leaf.
	obj = map[string]any{"proto": 99, "payload": "raw"}
	out = preprocess.Object(con, obj)
	fields = meta.Unwrap(out).(map[string]any)
	assert.Equal(t, "raw", meta.Unwrap(fields["payload"]))
	assert.NotNil(t, meta.LookupContext(fields["payload"]))
}

func TestListElements(t *testing.T) {
	con := &grammar.Struct{Fields: []grammar.Construct{
		grammar.Field("count", &grammar.FormatField{Fmt: ">B"}),
		grammar.Field("items", &grammar.Array{Count: 2, Sub: &grammar.Struct{
			Fields: []grammar.Construct{
				grammar.Field("id", &grammar.FormatField{Fmt: ">B"}),
			},
		}}),
	}}

	obj := map[string]any{
		"count": 2,
		"items": []any{
			map[string]any{"id": 1},
			map[string]any{"id": 2},
		},
	}

	out := preprocess.Object(con, obj)
	fields := meta.Unwrap(out).(map[string]any)
	items := meta.Unwrap(fields["items"]).([]any)
	require.Len(t, items, 2)

	for i, want := range []int{1, 2} {
		elem := meta.Unwrap(items[i]).(map[string]any)
		ctx := meta.LookupContext(elem["id"])
		require.NotNil(t, ctx)

		// Each element has its own scope over the shared outer one.
		v, _ := ctx.Get("id")
		assert.Equal(t, want, v)
		v, _ = ctx.Get("count")
		assert.Equal(t, 2, v)
	}
}

func TestFlagMappingIsLeaf(t *testing.T) {
	con := &grammar.Struct{Fields: []grammar.Construct{
		grammar.Field("flags", &grammar.FlagsEnum{
			Sub:   &grammar.FormatField{Fmt: ">B"},
			Flags: []grammar.Flag{{Name: "ack", Value: 1}},
		}),
	}}

	obj := map[string]any{
		"flags": map[string]any{"ack": true},
	}

	out := preprocess.Object(con, obj)
	fields := meta.Unwrap(out).(map[string]any)

	// The flag mapping is tagged whole; its keys are bit names, not fields
	// to recurse into.
	flags := meta.Unwrap(fields["flags"]).(map[string]any)
	assert.Equal(t, true, flags["ack"])
	assert.Nil(t, meta.Lookup(flags["ack"]))
	assert.NotNil(t, meta.LookupContext(fields["flags"]))
}

func TestShapeMismatch(t *testing.T) {
	// A struct grammar over a non-map value tags the value as-is.
	con := &grammar.Struct{Fields: []grammar.Construct{
		grammar.Field("a", &grammar.FormatField{Fmt: ">B"}),
	}}

	out := preprocess.Object(con, "not a map")
	assert.Equal(t, "not a map", meta.Unwrap(out))
	assert.NotNil(t, meta.LookupContext(out))
}
