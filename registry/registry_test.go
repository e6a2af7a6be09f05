package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/intbench/codec"
	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/errs"
)

type namedCodec struct {
	codec.Codec
	name string
}

func (c namedCodec) Name() string { return c.name }

func custom(name string) codec.Codec {
	return namedCodec{Codec: codec.NewVarint(), name: name}
}

type gaugeRecorder struct {
	gauges map[string]int64
}

func (g *gaugeRecorder) IncCounter(string, int64)         {}
func (g *gaugeRecorder) ObserveHistogram(string, float64) {}
func (g *gaugeRecorder) SetGauge(name string, value int64) {
	if g.gauges == nil {
		g.gauges = make(map[string]int64)
	}
	g.gauges[name] = value
}

func TestNew_Defaults(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	require.Equal(t, DefaultNames(), reg.AllNames())
	require.Equal(t, len(DefaultNames()), reg.Len())

	schemes := reg.AllSchemes()
	names := reg.AllNames()
	require.Len(t, schemes, len(names))
	for i, c := range schemes {
		require.Equal(t, names[i], c.Name(), "index %d", i)
	}
}

func TestNew_NamesUnique(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, name := range reg.AllNames() {
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestGetFromName(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	t.Run("every name resolves to its scheme", func(t *testing.T) {
		schemes := reg.AllSchemes()
		for i, name := range reg.AllNames() {
			c, err := reg.GetFromName(name)
			require.NoError(t, err)
			require.Same(t, schemes[i], c)
		}
	})

	t.Run("repeated lookups return the same instance", func(t *testing.T) {
		a, err := reg.GetFromName("varint")
		require.NoError(t, err)
		b, err := reg.GetFromName("varint")
		require.NoError(t, err)
		require.Same(t, a, b)
	})

	t.Run("unknown names", func(t *testing.T) {
		for _, name := range []string{"", "nonexistent", "VARINT", "Copy", " copy"} {
			c, err := reg.GetFromName(name)
			require.Nil(t, c)
			require.ErrorIs(t, err, errs.ErrNotFound)
			if name != "" {
				require.Contains(t, err.Error(), name)
			}
		}
		require.Equal(t, len(DefaultNames()), reg.Len())
	})

	t.Run("has", func(t *testing.T) {
		require.True(t, reg.Has("bp32"))
		require.False(t, reg.Has("BP32"))
	})
}

func TestAccessors_ReturnCopies(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	names := reg.AllNames()
	names[0] = "mutated"
	schemes := reg.AllSchemes()
	schemes[0] = nil

	require.Equal(t, codec.NameCopy, reg.AllNames()[0])
	require.NotNil(t, reg.AllSchemes()[0])
	_, err = reg.GetFromName("mutated")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestNew_Isolation(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)

	sa := a.AllSchemes()
	sb := b.AllSchemes()
	stateful := 0
	for i := range sa {
		// Pointers to zero-size types may share one address. Those codecs
		// hold no state, so sharing them is harmless.
		if reflect.TypeOf(sa[i]).Elem().Size() == 0 {
			continue
		}
		stateful++
		require.NotSame(t, sa[i], sb[i], "scheme %s shared between registries", sa[i].Name())
	}
	require.Positive(t, stateful)
}

func TestNewFactory(t *testing.T) {
	factory := NewFactory(WithConstructors(func() (codec.Codec, error) {
		return custom("extra"), nil
	}))

	a, err := factory()
	require.NoError(t, err)
	b, err := factory()
	require.NoError(t, err)

	require.NotSame(t, a, b)
	require.Equal(t, a.AllNames(), b.AllNames())
	require.Equal(t, "extra", a.AllNames()[a.Len()-1])

	ca, err := a.GetFromName(codec.NameBP32)
	require.NoError(t, err)
	cb, err := b.GetFromName(codec.NameBP32)
	require.NoError(t, err)
	require.NotSame(t, ca, cb)
}

func TestNew_Options(t *testing.T) {
	t.Run("without defaults is empty", func(t *testing.T) {
		reg, err := New(WithoutDefaults())
		require.NoError(t, err)
		require.Zero(t, reg.Len())
		require.Empty(t, reg.AllNames())
		require.Empty(t, reg.AllSchemes())
	})

	t.Run("custom codecs keep their order", func(t *testing.T) {
		reg, err := New(WithoutDefaults(), WithCodecs(custom("b"), custom("a"), custom("c")))
		require.NoError(t, err)
		require.Equal(t, []string{"b", "a", "c"}, reg.AllNames())
	})

	t.Run("custom codecs follow defaults", func(t *testing.T) {
		reg, err := New(WithCodecs(custom("mine")))
		require.NoError(t, err)
		names := reg.AllNames()
		require.Equal(t, DefaultNames(), names[:len(names)-1])
		require.Equal(t, "mine", names[len(names)-1])
	})

	t.Run("byte order reaches copy codec", func(t *testing.T) {
		reg, err := New(WithByteOrder(endian.GetBigEndianEngine()))
		require.NoError(t, err)

		c, err := reg.GetFromName(codec.NameCopy)
		require.NoError(t, err)
		out, err := c.Encode([]uint32{1}, nil)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 1}, out)
	})

	t.Run("nil byte order", func(t *testing.T) {
		reg, err := New(WithByteOrder(nil))
		require.Error(t, err)
		require.Nil(t, reg)
	})

	t.Run("nil option is skipped", func(t *testing.T) {
		reg, err := New(nil)
		require.NoError(t, err)
		require.Equal(t, len(DefaultNames()), reg.Len())
	})
}

func TestNew_InvalidCodecs(t *testing.T) {
	ctorErr := errors.New("boom")

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "duplicate of default",
			opts:    []Option{WithCodecs(custom("varint"))},
			wantErr: errs.ErrDuplicateCodec,
		},
		{
			name:    "duplicate custom",
			opts:    []Option{WithoutDefaults(), WithCodecs(custom("x"), custom("y"), custom("x"))},
			wantErr: errs.ErrDuplicateCodec,
		},
		{
			name:    "empty name",
			opts:    []Option{WithCodecs(custom(""))},
			wantErr: errs.ErrInvalidCodec,
		},
		{
			name:    "nil codec",
			opts:    []Option{WithCodecs(nil)},
			wantErr: errs.ErrInvalidCodec,
		},
		{
			name:    "nil constructor",
			opts:    []Option{WithConstructors(nil)},
			wantErr: errs.ErrInvalidCodec,
		},
		{
			name: "failing constructor",
			opts: []Option{WithConstructors(func() (codec.Codec, error) {
				return nil, ctorErr
			})},
			wantErr: ctorErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := New(tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, reg)
		})
	}
}

func TestAll(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	var names []string
	for name, c := range reg.All() {
		require.Equal(t, name, c.Name())
		names = append(names, name)
	}
	require.Equal(t, reg.AllNames(), names)

	count := 0
	for range reg.All() {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestNew_LoggingAndMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := &gaugeRecorder{}

	reg, err := New(WithLogger(zap.New(core)), WithCollector(rec))
	require.NoError(t, err)

	entries := logs.FilterMessage("registered codec").All()
	require.Len(t, entries, reg.Len())
	require.Equal(t, "registry", entries[0].LoggerName)
	require.Equal(t, codec.NameCopy, entries[0].ContextMap()["name"])

	require.Equal(t, int64(reg.Len()), rec.gauges["intbench_registered_codecs"])

	_, err = reg.GetFromName("missing")
	require.Error(t, err)
	require.Equal(t, reg.Len(), logs.Len(), "lookups must not log")
}

func TestDefaults_RoundTrip(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	values := []uint32{1, 5, 9, 9, 200, 70000, 70001}
	for name, c := range reg.All() {
		t.Run(name, func(t *testing.T) {
			res, err := codec.Verify(c, values)
			require.NoError(t, err)
			require.Equal(t, name, res.Name)
			require.Equal(t, len(values), res.Values)
		})
	}
}

func BenchmarkGetFromName(b *testing.B) {
	reg, err := New()
	require.NoError(b, err)

	names := reg.AllNames()
	i := 0
	for b.Loop() {
		_, _ = reg.GetFromName(names[i%len(names)])
		i++
	}
}

func BenchmarkNew(b *testing.B) {
	for b.Loop() {
		_, _ = New()
	}
}
