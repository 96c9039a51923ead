// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestSpanDataDriven(t *testing.T) {
	defer leaktest.AfterTest(t)()

	var s *Store
	spans := map[string]Span{}
	format := func(name string, sp Span) string {
		return fmt.Sprintf("%s: %q %s", name, s.ToString(sp), sp)
	}
	get := func(td *datadriven.TestData, key string) Span {
		var name string
		td.ScanArgs(t, key, &name)
		sp, ok := spans[name]
		if !ok {
			td.Fatalf(t, "unknown span %q", name)
		}
		return sp
	}

	datadriven.RunTest(t, "testdata/span", func(t *testing.T, td *datadriven.TestData) string {
		var buf bytes.Buffer
		switch td.Cmd {
		case "define":
			s = NewStore(nil)
			clear(spans)
			for _, line := range crstrings.Lines(td.Input) {
				name, value, ok := strings.Cut(line, "=")
				if !ok {
					td.Fatalf(t, "malformed definition %q", line)
				}
				spans[name] = s.ToSpan(value)
				fmt.Fprintln(&buf, format(name, spans[name]))
			}
			return buf.String()

		case "split":
			var name, as string
			td.ScanArgs(t, "span", &name)
			td.ScanArgs(t, "as", &as)
			sp := get(td, "span")
			field := s.Split(&sp, get(td, "sep"))
			spans[name] = sp
			spans[as] = field
			fmt.Fprintln(&buf, format(as, field))
			fmt.Fprintln(&buf, format(name, sp))
			return buf.String()

		case "slice":
			var start, n int
			td.ScanArgs(t, "start", &start)
			td.ScanArgs(t, "len", &n)
			sp, err := s.GetSlice(get(td, "span"), start, n)
			if err != nil {
				return fmt.Sprintf("error: %s", err.Error())
			}
			var as string
			td.ScanArgs(t, "as", &as)
			spans[as] = sp
			return format(as, sp)

		case "copy":
			var as string
			td.ScanArgs(t, "as", &as)
			spans[as] = get(td, "span").Copy()
			return format(as, spans[as])

		case "concat":
			var as string
			td.ScanArgs(t, "as", &as)
			spans[as] = s.Concat(get(td, "a"), get(td, "b"))
			return format(as, spans[as])

		case "equals":
			return fmt.Sprint(s.Equals(get(td, "a"), get(td, "b")))

		case "starts-with":
			return fmt.Sprint(s.StartsWith(get(td, "span"), get(td, "prefix")))

		case "ends-with":
			return fmt.Sprint(s.EndsWith(get(td, "span"), get(td, "suffix")))

		case "is-empty":
			return fmt.Sprint(get(td, "span").IsEmpty())

		case "tokenize":
			for field := range s.Fields(get(td, "span"), get(td, "sep")) {
				fmt.Fprintf(&buf, "%q %s\n", s.ToString(field), field)
			}
			return buf.String()

		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	s := NewStore(nil)
	for _, str := range []string{"", "a", "abcdef", "\x00\xff\x00", strings.Repeat("xyz", 5000)} {
		sp := s.ToSpan(str)
		require.Equal(t, len(str), sp.Len())
		require.Equal(t, str == "", sp.IsEmpty())
		require.Equal(t, str, s.ToString(sp))
	}
	require.True(t, Span{}.IsEmpty())
	require.Equal(t, "", s.ToString(Span{}))

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := 0; i < 1000; i++ {
		buf := make([]byte, rng.IntN(64))
		for j := range buf {
			buf[j] = byte(rng.Uint32())
		}
		sp := s.FromBytes(buf)
		require.Equal(t, len(buf), sp.Len())
		require.Equal(t, buf, []byte(s.ToString(sp)))
		require.Equal(t, string(buf), s.ToString(s.ToSpan(string(buf))))
	}
}

func TestGetSlice(t *testing.T) {
	s := NewStore(nil)
	const str = "abcdef"
	sp := s.ToSpan(str)
	for i := 0; i <= len(str)+1; i++ {
		for n := 0; n <= len(str)+1; n++ {
			sub, err := s.GetSlice(sp, i, n)
			if i+n > len(str) {
				require.ErrorIs(t, err, ErrOutOfBounds)
				require.Equal(t, "Specified length goes out of bounds", err.Error())
				continue
			}
			require.NoError(t, err)
			require.Equal(t, n, sub.Len())
			require.Equal(t, str[i:i+n], s.ToString(sub))
			require.Equal(t, sp.Pointer().Add(uint32(i)), sub.Pointer())
		}
	}

	_, err := s.GetSlice(sp, 5, 10)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.GetSlice(sp, -1, 2)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.GetSlice(sp, 1, -1)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestCopyAliases(t *testing.T) {
	s := NewStore(nil)
	sp := s.ToSpan("alias")
	before := s.Metrics()
	c := sp.Copy()
	require.Equal(t, sp.Pointer(), c.Pointer())
	require.Equal(t, sp.Len(), c.Len())
	require.Equal(t, c, Copy(sp))
	require.Equal(t, before, s.Metrics())

	// Writes to the backing bytes are visible through every alias.
	s.arena.StoreByte(sp.Pointer(), 0, 'A')
	require.Equal(t, "Alias", s.ToString(c))
}

func TestConcat(t *testing.T) {
	s := NewStore(nil)
	for _, tc := range []struct{ a, b string }{
		{"abc", "def"},
		{"cde", "wxyz"},
		{"", "xyz"},
		{"abc", ""},
		{"", ""},
	} {
		a, b := s.ToSpan(tc.a), s.ToSpan(tc.b)
		c := s.Concat(a, b)
		require.Equal(t, len(tc.a)+len(tc.b), c.Len())
		require.Equal(t, tc.a+tc.b, s.ToString(c))
		require.NotEqual(t, a.Pointer(), c.Pointer())
		require.NotEqual(t, b.Pointer(), c.Pointer())
		require.Equal(t, tc.a+tc.b, s.ConcatStrings(tc.a, tc.b))
	}

	// Empty views at the end of an allocation do not share a pointer with
	// the concatenation.
	parent := s.ToSpan("abc")
	tail, err := s.GetSlice(parent, 3, 0)
	require.NoError(t, err)
	c := s.Concat(tail, tail)
	require.True(t, c.IsEmpty())
	require.NotEqual(t, tail.Pointer(), c.Pointer())
}

func TestEquals(t *testing.T) {
	s := NewStore(nil)
	a := s.ToSpan("google")
	require.True(t, s.Equals(a, a))
	require.True(t, s.Equals(a, s.ToSpan("google")))
	require.False(t, s.Equals(a, s.ToSpan("googlE")))
	require.False(t, s.Equals(a, s.ToSpan("goog")))
	require.True(t, s.Equals(Span{}, s.ToSpan("")))
}

func TestPrefixSuffix(t *testing.T) {
	s := NewStore(nil)
	sp := s.ToSpan("www.google.com")
	for _, tc := range []struct {
		probe                string
		startsWith, endsWith bool
	}{
		{"", true, true},
		{"w", true, false},
		{"www.", true, false},
		{"com", false, true},
		{".com", false, true},
		{"www.google.com", true, true},
		{"www.google.com.", false, false},
		{"xwww.google.com", false, false},
		{"google", false, false},
	} {
		probe := s.ToSpan(tc.probe)
		require.Equal(t, tc.startsWith, s.StartsWith(sp, probe), "StartsWith(%q)", tc.probe)
		require.Equal(t, tc.endsWith, s.EndsWith(sp, probe), "EndsWith(%q)", tc.probe)
	}
}

func TestSplit(t *testing.T) {
	s := NewStore(nil)
	orig := s.ToSpan("www.google.com")
	dot := s.ToSpan(".")

	sp := orig
	require.Equal(t, "www", s.ToString(s.Split(&sp, dot)))
	require.Equal(t, "google.com", s.ToString(sp))
	require.Equal(t, "google", s.ToString(s.Split(&sp, dot)))
	require.Equal(t, "com", s.ToString(sp))
	require.Equal(t, "www.google.com", s.ToString(orig))

	sp = orig
	field := s.Split(&sp, s.ToSpan("com.ca"))
	require.Equal(t, orig, field)
	require.True(t, sp.IsEmpty())

	// An empty separator matches at the start.
	sp = orig
	field = s.Split(&sp, Span{})
	require.True(t, field.IsEmpty())
	require.Equal(t, orig, sp)

	// Split does not allocate.
	before := s.Metrics()
	sp = orig
	for !sp.IsEmpty() {
		s.Split(&sp, dot)
	}
	require.Equal(t, before, s.Metrics())
}

func TestTokenizer(t *testing.T) {
	s := NewStore(nil)
	collect := func(str, sep string) []string {
		var out []string
		for field := range s.Fields(s.ToSpan(str), s.ToSpan(sep)) {
			out = append(out, s.ToString(field))
		}
		return out
	}
	for _, tc := range []struct{ str, sep string }{
		{"www.google.com", "."},
		{"a,b,,c", ","},
		{"a,b,", ","},
		{"", ","},
		{"abc", ","},
		{"a--b--c", "--"},
	} {
		require.Equal(t, strings.Split(tc.str, tc.sep), collect(tc.str, tc.sep), "%q on %q", tc.str, tc.sep)
	}
	require.Equal(t, []string{"abc"}, collect("abc", ""))

	tok := s.Tokenize(s.ToSpan("k=v"), s.ToSpan("="))
	key, ok := tok.Next()
	require.True(t, ok)
	require.Equal(t, "k", s.ToString(key))
	require.Equal(t, "v", s.ToString(tok.Remainder()))
	_, ok = tok.Next()
	require.True(t, ok)
	_, ok = tok.Next()
	require.False(t, ok)

	// Stopping early is allowed.
	var n int
	for range s.Fields(s.ToSpan("a.b.c"), s.ToSpan(".")) {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestIntern(t *testing.T) {
	s := NewStore(nil)
	a := s.Intern([]byte("abc"))
	b := s.InternString("abc")
	require.Equal(t, a, b)
	require.Equal(t, a, s.InternSpan(s.ToSpan("abc")))
	c := s.InternString("xyz")
	require.NotEqual(t, a.Pointer(), c.Pointer())
	require.Equal(t, "xyz", s.ToString(c))
	e := s.Intern(nil)
	require.True(t, e.IsEmpty())
	require.Equal(t, e, s.InternString(""))
	require.Equal(t, int64(3), s.Metrics().Interned)

	// Interning an existing value does not allocate.
	before := s.Metrics()
	s.InternString("abc")
	require.Equal(t, before, s.Metrics())
}

func TestSpanString(t *testing.T) {
	s := NewStore(nil)
	sp := s.ToSpan("abc")
	require.Equal(t, "[1,+3)", sp.String())
	require.Equal(t, "[0,+0)", Span{}.String())
}

func BenchmarkSplit(b *testing.B) {
	s := NewStore(nil)
	orig := s.ToSpan(strings.Repeat("field,", 64))
	sep := s.ToSpan(",")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sp := orig
		for !sp.IsEmpty() {
			s.Split(&sp, sep)
		}
	}
}

func BenchmarkIntern(b *testing.B) {
	s := NewStore(nil)
	words := []string{"www", "google", "com", "mail", "maps"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InternString(words[i%len(words)])
	}
}
