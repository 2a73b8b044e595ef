package cn_test

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/cn/cn"
)

type badge string

func (b badge) String() string { return "badge-" + string(b) }

type themeClass struct{ name string }

func (c *themeClass) ClassName() string { return c.name }

func TestCN(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []cn.ClassValue
		expected string
	}{
		{"no arguments", nil, ""},
		{"two strings", []cn.ClassValue{"a", "b"}, "a b"},
		{"falsy values ignored", []cn.ClassValue{"a", false, nil, "", 0, "b"}, "a b"},
		{"true ignored", []cn.ClassValue{true, "a"}, "a"},
		{"condition map", []cn.ClassValue{map[string]bool{"a": true, "b": false}}, "a"},
		{"nested slices", []cn.ClassValue{[]any{"a", []any{"b", "c"}}}, "a b c"},
		{"string slice", []cn.ClassValue{[]string{"a", "", "b"}}, "a b"},
		{"numbers", []cn.ClassValue{1, 0, 2.5}, "1 2.5"},
		{"any map uses truthiness", []cn.ClassValue{map[string]any{"a": 1, "b": 0, "c": "", "d": "x", "e": nil}}, "a d"},
		{"cond", []cn.ClassValue{cn.If(true, "a"), cn.If(false, "b")}, "a"},
		{"templ key value", []cn.ClassValue{templ.KV("active", true), templ.KV("inactive", false)}, "active"},
		{"templ css class", []cn.ClassValue{templ.ConstantCSSClass("card")}, "card"},
		{"stringer", []cn.ClassValue{badge("new")}, "badge-new"},
		{"nil stringer pointer", []cn.ClassValue{"a", (*url.URL)(nil), "b"}, "a b"},
		{"nil builder pointer", []cn.ClassValue{"a", (*strings.Builder)(nil), "b"}, "a b"},
		{"nil css class pointer", []cn.ClassValue{"a", (*themeClass)(nil), "b"}, "a b"},
		{"css class pointer", []cn.ClassValue{&themeClass{name: "theme"}}, "theme"},
		{"templ key value with nil css class", []cn.ClassValue{templ.KV(templ.CSSClass((*themeClass)(nil)), true), "a"}, "a"},
		{"same group later wins", []cn.ClassValue{"text-sm", "text-lg"}, "text-lg"},
		{"different groups kept", []cn.ClassValue{"text-red-500", "text-lg"}, "text-red-500 text-lg"},
		{"broad group overrides narrow", []cn.ClassValue{"px-2 py-1", "p-4"}, "p-4"},
		{"narrow group after broad kept", []cn.ClassValue{"p-4", "px-2"}, "p-4 px-2"},
		{"variants are separate", []cn.ClassValue{"hover:bg-red-500", "bg-blue-500", "hover:bg-green-500"}, "bg-blue-500 hover:bg-green-500"},
		{"variant order ignored", []cn.ClassValue{"hover:focus:p-2", "focus:hover:p-4"}, "focus:hover:p-4"},
		{"duplicates keep last position", []cn.ClassValue{"a b a"}, "b a"},
		{"negative values", []cn.ClassValue{"-m-2", "m-4"}, "m-4"},
		{"important is separate", []cn.ClassValue{"!p-2", "p-4"}, "!p-2 p-4"},
		{"postfix opacity", []cn.ClassValue{"bg-red-500/50", "bg-blue-500"}, "bg-blue-500"},
		{"font size overrides leading", []cn.ClassValue{"leading-5", "text-lg"}, "text-lg"},
		{"leading after font size kept", []cn.ClassValue{"text-lg", "leading-5"}, "text-lg leading-5"},
		{"display", []cn.ClassValue{"flex", "block"}, "block"},
		{"display and direction", []cn.ClassValue{"flex", "flex-col"}, "flex flex-col"},
		{"rounded", []cn.ClassValue{"rounded-t-none", "rounded-md"}, "rounded-md"},
		{"border width and color", []cn.ClassValue{"border-2", "border-red-500"}, "border-2 border-red-500"},
		{"inset", []cn.ClassValue{"top-1", "inset-0"}, "inset-0"},
		{"arbitrary values", []cn.ClassValue{"w-[350px]", "w-full"}, "w-full"},
		{"arbitrary properties", []cn.ClassValue{"[mask-type:luminance]", "[mask-type:alpha]"}, "[mask-type:alpha]"},
		{"non-decimal values are not lengths", []cn.ClassValue{"p-inf", "p-1e3", "p-4"}, "p-inf p-1e3 p-4"},
		{"unknown classes pass through", []cn.ClassValue{"my-widget", "animate-in", "fade-in-0"}, "my-widget animate-in fade-in-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cn.CN(tt.inputs...))
		})
	}
}

func TestCNIsIdempotent(t *testing.T) {
	inputs := [][]cn.ClassValue{
		{"px-2 py-1 p-4 hover:p-2"},
		{"text-sm font-medium", "text-lg", map[string]bool{"underline": true}},
		{"a b a c", "b"},
		{"inline-flex h-10 px-4 py-2", "h-9 px-3", "px-8"},
	}

	for _, in := range inputs {
		once := cn.CN(in...)
		assert.Equal(t, once, cn.CN(once), "merging %q again changed it", once)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "text-sm text-lg a a", cn.Join("text-sm", "text-lg", []string{"a", "a"}))
	assert.Equal(t, "", cn.Join(nil, false, ""))
}

func TestExplain(t *testing.T) {
	res := cn.Default().Explain("px-2 p-4 text-sm", "text-lg")

	assert.Equal(t, []string{"p-4", "text-lg"}, res.Classes)
	assert.Equal(t, []cn.Dropped{
		{Class: "px-2", OverriddenBy: "p-4"},
		{Class: "text-sm", OverriddenBy: "text-lg"},
	}, res.Dropped)
	assert.Equal(t, "p-4 text-lg", res.String())
}

func TestMergerPrefix(t *testing.T) {
	cfg := cn.DefaultConfig()
	cfg.Prefix = "tw-"
	m := cn.New(cfg)

	assert.Equal(t, "tw-p-4 p-2 p-4", m.Merge("tw-p-2 tw-p-4 p-2 p-4"))
	assert.Equal(t, "tw-m-4", m.Merge("-tw-m-2 tw-m-4"))
}

func TestMergerLogsDroppedClasses(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := cn.New(cn.DefaultConfig(), cn.WithLogger(logger))

	assert.Equal(t, "p-4", m.CN("p-2", "p-4"))
	assert.Contains(t, buf.String(), "class dropped")
	assert.Contains(t, buf.String(), "class=p-2")
}

func TestMergeIsSafeForConcurrentUse(t *testing.T) {
	const want = "bg-blue-500 hover:bg-green-500 p-4"

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cn.Merge("hover:bg-red-500 bg-blue-500 px-2", "hover:bg-green-500 p-4")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
