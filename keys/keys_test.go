package keys_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/cn/keys"
)

type point struct {
	X, Y   int
	hidden bool
}

type Meta struct {
	ID string
}

type card struct {
	Meta
	Title string
	Tags  []string
}

func TestOfStruct(t *testing.T) {
	got := keys.Of(point{X: 1, Y: 2})

	want := []keys.Key[point]{"X", "Y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Of(point) mismatch (-want +got):\n%s", diff)
	}
}

func TestOfStructPointer(t *testing.T) {
	got := keys.Of(&point{})
	assert.Equal(t, []string{"X", "Y"}, keys.Strings(got))
}

func TestOfEmbeddedStructIsOneKey(t *testing.T) {
	got := keys.Of(card{})
	assert.Equal(t, []string{"Meta", "Title", "Tags"}, keys.Strings(got))
}

func TestOfEmptyRecords(t *testing.T) {
	assert.Empty(t, keys.Of(struct{}{}))
	assert.Empty(t, keys.Of(map[string]int{}))
	assert.Empty(t, keys.Of(map[string]int(nil)))
	assert.Empty(t, keys.Of(42))
	assert.Empty(t, keys.Of(""))
}

func TestOfMap(t *testing.T) {
	got := keys.Of(map[string]int{"x": 1, "y": 2})
	assert.Equal(t, []string{"x", "y"}, keys.Strings(got))

	got = keys.Of(map[string]int{"b": 1, "2": 0, "a": 1, "10": 0, "01": 0})
	assert.Equal(t, []string{"2", "10", "01", "a", "b"}, keys.Strings(got))
}

func TestOfSlice(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "2"}, keys.Strings(keys.Of([]string{"a", "b", "c"})))
	assert.Equal(t, []string{"0", "1"}, keys.Strings(keys.Of([2]int{})))
}

func TestOfString(t *testing.T) {
	assert.Equal(t, []string{"0", "1"}, keys.Strings(keys.Of("ab")))
	assert.Equal(t, []string{"0", "1"}, keys.Strings(keys.Of("é!")))
	// astral runes take two code units
	assert.Equal(t, []string{"0", "1", "2"}, keys.Strings(keys.Of("😀x")))
}

func TestOfNilPanics(t *testing.T) {
	var p *point
	assert.PanicsWithError(t, keys.ErrNilRecord.Error(), func() { keys.Of(p) })

	var v any
	assert.PanicsWithError(t, keys.ErrNilRecord.Error(), func() { keys.Of(v) })
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "a", "b"}, keys.Map(map[string]bool{"b": true, "a": true, "2": true, "1": true}))
	assert.Equal(t, []int{-3, 1, 7}, keys.Map(map[int]string{7: "", -3: "", 1: ""}))
	assert.Empty(t, keys.Map(map[string]int{}))

	type color string
	assert.Equal(t, []color{"3", "blue", "red"}, keys.Map(map[color]int{"red": 1, "blue": 2, "3": 3}))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"10", "2", 1},
		{"2", "a", -1},
		{"a", "2", 1},
		{"a", "b", -1},
		{"007", "7", 1},
		{"4294967295", "4294967294", 1},
		{"x", "x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, keys.Compare(tt.a, tt.b))
		})
	}
}
