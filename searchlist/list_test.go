package searchlist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortway/searchlist"
)

// item is a labeled entry with a mutable priority.
type item struct {
	name string
	pri  float64
}

func newList() *searchlist.List[*item] {
	return searchlist.New(func(it *item) float64 { return it.pri })
}

func names(items []*item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}

	return out
}

func TestNewNilKeyPanics(t *testing.T) {
	assert.Panics(t, func() { searchlist.New[*item](nil) })
}

func TestAddKeepsAscendingOrder(t *testing.T) {
	l := newList()
	for _, it := range []*item{{"c", 3}, {"a", 1}, {"d", 4}, {"b", 2}} {
		require.True(t, l.Add(it))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(l.Values()))
	assert.Equal(t, 4, l.Len())
}

func TestAddTiesAreFIFO(t *testing.T) {
	l := newList()
	inf := math.Inf(1)
	l.Add(&item{"x", inf})
	l.Add(&item{"y", 1})
	l.Add(&item{"z", inf})
	l.Add(&item{"w", 1})
	assert.Equal(t, []string{"y", "w", "x", "z"}, names(l.Values()))
}

func TestAddDuplicateIgnored(t *testing.T) {
	l := newList()
	a := &item{"a", 1}
	require.True(t, l.Add(a))
	assert.False(t, l.Add(a))
	assert.Equal(t, 1, l.Len())
}

func TestRemoveFirst(t *testing.T) {
	l := newList()
	_, ok := l.RemoveFirst()
	assert.False(t, ok, "empty list yields no element")

	l.Add(&item{"b", 2})
	l.Add(&item{"a", 1})

	first, ok := l.First()
	require.True(t, ok)
	assert.Equal(t, "a", first.name)

	got, ok := l.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, "a", got.name)
	assert.False(t, l.Contains(got))

	got, ok = l.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, "b", got.name)
	assert.Zero(t, l.Len())

	_, ok = l.First()
	assert.False(t, ok)
}

func TestRepositionDecrease(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name   string
		target string
		newPri float64
		want   []string
	}{
		{"to front", "d", 0, []string{"d", "a", "b", "c", "e"}},
		{"after equal keys", "e", 2, []string{"a", "b", "c", "e", "d"}},
		{"between", "d", 1.5, []string{"a", "d", "b", "c", "e"}},
		{"unchanged slot", "b", 1.5, []string{"a", "b", "c", "d", "e"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newList()
			byName := map[string]*item{}
			for _, it := range []*item{{"a", 1}, {"b", 2}, {"c", 2}, {"d", inf}, {"e", inf}} {
				byName[it.name] = it
				l.Add(it)
			}
			byName[tc.target].pri = tc.newPri
			require.True(t, l.Reposition(byName[tc.target]))
			assert.Equal(t, tc.want, names(l.Values()))
		})
	}
}

func TestRepositionIncrease(t *testing.T) {
	l := newList()
	a, b, c := &item{"a", 1}, &item{"b", 2}, &item{"c", 3}
	l.Add(a)
	l.Add(b)
	l.Add(c)

	a.pri = 3
	require.True(t, l.Reposition(a))
	assert.Equal(t, []string{"b", "c", "a"}, names(l.Values()), "equal key goes after existing equals")
}

func TestRepositionMatchesAdd(t *testing.T) {
	// Repositioning must land where a fresh Add would.
	build := func() (*searchlist.List[*item], []*item) {
		l := newList()
		its := []*item{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 5}, {"e", 7}}
		for _, it := range its {
			l.Add(it)
		}

		return l, its
	}
	for _, newPri := range []float64{0, 1, 2, 3, 4, 5, 6, 7, 8} {
		l1, its1 := build()
		its1[4].pri = newPri
		l1.Reposition(its1[4])

		l2, its2 := build()
		l2.Remove(its2[4])
		its2[4].pri = newPri
		l2.Add(its2[4])

		assert.Equal(t, names(l2.Values()), names(l1.Values()), "pri=%v", newPri)
	}
}

func TestRepositionAndRemoveAbsent(t *testing.T) {
	l := newList()
	ghost := &item{"ghost", 1}
	assert.False(t, l.Reposition(ghost))
	assert.False(t, l.Remove(ghost))
	assert.False(t, l.Contains(ghost))
}

func TestRemove(t *testing.T) {
	l := newList()
	a, b, c := &item{"a", 1}, &item{"b", 2}, &item{"c", 3}
	l.Add(a)
	l.Add(b)
	l.Add(c)

	require.True(t, l.Remove(b))
	assert.Equal(t, []string{"a", "c"}, names(l.Values()))
	assert.True(t, l.Add(b), "removed value may be added again")
	assert.Equal(t, []string{"a", "b", "c"}, names(l.Values()))
}
