package kp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// matches returns the PNO of every part that satisfies p
func matches(ps []part, p func(*part) bool) []int {
	res := []int{}
	for i := range ps {
		if p(&ps[i]) {
			res = append(res, ps[i].PNO)
		}
	}
	return res
}

func TestComparisons(t *testing.T) {
	ps := exampleParts()
	fix := []struct {
		name string
		pred Predicate[part]
		out  []int
	}{
		{"Eq", Eq(color, "Red"), []int{1, 4, 6}},
		{"Ne", Ne(color, "Red"), []int{2, 3, 5}},
		{"Lt", Lt(weight, 14.0), []int{1, 5}},
		{"Le", Le(weight, 14.0), []int{1, 4, 5}},
		{"Gt", Gt(weight, 17.0), []int{6}},
		{"Ge", Ge(weight, 17.0), []int{2, 3, 6}},
		{"Between", Between(pno, 2, 4), []int{2, 3, 4}},
		{"In", In(pcity, "Oslo", "Paris"), []int{2, 3, 5}},
		{"In nothing", In(pcity), []int{}},
		{"Contains", Contains(pcity, "o"), []int{1, 3, 4, 6}},
		{"HasPrefix", HasPrefix(color, "B"), []int{3, 5}},
		{"Present", Present(discount), []int{2, 4}},
		{"Absent", Absent(discount), []int{1, 3, 5, 6}},
		{"Ne absent", Ne(discount, 0.1), []int{4}},
		{"And", Eq(color, "Red").And(Gt(weight, 12.0)), []int{4, 6}},
		{"Or", Eq(color, "Green").Or(Eq(pcity, "Oslo")), []int{2, 3}},
		{"Xor", Eq(color, "Red").Xor(Eq(pcity, "London")), []int{}},
		{"Not", Not(Eq(color, "Red")), []int{2, 3, 5}},
		{"All", All(Eq(color, "Red"), Present(discount)), []int{4}},
		{"All of nothing", All[part](), []int{1, 2, 3, 4, 5, 6}},
	}
	for i, tt := range fix {
		if got := matches(ps, tt.pred); !equalInts(got, tt.out) {
			t.Errorf("%d. %s matched %v, want %v", i, tt.name, got, tt.out)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type event struct {
	ID int
	At time.Time
}

func TestDatetime(t *testing.T) {
	at := New(func(e *event) *time.Time { return &e.At })
	utc := time.UTC
	evs := []event{
		{1, time.Date(2024, time.March, 4, 9, 30, 0, 0, utc)},  // Monday
		{2, time.Date(2024, time.March, 6, 18, 0, 0, 0, utc)},  // Wednesday
		{3, time.Date(2024, time.March, 9, 11, 0, 0, 0, utc)},  // Saturday
		{4, time.Date(2024, time.March, 10, 23, 0, 0, 0, utc)}, // Sunday
	}
	ids := func(p Predicate[event]) []int {
		res := []int{}
		for i := range evs {
			if p(&evs[i]) {
				res = append(res, evs[i].ID)
			}
		}
		return res
	}

	mid := time.Date(2024, time.March, 6, 18, 0, 0, 0, utc)
	require.Equal(t, []int{3, 4}, ids(After(at, mid)))
	require.Equal(t, []int{1}, ids(Before(at, mid)))
	require.Equal(t, []int{2, 3}, ids(Within(at, mid, evs[2].At)))
	require.Equal(t, []int{3, 4}, ids(Weekend(at)))
	require.Equal(t, []int{1, 2}, ids(OnWeekday(at, time.Monday, time.Wednesday)))
	require.Equal(t, []int{1}, ids(BusinessHours(at, 9, 17)))
	require.Equal(t, []int{3}, ids(SameDay(at, time.Date(2024, time.March, 9, 0, 0, 0, 0, utc))))

	// the calendar day is taken in the location of the reference time
	plus12 := time.FixedZone("UTC+12", 12*60*60)
	require.Equal(t, []int{4}, ids(SameDay(at, time.Date(2024, time.March, 11, 0, 0, 0, 0, plus12))))
}
