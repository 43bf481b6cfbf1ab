package freq

import (
	"reflect"
	"testing"
)

func TestUpdateAndTotal(t *testing.T) {
	c := New()
	c.Update([]string{"a", "b", "a"})
	c.Update([]string{"a"})

	if c["a"] != 3 || c["b"] != 1 {
		t.Errorf("unexpected counts: %v", c)
	}

	if c.Total() != 4 {
		t.Errorf("expected total 4, got %d", c.Total())
	}
}

func TestUpdateAll(t *testing.T) {
	c := New()
	c.UpdateAll([][]string{{"x"}, {"x", "y"}})

	if c["x"] != 2 || c["y"] != 1 {
		t.Errorf("unexpected counts: %v", c)
	}
}

func TestMostCommon(t *testing.T) {
	c := Counter{"b": 2, "a": 2, "c": 5}

	got := c.MostCommon(2)
	want := []Pair{{Term: "c", Count: 5}, {Term: "a", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMostCommonAll(t *testing.T) {
	c := Counter{"a": 1, "b": 1}

	got := c.MostCommon(0)
	if len(got) != 2 {
		t.Errorf("expected all pairs, got %v", got)
	}
}
