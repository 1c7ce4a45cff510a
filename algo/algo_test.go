package algo

import "testing"

func TestFind(t *testing.T) {
	s := []int{4, 8, 15, 16, 23, 42}
	if got := Find(s, 15); got != 2 {
		t.Errorf("Find(15) = %d, want 2", got)
	}
	if got := Find(s, 7); got != -1 {
		t.Errorf("Find(7) = %d, want -1", got)
	}
	if got := Find(nil, 7); got != -1 {
		t.Errorf("Find on nil = %d, want -1", got)
	}
}

func TestFindIf(t *testing.T) {
	s := []string{"idle", "active", "done"}
	if got := FindIf(s, func(v string) bool { return len(v) == 6 }); got != 1 {
		t.Errorf("FindIf = %d, want 1", got)
	}
	if got := FindIf(s, func(v string) bool { return v == "" }); got != -1 {
		t.Errorf("FindIf no match = %d, want -1", got)
	}
}

func TestCount(t *testing.T) {
	s := []byte{1, 0, 1, 1, 0}
	if got := Count(s, byte(1)); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}

func TestMinMaxClamp(t *testing.T) {
	if got := Min(3, 7); got != 3 {
		t.Errorf("Min = %d", got)
	}
	if got := Max(uint16(3), 7); got != 7 {
		t.Errorf("Max = %d", got)
	}
	if got := Clamp(200, 0, 180); got != 180 {
		t.Errorf("Clamp over = %d", got)
	}
	if got := Clamp(-5, 0, 180); got != 0 {
		t.Errorf("Clamp under = %d", got)
	}
	if got := Clamp(90, 0, 180); got != 90 {
		t.Errorf("Clamp inside = %d", got)
	}
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4}
	Reverse(s)
	for i, want := range []int{4, 3, 2, 1} {
		if s[i] != want {
			t.Fatalf("Reverse = %v", s)
		}
	}
	var empty []int
	Reverse(empty) // must not panic
}

func TestRotate(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{0, []int{1, 2, 3, 4, 5}},
		{2, []int{3, 4, 5, 1, 2}},
		{5, []int{1, 2, 3, 4, 5}},
		{-1, []int{5, 1, 2, 3, 4}},
		{7, []int{3, 4, 5, 1, 2}},
	}
	for _, c := range cases {
		s := []int{1, 2, 3, 4, 5}
		Rotate(s, c.n)
		for i := range c.want {
			if s[i] != c.want[i] {
				t.Errorf("Rotate(%d) = %v, want %v", c.n, s, c.want)
				break
			}
		}
	}
	Rotate([]int{}, 3) // must not panic
}
