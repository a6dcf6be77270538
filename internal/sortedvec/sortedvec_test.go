// SPDX-License-Identifier: Unlicense OR MIT

package sortedvec

import "testing"

func TestPushPopOrder(t *testing.T) {
	v := New[int](func(a, b int) bool { return a < b })
	for _, n := range []int{5, 1, 4, 2, 3} {
		v.Push(n)
	}
	var got []int
	for v.Len() > 0 {
		n, ok := v.Pop()
		if !ok {
			t.Fatal("Pop reported empty while Len() > 0")
		}
		got = append(got, n)
	}
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	v := New[int](func(a, b int) bool { return a < b })
	v.Push(1)
	v.Push(2)
	first, ok := v.Peek()
	if !ok || first != 1 {
		t.Fatalf("Peek = %v, %v want 1, true", first, ok)
	}
	if v.Len() != 2 {
		t.Fatalf("Peek should not remove, Len() = %d", v.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	v := New[int](func(a, b int) bool { return a < b })
	if _, ok := v.Pop(); ok {
		t.Fatal("Pop on empty vector should report false")
	}
}
