package search

import "testing"

func TestWalkFindsExactValue(t *testing.T) {
	table := []int{1, 3, 5, 7, 9, 11, 13}
	target := 7

	var found []int
	probe := func(i int) Result {
		switch {
		case table[i] == target:
			return Result{Direction: Done, Value: table[i], HasValue: true}
		case table[i] < target:
			return Result{Direction: After}
		default:
			return Result{Direction: Before}
		}
	}
	Walk(len(table), probe, func(v interface{}) bool {
		found = append(found, v.(int))
		return true
	})
	if len(found) != 1 || found[0] != target {
		t.Fatalf("got %v, want [%d]", found, target)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	calls := 0
	probe := func(i int) Result {
		calls++
		return Result{Direction: BeforeAndAfter, Value: i, HasValue: true}
	}
	var visited []int
	Walk(16, probe, func(v interface{}) bool {
		visited = append(visited, v.(int))
		return len(visited) < 2
	})
	if len(visited) != 2 {
		t.Fatalf("expected exactly 2 visits, got %d", len(visited))
	}
}

func TestAncestorPathReachesTarget(t *testing.T) {
	n := 17
	for target := 0; target < n; target++ {
		path := AncestorPath(target, n)
		if len(path) == 0 || path[len(path)-1] != target {
			t.Fatalf("AncestorPath(%d, %d) = %v, does not end at target", target, n, path)
		}
	}
}

func TestAncestorPathMatchesWalkDescent(t *testing.T) {
	n := 23
	for target := 0; target < n; target++ {
		var probed []int
		probe := func(i int) Result {
			probed = append(probed, i)
			switch {
			case i == target:
				return Result{Direction: Done}
			case target < i:
				return Result{Direction: Before}
			default:
				return Result{Direction: After}
			}
		}
		Walk(n, probe, func(interface{}) bool { return true })
		want := AncestorPath(target, n)
		if len(probed) != len(want) {
			t.Fatalf("target %d: probed %v, want %v", target, probed, want)
		}
		for i := range probed {
			if probed[i] != want[i] {
				t.Fatalf("target %d: probed %v, want %v", target, probed, want)
			}
		}
	}
}
