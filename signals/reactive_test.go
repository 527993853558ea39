package signals

import (
	"testing"
)

// Trimmed to the CreateSignal behavior widgets actually exercise
// (Accessor/Setter read/write, SetWith, struct and slice values); the
// upstream suite's CreateEffect/CreateMemo/CreateRoot/Batch/Untrack
// coverage lived here too, but nothing in stagecraft drives those paths.

func TestCreateSignal_ReturnsAccessorAndSetter(t *testing.T) {
	count, setCount := CreateSignal(0)

	if count == nil {
		t.Error("accessor should not be nil")
	}
	if setCount == nil {
		t.Error("setter should not be nil")
	}
}

func TestCreateSignal_AccessorReturnsCurrentValue(t *testing.T) {
	count, _ := CreateSignal(42)
	if count() != 42 {
		t.Errorf("expected 42, got %d", count())
	}
}

func TestCreateSignal_SetterUpdatesValue(t *testing.T) {
	count, setCount := CreateSignal(0)
	setCount(5)
	if count() != 5 {
		t.Errorf("expected 5, got %d", count())
	}
}

func TestSetWith_UpdatesFromPreviousValue(t *testing.T) {
	count, setCount := CreateSignal(10)
	// Use SetWith to update based on previous value
	SetWith(setCount, func(prev int) int { return prev + 5 }, count)
	if count() != 15 {
		t.Errorf("expected 15, got %d", count())
	}
}

func TestCreateSignal_WorksWithObjects(t *testing.T) {
	type Person struct {
		Name string
		Age  int
	}
	state, setState := CreateSignal(Person{Name: "Alice", Age: 30})

	if state().Name != "Alice" {
		t.Errorf("expected Alice, got %s", state().Name)
	}

	setState(Person{Name: "Bob", Age: 25})
	if state().Name != "Bob" {
		t.Errorf("expected Bob, got %s", state().Name)
	}
}

func TestCreateSignal_WorksWithSlices(t *testing.T) {
	items, setItems := CreateSignal([]int{1, 2, 3})

	got := items()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1,2,3], got %v", got)
	}

	// Use SetWith to update based on previous value
	SetWith(setItems, func(arr []int) []int {
		return append(arr, 4)
	}, items)
	got = items()
	if len(got) != 4 || got[3] != 4 {
		t.Errorf("expected [1,2,3,4], got %v", got)
	}
}
