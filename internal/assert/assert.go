package assert

import "testing"

func Equal[T comparable](t *testing.T, actual, expected T) {
	t.Helper()

	if actual != expected {
		t.Errorf("got: %v; want: %v", actual, expected)
	}
}

func SliceEqual[T comparable](t *testing.T, actual, expected []T) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Errorf("different sizes. got: (%v, len: %d), want: (%v, len: %d)", actual, len(actual), expected, len(expected))
		return
	}

	for i := range len(actual) {
		Equal(t, actual[i], expected[i])
	}
}

func ErrorStatus(t *testing.T, err error, expectError bool) bool {
	t.Helper()

	if err != nil {
		if !expectError {
			t.Errorf("got unexpected error: %s", err.Error())
		}
		return false
	}

	if expectError {
		t.Error("did not get expected error")
		return false
	}

	return true
}
