package stringparser

import (
	"testing"
)

//------------------------------------------------------------------------------

func TestSkipSpaces(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 0},
		{"  abc", 2},
		{"\t abc", 2},
		{"   ", 3},
	}
	for _, tc := range testCases {
		if w := SkipSpaces(tc.input); w != tc.expected {
			t.Errorf("SkipSpaces(%q) = %v, expected %v", tc.input, w, tc.expected)
		}
	}
}

func TestGetUint64(t *testing.T) {
	value, w := GetUint64("1234abc")
	if value != 1234 || w != 4 {
		t.Errorf("GetUint64 returned (%v, %v)", value, w)
	}

	_, w = GetUint64("abc")
	if w != -1 {
		t.Errorf("expected failure, got width %v", w)
	}
}

func TestGetFloat64(t *testing.T) {
	value, w := GetFloat64("1.5gb")
	if value != 1.5 || w != 3 {
		t.Errorf("GetFloat64 returned (%v, %v)", value, w)
	}

	_, w = GetFloat64("1.2.3")
	if w != -1 {
		t.Errorf("expected failure on double dot, got width %v", w)
	}

	_, w = GetFloat64("gb")
	if w != -1 {
		t.Errorf("expected failure, got width %v", w)
	}
}

func TestGetText(t *testing.T) {
	text, w := GetText("mb extra")
	if text != "mb" || w != 2 {
		t.Errorf("GetText returned (%q, %v)", text, w)
	}

	text, w = GetText("123")
	if text != "" || w != 0 {
		t.Errorf("GetText returned (%q, %v)", text, w)
	}
}
