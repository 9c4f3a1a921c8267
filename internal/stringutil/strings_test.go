// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package stringutil

import "testing"

func TestContainsIgnoreCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		substr   string
		expected bool
	}{
		{"Hello World", "world", true},
		{"Hello World", "WORLD", true},
		{"Hello World", "foo", false},
		{"TEST", "test", true},
		{"", "", true},
		{"Postgres", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		result := ContainsIgnoreCase(tt.text, tt.substr)
		if result != tt.expected {
			t.Errorf("ContainsIgnoreCase(%q, %q) = %v, want %v", tt.text, tt.substr, result, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"Postgres", 20, "Postgres"},
		{"Postgres", 8, "Postgres"},
		{"Postgres", 5, "Post…"},
		{"Postgres", 0, ""},
		{"日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		result := Truncate(tt.text, tt.width)
		if result != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, result, tt.expected)
		}
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight(ab, 4) = %q", got)
	}

	if got := PadRight("abcdef", 4); Width(got) != 4 {
		t.Errorf("PadRight(abcdef, 4) has width %d", Width(got))
	}
}
