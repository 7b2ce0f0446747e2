package utils

import (
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"chat", "chat"},
		{"CHAT", "chat"},
		{"Élève", "eleve"},
		{"garçon", "garcon"},
		{"naïve café", "naive cafe"},
		{"straße", "strae"},
		{"日本", ""},
		{"rock'n'roll", "rock'n'roll"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := NormalizeWord(tc.input); got != tc.expected {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizePhrase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"niche chat", "nichechat"},
		{"  Niche\tChat\n", "nichechat"},
		{"Là-bas", "la-bas"},
		{" é", "e"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := NormalizePhrase(tc.input); got != tc.expected {
				t.Errorf("NormalizePhrase(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCreateRankList(t *testing.T) {
	if got := CreateRankList(0); len(got) != 0 {
		t.Errorf("CreateRankList(0) = %v", got)
	}
	got := CreateRankList(3)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("CreateRankList(3) = %v, want [1 2 3]", got)
	}
}
