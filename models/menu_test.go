package models

import "testing"

func TestValidCategory(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{CategoryDaily, true},
		{CategorySalgados, true},
		{CategoryDoces, true},
		{CategoryMarmitasFrango, true},
		{CategoryMarmitasCarne, true},
		{CategoryMarmitasSopa, true},
		{"sopas", false}, // pre-canonicalization tag
		{"", false},
		{"DAILY", false},
	}
	for _, tt := range tests {
		if got := ValidCategory(tt.category); got != tt.want {
			t.Errorf("ValidCategory(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestFitMealCategory(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{CategoryMarmitasFrango, true},
		{CategoryMarmitasCarne, true},
		{CategoryMarmitasSopa, true},
		{CategoryDaily, false},
		{CategorySalgados, false},
		{CategoryDoces, false},
	}
	for _, tt := range tests {
		if got := FitMealCategory(tt.category); got != tt.want {
			t.Errorf("FitMealCategory(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}
