package bncc

import (
	"reflect"
	"testing"
)

var testCatalog = Catalog{
	"Matemática": {
		"9º ano": {"(EF09MA01) Números irracionais", "(EF09MA13) Teorema de Pitágoras"},
	},
	"Ciências": {
		"5º ano": {"(EF05CI02) Ciclo hidrológico"},
	},
}

func TestSelectableSkills(t *testing.T) {
	tests := []struct {
		name       string
		discipline string
		grade      string
		wantCount  int
	}{
		{"known pair", "Matemática", "9º ano", 2},
		{"unknown grade", "Matemática", "2º ano", 0},
		{"unknown discipline", "Filosofia", "9º ano", 0},
		{"empty inputs", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testCatalog.SelectableSkills(tt.discipline, tt.grade)
			if got == nil {
				t.Fatal("SelectableSkills returned nil, want empty slice")
			}
			if len(got) != tt.wantCount {
				t.Errorf("len = %d, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestSelectableSkillsCopies(t *testing.T) {
	got := testCatalog.SelectableSkills("Ciências", "5º ano")
	got[0] = "mutated"
	again := testCatalog.SelectableSkills("Ciências", "5º ano")
	if again[0] != "(EF05CI02) Ciclo hidrológico" {
		t.Error("catalog slice was mutated through the returned copy")
	}
}

func TestToggleSkillInvolution(t *testing.T) {
	set := []string{"A", "B"}
	toggled := ToggleSkill(ToggleSkill(set, "C"), "C")
	if !reflect.DeepEqual(toggled, set) {
		t.Errorf("double toggle = %v, want %v", toggled, set)
	}

	removed := ToggleSkill(set, "A")
	if !reflect.DeepEqual(removed, []string{"B"}) {
		t.Errorf("toggle existing = %v, want [B]", removed)
	}
	if !reflect.DeepEqual(set, []string{"A", "B"}) {
		t.Error("input slice was mutated")
	}
}

func TestFilterSuggestions(t *testing.T) {
	tests := []struct {
		name       string
		available  []string
		candidates []string
		want       []string
	}{
		{
			name:       "intersection keeps catalog lines only",
			available:  []string{"A", "B", "C"},
			candidates: []string{"B", "X", "C"},
			want:       []string{"B", "C"},
		},
		{
			name:       "empty intersection falls back to first raw line",
			available:  []string{"A", "B"},
			candidates: []string{"Something not matching at all"},
			want:       []string{"Something not matching at all"},
		},
		{
			name:       "no candidates",
			available:  []string{"A"},
			candidates: nil,
			want:       []string{},
		},
		{
			name:       "reformatted line is dropped, exact one kept",
			available:  []string{"(EF09MA13) Teorema de Pitágoras"},
			candidates: []string{"EF09MA13 - Teorema de Pitágoras", "(EF09MA13) Teorema de Pitágoras"},
			want:       []string{"(EF09MA13) Teorema de Pitágoras"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSuggestions(tt.available, tt.candidates)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterSuggestions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitSuggestionReply(t *testing.T) {
	got := SplitSuggestionReply("B\n\n  C  \n")
	want := []string{"B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSuggestionReply = %v, want %v", got, want)
	}
}
