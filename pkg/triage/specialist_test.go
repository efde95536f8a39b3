package triage

import (
	"testing"
)

func TestInferSpecialist(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "pregnancy vocabulary",
			text: "I am 30 weeks pregnant and having contractions",
			want: "gynecologist",
		},
		{
			name: "obstetric vocabulary",
			text: "possible miscarriage, please advise",
			want: "gynecologist",
		},
		{
			name: "cardiac vocabulary",
			text: "my heart races when I climb stairs",
			want: "cardiologist",
		},
		{
			name: "chest pain is cardiac",
			text: "recurring chest pain after meals",
			want: "cardiologist",
		},
		{
			name: "pregnancy rule precedes cardiac rule",
			text: "pregnant with chest pain and heart palpitations",
			want: "gynecologist",
		},
		{
			name: "literal specialist name",
			text: "I was told to see a dermatologist about this rash",
			want: "dermatologist",
		},
		{
			name: "literal name is case-insensitive",
			text: "Should I book a Neurologist?",
			want: "neurologist",
		},
		{
			name: "multi-word specialist name",
			text: "my ent specialist retired, need a new one",
			want: "ent specialist",
		},
		{
			name: "fallback",
			text: "I feel strange and tired",
			want: "emergency medicine",
		},
		{
			name: "empty text falls back",
			text: "",
			want: "emergency medicine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferSpecialist(tt.text); got != tt.want {
				t.Errorf("InferSpecialist(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsKnownSpecialist(t *testing.T) {
	for _, name := range KnownSpecialists {
		if !IsKnownSpecialist(name) {
			t.Errorf("%q should be a known specialist", name)
		}
	}
	if !IsKnownSpecialist("Emergency Medicine") {
		t.Error("the default specialist should be accepted")
	}
	if IsKnownSpecialist("wizard") {
		t.Error("unknown label accepted")
	}
}
