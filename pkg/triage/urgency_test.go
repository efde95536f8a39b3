package triage

import (
	"testing"
)

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name        string
		modelReply  string
		userMessage string
		want        UrgencyLevel
	}{
		{
			name:        "default is LOW",
			modelReply:  "Drink plenty of fluids and rest.",
			userMessage: "I have a mild headache",
			want:        UrgencyLow,
		},
		{
			name:        "marker LOW",
			modelReply:  "That sounds manageable at home.\n\nUrgency: LOW",
			userMessage: "runny nose since yesterday",
			want:        UrgencyLow,
		},
		{
			name:        "marker MEDIUM",
			modelReply:  "You should see a doctor this week.\n\nUrgency: MEDIUM",
			userMessage: "persistent cough for two weeks",
			want:        UrgencyMedium,
		},
		{
			name:        "marker HIGH",
			modelReply:  "Please see a doctor today. Urgency: HIGH",
			userMessage: "high fever and stiff neck",
			want:        UrgencyHigh,
		},
		{
			name:        "marker EMERGENCY",
			modelReply:  "Call emergency services now. Urgency: EMERGENCY",
			userMessage: "my father collapsed",
			want:        UrgencyEmergency,
		},
		{
			name:        "marker is case-insensitive",
			modelReply:  "urgency: high",
			userMessage: "bad migraine",
			want:        UrgencyHigh,
		},
		{
			name:        "marker within a few words",
			modelReply:  "The urgency level is MEDIUM given your symptoms.",
			userMessage: "sore throat",
			want:        UrgencyMedium,
		},
		{
			name:        "keyword overrides model marker",
			modelReply:  "Nothing to worry about.\n\nUrgency: LOW",
			userMessage: "I have severe chest pain and can't breathe",
			want:        UrgencyEmergency,
		},
		{
			name:        "keyword fires without any marker",
			modelReply:  "Tell me more about when this started.",
			userMessage: "I have severe chest pain and can't breathe",
			want:        UrgencyEmergency,
		},
		{
			name:        "keyword is case-insensitive",
			modelReply:  "Urgency: LOW",
			userMessage: "There is BLOOD in my cough",
			want:        UrgencyEmergency,
		},
		{
			name:        "suicide keyword",
			modelReply:  "",
			userMessage: "sometimes I think about suicide",
			want:        UrgencyEmergency,
		},
		{
			name:        "seizure keyword",
			modelReply:  "Urgency: MEDIUM",
			userMessage: "my son had a seizure this morning",
			want:        UrgencyEmergency,
		},
		{
			name:        "keyword in reply does not trigger override",
			modelReply:  "Chest pain can be serious. Urgency: MEDIUM",
			userMessage: "my arm feels numb",
			want:        UrgencyMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyUrgency(tt.modelReply, tt.userMessage)
			if got != tt.want {
				t.Errorf("ClassifyUrgency() = %s, want %s", got, tt.want)
			}
			if !got.IsValid() {
				t.Errorf("ClassifyUrgency() returned invalid level %q", got)
			}
		})
	}
}

func TestClassifyUrgencyDeterministic(t *testing.T) {
	reply := "See a doctor soon. Urgency: HIGH"
	msg := "dizzy spells for a week"

	first := ClassifyUrgency(reply, msg)
	for i := 0; i < 10; i++ {
		if got := ClassifyUrgency(reply, msg); got != first {
			t.Fatalf("classification not deterministic: %s vs %s", got, first)
		}
	}
}

func TestUrgencyAtLeast(t *testing.T) {
	if !UrgencyEmergency.AtLeast(UrgencyHigh) {
		t.Error("EMERGENCY should be at least HIGH")
	}
	if !UrgencyMedium.AtLeast(UrgencyMedium) {
		t.Error("MEDIUM should be at least MEDIUM")
	}
	if UrgencyLow.AtLeast(UrgencyMedium) {
		t.Error("LOW should not be at least MEDIUM")
	}
}
