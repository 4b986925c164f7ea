package match

import "testing"

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate []string
		required  []string
		want      int
	}{
		{
			name:      "half match rounds",
			candidate: []string{"Go", "Docker"},
			required:  []string{"Go", "Kubernetes", "Docker", "Terraform"},
			want:      50,
		},
		{
			name:      "case insensitive",
			candidate: []string{"PYTHON"},
			required:  []string{"python"},
			want:      100,
		},
		{
			name:      "substring either direction",
			candidate: []string{"PostgreSQL"},
			required:  []string{"SQL"},
			want:      100,
		},
		{
			name:      "required contains candidate",
			candidate: []string{"React"},
			required:  []string{"React Native"},
			want:      100,
		},
		{
			name:      "no required skills",
			candidate: []string{"Go"},
			required:  nil,
			want:      0,
		},
		{
			name:      "no candidate skills",
			candidate: nil,
			required:  []string{"Go"},
			want:      0,
		},
		{
			name:      "more candidate matches than required clamps at 100",
			candidate: []string{"Java", "JavaScript", "Java EE"},
			required:  []string{"Java"},
			want:      100,
		},
		{
			name:      "one of three rounds to 33",
			candidate: []string{"Go"},
			required:  []string{"Go", "Rust", "C"},
			want:      33,
		},
		{
			name:      "two of three rounds to 67",
			candidate: []string{"Go", "Rust"},
			required:  []string{"Go", "Rust", "Zig"},
			want:      67,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Percentage(tt.candidate, tt.required); got != tt.want {
				t.Errorf("Percentage(%v, %v) = %d, want %d", tt.candidate, tt.required, got, tt.want)
			}
		})
	}
}

func TestExperienceYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{"5 years", 5},
		{" 10+ years ", 10},
		{"three years", 0},
		{"", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		if got := ExperienceYears(tt.in); got != tt.want {
			t.Errorf("ExperienceYears(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestExperienceQualified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		candidate string
		job       string
		want      bool
	}{
		{"5", "5", true},
		{"4", "5", true},
		{"6", "5", true},
		{"3", "5", false},
		{"7 years", "5 years", false},
		{"", "", true},
		{"", "2", false},
	}
	for _, tt := range tests {
		if got := ExperienceQualified(tt.candidate, tt.job); got != tt.want {
			t.Errorf("ExperienceQualified(%q, %q) = %v, want %v", tt.candidate, tt.job, got, tt.want)
		}
	}
}
