package fields

import "testing"

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain address",
			text: "Reach me at jane.doe@example.com anytime",
			want: "jane.doe@example.com",
		},
		{
			name: "lowercased",
			text: "Contact: John.Doe@Example.COM",
			want: "john.doe@example.com",
		},
		{
			name: "first valid wins over earlier invalid",
			text: "bad..mail@x.com then good@mail.co",
			want: "good@mail.co",
		},
		{
			name: "plus tag and digits",
			text: "dev+hiring2024@company.io",
			want: "dev+hiring2024@company.io",
		},
		{
			name: "no email",
			text: "ten years of backend experience",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Email(tt.text); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"a@b", false},
		{"a..b@x.com", false},
		{".lead@x.com", false},
		{"trail@x.com.", false},
		{"x@.com", false},
		{"a@c", false},
	}

	for _, tt := range tests {
		if got := validEmail(tt.email); got != tt.want {
			t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
