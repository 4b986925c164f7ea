package fields

import "testing"

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare ten digits get default country code",
			text: "You can call 9876543210 during office hours",
			want: "+919876543210",
		},
		{
			name: "labeled number",
			text: "Phone: 9876543210",
			want: "+919876543210",
		},
		{
			name: "country code preserved",
			text: "+91 9876543210",
			want: "+919876543210",
		},
		{
			name: "separated groups",
			text: "Call 123-456-7890 now",
			want: "+911234567890",
		},
		{
			name: "international 00 prefix",
			text: "Tel: 00441234567890",
			want: "+441234567890",
		},
		{
			name: "all same digit rejected",
			text: "0000000000",
			want: "",
		},
		{
			name: "too short",
			text: "ext 12345",
			want: "",
		},
		{
			name: "no number",
			text: "available on request",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Phone(tt.text); got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCleanPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "+919876543210"},
		{"+91 98765 43210", "+919876543210"},
		{"0091 9876543210", "+919876543210"},
		{"mobile 9876543210", ""},
		{"+91+98 7654 3210", ""},
		{"1111111111", ""},
		{"987654321", ""},
		{"+4412345678901234", ""},
		{"441234567890", "+441234567890"},
	}

	for _, tt := range tests {
		if got := CleanPhone(tt.in); got != tt.want {
			t.Errorf("CleanPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
