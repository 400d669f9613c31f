package maplinks

import "testing"

// --- Tests ---

func TestNormalizeQuery(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "Diacritics Removed",
			input: "Wrocław",
			want:  "wroclaw",
		},
		{
			name:  "Lowercased And Trimmed",
			input: "  Empire State Building ",
			want:  "empire state building",
		},
		{
			name:  "Already Normalized",
			input: "london",
			want:  "london",
		},
		{
			name:  "Mixed Accents",
			input: "Château de Versailles",
			want:  "chateau de versailles",
		},
		{
			name:    "Invalid UTF-8",
			input:   string([]byte{0xff, 0xfe}),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeQuery(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("unexpected result. got %q, want %q", got, tc.want)
			}
		})
	}
}
