package gemini

import "testing"

func TestNewKeyring(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{name: "empty", raw: "", want: 0},
		{name: "single", raw: "key-a", want: 1},
		{name: "comma_separated", raw: "key-a,key-b,key-c", want: 3},
		{name: "whitespace_trimmed", raw: " key-a , key-b ", want: 2},
		{name: "blank_entries_dropped", raw: "key-a,,key-b,", want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kr := NewKeyring(tc.raw)
			if got := kr.Size(); got != tc.want {
				t.Fatalf("NewKeyring(%q).Size()=%d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestKeyringPickEmpty(t *testing.T) {
	kr := NewKeyring("")
	if kr.Configured() {
		t.Fatal("empty keyring reports configured")
	}
	if got := kr.Pick(); got != "" {
		t.Fatalf("Pick() on empty keyring = %q, want empty sentinel", got)
	}
}

func TestKeyringPickStaysInSet(t *testing.T) {
	kr := NewKeyring("a,b,c")
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		k := kr.Pick()
		if k != "a" && k != "b" && k != "c" {
			t.Fatalf("Pick() returned %q, not in configured set", k)
		}
		seen[k] = true
	}
	// Uniform selection over 200 draws should hit every key.
	if len(seen) != 3 {
		t.Fatalf("200 picks hit %d of 3 keys", len(seen))
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence_no_lang", raw: "```\n[1,2]\n```", want: "[1,2]"},
		{name: "surrounding_whitespace", raw: "  \n{\"a\":1}\n ", want: `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.raw); got != tc.want {
				t.Fatalf("ExtractJSON(%q)=%q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
