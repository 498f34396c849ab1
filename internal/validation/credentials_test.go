package validation

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Passw0rd", false},
		{"too short", "Sh0rt!pw", true},
		{"too long", strings.Repeat("Aa1!", 40), true},
		{"no uppercase", "all-l0wercase!pw", true},
		{"no lowercase", "ALL-UPPERC4SE!PW", true},
		{"no digit", "NoDigitsHere!!!", true},
		{"no special", "NoSpecial12345ab", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.password)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.password, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "nova_42", false},
		{"valid with hyphen", "super-nova", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 31), true},
		{"invalid characters", "nova!42", true},
		{"spaces", "nova 42", true},
		{"leading underscore", "_nova", true},
		{"trailing hyphen", "nova-", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.username)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.username)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.username, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "nova@example.com", false},
		{"subdomain", "nova@mail.example.co", false},
		{"plus tag", "nova+tag@example.com", false},
		{"missing at", "nova.example.com", true},
		{"missing tld", "nova@example", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 250) + "@example.com", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEmail(tc.email)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.email)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.email, err)
			}
		})
	}
}
