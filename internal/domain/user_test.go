package domain

import "testing"

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Ada Lovelace":     "AL",
		"  grace   hopper": "gh",
		"Cher":             "C",
		"":                 "U",
		"   ":              "U",
	}
	for name, want := range tests {
		u := &User{Name: name}
		if got := u.Initials(); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", name, got, want)
		}
	}

	var nilUser *User
	if got := nilUser.Initials(); got != "U" {
		t.Fatalf("nil user initials = %q, want U", got)
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark {
		t.Fatal("light should toggle to dark")
	}
	if ThemeDark.Toggle() != ThemeLight {
		t.Fatal("dark should toggle to light")
	}
	if Theme("sepia").IsValid() {
		t.Fatal("sepia is not a theme")
	}
}
