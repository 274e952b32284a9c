package validators

import "testing"

func TestIsEmailFormatValid(t *testing.T) {
	valid := []string{
		"guest@example.com",
		"first.last@mail.example.co",
		"a+tag@domain.io",
	}
	for _, e := range valid {
		if !IsEmailFormatValid(e) {
			t.Fatalf("valid email %q rejected", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"guest@",
		"guest@localhost",
		"gu est@example.com",
	}
	for _, e := range invalid {
		if IsEmailFormatValid(e) {
			t.Fatalf("invalid email %q accepted", e)
		}
	}
}
