package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"ACTIVE", "INACTIVE"}
	if !IsInSlice("ACTIVE", statuses) {
		t.Error(`IsInSlice("ACTIVE") = false, want true`)
	}
	if IsInSlice("active", statuses) {
		t.Error(`IsInSlice("active") = true, want false`)
	}
	if IsInSlice("", nil) {
		t.Error(`IsInSlice("", nil) = true, want false`)
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		if !IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = false, want true", month)
		}
	}
	for _, month := range []int{0, 13, -1, 100} {
		if IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = true, want false", month)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["name"] != "is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
