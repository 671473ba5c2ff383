package validate_test

import (
	"strings"
	"testing"

	"github.com/shashiranjanraj/storerating/pkg/validate"
)

type signupInput struct {
	Name     string `json:"name"     validate:"required,between=20,60"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"  validate:"nullable,max=400"`
	Password string `json:"password" validate:"required,between=8,16,password"`
	Role     string `json:"role"     validate:"required,in=admin|store_owner|normal_user"`
}

func validSignup() signupInput {
	return signupInput{
		Name:     "Jonathan Doe The Second",
		Email:    "jon@example.com",
		Password: "Secret#123",
		Role:     "normal_user",
	}
}

func TestValidInput(t *testing.T) {
	if errs := validate.Struct(validSignup()); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(signupInput{})
	for _, f := range []string{"name", "email", "password", "role"} {
		if _, ok := errs[f]; !ok {
			t.Errorf("expected %s to be required", f)
		}
	}
	if _, ok := errs["address"]; ok {
		t.Error("nullable address should be skipped when empty")
	}
}

func TestNameLengthBounds(t *testing.T) {
	in := validSignup()
	in.Name = "Too Short"
	if errs := validate.Struct(in); errs["name"] == "" {
		t.Error("expected short name to fail")
	}
	in.Name = strings.Repeat("a", 61)
	if errs := validate.Struct(in); errs["name"] == "" {
		t.Error("expected 61-char name to fail")
	}
	in.Name = strings.Repeat("é", 60)
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("60 runes should pass, got: %v", errs)
	}
}

func TestAddressMax(t *testing.T) {
	in := validSignup()
	in.Address = strings.Repeat("x", 401)
	if errs := validate.Struct(in); errs["address"] == "" {
		t.Error("expected 401-char address to fail")
	}
}

func TestPasswordRule(t *testing.T) {
	cases := map[string]bool{
		"Secret#123":        true,
		"secret#123":        false, // no uppercase
		"Secret1234":        false, // no special
		"S#1":               false, // too short
		"Secret#1234567890": false, // 17 chars
	}
	for pw, ok := range cases {
		in := validSignup()
		in.Password = pw
		_, failed := validate.Struct(in)["password"]
		if failed == ok {
			t.Errorf("password %q: want valid=%v", pw, ok)
		}
	}
}

func TestInRule(t *testing.T) {
	in := validSignup()
	in.Role = "superuser"
	if errs := validate.Struct(in); errs["role"] == "" {
		t.Error("expected unknown role to fail")
	}
}

func TestEmailRule(t *testing.T) {
	in := validSignup()
	in.Email = "not-an-email"
	if errs := validate.Struct(in); errs["email"] == "" {
		t.Error("expected email validation error")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Rating int `json:"rating" validate:"required,between=1,5"`
	}
	if errs := validate.Struct(in{Rating: 6}); !validate.HasErrors(errs) {
		t.Error("expected 6 to fail")
	}
	if errs := validate.Struct(in{Rating: 5}); validate.HasErrors(errs) {
		t.Errorf("expected 5 to pass, got: %v", errs)
	}
}
