package models_test

import (
	"testing"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
)

func TestCreateUserRequestValidate(t *testing.T) {
	valid := models.CreateUserRequest{
		Nome:     "Diego",
		Email:    "diego@x.com",
		Telefone: "11999990000",
		Senha:    "s3nh4",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]models.CreateUserRequest{
		"missing nome":     {Email: "diego@x.com", Telefone: "1", Senha: "x"},
		"missing telefone": {Nome: "Diego", Email: "diego@x.com", Senha: "x"},
		"missing senha":    {Nome: "Diego", Email: "diego@x.com", Telefone: "1"},
		"bad email":        {Nome: "Diego", Email: "diego", Telefone: "1", Senha: "x"},
		"email with space": {Nome: "Diego", Email: "di ego@x.com", Telefone: "1", Senha: "x"},
		"at at the end":    {Nome: "Diego", Email: "diego@", Telefone: "1", Senha: "x"},
	}

	for name, req := range cases {
		if err := req.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestUpdateUserRequestValidate(t *testing.T) {
	if err := (models.UpdateUserRequest{}).Validate(); err != nil {
		t.Fatalf("empty update must pass validation, got %v", err)
	}

	bad := "not-an-email"
	if err := (models.UpdateUserRequest{Email: &bad}).Validate(); err == nil {
		t.Fatal("expected validation error for invalid email")
	}
}

func TestReactivateRequestValidate(t *testing.T) {
	if err := (models.ReactivateRequest{Email: "diego@x.com"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (models.ReactivateRequest{Email: "@x.com"}).Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}
