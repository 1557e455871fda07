package logger_test

import (
	"testing"

	"github.com/arthurssantosibm/api-client/internal/logger"
)

func TestSanitizePayloadMasksSensitiveKeys(t *testing.T) {
	payload := map[string]any{
		"email": "diego@x.com",
		"senha": "s3nh4",
		"nested": map[string]any{
			"access_token": "abc",
			"telefone":     "11999990000",
		},
	}

	sanitized, ok := logger.SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", logger.SanitizePayload(payload))
	}

	if sanitized["senha"] != "******" {
		t.Fatalf("senha not masked: %v", sanitized["senha"])
	}
	if sanitized["email"] != "diego@x.com" {
		t.Fatalf("email must not be masked: %v", sanitized["email"])
	}

	nested, ok := sanitized["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", sanitized["nested"])
	}
	if nested["access_token"] != "******" {
		t.Fatalf("access_token not masked: %v", nested["access_token"])
	}
	if nested["telefone"] != "11999990000" {
		t.Fatalf("telefone must not be masked: %v", nested["telefone"])
	}
}

func TestSanitizePayloadMasksStructFields(t *testing.T) {
	payload := struct {
		Nome  string `json:"nome"`
		Senha string `json:"senha"`
	}{Nome: "Diego", Senha: "s3nh4"}

	sanitized, ok := logger.SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", logger.SanitizePayload(payload))
	}
	if sanitized["senha"] != "******" || sanitized["nome"] != "Diego" {
		t.Fatalf("unexpected sanitized payload: %v", sanitized)
	}
}
