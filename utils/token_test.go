package utils

import "testing"

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	subject, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if subject != "alice" {
		t.Errorf("subject: got %q, want %q", subject, "alice")
	}
}

func TestParseTokenTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token + "x"); err == nil {
		t.Error("tampered token was accepted")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestParseTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "-1")

	token, err := GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseToken(token); err == nil {
			t.Errorf("garbage token %q was accepted", token)
		}
	}
}
