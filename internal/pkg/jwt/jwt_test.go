package jwt

import (
	"strings"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Secret:   "test-secret",
		Issuer:   "supportdesk",
		Audience: "supportdesk-clients",
		TTL:      time.Hour,
	}
}

func TestLoadAndBuildRequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	if _, err := LoadAndBuild(cfg); err == nil {
		t.Fatal("LoadAndBuild with empty secret, want error")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	mgr, err := LoadAndBuild(testConfig())
	if err != nil {
		t.Fatalf("LoadAndBuild: %v", err)
	}

	token, jti, err := mgr.Generator.GenerateAccessToken("jane@example.com", "cust-1", "Jane")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if jti == "" {
		t.Error("GenerateAccessToken returned empty jti")
	}

	claims, err := mgr.Verifier.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.Email() != "jane@example.com" {
		t.Errorf("Email() = %q, want %q", claims.Email(), "jane@example.com")
	}
	if claims.CustomerID != "cust-1" {
		t.Errorf("CustomerID = %q, want %q", claims.CustomerID, "cust-1")
	}
	if claims.Name != "Jane" {
		t.Errorf("Name = %q, want %q", claims.Name, "Jane")
	}
	if claims.SessionPurpose != "access" {
		t.Errorf("SessionPurpose = %q, want %q", claims.SessionPurpose, "access")
	}
	if claims.ID != jti {
		t.Errorf("claims.ID = %q, want jti %q", claims.ID, jti)
	}
}

func TestVerifyRejections(t *testing.T) {
	cfg := testConfig()
	mgr, err := LoadAndBuild(cfg)
	if err != nil {
		t.Fatalf("LoadAndBuild: %v", err)
	}

	sign := func(gen *Generator, purpose string, ttl time.Duration) string {
		t.Helper()
		token, _, err := gen.Generate("jane@example.com", "cust-1", "Jane", purpose, ttl)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return token
	}

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{
			name:    "garbage input",
			token:   "not.a.token",
			wantErr: "failed to parse",
		},
		{
			name:    "expired token",
			token:   sign(mgr.Generator, "access", -time.Minute),
			wantErr: "expired",
		},
		{
			name:    "wrong signing secret",
			token:   sign(NewGenerator([]byte("other-secret"), cfg.Issuer, cfg.Audience, time.Hour), "access", time.Hour),
			wantErr: "failed to parse",
		},
		{
			name:    "wrong issuer",
			token:   sign(NewGenerator([]byte(cfg.Secret), "someone-else", cfg.Audience, time.Hour), "access", time.Hour),
			wantErr: "invalid issuer",
		},
		{
			name:    "wrong audience",
			token:   sign(NewGenerator([]byte(cfg.Secret), cfg.Issuer, "other-clients", time.Hour), "access", time.Hour),
			wantErr: "invalid audience",
		},
		{
			name:    "non-access purpose",
			token:   sign(mgr.Generator, "ws", time.Hour),
			wantErr: "not an access token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mgr.Verifier.VerifyAccessToken(tt.token)
			if err == nil {
				t.Fatal("VerifyAccessToken succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyAcceptsNonAccessPurpose(t *testing.T) {
	mgr, err := LoadAndBuild(testConfig())
	if err != nil {
		t.Fatalf("LoadAndBuild: %v", err)
	}

	token, _, err := mgr.Generator.Generate("jane@example.com", "cust-1", "Jane", "ws", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := mgr.Verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.SessionPurpose != "ws" {
		t.Errorf("SessionPurpose = %q, want %q", claims.SessionPurpose, "ws")
	}
}
