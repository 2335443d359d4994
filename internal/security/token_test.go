package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMintAndDecode_Success(t *testing.T) {
	t.Parallel()

	codec, err := NewTokenCodec([]byte("super-secret"), "HS256")
	if err != nil {
		t.Fatalf("NewTokenCodec error: %v", err)
	}

	tok, err := codec.Mint("johndoe", time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	sub, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if sub != "johndoe" {
		t.Fatalf("subject mismatch: got %q want %q", sub, "johndoe")
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	codec, _ := NewTokenCodec([]byte("secret"), "HS256")

	tok, err := codec.Mint("u1", -1*time.Second)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	_, err = codec.Decode(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	right, _ := NewTokenCodec([]byte("right-secret"), "HS256")
	wrong, _ := NewTokenCodec([]byte("wrong-secret"), "HS256")

	tok, err := right.Mint("u2", time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	if _, err := wrong.Decode(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestDecode_MalformedString(t *testing.T) {
	t.Parallel()

	codec, _ := NewTokenCodec([]byte("k"), "HS256")
	if _, err := codec.Decode("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestMint_FallbackTTL(t *testing.T) {
	t.Parallel()

	codec, _ := NewTokenCodec([]byte("k"), "HS256")
	tok, err := codec.Mint("u3", 0)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}
	if _, err := codec.Decode(tok); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
}

func TestNewTokenCodec_RejectsAsymmetric(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenCodec([]byte("k"), "RS256"); err == nil {
		t.Fatalf("expected error for asymmetric algorithm, got nil")
	}
	if _, err := NewTokenCodec([]byte("k"), "bogus"); err == nil {
		t.Fatalf("expected error for unknown algorithm, got nil")
	}
}
