package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestVerifierFor_MatchesManualPipeline(t *testing.T) {
	password := []byte("pw")
	salt := []byte("salt")

	want := MakeVerifier(DeriveKey(password, salt))
	got := VerifierFor(password, salt)

	if !Equal(want, got) {
		t.Fatalf("verifier mismatch")
	}
	if len(got) != 32 {
		t.Fatalf("expected sha256 length, got %d", len(got))
	}
}

func TestEqual(t *testing.T) {
	if !Equal([]byte{1, 2, 3}, []byte{1, 2, 3}) {
		t.Fatal("equal slices reported different")
	}
	if Equal([]byte{1, 2, 3}, []byte{1, 2, 4}) {
		t.Fatal("different slices reported equal")
	}
	if Equal([]byte{1, 2}, []byte{1, 2, 3}) {
		t.Fatal("different lengths reported equal")
	}
}
