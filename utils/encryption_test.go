package utils

import (
	"encoding/base64"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef" // 32 raw bytes

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := "sig_4f2a9b"

	sealed, err := EncryptData(testKey, plaintext)
	if err != nil {
		t.Fatalf("EncryptData() error = %v", err)
	}
	if sealed == plaintext {
		t.Fatal("ciphertext must differ from plaintext")
	}

	opened, err := DecryptData(testKey, sealed)
	if err != nil {
		t.Fatalf("DecryptData() error = %v", err)
	}
	if opened != plaintext {
		t.Errorf("round trip = %q, want %q", opened, plaintext)
	}
}

func TestEncryptAcceptsBase64Key(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte(testKey))

	sealed, err := EncryptData(key, "hello")
	if err != nil {
		t.Fatalf("EncryptData() error = %v", err)
	}
	opened, err := DecryptData(key, sealed)
	if err != nil {
		t.Fatalf("DecryptData() error = %v", err)
	}
	if opened != "hello" {
		t.Errorf("round trip = %q, want hello", opened)
	}
}

func TestEncryptRejectsBadKey(t *testing.T) {
	if _, err := EncryptData("short", "data"); err == nil {
		t.Error("expected error for a key that is not 32 bytes")
	}
	if _, err := EncryptData("", "data"); err == nil {
		t.Error("expected error for an empty key")
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	sealed, err := EncryptData(testKey, "payload")
	if err != nil {
		t.Fatalf("EncryptData() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		t.Fatalf("ciphertext is not base64: %v", err)
	}
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := DecryptData(testKey, tampered); err == nil {
		t.Error("expected tampered ciphertext to fail authentication")
	}
}

func TestEmptyDataPassesThrough(t *testing.T) {
	sealed, err := EncryptData(testKey, "")
	if err != nil || sealed != "" {
		t.Errorf("EncryptData(\"\") = %q, %v; want empty, nil", sealed, err)
	}
	opened, err := DecryptData(testKey, "")
	if err != nil || opened != "" {
		t.Errorf("DecryptData(\"\") = %q, %v; want empty, nil", opened, err)
	}
}
