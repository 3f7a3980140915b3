package tests

import (
	"strings"
	"testing"

	crypt "github.com/IvanChernomyrdin/go-bmi-tracker/internal/server/crypto"
)

func testParams() crypt.Argon2Params {
	// лёгкие параметры, чтобы тесты не тормозили
	return crypt.Argon2Params{
		Time:      1,
		MemoryKiB: 16 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

// Успех: хэш проходит проверку тем же паролем
func TestHashAndVerifyPassword_OK(t *testing.T) {
	t.Parallel()

	encoded, err := crypt.HashPassword("StrongPass123", testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(encoded, "argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}

	ok, err := crypt.VerifyPassword("StrongPass123", encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}
}

// Неверный пароль не проходит
func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	encoded, err := crypt.HashPassword("StrongPass123", testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := crypt.VerifyPassword("WrongPass456", encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected password to NOT verify")
	}
}

// Соль случайная: два хэша одного пароля различаются
func TestHashPassword_UniqueSalt(t *testing.T) {
	t.Parallel()

	h1, err := crypt.HashPassword("StrongPass123", testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := crypt.HashPassword("StrongPass123", testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected different hashes for the same password")
	}
}

// Пустой пароль — ошибка
func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	if _, err := crypt.HashPassword("   ", testParams()); err == nil {
		t.Fatal("expected error for empty password")
	}
}

// Битый формат хэша — ошибка
func TestVerifyPassword_BadFormat(t *testing.T) {
	t.Parallel()

	if _, err := crypt.VerifyPassword("pw", "not-a-hash"); err == nil {
		t.Fatal("expected error for bad hash format")
	}
}
