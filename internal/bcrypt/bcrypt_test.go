package bcrypt

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "password"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		t.Fatalf("password comparison failed: %v", err)
	}

	c, _ := bcrypt.Cost([]byte(hash))
	if c != bcrypt.DefaultCost {
		t.Fatalf("expected cost %d, got %d", bcrypt.DefaultCost, c)
	}
}

func TestComparePassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)

	if err := ComparePassword("test-password", string(hash)); err != nil {
		t.Fatal(err)
	}

	if err := ComparePassword("wrong-password", string(hash)); err == nil {
		t.Fatal("expected error, got nil")
	}
}
