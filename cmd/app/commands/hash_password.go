package commands

import (
	"fmt"
	"io"
	"os"

	authService "github.com/prabhanjangururaj/records-vault/internal/auth/service"
)

// RunHashPassword hashes a plaintext password for use in the AUTH_USERS
// configuration. The hash is printed to stdout.
func RunHashPassword(password string) error {
	return hashPassword(authService.NewPasswordService(), os.Stdout, password)
}

// hashPassword validates the input and writes the Argon2id hash.
func hashPassword(passwords authService.PasswordService, out io.Writer, password string) error {
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintln(out, hash)
	return nil
}
