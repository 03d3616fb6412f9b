package services

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"main/utils"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	argonMemory      = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonKeyLength   = 32
	argonSaltLength  = 16
)

var ErrWeakPassword = errors.New("password must be at least 6 characters and contain a number and a special character")

// HashPassword derives an argon2id hash and returns it as
// "salt$hash", both parts base64 encoded.
func HashPassword(password string) (string, error) {
	if !utils.ValidatePassword(password) {
		return "", ErrWeakPassword
	}

	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	return base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassword re-derives the hash from the stored salt and compares.
func VerifyPassword(storedPassword, providedPassword string) (bool, error) {
	encodedSalt, encodedHash, found := strings.Cut(storedPassword, "$")
	if !found {
		return false, errors.New("invalid stored password format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return false, err
	}
	storedHash, err := base64.RawStdEncoding.DecodeString(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(providedPassword), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)
	return bytes.Equal(computed, storedHash), nil
}

// ComparePasswords reports whether the plain password matches the
// stored hash, swallowing format errors as a mismatch.
func ComparePasswords(storedHash, plainPassword string) bool {
	match, err := VerifyPassword(storedHash, plainPassword)
	if err != nil {
		return false
	}
	return match
}
