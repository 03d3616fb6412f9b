package utils

import (
	"log"
	"os"
	"strconv"
)

var (
	JWTSecretKey      string
	JWTExpirationTime int64 // seconds
)

// InitJWT loads the token signing configuration. Test runs fall back
// to fixed values so suites need no environment setup.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" {
		setDefaultEnv("JWT_SECRET_KEY", "test_secret_key")
		setDefaultEnv("JWT_EXPIRATION_TIME", "3600")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY not set")
	}

	expiration, err := strconv.ParseInt(os.Getenv("JWT_EXPIRATION_TIME"), 10, 64)
	if err != nil || expiration <= 0 {
		log.Fatal("JWT_EXPIRATION_TIME must be a positive number of seconds")
	}
	JWTExpirationTime = expiration
}

func setDefaultEnv(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}
