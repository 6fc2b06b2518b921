package utils

import (
	"crypto/rand"
	"math/big"
)

// alphabet for generated provisioning passwords, ambiguous glyphs excluded
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%"

func GeneratePassword(length int) (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))

	password := make([]byte, length)
	for i := range password {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = passwordAlphabet[num.Int64()]
	}

	return string(password), nil
}
