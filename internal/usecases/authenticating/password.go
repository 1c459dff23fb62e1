package authenticating

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allChars     = lowerChars + upperChars + numberChars + specialChars

	minPasswordLength = 8
)

// generateStrongPassword garante ao menos um caractere de cada classe e embaralha o resultado
func generateStrongPassword(length int) (string, error) {
	length = max(length, minPasswordLength)

	password := make([]byte, 0, length)
	for _, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		c, err := randomChar(charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for i := len(password) - 1; i > 0; i-- {
		j, err := randomInt(int64(i + 1))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func randomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// passwordStrengthError devolve a primeira regra não atendida, ou "" se a senha for forte
func passwordStrengthError(password string) string {
	if len(password) < minPasswordLength {
		return "a senha deve conter pelo menos 8 caracteres"
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return "a senha deve conter pelo menos uma letra maiúscula"
	case !hasLower:
		return "a senha deve conter pelo menos uma letra minúscula"
	case !hasNumber:
		return "a senha deve conter pelo menos um número"
	case !hasSpecial:
		return "a senha deve conter pelo menos um caractere especial"
	}
	return ""
}
