package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	trackingCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// GenerateTrackingCode gera o código impresso no comprovante da encomenda (sem 0/O e 1/I)
func GenerateTrackingCode() (string, error) {
	code, err := gonanoid.Generate(trackingCharacters, 8)
	if err != nil {
		return "", err
	}
	return "ENC-" + code, nil
}
