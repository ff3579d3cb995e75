package security

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errAlphabetSize   = errors.New("alphabet must hold between 1 and 256 bytes")
)

// RandomString draws length bytes from alphabet using crypto/rand. Bytes above
// the largest multiple of len(alphabet) are rejected so every symbol is
// equally likely.
func RandomString(length int, alphabet string) (string, error) {
	return randomStringFrom(rand.Reader, length, alphabet)
}

func randomStringFrom(source io.Reader, length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errAlphabetSize
	}
	if length == 0 {
		return "", nil
	}

	size := len(alphabet)
	ceiling := 256 - 256%size
	result := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(result) < length {
		if _, err := io.ReadFull(source, buffer); err != nil {
			return "", err
		}
		for _, value := range buffer {
			if int(value) >= ceiling {
				continue
			}
			result = append(result, alphabet[int(value)%size])
			if len(result) == length {
				break
			}
		}
	}
	return string(result), nil
}
