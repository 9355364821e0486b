package security

import (
	"crypto/rand"
	"fmt"
)

// Alphabet for confirmation codes. Ambiguous characters (0/O, 1/I/L) are
// excluded because the codes are read aloud at the physical meeting.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 6

// GenerateCode returns a short unpredictable confirmation code.
func GenerateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// GenerateCodePair returns distinct handover and return codes. The two codes
// must never be equal: each authorizes a different transition.
func GenerateCodePair() (handover, ret string, err error) {
	handover, err = GenerateCode()
	if err != nil {
		return "", "", err
	}
	for {
		ret, err = GenerateCode()
		if err != nil {
			return "", "", err
		}
		if ret != handover {
			return handover, ret, nil
		}
	}
}
