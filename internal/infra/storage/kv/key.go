package kv

import "fmt"

const maxKeyLength = 128

// validateKey допускает латиницу, цифры, '_', '-' и '.'
// Ключ используется как имя файла, поэтому разделители пути запрещены
func validateKey(key string) error {
	if key == "" || len(key) > maxKeyLength {
		return fmt.Errorf("%w: length must be 1..%d, got %d", ErrInvalidKey, maxKeyLength, len(key))
	}
	if key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.':
		default:
			return fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidKey, r, key)
		}
	}
	return nil
}
