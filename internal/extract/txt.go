package extract

import (
	"os"
)

// TXTExtractor reads plain text files as-is.
type TXTExtractor struct{}

func (e *TXTExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
