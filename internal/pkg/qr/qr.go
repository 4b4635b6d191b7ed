// Package qr generates the identification QR codes handed to students at
// registration. The image payload is the student's identificacion; readers
// at the vehicle scan it back for ticket redemption.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256 // pixels, square

// Generator encodes identifier strings as PNG QR codes.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a PNG image encoding data.
func (g *Generator) Generate(data string) ([]byte, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
