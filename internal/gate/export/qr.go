package export

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// BadgeSize is the edge length in pixels of a resident badge.
const BadgeSize = 256

// QRBadge encodes a resident ID as a PNG QR code the terminal can scan.
func QRBadge(residentID string) ([]byte, error) {
	png, err := qrcode.Encode(residentID, qrcode.Medium, BadgeSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr badge %s: %w", residentID, err)
	}
	return png, nil
}

// QRFileName is the download name for a resident badge.
func QRFileName(residentID string) string {
	return "QRCode_" + residentID + ".png"
}
