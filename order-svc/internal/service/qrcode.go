package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

// Generate encodes the public status URL of the order as a PNG.
func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/orders/%s", strings.TrimRight(g.BaseURL, "/"), orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
