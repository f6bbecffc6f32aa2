package service

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"reviewhub/pkg/logger"
)

// qrSize is the side length in pixels of the generated PNG.
const qrSize = 300

// QRService encodes the deterministic per-client review URL as a QR image.
// It is a pure function of the configured base URL and the client id; it does
// not consult the store.
type QRService struct {
	BaseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Generate returns PNG bytes and the encoded URL for clientID, using the
// highest error-correction level so the code survives print wear.
func (s *QRService) Generate(clientID string) ([]byte, string, error) {
	url := s.BaseURL + "/review/" + clientID
	png, err := qrcode.Encode(url, qrcode.Highest, qrSize)
	if err != nil {
		logger.Sugar.Errorf("Failed to encode QR for %s: %v", clientID, err)
		return nil, "", err
	}
	return png, url, nil
}
