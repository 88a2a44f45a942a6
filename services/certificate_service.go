package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"planet-cred-api/storage"
)

// CertificateService renders approval certificates and files them in object
// storage. Regeneration for the same submission overwrites the prior
// artifact, so repeated approval attempts cannot pile up duplicates.
type CertificateService struct {
	store storage.Store
	now   func() time.Time
}

func NewCertificateService(store storage.Store) *CertificateService {
	return &CertificateService{store: store, now: time.Now}
}

// Generate renders the certificate SVG for a submission and uploads it keyed
// by owner and submission ID. It returns the public URL of the stored
// artifact.
func (s *CertificateService) Generate(ctx context.Context, ownerUserID int, submissionID, displayName, missionTitle string) (string, error) {
	svg := renderCertificateSVG(displayName, missionTitle, s.now())

	key := fmt.Sprintf("certificates/%d/%s.svg", ownerUserID, submissionID)
	url, err := s.store.Put(ctx, key, "image/svg+xml", strings.NewReader(svg))
	if err != nil {
		return "", wrapError(KindGenerationFailed, "Failed to upload certificate", err)
	}
	return url, nil
}

// renderCertificateSVG fills the fixed certificate layout. The output is a
// pure function of the recipient name, the mission title and the issue date.
func renderCertificateSVG(displayName, missionTitle string, issuedAt time.Time) string {
	date := issuedAt.Format("January 2, 2006")

	return fmt.Sprintf(`<svg width="800" height="600" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="600" fill="#f8f9fa"/>
  <rect x="20" y="20" width="760" height="560" fill="white" stroke="#22c55e" stroke-width="4"/>
  <rect x="40" y="40" width="720" height="520" fill="white" stroke="#22c55e" stroke-width="2"/>

  <text x="400" y="100" font-family="Arial, sans-serif" font-size="48" font-weight="bold" fill="#22c55e" text-anchor="middle">
    CERTIFICATE OF ACHIEVEMENT
  </text>

  <text x="400" y="180" font-family="Arial, sans-serif" font-size="20" fill="#666" text-anchor="middle">
    This is to certify that
  </text>

  <text x="400" y="250" font-family="Arial, sans-serif" font-size="36" font-weight="bold" fill="#333" text-anchor="middle">
    %s
  </text>

  <text x="400" y="320" font-family="Arial, sans-serif" font-size="20" fill="#666" text-anchor="middle">
    has successfully completed the climate action mission
  </text>

  <text x="400" y="380" font-family="Arial, sans-serif" font-size="28" font-weight="bold" fill="#22c55e" text-anchor="middle">
    %s
  </text>

  <text x="400" y="450" font-family="Arial, sans-serif" font-size="18" fill="#999" text-anchor="middle">
    Date: %s
  </text>

  <text x="400" y="520" font-family="Arial, sans-serif" font-size="24" font-weight="bold" fill="#333" text-anchor="middle">
    Planet Cred Climate Action
  </text>
</svg>`, escapeXML(displayName), escapeXML(missionTitle), escapeXML(date))
}

func escapeXML(s string) string {
	var b strings.Builder
	// xml.EscapeText only fails on a failing writer; strings.Builder never does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
