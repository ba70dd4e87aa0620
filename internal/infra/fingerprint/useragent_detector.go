// Package fingerprint describes the local device from its user agent.
package fingerprint

import (
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"devicestore/config"
	"devicestore/internal/domain/entity"
	"devicestore/internal/domain/service"

	"github.com/mssola/useragent"
)

const unknownName = "Unknown"

type userAgentDetector struct {
	userAgent string
}

// NewUserAgentDetector returns a fingerprinter for the user agent in cfg.Device.
func NewUserAgentDetector(cfg *config.Config) service.DeviceFingerprinter {
	var ua string
	if cfg.Device != nil {
		ua = strings.TrimSpace(cfg.Device.UserAgent)
	}

	return &userAgentDetector{userAgent: ua}
}

// Detect parses the configured user agent. Without one it falls back to the
// host operating system.
func (d *userAgentDetector) Detect() entity.DeviceFingerprint {
	if d.userAgent == "" {
		return entity.DeviceFingerprint{
			Name: unknownName,
			OS:   runtime.GOOS,
		}
	}

	parsed := useragent.New(d.userAgent)
	name, _ := parsed.Browser()
	if name == "" {
		name = unknownName
	}

	os := parsed.OS()
	if os == "" {
		os = runtime.GOOS
	}

	return entity.DeviceFingerprint{
		Name:      capitalize(name),
		OS:        os,
		UserAgent: d.userAgent,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
