package scoring

import "strings"

// Platform identifies the publishing target whose length norms apply.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformShorts    Platform = "shorts"
	PlatformYouTube   Platform = "youtube"
)

// ParsePlatform normalizes a raw platform name. Unknown values map to
// TikTok so short-form norms apply by default.
func ParsePlatform(raw string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case PlatformInstagram:
		return PlatformInstagram
	case PlatformShorts:
		return PlatformShorts
	case PlatformYouTube:
		return PlatformYouTube
	default:
		return PlatformTikTok
	}
}

// LengthBand is the recommended word-count range for a platform.
type LengthBand struct {
	Min     int `yaml:"min" json:"min"`
	Max     int `yaml:"max" json:"max"`
	Optimal int `yaml:"optimal" json:"optimal"`
}

// Bands maps platforms to their length bands.
type Bands map[Platform]LengthBand

// DefaultBands returns the built-in platform length bands. Short-form
// platforms share one band; YouTube gets the long-form band.
func DefaultBands() Bands {
	shortForm := LengthBand{Min: 50, Max: 150, Optimal: 100}
	return Bands{
		PlatformTikTok:    shortForm,
		PlatformInstagram: shortForm,
		PlatformShorts:    shortForm,
		PlatformYouTube:   {Min: 150, Max: 300, Optimal: 200},
	}
}

// Band resolves the length band for a platform, defaulting to the TikTok
// short-form band for unknown platforms.
func (b Bands) Band(p Platform) LengthBand {
	if band, ok := b[p]; ok {
		return band
	}
	if band, ok := b[PlatformTikTok]; ok {
		return band
	}
	return LengthBand{Min: 50, Max: 150, Optimal: 100}
}
