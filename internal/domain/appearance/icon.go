// Package appearance holds the closed sets of display tokens the admin UI
// can assign to catalog records. Values are stored as plain strings but are
// validated against these sets at the API boundary; the UI keeps its own
// lookup table mapping each token to a rendered icon or gradient.
package appearance

import "fmt"

// IconName identifies an icon from the client-side icon set
type IconName string

const (
	IconStar      IconName = "Star"
	IconSparkles  IconName = "Sparkles"
	IconCrown     IconName = "Crown"
	IconHeart     IconName = "Heart"
	IconFlame     IconName = "Flame"
	IconTrending  IconName = "TrendingUp"
	IconAward     IconName = "Award"
	IconZap       IconName = "Zap"
	IconFlower    IconName = "Flower2"
	IconGem       IconName = "Gem"
	IconGift      IconName = "Gift"
	IconCamera    IconName = "Camera"
	IconMusic     IconName = "Music"
	IconCalendar  IconName = "Calendar"
	IconMapPin    IconName = "MapPin"
	IconEnvelope  IconName = "Mail"
	IconRings     IconName = "CircleDot"
	IconBookOpen  IconName = "BookOpen"
	IconPalette   IconName = "Palette"
	IconSmartphone IconName = "Smartphone"
)

var validIcons = map[IconName]bool{
	IconStar: true, IconSparkles: true, IconCrown: true, IconHeart: true,
	IconFlame: true, IconTrending: true, IconAward: true, IconZap: true,
	IconFlower: true, IconGem: true, IconGift: true, IconCamera: true,
	IconMusic: true, IconCalendar: true, IconMapPin: true, IconEnvelope: true,
	IconRings: true, IconBookOpen: true, IconPalette: true, IconSmartphone: true,
}

// DefaultIcon is applied when a record is created without an explicit icon
const DefaultIcon = IconStar

// IsValid checks if the icon name belongs to the closed icon set
func (i IconName) IsValid() bool {
	return validIcons[i]
}

// String returns the string representation of the icon name
func (i IconName) String() string {
	return string(i)
}

// NewIconName creates an IconName from a string, defaulting when empty
func NewIconName(s string) (IconName, error) {
	if s == "" {
		return DefaultIcon, nil
	}
	icon := IconName(s)
	if !icon.IsValid() {
		return "", fmt.Errorf("unknown icon name: %s", s)
	}
	return icon, nil
}
