package export

import "github.com/psu-edu/sweng861-crud-jzt5803/deck"

// Palette shared by all exporters, as RRGGBB hex. GoPPT wants an ARGB
// string, GoWord/GoExcel want RRGGBB, maroto wants decimal channels.
const (
	hexNavy      = "1E3A5F"
	hexSteel     = "2196F3"
	hexLightBlue = "90CAF9"
	hexWhite     = "FFFFFF"
	hexLightGray = "F0F4F8"
	hexDarkGray  = "333333"
	hexMonoBg    = "F5F5F5"
	hexRedDark   = "C62828"
	hexGreenDark = "2E7D32"
)

// toneHex maps a content tone to its palette color.
func toneHex(t deck.Tone) string {
	switch t {
	case deck.ToneHeading:
		return hexNavy
	case deck.ToneGood:
		return hexGreenDark
	case deck.ToneBad:
		return hexRedDark
	default:
		return hexDarkGray
	}
}

// argb prefixes a palette hex with full opacity for GoPPT.
func argb(hex string) string {
	return "FF" + hex
}
