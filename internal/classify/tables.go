package classify

import "maps"

// cameraModels maps camera model names to the short form used in file names.
var cameraModels = map[string]string{
	"DMC-TZ101":            "TZ101",
	"DMC-TZ100":            "TZ100",
	"DMC-TZ81":             "TZ81",
	"DMC-TZ71":             "TZ71",
	"DMC-TZ61":             "TZ61",
	"DMC-TZ41":             "TZ41",
	"DC-TZ202":             "TZ202",
	"DC-TZ200":             "TZ200",
	"DC-TZ91":              "TZ91",
	"DMC-FZ1000":           "FZ1000",
	"DC-FZ10002":           "FZ10002",
	"DMC-FZ300":            "FZ300",
	"DMC-LX100":            "LX100",
	"DC-LX100M2":           "LX100M2",
	"DMC-GX80":             "GX80",
	"DMC-GH4":              "GH4",
	"DC-GH5":               "GH5",
	"DC-G9":                "G9",
	"Canon EOS 5D Mark IV": "5D4",
	"Canon EOS 80D":        "80D",
	"NIKON D750":           "D750",
	"ILCE-7M3":             "A7M3",
	"ILCE-6000":            "A6000",
	"HERO5 Black":          "HERO5",
	"HERO7 Black":          "HERO7",
}

// sceneModes maps Advanced Scene Mode values of the scene guide to their
// abbreviation.
var sceneModes = map[string]string{
	"Clear Portrait":           "CPO",
	"Silky Skin":               "SSK",
	"Backlit Softness":         "BSO",
	"Clear in Backlight":       "CBL",
	"Relaxing Tone":            "RTO",
	"Sweet Child's Face":       "SCF",
	"Distinct Scenery":         "DSC",
	"Bright Blue Sky":          "BBS",
	"Romantic Sunset Glow":     "RSG",
	"Vivid Sunset Glow":        "VSG",
	"Glistening Water":         "GWA",
	"Clear Nightscape":         "CNS",
	"Cool Night Sky":           "CNK",
	"Warm Glowing Nightscape":  "WGN",
	"Artistic Nightscape":      "ANS",
	"Glittering Illuminations": "GIL",
	"Handheld Night Shot":      "HNS",
	"Clear Night Portrait":     "CNP",
	"Soft Image of a Flower":   "SIF",
	"Appetizing Food":          "AFO",
	"Cute Dessert":             "CDE",
	"Freeze Animal Motion":     "FAM",
	"Clear Sports Shot":        "CSS",
	"Monochrome":               "MON",
	"Panorama Shot":            "PAN",
}

// creativeModes maps creative control and digital filter names, stored in
// Advanced Scene Mode, to their abbreviation.
var creativeModes = map[string]string{
	"Expressive":         "EXPS",
	"Retro":              "RETR",
	"Old Days":           "OLD",
	"High Key":           "HKEY",
	"Low Key":            "LKEY",
	"Sepia":              "SEPI",
	"Monochrome":         "MONO",
	"Dynamic Monochrome": "DMONO",
	"Rough Monochrome":   "RMONO",
	"Silky Monochrome":   "SMONO",
	"Impressive Art":     "IART",
	"High Dynamic":       "HDYN",
	"Cross Process":      "CPRO",
	"Toy Effect":         "TOY",
	"Toy Pop":            "TOYP",
	"Bleach Bypass":      "BLEA",
	"Miniature":          "MINI",
	"Soft Focus":         "SOFT",
	"Fantasy":            "FANT",
	"Star Filter":        "STAR",
	"One Point Color":    "1COL",
	"Sunshine":           "SUN",
}

// processTags maps post-processing name prefixes to the keyword they imply.
var processTags = map[string]string{
	"HDR":  "HDR",
	"HDRT": "HDR",
	"PANO": "Panorama",
}

// CameraModels returns a copy of the camera abbreviation table.
func CameraModels() map[string]string { return maps.Clone(cameraModels) }

// SceneModes returns a copy of the scene abbreviation table.
func SceneModes() map[string]string { return maps.Clone(sceneModes) }

// CreativeModes returns a copy of the creative filter abbreviation table.
func CreativeModes() map[string]string { return maps.Clone(creativeModes) }
