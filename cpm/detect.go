package cpm

// Format identifies a disk geometry family, used by the CLI to pick
// a Geometry and container without the caller repeating size math.
type Format int

const (
	FormatUnknown Format = iota
	FormatSSSD
	FormatHD1K
	FormatCombo
)

func (f Format) String() string {
	switch f {
	case FormatSSSD:
		return "sssd"
	case FormatHD1K:
		return "hd1k"
	case FormatCombo:
		return "combo"
	default:
		return "unknown"
	}
}

// sssdSizeLow and sssdSizeHigh bound (exclusively) the fuzzy size band
// accepted for SSSD images: the
// canonical size plus slack for images that were hand-trimmed or
// padded by other tools.
const (
	sssdSizeLow  = 243000
	sssdSizeHigh = 260000
)

// Detect maps an image's byte length and, for large images, its MBR
// signature/partition type byte to a Format. An explicit CLI override
// bypasses this entirely.
func Detect(data []byte) Format {
	size := len(data)

	sssdGeom := SSSDGeometry()
	if int64(size) == sssdGeom.RegionBytes || (size > sssdSizeLow && size < sssdSizeHigh) {
		return FormatSSSD
	}

	if size >= ComboTotalBytes && looksLikeComboMBR(data) {
		return FormatCombo
	}

	hd1kGeom := HD1KGeometry()
	if int64(size) == hd1kGeom.RegionBytes {
		return FormatHD1K
	}

	if size > 1000000 {
		return FormatHD1K
	}
	return FormatSSSD
}

func looksLikeComboMBR(data []byte) bool {
	if len(data) < 0x1C3 {
		return false
	}
	return data[0x1FE] == 0x55 && data[0x1FF] == 0xAA && data[0x1C2] == 0x2E
}
