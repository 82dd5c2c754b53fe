package cpm

import "cpmdsk/cpm/mbr"

// Container resolves the byte offset of a CP/M filesystem region
// within a disk image buffer. SSSD and hd1k images are their own
// region (RawContainer); a combo image is an MBR-prefixed region plus
// five further hd1k-geometry slices the core does not address.
type Container interface {
	// Region returns the filesystem-region view of image, sized and
	// offset per the container's geometry.
	Region(image []byte) []byte
	// Geometry is the Geometry describing Region's contents.
	Geometry() Geometry
}

// RawContainer exposes an image buffer directly as the filesystem
// region: used for SSSD and single-slice hd1k images, which have no
// container prefix.
type RawContainer struct {
	G Geometry
}

func (c RawContainer) Region(image []byte) []byte {
	return image[c.G.RegionByteOffset : c.G.RegionByteOffset+c.G.RegionBytes]
}

func (c RawContainer) Geometry() Geometry { return c.G }

// ComboContainer exposes slice 0 of a combo image — the region after
// the 1 MiB MBR prefix — as the filesystem region. Slices 1-5 are
// formatted by NewComboImage but are not reachable through this
// Container; a future slice-selecting container would only need a
// slice index field here.
type ComboContainer struct {
	G Geometry
}

func NewComboContainer() ComboContainer {
	return ComboContainer{G: ComboSliceGeometry()}
}

func (c ComboContainer) Region(image []byte) []byte {
	off := c.G.RegionByteOffset
	return image[off : off+c.G.RegionBytes]
}

func (c ComboContainer) Geometry() Geometry { return c.G }

// NewSSSDImage returns a freshly formatted SSSD floppy image.
func NewSSSDImage() ([]byte, error) {
	g := SSSDGeometry()
	image := make([]byte, g.RegionBytes)
	fs := FS{G: g}
	if err := fs.Format(image); err != nil {
		return nil, err
	}
	return image, nil
}

// NewHD1KImage returns a freshly formatted single-slice hd1k image.
func NewHD1KImage() ([]byte, error) {
	g := HD1KGeometry()
	image := make([]byte, g.RegionBytes)
	fs := FS{G: g}
	if err := fs.Format(image); err != nil {
		return nil, err
	}
	return image, nil
}

// NewComboImage returns a freshly formatted combo image: a 1 MiB MBR
// prefix followed by six formatted hd1k-geometry slices. Only slice 0
// is reachable through ComboContainer.
func NewComboImage() ([]byte, error) {
	image := make([]byte, ComboTotalBytes)

	entry := mbr.NewRomWBWComboEntry(ComboTotalBytes, ComboMBRPrefixBytes)
	copy(image[:mbr.SectorSize], mbr.Encode(entry))

	sliceGeom := HD1KGeometry()
	for i := 0; i < ComboSliceCount; i++ {
		off := int64(ComboMBRPrefixBytes) + int64(i)*int64(ComboSliceBytes)
		region := image[off : off+int64(ComboSliceBytes)]
		fs := FS{G: sliceGeom}
		if err := fs.Format(region); err != nil {
			return nil, err
		}
	}
	return image, nil
}

// ContainerFor returns the Container appropriate for format.
func ContainerFor(format Format) Container {
	switch format {
	case FormatSSSD:
		return RawContainer{G: SSSDGeometry()}
	case FormatCombo:
		return NewComboContainer()
	default:
		return RawContainer{G: HD1KGeometry()}
	}
}
