// Package mbr builds the 512-byte Master Boot Record that prefixes a
// combo CP/M image: a single RomWBW hd1k partition entry describing
// the 8 MiB slices that follow the 1 MiB prefix.
//
// Field layout follows the classic MBR partition table entry shape
// (bootable flag, CHS start/end, type, LBA start/count), the same
// shape github.com/soypat/fat's internal/mbr package parses for FAT
// volumes; this package only emits one fixed entry rather than
// generically parsing/writing any of the four slots, since RomWBW's
// combo layout always uses exactly one partition with fixed CHS
// sentinel values instead of computed CHS.
package mbr

import "encoding/binary"

const (
	// SectorSize is the size of the boot sector this package emits.
	SectorSize = 512

	partitionTableOffset = 0x1BE
	partitionEntrySize   = 16
	signatureOffset      = 0x1FE

	bootSignatureLo = 0x55
	bootSignatureHi = 0xAA

	// PartitionTypeRomWBWHD1K is the partition type byte RomWBW uses
	// to mark an hd1k-geometry slice.
	PartitionTypeRomWBWHD1K byte = 0x2E
)

// CHS is a fixed (not computed) cylinder-head-sector triple, stored as
// the three raw bytes the partition entry expects.
type CHS struct {
	Head, Sector, Cylinder byte
}

// PartitionEntry describes the single partition RomWBW's combo layout
// declares.
type PartitionEntry struct {
	Bootable  bool
	CHSStart  CHS
	Type      byte
	CHSEnd    CHS
	StartLBA  uint32
	CountLBA  uint32
}

// NewRomWBWComboEntry returns the fixed partition entry for a combo
// image of totalSize bytes: LBA start 2048 (1 MiB in 512-byte sectors),
// LBA count covering everything after the 1 MiB prefix, and the fixed
// CHS sentinels RomWBW uses rather than values computed from a CHS
// geometry (those are "LBA-capped" placeholders, not meaningful
// addresses).
func NewRomWBWComboEntry(totalSize int64, mbrPrefixBytes int64) PartitionEntry {
	const sectorSize = 512
	return PartitionEntry{
		Bootable: false,
		CHSStart: CHS{Head: 0x01, Sector: 0x01, Cylinder: 0x00},
		Type:     PartitionTypeRomWBWHD1K,
		CHSEnd:   CHS{Head: 0xFE, Sector: 0xFF, Cylinder: 0xFF},
		StartLBA: uint32(mbrPrefixBytes / sectorSize),
		CountLBA: uint32((totalSize - mbrPrefixBytes) / sectorSize),
	}
}

// Encode writes a 512-byte boot sector containing entry as partition
// slot 0 and the 0x55AA boot signature. All other bytes are zero.
func Encode(entry PartitionEntry) []byte {
	sector := make([]byte, SectorSize)
	writeEntry(sector[partitionTableOffset:partitionTableOffset+partitionEntrySize], entry)
	sector[signatureOffset] = bootSignatureLo
	sector[signatureOffset+1] = bootSignatureHi
	return sector
}

func writeEntry(field []byte, e PartitionEntry) {
	if e.Bootable {
		field[0] = 0x80
	} else {
		field[0] = 0x00
	}
	field[1] = e.CHSStart.Head
	field[2] = e.CHSStart.Sector
	field[3] = e.CHSStart.Cylinder
	field[4] = e.Type
	field[5] = e.CHSEnd.Head
	field[6] = e.CHSEnd.Sector
	field[7] = e.CHSEnd.Cylinder
	binary.LittleEndian.PutUint32(field[8:12], e.StartLBA)
	binary.LittleEndian.PutUint32(field[12:16], e.CountLBA)
}

// Signature reports whether the 512-byte sector carries the 0x55AA
// boot signature.
func Signature(sector []byte) bool {
	return len(sector) >= SectorSize && sector[signatureOffset] == bootSignatureLo && sector[signatureOffset+1] == bootSignatureHi
}

// PartitionType returns the type byte of partition slot 0.
func PartitionType(sector []byte) byte {
	return sector[partitionTableOffset+4]
}
