package cpm

import "fmt"

// FS is a CP/M filesystem operating over a Geometry and a caller-owned
// byte region (the container layer has already resolved any container
// prefix, see container.go). FS is single-threaded and synchronous: no
// method is safe for concurrent use against the same region.
type FS struct {
	G Geometry
}

// FileInfo is a listing row: one logical file's identity, size and
// block usage, aggregated across every physical directory entry that
// shares its identity.
type FileInfo struct {
	User   int
	Name   string // "NAME.EXT", trimmed, dotted only if an extension is present
	Size   int
	Blocks int
	SYS    bool
}

// Format zero-fills region and marks every directory slot empty.
// The data blocks stay zero; reads never depend on unformatted block
// contents.
func (fs FS) Format(region []byte) error {
	if err := fs.checkRegion(region); err != nil {
		return err
	}
	for i := range region {
		region[i] = 0
	}
	dirBytes := fs.G.DirEntries * DirEntrySize
	for i := 0; i < dirBytes; i++ {
		region[i] = emptyMarker
	}
	return nil
}

func (fs FS) checkRegion(region []byte) error {
	if int64(len(region)) < fs.G.RegionBytes {
		return newError(KindBadGeometry, fmt.Sprintf("region too small: have %d, need %d", len(region), fs.G.RegionBytes))
	}
	return nil
}

// identity groups directory entries that belong to the same file.
type identity struct {
	user int
	name [8]byte
	ext  [3]byte
}

func (fs FS) liveEntries(region []byte) []DirEntry {
	var out []DirEntry
	for i := 0; i < fs.G.DirEntries; i++ {
		if region[entryOffset(i)] == emptyMarker {
			continue
		}
		e := ReadEntry(fs.G, region, i)
		if e.User >= 32 {
			continue
		}
		if !e.isPrintableName() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// List returns one FileInfo per distinct (user, name, ext) identity
// among the live, well-formed directory entries, sorted by (user,
// name).
func (fs FS) List(region []byte) ([]FileInfo, error) {
	if err := fs.checkRegion(region); err != nil {
		return nil, err
	}

	type agg struct {
		maxExtent  int
		rcAtMax    uint8
		blocks     int
		sys        bool
		name, ext  [8 + 3]byte
		user       int
		haveExtent bool
	}
	byIdentity := make(map[identity]*agg)
	var order []identity

	for _, e := range fs.liveEntries(region) {
		id := identity{user: int(e.User), name: e.MaskedName(), ext: e.MaskedExt()}
		a, ok := byIdentity[id]
		if !ok {
			a = &agg{user: int(e.User)}
			byIdentity[id] = a
			order = append(order, id)
		}
		ext := e.Extent()
		if !a.haveExtent || ext > a.maxExtent {
			a.maxExtent = ext
			a.rcAtMax = e.RecordCount
			a.haveExtent = true
		}
		if e.SYS {
			a.sys = true
		}
		for _, p := range e.Pointers {
			if p != 0 {
				a.blocks++
			}
		}
	}

	infos := make([]FileInfo, 0, len(order))
	for _, id := range order {
		a := byIdentity[id]
		records := a.maxExtent*RecordsPerLogicalExtent + int(a.rcAtMax)
		infos = append(infos, FileInfo{
			User:   id.user,
			Name:   displayName(id.name, id.ext),
			Size:   records * RecordSize,
			Blocks: a.blocks,
			SYS:    a.sys,
		})
	}
	sortFileInfos(infos)
	return infos, nil
}

func sortFileInfos(infos []FileInfo) {
	for i := 1; i < len(infos); i++ {
		for j := i; j > 0; j-- {
			a, b := infos[j-1], infos[j]
			if a.User < b.User || (a.User == b.User && a.Name <= b.Name) {
				break
			}
			infos[j-1], infos[j] = infos[j], infos[j-1]
		}
	}
}

func displayName(name [8]byte, ext [3]byte) string {
	n := trimSpace(name[:])
	e := trimSpace(ext[:])
	if e == "" {
		return n
	}
	return n + "." + e
}

func trimSpace(b []byte) string {
	i := len(b)
	for i > 0 && b[i-1] == ' ' {
		i--
	}
	return string(b[:i])
}

// Add normalizes filename to 8.3, writes its data into newly allocated
// blocks and one or more new directory entries, and commits them to
// region only once every block and every directory slot has been
// secured, implemented by mutating a copy of region and copying it
// back on success. This makes a single Add call atomic: a caller never
// observes a partially-written file if allocation or directory space
// runs out partway through.
func (fs FS) Add(region []byte, filename string, data []byte, sysAttr bool, user int) error {
	if err := fs.checkRegion(region); err != nil {
		return err
	}

	name, ext := To83(filename)

	numRecords := ceilDiv(len(data), RecordSize)
	numBlocks := ceilDiv(len(data), fs.G.BlockSize)

	stage := make([]byte, len(region))
	copy(stage, region)

	var blocks []int
	if numBlocks > 0 {
		var err error
		blocks, err = Allocate(fs.G, stage, numBlocks)
		if err != nil {
			return wrapf(err, "allocate %d blocks for %s", numBlocks, filename)
		}
		for i, b := range blocks {
			start := i * fs.G.BlockSize
			end := start + fs.G.BlockSize
			if end > len(data) {
				end = len(data)
			}
			writeBlock(fs.G, stage, b, data[start:end])
		}
	}

	recordsPerBlock := fs.G.BlockSize / RecordSize
	blocksPerExtent := fs.G.BlocksPerPhysicalExtent()
	exm := fs.G.ExtentMask

	blockIdx := 0
	physicalExtent := 0
	for blockIdx < len(blocks) || (len(blocks) == 0 && physicalExtent == 0) {
		end := blockIdx + blocksPerExtent
		if end > len(blocks) {
			end = len(blocks)
		}
		extentBlocks := blocks[blockIdx:end]

		recordsBefore := blockIdx * recordsPerBlock
		recordsInExtent := len(extentBlocks) * recordsPerBlock
		recordsCovered := recordsBefore + recordsInExtent
		if recordsCovered > numRecords {
			recordsCovered = numRecords
		}
		var rc int
		if recordsCovered > 0 {
			rc = ((recordsCovered - 1) % RecordsPerLogicalExtent) + 1
		}
		lastLogical := 0
		if recordsCovered > recordsBefore+RecordsPerLogicalExtent {
			lastLogical = 1
		}
		fullExtent := physicalExtent*(exm+1) + lastLogical

		slot := FindFreeDirEntry(fs.G, stage)
		if slot < 0 {
			return wrapf(ErrDirectoryFull, "no free directory entry for %s extent %d", filename, physicalExtent)
		}

		ptrs := make([]uint16, len(extentBlocks))
		for i, b := range extentBlocks {
			ptrs[i] = uint16(b)
		}

		e := DirEntry{
			User: uint8(user),
			Name: name,
			Ext:  ext,
			SYS:  sysAttr,
			RecordCount: uint8(rc),
			Pointers:    ptrs,
		}
		e.setExtent(fullExtent)
		WriteEntry(fs.G, stage, slot, e)

		blockIdx = end
		physicalExtent++

		if len(blocks) == 0 {
			break
		}
	}

	copy(region, stage)
	return nil
}

func writeBlock(g Geometry, region []byte, block int, chunk []byte) {
	off := block * g.BlockSize
	n := copy(region[off:off+g.BlockSize], chunk)
	for i := off + n; i < off+g.BlockSize; i++ {
		region[i] = 0x1A
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Delete resolves pattern to an 11-char wildcard mask and marks every
// live entry whose (user, masked name+ext) matches it as empty. Blocks
// are not reclaimed or zeroed. Returns the number of entries marked; a
// pattern matching nothing returns a zero count with a nil error, not
// an error.
func (fs FS) Delete(region []byte, pattern string, user int) (int, error) {
	if err := fs.checkRegion(region); err != nil {
		return 0, err
	}
	mask := ToMask(pattern)
	count := 0
	for i := 0; i < fs.G.DirEntries; i++ {
		if region[entryOffset(i)] == emptyMarker {
			continue
		}
		e := ReadEntry(fs.G, region, i)
		if e.User >= 32 || int(e.User) != user {
			continue
		}
		id11 := identity11(e.MaskedName(), e.MaskedExt())
		if MatchMask(mask, id11) {
			WriteEmptyEntry(region, i)
			count++
		}
	}
	return count, nil
}

// Extract gathers every live entry matching (user, filename exactly)
// into extent order, concatenates their block contents, and truncates
// to the byte length implied by the last extent's record count. It
// returns ErrNotFound (via the Kind) when no entry matches.
func (fs FS) Extract(region []byte, filename string, user int) ([]byte, error) {
	if err := fs.checkRegion(region); err != nil {
		return nil, err
	}
	name, ext := To83(filename)

	type extentData struct {
		rc     uint8
		blocks []uint16
	}
	extents := make(map[int]extentData)

	for i := 0; i < fs.G.DirEntries; i++ {
		if region[entryOffset(i)] == emptyMarker {
			continue
		}
		e := ReadEntry(fs.G, region, i)
		if e.User >= 32 || int(e.User) != user {
			continue
		}
		if e.MaskedName() != name || e.MaskedExt() != ext {
			continue
		}
		extents[e.Extent()] = extentData{rc: e.RecordCount, blocks: e.Pointers}
	}

	if len(extents) == 0 {
		return nil, ErrNotFound
	}

	maxExt := 0
	first := true
	for ext := range extents {
		if first || ext > maxExt {
			maxExt = ext
			first = false
		}
	}

	keys := make([]int, 0, len(extents))
	for k := range extents {
		keys = append(keys, k)
	}
	sortInts(keys)

	var out []byte
	for _, k := range keys {
		for _, p := range extents[k].blocks {
			if p == 0 {
				continue
			}
			off := int(p) * fs.G.BlockSize
			out = append(out, region[off:off+fs.G.BlockSize]...)
		}
	}

	totalRecords := maxExt*RecordsPerLogicalExtent + int(extents[maxExt].rc)
	size := totalRecords * RecordSize
	if size > len(out) {
		size = len(out)
	}
	return out[:size], nil
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
