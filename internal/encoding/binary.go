package encoding

// Merge16 two uint16 to uint32
func Merge16(a, b uint16) uint32 {
	return (uint32(a) << 16) + uint32(b)
}

// Split32 uint32 to two uint16
func Split32(in uint32) (uint16, uint16) {
	return uint16(in >> 16), uint16(in)
}

// Merge32 two uint32 to uint64
func Merge32(a, b uint32) uint64 {
	return (uint64(a) << 32) + uint64(b)
}

// Split64 uint64 to two uint32
func Split64(in uint64) (uint32, uint32) {
	return uint32(in >> 32), uint32(in)
}

// VertexKey packs a (layer, row, col) triple into one comparable key.
// Vertices that quantize to the same key are the same vertex - this is
// what makes the mesh indexed rather than stitched & merged afterwards.
func VertexKey(layer uint32, row, col uint16) uint64 {
	return Merge32(layer, Merge16(row, col))
}
