package blend

// SourceOverSpan composites src over dst pixel by pixel with full
// modulation. Extra elements in the longer slice are ignored.
func SourceOverSpan(dst, src []uint32) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	for i := range dst {
		SourceOver(&dst[i], dst[i], src[i], 0xFF)
	}
}

// FillSpan composites a solid colour over every pixel of dst. Opaque
// colours are stored directly.
func FillSpan(dst []uint32, c uint32) {
	if Opaque(c) {
		for i := range dst {
			dst[i] = c
		}
		return
	}
	for i := range dst {
		SourceOver(&dst[i], dst[i], c, 0xFF)
	}
}

// ApproximateSpan applies Approximate to each pixel pair.
func ApproximateSpan(dst, src []uint32) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	for i := range dst {
		Approximate(&dst[i], src[i])
	}
}
