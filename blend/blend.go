// Package blend implements Porter-Duff compositing of 32-bit ARGB pixels.
//
// Pixels are uint32 values with alpha in bits 24-31, red in 16-23, green in
// 8-15 and blue in 0-7. Colour channels are not premultiplied; each operator
// derives two blend factors from the source and destination alphas and
// averages the channels with them.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

// BlendMode selects a Porter-Duff compositing operator.
type BlendMode uint8

// Porter-Duff operators. The destination is the first colour passed to
// Blend, the source the second.
const (
	BlendClear           BlendMode = iota // 0
	BlendSource                           // S
	BlendDestination                      // D
	BlendSourceOver                       // S + D*(1-Sa) [default]
	BlendSourceIn                         // S*Da
	BlendSourceOut                        // S*(1-Da)
	BlendSourceAtop                       // S*Da + D*(1-Sa)
	BlendDestinationOver                  // S*(1-Da) + D
	BlendDestinationIn                    // D*Sa
	BlendDestinationOut                   // D*(1-Sa)
	BlendDestinationAtop                  // S*(1-Da) + D*Sa
	BlendXor                              // S*(1-Da) + D*(1-Sa)

	modeCount
)

// Factor tables indexed by BlendMode. For destination alpha a1 and
// modulated source alpha a2:
//
//	f1 = a1 * (mode1Base + mode1Mult*a2)
//	f2 = a2 * (mode2Base + mode2Mult*a1)
var (
	mode1Base = [modeCount]int32{0, 0, 0xFF, 0xFF, 0, 0, 0xFF, 0xFF, 0, 0xFF, 0, 0xFF}
	mode1Mult = [modeCount]int32{0, 0, 0, -1, 0, 0, -1, 0, 1, -1, 1, -1}
	mode2Base = [modeCount]int32{0, 0xFF, 0, 0xFF, 0, 0xFF, 0, 0xFF, 0, 0, 0xFF, 0xFF}
	mode2Mult = [modeCount]int32{0, 0, 0, 0, 1, -1, 1, -1, 0, 0, -1, -1}
)

// maxAlpha is 0xFF*0xFF, the largest valid factor sum.
const maxAlpha = 0xFE01

var modeNames = [modeCount]string{
	"clear", "source", "destination", "source-over", "source-in", "source-out",
	"source-atop", "destination-over", "destination-in", "destination-out",
	"destination-atop", "xor",
}

// String returns the operator name, e.g. "source-over".
func (m BlendMode) String() string {
	if m >= modeCount {
		return "unknown"
	}
	return modeNames[m]
}

// Valid reports whether m is one of the twelve defined operators.
func (m BlendMode) Valid() bool {
	return m < modeCount
}

// ParseBlendMode returns the operator with the given name.
func ParseBlendMode(name string) (BlendMode, bool) {
	for i, n := range modeNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return BlendSourceOver, false
}

// Blend composites c2 (source) over c1 (destination) with the given operator
// and stores the result in *dst. The source alpha is first scaled by
// modulation/255. When the result alpha is zero only the alpha byte of *dst
// is written. Unknown modes behave as BlendSourceOver.
func Blend(dst *uint32, c1, c2 uint32, modulation uint8, mode BlendMode) {
	if mode >= modeCount {
		mode = BlendSourceOver
	}
	alpha1 := int32(c1 >> 24)
	alpha2 := int32(c2>>24) * int32(modulation) / 0xFF
	f1 := alpha1 * (mode1Base[mode] + mode1Mult[mode]*alpha2)
	f2 := alpha2 * (mode2Base[mode] + mode2Mult[mode]*alpha1)
	combine(dst, c1, c2, f1, f2)
}

// SourceOver is Blend fixed to BlendSourceOver. It is the hot path used by
// the software renderer and produces bit-identical results.
func SourceOver(dst *uint32, c1, c2 uint32, modulation uint8) {
	alpha1 := int32(c1 >> 24)
	alpha2 := int32(c2>>24) * int32(modulation) / 0xFF
	f1 := alpha1 * (0xFF - alpha2)
	f2 := alpha2 * 0xFF
	combine(dst, c1, c2, f1, f2)
}

// combine weights the channels of c1 and c2 by f1 and f2.
func combine(dst *uint32, c1, c2 uint32, f1, f2 int32) {
	newAlpha := f1 + f2
	if newAlpha > maxAlpha {
		newAlpha = maxAlpha
	}
	a := uint32(newAlpha/0xFF) & 0xFF
	if newAlpha <= 0 {
		*dst = *dst & 0x00FFFFFF
		return
	}
	r := channel(c1>>16, c2>>16, f1, f2, newAlpha)
	g := channel(c1>>8, c2>>8, f1, f2, newAlpha)
	b := channel(c1, c2, f1, f2, newAlpha)
	*dst = a<<24 | r<<16 | g<<8 | b
}

func channel(c1, c2 uint32, f1, f2, total int32) uint32 {
	v := (int32(c1&0xFF)*f1 + int32(c2&0xFF)*f2) / total
	return uint32(v) & 0xFF
}
