package settings

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"

	"mandelcore/gocomplex"
	"mandelcore/gradient"
	"mandelcore/mcolor"
)

const wireVersion = "0"

// Serialize encodes the viewport and gradient (not Size, which is a
// property of the window, not the view) as version-tagged, zlib
// compressed, URL-safe base64 text suitable for a query string or a
// preset file. Returns false only if the underlying writers fail,
// which they never do for in-memory buffers.
func (s EngineSettings) Serialize() (string, bool) {
	var raw bytes.Buffer
	if !encodeState(&raw, s.center.Current(), s.scale.Current(), s.iterationLimit.Current(), s.gradient.Get()) {
		return "", false
	}

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	if _, err := w.Write(raw.Bytes()); err != nil {
		logger.Warn().Err(err).Msg("serialize: zlib write failed")
		return "", false
	}
	if err := w.Close(); err != nil {
		logger.Warn().Err(err).Msg("serialize: zlib close failed")
		return "", false
	}

	encoded := base64.RawURLEncoding.EncodeToString(compressed.Bytes())
	return wireVersion + ":" + encoded, true
}

// RestoreSettings decodes a string previously produced by Serialize,
// returning DefaultSettings() merged with the decoded center/scale/iteration
// limit/gradient. Size is left at the caller's subsequent SetSize.
// Malformed input is logged and reported via the bool, never panics.
func RestoreSettings(s string) (EngineSettings, bool) {
	version, encoded, ok := strings.Cut(s, ":")
	if !ok || version != wireVersion {
		logger.Warn().Str("input", s).Msg("restore: unrecognized version prefix")
		return EngineSettings{}, false
	}

	compressed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		logger.Warn().Err(err).Msg("restore: base64 decode failed")
		return EngineSettings{}, false
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		logger.Warn().Err(err).Msg("restore: zlib open failed")
		return EngineSettings{}, false
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		logger.Warn().Err(err).Msg("restore: zlib read failed")
		return EngineSettings{}, false
	}

	center, scale, limit, g, ok := decodeState(raw)
	if !ok {
		logger.Warn().Msg("restore: malformed decoded payload")
		return EngineSettings{}, false
	}

	out := DefaultSettings()
	out.center.Set(center)
	out.center.Latch()
	out.scale.Set(scale)
	out.scale.Latch()
	out.iterationLimit.Set(limit)
	out.iterationLimit.Latch()
	out.gradient.Set(g)
	out.gradient.TakeDirty()
	return out, true
}

func encodeState(buf *bytes.Buffer, center gocomplex.Complex[float64], scale float64, limit uint32, g gradient.Gradient) bool {
	if err := binary.Write(buf, binary.LittleEndian, center.Re); err != nil {
		return false
	}
	if err := binary.Write(buf, binary.LittleEndian, center.Im); err != nil {
		return false
	}
	if err := binary.Write(buf, binary.LittleEndian, scale); err != nil {
		return false
	}
	if err := binary.Write(buf, binary.LittleEndian, uint64(limit)); err != nil {
		return false
	}
	buf.WriteByte(g.Inside.R)
	buf.WriteByte(g.Inside.G)
	buf.WriteByte(g.Inside.B)
	buf.WriteByte(g.Inside.A)
	buf.WriteByte(g.Root.R)
	buf.WriteByte(g.Root.G)
	buf.WriteByte(g.Root.B)
	buf.WriteByte(g.Root.A)
	if err := binary.Write(buf, binary.LittleEndian, uint64(len(g.Pivots))); err != nil {
		return false
	}
	for _, p := range g.Pivots {
		if err := binary.Write(buf, binary.LittleEndian, uint64(p.Value)); err != nil {
			return false
		}
		buf.WriteByte(p.Color.R)
		buf.WriteByte(p.Color.G)
		buf.WriteByte(p.Color.B)
		buf.WriteByte(p.Color.A)
	}
	return true
}

func decodeState(raw []byte) (gocomplex.Complex[float64], float64, uint32, gradient.Gradient, bool) {
	r := bytes.NewReader(raw)

	readF64 := func() (float64, bool) {
		var v float64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, false
		}
		return v, true
	}
	readU64 := func() (uint64, bool) {
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, false
		}
		return v, true
	}
	readColor := func() (mcolor.Color, bool) {
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return mcolor.Color{}, false
		}
		return mcolor.Color{R: b[0], G: b[1], B: b[2], A: b[3]}, true
	}

	re, ok := readF64()
	if !ok {
		return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
	}
	im, ok := readF64()
	if !ok {
		return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
	}
	scale, ok := readF64()
	if !ok {
		return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
	}
	limit64, ok := readU64()
	if !ok {
		return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
	}
	inside, ok := readColor()
	if !ok {
		return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
	}
	root, ok := readColor()
	if !ok {
		return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
	}
	count, ok := readU64()
	if !ok || count > 1<<20 {
		return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
	}

	pivots := make([]gradient.Pivot, 0, count)
	for i := uint64(0); i < count; i++ {
		value, ok := readU64()
		if !ok {
			return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
		}
		color, ok := readColor()
		if !ok {
			return gocomplex.Complex[float64]{}, 0, 0, gradient.Gradient{}, false
		}
		pivots = append(pivots, gradient.Pivot{Value: uint32(value), Color: color})
	}

	g := gradient.Gradient{Root: root, Inside: inside, Pivots: pivots}
	return gocomplex.New(re, im), scale, uint32(limit64), g, true
}
