// Package wire implements the serial progress protocol: render progress
// messages are binary-encoded, COBS-framed and separated by zero bytes, so a
// receiver on the other end of an unreliable byte stream can resynchronize on
// frame boundaries and rebuild the image incrementally.
package wire

import "errors"

// ErrCOBSCorrupt reports a frame whose COBS group headers do not line up
// with the frame length.
var ErrCOBSCorrupt = errors.New("wire: corrupt cobs frame")

// cobsEncode stuffs src so the output contains no zero bytes. Each group
// header byte gives the distance to the next zero (or to the end); a
// maximum-length group of 254 bytes carries no implicit zero.
func cobsEncode(src []byte) []byte {
	dst := make([]byte, 0, len(src)+1+len(src)/254)

	codeIndex := len(dst)
	dst = append(dst, 0)
	code := byte(1)

	for _, b := range src {
		if b == 0 {
			dst[codeIndex] = code
			codeIndex = len(dst)
			dst = append(dst, 0)
			code = 1
			continue
		}

		dst = append(dst, b)
		code++
		if code == 0xFF {
			dst[codeIndex] = code
			codeIndex = len(dst)
			dst = append(dst, 0)
			code = 1
		}
	}

	dst[codeIndex] = code
	return dst
}

// cobsDecode reverses cobsEncode. src must not contain the zero delimiter.
func cobsDecode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src))

	for i := 0; i < len(src); {
		code := src[i]
		if code == 0 {
			return nil, ErrCOBSCorrupt
		}
		i++

		groupEnd := i + int(code) - 1
		if groupEnd > len(src) {
			return nil, ErrCOBSCorrupt
		}

		for ; i < groupEnd; i++ {
			if src[i] == 0 {
				return nil, ErrCOBSCorrupt
			}
			dst = append(dst, src[i])
		}

		if code != 0xFF && i < len(src) {
			dst = append(dst, 0)
		}
	}

	return dst, nil
}
