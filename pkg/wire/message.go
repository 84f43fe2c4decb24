package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Message is one frame of the progress protocol.
type Message interface {
	payload() []byte
}

const (
	tagImageStart byte = 0x01
	tagPixel      byte = 0x02
	tagImageEnd   byte = 0x03
)

// ImageStart announces a new image and its sampling parameters. The receiver
// drops any partial image it was assembling.
type ImageStart struct {
	Width           uint32
	Height          uint32
	SamplesPerPixel uint32
}

func (m ImageStart) payload() []byte {
	buf := make([]byte, 13)
	buf[0] = tagImageStart
	binary.LittleEndian.PutUint32(buf[1:], m.Width)
	binary.LittleEndian.PutUint32(buf[5:], m.Height)
	binary.LittleEndian.PutUint32(buf[9:], m.SamplesPerPixel)
	return buf
}

// Pixel carries one finished pixel. Color is the raw sample sum; the receiver
// applies the same scale, gamma and clamp transfer as local image output.
type Pixel struct {
	Row    uint32
	Column uint32
	Color  core.Vec3
}

func (m Pixel) payload() []byte {
	buf := make([]byte, 33)
	buf[0] = tagPixel
	binary.LittleEndian.PutUint32(buf[1:], m.Row)
	binary.LittleEndian.PutUint32(buf[5:], m.Column)
	binary.LittleEndian.PutUint64(buf[9:], math.Float64bits(m.Color.X))
	binary.LittleEndian.PutUint64(buf[17:], math.Float64bits(m.Color.Y))
	binary.LittleEndian.PutUint64(buf[25:], math.Float64bits(m.Color.Z))
	return buf
}

// ImageEnd marks the image complete.
type ImageEnd struct{}

func (m ImageEnd) payload() []byte {
	return []byte{tagImageEnd}
}

func parseMessage(payload []byte) (Message, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("wire: empty frame")
	}

	switch tag := payload[0]; tag {
	case tagImageStart:
		if len(payload) != 13 {
			return nil, fmt.Errorf("wire: image start frame is %d bytes, want 13", len(payload))
		}
		return ImageStart{
			Width:           binary.LittleEndian.Uint32(payload[1:]),
			Height:          binary.LittleEndian.Uint32(payload[5:]),
			SamplesPerPixel: binary.LittleEndian.Uint32(payload[9:]),
		}, nil

	case tagPixel:
		if len(payload) != 33 {
			return nil, fmt.Errorf("wire: pixel frame is %d bytes, want 33", len(payload))
		}
		return Pixel{
			Row:    binary.LittleEndian.Uint32(payload[1:]),
			Column: binary.LittleEndian.Uint32(payload[5:]),
			Color: core.Vec3{
				X: math.Float64frombits(binary.LittleEndian.Uint64(payload[9:])),
				Y: math.Float64frombits(binary.LittleEndian.Uint64(payload[17:])),
				Z: math.Float64frombits(binary.LittleEndian.Uint64(payload[25:])),
			},
		}, nil

	case tagImageEnd:
		if len(payload) != 1 {
			return nil, fmt.Errorf("wire: image end frame is %d bytes, want 1", len(payload))
		}
		return ImageEnd{}, nil

	default:
		return nil, fmt.Errorf("wire: unknown message tag 0x%02x", tag)
	}
}
