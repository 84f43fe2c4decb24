package wire

import (
	"bufio"
	"io"
)

// Encoder frames messages onto a byte stream. Each message is COBS-stuffed
// and followed by a zero delimiter, so the stream never contains a zero byte
// inside a frame.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one framed message.
func (e *Encoder) Encode(msg Message) error {
	frame := cobsEncode(msg.payload())
	frame = append(frame, 0)
	_, err := e.w.Write(frame)
	return err
}

// Decoder reads framed messages from a byte stream. A frame that fails to
// decode is reported as an error; the caller may keep calling Decode, which
// resumes at the next zero delimiter.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the next frame and parses it. It returns io.EOF once the
// stream ends cleanly on a frame boundary.
func (d *Decoder) Decode() (Message, error) {
	frame, err := d.r.ReadBytes(0)
	if err != nil {
		if err == io.EOF && len(frame) == 0 {
			return nil, io.EOF
		}
		return nil, err
	}

	payload, err := cobsDecode(frame[:len(frame)-1])
	if err != nil {
		return nil, err
	}

	return parseMessage(payload)
}
