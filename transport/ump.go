package transport

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/laenzlinger/go-midi2/midi"
)

// UMPReader reads raw Universal Packets (4 big-endian bytes per word,
// word count determined by the type nibble of word 0) from an
// io.Reader. Unlike Stream, which carries the legacy MIDI 1.0
// byte-stream encoding, UMPReader is for packet types with no
// byte-stream representation at all — stream messages, MIDI 2
// channel-voice, and UMP-native SysEx8.
type UMPReader struct {
	r io.Reader
}

func NewUMPReader(r io.Reader) *UMPReader { return &UMPReader{r: r} }

// ReadPacket blocks until a full packet has been read.
func (u *UMPReader) ReadPacket() (midi.Packet, error) {
	var word0 [4]byte
	if _, err := io.ReadFull(u.r, word0[:]); err != nil {
		return midi.Packet{}, err
	}
	p := midi.NewPacket(binary.BigEndian.Uint32(word0[:]))
	size := p.Size()
	if size <= 0 || size > 4 {
		return midi.Packet{}, fmt.Errorf("transport: invalid packet type %#x", p.Type())
	}
	for i := 1; i < size; i++ {
		var word [4]byte
		if _, err := io.ReadFull(u.r, word[:]); err != nil {
			return midi.Packet{}, err
		}
		p[i] = binary.BigEndian.Uint32(word[:])
	}
	return p, nil
}

// WriteUMPPacket writes p's live words to w as big-endian 32-bit
// words.
func WriteUMPPacket(w io.Writer, p midi.Packet) error {
	buf := make([]byte, 4*p.Size())
	for i := 0; i < p.Size(); i++ {
		binary.BigEndian.PutUint32(buf[i*4:], p[i])
	}
	_, err := w.Write(buf)
	return err
}
