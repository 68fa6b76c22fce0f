// Package transport feeds an io.Reader through a bytestream.Parser on
// a background goroutine and serializes outgoing packets back to an
// io.Writer, generalizing the teacher's UDP-specific session message
// loop (session/session.go's messageLoop + MIDIMessageHandlerFunc) to
// any io.ReadWriter.
package transport

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/laenzlinger/go-midi2/bytestream"
	"github.com/laenzlinger/go-midi2/internal/logging"
	"github.com/laenzlinger/go-midi2/midi"
)

// PacketHandlerFunc receives every Universal MIDI Packet produced by
// the underlying byte-stream parser.
type PacketHandlerFunc func(midi.Packet)

// SysexHandlerFunc receives reassembled SysEx payloads; when nil, the
// stream feeds SysEx7 Universal Packets to the PacketHandlerFunc
// instead (bytestream.Parser's default behavior).
type SysexHandlerFunc func(payload []byte)

// Stream runs a bytestream.Parser over an io.Reader and serializes
// outgoing packets to an io.Writer.
type Stream struct {
	rw     io.ReadWriter
	group  midi.GroupT
	log    *log.Logger
	parser *bytestream.Parser

	mu      sync.Mutex
	writeMu sync.Mutex
}

// New builds a Stream reading/writing group on rw. onPacket is
// required; onSysex may be nil.
func New(rw io.ReadWriter, group midi.GroupT, onPacket PacketHandlerFunc, onSysex SysexHandlerFunc) *Stream {
	s := &Stream{rw: rw, group: group, log: logging.New("transport")}
	var sysexCB bytestream.OnSysex
	if onSysex != nil {
		sysexCB = bytestream.OnSysex(onSysex)
	}
	s.parser = bytestream.NewParser(group, bytestream.OnPacket(onPacket), sysexCB)
	return s
}

// Run reads from the underlying io.Reader until it returns an error
// (including io.EOF), feeding every byte through the parser. It
// blocks; call it from its own goroutine, mirroring the teacher's
// `go messageLoop(...)` pattern.
func (s *Stream) Run() error {
	buf := make([]byte, 4096)
	for {
		n, err := s.rw.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.parser.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Error("read failed", "err", err)
			return err
		}
	}
}

// Send serializes p and writes it to the underlying io.Writer.
func (s *Stream) Send(p midi.Packet) error {
	data := bytestream.Serialize(p)
	if data == nil {
		return errors.New("transport: packet type has no byte-stream serialization")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, err := s.rw.Write(data)
	return err
}

// Reset discards any partial message state (e.g. after a reconnect).
func (s *Stream) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parser.Reset()
}
