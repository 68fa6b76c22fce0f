// Command ci-probe exercises the MIDI Capability Inquiry discovery
// handshake against a connected endpoint, reading/writing MIDI-CI
// SysEx7 payloads over stdin/stdout: it sends a discovery inquiry,
// waits for a reply, and on malformed replies derives and sends a NAK
// back, per spec.md §8.2's discovery/NAK scenarios. Each probe run is
// tagged with a random trace ID that labels the run's log lines and
// also seeds the probe's source MUID.
package main

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"github.com/laenzlinger/go-midi2/ci"
	"github.com/laenzlinger/go-midi2/internal/logging"
	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/midi/sysex"
	"github.com/laenzlinger/go-midi2/transport"
)

// stdio wires stdin/stdout together as the single io.ReadWriter
// transport.Stream expects.
type stdio struct {
	io.Reader
	io.Writer
}

// muidFromTrace derives a MUID from a trace UUID's leading 28 bits,
// steering clear of the reserved BroadcastMUID value.
func muidFromTrace(id uuid.UUID) midi.MuidT {
	m := binary.BigEndian.Uint32(id[:4]) & 0x0FFFFFFF
	if m == midi.MuidT(ci.BroadcastMUID) {
		m ^= 1
	}
	return m
}

func main() {
	deviceID := flag.Uint8P("device-id", "d", 0x7F, "device_id to probe (0x7F = broadcast)")
	group := flag.Uint8P("group", "g", 0, "UMP group to send the discovery inquiry on")
	flag.Parse()

	traceID := uuid.New()
	log := logging.New("ci-probe").With("trace", traceID.String())

	srcMUID := muidFromTrace(traceID)
	id := ci.Identity{Manufacturer: 0, Family: 0, Model: 0, Revision: 0}
	sx := ci.NewDiscoveryInquiry(*deviceID, srcMUID, id, ci.CategoryProtocolNegotiation|ci.CategoryPropertyExchange, 512, 0)

	g := midi.GroupT(*group)
	var s *transport.Stream
	s = transport.New(stdio{os.Stdin, os.Stdout}, g, func(p midi.Packet) {
		onPacket(log, s, p, srcMUID)
	}, nil)

	for _, pkt := range sysex.FragmentSysex7(g, sx) {
		if err := s.Send(pkt); err != nil {
			log.Fatal("failed to send discovery inquiry", "err", err)
		}
	}
	log.Info("discovery inquiry sent", "src_muid", srcMUID, "device_id", *deviceID)

	if err := s.Run(); err != nil {
		log.Fatal("stream ended", "err", err)
	}
}

func onPacket(log interface {
	Info(string, ...any)
	Error(string, ...any)
}, out *transport.Stream, p midi.Packet, ourMUID midi.MuidT) {
	// A real endpoint would reassemble multi-packet fragments; a probe
	// reply is small enough to always arrive as a single complete packet.
	sv, ok := sysex.NewSysex7View(p)
	if !ok {
		return
	}

	view, ok := ci.NewView(sv.Payload())
	if !ok {
		var details ci.ACKDetails
		log.Error("received malformed CI message, cannot derive NAK without a valid envelope", "details", details)
		return
	}
	if view.DstMUID() != ourMUID && view.DstMUID() != ci.BroadcastMUID {
		return
	}

	switch view.Subtype() {
	case ci.SubtypeDiscoveryReply:
		dv, ok := ci.NewDiscoveryView(sv.Payload())
		if !ok {
			var details ci.ACKDetails
			nak := ci.NewNAKFrom(view, 1, 0, details, "malformed discovery reply")
			sendSysex(out, p, nak)
			return
		}
		log.Info("discovery reply received", "src_muid", dv.SrcMUID(), "categories", dv.Categories())
	default:
		log.Info("CI message received", "subtype", view.Subtype())
	}
}

func sendSysex(out *transport.Stream, reference midi.Packet, payload []byte) {
	for _, pkt := range sysex.FragmentSysex7(reference.Group(), payload) {
		_ = out.Send(pkt)
	}
}
