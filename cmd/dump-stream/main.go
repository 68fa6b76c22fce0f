// Command dump-stream feeds stdin through a MIDI 1.0 byte-stream
// parser and hex-dumps every Universal Packet it produces, the
// byte-stream analogue of the teacher's dump-received example (which
// hex-dumped raw RTP-MIDI command payloads).
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/laenzlinger/go-midi2/internal/logging"
	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/transport"
)

func main() {
	group := flag.Uint8P("group", "g", 0, "UMP group to tag decoded packets with")
	flag.Parse()

	log := logging.New("dump-stream")

	s := transport.New(os.Stdin, midi.GroupT(*group), func(p midi.Packet) {
		fmt.Printf("%s\n%s", p, hex.Dump(packetBytes(p)))
	}, nil)

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Error("stream ended", "err", err)
			os.Exit(1)
		}
	case <-sig:
		log.Info("shutting down")
	}
}

func packetBytes(p midi.Packet) []byte {
	out := make([]byte, 4*p.Size())
	for i := 0; i < p.Size(); i++ {
		w := p[i]
		out[i*4] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
	return out
}
