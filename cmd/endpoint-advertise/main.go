// Command endpoint-advertise registers a Bonjour/mDNS service for a
// UMP endpoint and answers endpoint discovery with an endpoint-info
// reply over stdin/stdout (function-block discovery is only logged),
// the UMP-native analogue of the teacher's
// zeroconf.Register call (which advertised an RTP-MIDI session
// instead). Stream messages have no legacy byte-stream encoding, so
// this command reads/writes raw Universal Packets rather than going
// through the byte-stream transport.
package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grandcat/zeroconf"
	flag "github.com/spf13/pflag"

	"github.com/laenzlinger/go-midi2/internal/logging"
	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/midi/stream"
	"github.com/laenzlinger/go-midi2/transport"
)

func main() {
	name := flag.StringP("name", "n", "go-midi2-endpoint", "Bonjour service name")
	port := flag.IntP("port", "p", 7005, "service port advertised over Bonjour")
	numFunctionBlocks := flag.Uint8P("function-blocks", "f", 1, "number of function blocks to advertise")
	flag.Parse()

	log := logging.New("endpoint-advertise")

	server, err := zeroconf.Register(*name, "_apple-midi._udp", "local.", *port, []string{"txtv=0"}, nil)
	if err != nil {
		log.Fatal("bonjour registration failed", "err", err)
	}
	defer server.Shutdown()

	done := make(chan error, 1)
	go func() { done <- serve(log, os.Stdin, os.Stdout, *numFunctionBlocks) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Error("stream ended", "err", err)
		}
	case <-sig:
		log.Info("shutting down")
	}
}

func serve(log interface {
	Info(string, ...any)
	Error(string, ...any)
}, r io.Reader, w io.Writer, numFunctionBlocks byte) error {
	in := transport.NewUMPReader(r)
	for {
		p, err := in.ReadPacket()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		onPacket(log, w, p, numFunctionBlocks)
	}
}

func onPacket(log interface {
	Info(string, ...any)
	Error(string, ...any)
}, w io.Writer, p midi.Packet, numFunctionBlocks byte) {
	if !stream.IsStreamMessage(p) {
		return
	}
	if _, ok := stream.NewEndpointDiscoveryView(p); ok {
		log.Info("endpoint discovery received")
		reply := stream.NewEndpointInfoMessage(numFunctionBlocks, true, 0, 0, 1, 0)
		if err := transport.WriteUMPPacket(w, reply); err != nil {
			log.Error("failed to send endpoint info reply", "err", err)
		}
		return
	}
	if v, ok := stream.NewFunctionBlockDiscoveryView(p); ok {
		log.Info("function block discovery received", "filter", v.Filter())
	}
}
