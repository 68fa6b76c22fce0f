package transport

import (
	"bytes"
	"io"
	"testing"

	"github.com/laenzlinger/go-midi2/midi/stream"
	"github.com/stretchr/testify/assert"
)

func Test_UMPRoundTripMultiWordPacket(t *testing.T) {
	p := stream.NewEndpointInfoMessage(2, true, 0, 0, 1, 0)

	var buf bytes.Buffer
	assert.NoError(t, WriteUMPPacket(&buf, p))

	r := NewUMPReader(&buf)
	got, err := r.ReadPacket()
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}

func Test_UMPReaderPropagatesEOF(t *testing.T) {
	r := NewUMPReader(bytes.NewReader(nil))
	_, err := r.ReadPacket()
	assert.ErrorIs(t, err, io.EOF)
}
