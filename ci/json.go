package ci

import "strconv"

// Header builds a canonical, whitespace-free, insertion-ordered JSON
// object for a property-exchange header. encoding/json is deliberately
// not used: PE headers must be byte-for-byte reproducible (the
// replying side often echoes fields verbatim), which a generic
// marshaller does not guarantee field ordering for. See DESIGN.md.
type Header struct {
	keys []string
	vals []string
}

// Str sets a string-valued key, JSON-quoted.
func (h *Header) Str(key, value string) *Header {
	return h.raw(key, quoteJSON(value))
}

// Int sets an integer-valued key, unquoted.
func (h *Header) Int(key string, value int) *Header {
	return h.raw(key, strconv.Itoa(value))
}

func (h *Header) raw(key, rawValue string) *Header {
	for i, k := range h.keys {
		if k == key {
			h.vals[i] = rawValue
			return h
		}
	}
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, rawValue)
	return h
}

// Bytes renders the header as compact JSON bytes.
func (h *Header) Bytes() []byte {
	out := make([]byte, 0, 64)
	out = append(out, '{')
	for i, k := range h.keys {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, quoteJSON(k)...)
		out = append(out, ':')
		out = append(out, h.vals[i]...)
	}
	out = append(out, '}')
	return out
}

func quoteJSON(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			out = append(out, '\\', byte(r))
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, string(r)...)
		}
	}
	out = append(out, '"')
	return string(out)
}

// Well-known PE header keys (spec.md's property-exchange header table).
const (
	KeyResource     = "resource"
	KeyCommand      = "command"
	KeyStatus       = "status"
	KeyID           = "id"
	KeyOffset       = "offset"
	KeyLimit        = "limit"
	KeyEncoding     = "encoding"
	KeyMessage      = "message"
	KeySubscribeID  = "subscribeId"
)

// NewGetHeader builds a GetPropertyData request header for resource.
func NewGetHeader(resource string) []byte {
	return (&Header{}).Str(KeyResource, resource).Bytes()
}

// NewReplyHeader builds a reply header carrying an HTTP-style status.
func NewReplyHeader(status int) []byte {
	return (&Header{}).Int(KeyStatus, status).Bytes()
}

// NewSubscribeHeader builds a subscription request header.
func NewSubscribeHeader(resource, command string) []byte {
	return (&Header{}).Str(KeyResource, resource).Str(KeyCommand, command).Bytes()
}
