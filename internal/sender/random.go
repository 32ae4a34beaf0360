package sender

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// IDSource produces client random IDs for outgoing requests. The server
// uses the ID to deduplicate retried sends, so values must be unique per
// outgoing message. Reads from crypto/rand, which is safe for concurrent
// use.
type IDSource struct {
	rand io.Reader
}

// NewIDSource creates an IDSource backed by the system CSPRNG.
func NewIDSource() *IDSource {
	return &IDSource{rand: rand.Reader}
}

// Next returns a fresh non-zero random ID.
func (s *IDSource) Next() (int64, error) {
	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.rand, buf[:]); err != nil {
			return 0, fmt.Errorf("reading random id: %w", err)
		}
		if id := int64(binary.LittleEndian.Uint64(buf[:])); id != 0 {
			return id, nil
		}
	}
}

// NextN returns n fresh random IDs, for requests that dispatch several
// messages at once.
func (s *IDSource) NextN(n int) ([]int64, error) {
	ids := make([]int64, n)
	for i := range ids {
		id, err := s.Next()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
