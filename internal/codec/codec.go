// Package codec implements the deterministic binary encoding used for the
// on-disk graph cache: fixed-width little-endian integers, length-prefixed
// byte strings, homogeneous sequences (including nested sequences), and
// mappings. It is intentionally independent of the domain package so it can
// be reused by anything that needs the same wire shapes.
//
// encoding/binary supplies the little-endian primitives; no general-purpose
// serialization library (gob, protobuf, msgpack) can be made to emit this
// exact versioned, cursor-advancing layout, so there is no third-party
// codec to reach for here — see DESIGN.md.
package codec

import (
	"encoding/binary"
	"math"

	"go.trai.ch/zerr"
)

// ErrShortRead is returned when a decode would read past the end of the buffer.
var ErrShortRead = zerr.New("short read")

// ErrOverflow is returned when an encoded value's length would not fit in a u32 prefix.
var ErrOverflow = zerr.New("value exceeds u32 length prefix")

// ErrTrailingBytes is returned when a decode leaves unconsumed bytes behind.
var ErrTrailingBytes = zerr.New("trailing bytes after decode")

// Writer accumulates encoded bytes in insertion order.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer with cap pre-allocated hint bytes.
func NewWriter(hint int) *Writer {
	return &Writer{buf: make([]byte, 0, hint)}
}

// Bytes returns the accumulated byte stream.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reader walks a byte buffer with a cursor that every decode advances by
// exactly the number of bytes it consumed.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for decoding.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Done reports whether the cursor sits exactly at the buffer end.
func (r *Reader) Done() bool {
	return r.pos == len(r.buf)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, ErrShortRead
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// EncodeU32 appends v as a little-endian u32.
func EncodeU32(w *Writer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// DecodeU32 reads a little-endian u32, advancing the cursor by 4 bytes.
func DecodeU32(r *Reader) (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// EncodeI32 appends v as a little-endian i32.
func EncodeI32(w *Writer, v int32) {
	EncodeU32(w, uint32(v))
}

// DecodeI32 reads a little-endian i32.
func DecodeI32(r *Reader) (int32, error) {
	v, err := DecodeU32(r)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// EncodeString appends s as a u32 length prefix followed by its raw bytes.
func EncodeString(w *Writer, s string) error {
	if len(s) > math.MaxUint32 {
		return zerr.With(zerr.Wrap(ErrOverflow, "encode string"), "kind", "string")
	}
	EncodeU32(w, uint32(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// DecodeString reads a length-prefixed string.
func DecodeString(r *Reader) (string, error) {
	n, err := DecodeU32(r)
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeSeq appends a u32 length followed by each element, encoded by enc in
// insertion order. It composes for nested sequences: pass a seq-encoding enc
// to get seq<seq<T>>.
func EncodeSeq[T any](w *Writer, values []T, enc func(*Writer, T) error) error {
	if len(values) > math.MaxUint32 {
		return zerr.With(zerr.Wrap(ErrOverflow, "encode sequence"), "kind", "sequence")
	}
	EncodeU32(w, uint32(len(values)))
	for _, v := range values {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSeq reads a length-prefixed sequence, decoding each element with dec.
func DecodeSeq[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	n, err := DecodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Entry is one key/value pair of a map being encoded. The caller controls
// the on-wire order by the order of the slice it passes to EncodeMap; a
// decoder reconstructs the mapping by repeated insertion, so that order is
// never observable again after a round trip.
type Entry[K, V any] struct {
	Key K
	Val V
}

// EncodeMap appends a u32 entry count followed by each key/value pair.
func EncodeMap[K, V any](w *Writer, entries []Entry[K, V], encKey func(*Writer, K) error, encVal func(*Writer, V) error) error {
	if len(entries) > math.MaxUint32 {
		return zerr.With(zerr.Wrap(ErrOverflow, "encode map"), "kind", "map")
	}
	EncodeU32(w, uint32(len(entries)))
	for _, e := range entries {
		if err := encKey(w, e.Key); err != nil {
			return err
		}
		if err := encVal(w, e.Val); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap reads a length-prefixed map, reconstructing it by insertion.
func DecodeMap[K comparable, V any](r *Reader, decKey func(*Reader) (K, error), decVal func(*Reader) (V, error)) (map[K]V, error) {
	n, err := DecodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, n)
	for i := uint32(0); i < n; i++ {
		k, err := decKey(r)
		if err != nil {
			return nil, err
		}
		v, err := decVal(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
