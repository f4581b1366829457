// Package codec serializes decoded text and scalar sequences to bytes.
//
// Scalars and LossyScalars carry []utf8codec.Scalar as UTF-8; the remaining
// codecs (CBOR, Msgpack, JSON, Protobuf) are general-purpose and are used by
// memo to store decode results.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
