package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression of the encoded form.
type Compression uint8

const (
	// CompressionNone stores values uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 frame compression (fast, modest ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses Zstandard (better ratio, still fast).
	CompressionZSTD Compression = 2
)

// String returns the canonical name of the compression mode.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Encoded datasets start with a fixed header:
//
//	[4]byte magic "SGDS"
//	uint8   format version
//	uint8   compression
//	uint8   kind
//	uint16  name length (little endian) + name bytes
//	uint64  value count (little endian)
//
// The value payload (count * 8 bytes, little endian) follows, wrapped in
// the selected compression frame. Header fields stay uncompressed so a
// reader can identify a dataset without decompressing it.
var magic = [4]byte{'S', 'G', 'D', 'S'}

const formatVersion = 1

// maxEncodedValues caps the decoded value count as a corruption guard.
const maxEncodedValues = 1 << 32

var (
	// ErrBadMagic is returned when the input does not start with the
	// dataset magic bytes.
	ErrBadMagic = errors.New("dataset: bad magic")
)

// ErrUnsupportedVersion indicates an encoded dataset written by an
// incompatible format version.
type ErrUnsupportedVersion struct {
	Version uint8
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("dataset: unsupported format version %d", e.Version)
}

// ErrUnknownCompression indicates an unrecognized compression code.
type ErrUnknownCompression struct {
	Code uint8
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("dataset: unknown compression %d", e.Code)
}

// Encode writes d to w in the binary dataset format.
func Encode(w io.Writer, d *Dataset, compression Compression) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}

	header := []byte{formatVersion, byte(compression), byte(d.Kind)}
	if _, err := bw.Write(header); err != nil {
		return err
	}

	if len(d.Name) > 0xFFFF {
		return fmt.Errorf("dataset: name too long: %d bytes", len(d.Name))
	}
	if err := binary.Write(bw, binary.LittleEndian, uint16(len(d.Name))); err != nil {
		return err
	}
	if _, err := bw.WriteString(d.Name); err != nil {
		return err
	}

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(d.Values))); err != nil {
		return err
	}

	if err := encodePayload(bw, d.Values, compression); err != nil {
		return err
	}

	return bw.Flush()
}

func encodePayload(w io.Writer, values []int64, compression Compression) error {
	payload := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(payload[8*i:], uint64(v))
	}

	switch compression {
	case CompressionNone:
		_, err := w.Write(payload)
		return err
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err := zw.Write(payload); err != nil {
			return err
		}
		return zw.Close()
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if _, err := zw.Write(payload); err != nil {
			return err
		}
		return zw.Close()
	default:
		return &ErrUnknownCompression{Code: uint8(compression)}
	}
}

// Decode reads a dataset in the binary dataset format from r.
func Decode(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)

	var m [4]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, ErrBadMagic
	}

	var header [3]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, err
	}
	if header[0] != formatVersion {
		return nil, &ErrUnsupportedVersion{Version: header[0]}
	}
	compression := Compression(header[1])
	kind := Kind(header[2])

	var nameLen uint16
	if err := binary.Read(br, binary.LittleEndian, &nameLen); err != nil {
		return nil, err
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(br, name); err != nil {
		return nil, err
	}

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	if count > maxEncodedValues {
		return nil, fmt.Errorf("dataset: implausible value count %d", count)
	}

	payload := make([]byte, 8*count)
	if err := decodePayload(br, payload, compression); err != nil {
		return nil, err
	}

	values := make([]int64, count)
	for i := range values {
		values[i] = int64(binary.LittleEndian.Uint64(payload[8*i:]))
	}

	return &Dataset{
		Name:   string(name),
		Kind:   kind,
		Values: values,
	}, nil
}

func decodePayload(r io.Reader, payload []byte, compression Compression) error {
	switch compression {
	case CompressionNone:
		_, err := io.ReadFull(r, payload)
		return err
	case CompressionLZ4:
		_, err := io.ReadFull(lz4.NewReader(r), payload)
		return err
	case CompressionZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return err
		}
		defer zr.Close()
		_, err = io.ReadFull(zr, payload)
		return err
	default:
		return &ErrUnknownCompression{Code: uint8(compression)}
	}
}
