package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"blocks/internal/instance"

	"github.com/klauspost/compress/zstd"
)

// instanceMagic prefixes every instance dump.
var instanceMagic = [4]byte{'B', 'L', 'K', 'I'}

// ErrBadMagic is returned when a dump does not start with the instance header.
var ErrBadMagic = errors.New("not an instance dump")

// WriteInstances writes a zstd stream holding the header, the record count
// and the packed vertex-buffer bytes of recs.
func WriteInstances(w io.Writer, recs []instance.Record) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)

	var header [8]byte
	copy(header[:4], instanceMagic[:])
	binary.LittleEndian.PutUint32(header[4:], uint32(len(recs)))
	if _, err := bw.Write(header[:]); err != nil {
		_ = enc.Close()
		return err
	}
	if _, err := bw.Write(instance.AppendPacked(nil, recs)); err != nil {
		_ = enc.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// ReadInstances decodes a stream written by WriteInstances.
func ReadInstances(r io.Reader) ([]instance.Record, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decompress instances: %w", err)
	}
	if len(raw) < 8 || !bytes.Equal(raw[:4], instanceMagic[:]) {
		return nil, ErrBadMagic
	}
	count := binary.LittleEndian.Uint32(raw[4:8])
	body := raw[8:]
	if uint64(len(body)) != uint64(count)*instance.Stride {
		return nil, fmt.Errorf("instance dump: header says %d records, body holds %d bytes", count, len(body))
	}
	return instance.Unpack(body)
}
