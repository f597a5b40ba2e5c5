// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package pngchunk

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

var testHeader = Header{Width: 2, Height: 2, BitDepth: 8, ColorType: RGB}

// buildStream writes a datastream with the given IDAT payloads and
// returns its bytes.
func buildStream(t *testing.T, payloads ...[]byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := NewWriter(&buffer)
	if err := writer.WriteHeader(testHeader); err != nil {
		t.Fatalf("WriteHeader() error: %v", err)
	}
	for _, payload := range payloads {
		if err := writer.WriteChunk(Chunk{Type: IDAT, Data: payload}); err != nil {
			t.Fatalf("WriteChunk(IDAT) error: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if writer.Written() != int64(buffer.Len()) {
		t.Errorf("Written() = %d, buffer has %d bytes", writer.Written(), buffer.Len())
	}
	return buffer.Bytes()
}

func TestParse_RoundTrip(t *testing.T) {
	data := buildStream(t, []byte("first"), []byte("second"))

	if !bytes.Equal(data[:8], Signature[:]) {
		t.Fatalf("stream starts with % x, want signature", data[:8])
	}

	file, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if file.Header != testHeader {
		t.Errorf("Header = %+v, want %+v", file.Header, testHeader)
	}

	wantTypes := []Type{IHDR, IDAT, IDAT, IEND}
	types := file.Types()
	if len(types) != len(wantTypes) {
		t.Fatalf("Types() = %v, want %v", types, wantTypes)
	}
	for i := range wantTypes {
		if types[i] != wantTypes[i] {
			t.Errorf("chunk %d = %s, want %s", i, types[i], wantTypes[i])
		}
	}
	if got := string(file.ImageData()); got != "firstsecond" {
		t.Errorf("ImageData() = %q, want %q", got, "firstsecond")
	}
	if file.Frames[1].Offset != 8+25 {
		t.Errorf("first IDAT offset = %d, want 33", file.Frames[1].Offset)
	}
	for _, frame := range file.Frames {
		if !frame.CRCValid() {
			t.Errorf("%s chunk reports invalid CRC", frame.Type)
		}
	}
}

func TestParse_Failures(t *testing.T) {
	good := buildStream(t, []byte("data"))

	corruptCRC := bytes.Clone(good)
	corruptCRC[8+8+HeaderLength] ^= 0xff // first CRC byte of IHDR

	corruptSignature := bytes.Clone(good)
	corruptSignature[1] = 'p'

	trailing := append(bytes.Clone(good), 0x00)

	var ihdrOnly bytes.Buffer
	ihdrOnly.Write(Signature[:])
	testHeader.Chunk().WriteTo(&ihdrOnly)
	Chunk{Type: IEND}.WriteTo(&ihdrOnly)

	var idatFirst bytes.Buffer
	idatFirst.Write(Signature[:])
	Chunk{Type: IDAT, Data: []byte("x")}.WriteTo(&idatFirst)
	Chunk{Type: IEND}.WriteTo(&idatFirst)

	var split bytes.Buffer
	split.Write(Signature[:])
	testHeader.Chunk().WriteTo(&split)
	Chunk{Type: IDAT, Data: []byte("a")}.WriteTo(&split)
	Chunk{Type: Type{'t', 'E', 'X', 't'}, Data: []byte("k\x00v")}.WriteTo(&split)
	Chunk{Type: IDAT, Data: []byte("b")}.WriteTo(&split)
	Chunk{Type: IEND}.WriteTo(&split)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"crc mismatch", corruptCRC, ErrCRCMismatch},
		{"bad signature", corruptSignature, ErrBadSignature},
		{"empty", nil, ErrBadSignature},
		{"truncated", good[:len(good)-6], ErrTruncated},
		{"missing IEND", good[:len(good)-12], ErrTruncated},
		{"trailing bytes", trailing, ErrChunkOrder},
		{"no IDAT", ihdrOnly.Bytes(), ErrChunkOrder},
		{"IDAT before IHDR", idatFirst.Bytes(), ErrChunkOrder},
		{"split IDAT run", split.Bytes(), ErrChunkOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReader_ReportsCRCAndContinues(t *testing.T) {
	data := buildStream(t, []byte("data"))
	// Corrupt the IDAT payload so its CRC no longer matches.
	idatDataOffset := 8 + (12 + HeaderLength) + 8
	data[idatDataOffset] ^= 0x01

	reader, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}

	var mismatches int
	var seen []Type
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var crcErr *CRCError
		if errors.As(err, &crcErr) {
			mismatches++
			if crcErr.Type != IDAT {
				t.Errorf("CRC error on %s, want IDAT", crcErr.Type)
			}
		} else if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		seen = append(seen, frame.Type)
	}

	if mismatches != 1 {
		t.Errorf("got %d CRC mismatches, want 1", mismatches)
	}
	if len(seen) != 3 || seen[2] != IEND {
		t.Errorf("walked %v, want IHDR IDAT IEND", seen)
	}
}

func TestReader_Limit(t *testing.T) {
	data := buildStream(t, bytes.Repeat([]byte{0xaa}, 100))

	reader, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}
	reader.SetLimit(50)

	if _, err := reader.Next(); err != nil {
		t.Fatalf("Next(IHDR) error: %v", err)
	}
	if _, err := reader.Next(); !errors.Is(err, ErrChunkTooLarge) {
		t.Errorf("Next(IDAT) error = %v, want ErrChunkTooLarge", err)
	}
}

func TestWriter_Ordering(t *testing.T) {
	textChunk := Chunk{Type: Type{'t', 'E', 'X', 't'}, Data: []byte("a\x00b")}

	tests := []struct {
		name  string
		steps func(*Writer) error
	}{
		{"chunk before header", func(w *Writer) error {
			return w.WriteChunk(Chunk{Type: IDAT})
		}},
		{"header twice", func(w *Writer) error {
			w.WriteHeader(testHeader)
			return w.WriteHeader(testHeader)
		}},
		{"explicit IEND", func(w *Writer) error {
			w.WriteHeader(testHeader)
			return w.WriteChunk(Chunk{Type: IEND})
		}},
		{"close without data", func(w *Writer) error {
			w.WriteHeader(testHeader)
			return w.Close()
		}},
		{"split IDAT", func(w *Writer) error {
			w.WriteHeader(testHeader)
			w.WriteChunk(Chunk{Type: IDAT, Data: []byte("a")})
			w.WriteChunk(textChunk)
			return w.WriteChunk(Chunk{Type: IDAT, Data: []byte("b")})
		}},
		{"after close", func(w *Writer) error {
			w.WriteHeader(testHeader)
			w.WriteChunk(Chunk{Type: IDAT, Data: []byte("a")})
			w.Close()
			return w.WriteChunk(textChunk)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewWriter(io.Discard)
			if err := tt.steps(writer); !errors.Is(err, ErrChunkOrder) {
				t.Errorf("error = %v, want ErrChunkOrder", err)
			}
		})
	}
}

func TestWriter_InvalidHeader(t *testing.T) {
	writer := NewWriter(io.Discard)
	err := writer.WriteHeader(Header{Width: 0, Height: 16, BitDepth: 8, ColorType: RGB})
	if err == nil {
		t.Fatal("WriteHeader accepted zero width")
	}
	// The error is sticky.
	if err2 := writer.Close(); err2 != err {
		t.Errorf("Close() = %v, want sticky %v", err2, err)
	}
}

func TestWriter_WriteImageDataSplits(t *testing.T) {
	var buffer bytes.Buffer
	writer := NewWriter(&buffer)
	if err := writer.WriteHeader(testHeader); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteImageData([]byte("abcdefghij"), 4); err != nil {
		t.Fatalf("WriteImageData() error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	file, err := Parse(buffer.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	var idats int
	for _, frame := range file.Frames {
		if frame.Type == IDAT {
			idats++
		}
	}
	if idats != 3 {
		t.Errorf("got %d IDAT chunks, want 3", idats)
	}
	if string(file.ImageData()) != "abcdefghij" {
		t.Errorf("ImageData() = %q", file.ImageData())
	}
}

func TestCheckStructure(t *testing.T) {
	ihdr := Frame{Chunk: testHeader.Chunk()}
	idat := Frame{Chunk: Chunk{Type: IDAT, Data: []byte("z")}}
	iend := Frame{Chunk: Chunk{Type: IEND}}
	text := Frame{Chunk: Chunk{Type: Type{'t', 'E', 'X', 't'}}}

	tests := []struct {
		name    string
		frames  []Frame
		wantErr bool
	}{
		{"minimal", []Frame{ihdr, idat, iend}, false},
		{"ancillary around data", []Frame{ihdr, text, idat, idat, text, iend}, false},
		{"empty", nil, true},
		{"missing IEND", []Frame{ihdr, idat}, true},
		{"IEND not last", []Frame{ihdr, idat, iend, text}, true},
		{"IEND with data", []Frame{ihdr, idat, {Chunk: Chunk{Type: IEND, Data: []byte{1}}}}, true},
		{"bad IHDR payload", []Frame{{Chunk: Chunk{Type: IHDR, Data: []byte{1, 2}}}, idat, iend}, true},
		{"IHDR twice", []Frame{ihdr, ihdr, idat, iend}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, err := CheckStructure(tt.frames)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckStructure() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && header != testHeader {
				t.Errorf("header = %+v, want %+v", header, testHeader)
			}
		})
	}
}
