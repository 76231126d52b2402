package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// WAV file header (44 bytes, canonical PCM layout, little-endian)
type wavHeader struct {
	RIFF          [4]byte // "RIFF"
	ChunkSize     uint32  // 36 + data size
	WAVE          [4]byte // "WAVE"
	Fmt           [4]byte // "fmt "
	FmtSize       uint32  // 16 for PCM
	AudioFormat   uint16  // 1 = PCM
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * Channels * BitsPerSample/8
	BlockAlign    uint16 // Channels * BitsPerSample/8
	BitsPerSample uint16
	Data          [4]byte // "data"
	DataSize      uint32
}

const (
	wavHeaderSize    = 44
	wavFormatPCM     = 1
	wavChannels      = 1
	wavBitsPerSample = 16
)

// WAVInfo describes the format fields of a parsed WAV header.
type WAVInfo struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	DataSize      uint32
}

// EncodeWAV wraps 16-bit little-endian mono PCM samples in a WAV container.
//
// Parameters:
//   - pcm: Raw sample bytes (2 bytes per sample)
//   - sampleRate: Sample rate in Hz
//
// Returns:
//   - []byte: 44-byte header followed by pcm
func EncodeWAV(pcm []byte, sampleRate uint32) []byte {
	const bytesPerSample = wavChannels * wavBitsPerSample / 8

	header := wavHeader{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + len(pcm)),
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   wavFormatPCM,
		Channels:      wavChannels,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * bytesPerSample,
		BlockAlign:    bytesPerSample,
		BitsPerSample: wavBitsPerSample,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      uint32(len(pcm)),
	}

	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + len(pcm))
	// Writing a fixed-size struct to a bytes.Buffer cannot fail
	_ = binary.Write(&buf, binary.LittleEndian, &header)
	buf.Write(pcm)
	return buf.Bytes()
}

// ParseWAVHeader reads the format fields of a canonical 44-byte WAV header.
//
// Only the layout produced by EncodeWAV is supported (no extra chunks).
func ParseWAVHeader(r io.Reader) (*WAVInfo, error) {
	var header wavHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read WAV header: %w", err)
	}

	if string(header.RIFF[:]) != "RIFF" || string(header.WAVE[:]) != "WAVE" {
		return nil, fmt.Errorf("invalid WAV magic: %q/%q", header.RIFF[:], header.WAVE[:])
	}
	if string(header.Fmt[:]) != "fmt " || string(header.Data[:]) != "data" {
		return nil, fmt.Errorf("unsupported WAV chunk layout: %q/%q", header.Fmt[:], header.Data[:])
	}
	if header.ChunkSize != 36+header.DataSize {
		return nil, fmt.Errorf("inconsistent WAV chunk size: %d (data size %d)", header.ChunkSize, header.DataSize)
	}

	return &WAVInfo{
		AudioFormat:   header.AudioFormat,
		Channels:      header.Channels,
		SampleRate:    header.SampleRate,
		BitsPerSample: header.BitsPerSample,
		DataSize:      header.DataSize,
	}, nil
}
