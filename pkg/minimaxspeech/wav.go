package minimaxspeech

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// WAVFromPCM wraps raw little-endian PCM data in a WAV container. Use it
// on synthesis output produced with AudioFormatPCM, which arrives headerless
// at 16 bits per sample.
func WAVFromPCM(pcm []byte, sampleRate, channels, bitsPerSample int) ([]byte, error) {
	if sampleRate < 1 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}
	if bitsPerSample < 8 || bitsPerSample%8 != 0 {
		return nil, fmt.Errorf("invalid bits per sample: %d", bitsPerSample)
	}

	dataSize := len(pcm)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := &bytes.Buffer{}
	buf.Grow(44 + dataSize)
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(pcm)

	return buf.Bytes(), nil
}

// WriteWAVFile writes PCM data to path as a WAV file.
func WriteWAVFile(path string, pcm []byte, sampleRate, channels, bitsPerSample int) error {
	data, err := WAVFromPCM(pcm, sampleRate, channels, bitsPerSample)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
