package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 24

// writeImpulseWAV writes the coefficient vector as a mono WAV impulse
// response, scaled so the largest tap uses full scale.
func writeImpulseWAV(path string, h []float64, sampleRate int) error {
	peak := 0.0
	for _, v := range h {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return fmt.Errorf("all-zero impulse response")
	}

	maxVal := float64(int(1)<<(wavBitDepth-1) - 1)
	data := make([]int, len(h))
	for i, v := range h {
		data[i] = int(v / peak * maxVal)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: wavBitDepth,
		Data:           data,
	}
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return f.Close()
}
