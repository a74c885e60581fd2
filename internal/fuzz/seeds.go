package fuzztests

import (
	"testing"

	"haags/internal/dataset"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addSampleSeeds(f)
	// граничные случаи сегментации
	for _, s := range []string{
		"",
		"\ufeffHet",
		"'t duurde 3,14 lange, bange dagen.",
		"mag\r\nhet",
		"www.denhaag.nl en info@haags.nl",
		"IJsland ijs IJS",
		"...!!??",
		"3.14.",
		"\xff\xfe ongeldig",
	} {
		f.Add([]byte(s))
	}
}

func addSampleSeeds(f *testing.F) {
	samples, err := dataset.DefaultSamples()
	if err != nil {
		return
	}
	for _, s := range samples {
		f.Add(clampSeed([]byte(s.Source)))
		f.Add(clampSeed([]byte(s.Expected)))
	}
}

func clampSeed(b []byte) []byte {
	if len(b) > maxSeedBytes {
		b = b[:maxSeedBytes]
	}
	return append([]byte(nil), b...)
}
