package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"speech-search/internal/app/model"
	"speech-search/internal/app/repository"
)

// TranscriptFixture is a text/language pair to seed a store with
type TranscriptFixture struct {
	Text     string
	Language string
}

// TestTranscripts provides sample transcripts in mixed case and languages
var TestTranscripts = []TranscriptFixture{
	{Text: "Hello World, this is a test recording.", Language: "english"},
	{Text: "Welcome to our podcast. Today we discuss machine learning.", Language: "english"},
	{Text: "namaste duniya", Language: "hindi"},
	{Text: "The WORLD cup final was watched by millions.", Language: "english"},
	{Text: "Vanakkam ulagam", Language: "tamil"},
}

// SeedStore inserts fixtures into store in order and returns the stored records
func SeedStore(t *testing.T, store repository.TranscriptStore, fixtures ...TranscriptFixture) []*model.Transcript {
	t.Helper()
	if len(fixtures) == 0 {
		fixtures = TestTranscripts
	}

	records := make([]*model.Transcript, 0, len(fixtures))
	for _, fixture := range fixtures {
		record, err := store.Insert(context.Background(), fixture.Text, fixture.Language)
		if err != nil {
			t.Fatalf("Failed to seed transcript %q: %v", fixture.Text, err)
		}
		records = append(records, record)
	}
	return records
}

// TestWAV is a minimal 16 kHz mono PCM WAV file with 2048 bytes of silence
var TestWAV = append([]byte{
	0x52, 0x49, 0x46, 0x46, // "RIFF"
	0x24, 0x08, 0x00, 0x00, // File size (2084 bytes)
	0x57, 0x41, 0x56, 0x45, // "WAVE"
	0x66, 0x6D, 0x74, 0x20, // "fmt "
	0x10, 0x00, 0x00, 0x00, // Chunk size
	0x01, 0x00, // Audio format (PCM)
	0x01, 0x00, // Channels (mono)
	0x80, 0x3E, 0x00, 0x00, // Sample rate (16000)
	0x00, 0x7D, 0x00, 0x00, // Byte rate
	0x02, 0x00, // Block align
	0x10, 0x00, // Bits per sample
	0x64, 0x61, 0x74, 0x61, // "data"
	0x00, 0x08, 0x00, 0x00, // Data size (2048 bytes)
}, make([]byte, 2048)...)

// CreateTestAudioFile writes TestWAV under a fresh temp dir with the base
// name of filename and returns its path
func CreateTestAudioFile(t *testing.T, filename string) string {
	t.Helper()
	return writeTempFile(t, filename, TestWAV)
}

// CreateEmptyFile creates an empty file for testing
func CreateEmptyFile(t *testing.T, filename string) string {
	t.Helper()
	return writeTempFile(t, filename, nil)
}

func writeTempFile(t *testing.T, filename string, data []byte) string {
	t.Helper()
	fullPath := filepath.Join(t.TempDir(), filepath.Base(filename))
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", fullPath, err)
	}
	return fullPath
}
