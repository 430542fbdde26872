package gtts

import (
	"strings"
	"testing"
)

func TestChunkTextShortInput(t *testing.T) {
	chunks := chunkText("I have chest pain", 200)
	if len(chunks) != 1 || chunks[0] != "I have chest pain" {
		t.Errorf("short input should be a single chunk, got %v", chunks)
	}
}

func TestChunkTextSplitsOnWhitespace(t *testing.T) {
	text := strings.Repeat("word ", 100) // ~500 bytes
	chunks := chunkText(text, 200)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 200 {
			t.Errorf("chunk %d exceeds limit: %d bytes", i, len(c))
		}
		if strings.HasPrefix(c, " ") || strings.HasSuffix(c, " ") {
			t.Errorf("chunk %d has surrounding whitespace: %q", i, c)
		}
	}
	if strings.Join(chunks, " ") != strings.TrimSpace(text) {
		t.Error("chunks do not round-trip to the original text")
	}
}

func TestChunkTextEmpty(t *testing.T) {
	if chunks := chunkText("   ", 200); chunks != nil {
		t.Errorf("whitespace-only input should produce no chunks, got %v", chunks)
	}
}
