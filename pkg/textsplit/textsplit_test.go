package textsplit

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitShortText(t *testing.T) {
	got := New(100, 20).Split("  勞動基準法第一條。  ")
	if len(got) != 1 || got[0] != "勞動基準法第一條。" {
		t.Errorf("got %q", got)
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := New(0, 0).Split(" \n\n "); len(got) != 0 {
		t.Errorf("expected no chunks, got %q", got)
	}
}

func TestSplitRespectsChunkSize(t *testing.T) {
	para := strings.Repeat("員工應享有特別休假。", 30)
	text := para + "\n\n" + para + "\n\n" + para

	s := New(100, 20)
	chunks := s.Split(text)
	if len(chunks) < 3 {
		t.Fatalf("expected several chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 100 {
			t.Errorf("chunk %d has %d runes", i, n)
		}
	}
}

func TestSplitOverlap(t *testing.T) {
	words := make([]string, 60)
	for i := range words {
		words[i] = "w" + string(rune('a'+i%26))
	}
	chunks := New(30, 10).Split(strings.Join(words, " "))
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	first := strings.Fields(chunks[0])
	lead := strings.Fields(chunks[1])[0]
	found := false
	for _, w := range first[1:] {
		if w == lead {
			found = true
		}
	}
	if !found {
		t.Errorf("expected overlap between %q and %q", chunks[0], chunks[1])
	}
}

func TestSplitUnbrokenText(t *testing.T) {
	text := strings.Repeat("薪", 250)
	chunks := New(100, 0).Split(text)
	total := 0
	for _, c := range chunks {
		n := utf8.RuneCountInString(c)
		if n > 100 {
			t.Errorf("chunk has %d runes", n)
		}
		total += n
	}
	if total != 250 {
		t.Errorf("expected no loss without overlap, got %d runes", total)
	}
}
