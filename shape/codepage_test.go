package shape

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeCodePage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UTF-8", "UTF-8"},
		{"utf8\r\n", "UTF-8"},
		{"65001", "UTF-8"},
		{"1250", "windows-1250"},
		{"CP1250", "windows-1250"},
		{"cp852", "IBM852"},
		{"88592", "ISO-8859-2"},
		{"8859_2", "ISO-8859-2"},
		{"ISO-8859-2", "ISO-8859-2"},
		{" ", ""},
	}
	for _, tt := range tests {
		if got := normalizeCodePage(tt.in); got != tt.want {
			t.Errorf("normalizeCodePage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextDecoder(t *testing.T) {
	td, err := newTextDecoder("windows-1250")
	if err != nil {
		t.Fatalf("newTextDecoder() error = %v", err)
	}
	if got := td.decode("\xb3\xb9ka"); got != "łąka" {
		t.Errorf("decode() = %q, want łąka", got)
	}

	td, err = newTextDecoder(UTF8)
	if err != nil {
		t.Fatalf("newTextDecoder(UTF-8) error = %v", err)
	}
	if got := td.decode("łąka"); got != "łąka" {
		t.Errorf("decode() = %q, want łąka", got)
	}
	if got := td.decode("a\xffb"); got != "a�b" {
		t.Errorf("decode() of invalid input = %q, want a�b", got)
	}

	if _, err := newTextDecoder("no-such-code-page"); err == nil {
		t.Error("newTextDecoder() expected error for unknown code page")
	}
}

func TestDetectCodePage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.shp")

	if got := detectCodePage(path); got != "" {
		t.Errorf("detectCodePage() without files = %q, want empty", got)
	}

	dbf := make([]byte, 32)
	dbf[29] = 0xC8
	if err := os.WriteFile(filepath.Join(dir, "a.dbf"), dbf, 0644); err != nil {
		t.Fatal(err)
	}
	if got := detectCodePage(path); got != "windows-1250" {
		t.Errorf("detectCodePage() from language driver = %q, want windows-1250", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "a.cpg"), []byte("88592"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := detectCodePage(path); got != "ISO-8859-2" {
		t.Errorf("detectCodePage() from .cpg = %q, want ISO-8859-2", got)
	}
}
