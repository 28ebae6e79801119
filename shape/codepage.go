package shape

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// UTF8 is code page name written into .cpg of every produced shapefile.
const UTF8 = "UTF-8"

// DBF header byte 29 - language driver id. Only ids likely to be seen in
// Polish datasets and common defaults are known.
var ldids = map[byte]string{
	0x01: "IBM437",
	0x02: "IBM850",
	0x03: "windows-1252",
	0x57: "ISO-8859-1",
	0x64: "IBM852",
	0xC8: "windows-1250",
	0xC9: "windows-1251",
}

// normalizeCodePage converts .cpg content to IANA name. ArcGIS style numeric
// values ("1250", "88592", "CP852") are common there.
func normalizeCodePage(cpg string) string {
	cpg = strings.TrimSpace(cpg)
	upper := strings.ToUpper(cpg)
	switch {
	case upper == "UTF8" || upper == "65001":
		return UTF8
	case strings.HasPrefix(upper, "8859"):
		return "ISO-8859-" + strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(upper, "8859"), "_"), "0")
	case strings.HasPrefix(upper, "CP") && isDigits(upper[2:]):
		cpg = upper[2:]
	}
	if isDigits(cpg) {
		if strings.HasPrefix(cpg, "125") {
			return "windows-" + cpg
		}
		return "IBM" + cpg
	}
	return cpg
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// detectCodePage returns name of the code page attribute values are stored
// in: .cpg content first, DBF language driver id next. Empty string means
// nothing was found.
func detectCodePage(path string) string {
	if data, err := os.ReadFile(sidecar(path, ".cpg")); err == nil {
		if name := normalizeCodePage(string(data)); len(name) > 0 {
			return name
		}
	}
	f, err := os.Open(sidecar(path, ".dbf"))
	if err != nil {
		return ""
	}
	defer f.Close()

	var hdr [32]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return ""
	}
	return ldids[hdr[29]]
}

// textDecoder turns raw DBF bytes into valid UTF-8.
type textDecoder struct {
	name string
	dec  *encoding.Decoder
}

func newTextDecoder(name string) (*textDecoder, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown code page %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported code page %q", name)
	}
	td := &textDecoder{name: name}
	if enc != unicode.UTF8 {
		td.dec = enc.NewDecoder()
	}
	return td, nil
}

func (td *textDecoder) decode(s string) string {
	if td.dec != nil {
		if out, err := td.dec.String(s); err == nil {
			return out
		}
	}
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "�")
}
