// Package console echoes progress lines to a terminal that may not speak
// UTF-8. Runes the terminal charset cannot show are transliterated when
// possible and replaced by '?' otherwise. Printing never fails.
package console

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const replacement = '?'

type Printer struct {
	w   io.Writer
	enc encoding.Encoding
}

// New returns a printer writing to w in the given charset. An empty, unknown
// or UTF-8 charset writes lines unchanged.
func New(w io.Writer, charset string) *Printer {
	return &Printer{w: w, enc: lookup(charset)}
}

func (p *Printer) Println(line string) {
	out := []byte(line)
	if p.enc != nil {
		out = p.encode(line)
	}
	out = append(out, '\n')
	_, _ = p.w.Write(out)
}

func (p *Printer) encode(line string) []byte {
	enc := p.enc.NewEncoder()
	var buf bytes.Buffer
	for _, r := range line {
		if b, err := enc.String(string(r)); err == nil {
			buf.WriteString(b)
			continue
		}
		buf.Write(p.transliterate(enc, r))
	}

	return buf.Bytes()
}

func (p *Printer) transliterate(enc *encoding.Encoder, r rune) []byte {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), string(r))
	if err != nil || folded == "" {
		return []byte{replacement}
	}

	var buf bytes.Buffer
	for _, fr := range folded {
		b, err := enc.String(string(fr))
		if err != nil {
			buf.WriteRune(replacement)
			continue
		}
		buf.WriteString(b)
	}

	return buf.Bytes()
}

// DetectCharset returns the charset part of the locale, e.g. "ISO-8859-1"
// for LANG=de_DE.ISO-8859-1@euro. It is empty when no locale is set.
func DetectCharset() string {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		locale := os.Getenv(name)
		if locale == "" {
			continue
		}
		_, charset, found := strings.Cut(locale, ".")
		if !found {
			return ""
		}
		charset, _, _ = strings.Cut(charset, "@")
		return charset
	}

	return ""
}

func lookup(charset string) encoding.Encoding {
	if isUTF8(charset) {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil
	}

	return enc
}

func isUTF8(charset string) bool {
	name := strings.ToLower(strings.ReplaceAll(charset, "-", ""))
	return name == "" || name == "utf8"
}
