package dataio

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/Motwg/RandomForest/pkg/errors"
)

// Decode converts r from the named charset to UTF-8. Names follow the
// WHATWG encoding labels ("latin1", "windows-1250", "gbk", ...). An empty
// name means UTF-8. A leading byte order mark is dropped in every case.
func Decode(r io.Reader, charset string) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.NewValidationError("charset", "unknown encoding", charset)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}
