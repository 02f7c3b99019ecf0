// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/andrew-torda/xmfa/pkg/zwrap"
)

const plain = "#FormatVersion Parsnp v1.1\n"

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// closeCounter notices if Close was called
type closeCounter struct {
	io.Reader
	n int
}

func (c *closeCounter) Close() error { c.n++; return nil }

func TestWrap(t *testing.T) {
	if _, err := zwrap.Wrap(io.NopCloser(bytes.NewReader([]byte(plain)))); err == nil {
		t.Error("Wrap should fail on uncompressed input")
	}
	cc := &closeCounter{Reader: bytes.NewReader(gzipped(t, plain))}
	z, err := zwrap.Wrap(cc)
	if err != nil {
		t.Fatal("Fail on correctly gzipped data", err)
	}
	b, err := io.ReadAll(z)
	if err != nil || string(b) != plain {
		t.Errorf("got %q, err %v", b, err)
	}
	if err := z.Close(); err != nil {
		t.Error("Error closing:", err)
	}
	if cc.n != 1 {
		t.Error("underlying reader closed", cc.n, "times")
	}
}

// Calling WrapMaybe should not fail since it guesses if the data
// is compressed or not.
func TestWrapMaybe(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		want       string
		compressed bool
	}{
		{"gzipped", gzipped(t, plain), plain, true},
		{"plain", []byte(plain), plain, false},
		{"empty", nil, "", false},
		{"one byte", []byte{0x1f}, "\x1f", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := &closeCounter{Reader: bytes.NewReader(tt.data)}
			z, err := zwrap.WrapMaybe(cc)
			if err != nil {
				t.Fatal("WrapMaybe", err)
			}
			if z.Compressed() != tt.compressed {
				t.Errorf("Compressed() got %v", z.Compressed())
			}
			b, err := io.ReadAll(z)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Errorf("got %q want %q", b, tt.want)
			}
			if err := z.Close(); err != nil || cc.n != 1 {
				t.Errorf("close err %v, closed %d times", err, cc.n)
			}
		})
	}
}

// The magic number alone is not enough for the gzip reader.
func TestWrapMaybeBad(t *testing.T) {
	cc := &closeCounter{Reader: bytes.NewReader([]byte{0x1f, 0x8b, 0})}
	if _, err := zwrap.WrapMaybe(cc); err == nil {
		t.Error("broken gzip header accepted")
	}
}
