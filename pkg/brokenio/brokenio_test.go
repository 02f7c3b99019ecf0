package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/xmfa/pkg/brokenio"
)

const testData = "This is just some text that should be long enough for testing"

func TestPassThrough(t *testing.T) {
	r := brokenio.NewReader(strings.NewReader(testData))
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if string(b) != testData {
		t.Errorf("got %q want %q", b, testData)
	}
	if r.NByte() != len(testData) {
		t.Errorf("NByte got %d want %d", r.NByte(), len(testData))
	}
}

func TestFailAfter(t *testing.T) {
	for _, n := range []int{0, 1, 10, len(testData) - 1} {
		r := brokenio.NewReader(strings.NewReader(testData))
		r.SetFailAfter(n)
		b, err := io.ReadAll(r)
		if !errors.Is(err, brokenio.ErrInjected) {
			t.Fatalf("n=%d wanted injected error, got %v", n, err)
		}
		if len(b) != n {
			t.Errorf("n=%d got %d bytes before failing", n, len(b))
		}
		if string(b) != testData[:n] {
			t.Errorf("n=%d data damaged %q", n, b)
		}
	}
}

func TestFailAfterEnd(t *testing.T) {
	r := brokenio.NewReader(strings.NewReader(testData))
	r.SetFailAfter(len(testData) + 100)
	if _, err := io.ReadAll(r); err != nil {
		t.Fatal("should reach the end without failing, got", err)
	}
}

func TestChunk(t *testing.T) {
	r := brokenio.NewReader(strings.NewReader(testData))
	r.SetChunk(3)
	b := make([]byte, 100)
	n, err := r.Read(b)
	if err != nil || n != 3 {
		t.Fatalf("chunked read got %d bytes, err %v", n, err)
	}
	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b[:n]) + string(rest); got != testData {
		t.Errorf("chunked data got %q", got)
	}
	if r.NCalled() < len(testData)/3 {
		t.Errorf("only %d calls for chunks of 3", r.NCalled())
	}
}

func TestProbFail(t *testing.T) {
	r := brokenio.NewReader(strings.NewReader(strings.Repeat(testData, 100)))
	r.SetChunk(8)
	r.SetProbFail(1, 1637)
	if _, err := io.ReadAll(r); !errors.Is(err, brokenio.ErrInjected) {
		t.Fatal("probability 1 should always fail, got", err)
	}
}
