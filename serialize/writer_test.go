package serialize_test

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/dshills/gox12/parse"
	"github.com/dshills/gox12/serialize"
)

func TestWriter_Write(t *testing.T) {
	interchange := parseOne(t, sampleClaim)

	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)

	if err := w.Write(interchange); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if buf.String() != sampleClaim {
		t.Errorf("written output mismatch:\n got: %q\nwant: %q", buf.String(), sampleClaim)
	}
}

func TestWriter_Write_Nil(t *testing.T) {
	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)

	if err := w.Write(nil); err == nil {
		t.Error("expected error for nil interchange, got nil")
	}
}

func TestWriter_Close(t *testing.T) {
	interchange := parseOne(t, sampleClaim)

	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)

	if err := w.Write(interchange); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := w.Write(interchange); err == nil {
		t.Error("expected error writing after close, got nil")
	}
}

func TestWriter_Close_Idempotent(t *testing.T) {
	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)

	if err := w.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWriter_Flush_AfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Flush(); err == nil {
		t.Error("expected error flushing after close, got nil")
	}
}

func TestWriter_WithLineEnding(t *testing.T) {
	interchange := parseOne(t, sampleClaim)

	var buf bytes.Buffer
	w := serialize.NewWriter(&buf, serialize.WithLineEnding("\r\n"))

	if err := w.Write(interchange); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("~\r\n")) {
		t.Errorf("output does not contain expected line ending, got %q", buf.String())
	}
}

func TestWriter_Concurrent(t *testing.T) {
	interchange := parseOne(t, sampleClaim)

	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)

	var wg sync.WaitGroup
	const n = 10
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Write(interchange); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Write() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty buffer after concurrent writes")
	}
}

type failingWriter struct{ err error }

func (fw *failingWriter) Write(_ []byte) (int, error) { return 0, fw.err }

func TestWriter_WriteError(t *testing.T) {
	interchange := parseOne(t, sampleClaim)

	fw := &failingWriter{err: errors.New("write failed")}
	w := serialize.NewWriter(fw)

	if err := w.Write(interchange); err == nil {
		t.Error("expected write error, got nil")
	}
}

func TestWriter_ImplementsCloser(t *testing.T) {
	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)

	var closer io.Closer = w
	if closer == nil {
		t.Error("Writer does not implement io.Closer")
	}
}

func BenchmarkWriter_Write(b *testing.B) {
	p := parse.New()
	nodes, err := p.ParseString(sampleClaim)
	if err != nil {
		b.Fatalf("parse failed: %v", err)
	}
	interchange := nodes[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		w := serialize.NewWriter(&buf)
		if err := w.Write(interchange); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}
