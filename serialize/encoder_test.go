package serialize_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dshills/gox12/parse"
	"github.com/dshills/gox12/serialize"
	"github.com/dshills/gox12/tree"
)

// sampleClaim is a small but structurally complete 837 interchange:
// one functional group, one transaction, a three-level HL chain
// (billing provider -> subscriber -> patient), and a claim loop
// nesting a service line loop.
const sampleClaim = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *201310*1517*^*00501*000000905*0*T*:~" +
	"GS*HC*SENDER*RECEIVER*20131015*1517*1*X*005010X222~" +
	"ST*837*0001~" +
	"BHT*0019*00*0001*20131015*1517*CH~" +
	"HL*1**20*1~" +
	"NM1*85*2*BILLING PROVIDER*****XX*1999999984~" +
	"HL*2*1*22*1~" +
	"SBR*P*18*******CI~" +
	"NM1*IL*1*DOE*JOHN****MI*123456789A~" +
	"HL*3*2*23*0~" +
	"PAT*19~" +
	"CLM*1000*500***11:B:1*Y*A*Y*Y~" +
	"LX*1~" +
	"SV1*HC:99213*500*UN*1***1~" +
	"SE*13*0001~" +
	"GE*1*1~" +
	"IEA*1*000000905~"

func parseOne(t *testing.T, raw string) *tree.Node {
	t.Helper()
	p := parse.New()
	nodes, err := p.ParseString(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 interchange, got %d", len(nodes))
	}
	return nodes[0]
}

func TestSerializer_RoundTrip(t *testing.T) {
	interchange := parseOne(t, sampleClaim)

	ser := serialize.New()
	out, err := ser.Serialize(interchange)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	if string(out) != sampleClaim {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", out, sampleClaim)
	}

	reparsed := parseOne(t, string(out))
	if reparsed.ISA.Elements[12] != interchange.ISA.Elements[12] {
		t.Errorf("control number mismatch after round trip: got %q, want %q",
			reparsed.ISA.Elements[12], interchange.ISA.Elements[12])
	}
}

func TestSerializer_Nil(t *testing.T) {
	ser := serialize.New()
	if _, err := ser.Serialize(nil); err == nil {
		t.Error("expected error for nil interchange, got nil")
	}
}

func TestSerializer_WrongKind(t *testing.T) {
	ser := serialize.New()
	notInterchange := &tree.Node{Kind: tree.KindTransaction}
	if _, err := ser.Serialize(notInterchange); err == nil {
		t.Error("expected error for non-interchange node, got nil")
	}
}

func TestSerializer_WithLineEnding(t *testing.T) {
	interchange := parseOne(t, sampleClaim)

	ser := serialize.New(serialize.WithLineEnding("\n"))
	out, err := ser.Serialize(interchange)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !bytes.Contains(out, []byte("~\n")) {
		t.Errorf("expected a newline after every terminator, got %q", out)
	}
}

func TestSerializer_SerializeToWriter(t *testing.T) {
	interchange := parseOne(t, sampleClaim)
	ser := serialize.New()

	var buf bytes.Buffer
	if err := ser.SerializeToWriter(context.Background(), &buf, interchange); err != nil {
		t.Fatalf("SerializeToWriter() error = %v", err)
	}

	want, err := ser.Serialize(interchange)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("SerializeToWriter output differs from Serialize output")
	}
}

func TestSerializer_SerializeToWriter_ContextCancellation(t *testing.T) {
	interchange := parseOne(t, sampleClaim)
	ser := serialize.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := ser.SerializeToWriter(ctx, &buf, interchange)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type errorWriter struct{ err error }

func (w *errorWriter) Write(_ []byte) (int, error) { return 0, w.err }

func TestSerializer_SerializeToWriter_WriteError(t *testing.T) {
	interchange := parseOne(t, sampleClaim)
	ser := serialize.New()

	writeErr := errors.New("write failed")
	err := ser.SerializeToWriter(context.Background(), &errorWriter{err: writeErr}, interchange)
	if err == nil {
		t.Error("expected write error, got nil")
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *serialize.Error
		contains []string
	}{
		{
			name:     "basic error",
			err:      &serialize.Error{Message: "broken"},
			contains: []string{"broken"},
		},
		{
			name:     "error with segment",
			err:      &serialize.Error{Message: "failed", Segment: "CLM"},
			contains: []string{"failed", "CLM"},
		},
		{
			name:     "error with cause",
			err:      &serialize.Error{Message: "failed", Cause: errors.New("underlying")},
			contains: []string{"failed", "underlying"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			for _, want := range tt.contains {
				if !bytes.Contains([]byte(got), []byte(want)) {
					t.Errorf("error message %q does not contain %q", got, want)
				}
			}
		})
	}
}

func BenchmarkSerializer_Serialize(b *testing.B) {
	p := parse.New()
	nodes, err := p.ParseString(sampleClaim)
	if err != nil {
		b.Fatalf("parse failed: %v", err)
	}
	ser := serialize.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ser.Serialize(nodes[0]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerializer_RoundTrip(b *testing.B) {
	p := parse.New()
	ser := serialize.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nodes, err := p.ParseString(sampleClaim)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := ser.Serialize(nodes[0]); err != nil {
			b.Fatal(err)
		}
	}
}
