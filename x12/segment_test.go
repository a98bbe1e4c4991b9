package x12_test

import (
	"testing"

	"github.com/dshills/gox12/x12"
	"github.com/stretchr/testify/assert"
)

func TestParseSegment(t *testing.T) {
	delims := x12.DefaultDelimiters()
	seg := x12.ParseSegment("HL*1**20*1", delims)

	assert.Equal(t, "HL", seg.ID)
	assert.Equal(t, "1", seg.Val(1))
	assert.Equal(t, "", seg.Val(2))
	assert.Equal(t, "20", seg.Val(3))
	assert.Equal(t, "1", seg.Val(4))
}

func TestSegment_El_OutOfRange(t *testing.T) {
	delims := x12.DefaultDelimiters()
	seg := x12.ParseSegment("HL*1", delims)

	assert.Equal(t, x12.Element{}, seg.El(0))
	assert.Equal(t, x12.Element{}, seg.El(99))
}

func TestSegment_Bytes_RoundTrip(t *testing.T) {
	delims := x12.DefaultDelimiters()
	raw := "NM1*85*2*BILLING PROVIDER*****XX*1999999984"
	seg := x12.ParseSegment(raw, delims)

	assert.Equal(t, raw, string(seg.Bytes(delims)))
}

func TestSegment_Bytes_DifferentDelimiters(t *testing.T) {
	parsedWith := x12.DefaultDelimiters()
	seg := x12.ParseSegment("HL*1**20*1", parsedWith)

	pipe := parsedWith
	pipe.Element = '|'
	assert.Equal(t, "HL|1||20|1", string(seg.Bytes(pipe)))
}

func TestElement_Components(t *testing.T) {
	delims := x12.DefaultDelimiters()
	composite := x12.Element{ID: "05", Value: "11:B:1"}

	assert.Equal(t, []string{"11", "B", "1"}, composite.Components(delims))

	simple := x12.Element{ID: "01", Value: "1000"}
	assert.Equal(t, []string{"1000"}, simple.Components(delims))
}

func TestSegment_String(t *testing.T) {
	delims := x12.DefaultDelimiters()
	seg := x12.ParseSegment("ST*837*0001", delims)
	assert.Equal(t, "ST*837*0001", seg.String())
}
