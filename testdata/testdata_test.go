package testdata_test

import (
	"strings"
	"testing"

	"github.com/dshills/gox12/testdata"
)

func TestFixtures_NotEmpty(t *testing.T) {
	fixtures := map[string]string{
		"MinimalClaim":          testdata.MinimalClaim,
		"HLDuplicate":           testdata.HLDuplicate,
		"DanglingTrailer":       testdata.DanglingTrailer,
		"LenientUnknownSegment": testdata.LenientUnknownSegment,
		"DelimiterVariation":    testdata.DelimiterVariation,
	}
	for name, fixture := range fixtures {
		if fixture == "" {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestEmpty_IsEmpty(t *testing.T) {
	if testdata.Empty != "" {
		t.Errorf("Empty fixture should be the empty string, got %q", testdata.Empty)
	}
}

func TestMinimalClaim_StartsWithISA(t *testing.T) {
	if !strings.HasPrefix(testdata.MinimalClaim, "ISA*") {
		t.Errorf("MinimalClaim does not start with ISA segment")
	}
	if !strings.HasSuffix(testdata.MinimalClaim, "~") {
		t.Errorf("MinimalClaim does not end with a segment terminator")
	}
}

func TestDelimiterVariation_UsesPipe(t *testing.T) {
	if !strings.HasPrefix(testdata.DelimiterVariation, "ISA|") {
		t.Errorf("DelimiterVariation does not use a pipe element separator")
	}
	if !strings.HasSuffix(testdata.DelimiterVariation, "\n") {
		t.Errorf("DelimiterVariation does not terminate segments with a line feed")
	}
}

func TestDanglingTrailer_HasNoISA(t *testing.T) {
	if strings.Contains(testdata.DanglingTrailer, "ISA") {
		t.Errorf("DanglingTrailer fixture should contain no ISA segment")
	}
}
