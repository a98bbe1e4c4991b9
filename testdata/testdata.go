// Package testdata provides small, hand-built X12 interchange
// fixtures exercising the seed scenarios: an empty stream, a minimal
// multi-level claim, a duplicate HL identifier, a dangling trailer, a
// lenient-mode unknown segment, and a non-default delimiter set.
package testdata

// Empty is scenario S1: an empty input stream. parse_multiple(Empty)
// must return an empty interchange list and no error.
const Empty = ""

// MinimalClaim is a structurally complete 837-shaped interchange: one
// functional group, one transaction, a three-level HL chain (billing
// provider -> subscriber -> patient), and a claim loop nesting a
// service line loop. It parses without warnings in either mode.
const MinimalClaim = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *201310*1517*^*00501*000000905*0*T*:~" +
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

// HLDuplicate is scenario S3: two HL segments both carrying HL01="1"
// in the same transaction. Both strict and lenient parses must raise
// an aggregate error containing a HLoopIdExists structural error; the
// duplicate is never downgraded to a warning.
const HLDuplicate = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *201310*1517*^*00501*000000906*0*T*:~" +
	"GS*HC*SENDER*RECEIVER*20131015*1517*1*X*005010X222~" +
	"ST*837*0001~" +
	"BHT*0019*00*0001*20131015*1517*CH~" +
	"HL*1**20*1~" +
	"NM1*85*2*BILLING PROVIDER*****XX*1999999984~" +
	"HL*1**20*1~" +
	"NM1*85*2*DUPLICATE PROVIDER*****XX*1888888888~" +
	"SE*7*0001~" +
	"GE*1*1~" +
	"IEA*1*000000906~"

// DanglingTrailer is scenario S4: an IEA with no preceding ISA.
// Expected: an aggregate error with one MismatchSegment.
const DanglingTrailer = "IEA*1*000000001~"

// LenientUnknownSegment is scenario S5: a ZZZ segment inside the
// claim loop that the embedded specification does not recognize.
// Strict mode raises SegmentCannotBeIdentified; lenient mode emits a
// warning and force-attaches ZZZ to the claim loop, the container
// that was current before the placement walk began.
const LenientUnknownSegment = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *201310*1517*^*00501*000000907*0*T*:~" +
	"GS*HC*SENDER*RECEIVER*20131015*1517*1*X*005010X222~" +
	"ST*837*0001~" +
	"BHT*0019*00*0001*20131015*1517*CH~" +
	"HL*1**20*1~" +
	"NM1*85*2*BILLING PROVIDER*****XX*1999999984~" +
	"HL*2*1*22*1~" +
	"SBR*P*18*******CI~" +
	"HL*3*2*23*0~" +
	"PAT*19~" +
	"CLM*1000*500***11:B:1*Y*A*Y*Y~" +
	"ZZZ*FOO~" +
	"SE*11*0001~" +
	"GE*1*1~" +
	"IEA*1*000000907~"

// DelimiterVariation is scenario S6: the same minimal claim, encoded
// with a pipe element separator and a line-feed segment terminator
// instead of the conventional '*' and '~'. It must parse identically
// to MinimalClaim; interchange.Delims reflects the discovered bytes.
const DelimiterVariation = "ISA|00|          |00|          |ZZ|SENDER         |ZZ|RECEIVER       |201310|1517|^|00501|000000905|0|T|:\n" +
	"GS|HC|SENDER|RECEIVER|20131015|1517|1|X|005010X222\n" +
	"ST|837|0001\n" +
	"BHT|0019|00|0001|20131015|1517|CH\n" +
	"HL|1||20|1\n" +
	"NM1|85|2|BILLING PROVIDER|||||XX|1999999984\n" +
	"HL|2|1|22|1\n" +
	"SBR|P|18||||||CI\n" +
	"NM1|IL|1|DOE|JOHN||||MI|123456789A\n" +
	"HL|3|2|23|0\n" +
	"PAT|19\n" +
	"CLM|1000|500|||11:B:1|Y|A|Y|Y\n" +
	"LX|1\n" +
	"SV1|HC:99213|500|UN|1|||1\n" +
	"SE|13|0001\n" +
	"GE|1|1\n" +
	"IEA|1|000000905\n"
