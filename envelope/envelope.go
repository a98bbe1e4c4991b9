// Package envelope gives a typed, named-field face to the raw,
// positionally addressed ISA/GS/ST/SE/GE/IEA/HL segments that frame an
// interchange, the same way github.com/dshills/golevel7/segments.MSH
// does for HL7's MSH segment. Core parsing never requires these
// types — tree.Node stores segments positionally — but callers who
// want field names instead of element indices can decode into one of
// these.
package envelope

import (
	"fmt"

	"github.com/dshills/gox12/x12"
)

// ISA is the Interchange Control Header.
type ISA struct {
	AuthorizationInformationQualifier string
	AuthorizationInformation          string
	SecurityInformationQualifier     string
	SecurityInformation              string
	InterchangeIDQualifierSender     string
	InterchangeSenderID              string
	InterchangeIDQualifierReceiver   string
	InterchangeReceiverID            string
	InterchangeDate                  string
	InterchangeTime                  string
	RepetitionSeparator               string
	InterchangeControlVersionNumber  string
	InterchangeControlNumber         string
	AcknowledgmentRequested          string
	UsageIndicator                    string
	ComponentElementSeparator         string
}

// ParseISA decodes a raw ISA segment into an ISA struct.
func ParseISA(seg x12.Segment) (*ISA, error) {
	if seg.ID != "ISA" {
		return nil, fmt.Errorf("envelope: expected ISA, got %s", seg.ID)
	}
	return &ISA{
		AuthorizationInformationQualifier: seg.Val(1),
		AuthorizationInformation:          seg.Val(2),
		SecurityInformationQualifier:      seg.Val(3),
		SecurityInformation:               seg.Val(4),
		InterchangeIDQualifierSender:      seg.Val(5),
		InterchangeSenderID:               seg.Val(6),
		InterchangeIDQualifierReceiver:    seg.Val(7),
		InterchangeReceiverID:             seg.Val(8),
		InterchangeDate:                   seg.Val(9),
		InterchangeTime:                   seg.Val(10),
		RepetitionSeparator:               seg.Val(11),
		InterchangeControlVersionNumber:   seg.Val(12),
		InterchangeControlNumber:          seg.Val(13),
		AcknowledgmentRequested:           seg.Val(14),
		UsageIndicator:                    seg.Val(15),
		ComponentElementSeparator:         seg.Val(16),
	}, nil
}

// IEA is the Interchange Control Trailer.
type IEA struct {
	NumberOfIncludedFunctionalGroups string
	InterchangeControlNumber         string
}

// ParseIEA decodes a raw IEA segment into an IEA struct.
func ParseIEA(seg x12.Segment) (*IEA, error) {
	if seg.ID != "IEA" {
		return nil, fmt.Errorf("envelope: expected IEA, got %s", seg.ID)
	}
	return &IEA{
		NumberOfIncludedFunctionalGroups: seg.Val(1),
		InterchangeControlNumber:         seg.Val(2),
	}, nil
}

// GS is the Functional Group Header.
type GS struct {
	FunctionalIdentifierCode  string
	ApplicationSenderCode     string
	ApplicationReceiverCode   string
	Date                      string
	Time                      string
	GroupControlNumber        string
	ResponsibleAgencyCode     string
	VersionReleaseIndustryID  string
}

// ParseGS decodes a raw GS segment into a GS struct.
func ParseGS(seg x12.Segment) (*GS, error) {
	if seg.ID != "GS" {
		return nil, fmt.Errorf("envelope: expected GS, got %s", seg.ID)
	}
	return &GS{
		FunctionalIdentifierCode: seg.Val(1),
		ApplicationSenderCode:    seg.Val(2),
		ApplicationReceiverCode:  seg.Val(3),
		Date:                     seg.Val(4),
		Time:                     seg.Val(5),
		GroupControlNumber:       seg.Val(6),
		ResponsibleAgencyCode:    seg.Val(7),
		VersionReleaseIndustryID: seg.Val(8),
	}, nil
}

// GE is the Functional Group Trailer.
type GE struct {
	NumberOfTransactionSetsIncluded string
	GroupControlNumber              string
}

// ParseGE decodes a raw GE segment into a GE struct.
func ParseGE(seg x12.Segment) (*GE, error) {
	if seg.ID != "GE" {
		return nil, fmt.Errorf("envelope: expected GE, got %s", seg.ID)
	}
	return &GE{
		NumberOfTransactionSetsIncluded: seg.Val(1),
		GroupControlNumber:              seg.Val(2),
	}, nil
}

// ST is the Transaction Set Header.
type ST struct {
	TransactionSetIdentifierCode string
	TransactionSetControlNumber  string
	ImplementationConventionRef  string
}

// ParseST decodes a raw ST segment into an ST struct.
func ParseST(seg x12.Segment) (*ST, error) {
	if seg.ID != "ST" {
		return nil, fmt.Errorf("envelope: expected ST, got %s", seg.ID)
	}
	return &ST{
		TransactionSetIdentifierCode: seg.Val(1),
		TransactionSetControlNumber:  seg.Val(2),
		ImplementationConventionRef:  seg.Val(3),
	}, nil
}

// SE is the Transaction Set Trailer.
type SE struct {
	NumberOfIncludedSegments    string
	TransactionSetControlNumber string
}

// ParseSE decodes a raw SE segment into an SE struct.
func ParseSE(seg x12.Segment) (*SE, error) {
	if seg.ID != "SE" {
		return nil, fmt.Errorf("envelope: expected SE, got %s", seg.ID)
	}
	return &SE{
		NumberOfIncludedSegments:    seg.Val(1),
		TransactionSetControlNumber: seg.Val(2),
	}, nil
}

// HL is the Hierarchical Level segment: the anchor of a hierarchical
// loop, carrying its own id, its parent's id, and the level code that
// the structural parser resolves against a specification.
type HL struct {
	HierarchicalIDNumber       string
	HierarchicalParentIDNumber string
	HierarchicalLevelCode      string
	HierarchicalChildCode      string
}

// ParseHL decodes a raw HL segment into an HL struct.
func ParseHL(seg x12.Segment) (*HL, error) {
	if seg.ID != "HL" {
		return nil, fmt.Errorf("envelope: expected HL, got %s", seg.ID)
	}
	return &HL{
		HierarchicalIDNumber:       seg.Val(1),
		HierarchicalParentIDNumber: seg.Val(2),
		HierarchicalLevelCode:      seg.Val(3),
		HierarchicalChildCode:      seg.Val(4),
	}, nil
}
