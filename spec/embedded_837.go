package spec

// Embedded837 returns a deliberately small but structurally faithful
// 005010X222 837 (health care claim) specification: enough to drive
// hierarchical loop placement (billing provider -> subscriber ->
// patient -> claim) and a representative detail loop (service line),
// without attempting to model the full transaction set.
func Embedded837() TransactionSpecification {
	serviceLine := LoopSpecification{
		LoopID: "2400",
		Name:   "Service Line",
		Starts: "LX",
		Segments: []SegmentSpecification{
			{ID: "LX", Required: true},
			{ID: "SV1"},
			{ID: "DTP"},
		},
	}

	claim := LoopSpecification{
		LoopID: "2300",
		Name:   "Claim Information",
		Starts: "CLM",
		Segments: []SegmentSpecification{
			{ID: "CLM", Required: true},
			{ID: "DTP"},
			{ID: "REF"},
			{ID: "HI"},
		},
		Loops: []LoopSpecification{serviceLine},
	}

	patientLevel := HierarchicalLoopSpecification{
		LevelCode: "23",
		Name:      "Patient",
		Segments: []SegmentSpecification{
			{ID: "PAT"},
			{ID: "NM1"},
			{ID: "N3"},
			{ID: "N4"},
			{ID: "DMG"},
		},
		Loops: []LoopSpecification{claim},
	}

	subscriberLevel := HierarchicalLoopSpecification{
		LevelCode: "22",
		Name:      "Subscriber",
		Segments: []SegmentSpecification{
			{ID: "SBR"},
			{ID: "NM1"},
			{ID: "N3"},
			{ID: "N4"},
			{ID: "DMG"},
		},
		Loops:  []LoopSpecification{claim},
		HLoops: []HierarchicalLoopSpecification{patientLevel},
	}

	billingProviderLevel := HierarchicalLoopSpecification{
		LevelCode: "20",
		Name:      "Billing Provider",
		Segments: []SegmentSpecification{
			{ID: "NM1"},
			{ID: "N3"},
			{ID: "N4"},
			{ID: "REF"},
		},
		HLoops: []HierarchicalLoopSpecification{subscriberLevel},
	}

	return TransactionSpecification{
		TransactionSetIdentifierCode: "837",
		VersionRelease:               "005010X222",
		Name:                         "Health Care Claim",
		Segments: []SegmentSpecification{
			{ID: "ST", Required: true},
			{ID: "BHT", Required: true},
			{ID: "SE", Required: true},
		},
		HLoops: []HierarchicalLoopSpecification{billingProviderLevel},
	}
}
