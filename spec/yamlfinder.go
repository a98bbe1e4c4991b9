package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDocument mirrors TransactionSpecification's shape for
// unmarshaling from a manifest file. Kept separate from
// TransactionSpecification so that the wire/config format can evolve
// independently of the in-memory model.
type yamlDocument struct {
	FunctionalGroupCode string                          `yaml:"functional_group_code"`
	TransactionSet      string                          `yaml:"transaction_set_identifier_code"`
	VersionRelease      string                           `yaml:"version_release"`
	Name                string                          `yaml:"name"`
	Segments            []yamlSegmentSpec               `yaml:"segments"`
	Loops               []yamlLoopSpec                  `yaml:"loops"`
	HLoops              []yamlHierarchicalLoopSpec      `yaml:"hierarchical_loops"`
}

type yamlSegmentSpec struct {
	ID       string `yaml:"id"`
	Required bool   `yaml:"required"`
}

type yamlLoopSpec struct {
	LoopID   string             `yaml:"loop_id"`
	Name     string             `yaml:"name"`
	Starts   string             `yaml:"starts"`
	Repeats  int                `yaml:"repeats"`
	Segments []yamlSegmentSpec  `yaml:"segments"`
	Loops    []yamlLoopSpec     `yaml:"loops"`
}

type yamlHierarchicalLoopSpec struct {
	LevelCode string                      `yaml:"level_code"`
	Name      string                      `yaml:"name"`
	Segments  []yamlSegmentSpec           `yaml:"segments"`
	Loops     []yamlLoopSpec              `yaml:"loops"`
	HLoops    []yamlHierarchicalLoopSpec  `yaml:"hierarchical_loops"`
}

// YAMLFinder resolves specifications loaded from YAML manifests on
// disk, one file per transaction set version. Safe for concurrent use
// after LoadDir returns: the underlying map is never mutated again.
type YAMLFinder struct {
	specs map[string]TransactionSpecification
}

// LoadDir reads every *.yaml/*.yml file in dir as a transaction
// specification manifest and returns a YAMLFinder serving all of
// them.
func LoadDir(dir string) (*YAMLFinder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("spec: reading manifest directory %s: %w", dir, err)
	}

	f := &YAMLFinder{specs: make(map[string]TransactionSpecification)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !hasYAMLSuffix(name) {
			continue
		}
		path := dir + string(os.PathSeparator) + name
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("spec: reading manifest %s: %w", path, err)
		}
		var doc yamlDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("spec: parsing manifest %s: %w", path, err)
		}
		t := doc.toSpecification()
		f.specs[specKey(doc.FunctionalGroupCode, t.VersionRelease, t.TransactionSetIdentifierCode)] = t
	}
	return f, nil
}

// Find implements Finder.
func (f *YAMLFinder) Find(functionalGroupCode, versionRelease, transactionSetIdentifierCode string) (TransactionSpecification, bool) {
	t, ok := f.specs[specKey(functionalGroupCode, versionRelease, transactionSetIdentifierCode)]
	return t, ok
}

func hasYAMLSuffix(name string) bool {
	return len(name) > 5 && (name[len(name)-5:] == ".yaml") ||
		len(name) > 4 && name[len(name)-4:] == ".yml"
}

func (d yamlDocument) toSpecification() TransactionSpecification {
	return TransactionSpecification{
		TransactionSetIdentifierCode: d.TransactionSet,
		VersionRelease:               d.VersionRelease,
		Name:                         d.Name,
		Segments:                     toSegmentSpecs(d.Segments),
		Loops:                        toLoopSpecs(d.Loops),
		HLoops:                       toHLoopSpecs(d.HLoops),
	}
}

func toSegmentSpecs(in []yamlSegmentSpec) []SegmentSpecification {
	out := make([]SegmentSpecification, len(in))
	for i, s := range in {
		out[i] = SegmentSpecification{ID: s.ID, Required: s.Required}
	}
	return out
}

func toLoopSpecs(in []yamlLoopSpec) []LoopSpecification {
	out := make([]LoopSpecification, len(in))
	for i, l := range in {
		out[i] = LoopSpecification{
			LoopID:   l.LoopID,
			Name:     l.Name,
			Starts:   l.Starts,
			Repeats:  l.Repeats,
			Segments: toSegmentSpecs(l.Segments),
			Loops:    toLoopSpecs(l.Loops),
		}
	}
	return out
}

func toHLoopSpecs(in []yamlHierarchicalLoopSpec) []HierarchicalLoopSpecification {
	out := make([]HierarchicalLoopSpecification, len(in))
	for i, h := range in {
		out[i] = HierarchicalLoopSpecification{
			LevelCode: h.LevelCode,
			Name:      h.Name,
			Segments:  toSegmentSpecs(h.Segments),
			Loops:     toLoopSpecs(h.Loops),
			HLoops:    toHLoopSpecs(h.HLoops),
		}
	}
	return out
}
