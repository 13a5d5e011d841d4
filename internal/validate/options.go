package validate

// Defaults for sampling caps and finding caps. The caps bound worst-case
// cost: arbitrarily large files cannot make any single checker run unbounded
// work.
const (
	DefaultMaxErrors           = 10
	DefaultMaxWarnings         = 10
	DefaultTypeSampleSize      = 1000
	DefaultArtifactScanRows    = 100
	DefaultEmptyRowLimit       = 10
	DefaultSuspiciousPerColumn = 3
	DefaultTypeFindingsPerCol  = 3
)

// Options holds caller overrides for sample sizes and finding caps.
// The zero value of any field means "use the default".
type Options struct {
	// MaxErrors caps the aggregated errors list (Critical + Error findings).
	MaxErrors int

	// MaxWarnings caps the aggregated warnings list.
	MaxWarnings int

	// TypeSampleSize is how many non-null cells per column the type
	// consistency checker inspects.
	TypeSampleSize int

	// ArtifactScanRows is how many rows per column the encoding artifact
	// checker inspects.
	ArtifactScanRows int

	// EmptyRowLimit is how many empty rows are reported individually before
	// the remainder collapses into a single summary warning.
	EmptyRowLimit int

	// SuspiciousPerColumn caps null-like value warnings per column.
	SuspiciousPerColumn int

	// TypeFindingsPerColumn caps type mismatch findings per column.
	TypeFindingsPerColumn int
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		MaxErrors:             DefaultMaxErrors,
		MaxWarnings:           DefaultMaxWarnings,
		TypeSampleSize:        DefaultTypeSampleSize,
		ArtifactScanRows:      DefaultArtifactScanRows,
		EmptyRowLimit:         DefaultEmptyRowLimit,
		SuspiciousPerColumn:   DefaultSuspiciousPerColumn,
		TypeFindingsPerColumn: DefaultTypeFindingsPerCol,
	}
}

// withDefaults fills unset fields so that partially populated Options from
// callers behave sanely.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxErrors <= 0 {
		o.MaxErrors = def.MaxErrors
	}
	if o.MaxWarnings <= 0 {
		o.MaxWarnings = def.MaxWarnings
	}
	if o.TypeSampleSize <= 0 {
		o.TypeSampleSize = def.TypeSampleSize
	}
	if o.ArtifactScanRows <= 0 {
		o.ArtifactScanRows = def.ArtifactScanRows
	}
	if o.EmptyRowLimit <= 0 {
		o.EmptyRowLimit = def.EmptyRowLimit
	}
	if o.SuspiciousPerColumn <= 0 {
		o.SuspiciousPerColumn = def.SuspiciousPerColumn
	}
	if o.TypeFindingsPerColumn <= 0 {
		o.TypeFindingsPerColumn = def.TypeFindingsPerColumn
	}
	return o
}
