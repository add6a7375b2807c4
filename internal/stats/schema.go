package stats

// SetType names a statistic set: a fixed schema of related counters
// fetched as one unit per device.
type SetType int

const (
	// SetVolume is the per-volume statistic set exposed by the dedup
	// driver through sysfs.
	SetVolume SetType = iota
	// SetKernel is the block-layer I/O counter set for the device.
	SetKernel
)

// String returns the set's display name, used as the group label in the
// nested dump.
func (t SetType) String() string {
	switch t {
	case SetVolume:
		return "volume statistics"
	case SetKernel:
		return "kernel statistics"
	default:
		return "unknown statistics"
	}
}

// FieldSpec describes one schema slot: the display name used in records
// and output, the sysfs file the volume fetcher reads it from (empty
// for kernel fields), and the value kind.
type FieldSpec struct {
	Name string
	File string
	Kind Kind
}

// Record field names referenced by the tabular summary.
const (
	FieldOneKBlocks          = "1K-blocks"
	FieldOneKBlocksUsed      = "1K-blocks used"
	FieldOneKBlocksAvailable = "1K-blocks available"
	FieldUsedPercent         = "used percent"
	FieldSavingPercent       = "saving percent"
)

// volumeSchema is the fixed field order of the per-volume set. Both
// renderers emit fields in exactly this order.
var volumeSchema = []FieldSpec{
	{Name: "version", File: "version", Kind: KindVersion},
	{Name: "operating mode", File: "mode", Kind: KindString},
	{Name: FieldOneKBlocks, File: "one_k_blocks", Kind: KindSizeKB},
	{Name: FieldOneKBlocksUsed, File: "one_k_blocks_used", Kind: KindSizeKB},
	{Name: FieldOneKBlocksAvailable, File: "one_k_blocks_available", Kind: KindSizeKB},
	{Name: "logical blocks", File: "logical_blocks", Kind: KindInteger},
	{Name: "physical blocks", File: "physical_blocks", Kind: KindInteger},
	{Name: "data blocks used", File: "data_blocks_used", Kind: KindInteger},
	{Name: "overhead blocks used", File: "overhead_blocks_used", Kind: KindInteger},
	{Name: FieldUsedPercent, File: "used_percent", Kind: KindPercent},
	{Name: FieldSavingPercent, File: "saving_percent", Kind: KindPercent},
}

// kernelSchema is the fixed field order of the block-layer set.
var kernelSchema = []FieldSpec{
	{Name: "reads completed", Kind: KindInteger},
	{Name: "writes completed", Kind: KindInteger},
	{Name: "KB read", Kind: KindSizeKB},
	{Name: "KB written", Kind: KindSizeKB},
	{Name: "read time ms", Kind: KindInteger},
	{Name: "write time ms", Kind: KindInteger},
	{Name: "io time ms", Kind: KindInteger},
	{Name: "weighted io ms", Kind: KindInteger},
}

// Schema returns the set's ordered field specs.
func (t SetType) Schema() []FieldSpec {
	switch t {
	case SetVolume:
		return volumeSchema
	case SetKernel:
		return kernelSchema
	default:
		return nil
	}
}

// unavailableRecord builds a record of the set's shape with every field
// marked NotAvailable.
func unavailableRecord(t SetType) StatRecord {
	specs := t.Schema()
	fields := make([]Field, len(specs))
	for i, s := range specs {
		fields[i] = Field{Name: s.Name, Value: NotAvailable}
	}
	return NewStatRecord(fields)
}
