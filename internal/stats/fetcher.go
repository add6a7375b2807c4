package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/disk"
)

// Fetcher retrieves one statistic set for one device. Implementations
// must distinguish "not a volume" (NotVolumeError) from transient read
// failures so the assay can apply its per-device policy.
type Fetcher interface {
	Fetch(device string, set SetType) (StatRecord, error)
}

// Make the I/O counter source a variable so it can be stubbed in tests.
var ioCountersFunc = disk.IOCounters

// SysfsFetcher reads the volume set from the driver's per-volume sysfs
// statistics directory and the kernel set from the block layer's I/O
// counters.
type SysfsFetcher struct {
	// Base is the sysfs directory holding one subdirectory per volume,
	// e.g. /sys/kvdo.
	Base string
}

// NewSysfsFetcher creates a fetcher rooted at the given sysfs base.
func NewSysfsFetcher(base string) *SysfsFetcher {
	return &SysfsFetcher{Base: base}
}

// Fetch retrieves the requested set for the device. A field that cannot
// be read individually is returned as NotAvailable rather than failing
// the whole record.
func (f *SysfsFetcher) Fetch(device string, set SetType) (StatRecord, error) {
	switch set {
	case SetVolume:
		return f.fetchVolume(device)
	case SetKernel:
		return f.fetchKernel(device)
	default:
		return StatRecord{}, &StatFetchError{Device: device, Set: set,
			Err: fmt.Errorf("unknown statistic set %d", set)}
	}
}

func (f *SysfsFetcher) fetchVolume(device string) (StatRecord, error) {
	statsDir := filepath.Join(f.Base, filepath.Base(device), "statistics")
	info, err := os.Stat(statsDir)
	if err != nil || !info.IsDir() {
		// The driver exposes a statistics directory for every volume it
		// manages; its absence means the device is not one of ours.
		return StatRecord{}, &NotVolumeError{Device: device}
	}

	specs := SetVolume.Schema()
	fields := make([]Field, len(specs))
	for i, spec := range specs {
		fields[i] = Field{Name: spec.Name, Value: readSysfsValue(statsDir, spec)}
	}
	return NewStatRecord(fields), nil
}

// readSysfsValue reads and parses one statistics file. Any failure
// yields NotAvailable for that field only.
func readSysfsValue(dir string, spec FieldSpec) StatValue {
	data, err := os.ReadFile(filepath.Join(dir, spec.File))
	if err != nil {
		return NotAvailable
	}
	text := strings.TrimSpace(string(data))

	switch spec.Kind {
	case KindString:
		return Text(text)
	case KindVersion:
		return Version(text)
	case KindFloat:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return NotAvailable
		}
		return Float(v)
	default:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return NotAvailable
		}
		switch spec.Kind {
		case KindSizeKB:
			return SizeKB(v)
		case KindPercent:
			return Percent(v)
		default:
			return Integer(v)
		}
	}
}

func (f *SysfsFetcher) fetchKernel(device string) (StatRecord, error) {
	counters, err := ioCountersFunc()
	if err != nil {
		return StatRecord{}, &StatFetchError{Device: device, Set: SetKernel, Err: err}
	}

	name := kernelStatName(device)
	for key, c := range counters {
		if key == name || strings.HasPrefix(key, name) {
			return NewStatRecord([]Field{
				{Name: "reads completed", Value: Integer(int64(c.ReadCount))},
				{Name: "writes completed", Value: Integer(int64(c.WriteCount))},
				{Name: "KB read", Value: SizeKB(int64(c.ReadBytes / 1024))},
				{Name: "KB written", Value: SizeKB(int64(c.WriteBytes / 1024))},
				{Name: "read time ms", Value: Integer(int64(c.ReadTime))},
				{Name: "write time ms", Value: Integer(int64(c.WriteTime))},
				{Name: "io time ms", Value: Integer(int64(c.IoTime))},
				{Name: "weighted io ms", Value: Integer(int64(c.WeightedIO))},
			}), nil
		}
	}

	// The block layer keys counters by short name; a mapped volume that
	// has not seen I/O yet may be absent. Report the set's shape with
	// every field unavailable rather than failing the device.
	return unavailableRecord(SetKernel), nil
}

// kernelStatName trims a device path to the short name the block layer
// uses as its counter key, e.g. /dev/mapper/vdo0 -> vdo0.
func kernelStatName(device string) string {
	name := device
	if strings.HasPrefix(name, "/dev/") {
		name = strings.TrimPrefix(name, "/dev/")
		name = strings.TrimPrefix(name, "mapper/")
	}
	return name
}
