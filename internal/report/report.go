package report

import (
	"fmt"
	"io"

	"VDOStats/internal/devices"
	"VDOStats/internal/format"
	"VDOStats/internal/pkg/logger"
	"VDOStats/internal/stats"
)

// Version identifiers reported by the --version mode.
const (
	ReleaseVersion    = "1.1.0"
	StatisticsVersion = "30"
)

// PrintVersion writes the release and statistics schema versions. It
// touches no devices.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "vdostats version %s\n", ReleaseVersion)
	fmt.Fprintf(w, "statistics version %s\n", StatisticsVersion)
}

// Run performs one point-in-time report: select devices, assay them,
// and render the result to w. An empty device set or an empty bundle
// sequence produces no output and a nil error. Fatal errors are
// returned before anything is written, so explicit-device failures
// never leave partial output behind.
func Run(enum *devices.Enumerator, fetcher stats.Fetcher, explicit []string, opts format.Options, w io.Writer) error {
	selected, mustValidate, err := devices.Select(explicit, enum)
	if err != nil {
		return err
	}

	logger.Debug("selected devices",
		logger.Strings("devices", selected),
		logger.Bool("must_validate", mustValidate))

	sets := []stats.SetType{stats.SetVolume}
	if opts.Verbose {
		sets = append(sets, stats.SetKernel)
	}

	bundles, err := stats.Assay(fetcher, sets, selected, mustValidate)
	if err != nil {
		return err
	}
	if len(bundles) == 0 {
		// Nothing to report is a success, not an error.
		return nil
	}

	var lines []string
	if opts.Verbose {
		lines = format.RenderNested(buildTree(bundles), dumpRules())
	} else {
		lines = format.RenderTable(buildRows(bundles, opts), opts.HumanReadable)
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

// buildRows flattens each bundle's volume sample into one summary row.
func buildRows(bundles []stats.DeviceSampleBundle, opts format.Options) []format.TableRow {
	rows := make([]format.TableRow, 0, len(bundles))
	for _, b := range bundles {
		record := b.Samples[0].Record
		rows = append(rows, format.TableRow{
			Device:        b.Device,
			Size:          format.FormatSize(record.Get(stats.FieldOneKBlocks), opts.HumanReadable, opts.SI),
			Used:          format.FormatSize(record.Get(stats.FieldOneKBlocksUsed), opts.HumanReadable, opts.SI),
			Available:     format.FormatSize(record.Get(stats.FieldOneKBlocksAvailable), opts.HumanReadable, opts.SI),
			UsePercent:    format.FormatPercent(record.Get(stats.FieldUsedPercent)),
			SavingPercent: format.FormatPercent(record.Get(stats.FieldSavingPercent)),
		})
	}
	return rows
}

// buildTree arranges the bundles for the nested dump: device groups at
// the top, one group per statistic set under each device, fields in
// schema order under each set.
func buildTree(bundles []stats.DeviceSampleBundle) format.LabeledValue {
	deviceGroups := make([]format.LabeledValue, 0, len(bundles))
	for _, b := range bundles {
		setGroups := make([]format.LabeledValue, 0, len(b.Samples))
		for _, s := range b.Samples {
			fields := make([]format.LabeledValue, 0, len(s.Record.Fields()))
			for _, f := range s.Record.Fields() {
				fields = append(fields, format.Scalar(f.Name, f.Value.String()))
			}
			setGroups = append(setGroups, format.Group(s.Set.String(), fields...))
		}
		deviceGroups = append(deviceGroups, format.Group(b.Device, setGroups...))
	}
	return format.Group("", deviceGroups...)
}

// dumpRules is the rule stack for the nested dump: the root group is a
// silent aggregate over devices, device and set groups are named, and
// each level below a device indents by two spaces.
func dumpRules() []format.FormatRule {
	return []format.FormatRule{
		{Indent: "", Namer: format.NamerShowChildrenOnly},
		{Indent: "  ", Namer: format.NamerShowOwn},
		{Indent: "  ", Namer: format.NamerShowOwn},
	}
}
