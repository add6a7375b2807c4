package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"VDOStats/internal/devices"
	"VDOStats/internal/format"
	"VDOStats/internal/stats"
)

// stubFetcher serves canned records for every device, or a fixed error
// for devices listed in fail.
type stubFetcher struct {
	fail map[string]error
}

func (f *stubFetcher) Fetch(device string, set stats.SetType) (stats.StatRecord, error) {
	if err, ok := f.fail[device]; ok {
		return stats.StatRecord{}, err
	}
	if set == stats.SetKernel {
		return stats.NewStatRecord([]stats.Field{
			{Name: "reads completed", Value: stats.Integer(12)},
			{Name: "writes completed", Value: stats.Integer(34)},
		}), nil
	}
	return stats.NewStatRecord([]stats.Field{
		{Name: stats.FieldOneKBlocks, Value: stats.SizeKB(1048576)},
		{Name: stats.FieldOneKBlocksUsed, Value: stats.SizeKB(524288)},
		{Name: stats.FieldOneKBlocksAvailable, Value: stats.SizeKB(524288)},
		{Name: stats.FieldUsedPercent, Value: stats.Percent(50)},
		{Name: stats.FieldSavingPercent, Value: stats.Percent(73)},
	}), nil
}

func TestRunTabularSummary(t *testing.T) {
	var out bytes.Buffer
	err := Run(nil, &stubFetcher{}, []string{"/dev/mapper/vdo0"}, format.Options{}, &out)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := "Device               1K-blocks      Used Available Use% Space saving%\n" +
		"/dev/mapper/vdo0       1048576    524288    524288  50%           73%\n"
	if out.String() != want {
		t.Fatalf("tabular output mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunTabularHumanReadable(t *testing.T) {
	var out bytes.Buffer
	opts := format.Options{HumanReadable: true}
	if err := Run(nil, &stubFetcher{}, []string{"/dev/mapper/vdo0"}, opts, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Size") || strings.Contains(lines[0], "1K-blocks") {
		t.Fatalf("human-readable header wrong: %q", lines[0])
	}
	if !strings.Contains(lines[1], "1.0G") {
		t.Fatalf("expected scaled size in row: %q", lines[1])
	}
}

func TestRunVerboseDump(t *testing.T) {
	var out bytes.Buffer
	opts := format.Options{Verbose: true}
	if err := Run(nil, &stubFetcher{}, []string{"/dev/mapper/vdo0"}, opts, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got := out.String()
	wantLines := []string{
		"/dev/mapper/vdo0:",
		"  volume statistics:",
		"    1K-blocks: 1048576",
		"    used percent: 50%",
		"  kernel statistics:",
		"    reads completed: 12",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line+"\n") {
			t.Fatalf("verbose dump missing line %q:\n%s", line, got)
		}
	}
	// Device group before set groups, volume set before kernel set.
	if strings.Index(got, "volume statistics") > strings.Index(got, "kernel statistics") {
		t.Fatalf("statistic sets out of order:\n%s", got)
	}
}

func TestRunInvalidExplicitDeviceProducesNoOutput(t *testing.T) {
	f := &stubFetcher{fail: map[string]error{
		"/dev/mapper/nope": &stats.NotVolumeError{Device: "/dev/mapper/nope"},
	}}

	var out bytes.Buffer
	err := Run(nil, f, []string{"/dev/mapper/nope"}, format.Options{}, &out)
	var invalid *stats.InvalidDeviceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDeviceError, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on fatal error, got %q", out.String())
	}
}

func TestRunEmptyDiscoveryProducesNoOutput(t *testing.T) {
	// echo prints a single empty line, so the enumerator finds nothing.
	enum := devices.NewEnumerator([]string{"echo"}, t.TempDir())

	var out bytes.Buffer
	if err := Run(enum, &stubFetcher{}, nil, format.Options{}, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output for empty device set, got %q", out.String())
	}
}

func TestPrintVersionTouchesNoDevices(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)

	got := out.String()
	if !strings.Contains(got, "vdostats version "+ReleaseVersion) {
		t.Fatalf("missing release version: %q", got)
	}
	if !strings.Contains(got, "statistics version "+StatisticsVersion) {
		t.Fatalf("missing statistics version: %q", got)
	}
}
