package format

import (
	"reflect"
	"strings"
	"testing"
)

func sampleTree() LabeledValue {
	return Group("",
		Group("/dev/mapper/vdo0",
			Group("volume statistics",
				Scalar("version", "30"),
				Scalar("used percent", "43%"),
			),
		),
	)
}

func dumpRules() []FormatRule {
	return []FormatRule{
		{Indent: "", Namer: NamerShowChildrenOnly},
		{Indent: "  ", Namer: NamerShowOwn},
		{Indent: "  ", Namer: NamerShowOwn},
	}
}

func TestRenderNestedDump(t *testing.T) {
	got := RenderNested(sampleTree(), dumpRules())
	want := []string{
		"/dev/mapper/vdo0:",
		"  volume statistics:",
		"    version: 30",
		"    used percent: 43%",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RenderNested mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderNestedIsIdempotent(t *testing.T) {
	tree := sampleTree()
	rules := dumpRules()
	first := strings.Join(RenderNested(tree, rules), "\n")
	second := strings.Join(RenderNested(tree, rules), "\n")
	if first != second {
		t.Fatalf("two renders of the same tree differ:\n%s\n---\n%s", first, second)
	}
}

func TestRenderNestedReusesLastRuleBeyondStack(t *testing.T) {
	tree := Group("top",
		Group("middle",
			Group("inner",
				Scalar("leaf", "1"),
			),
		),
	)
	rules := []FormatRule{{Indent: " ", Namer: NamerShowOwn}}
	got := RenderNested(tree, rules)
	want := []string{
		"top:",
		" middle:",
		"  inner:",
		"   leaf: 1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rule reuse mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderNestedNamerPolicies(t *testing.T) {
	tree := Group("parent", Scalar("child", "7"))

	hidden := RenderNested(tree, []FormatRule{
		{Namer: NamerShowOwn},
		{Namer: NamerHide},
	})
	if !reflect.DeepEqual(hidden, []string{"parent:", "7"}) {
		t.Fatalf("NamerHide mismatch: %q", hidden)
	}

	overridden := RenderNested(tree, []FormatRule{
		{Namer: NamerShowWithOverride, Override: "totals"},
		{Namer: NamerShowOwn},
	})
	if !reflect.DeepEqual(overridden, []string{"totals:", "child: 7"}) {
		t.Fatalf("NamerShowWithOverride mismatch: %q", overridden)
	}
}

func TestRenderNestedPreservesChildOrder(t *testing.T) {
	tree := Group("",
		Scalar("b", "2"),
		Scalar("a", "1"),
		Scalar("c", "3"),
	)
	got := RenderNested(tree, []FormatRule{
		{Namer: NamerShowChildrenOnly},
		{Namer: NamerShowOwn},
	})
	want := []string{"b: 2", "a: 1", "c: 3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("child order not preserved:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderTableHeaderSwitchesWithMode(t *testing.T) {
	raw := RenderTable(nil, false)
	if len(raw) != 1 || !strings.Contains(raw[0], "1K-blocks") {
		t.Fatalf("raw header missing 1K-blocks: %q", raw)
	}
	human := RenderTable(nil, true)
	if len(human) != 1 || !strings.Contains(human[0], "Size") {
		t.Fatalf("human header missing Size: %q", human)
	}
	if strings.Contains(human[0], "1K-blocks") {
		t.Fatalf("human header still shows 1K-blocks: %q", human)
	}
}

func TestRenderTableRowWidths(t *testing.T) {
	rows := []TableRow{{
		Device:        "/dev/mapper/vdo0",
		Size:          "1048576",
		Used:          "524288",
		Available:     "524288",
		UsePercent:    "50%",
		SavingPercent: "73%",
	}}
	got := RenderTable(rows, false)
	want := []string{
		"Device               1K-blocks      Used Available Use% Space saving%",
		"/dev/mapper/vdo0       1048576    524288    524288  50%           73%",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("table mismatch:\ngot  %q\nwant %q", got, want)
	}
}
