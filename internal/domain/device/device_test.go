// Where: rfnoc-inst/internal/domain/device/device_test.go
// What: Tests for device lookup and target resolution.
package device

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func testTable(t *testing.T) Table {
	t.Helper()
	table, err := NewTable([]Device{
		{Name: "x300", BuildDir: "x300", DefaultTarget: "X300_RFNOC_HG", MaxBlocks: 10},
		{Name: "x310", BuildDir: "x300", DefaultTarget: "X310_RFNOC_HG", MaxBlocks: 10},
		{Name: "e300", BuildDir: "e300", MaxBlocks: 6},
		{Name: "e310", BuildDir: "e300", DefaultTarget: "E310_RFNOC_HLS", MaxBlocks: 6},
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	dev, err := testTable(t).Lookup(" X310 ")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if dev.Name != "x310" || dev.BuildDir != "x300" {
		t.Fatalf("unexpected device: %#v", dev)
	}
}

func TestLookupUnknownListsKnownDevices(t *testing.T) {
	_, err := testTable(t).Lookup("n310")
	if !errors.Is(err, ErrUnknownDevice) {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
	if !strings.Contains(err.Error(), "e300, e310, x300, x310") {
		t.Fatalf("expected known devices in error, got %v", err)
	}
}

func TestTargetPrefersExplicit(t *testing.T) {
	dev, _ := testTable(t).Lookup("x300")
	got, err := dev.Target("X300_RFNOC_XG")
	if err != nil || got != "X300_RFNOC_XG" {
		t.Fatalf("Target() = %q, %v", got, err)
	}
	got, err = dev.Target("")
	if err != nil || got != "X300_RFNOC_HG" {
		t.Fatalf("Target() default = %q, %v", got, err)
	}
}

func TestTargetWithoutDefault(t *testing.T) {
	dev, _ := testTable(t).Lookup("e300")
	if _, err := dev.Target(""); !errors.Is(err, ErrNoDefaultTarget) {
		t.Fatalf("expected ErrNoDefaultTarget, got %v", err)
	}
}

func TestPathsUseBuildDirAndGivenName(t *testing.T) {
	dev, _ := testTable(t).Lookup("X310")
	root := filepath.Join("fpga")
	if got := dev.BuildPath(root); got != filepath.Join("fpga", "top", "x300") {
		t.Fatalf("BuildPath() = %q", got)
	}
	if got := dev.InstFilePath(root, "X310"); got != filepath.Join("fpga", "top", "x300", "rfnoc_ce_auto_inst_X310.v") {
		t.Fatalf("InstFilePath() = %q", got)
	}
	if got := dev.SrcsFilePath(root); got != filepath.Join("fpga", "top", "x300", "Makefile.srcs") {
		t.Fatalf("SrcsFilePath() = %q", got)
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := NewTable([]Device{
		{Name: "x300", BuildDir: "x300"},
		{Name: "X300", BuildDir: "x300"},
	})
	if !errors.Is(err, ErrDuplicateDevice) {
		t.Fatalf("expected ErrDuplicateDevice, got %v", err)
	}
}

func TestNewTableRequiresBuildDir(t *testing.T) {
	_, err := NewTable([]Device{{Name: "x300"}})
	if !errors.Is(err, ErrBuildDirRequired) {
		t.Fatalf("expected ErrBuildDirRequired, got %v", err)
	}
}

func TestDevicesSortedByName(t *testing.T) {
	devices := testTable(t).Devices()
	if len(devices) != 4 || devices[0].Name != "e300" || devices[3].Name != "x310" {
		t.Fatalf("unexpected order: %#v", devices)
	}
}
