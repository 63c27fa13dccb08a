// Where: rfnoc-inst/internal/domain/device/device.go
// What: Device table lookup and build target resolution.
// Why: Keep device-to-build-directory mapping pure and reusable across commands.
package device

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/meta"
)

var (
	ErrUnknownDevice    = errors.New("unknown device")
	ErrNoDefaultTarget  = errors.New("no default build target")
	ErrDuplicateDevice  = errors.New("duplicate device")
	ErrBuildDirRequired = errors.New("build dir is required")
)

// DefaultDevice is used when neither a flag nor the environment names one.
const DefaultDevice = "x310"

// Device maps a device name to its build directory under top/.
type Device struct {
	Name          string
	BuildDir      string
	DefaultTarget string
	// MaxBlocks is the crossbar size advertised for the device; zero means unknown.
	MaxBlocks int
}

// Target returns explicit when set, otherwise the device default.
func (d Device) Target(explicit string) (string, error) {
	if target := strings.TrimSpace(explicit); target != "" {
		return target, nil
	}
	if d.DefaultTarget == "" {
		return "", fmt.Errorf("%w for device %s: pass --target", ErrNoDefaultTarget, d.Name)
	}
	return d.DefaultTarget, nil
}

// BuildPath returns top/<build dir> under root.
func (d Device) BuildPath(root string) string {
	return filepath.Join(root, meta.TopDir, d.BuildDir)
}

// InstFilePath returns the default instantiation file for the device.
// The file name keeps the device name as typed by the user.
func (d Device) InstFilePath(root, given string) string {
	name := strings.TrimSpace(given)
	if name == "" {
		name = d.Name
	}
	return filepath.Join(d.BuildPath(root), meta.InstFilePrefix+name+meta.InstFileExt)
}

// SrcsFilePath returns the device's Makefile.srcs.
func (d Device) SrcsFilePath(root string) string {
	return filepath.Join(d.BuildPath(root), meta.SrcsFile)
}

// Table is an immutable set of devices keyed by lower-case name.
type Table struct {
	devices map[string]Device
}

// NewTable builds a Table, rejecting duplicates and empty build dirs.
func NewTable(devices []Device) (Table, error) {
	table := Table{devices: make(map[string]Device, len(devices))}
	for _, dev := range devices {
		key := normalize(dev.Name)
		if key == "" {
			continue
		}
		if _, ok := table.devices[key]; ok {
			return Table{}, fmt.Errorf("%w: %s", ErrDuplicateDevice, dev.Name)
		}
		if strings.TrimSpace(dev.BuildDir) == "" {
			return Table{}, fmt.Errorf("%w: %s", ErrBuildDirRequired, dev.Name)
		}
		dev.Name = key
		table.devices[key] = dev
	}
	return table, nil
}

// Lookup finds a device case-insensitively.
func (t Table) Lookup(name string) (Device, error) {
	dev, ok := t.devices[normalize(name)]
	if !ok {
		return Device{}, fmt.Errorf("%w: %s (known: %s)", ErrUnknownDevice, name, strings.Join(t.Names(), ", "))
	}
	return dev, nil
}

// Names returns the sorted device names.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.devices))
	for name := range t.devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Devices returns the devices sorted by name.
func (t Table) Devices() []Device {
	names := t.Names()
	result := make([]Device, len(names))
	for i, name := range names {
		result[i] = t.devices[name]
	}
	return result
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
