// Where: rfnoc-inst/internal/infra/config/devices.go
// What: Device table load/save.
// Why: Let sites add devices without rebuilding the tool; the embedded table is the default.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/domain/device"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/devices.yaml defaults/devices.schema.json
var defaultsFS embed.FS

const (
	defaultDevicesPath = "defaults/devices.yaml"
	devicesSchemaPath  = "defaults/devices.schema.json"
)

// DeviceTableFile is the YAML layout of a device table.
type DeviceTableFile struct {
	Version int                    `yaml:"version"`
	Devices map[string]DeviceEntry `yaml:"devices"`
}

// DeviceEntry describes one device in the table file.
type DeviceEntry struct {
	BuildDir      string `yaml:"build_dir"`
	DefaultTarget string `yaml:"default_target,omitempty"`
	MaxBlocks     int    `yaml:"max_blocks,omitempty"`
}

// LoadDeviceTable reads the device table at path, or the embedded table when path is empty.
// External files are schema-validated before decoding.
func LoadDeviceTable(path string) (device.Table, error) {
	payload, err := readDeviceTable(path)
	if err != nil {
		return device.Table{}, err
	}
	if err := validateDeviceTable(payload); err != nil {
		return device.Table{}, fmt.Errorf("validate device table %s: %w", describePath(path), err)
	}

	var file DeviceTableFile
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return device.Table{}, fmt.Errorf("decode device table: %w", err)
	}
	return file.Table()
}

// DefaultDeviceTableFile returns the embedded table in file form.
func DefaultDeviceTableFile() (DeviceTableFile, error) {
	payload, err := defaultsFS.ReadFile(defaultDevicesPath)
	if err != nil {
		return DeviceTableFile{}, fmt.Errorf("read embedded device table: %w", err)
	}
	var file DeviceTableFile
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return DeviceTableFile{}, fmt.Errorf("decode embedded device table: %w", err)
	}
	return file, nil
}

// SaveDeviceTable writes a DeviceTableFile to the specified path.
func SaveDeviceTable(path string, file DeviceTableFile) error {
	payload, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encode device table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create device table dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write device table: %w", err)
	}
	return nil
}

// Table converts the file form into a lookup table.
func (f DeviceTableFile) Table() (device.Table, error) {
	devices := make([]device.Device, 0, len(f.Devices))
	for name, entry := range f.Devices {
		devices = append(devices, device.Device{
			Name:          name,
			BuildDir:      entry.BuildDir,
			DefaultTarget: entry.DefaultTarget,
			MaxBlocks:     entry.MaxBlocks,
		})
	}
	return device.NewTable(devices)
}

func readDeviceTable(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		payload, err := defaultsFS.ReadFile(defaultDevicesPath)
		if err != nil {
			return nil, fmt.Errorf("read embedded device table: %w", err)
		}
		return payload, nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device table: %w", err)
	}
	return payload, nil
}

func describePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "(embedded)"
	}
	return path
}
