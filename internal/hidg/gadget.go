// internal/hidg/gadget.go
package hidg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tamzrod/rotary-hid/internal/report"
)

// ConfigFSRoot is where the kernel exposes composite gadget configuration.
const ConfigFSRoot = "/sys/kernel/config/usb_gadget"

// Placeholder development VID/PID, carried over from the original
// firmware. Not officially assigned; replace before shipping hardware.
const (
	vendorID         = 0xCAFE
	productKeys      = 0x4004
	productReport    = 0x4005
	manufacturerName = "RotaryUsb"
	serialNumber     = "123456"
)

// Gadget describes one configfs HID gadget to provision. Provisioning is
// the boot-time counterpart of report negotiation: it only writes the
// descriptor blobs and identity strings; the kernel does the rest.
type Gadget struct {
	Name         string // directory name under the configfs root
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
	Protocol     uint8 // 1 = keyboard, 0 = none (vendor-defined)
	ReportLength int
	Descriptor   []byte
	UDC          string // controller to bind; empty = first under /sys/class/udc
}

// KeysGadget is the boot keyboard personality.
func KeysGadget() Gadget {
	return Gadget{
		Name:         "rotaryhid",
		VendorID:     vendorID,
		ProductID:    productKeys,
		Manufacturer: manufacturerName,
		Product:      "Rotary Encoder HID",
		Serial:       serialNumber,
		Protocol:     1,
		ReportLength: report.KeyboardLen,
		Descriptor:   report.KeyboardDescriptor,
	}
}

// ReportGadget is the vendor-defined personality.
func ReportGadget() Gadget {
	return Gadget{
		Name:         "rotaryhid",
		VendorID:     vendorID,
		ProductID:    productReport,
		Manufacturer: manufacturerName,
		Product:      "Rotary Encoder Generic HID",
		Serial:       serialNumber,
		Protocol:     0,
		ReportLength: report.VendorLen,
		Descriptor:   report.VendorDescriptor,
	}
}

// Setup provisions the gadget under root (ConfigFSRoot in production;
// tests pass a scratch directory). Idempotent over existing directories;
// file contents are overwritten.
func (g Gadget) Setup(root string) error {
	if g.Name == "" {
		return errors.New("hidg: gadget name required")
	}
	if len(g.Descriptor) == 0 {
		return errors.New("hidg: gadget descriptor required")
	}

	base := filepath.Join(root, g.Name)
	strings := filepath.Join(base, "strings", "0x409")
	config := filepath.Join(base, "configs", "c.1")
	function := filepath.Join(base, "functions", "hid.usb0")

	for _, dir := range []string{base, strings, config, function} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("hidg: %w", err)
		}
	}

	files := []struct {
		path  string
		value []byte
	}{
		{filepath.Join(base, "idVendor"), []byte(fmt.Sprintf("0x%04x", g.VendorID))},
		{filepath.Join(base, "idProduct"), []byte(fmt.Sprintf("0x%04x", g.ProductID))},
		{filepath.Join(base, "bcdDevice"), []byte("0x0100")},
		{filepath.Join(base, "bcdUSB"), []byte("0x0200")},
		{filepath.Join(strings, "manufacturer"), []byte(g.Manufacturer)},
		{filepath.Join(strings, "product"), []byte(g.Product)},
		{filepath.Join(strings, "serialnumber"), []byte(g.Serial)},
		{filepath.Join(config, "MaxPower"), []byte("100")},
		{filepath.Join(function, "protocol"), []byte(fmt.Sprintf("%d", g.Protocol))},
		{filepath.Join(function, "subclass"), []byte("0")},
		{filepath.Join(function, "report_length"), []byte(fmt.Sprintf("%d", g.ReportLength))},
		{filepath.Join(function, "report_desc"), g.Descriptor},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, f.value, 0o644); err != nil {
			return fmt.Errorf("hidg: %w", err)
		}
	}

	link := filepath.Join(config, "hid.usb0")
	if _, err := os.Lstat(link); os.IsNotExist(err) {
		if err := os.Symlink(function, link); err != nil {
			return fmt.Errorf("hidg: %w", err)
		}
	}

	udc := g.UDC
	if udc == "" {
		var err error
		udc, err = firstUDC()
		if err != nil {
			return err
		}
	}
	if err := os.WriteFile(filepath.Join(base, "UDC"), []byte(udc), 0o644); err != nil {
		return fmt.Errorf("hidg: bind UDC: %w", err)
	}
	return nil
}

func firstUDC() (string, error) {
	entries, err := os.ReadDir("/sys/class/udc")
	if err != nil {
		return "", fmt.Errorf("hidg: list UDCs: %w", err)
	}
	if len(entries) == 0 {
		return "", errors.New("hidg: no UDC available")
	}
	return entries[0].Name(), nil
}
