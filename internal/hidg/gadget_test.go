// internal/hidg/gadget_test.go
package hidg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tamzrod/rotary-hid/internal/report"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return raw
}

func TestGadgetSetup_Keys(t *testing.T) {
	root := t.TempDir()

	g := KeysGadget()
	g.UDC = "dummy_udc.0"
	if err := g.Setup(root); err != nil {
		t.Fatalf("Setup() err=%v", err)
	}

	base := filepath.Join(root, "rotaryhid")

	if got := readFile(t, filepath.Join(base, "idVendor")); string(got) != "0xcafe" {
		t.Fatalf("idVendor = %q", got)
	}
	if got := readFile(t, filepath.Join(base, "idProduct")); string(got) != "0x4004" {
		t.Fatalf("idProduct = %q", got)
	}
	if got := readFile(t, filepath.Join(base, "strings", "0x409", "manufacturer")); string(got) != "RotaryUsb" {
		t.Fatalf("manufacturer = %q", got)
	}

	fn := filepath.Join(base, "functions", "hid.usb0")
	if got := readFile(t, filepath.Join(fn, "protocol")); string(got) != "1" {
		t.Fatalf("protocol = %q", got)
	}
	if got := readFile(t, filepath.Join(fn, "report_length")); string(got) != "8" {
		t.Fatalf("report_length = %q", got)
	}
	if got := readFile(t, filepath.Join(fn, "report_desc")); !bytes.Equal(got, report.KeyboardDescriptor) {
		t.Fatalf("report_desc does not match the keyboard descriptor")
	}

	if _, err := os.Lstat(filepath.Join(base, "configs", "c.1", "hid.usb0")); err != nil {
		t.Fatalf("function not linked into config: %v", err)
	}
	if got := readFile(t, filepath.Join(base, "UDC")); string(got) != "dummy_udc.0" {
		t.Fatalf("UDC = %q", got)
	}
}

func TestGadgetSetup_Report(t *testing.T) {
	root := t.TempDir()

	g := ReportGadget()
	g.UDC = "dummy_udc.0"
	if err := g.Setup(root); err != nil {
		t.Fatalf("Setup() err=%v", err)
	}

	base := filepath.Join(root, "rotaryhid")
	fn := filepath.Join(base, "functions", "hid.usb0")

	if got := readFile(t, filepath.Join(base, "idProduct")); string(got) != "0x4005" {
		t.Fatalf("idProduct = %q", got)
	}
	if got := readFile(t, filepath.Join(fn, "protocol")); string(got) != "0" {
		t.Fatalf("protocol = %q", got)
	}
	if got := readFile(t, filepath.Join(fn, "report_desc")); !bytes.Equal(got, report.VendorDescriptor) {
		t.Fatalf("report_desc does not match the vendor descriptor")
	}
}

func TestGadgetSetup_Idempotent(t *testing.T) {
	root := t.TempDir()

	g := KeysGadget()
	g.UDC = "dummy_udc.0"
	if err := g.Setup(root); err != nil {
		t.Fatalf("first Setup() err=%v", err)
	}
	if err := g.Setup(root); err != nil {
		t.Fatalf("second Setup() err=%v", err)
	}
}

func TestGadgetSetup_RequiresDescriptor(t *testing.T) {
	g := Gadget{Name: "broken"}
	if err := g.Setup(t.TempDir()); err == nil {
		t.Fatalf("expected descriptor error, got nil")
	}
}
