// internal/report/descriptors.go
package report

// HID report descriptors for the two gadget personalities. These are
// written verbatim into the gadget function's report_desc, so any change
// here must be mirrored in the Encode layouts in reports.go.

// KeyboardDescriptor describes a standard 6-key-rollover boot keyboard.
var KeyboardDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x06, // Usage (Keyboard)
	0xA1, 0x01, // Collection (Application)
	0x05, 0x07, //   Usage Page (Key Codes)
	0x19, 0xE0, //   Usage Minimum (224)
	0x29, 0xE7, //   Usage Maximum (231)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x01, //   Report Size (1)
	0x95, 0x08, //   Report Count (8)
	0x81, 0x02, //   Input (Data, Variable, Absolute) - modifier byte
	0x95, 0x01, //   Report Count (1)
	0x75, 0x08, //   Report Size (8)
	0x81, 0x01, //   Input (Constant) - reserved byte
	0x95, 0x06, //   Report Count (6)
	0x75, 0x08, //   Report Size (8)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x65, //   Logical Maximum (101)
	0x05, 0x07, //   Usage Page (Key Codes)
	0x19, 0x00, //   Usage Minimum (0)
	0x29, 0x65, //   Usage Maximum (101)
	0x81, 0x00, //   Input (Data, Array) - key array (6 keys)
	0xC0, // End Collection
}

// VendorDescriptor describes the vendor-defined report (usage page
// 0xFF00): four signed relative movement bytes, four button bits plus
// four padding bits, and two reserved bytes, all under report ID 1.
var VendorDescriptor = []byte{
	0x06, 0x00, 0xFF, // Usage Page (Vendor Defined 0xFF00)
	0x09, 0x01, // Usage (Vendor Usage 1)
	0xA1, 0x01, // Collection (Application)
	0x85, 0x01, //   Report ID (1)

	0x09, 0x02, //   Usage (Vendor Usage 2 - Encoder Data)
	0x15, 0x81, //   Logical Minimum (-127)
	0x25, 0x7F, //   Logical Maximum (127)
	0x75, 0x08, //   Report Size (8 bits)
	0x95, 0x04, //   Report Count (4 encoders)
	0x81, 0x06, //   Input (Data, Variable, Relative)

	0x09, 0x03, //   Usage (Vendor Usage 3 - Button Data)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x01, //   Report Size (1 bit)
	0x95, 0x04, //   Report Count (4 buttons)
	0x81, 0x02, //   Input (Data, Variable, Absolute)
	0x75, 0x01, //   Report Size (1 bit)
	0x95, 0x04, //   Report Count (4 padding bits)
	0x81, 0x03, //   Input (Constant, Variable, Absolute) - padding

	0x09, 0x04, //   Usage (Vendor Usage 4 - Reserved)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0xFF, 0x00, //   Logical Maximum (255)
	0x75, 0x08, //   Report Size (8 bits)
	0x95, 0x02, //   Report Count (2 reserved bytes)
	0x81, 0x02, //   Input (Data, Variable, Absolute)

	0xC0, // End Collection
}
