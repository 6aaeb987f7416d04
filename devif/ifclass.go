package devif

// Well-known device interface class GUIDs from winioctl.h and
// ntddser.h: the storage stack plus the serial port classes. Opaque
// data for listing tools; the enumeration itself accepts any GUID.
var (
	GUID_DEVINTERFACE_DISK                   = GUID{0x53F56307, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_CDROM                  = GUID{0x53F56308, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_PARTITION              = GUID{0x53F5630A, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_TAPE                   = GUID{0x53F5630B, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_WRITEONCEDISK          = GUID{0x53F5630C, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_VOLUME                 = GUID{0x53F5630D, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_MEDIUMCHANGER          = GUID{0x53F56310, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_FLOPPY                 = GUID{0x53F56311, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_CDCHANGER              = GUID{0x53F56312, 0xB6BF, 0x11D0, [8]byte{0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_STORAGEPORT            = GUID{0x2ACCFE60, 0xC130, 0x11D2, [8]byte{0xB0, 0x82, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B}}
	GUID_DEVINTERFACE_VMLUN                  = GUID{0x6F416619, 0x9F29, 0x42A5, [8]byte{0xB2, 0x0B, 0x37, 0xE2, 0x19, 0xCA, 0x02, 0xB0}}
	GUID_DEVINTERFACE_SES                    = GUID{0x1790C9EC, 0x47D5, 0x4DF3, [8]byte{0xB5, 0xAF, 0x9A, 0xDF, 0x3C, 0xF2, 0x3E, 0x48}}
	GUID_DEVINTERFACE_SERVICE_VOLUME         = GUID{0x6EAD3D82, 0x25EC, 0x46BC, [8]byte{0xB7, 0xFD, 0xC1, 0xF0, 0xDF, 0x8F, 0x50, 0x37}}
	GUID_DEVINTERFACE_HIDDEN_VOLUME          = GUID{0x7F108A28, 0x9833, 0x4B3B, [8]byte{0xB7, 0x80, 0x2C, 0x6B, 0x5F, 0xA5, 0xC0, 0x62}}
	GUID_DEVINTERFACE_UNIFIED_ACCESS_RPMB    = GUID{0x27447C21, 0xBCC3, 0x4D07, [8]byte{0xA0, 0x5B, 0xA3, 0x39, 0x5B, 0xB4, 0xEE, 0xE7}}
	GUID_DEVINTERFACE_SCM_PHYSICAL_DEVICE    = GUID{0x4283609D, 0x4DC2, 0x43BE, [8]byte{0xBB, 0xB4, 0x4F, 0x15, 0xDF, 0xCE, 0x2C, 0x61}}
	GUID_DEVINTERFACE_COMPORT                = GUID{0x86E0D1E0, 0x8089, 0x11D0, [8]byte{0x9C, 0xE4, 0x08, 0x00, 0x3E, 0x30, 0x1F, 0x73}}
	GUID_DEVINTERFACE_SERENUM_BUS_ENUMERATOR = GUID{0x4D36E978, 0xE325, 0x11CE, [8]byte{0xBF, 0xC1, 0x08, 0x00, 0x2B, 0xE1, 0x03, 0x18}}
)

// InterfaceClass pairs a well-known interface class GUID with its header
// constant name.
type InterfaceClass struct {
	Name string
	GUID GUID
}

// InterfaceClasses lists the well-known interface classes above, in
// header order.
var InterfaceClasses = []InterfaceClass{
	{"GUID_DEVINTERFACE_DISK", GUID_DEVINTERFACE_DISK},
	{"GUID_DEVINTERFACE_CDROM", GUID_DEVINTERFACE_CDROM},
	{"GUID_DEVINTERFACE_PARTITION", GUID_DEVINTERFACE_PARTITION},
	{"GUID_DEVINTERFACE_TAPE", GUID_DEVINTERFACE_TAPE},
	{"GUID_DEVINTERFACE_WRITEONCEDISK", GUID_DEVINTERFACE_WRITEONCEDISK},
	{"GUID_DEVINTERFACE_VOLUME", GUID_DEVINTERFACE_VOLUME},
	{"GUID_DEVINTERFACE_MEDIUMCHANGER", GUID_DEVINTERFACE_MEDIUMCHANGER},
	{"GUID_DEVINTERFACE_FLOPPY", GUID_DEVINTERFACE_FLOPPY},
	{"GUID_DEVINTERFACE_CDCHANGER", GUID_DEVINTERFACE_CDCHANGER},
	{"GUID_DEVINTERFACE_STORAGEPORT", GUID_DEVINTERFACE_STORAGEPORT},
	{"GUID_DEVINTERFACE_VMLUN", GUID_DEVINTERFACE_VMLUN},
	{"GUID_DEVINTERFACE_SES", GUID_DEVINTERFACE_SES},
	{"GUID_DEVINTERFACE_SERVICE_VOLUME", GUID_DEVINTERFACE_SERVICE_VOLUME},
	{"GUID_DEVINTERFACE_HIDDEN_VOLUME", GUID_DEVINTERFACE_HIDDEN_VOLUME},
	{"GUID_DEVINTERFACE_UNIFIED_ACCESS_RPMB", GUID_DEVINTERFACE_UNIFIED_ACCESS_RPMB},
	{"GUID_DEVINTERFACE_SCM_PHYSICAL_DEVICE", GUID_DEVINTERFACE_SCM_PHYSICAL_DEVICE},
	{"GUID_DEVINTERFACE_COMPORT", GUID_DEVINTERFACE_COMPORT},
	{"GUID_DEVINTERFACE_SERENUM_BUS_ENUMERATOR", GUID_DEVINTERFACE_SERENUM_BUS_ENUMERATOR},
}
