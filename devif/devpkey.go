package devif

// Property keys from devpkey.h. The decoder works on any key; these are
// the documented ones, kept so tools can print a readable name instead
// of the raw fmtid::pid form.

// Shared fmtids, named after the key family they group.
var (
	fmtidNameProps       = GUID{0xB725F130, 0x47EF, 0x101A, [8]byte{0xA5, 0xF1, 0x02, 0x60, 0x8C, 0x9E, 0xEB, 0xAC}}
	fmtidDevice          = GUID{0xA45C254E, 0xDF1C, 0x4EFD, [8]byte{0x80, 0x20, 0x67, 0xD1, 0x46, 0xA8, 0x50, 0xE0}}
	fmtidDeviceRelations = GUID{0x4340A6C5, 0x93FA, 0x4706, [8]byte{0x97, 0x2C, 0x7B, 0x64, 0x80, 0x08, 0xA5, 0xA7}}
	fmtidDeviceOther     = GUID{0x80497100, 0x8C73, 0x48B9, [8]byte{0xAA, 0xD9, 0xCE, 0x38, 0x7E, 0x19, 0xC5, 0x6E}}
	fmtidDeviceContainer = GUID{0x8C7ED206, 0x3F8A, 0x4827, [8]byte{0xB3, 0xAB, 0xAE, 0x9E, 0x1F, 0xAE, 0xFC, 0x6C}}
	fmtidDeviceInstance  = GUID{0x78C34FC8, 0x104A, 0x4ACA, [8]byte{0x9E, 0xA4, 0x52, 0x4D, 0x52, 0x99, 0x6E, 0x57}}
	fmtidDeviceModelId   = GUID{0x80D81EA6, 0x7473, 0x4B0C, [8]byte{0x82, 0x16, 0xEF, 0xC1, 0x1A, 0x2C, 0x4C, 0x8B}}
	fmtidDeviceBus       = GUID{0x540B947E, 0x8B40, 0x45BC, [8]byte{0xA8, 0xA2, 0x6A, 0x0B, 0x89, 0x4C, 0xBD, 0xA2}}
	fmtidDeviceDates     = GUID{0x83DA6326, 0x97A6, 0x4088, [8]byte{0x94, 0x53, 0xA1, 0x92, 0x3F, 0x57, 0x3B, 0x29}}
	fmtidDeviceDriver    = GUID{0xA8B865DD, 0x2E3D, 0x4094, [8]byte{0xAD, 0x97, 0xE5, 0x93, 0xA7, 0x0C, 0x75, 0xD6}}
	fmtidSafeRemoval     = GUID{0xAFD97640, 0x86A3, 0x4210, [8]byte{0xB6, 0x7C, 0x28, 0x9C, 0x41, 0xAA, 0xBE, 0x55}}
	fmtidDrvPkg          = GUID{0xCF73BB51, 0x3ABF, 0x44A2, [8]byte{0x85, 0xE0, 0x9A, 0x3D, 0xC7, 0xA1, 0x21, 0x32}}
	fmtidDeviceClass     = GUID{0x4321918B, 0xF69E, 0x470D, [8]byte{0xA5, 0xDE, 0x4D, 0x88, 0xC7, 0x5A, 0xD2, 0x4B}}
	fmtidClassNames      = GUID{0x259ABFFC, 0x50A7, 0x47CE, [8]byte{0xAF, 0x08, 0x68, 0xC9, 0xA7, 0xD7, 0x33, 0x66}}
	fmtidInterface       = GUID{0x026E516E, 0xB814, 0x414B, [8]byte{0x83, 0xCD, 0x85, 0x6D, 0x6F, 0xEF, 0x48, 0x22}}
	fmtidInterfaceClass  = GUID{0x14C83A99, 0x0B3F, 0x44B7, [8]byte{0xBE, 0x4C, 0xA1, 0x78, 0xD3, 0x99, 0x05, 0x64}}
	fmtidObjectType      = GUID{0x13673F42, 0xA3D6, 0x49F6, [8]byte{0xB4, 0xDA, 0xAE, 0x46, 0xE0, 0xC5, 0x23, 0x7C}}
	fmtidStorage         = GUID{0x4D1EBEE8, 0x0803, 0x4774, [8]byte{0x98, 0x42, 0xB7, 0x7D, 0xB5, 0x02, 0x65, 0xE9}}
)

// Keys a caller is likely to query directly.
var (
	DEVPKEY_NAME = DevPropKey{fmtidNameProps, 10}

	DEVPKEY_Device_DeviceDesc          = DevPropKey{fmtidDevice, 2}
	DEVPKEY_Device_HardwareIds         = DevPropKey{fmtidDevice, 3}
	DEVPKEY_Device_CompatibleIds       = DevPropKey{fmtidDevice, 4}
	DEVPKEY_Device_Service             = DevPropKey{fmtidDevice, 6}
	DEVPKEY_Device_Class               = DevPropKey{fmtidDevice, 9}
	DEVPKEY_Device_ClassGuid           = DevPropKey{fmtidDevice, 10}
	DEVPKEY_Device_Driver              = DevPropKey{fmtidDevice, 11}
	DEVPKEY_Device_Manufacturer        = DevPropKey{fmtidDevice, 13}
	DEVPKEY_Device_FriendlyName        = DevPropKey{fmtidDevice, 14}
	DEVPKEY_Device_LocationInfo        = DevPropKey{fmtidDevice, 15}
	DEVPKEY_Device_PDOName             = DevPropKey{fmtidDevice, 16}
	DEVPKEY_Device_Capabilities        = DevPropKey{fmtidDevice, 17}
	DEVPKEY_Device_BusTypeGuid         = DevPropKey{fmtidDevice, 21}
	DEVPKEY_Device_BusNumber           = DevPropKey{fmtidDevice, 23}
	DEVPKEY_Device_EnumeratorName      = DevPropKey{fmtidDevice, 24}
	DEVPKEY_Device_RemovalPolicy       = DevPropKey{fmtidDevice, 33}
	DEVPKEY_Device_InstallState        = DevPropKey{fmtidDevice, 36}
	DEVPKEY_Device_LocationPaths       = DevPropKey{fmtidDevice, 37}
	DEVPKEY_Device_BaseContainerId     = DevPropKey{fmtidDevice, 38}
	DEVPKEY_Device_InstanceId          = DevPropKey{fmtidDeviceInstance, 256}
	DEVPKEY_Device_ContainerId         = DevPropKey{fmtidDeviceContainer, 2}
	DEVPKEY_Device_IsPresent           = DevPropKey{fmtidDeviceBus, 5}
	DEVPKEY_Device_HasProblem          = DevPropKey{fmtidDeviceBus, 6}
	DEVPKEY_Device_BusReportedDesc     = DevPropKey{fmtidDeviceBus, 4}
	DEVPKEY_Device_Parent              = DevPropKey{fmtidDeviceRelations, 8}
	DEVPKEY_Device_Children            = DevPropKey{fmtidDeviceRelations, 9}
	DEVPKEY_Device_Siblings            = DevPropKey{fmtidDeviceRelations, 10}
	DEVPKEY_Device_DevNodeStatus       = DevPropKey{fmtidDeviceRelations, 2}
	DEVPKEY_Device_ProblemCode         = DevPropKey{fmtidDeviceRelations, 3}
	DEVPKEY_Device_InstallDate         = DevPropKey{fmtidDeviceDates, 100}
	DEVPKEY_Device_FirstInstallDate    = DevPropKey{fmtidDeviceDates, 101}
	DEVPKEY_Device_LastArrivalDate     = DevPropKey{fmtidDeviceDates, 102}
	DEVPKEY_Device_LastRemovalDate     = DevPropKey{fmtidDeviceDates, 103}
	DEVPKEY_Device_DriverVersion       = DevPropKey{fmtidDeviceDriver, 3}
	DEVPKEY_Device_DriverDate          = DevPropKey{fmtidDeviceDriver, 2}
	DEVPKEY_Device_DriverDesc          = DevPropKey{fmtidDeviceDriver, 4}
	DEVPKEY_Device_DriverInfPath       = DevPropKey{fmtidDeviceDriver, 5}
	DEVPKEY_Device_DriverProvider      = DevPropKey{fmtidDeviceDriver, 9}
	DEVPKEY_Device_SafeRemovalRequired = DevPropKey{fmtidSafeRemoval, 2}

	DEVPKEY_DeviceInterface_FriendlyName  = DevPropKey{fmtidInterface, 2}
	DEVPKEY_DeviceInterface_Enabled       = DevPropKey{fmtidInterface, 3}
	DEVPKEY_DeviceInterface_ClassGuid     = DevPropKey{fmtidInterface, 4}
	DEVPKEY_DeviceInterface_ReferenceStr  = DevPropKey{fmtidInterface, 5}
	DEVPKEY_DeviceInterface_Restricted    = DevPropKey{fmtidInterface, 6}
	DEVPKEY_DeviceInterfaceClass_Name     = DevPropKey{fmtidInterfaceClass, 3}
	DEVPKEY_DeviceInterfaceClass_DefaultI = DevPropKey{fmtidInterfaceClass, 2}

	DEVPKEY_DeviceContainer_FriendlyName = DevPropKey{fmtidDeviceInstance, 12288}
	DEVPKEY_DeviceContainer_Manufacturer = DevPropKey{fmtidDeviceInstance, 8192}
	DEVPKEY_DeviceContainer_ModelName    = DevPropKey{fmtidDeviceInstance, 8194}
	DEVPKEY_DeviceContainer_ModelNumber  = DevPropKey{fmtidDeviceInstance, 8195}

	DEVPKEY_DevQuery_ObjectType = DevPropKey{fmtidObjectType, 2}

	DEVPKEY_Storage_Portable         = DevPropKey{fmtidStorage, 2}
	DEVPKEY_Storage_Removable_Media  = DevPropKey{fmtidStorage, 3}
	DEVPKEY_Storage_System_Critical  = DevPropKey{fmtidStorage, 4}
	DEVPKEY_Storage_Disk_Number      = DevPropKey{fmtidStorage, 5}
	DEVPKEY_Storage_Partition_Number = DevPropKey{fmtidStorage, 6}
	DEVPKEY_Storage_Mbr_Type         = DevPropKey{fmtidStorage, 7}
	DEVPKEY_Storage_Gpt_Type         = DevPropKey{fmtidStorage, 8}
	DEVPKEY_Storage_Gpt_Name         = DevPropKey{fmtidStorage, 9}
)

var keyNames = map[DevPropKey]string{
	DEVPKEY_NAME: "DEVPKEY_NAME",

	DEVPKEY_Device_DeviceDesc:            "DEVPKEY_Device_DeviceDesc",
	DEVPKEY_Device_HardwareIds:           "DEVPKEY_Device_HardwareIds",
	DEVPKEY_Device_CompatibleIds:         "DEVPKEY_Device_CompatibleIds",
	DEVPKEY_Device_Service:               "DEVPKEY_Device_Service",
	DEVPKEY_Device_Class:                 "DEVPKEY_Device_Class",
	DEVPKEY_Device_ClassGuid:             "DEVPKEY_Device_ClassGuid",
	DEVPKEY_Device_Driver:                "DEVPKEY_Device_Driver",
	{fmtidDevice, 12}:                    "DEVPKEY_Device_ConfigFlags",
	DEVPKEY_Device_Manufacturer:          "DEVPKEY_Device_Manufacturer",
	DEVPKEY_Device_FriendlyName:          "DEVPKEY_Device_FriendlyName",
	DEVPKEY_Device_LocationInfo:          "DEVPKEY_Device_LocationInfo",
	DEVPKEY_Device_PDOName:               "DEVPKEY_Device_PDOName",
	DEVPKEY_Device_Capabilities:          "DEVPKEY_Device_Capabilities",
	{fmtidDevice, 18}:                    "DEVPKEY_Device_UINumber",
	{fmtidDevice, 19}:                    "DEVPKEY_Device_UpperFilters",
	{fmtidDevice, 20}:                    "DEVPKEY_Device_LowerFilters",
	DEVPKEY_Device_BusTypeGuid:           "DEVPKEY_Device_BusTypeGuid",
	{fmtidDevice, 22}:                    "DEVPKEY_Device_LegacyBusType",
	DEVPKEY_Device_BusNumber:             "DEVPKEY_Device_BusNumber",
	DEVPKEY_Device_EnumeratorName:        "DEVPKEY_Device_EnumeratorName",
	{fmtidDevice, 25}:                    "DEVPKEY_Device_Security",
	{fmtidDevice, 26}:                    "DEVPKEY_Device_SecuritySDS",
	{fmtidDevice, 27}:                    "DEVPKEY_Device_DevType",
	{fmtidDevice, 28}:                    "DEVPKEY_Device_Exclusive",
	{fmtidDevice, 29}:                    "DEVPKEY_Device_Characteristics",
	{fmtidDevice, 30}:                    "DEVPKEY_Device_Address",
	{fmtidDevice, 31}:                    "DEVPKEY_Device_UINumberDescFormat",
	{fmtidDevice, 32}:                    "DEVPKEY_Device_PowerData",
	DEVPKEY_Device_RemovalPolicy:         "DEVPKEY_Device_RemovalPolicy",
	{fmtidDevice, 34}:                    "DEVPKEY_Device_RemovalPolicyDefault",
	{fmtidDevice, 35}:                    "DEVPKEY_Device_RemovalPolicyOverride",
	DEVPKEY_Device_InstallState:          "DEVPKEY_Device_InstallState",
	DEVPKEY_Device_LocationPaths:         "DEVPKEY_Device_LocationPaths",
	DEVPKEY_Device_BaseContainerId:       "DEVPKEY_Device_BaseContainerId",
	DEVPKEY_Device_InstanceId:            "DEVPKEY_Device_InstanceId",
	DEVPKEY_Device_DevNodeStatus:         "DEVPKEY_Device_DevNodeStatus",
	DEVPKEY_Device_ProblemCode:           "DEVPKEY_Device_ProblemCode",
	{fmtidDeviceRelations, 4}:            "DEVPKEY_Device_EjectionRelations",
	{fmtidDeviceRelations, 5}:            "DEVPKEY_Device_RemovalRelations",
	{fmtidDeviceRelations, 6}:            "DEVPKEY_Device_PowerRelations",
	{fmtidDeviceRelations, 7}:            "DEVPKEY_Device_BusRelations",
	DEVPKEY_Device_Parent:                "DEVPKEY_Device_Parent",
	DEVPKEY_Device_Children:              "DEVPKEY_Device_Children",
	DEVPKEY_Device_Siblings:              "DEVPKEY_Device_Siblings",
	{fmtidDeviceRelations, 11}:           "DEVPKEY_Device_TransportRelations",
	{fmtidDeviceRelations, 12}:           "DEVPKEY_Device_ProblemStatus",
	{fmtidDeviceOther, 2}:                "DEVPKEY_Device_Reported",
	{fmtidDeviceOther, 3}:                "DEVPKEY_Device_Legacy",
	DEVPKEY_Device_ContainerId:           "DEVPKEY_Device_ContainerId",
	{fmtidDeviceContainer, 4}:            "DEVPKEY_Device_InLocalMachineContainer",
	{fmtidDeviceInstance, 39}:            "DEVPKEY_Device_Model",
	{fmtidDeviceModelId, 2}:              "DEVPKEY_Device_ModelId",
	{fmtidDeviceModelId, 3}:              "DEVPKEY_Device_FriendlyNameAttributes",
	{fmtidDeviceModelId, 4}:              "DEVPKEY_Device_ManufacturerAttributes",
	{fmtidDeviceModelId, 5}:              "DEVPKEY_Device_PresenceNotForDevice",
	{fmtidDeviceModelId, 6}:              "DEVPKEY_Device_SignalStrength",
	{fmtidDeviceModelId, 7}:              "DEVPKEY_Device_IsAssociateableByUserAction",
	{fmtidDeviceModelId, 8}:              "DEVPKEY_Device_ShowInUninstallUI",
	{fmtidDeviceBus, 1}:                  "DEVPKEY_Device_Numa_Proximity_Domain",
	{fmtidDeviceBus, 2}:                  "DEVPKEY_Device_DHP_Rebalance_Policy",
	{fmtidDeviceBus, 3}:                  "DEVPKEY_Device_Numa_Node",
	DEVPKEY_Device_BusReportedDesc:       "DEVPKEY_Device_BusReportedDeviceDesc",
	DEVPKEY_Device_IsPresent:             "DEVPKEY_Device_IsPresent",
	DEVPKEY_Device_HasProblem:            "DEVPKEY_Device_HasProblem",
	{fmtidDeviceBus, 7}:                  "DEVPKEY_Device_ConfigurationId",
	{fmtidDeviceBus, 8}:                  "DEVPKEY_Device_ReportedDeviceIdsHash",
	{fmtidDeviceBus, 9}:                  "DEVPKEY_Device_PhysicalDeviceLocation",
	{fmtidDeviceBus, 10}:                 "DEVPKEY_Device_BiosDeviceName",
	{fmtidDeviceBus, 11}:                 "DEVPKEY_Device_DriverProblemDesc",
	{fmtidDeviceBus, 12}:                 "DEVPKEY_Device_DebuggerSafe",
	{fmtidDeviceBus, 13}:                 "DEVPKEY_Device_PostInstallInProgress",
	{fmtidDeviceBus, 14}:                 "DEVPKEY_Device_Stack",
	{fmtidDeviceBus, 15}:                 "DEVPKEY_Device_ExtendedConfigurationIds",
	{fmtidDeviceBus, 16}:                 "DEVPKEY_Device_IsRebootRequired",
	{fmtidDeviceBus, 17}:                 "DEVPKEY_Device_FirmwareDate",
	{fmtidDeviceBus, 18}:                 "DEVPKEY_Device_FirmwareVersion",
	{fmtidDeviceBus, 19}:                 "DEVPKEY_Device_FirmwareRevision",
	{fmtidDeviceBus, 20}:                 "DEVPKEY_Device_DependencyProviders",
	{fmtidDeviceBus, 21}:                 "DEVPKEY_Device_DependencyDependents",
	{fmtidDeviceBus, 22}:                 "DEVPKEY_Device_SoftRestartSupported",
	{fmtidDeviceBus, 23}:                 "DEVPKEY_Device_ExtendedAddress",
	{fmtidDeviceDates, 6}:                "DEVPKEY_Device_SessionId",
	DEVPKEY_Device_InstallDate:           "DEVPKEY_Device_InstallDate",
	DEVPKEY_Device_FirstInstallDate:      "DEVPKEY_Device_FirstInstallDate",
	DEVPKEY_Device_LastArrivalDate:       "DEVPKEY_Device_LastArrivalDate",
	DEVPKEY_Device_LastRemovalDate:       "DEVPKEY_Device_LastRemovalDate",
	DEVPKEY_Device_DriverDate:            "DEVPKEY_Device_DriverDate",
	DEVPKEY_Device_DriverVersion:         "DEVPKEY_Device_DriverVersion",
	DEVPKEY_Device_DriverDesc:            "DEVPKEY_Device_DriverDesc",
	DEVPKEY_Device_DriverInfPath:         "DEVPKEY_Device_DriverInfPath",
	{fmtidDeviceDriver, 6}:               "DEVPKEY_Device_DriverInfSection",
	{fmtidDeviceDriver, 7}:               "DEVPKEY_Device_DriverInfSectionExt",
	{fmtidDeviceDriver, 8}:               "DEVPKEY_Device_MatchingDeviceId",
	DEVPKEY_Device_DriverProvider:        "DEVPKEY_Device_DriverProvider",
	{fmtidDeviceDriver, 10}:              "DEVPKEY_Device_DriverPropPageProvider",
	{fmtidDeviceDriver, 11}:              "DEVPKEY_Device_DriverCoInstallers",
	{fmtidDeviceDriver, 12}:              "DEVPKEY_Device_ResourcePickerTags",
	{fmtidDeviceDriver, 13}:              "DEVPKEY_Device_ResourcePickerExceptions",
	{fmtidDeviceDriver, 14}:              "DEVPKEY_Device_DriverRank",
	{fmtidDeviceDriver, 15}:              "DEVPKEY_Device_DriverLogoLevel",
	{fmtidDeviceDriver, 17}:              "DEVPKEY_Device_NoConnectSound",
	{fmtidDeviceDriver, 18}:              "DEVPKEY_Device_GenericDriverInstalled",
	{fmtidDeviceDriver, 19}:              "DEVPKEY_Device_AdditionalSoftwareRequested",
	DEVPKEY_Device_SafeRemovalRequired:   "DEVPKEY_Device_SafeRemovalRequired",
	{fmtidSafeRemoval, 3}:                "DEVPKEY_Device_SafeRemovalRequiredOverride",
	{fmtidDrvPkg, 2}:                     "DEVPKEY_DrvPkg_Model",
	{fmtidDrvPkg, 3}:                     "DEVPKEY_DrvPkg_VendorWebSite",
	{fmtidDrvPkg, 4}:                     "DEVPKEY_DrvPkg_DetailedDescription",
	{fmtidDrvPkg, 5}:                     "DEVPKEY_DrvPkg_DocumentationLink",
	{fmtidDrvPkg, 6}:                     "DEVPKEY_DrvPkg_Icon",
	{fmtidDrvPkg, 7}:                     "DEVPKEY_DrvPkg_BrandingIcon",
	{fmtidDeviceClass, 19}:               "DEVPKEY_DeviceClass_UpperFilters",
	{fmtidDeviceClass, 20}:               "DEVPKEY_DeviceClass_LowerFilters",
	{fmtidDeviceClass, 25}:               "DEVPKEY_DeviceClass_Security",
	{fmtidDeviceClass, 26}:               "DEVPKEY_DeviceClass_SecuritySDS",
	{fmtidDeviceClass, 27}:               "DEVPKEY_DeviceClass_DevType",
	{fmtidDeviceClass, 28}:               "DEVPKEY_DeviceClass_Exclusive",
	{fmtidDeviceClass, 29}:               "DEVPKEY_DeviceClass_Characteristics",
	{fmtidClassNames, 2}:                 "DEVPKEY_DeviceClass_Name",
	{fmtidClassNames, 3}:                 "DEVPKEY_DeviceClass_ClassName",
	{fmtidClassNames, 4}:                 "DEVPKEY_DeviceClass_Icon",
	{fmtidClassNames, 5}:                 "DEVPKEY_DeviceClass_ClassInstaller",
	{fmtidClassNames, 6}:                 "DEVPKEY_DeviceClass_PropPageProvider",
	{fmtidClassNames, 7}:                 "DEVPKEY_DeviceClass_NoInstallClass",
	{fmtidClassNames, 8}:                 "DEVPKEY_DeviceClass_NoDisplayClass",
	{fmtidClassNames, 9}:                 "DEVPKEY_DeviceClass_SilentInstall",
	{fmtidClassNames, 10}:                "DEVPKEY_DeviceClass_NoUseClass",
	{fmtidClassNames, 11}:                "DEVPKEY_DeviceClass_DefaultService",
	{fmtidClassNames, 12}:                "DEVPKEY_DeviceClass_IconPath",
	DEVPKEY_DeviceInterface_FriendlyName: "DEVPKEY_DeviceInterface_FriendlyName",
	DEVPKEY_DeviceInterface_Enabled:      "DEVPKEY_DeviceInterface_Enabled",
	DEVPKEY_DeviceInterface_ClassGuid:    "DEVPKEY_DeviceInterface_ClassGuid",
	DEVPKEY_DeviceInterface_ReferenceStr: "DEVPKEY_DeviceInterface_ReferenceString",
	DEVPKEY_DeviceInterface_Restricted:   "DEVPKEY_DeviceInterface_Restricted",
	DEVPKEY_DeviceInterfaceClass_DefaultI: "DEVPKEY_DeviceInterfaceClass_DefaultInterface",
	DEVPKEY_DeviceInterfaceClass_Name:    "DEVPKEY_DeviceInterfaceClass_Name",
	DEVPKEY_DeviceContainer_FriendlyName: "DEVPKEY_DeviceContainer_FriendlyName",
	DEVPKEY_DeviceContainer_Manufacturer: "DEVPKEY_DeviceContainer_Manufacturer",
	DEVPKEY_DeviceContainer_ModelName:    "DEVPKEY_DeviceContainer_ModelName",
	DEVPKEY_DeviceContainer_ModelNumber:  "DEVPKEY_DeviceContainer_ModelNumber",
	{fmtidDeviceInstance, 9}:             "DEVPKEY_DeviceContainer_InstallInProgress",
	DEVPKEY_DevQuery_ObjectType:          "DEVPKEY_DevQuery_ObjectType",
	DEVPKEY_Storage_Portable:             "DEVPKEY_Storage_Portable",
	DEVPKEY_Storage_Removable_Media:      "DEVPKEY_Storage_Removable_Media",
	DEVPKEY_Storage_System_Critical:      "DEVPKEY_Storage_System_Critical",
	DEVPKEY_Storage_Disk_Number:          "DEVPKEY_Storage_Disk_Number",
	DEVPKEY_Storage_Partition_Number:     "DEVPKEY_Storage_Partition_Number",
	DEVPKEY_Storage_Mbr_Type:             "DEVPKEY_Storage_Mbr_Type",
	DEVPKEY_Storage_Gpt_Type:             "DEVPKEY_Storage_Gpt_Type",
	DEVPKEY_Storage_Gpt_Name:             "DEVPKEY_Storage_Gpt_Name",
}

// KeyName returns the devpkey.h constant name for key, when known.
func KeyName(key DevPropKey) (string, bool) {
	name, ok := keyNames[key]
	return name, ok
}

// KeyByName resolves a devpkey.h constant name back to its key.
func KeyByName(name string) (DevPropKey, bool) {
	key, ok := namedKeys[name]
	return key, ok
}

var namedKeys = func() map[string]DevPropKey {
	m := make(map[string]DevPropKey, len(keyNames))
	for key, name := range keyNames {
		m[name] = key
	}
	return m
}()
