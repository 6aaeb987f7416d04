//go:build windows

//lint:file-ignore U1000 exports

package devif

import (
	"syscall"
)

var (
	setupapi                                  = syscall.NewLazyDLL("setupapi.dll")
	procSetupDiGetClassDevsW                  = setupapi.NewProc("SetupDiGetClassDevsW")
	procSetupDiDestroyDeviceInfoList          = setupapi.NewProc("SetupDiDestroyDeviceInfoList")
	procSetupDiEnumDeviceInterfaces           = setupapi.NewProc("SetupDiEnumDeviceInterfaces")
	procSetupDiGetDeviceInterfaceDetailW      = setupapi.NewProc("SetupDiGetDeviceInterfaceDetailW")
	procSetupDiGetDeviceInterfacePropertyKeys = setupapi.NewProc("SetupDiGetDeviceInterfacePropertyKeys")
	procSetupDiGetDeviceInterfacePropertyW    = setupapi.NewProc("SetupDiGetDeviceInterfacePropertyW")
)
