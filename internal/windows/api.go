//go:build windows

// Package windows wraps the winspool and shell32 calls behind the Windows spooler.
package windows

import sys "golang.org/x/sys/windows"

var (
	winspool               = sys.NewLazySystemDLL("winspool.drv")
	procEnumPrintersW      = winspool.NewProc("EnumPrintersW")
	procSetDefaultPrinterW = winspool.NewProc("SetDefaultPrinterW")
)

const (
	PRINTER_ENUM_LOCAL = 0x00000002

	SW_HIDE = 0
)

// PRINTER_INFO_1 mirrors the Win32 PRINTER_INFO_1W structure
type PRINTER_INFO_1 struct {
	Flags        uint32
	PDescription *uint16
	PName        *uint16
	PComment     *uint16
}
