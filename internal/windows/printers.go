//go:build windows

package windows

import (
	"fmt"
	"unsafe"

	sys "golang.org/x/sys/windows"
)

// EnumPrinters returns the names of the printers matching flags
// (e.g. PRINTER_ENUM_LOCAL) using info level 1.
func EnumPrinters(flags uint32) ([]string, error) {
	var needed, returned uint32

	// First call sizes the buffer
	ret, _, err := procEnumPrintersW.Call(
		uintptr(flags),
		0,
		1,
		0,
		0,
		uintptr(unsafe.Pointer(&needed)),
		uintptr(unsafe.Pointer(&returned)),
	)

	if ret == 0 && err != sys.ERROR_INSUFFICIENT_BUFFER {
		return nil, fmt.Errorf("EnumPrinters failed: %w", err)
	}

	if needed == 0 {
		return []string{}, nil
	}

	buf := make([]byte, needed)
	ret, _, err = procEnumPrintersW.Call(
		uintptr(flags),
		0,
		1,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(needed),
		uintptr(unsafe.Pointer(&needed)),
		uintptr(unsafe.Pointer(&returned)),
	)

	if ret == 0 {
		return nil, fmt.Errorf("EnumPrinters failed: %w", err)
	}

	infos := unsafe.Slice((*PRINTER_INFO_1)(unsafe.Pointer(&buf[0])), returned)
	names := make([]string, 0, returned)

	for _, info := range infos {
		names = append(names, sys.UTF16PtrToString(info.PName))
	}

	return names, nil
}

// SetDefaultPrinter makes name the current user's default printer
func SetDefaultPrinter(name string) error {
	namePtr, err := sys.UTF16PtrFromString(name)
	if err != nil {
		return err
	}

	ret, _, err := procSetDefaultPrinterW.Call(uintptr(unsafe.Pointer(namePtr)))
	if ret == 0 {
		return fmt.Errorf("SetDefaultPrinter(%q) failed: %w", name, err)
	}

	return nil
}

// ShellExecute wraps the shell32 ShellExecuteW call
func ShellExecute(hwnd uintptr, verb, file, args, cwd string, showCmd int32) error {
	var verbPtr, filePtr, argsPtr, cwdPtr *uint16
	var err error

	if verb != "" {
		verbPtr, err = sys.UTF16PtrFromString(verb)
		if err != nil {
			return err
		}
	}

	filePtr, err = sys.UTF16PtrFromString(file)
	if err != nil {
		return err
	}

	if args != "" {
		argsPtr, err = sys.UTF16PtrFromString(args)
		if err != nil {
			return err
		}
	}

	if cwd != "" {
		cwdPtr, err = sys.UTF16PtrFromString(cwd)
		if err != nil {
			return err
		}
	}

	if err := sys.ShellExecute(sys.Handle(hwnd), verbPtr, filePtr, argsPtr, cwdPtr, showCmd); err != nil {
		return fmt.Errorf("ShellExecute %q failed: %w", verb, err)
	}

	return nil
}
