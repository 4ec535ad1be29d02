package interfaces

import "context"

// Spooler is the host print capability. One variant exists per supported OS
// family and is selected once at startup.
type Spooler interface {
	// Name identifies the variant in logs ("windows", "cups")
	Name() string
	// ListPrinters returns installed printer names in the order the OS reports them
	ListPrinters(ctx context.Context) ([]string, error)
	// Submit hands a single file to the named printer
	Submit(ctx context.Context, printer, file string) error
}

// CommandRunner runs an external program and returns its standard output
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// PrintShell handles the Windows spooler and shell calls
type PrintShell interface {
	EnumPrinters() ([]string, error)
	SetDefaultPrinter(name string) error
	ShellPrint(file string) error
}
