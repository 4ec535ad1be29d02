//go:build windows

package windows

// PrintShell implements interfaces.PrintShell using the real Windows APIs
type PrintShell struct{}

func NewPrintShell() *PrintShell {
	return &PrintShell{}
}

func (p *PrintShell) EnumPrinters() ([]string, error) {
	return EnumPrinters(PRINTER_ENUM_LOCAL)
}

func (p *PrintShell) SetDefaultPrinter(name string) error {
	return SetDefaultPrinter(name)
}

// ShellPrint opens file with its registered "print" handler, hidden
func (p *PrintShell) ShellPrint(file string) error {
	return ShellExecute(0, "print", file, "", ".", SW_HIDE)
}
