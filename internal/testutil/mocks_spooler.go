package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Submission records one Spooler.Submit call
type Submission struct {
	Printer string
	File    string
}

// MockSpooler implements interfaces.Spooler and records all calls for verification
type MockSpooler struct {
	NameResult        string
	Printers          []string
	ListErr           error
	ListPrintersCalls int
	Submissions       []Submission
	submitErrs        map[int]error
}

func NewMockSpooler() *MockSpooler {
	return &MockSpooler{
		NameResult:  "mock",
		Printers:    []string{},
		Submissions: []Submission{},
		submitErrs:  make(map[int]error),
	}
}

func (m *MockSpooler) Name() string {
	return m.NameResult
}

func (m *MockSpooler) ListPrinters(_ context.Context) ([]string, error) {
	m.ListPrintersCalls++
	if m.ListErr != nil {
		return []string{}, m.ListErr
	}

	return m.Printers, nil
}

func (m *MockSpooler) Submit(_ context.Context, printer, file string) error {
	index := len(m.Submissions)
	m.Submissions = append(m.Submissions, Submission{Printer: printer, File: file})

	return m.submitErrs[index]
}

// SubmittedFiles returns the files passed to Submit, in call order
func (m *MockSpooler) SubmittedFiles() []string {
	files := make([]string, 0, len(m.Submissions))
	for _, s := range m.Submissions {
		files = append(files, s.File)
	}

	return files
}

// Helper methods for fluent configuration
func (m *MockSpooler) WithPrinters(printers ...string) *MockSpooler {
	m.Printers = printers
	return m
}

func (m *MockSpooler) WithListError(err error) *MockSpooler {
	m.ListErr = err
	return m
}

// WithSubmitErrorAt makes the index-th (zero-based) Submit call fail with err
func (m *MockSpooler) WithSubmitErrorAt(index int, err error) *MockSpooler {
	m.submitErrs[index] = err
	return m
}

// RunnerCall records one CommandRunner.Output call
type RunnerCall struct {
	Name string
	Args []string
}

type runnerResult struct {
	out []byte
	err error
}

// MockRunner implements interfaces.CommandRunner with canned results per command name
type MockRunner struct {
	Calls   []RunnerCall
	results map[string]runnerResult
}

func NewMockRunner() *MockRunner {
	return &MockRunner{
		Calls:   []RunnerCall{},
		results: make(map[string]runnerResult),
	}
}

func (m *MockRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, RunnerCall{Name: name, Args: args})

	res, ok := m.results[name]
	if !ok {
		return nil, fmt.Errorf("%s: command not configured in mock", name)
	}

	return res.out, res.err
}

// CommandLine returns the i-th call as a single space-separated string
func (m *MockRunner) CommandLine(i int) string {
	call := m.Calls[i]
	return strings.Join(append([]string{call.Name}, call.Args...), " ")
}

// Helper methods for fluent configuration
func (m *MockRunner) WithOutput(name, out string) *MockRunner {
	m.results[name] = runnerResult{out: []byte(out)}
	return m
}

func (m *MockRunner) WithError(name string, err error) *MockRunner {
	m.results[name] = runnerResult{err: err}
	return m
}

// MockPrintShell implements interfaces.PrintShell. Calls holds every call in
// order as "SetDefaultPrinter:<name>" or "ShellPrint:<file>".
type MockPrintShell struct {
	Printers         []string
	EnumErr          error
	SetDefaultErr    error
	ShellPrintErr    error
	Calls            []string
	EnumPrinterCalls int
}

func NewMockPrintShell() *MockPrintShell {
	return &MockPrintShell{
		Printers: []string{},
		Calls:    []string{},
	}
}

func (m *MockPrintShell) EnumPrinters() ([]string, error) {
	m.EnumPrinterCalls++
	if m.EnumErr != nil {
		return nil, m.EnumErr
	}

	return m.Printers, nil
}

func (m *MockPrintShell) SetDefaultPrinter(name string) error {
	m.Calls = append(m.Calls, "SetDefaultPrinter:"+name)
	return m.SetDefaultErr
}

func (m *MockPrintShell) ShellPrint(file string) error {
	m.Calls = append(m.Calls, "ShellPrint:"+file)
	return m.ShellPrintErr
}

// Helper methods for fluent configuration
func (m *MockPrintShell) WithPrinters(printers ...string) *MockPrintShell {
	m.Printers = printers
	return m
}

func (m *MockPrintShell) WithEnumError(err error) *MockPrintShell {
	m.EnumErr = err
	return m
}

func (m *MockPrintShell) WithSetDefaultError(err error) *MockPrintShell {
	m.SetDefaultErr = err
	return m
}

func (m *MockPrintShell) WithShellPrintError(err error) *MockPrintShell {
	m.ShellPrintErr = err
	return m
}
