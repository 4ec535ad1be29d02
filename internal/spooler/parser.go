package spooler

import "strings"

// ParsePrinterNames extracts printer names from `lpstat -a` output.
// Each line looks like "HP-Office accepting requests since Mon 01 Jan 2024";
// the name is the first whitespace-delimited token. Blank lines and indented
// continuation lines (the reason a printer is rejecting jobs) are skipped.
func ParsePrinterNames(output string) []string {
	names := []string{}

	for line := range strings.SplitSeq(output, "\n") {
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		names = append(names, fields[0])
	}

	return names
}
