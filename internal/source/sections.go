package source

import "strings"

// Sections partitions a file around its contiguous include block.
// Prologue and Epilogue are verbatim, blank lines included. Blank lines
// inside the include block are separators and are dropped; they get
// regenerated on reassembly.
type Sections struct {
	Prologue []string
	Includes []string
	Epilogue []string
}

// Split partitions lines into prologue, include block, and epilogue.
//
// Scanning starts before the block. An include line starts or continues
// the block. While collecting, blank lines are discarded and the first
// non-blank non-include line ends the block and opens the epilogue.
func Split(lines []string) Sections {
	var s Sections

	collecting := false
	finished := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case !finished && strings.HasPrefix(trimmed, includeToken):
			s.Includes = append(s.Includes, line)
			collecting = true

		case collecting:
			if trimmed == "" {
				continue
			}
			finished = true
			collecting = false
			s.Epilogue = append(s.Epilogue, line)

		case finished:
			s.Epilogue = append(s.Epilogue, line)

		default:
			s.Prologue = append(s.Prologue, line)
		}
	}

	return s
}
