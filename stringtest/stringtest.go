package stringtest

import (
	"strings"
)

// Input dedents a raw string literal for use as test input. One leading and
// one trailing newline are dropped, the indentation common to all non-blank
// lines is removed, and whitespace-only lines become empty.
//
//	src := stringtest.Input(`
//		/**
//		 * Hello.
//		 */
//	`) // -> "/**\n * Hello.\n */"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		case indent > 0:
			lines[i] = line[indent:]
		}
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins lines with "\n".
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with "\r\n".
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

// DocComment lays lines out as a Javadoc comment with the usual " * "
// decoration:
//
//	stringtest.DocComment("Hello.", "World.")
//	// -> "/**\n * Hello.\n * World.\n */"
//
// An empty line gets a bare " *".
func DocComment(lines ...string) string {
	var sb strings.Builder

	sb.WriteString("/**\n")

	for _, line := range lines {
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}

		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString(" */")

	return sb.String()
}
