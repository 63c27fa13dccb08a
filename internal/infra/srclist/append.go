// Where: rfnoc-inst/internal/infra/srclist/append.go
// What: Anchor-based single line insertion.
// Why: Patch hand-maintained source lists without rewriting them.
package srclist

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/poruru/rfnoc-inst/internal/infra/fileops"
)

// AppendLineSequence inserts newLine into filename after the last line matching
// linePattern (a multi-line regular expression). Without a matching line it is
// appended at the end of the file. If newLine is already present the file is
// not written. It reports whether the file changed.
func AppendLineSequence(filename, linePattern, newLine string) (bool, error) {
	if strings.TrimSpace(linePattern) == "" {
		return false, errLinePatternEmpty
	}
	pattern, err := regexp.Compile("(?m)" + linePattern)
	if err != nil {
		return false, fmt.Errorf("compile line pattern: %w", err)
	}

	content, err := fileops.ReadFile(filename)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	updated, changed := AppendLineContent(content, pattern, newLine)
	if !changed {
		return false, nil
	}
	if err := fileops.WriteFile(filename, updated); err != nil {
		return false, fmt.Errorf("write %s: %w", filename, err)
	}
	return true, nil
}

// AppendLineContent is the pure form of AppendLineSequence.
func AppendLineContent(content string, pattern *regexp.Regexp, newLine string) (string, bool) {
	newLine = strings.TrimSuffix(newLine, "\n")
	if containsLine(content, newLine) {
		return content, false
	}

	matches := pattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return content + newLine + "\n", true
	}

	end := matches[len(matches)-1][1]
	if end > 0 && content[end-1] == '\n' {
		end--
	}
	lineEnd := strings.IndexByte(content[end:], '\n')
	if lineEnd < 0 {
		return content + "\n" + newLine + "\n", true
	}
	insertAt := end + lineEnd + 1
	return content[:insertAt] + newLine + "\n" + content[insertAt:], true
}

func containsLine(content, line string) bool {
	for _, existing := range SplitLines(content) {
		if strings.TrimSuffix(existing, "\n") == line {
			return true
		}
	}
	return false
}
