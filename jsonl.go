package fracture

import "strings"

// ReformatJSONL treats the input as JSON Lines: each line is formatted
// independently and blank lines pass through. Errors name the failing line.
func (f *Formatter) ReformatJSONL(jsonlText string) (string, error) {
	return f.eachLine(jsonlText, func(line string) (string, error) {
		return f.Reformat(line, 0)
	})
}

// MinifyJSONL minifies each line of JSON Lines input independently.
func (f *Formatter) MinifyJSONL(jsonlText string) (string, error) {
	return f.eachLine(jsonlText, f.Minify)
}

func (f *Formatter) eachLine(jsonlText string, transform func(string) (string, error)) (string, error) {
	var outputLines []string
	for lineNum, line := range splitLines(jsonlText) {
		if strings.TrimSpace(line) == "" {
			outputLines = append(outputLines, "")
			continue
		}
		result, err := transform(line)
		if err != nil {
			return "", wrapError(err, "line %d: %s", lineNum+1, err)
		}
		outputLines = append(outputLines, strings.TrimRight(result, " \t\r\n"))
	}
	joined := strings.Join(outputLines, "\n")
	if joined != "" {
		joined += "\n"
	}
	return joined, nil
}

// splitLines splits on newlines without producing a phantom empty line for a
// trailing terminator. Lone CRs attached to LF are stripped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
