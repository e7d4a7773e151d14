package generator

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/signedsource"
)

// template holds the presentation fields that surround the file list.
type template struct {
	generator   string
	description string
	exportName  string
}

func templateFor(job *domain.Job) template {
	t := template{
		generator:   job.Generator,
		description: job.Description,
		exportName:  job.ExportName,
	}
	if t.generator == "" {
		t.generator = domain.DefaultGeneratorName
	}
	if t.description == "" {
		t.description = domain.DefaultDescription
	}
	if t.exportName == "" {
		t.exportName = domain.DefaultExportName
	}
	return t
}

// header returns the banner lines, the signing placeholder and the description.
func (t template) header() []string {
	lines := []string{
		"// THIS IS AN AUTOGENERATED FILE. DO NOT EDIT THIS FILE DIRECTLY.",
		"//",
		"// Generated by " + t.generator,
		"// " + signedsource.Token(),
		"//",
	}
	for line := range strings.Lines(t.description) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			lines = append(lines, "//")
			continue
		}
		lines = append(lines, "// "+line)
	}
	return append(lines, "")
}

// renderRaw renders the unformatted module: the list as compact JSON, no semicolons.
func renderRaw(t template, files domain.FileList) (string, error) {
	list, err := marshalList(files)
	if err != nil {
		return "", err
	}

	lines := t.header()
	lines = append(lines,
		"const "+t.exportName+": string[] = "+list,
		"",
		"export { "+t.exportName+" }",
		"",
	)
	return strings.Join(lines, "\n"), nil
}

func marshalList(files domain.FileList) (string, error) {
	if files == nil {
		files = domain.FileList{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]string(files)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// renderStyled prints the module the way the project's formatter would.
func renderStyled(t template, files domain.FileList, style *domain.Style) (string, error) {
	quoted := make([]string, len(files))
	for i, file := range files {
		lit, err := quote(file, style.SingleQuote)
		if err != nil {
			return "", err
		}
		quoted[i] = lit
	}

	semi := ""
	if style.Semi {
		semi = ";"
	}

	lines := t.header()
	lines = append(lines, declaration(t.exportName, quoted, style, semi)...)
	lines = append(lines, "", exportStatement(t.exportName, style.BracketSpacing)+semi, "")

	eol := style.EndOfLine
	if eol == "" {
		eol = "\n"
	}
	return strings.Join(lines, eol), nil
}

func declaration(name string, quoted []string, style *domain.Style, semi string) []string {
	prefix := "const " + name + ": string[] = "

	single := prefix + "[" + strings.Join(quoted, ", ") + "]" + semi
	if len(quoted) == 0 || utf8.RuneCountInString(single) <= style.PrintWidth {
		return []string{single}
	}

	indent := style.Indent()
	lines := make([]string, 0, len(quoted)+2)
	lines = append(lines, prefix+"[")
	for i, lit := range quoted {
		sep := ","
		if i == len(quoted)-1 && style.TrailingComma == domain.TrailingCommaNone {
			sep = ""
		}
		lines = append(lines, indent+lit+sep)
	}
	return append(lines, "]"+semi)
}

func exportStatement(name string, bracketSpacing bool) string {
	if bracketSpacing {
		return "export { " + name + " }"
	}
	return "export {" + name + "}"
}

// quote renders s as a string literal, preferring single quotes when asked
// unless that would need more escapes than double quotes.
func quote(s string, preferSingle bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	double := strings.TrimSuffix(buf.String(), "\n")

	singles := strings.Count(s, "'")
	doubles := strings.Count(s, `"`)
	if !preferSingle && doubles <= singles || preferSingle && singles > doubles {
		return double, nil
	}

	body := double[1 : len(double)-1]
	body = strings.ReplaceAll(body, `\"`, `"`)
	body = strings.ReplaceAll(body, "'", `\'`)
	return "'" + body + "'", nil
}
