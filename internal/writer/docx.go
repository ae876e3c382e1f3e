package writer

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// ExportDocx renders the sentence-per-line text file at textPath into a
// docx transcript at docxPath, one paragraph per sentence.
func ExportDocx(title, textPath, docxPath string) error {
	content, err := os.ReadFile(textPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		doc.AddParagraph("").AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}

	if err := doc.SaveTo(docxPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}
