package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/consent-generator/internal/pipeline"
	"github.com/jonathan/consent-generator/internal/schemas"
	"github.com/jonathan/consent-generator/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRoster(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	session := &types.Session{
		OrgName: "ООО «Лагерь»",
		Participants: []types.Participant{
			{FullName: "Иванов Иван", BirthDate: time.Date(2014, 3, 5, 0, 0, 0, 0, time.UTC), TutorName: "Иванова Мария"},
			{Role: "сопровождающий", FullName: "Петрова Анна", Variant: types.VariantEscort},
			{FullName: "Сидоров Петр"},
		},
	}

	p.PrintRoster(session)
	output := buf.String()

	assert.Contains(t, output, "ROSTER")
	assert.Contains(t, output, "Сопровождающие (1)")
	assert.Contains(t, output, "1. Петрова Анна")
	assert.Contains(t, output, "Дети (2)")
	assert.Contains(t, output, "1. Иванов Иван, 05.03.2014 (представитель: Иванова Мария)")
	assert.Contains(t, output, "2. Сидоров Петр")
	assert.Less(t, strings.Index(output, "Сопровождающие"), strings.Index(output, "Дети"))
}

func TestPrintRoster_LongLinesKeptWhole(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	line := "Константинопольский-Преображенский Александр Вениаминович"
	session := &types.Session{Participants: []types.Participant{
		{FullName: line, BirthDate: time.Date(2013, 11, 30, 0, 0, 0, 0, time.UTC), TutorName: "Константинопольская-Преображенская Екатерина Вениаминовна"},
	}}

	p.PrintRoster(session)
	output := buf.String()

	assert.Contains(t, output, "1. "+line+", 30.11.2013 (представитель: Константинопольская-Преображенская Екатерина Вениаминовна)")
	assert.NotContains(t, output, "...")
}

func TestPrintRoster_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoster(nil)
	assert.Empty(t, buf.String())
}

func TestPrintArchive(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	archive := &pipeline.Archive{
		Name:  "согласия_20261014_123045.zip",
		Files: []string{"Иванов Иван.docx", "Петрова Анна.docx"},
	}

	p.PrintArchive(archive, "/tmp/out/согласия_20261014_123045.zip")
	output := buf.String()

	assert.Contains(t, output, "CONSENT ARCHIVE")
	assert.Contains(t, output, "Documents: 2")
	assert.Contains(t, output, "Иванов Иван.docx")
	assert.Contains(t, output, "Written:")
}

func TestPrintLintFindings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLintFindings(&schemas.ValidationError{Errors: []schemas.FieldError{
		{Field: "1.full_name", Message: "Invalid type"},
	}})
	output := buf.String()

	assert.Contains(t, output, "ROSTER LINT")
	assert.Contains(t, output, "Found 1 finding(s)")
	assert.Contains(t, output, "1. 1.full_name: Invalid type")
}

func TestPrintLintFindings_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLintFindings(nil)
	assert.Contains(t, buf.String(), "No findings")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TEST", strings.Repeat("я", 100))
	output := buf.String()

	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
