package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"
	"text/template"

	"github.com/jonathan/consent-generator/internal/docx"
	"github.com/jonathan/consent-generator/internal/types"
)

// Title is the first paragraph of every consent document
const Title = "СОГЛАСИЕ"

const (
	signatureGap  = 25
	signatureLine = 18
)

//go:embed templates/disclosure.tmpl
var templatesFS embed.FS

// disclosureData is passed to the disclosure template
type disclosureData struct {
	OrgName         string
	Data            string
	BareData        string
	ExtraCategories string
	Intent          string
}

// Engine renders consent documents using a parsed disclosure template.
// It is safe for concurrent use.
type Engine struct {
	disclosure *template.Template
	margins    docx.Margins
}

var defaultEngine = sync.OnceValues(func() (*Engine, error) {
	content, err := templatesFS.ReadFile("templates/disclosure.tmpl")
	if err != nil {
		return nil, &TemplateError{Message: "embedded disclosure template missing", Cause: err}
	}
	return NewEngine(string(content))
})

// DefaultEngine returns the engine built on the embedded legal text
func DefaultEngine() (*Engine, error) {
	return defaultEngine()
}

// NewEngine parses a disclosure template. The template sees the fields
// OrgName, Data, BareData, ExtraCategories and Intent.
func NewEngine(disclosure string) (*Engine, error) {
	tmpl, err := template.New("disclosure").Option("missingkey=error").Parse(strings.TrimSpace(disclosure))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return &Engine{disclosure: tmpl, margins: docx.UniformMargins(docx.HalfInch)}, nil
}

// LoadEngine reads a disclosure template from disk
func LoadEngine(templatePath string) (*Engine, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return NewEngine(string(content))
}

// Render builds the consent document for one participant with the default engine
func Render(p types.Participant, orgName, consentDate string, variant types.Variant) (*docx.Document, error) {
	engine, err := DefaultEngine()
	if err != nil {
		return nil, err
	}
	return engine.Render(p, orgName, consentDate, variant)
}

// Render builds the consent document for one participant. consentDate must
// already be formatted; missing optional fields render as empty strings.
func (e *Engine) Render(p types.Participant, orgName, consentDate string, variant types.Variant) (*docx.Document, error) {
	return e.RenderVoice(VoiceFor(p, variant), orgName, consentDate)
}

// RenderVoice builds a consent document from an explicit voice record
func (e *Engine) RenderVoice(v Voice, orgName, consentDate string) (*docx.Document, error) {
	ph, ok := phrasings[v.Perspective]
	if !ok {
		return nil, &RenderError{Message: fmt.Sprintf("unknown perspective %d", v.Perspective)}
	}

	body, err := e.disclosureText(ph, FlattenField(orgName))
	if err != nil {
		return nil, err
	}

	doc := docx.New(e.margins).
		AddHeading(Title, ph.titleStyle).
		AddParagraph(ph.subtitle).
		AddBlank()
	for _, line := range v.introLines() {
		doc.AddParagraph(line)
	}
	doc.AddBlank().
		AddParagraph(body).
		AddBlank().
		AddParagraph(SignatureLine(FlattenField(consentDate), v.Signatory))
	return doc, nil
}

func (e *Engine) disclosureText(ph phrasing, orgName string) (string, error) {
	var sb strings.Builder
	err := e.disclosure.Execute(&sb, disclosureData{
		OrgName:         orgName,
		Data:            ph.data,
		BareData:        ph.bareData,
		ExtraCategories: ph.extraCategories,
		Intent:          ph.intent,
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// SignatureLine formats the closing line: date, a gap, the signature rule and the signatory's name
func SignatureLine(consentDate, signatory string) string {
	return fmt.Sprintf("%s%s%s /%s/", consentDate, strings.Repeat(" ", signatureGap), strings.Repeat("_", signatureLine), signatory)
}
