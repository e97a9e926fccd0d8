package rendering

import (
	"github.com/jonathan/consent-generator/internal/dates"
	"github.com/jonathan/consent-generator/internal/docx"
	"github.com/jonathan/consent-generator/internal/types"
)

// Perspective is who speaks in the consent text
type Perspective int

const (
	// PerspectiveRepresentative is a legal representative consenting for a minor
	PerspectiveRepresentative Perspective = iota
	// PerspectiveSelf is a participant consenting for themselves
	PerspectiveSelf
)

// Voice carries everything that differs between the two consent documents
// apart from the fixed phrasing tied to the perspective.
type Voice struct {
	Perspective    Perspective
	SubjectName    string
	SubjectDate    string // dd.mm.yyyy or ""
	SubjectPhone   string
	Representative string // only used by PerspectiveRepresentative
	Signatory      string
}

// VoiceFor derives the voice of the document for a participant rendered in the given variant
func VoiceFor(p types.Participant, variant types.Variant) Voice {
	v := Voice{
		SubjectName:  FlattenField(p.FullName),
		SubjectDate:  dates.FormatBirthDate(p.BirthDate),
		SubjectPhone: FlattenField(p.TutorPhone),
	}
	if variant == types.VariantEscort {
		v.Perspective = PerspectiveSelf
		v.Signatory = v.SubjectName
		return v
	}
	v.Perspective = PerspectiveRepresentative
	v.Representative = FlattenField(p.TutorName)
	v.Signatory = v.Representative
	return v
}

// phrasing is the fixed wording attached to a perspective
type phrasing struct {
	titleStyle      docx.Style
	subtitle        string
	data            string // qualified data reference, e.g. "моих персональных данных"
	bareData        string // data reference where the representative text leaves it unqualified
	extraCategories string
	intent          string
}

var phrasings = map[Perspective]phrasing{
	PerspectiveRepresentative: {
		titleStyle:      docx.StyleNormal,
		subtitle:        "РОДИТЕЛЯ (ЗАКОННОГО ПРЕДСТАВИТЕЛЯ) НА ОБРАБОТКУ ПЕРСОНАЛЬНЫХ ДАННЫХ НЕСОВЕРШЕННОЛЕТНЕГО",
		data:            "персональных данных несовершеннолетнего",
		bareData:        "персональных данных",
		extraCategories: ", класс",
		intent:          " и в интересах несовершеннолетнего",
	},
	PerspectiveSelf: {
		titleStyle: docx.StyleHeading2,
		subtitle:   "НА ОБРАБОТКУ ПЕРСОНАЛЬНЫХ ДАННЫХ",
		data:       "моих персональных данных",
		bareData:   "моих персональных данных",
	},
}

// introLines are the identification lines between the title block and the disclosure
func (v Voice) introLines() []string {
	if v.Perspective == PerspectiveSelf {
		return []string{
			"Я, " + v.SubjectName + ",",
			"дата рождения: " + v.SubjectDate + ",",
			"номер мобильного телефона: " + v.SubjectPhone + ",",
		}
	}
	return []string{
		"Я, " + v.Representative + ",",
		"являюсь законным представителем несовершеннолетнего " + v.SubjectName,
		"дата рождения: " + v.SubjectDate + ",",
		"номер мобильного телефона законного представителя: " + v.SubjectPhone + ",",
	}
}
