package pipeline

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/consent-generator/internal/dates"
	"github.com/jonathan/consent-generator/internal/rendering"
	"github.com/jonathan/consent-generator/internal/roster"
	"github.com/jonathan/consent-generator/internal/types"
	"golang.org/x/sync/errgroup"
)

// ProgressEvent reports a document that finished rendering
type ProgressEvent struct {
	Index    int    `json:"index"`
	FullName string `json:"full_name"`
	FileName string `json:"file_name"`
	Variant  string `json:"variant"`
}

// ProgressCallback is called once per rendered document. Calls are serialized.
type ProgressCallback func(event ProgressEvent)

// Options configures a Packager
type Options struct {
	ArchivePrefix string
	EscortRole    string            // role label rendered in the escort variant; empty means the default label
	Workers       int               // concurrent renders; 0 means GOMAXPROCS
	Engine        *rendering.Engine // nil means the embedded legal text
	OnProgress    ProgressCallback
}

// Packager turns a session into a consent archive
type Packager struct {
	opts     Options
	roles    roster.Classifier
	validate *validator.Validate
	mu       sync.Mutex
}

// NewPackager creates a packager with the given options
func NewPackager(opts Options) *Packager {
	if opts.ArchivePrefix == "" {
		opts.ArchivePrefix = DefaultArchivePrefix
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Packager{
		opts:     opts,
		roles:    roster.NewClassifier(opts.EscortRole, nil),
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckPreconditions reports whether the session can be generated:
// a non-blank organization name, a consent date and at least one participant.
func (p *Packager) CheckPreconditions(session types.Session) error {
	session.OrgName = strings.TrimSpace(session.OrgName)
	err := p.validate.Struct(session)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &GenerateError{Message: "failed to validate session", Cause: err}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &PreconditionError{Fields: fields}
}

// Generate renders one document per participant and packs them into an archive
// named after now. The document variant follows each participant's role.
// Renders run concurrently; the archive is assembled only after
// every render has finished. Entries follow participant order.
func (p *Packager) Generate(ctx context.Context, session types.Session, now time.Time) (*Archive, error) {
	if err := p.CheckPreconditions(session); err != nil {
		return nil, err
	}

	engine := p.opts.Engine
	if engine == nil {
		var err error
		engine, err = rendering.DefaultEngine()
		if err != nil {
			return nil, &GenerateError{Message: "failed to load consent template", Cause: err}
		}
	}

	orgName := strings.TrimSpace(session.OrgName)
	consentDate := dates.FormatConsentDate(session.ConsentDate)

	entries := make([]entry, len(session.Participants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i, participant := range session.Participants {
		i, participant := i, participant
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			variant := p.variantFor(participant)
			doc, err := engine.Render(participant, orgName, consentDate, variant)
			if err != nil {
				return &GenerateError{Message: "failed to render consent for " + participant.FullName, Cause: err}
			}
			data, err := doc.Bytes()
			if err != nil {
				return &GenerateError{Message: "failed to serialize consent for " + participant.FullName, Cause: err}
			}
			entries[i] = entry{name: DocumentName(participant.FullName), data: data}
			p.emit(ProgressEvent{
				Index:    i,
				FullName: participant.FullName,
				FileName: entries[i].name,
				Variant:  variant.String(),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	data, files, err := packEntries(entries, now)
	if err != nil {
		return nil, &GenerateError{Message: "failed to build archive", Cause: err}
	}

	return &Archive{
		Name:  ArchiveName(p.opts.ArchivePrefix, now),
		Data:  data,
		Files: files,
	}, nil
}

// variantFor picks the document variant from the participant's role label
func (p *Packager) variantFor(participant types.Participant) types.Variant {
	if p.roles.IsEscort(participant.Role) {
		return types.VariantEscort
	}
	return types.VariantChild
}

func (p *Packager) emit(event ProgressEvent) {
	if p.opts.OnProgress == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.OnProgress(event)
}
