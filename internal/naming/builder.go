package naming

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"shotname/internal/classify"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/sequence"
	"shotname/internal/services"
)

// Options configures a Builder.
type Options struct {
	Prefix          string
	DateFormat      sequence.DateFormat
	StartIndex      int
	PreservePostfix bool
	// Name is inserted between camera and counter, joined with "_".
	Name string
	Kind metadata.MediaKind
	// EasyMode drops sequence, record mode and mode fragments. Used when
	// the table lacks the advanced columns.
	EasyMode     bool
	RawExtension string
	// Digits is the image counter width; values below 1 mean 1.
	Digits int
	// Exists probes for a raw companion. Nil disables raw handling.
	Exists func(dir, name string) bool
	Logger *slog.Logger
}

// Builder turns rows into Records. It is not safe for concurrent use.
type Builder struct {
	opts    Options
	tracker *sequence.Tracker
	logger  *slog.Logger

	dayPrefix string
	lastName  string
	prevTime  time.Time
	emitted   map[string]int
	records   []Record
	widest    int
}

// NewBuilder returns a Builder for one run.
func NewBuilder(opts Options) *Builder {
	policy := sequence.PerShot
	if opts.EasyMode || opts.Kind == metadata.KindVideo {
		policy = sequence.PerRow
	}
	if opts.Digits < 1 {
		opts.Digits = 1
	}
	if opts.Name != "" && !strings.HasPrefix(opts.Name, "_") {
		opts.Name = "_" + opts.Name
	}
	return &Builder{
		opts:    opts,
		tracker: sequence.NewTracker(opts.StartIndex, opts.DateFormat.UsesDay(), policy),
		logger:  logging.NewComponentLogger(opts.Logger, "naming"),
		emitted: make(map[string]int),
	}
}

// Build decides the new name for the next row in capture order.
func (b *Builder) Build(row metadata.Row) Record {
	ts, err := row.CaptureTime()
	if err != nil {
		b.logger.Warn("unreadable capture time",
			logging.String(logging.FieldFile, row.Path()),
			logging.Error(services.Wrap(services.ErrUnrecognizedValue, "rename", "parse time", row.DateTimeOriginal, err)),
		)
	}

	kind := classify.SequenceNone
	if b.opts.Kind == metadata.KindImage && !b.opts.EasyMode {
		kind = classify.SequenceKindOf(row)
	}
	state := b.tracker.Advance(sequence.Step{Time: ts, Sequence: row.Sequence(), Kind: kind})
	if state.NewDay {
		b.dayPrefix = b.opts.Prefix + b.opts.DateFormat.Format(ts, state.Day) + classify.CameraAbbrev(row.Model) + b.opts.Name
	}
	if state.SequenceRestart {
		b.logger.Debug("sequence started",
			logging.String(logging.FieldFile, row.FileName),
			logging.String("kind", string(kind)),
			logging.Int("number", state.SequenceNumber),
		)
	}

	seqTag := ""
	fresh := ""
	if !b.opts.EasyMode {
		switch b.opts.Kind {
		case metadata.KindImage:
			if !strings.Contains(row.FileName, "HDR") {
				seqTag = classify.SequenceTag(state.SequenceIndex, row)
			}
		case metadata.KindVideo:
			fresh += classify.RecordModeTag(row)
		}
		mode, err := classify.ModePostfixChecked(row)
		if err != nil {
			b.logger.Warn("mode postfix skipped", logging.String(logging.FieldFile, row.Path()), logging.Error(err))
		}
		fresh += mode
	}
	postfix := fresh
	if b.opts.PreservePostfix {
		postfix = MergePostfix(fresh, ExtractPostfixAfter(row.FileName, b.dayPrefix))
	}

	counter := state.Counter
	base := b.dayPrefix + b.formatCounter(counter) + seqTag + postfix
	if base == b.lastName {
		base = b.dayPrefix + b.formatCounter(counter) + seqTag + "_K" + postfix
	}
	for {
		previous, taken := b.emitted[base]
		if !taken {
			break
		}
		b.logger.Warn("name already used, counting further up",
			logging.String(logging.FieldFile, row.Path()),
			logging.String("name", base),
			logging.Time("time", ts),
			logging.Time("previous_time", b.prevTime),
			logging.Error(services.Wrap(services.ErrNameCollision, "rename", "build name", fmt.Sprintf("row %d", previous), nil)),
		)
		counter = b.tracker.Bump()
		base = b.dayPrefix + b.formatCounter(counter) + seqTag + postfix
	}

	ext := row.Extension()
	record := Record{
		Index:     len(b.records),
		Directory: row.Directory,
		OldName:   row.FileName,
		NewBase:   base,
		Extension: ext,
		NewName:   base + ext,
		Timestamp: ts,

		Sequence:       kind,
		SequenceNumber: state.SequenceNumber,
	}
	b.attachRaw(&record)

	b.emitted[base] = record.Index
	b.lastName = base
	b.widest = max(b.widest, counter)
	b.prevTime = ts
	b.records = append(b.records, record)
	return record
}

// Records returns the records built so far, in row order.
func (b *Builder) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

func (b *Builder) formatCounter(counter int) string {
	if b.opts.Kind == metadata.KindVideo {
		return fmt.Sprintf("_M%02d", counter)
	}
	return fmt.Sprintf("_%0*d", b.opts.Digits, counter)
}

func (b *Builder) attachRaw(record *Record) {
	rawExt := b.opts.RawExtension
	if rawExt == "" || b.opts.Exists == nil || strings.EqualFold(rawExt, record.Extension) {
		return
	}
	rawOld := strings.TrimSuffix(record.OldName, record.Extension) + rawExt
	if !b.opts.Exists(record.Directory, rawOld) {
		return
	}
	record.RawOld = rawOld
	record.RawNew = record.NewBase + rawExt
}

// BuildAll names every row of table in order and returns the records with
// the image counter width used. Collision bumps can push a counter past the
// width opts.Digits allows; the table is then named again with the wider
// width so every counter of the run has the same length.
func BuildAll(table *metadata.Table, opts Options) ([]Record, int) {
	b := buildTable(table, opts)
	if width := len(strconv.Itoa(b.widest)); opts.Kind == metadata.KindImage && width > b.opts.Digits {
		b.logger.Info("collisions outgrew the counter width, naming again",
			logging.Int("digits", b.opts.Digits),
			logging.Int("widened_to", width),
		)
		opts.Digits = width
		b = buildTable(table, opts)
	}
	return b.Records(), b.opts.Digits
}

func buildTable(table *metadata.Table, opts Options) *Builder {
	b := NewBuilder(opts)
	for i := 0; i < table.Len(); i++ {
		b.Build(table.Row(i))
	}
	return b
}
