package directory

import (
	"log/slog"
	"strings"
)

// Config controls the parsing heuristics.
type Config struct {
	// ServiceHeaderMaxLen is the length ceiling (in bytes) for a line to be
	// accepted as a service header. Longer lines naming a service are
	// treated as body prose. The threshold is a heuristic carried over from
	// the directory's formatting, not a structural rule.
	ServiceHeaderMaxLen int

	// WindowLines is how many lines (current plus following) feed the
	// person-record builder for each body line.
	WindowLines int
}

// DefaultConfig returns the thresholds the directory was tuned against.
func DefaultConfig() Config {
	return Config{
		ServiceHeaderMaxLen: 100,
		WindowLines:         3,
	}
}

// Parser is the stateful extraction engine. It consumes page texts in
// document order, threading one Context through all of them, and
// accumulates person records and relationship edges.
//
// Parsing is strictly sequential: pages must arrive in ascending order or
// records get stamped with the wrong organizational context. A Parser is
// not safe for concurrent use.
type Parser struct {
	cfg Config
	log *slog.Logger

	ctx     Context
	records []PersonRecord
	rels    []Relationship
}

// NewParser returns a Parser with an empty hierarchy context.
func NewParser(cfg Config, log *slog.Logger) *Parser {
	if cfg.ServiceHeaderMaxLen <= 0 {
		cfg.ServiceHeaderMaxLen = 100
	}
	if cfg.WindowLines <= 0 {
		cfg.WindowLines = 3
	}
	if log == nil {
		log = slog.Default()
	}
	return &Parser{cfg: cfg, log: log}
}

// ParsePage parses one page of text. Header lines advance the hierarchy
// context; body lines are scanned for person entries through a sliding
// window of WindowLines lines. Empty or whitespace-only pages are a no-op.
func (p *Parser) ParsePage(page int, text string) {
	lines := strings.Split(text, "\n")

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if h, ok := ClassifyHeader(line, p.cfg.ServiceHeaderMaxLen); ok {
			p.applyHeader(h)
			continue
		}

		end := i + p.cfg.WindowLines
		if end > len(lines) {
			end = len(lines)
		}
		window := strings.Join(lines[i:end], "\n")

		rec, ok := buildEntry(window, page, &p.ctx)
		if !ok {
			continue
		}
		// Overlapping windows re-detect the same person on consecutive
		// lines; drop a record whose name matches the one just stored.
		// Global deduplication is a separate, later pass.
		if n := len(p.records); n > 0 && p.records[n-1].Name == rec.Name {
			continue
		}
		p.records = append(p.records, rec)
	}
}

// ParseCorpus feeds pages through ParsePage in the order given, preserving
// hierarchy context across page boundaries.
func (p *Parser) ParseCorpus(pages []Page) {
	for _, pg := range pages {
		p.ParsePage(pg.Number, pg.Text)
	}
	p.log.Debug("corpus parsed",
		"pages", len(pages),
		"records", len(p.records),
		"relationships", len(p.rels),
	)
}

func (p *Parser) applyHeader(h Header) {
	switch h.Type {
	case HeaderService:
		p.ctx.EnterService(h.Name)
	case HeaderPAE:
		// A PAE has no tracked parent; no edge is emitted.
		p.ctx.EnterPAE(h.Label())
	case HeaderCPE, HeaderPEO:
		label := h.Label()
		if p.ctx.PAE != "" {
			p.rels = append(p.rels, Relationship{
				ChildEntity:      label,
				ChildType:        string(h.Type),
				ParentEntity:     p.ctx.PAE,
				ParentType:       string(HeaderPAE),
				RelationshipType: RelReportsTo,
			})
		}
		p.ctx.EnterCPE(label)
	case HeaderPM:
		label := h.Label()
		if p.ctx.CPE != "" {
			p.rels = append(p.rels, Relationship{
				ChildEntity:      label,
				ChildType:        string(HeaderPM),
				ParentEntity:     p.ctx.CPE,
				ParentType:       string(HeaderCPE),
				RelationshipType: RelPartOf,
			})
		}
		p.ctx.EnterOffice(label)
	}
}

// Records returns the accumulated person records in extraction order.
func (p *Parser) Records() []PersonRecord {
	return p.records
}

// Relationships returns the accumulated relationship edges in emission order.
func (p *Parser) Relationships() []Relationship {
	return p.rels
}

// Context returns a copy of the current hierarchy context.
func (p *Parser) Context() Context {
	return p.ctx
}
