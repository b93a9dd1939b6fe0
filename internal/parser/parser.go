package parser

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/paramindex/internal/common/contextutils"
	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/config"
	"github.com/aleister1102/paramindex/internal/models"
	"github.com/rs/zerolog"
)

// Parser extracts URL records from a site-map HTML export.
//
// Two document shapes are accepted for the parameters of a URL item: a
// nested list inside the <li> that carries the URL, or a list that directly
// follows that <li> as its sibling. Structural surprises never produce an
// error; they degrade to fewer (or zero) records.
type Parser struct {
	cfg    config.ParserConfig
	logger zerolog.Logger
}

// NewParser creates a parser. Zero-valued config fields fall back to defaults.
func NewParser(cfg config.ParserConfig, logger zerolog.Logger) *Parser {
	defaults := config.NewDefaultParserConfig()
	if cfg.SectionHeading == "" {
		cfg.SectionHeading = defaults.SectionHeading
	}
	if len(cfg.URLPrefixes) == 0 {
		cfg.URLPrefixes = defaults.URLPrefixes
	}
	return &Parser{
		cfg:    cfg,
		logger: logger.With().Str("component", "Parser").Logger(),
	}
}

// ParseString parses text with the default configuration. Context deadlines
// and logging do not apply.
func ParseString(text string) []models.URLRecord {
	records, err := NewParser(config.NewDefaultParserConfig(), zerolog.Nop()).Parse(context.Background(), []byte(text))
	if err != nil {
		return []models.URLRecord{}
	}
	return records
}

// Parse decodes content and returns the URL records of the configured
// section, each with at least one parameter. The only errors are
// *errorwrapper.ParseError values for unreadable input or an expired context.
func (p *Parser) Parse(ctx context.Context, content []byte) ([]models.URLRecord, error) {
	if result := contextutils.CheckCancellation(ctx); result.Cancelled {
		return nil, errorwrapper.NewParseError("", "parsing cancelled", result.Error)
	}

	doc, err := goquery.NewDocumentFromReader(newUTF8Reader(content))
	if err != nil {
		return nil, errorwrapper.NewParseError("", "failed to parse HTML content", err)
	}

	list := p.locateList(doc)
	if list == nil {
		p.logger.Debug().Msg("No URL list found in document")
		return []models.URLRecord{}, nil
	}

	records, err := p.extractRecords(ctx, list)
	if err != nil {
		return nil, err
	}

	kept := filterEmpty(records)
	p.logger.Debug().
		Int("records_seen", len(records)).
		Int("records_kept", len(kept)).
		Msg("Extracted URL records")
	return kept, nil
}

// locateList finds the working list: the list following the section heading,
// or the first list of the body when no heading matches.
func (p *Parser) locateList(doc *goquery.Document) *goquery.Selection {
	heading := findHeading(doc, p.cfg.SectionHeading)
	if heading == nil {
		p.logger.Debug().Str("heading", p.cfg.SectionHeading).Msg("Section heading not found, using first list in body")
		return firstBodyList(doc)
	}

	if next := nextHeadingOfSameTag(doc, heading); next != nil {
		p.logger.Debug().Str("next_heading", normalizeSpace(ownText(next))).Msg("Ignoring content from next section onward")
		truncateFrom(next)
	}

	return listAfterHeading(heading)
}

// extractRecords walks the direct children of list in document order.
func (p *Parser) extractRecords(ctx context.Context, list *goquery.Selection) ([]models.URLRecord, error) {
	records := []models.URLRecord{}
	current := -1

	var ctxErr error
	list.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
		if result := contextutils.CheckCancellationWithLog(ctx, p.logger, "extract records"); result.Cancelled {
			ctxErr = result.Error
			return false
		}

		switch goquery.NodeName(child) {
		case "li":
			text := ownText(child.Get(0))
			if !p.isURL(text) {
				current = -1
				return true
			}
			records = append(records, models.URLRecord{URL: text, Parameters: []models.Parameter{}})
			current = len(records) - 1
			records[current].Parameters = appendParameters(records[current].Parameters, child)
		case "ul", "ol":
			if current >= 0 {
				records[current].Parameters = appendParameters(records[current].Parameters, child)
			}
		}
		return true
	})

	if ctxErr != nil {
		return nil, errorwrapper.NewParseError("", "parsing cancelled", ctxErr)
	}
	return records, nil
}

func (p *Parser) isURL(text string) bool {
	for _, prefix := range p.cfg.URLPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

// appendParameters adds one parameter per non-blank <li> found under container.
func appendParameters(params []models.Parameter, container *goquery.Selection) []models.Parameter {
	container.Find("li").Each(func(_ int, item *goquery.Selection) {
		line := strings.TrimSpace(item.Text())
		if line == "" {
			return
		}
		params = append(params, splitParameterLine(line))
	})
	return params
}

func filterEmpty(records []models.URLRecord) []models.URLRecord {
	kept := make([]models.URLRecord, 0, len(records))
	for _, r := range records {
		if len(r.Parameters) > 0 {
			kept = append(kept, r)
		}
	}
	return kept
}
