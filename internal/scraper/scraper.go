package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/pictorialkey/internal/card"
	"github.com/arcanaland/pictorialkey/internal/config"
	"github.com/arcanaland/pictorialkey/internal/fetcher"
	"github.com/arcanaland/pictorialkey/internal/parser"
)

// Result holds everything gathered by a scrape
type Result struct {
	Cards     []card.Card
	MajorText []card.MajorText
	MinorText []card.MinorText
	Skipped   []string // Short codes of cards that could not be scraped
}

// Scraper fetches the source pages and parses them into cards
type Scraper struct {
	fetcher fetcher.Fetcher
	config  *config.Config
	logger  *log.Logger
}

// New creates a Scraper
func New(f fetcher.Fetcher, cfg *config.Config, logger *log.Logger) *Scraper {
	return &Scraper{
		fetcher: f,
		config:  cfg,
		logger:  logger,
	}
}

// Run scrapes the major arcana, then the minor arcana. Only a failure to
// fetch or read the majors page aborts the run.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		Cards:     []card.Card{},
		MajorText: []card.MajorText{},
		MinorText: []card.MinorText{},
	}

	if err := s.scrapeMajors(ctx, result); err != nil {
		return nil, err
	}
	s.scrapeMinors(ctx, result)

	return result, nil
}

func (s *Scraper) scrapeMajors(ctx context.Context, result *Result) error {
	url := s.config.MajorsURL
	s.logger.Debug("fetching majors page", "url", url)

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("error fetching majors page: %w", err)
	}

	paragraphs, err := parser.Paragraphs(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error reading majors page: %w", err)
	}

	for _, text := range paragraphs {
		c, entry, err := parser.ParseMajor(text)
		if errors.Is(err, parser.ErrNoMatch) {
			continue
		}
		if err != nil {
			var markerErr *parser.MarkerError
			if !errors.As(err, &markerErr) {
				return fmt.Errorf("error parsing majors page: %w", err)
			}
			s.logger.Warn("skipping major card", "name_short", markerErr.NameShort, "err", err)
			result.Skipped = append(result.Skipped, markerErr.NameShort)
			continue
		}

		result.MajorText = append(result.MajorText, *entry)
		result.Cards = append(result.Cards, *c)
		s.logger.Info("added major card", "name", c.Name)
	}

	return nil
}

func (s *Scraper) scrapeMinors(ctx context.Context, result *Result) {
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			if ctx.Err() != nil {
				return
			}

			shortCode := card.MinorShortCode(rank, suit)
			c, entry, err := s.scrapeMinor(ctx, suit, rank)
			if err != nil {
				s.logger.Warn("skipping minor card", "name_short", shortCode, "err", err)
				result.Skipped = append(result.Skipped, shortCode)
				continue
			}

			result.MinorText = append(result.MinorText, *entry)
			result.Cards = append(result.Cards, *c)
			s.logger.Info("added minor card", "name", c.Name)
		}
	}
}

func (s *Scraper) scrapeMinor(ctx context.Context, suit card.Suit, rank card.Rank) (*card.Card, *card.MinorText, error) {
	url := s.config.MinorURL(suit.Code, rank.Code)
	s.logger.Debug("fetching minor page", "url", url)

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	text, err := parser.MinorParagraph(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", url, err)
	}

	return parser.ParseMinor(text, suit, rank)
}
