package fbref

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"championship-pipeline/core/table"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const baseURL = "https://fbref.com"

// rows holds parsed records plus the data-stat keys in first-seen order, so
// columns the rename maps do not know about still come out in a stable order.
type rows struct {
	records []map[string]string
	keys    []string
}

func (r *rows) add(rec map[string]string, order []string) {
	for _, k := range order {
		if !r.seen(k) {
			r.keys = append(r.keys, k)
		}
	}
	r.records = append(r.records, rec)
}

func (r *rows) seen(key string) bool {
	for _, k := range r.keys {
		if k == key {
			return true
		}
	}
	return false
}

// findPlayerTable locates the player standard stats table, which lives inside
// div#all_stats_standard as a commented-out <table>.
func findPlayerTable(doc *goquery.Document) (*goquery.Selection, error) {
	container := doc.Find("div#all_stats_standard")
	if container.Length() == 0 {
		return nil, errors.New("no div#all_stats_standard in document")
	}

	raw, ok := commentedTable(container)
	if !ok {
		return nil, errors.New("no commented <table> inside div#all_stats_standard")
	}

	inner, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse commented player table: %w", err)
	}
	tbl := inner.Find("table")
	if tbl.Length() == 0 {
		return nil, errors.New("commented player block has no <table>")
	}
	return tbl.First(), nil
}

// commentedTable walks the selection's nodes for an HTML comment carrying a
// <table> and returns its contents.
func commentedTable(sel *goquery.Selection) (string, bool) {
	var found string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.CommentNode && strings.Contains(n.Data, "<table") {
			found = n.Data
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range sel.Nodes {
		if walk(n) {
			return found, true
		}
	}
	return "", false
}

// findSquadTable locates the squad standard stats table, falling back to a
// table-id match when the wrapper div is renamed.
func findSquadTable(doc *goquery.Document) (*goquery.Selection, error) {
	container := doc.Find("div#div_stats_squads_standard_for")
	if container.Length() > 0 {
		tbl := container.Find("table")
		if tbl.Length() == 0 {
			return nil, errors.New("div#div_stats_squads_standard_for has no <table>")
		}
		return tbl.First(), nil
	}

	var fallback *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		if id, ok := tbl.Attr("id"); ok && strings.Contains(id, "stats_squads_standard_for") {
			fallback = tbl
			return false
		}
		return true
	})
	if fallback == nil {
		return nil, errors.New("no squad standard stats table in document")
	}
	return fallback, nil
}

// parseStatRows reads every tbody row of a stats table into data-stat keyed
// records. For the matches cell the link target is kept instead of the link
// text, absolutized against the site root.
func parseStatRows(tbl *goquery.Selection, matchesAsURL bool) *rows {
	out := &rows{}
	tbl.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		rec := make(map[string]string)
		var order []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			stat, ok := cell.Attr("data-stat")
			if !ok || stat == "" {
				return
			}
			if matchesAsURL && stat == "matches" {
				href, _ := cell.Find("a").First().Attr("href")
				if strings.HasPrefix(href, "/") {
					href = baseURL + href
				}
				rec[stat] = href
			} else {
				rec[stat] = cellText(cell)
			}
			order = append(order, stat)
		})
		if len(rec) > 0 {
			out.add(rec, order)
		}
	})
	return out
}

// cellText flattens a cell to single-space separated text, the way nested
// spans (nation flags, player links) need it.
func cellText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParsePlayerStats extracts and tidies the player standard stats table from a
// full FBRef page. Header repeats and totals rows (no player name or
// non-numeric rank) are dropped.
func ParsePlayerStats(r io.Reader) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	tbl, err := findPlayerTable(doc)
	if err != nil {
		return nil, err
	}

	parsed := parseStatRows(tbl, true)
	kept := &rows{keys: parsed.keys}
	for _, rec := range parsed.records {
		if rec["player"] == "" || !isDigits(rec["ranker"]) {
			continue
		}
		kept.records = append(kept.records, rec)
	}
	if len(kept.records) == 0 {
		return nil, errors.New("no player rows in standard stats table")
	}
	return tidyPlayers(kept)
}

// ParseSquadStats extracts and tidies the squad standard stats table from a
// full FBRef page.
func ParseSquadStats(r io.Reader) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	tbl, err := findSquadTable(doc)
	if err != nil {
		return nil, err
	}

	parsed := parseStatRows(tbl, false)
	kept := &rows{keys: parsed.keys}
	for _, rec := range parsed.records {
		if rec["team"] == "" {
			continue
		}
		kept.records = append(kept.records, rec)
	}
	if len(kept.records) == 0 {
		return nil, errors.New("no squad rows in standard stats table")
	}
	return tidySquads(kept)
}
