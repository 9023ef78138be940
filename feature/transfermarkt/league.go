package transfermarkt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"championship-pipeline/core/table"

	"github.com/PuerkitoBio/goquery"
)

// League table column names, in output order. Goals stay in the site's
// "95:30" scored:conceded form; the transform stage splits them.
const (
	ColRank   = "#"
	ColClub   = "club"
	ColPlayed = "played"
	ColWins   = "w"
	ColDraws  = "d"
	ColLosses = "l"
	ColGoals  = "goals"
	ColGD     = "gd"
	ColPoints = "pts"
)

// ParseLeagueTable extracts the league standings from the tabelle page.
//
// The grid lives in div#yw1. Data rows carry at least ten cells: rank, crest,
// club, played, W, D, L, goals, goal difference, points. Rows whose first cell
// does not start with a number (separators, relegation markers) are skipped.
func ParseLeagueTable(r io.Reader) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	holder := doc.Find("div#yw1")
	if holder.Length() == 0 {
		return nil, errors.New("no div#yw1 league table holder in document")
	}
	tbl := holder.Find("table").First()
	if tbl.Length() == 0 {
		return nil, errors.New("div#yw1 has no <table>")
	}

	out := table.New(ColRank, ColClub, ColPlayed, ColWins, ColDraws, ColLosses, ColGoals, ColGD, ColPoints)

	tbl.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() < 10 {
			return
		}

		rankFields := strings.Fields(tds.Eq(0).Text())
		if len(rankFields) == 0 || !isDigits(rankFields[0]) {
			return
		}

		club := cellText(tds.Eq(2).Find("a").First())
		if club == "" {
			club = cellText(tds.Eq(2))
		}

		out.AppendRecord(map[string]string{
			ColRank:   rankFields[0],
			ColClub:   club,
			ColPlayed: cellText(tds.Eq(3)),
			ColWins:   cellText(tds.Eq(4)),
			ColDraws:  cellText(tds.Eq(5)),
			ColLosses: cellText(tds.Eq(6)),
			ColGoals:  cellText(tds.Eq(7)),
			ColGD:     cellText(tds.Eq(8)),
			ColPoints: cellText(tds.Eq(9)),
		})
	})

	if out.Len() == 0 {
		return nil, errors.New("no data rows in league table")
	}
	return out, nil
}

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
