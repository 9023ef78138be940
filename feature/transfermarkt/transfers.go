package transfermarkt

import (
	"fmt"
	"io"
	"strings"

	"championship-pipeline/core/table"

	"github.com/PuerkitoBio/goquery"
)

// Transfer table column names as the site presents them; the transform stage
// maps them onto the semantic schema.
const (
	ColTransferClub = "Club"
	ColIn           = "In"
	ColOut          = "Out"
	ColAge          = "Age"
	ColNationality  = "Nationality"
	ColPosition     = "Position"
	ColMarketValue  = "Market value"
	ColLeft         = "Left"
	ColJoined       = "Joined"
	ColFee          = "Fee"
)

// ParseTransfers extracts the per-club In and Out transfer tables from the
// transfers page.
//
// The page repeats, per club, an <h2> header followed by two
// div.responsive-table blocks. Walking headers and blocks in document order
// pins each block to the club header most recently seen before it; the
// block's own first header cell says whether it is the In or the Out side.
func ParseTransfers(r io.Reader) (in, out *table.Table, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parse html: %w", err)
	}

	in = table.New(ColTransferClub, ColIn, ColAge, ColNationality, ColPosition, ColMarketValue, ColLeft, ColFee)
	out = table.New(ColTransferClub, ColOut, ColAge, ColNationality, ColPosition, ColMarketValue, ColJoined, ColFee)

	club := ""
	doc.Find("h2, div.responsive-table").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "h2" {
			if text := cellText(sel); text != "" {
				club = text
			}
			return
		}
		if club == "" {
			return
		}

		tbl := sel.Find("table").First()
		if tbl.Length() == 0 {
			return
		}
		header := strings.ToLower(cellText(tbl.Find("thead tr").Last().Find("th, td").First()))

		var dest *table.Table
		var playerCol, otherClubCol string
		switch {
		case strings.HasPrefix(header, "in"):
			dest, playerCol, otherClubCol = in, ColIn, ColLeft
		case strings.HasPrefix(header, "out"):
			dest, playerCol, otherClubCol = out, ColOut, ColJoined
		default:
			return
		}

		body := tbl.Find("tbody")
		if body.Length() == 0 {
			body = tbl
		}
		body.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			if rec, ok := parseTransferRow(tr, club, playerCol, otherClubCol); ok {
				dest.AppendRecord(rec)
			}
		})
	})

	return in, out, nil
}

// parseTransferRow reads one transfer row, dispatching cells on the CSS
// classes Transfermarkt uses for each column.
func parseTransferRow(tr *goquery.Selection, club, playerCol, otherClubCol string) (map[string]string, bool) {
	tds := tr.Find("td")
	if tds.Length() == 0 {
		return nil, false
	}

	playerCell := tds.Eq(0)
	player := cellText(playerCell.Find("a").First())
	if player == "" {
		player = cellText(playerCell)
	}
	if player == "" || strings.Contains(strings.ToLower(player), "average age") {
		return nil, false
	}

	rec := map[string]string{
		ColTransferClub: club,
		playerCol:       player,
	}

	tds.Each(func(_ int, td *goquery.Selection) {
		switch {
		case td.HasClass("alter-transfer-cell"):
			rec[ColAge] = cellText(td)
		case td.HasClass("nat-transfer-cell"):
			rec[ColNationality] = nationality(td)
		case td.HasClass("kurzpos-transfer-cell"):
			rec[ColPosition] = cellText(td)
		case td.HasClass("pos-transfer-cell"):
			if rec[ColPosition] == "" {
				rec[ColPosition] = cellText(td)
			}
		case td.HasClass("mw-transfer-cell"):
			rec[ColMarketValue] = cellText(td)
		case td.HasClass("verein-flagge-transfer-cell"):
			other := cellText(td.Find("a").First())
			if other == "" {
				other = cellText(td)
			}
			rec[otherClubCol] = other
		case td.HasClass("rechts") && !td.HasClass("no-border"):
			// Fee column: right-aligned, but not the market value cell
			// (handled above) and not a crest spacer.
			rec[ColFee] = cellText(td)
		}
	})

	return rec, true
}

// nationality reads the country from the flag image's title, falling back to
// its alt text.
func nationality(td *goquery.Selection) string {
	img := td.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	if title, ok := img.Attr("title"); ok && title != "" {
		return title
	}
	alt, _ := img.Attr("alt")
	return alt
}
