package scraper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNoTable is returned when a page has no usable stats table.
var ErrNoTable = errors.New("no tables found on the page")

// Row is one player line of a category table.
type Row struct {
	Team   string
	Player string
	Stats  map[string]any
}

// ExtractTable parses the largest table on the page. Headers come from the
// last header row; repeated header rows and rows whose cell count differs
// from the header count are skipped, as are rows without player and squad.
func ExtractTable(doc *goquery.Document) ([]Row, error) {
	table := largestTable(doc)
	if table == nil {
		return nil, ErrNoTable
	}

	var headers []string
	table.Find("thead tr").Last().Find("th, td").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, strippedText(s))
	})
	if len(headers) == 0 {
		return nil, ErrNoTable
	}

	var rows []Row
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") {
			return
		}
		cells := tr.Find("th, td")
		if cells.Length() != len(headers) {
			return
		}

		stats := make(map[string]any, len(headers)+2)
		var team, player string
		cells.Each(func(i int, cell *goquery.Selection) {
			header := headers[i]
			text := strippedText(cell)
			switch header {
			case "Player":
				player = text
				if href, ok := cell.Find("a").First().Attr("href"); ok {
					stats["Player_URL"] = href
				}
			case "Squad":
				team = text
				if href, ok := cell.Find("a").First().Attr("href"); ok {
					stats["Squad_URL"] = href
				}
			}
			stats[header] = CleanValue(text)
		})
		if team != "" && player != "" {
			rows = append(rows, Row{Team: team, Player: player, Stats: stats})
		}
	})
	return rows, nil
}

func largestTable(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestRows := -1
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		if n := t.Find("tr").Length(); n > bestRows {
			best, bestRows = t, n
		}
	})
	return best
}

// strippedText concatenates the selection's text nodes, each trimmed, so
// "<span>eng</span> ENG" reads "engENG".
func strippedText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return b.String()
}

// CleanValue converts a cell's text: empty → nil, "12.5%" → 12.5,
// "12" → 12, "0.45" → 0.45, anything else stays a string.
func CleanValue(text string) any {
	v := strings.TrimSpace(text)
	if v == "" {
		return nil
	}
	if pct, ok := strings.CutSuffix(v, "%"); ok {
		if f, err := strconv.ParseFloat(pct, 64); err == nil {
			return f
		}
		return v
	}
	if isDigits(v) {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
