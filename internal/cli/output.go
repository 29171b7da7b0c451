package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w.
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// TokenStatus describes the stored credential.
type TokenStatus struct {
	LoggedIn  bool      `json:"logged_in"`
	Path      string    `json:"token_path"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	Expired   bool      `json:"expired"`
	Problem   string    `json:"problem,omitempty"`
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *domain.PlayerPage:
		o.printPlayers(v)
	case *domain.PlayerDetail:
		o.printPlayer(v)
	case []domain.PlayerName:
		o.printNames(v)
	case *domain.RankingPage:
		o.printRankings(v)
	case *domain.TournamentPage:
		o.printTournaments(v)
	case *domain.EditionPage:
		o.printWinners(v)
	case *domain.TitleHolderPage:
		o.printTitles(v)
	case *domain.Image:
		o.printImage(v)
	case *domain.NewsFeed:
		o.printNews(v)
	case []domain.NewsSource:
		o.printSources(v)
	case *client.Status:
		fmt.Fprintln(o.w, v.Message)
	case TokenStatus:
		o.printTokenStatus(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) table(header string, rows func(w io.Writer)) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func pageFooter(total, page, pages int, noun string) string {
	if pages <= 1 {
		return fmt.Sprintf("%d %s", total, noun)
	}
	return fmt.Sprintf("%d %s, page %d of %d", total, noun, page, pages)
}

func (o *Output) printPlayers(p *domain.PlayerPage) {
	o.table("ID\tNAME\tCOUNTRY\tBORN", func(w io.Writer) {
		for _, pl := range p.Players {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pl.PlayerID, pl.Fullname, pl.Country, pl.BirthDate)
		}
	})
	fmt.Fprintln(o.w, pageFooter(p.TotalPlayers, p.Page, p.Pages, "players"))
}

func (o *Output) printNames(names []domain.PlayerName) {
	if len(names) == 0 {
		fmt.Fprintln(o.w, "no players found")
		return
	}
	o.table("ID\tNAME", func(w io.Writer) {
		for _, n := range names {
			fmt.Fprintf(w, "%s\t%s\n", n.PlayerID, n.Fullname)
		}
	})
}

func (o *Output) printPlayer(p *domain.PlayerDetail) {
	fmt.Fprintf(o.w, "%s (%s)\n", p.Fullname, p.PlayerID)
	o.table("FIELD\tVALUE", func(w io.Writer) {
		for _, kv := range [][2]string{
			{"Country", p.Country},
			{"Born", p.BirthDate},
			{"Hand", p.Hand},
			{"Height", p.Height},
			{"Weight", p.Weight},
			{"Pro since", p.ProSince},
			{"Wikidata", p.WikidataID},
			{"Best ranking", p.BestRanking.String()},
			{"Titles", p.TotalTitles.String()},
			{"Grand Slams", p.GrandSlams.String()},
			{"Masters 1000", p.Masters1000.String()},
			{"Won/lost", p.WonLost.String()},
			{"Aces", p.Aces.String()},
			{"Double faults", p.DoubleFaults.String()},
			{"1st serve in", p.FirstIn.String()},
			{"1st serve won", p.PointsOnFirst.String()},
			{"2nd serve won", p.PointsOnSecond.String()},
			{"Service games won", p.GamesOnServe.String()},
			{"Break points faced", p.BreakPointsFaced.String()},
			{"Break points saved", p.BreakPointsSavedP.String()},
		} {
			fmt.Fprintf(w, "%s\t%s\n", kv[0], kv[1])
		}
	})
	if len(p.Titles) > 0 {
		fmt.Fprintln(o.w, "\nTitles:")
		for _, t := range p.Titles {
			fmt.Fprintf(o.w, "  %s  %s (%s, %s)\n", t.Year, t.TourneyName, t.Surface, t.TourneyLevel)
		}
	}
}

func (o *Output) printRankings(r *domain.RankingPage) {
	o.table("RANK\tNAME\tCOUNTRY\tPOINTS", func(w io.Writer) {
		for _, rk := range r.Rankings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rk.Rank, rk.Fullname, rk.Country, rk.Points)
		}
	})
	fmt.Fprintln(o.w, pageFooter(r.TotalRankings, r.Page, r.Pages, "ranked players"))
}

func (o *Output) printTournaments(t *domain.TournamentPage) {
	for _, name := range t.Tournaments {
		fmt.Fprintln(o.w, name)
	}
	fmt.Fprintln(o.w, pageFooter(t.TotalTournaments, t.Page, t.Pages, "tournaments"))
}

func (o *Output) printWinners(e *domain.EditionPage) {
	o.table("YEAR\tWINNER\tCOUNTRY\tID", func(w io.Writer) {
		for _, ed := range e.Winners {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ed.Year, ed.WinnerName, ed.WinnerCountry, ed.WinnerID)
		}
	})
	fmt.Fprintln(o.w, pageFooter(e.TotalWinners, e.Page, e.Pages, "editions"))
}

func (o *Output) printTitles(h *domain.TitleHolderPage) {
	o.table("TITLES\tNAME\tCOUNTRY\tID", func(w io.Writer) {
		for _, th := range h.Winners {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", th.Titles, th.Fullname, th.Country, th.PlayerID)
		}
	})
	fmt.Fprintln(o.w, pageFooter(h.TotalWinners, h.Page, h.Pages, "players"))
}

func (o *Output) printImage(img *domain.Image) {
	if img == nil {
		fmt.Fprintln(o.w, "no image found")
		return
	}
	fmt.Fprintln(o.w, img.URL)
	if a := img.Attribution; a != nil {
		o.table("FIELD\tVALUE", func(w io.Writer) {
			fmt.Fprintf(w, "Title\t%s\n", a.Title)
			fmt.Fprintf(w, "Author\t%s\n", a.Author)
			fmt.Fprintf(w, "License\t%s\n", a.License)
			fmt.Fprintf(w, "License URL\t%s\n", a.LicenseURL)
			fmt.Fprintf(w, "Source\t%s\n", a.FilePageURL)
		})
		if a.Description != "" {
			fmt.Fprintln(o.w, a.Description)
		}
	}
}

func (o *Output) printNews(f *domain.NewsFeed) {
	for _, a := range f.Articles {
		fmt.Fprintln(o.w, a.Title)
		meta := []string{a.Source.Name}
		if !a.PublishedAt.IsZero() {
			meta = append(meta, a.PublishedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(o.w, "  %s\n  %s\n", strings.Join(meta, " . "), a.URL)
	}
	fmt.Fprintf(o.w, "%d articles\n", len(f.Articles))
}

func (o *Output) printSources(sources []domain.NewsSource) {
	o.table("ID\tNAME\tCOUNTRY", func(w io.Writer) {
		for _, s := range sources {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.Country)
		}
	})
}

func (o *Output) printTokenStatus(s TokenStatus) {
	switch {
	case !s.LoggedIn && s.Problem != "":
		fmt.Fprintf(o.w, "Not logged in: %s\n", s.Problem)
	case !s.LoggedIn:
		fmt.Fprintln(o.w, "Not logged in")
	case s.Expired:
		fmt.Fprintf(o.w, "Token expired at %s\n", s.ExpiresAt.Format(time.RFC3339))
	default:
		fmt.Fprintf(o.w, "Logged in until %s\n", s.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Fprintf(o.w, "Token file: %s\n", s.Path)
}
