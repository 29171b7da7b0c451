package normalize

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/naveenspark/courtside/pkg/domain"
)

func quiet() *Normalizer {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestIntoBackendSentinels(t *testing.T) {
	n := quiet()
	p := n.IntoBackend(domain.PlayerForm{PlayerID: "1", Height: 0, Weight: 85, ProSince: 0})

	if p.Height != "-" {
		t.Errorf("Height = %q, want -", p.Height)
	}
	if p.Weight != "85" {
		t.Errorf("Weight = %q, want 85", p.Weight)
	}
	if p.ProSince != "-" {
		t.Errorf("ProSince = %q, want -", p.ProSince)
	}
	for name, v := range map[string]string{
		"NameFirst": p.NameFirst, "NameLast": p.NameLast, "Hand": p.Hand, "Country": p.Country,
		"WikidataID": p.WikidataID, "Instagram": p.Instagram, "Facebook": p.Facebook, "XTwitter": p.XTwitter,
	} {
		if v != "-" {
			t.Errorf("%s = %q, want -", name, v)
		}
	}
	if p.BirthDate != PlaceholderBirthDate {
		t.Errorf("BirthDate = %q, want %q", p.BirthDate, PlaceholderBirthDate)
	}
	if p.PlayerID != "1" || p.Fullname != "" {
		t.Errorf("pass-through fields changed: %+v", p)
	}
}

func TestIntoFormSentinels(t *testing.T) {
	f := quiet().IntoForm(domain.Player{Height: "-", Weight: "", ProSince: "unknown", Country: "unknown"})

	if f.Height != 0 || f.Weight != 0 || f.ProSince != 0 {
		t.Errorf("numbers = %d/%d/%d, want 0/0/0", f.Height, f.Weight, f.ProSince)
	}
	if f.Country != "-" {
		t.Errorf("Country = %q, want -", f.Country)
	}
	if f.BirthDate != "" {
		t.Errorf("BirthDate = %q, want empty", f.BirthDate)
	}
}

func TestIntoForm(t *testing.T) {
	f := quiet().IntoForm(domain.Player{
		PlayerID:  "207989",
		NameFirst: "Carlos",
		NameLast:  "Alcaraz",
		Country:   "esp",
		BirthDate: "05-05-2003",
		Height:    "183",
		Weight:    "74kg",
		ProSince:  "2018",
	})

	if f.Country != "ESP" {
		t.Errorf("Country = %q, want ESP", f.Country)
	}
	if f.BirthDate != "2003-05-05" {
		t.Errorf("BirthDate = %q, want 2003-05-05", f.BirthDate)
	}
	if f.Height != 183 || f.Weight != 74 || f.ProSince != 2018 {
		t.Errorf("numbers = %d/%d/%d", f.Height, f.Weight, f.ProSince)
	}
}

func TestIntoFormParseFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	n := New(slog.New(slog.NewTextHandler(&buf, nil)))

	f := n.IntoForm(domain.Player{Height: "tall", BirthDate: "2003/05/05"})
	if f.Height != 0 {
		t.Errorf("Height = %d, want 0", f.Height)
	}
	if f.BirthDate != "2003/05/05" {
		t.Errorf("BirthDate = %q, want unchanged", f.BirthDate)
	}
	out := buf.String()
	if !strings.Contains(out, "field=height") || !strings.Contains(out, "unexpected date layout") {
		t.Errorf("log = %q", out)
	}
}

func TestRoundTrip(t *testing.T) {
	n := quiet()
	forms := []domain.PlayerForm{
		{
			PlayerID: "104745", NameFirst: "Rafael", NameLast: "Nadal", Fullname: "Rafael Nadal",
			Hand: "L", BirthDate: "1986-06-03", Country: "ESP", Height: 185, Weight: 85, ProSince: 2001,
			WikidataID: "Q10132", Instagram: "rafaelnadal", Facebook: "Nadal", XTwitter: "RafaelNadal",
		},
		{
			PlayerID: "1", NameFirst: "A", NameLast: "B", Hand: "R", BirthDate: "2001-12-31",
			Country: "SUI", Height: 1, Weight: 2, ProSince: 3, WikidataID: "Q1", Instagram: "i", Facebook: "f", XTwitter: "x",
		},
	}

	for _, want := range forms {
		got := n.IntoForm(n.IntoBackend(want))
		if got != want {
			t.Errorf("round trip:\n got  %+v\n want %+v", got, want)
		}
	}
}

func TestRoundTripFromBackend(t *testing.T) {
	n := quiet()
	stored := domain.Player{
		PlayerID: "104925", NameFirst: "Novak", NameLast: "Djokovic", Hand: "R", BirthDate: "22-05-1987",
		Country: "SRB", Height: "188", Weight: "77", ProSince: "2003", WikidataID: "Q5812",
		Instagram: "djokernole", Facebook: "-", XTwitter: "DjokerNole",
	}
	if got := n.IntoBackend(n.IntoForm(stored)); got != stored {
		t.Errorf("round trip:\n got  %+v\n want %+v", got, stored)
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Grand Slam":         "grand-slam",
		"Masters  1000":      "masters-1000",
		"Roland\tGarros":     "roland-garros",
		"wimbledon":          "wimbledon",
		"Queen's Club Champ": "queen's-club-champ",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
