package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
)

func badges(d presentation.Decoration) string {
	var b []string
	if d.Sticky {
		b = append(b, "featured")
	}
	if d.Highlighted {
		b = append(b, "highlight")
	}
	if d.AvailableNowBadge {
		if d.AvailabilityStale {
			b = append(b, "available(stale)")
		} else {
			b = append(b, "available")
		}
	}
	if d.RotationEnabled {
		b = append(b, fmt.Sprintf("%d images", d.ImageCount))
	}
	return strings.Join(b, ",")
}

func printCards(w io.Writer, cards []presentation.Card) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tCATEGORY\tBADGES\tIMAGE")
	for _, c := range cards {
		l := c.Listing
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", l.ID, l.Title, l.Location, l.Category, badges(c.Decoration), c.DisplayImageURL)
	}
	return tw.Flush()
}

func printOptions(w io.Writer, opts []models.UpgradeOption) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tNAME\tDAYS\tDESCRIPTION")
	for _, o := range opts {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", o.Kind, o.Name, o.DurationDays, o.Description)
	}
	return tw.Flush()
}

func printListings(w io.Writer, listings []models.Listing) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAVAILABLE NOW\tIMAGES")
	for _, l := range listings {
		avail := "no"
		if l.AvailableNow {
			avail = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", l.ID, l.Title, avail, len(l.Images))
	}
	return tw.Flush()
}

func printUpgrades(w io.Writer, ups []models.Upgrade) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tEXPIRES")
	for _, u := range ups {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Kind, u.ExpiresAt.Local().Format("Jan 2 2006 15:04"))
	}
	return tw.Flush()
}

func printPurchases(w io.Writer, ps []models.UpgradePurchase) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tLISTING\tTYPE\tDAYS")
	for _, p := range ps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.CreatedAt.Local().Format("Jan 2 2006"), p.ListingID, p.Kind, p.DurationDays)
	}
	return tw.Flush()
}
