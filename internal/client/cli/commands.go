package cli

import (
	"fmt"

	"github.com/dmitrijs2005/unity/internal/api"
	"github.com/dmitrijs2005/unity/internal/client/tui"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) browseCommand() *cobra.Command {
	var (
		req   api.BrowseRequest
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !plain {
				return runTUI(cmd.Context(), a.client, tui.Options{
					Location:        req.Location,
					Category:        req.Category,
					AvailableOnly:   req.AvailableOnly,
					Search:          req.Search,
					RequestTimeout:  a.config.RequestTimeout,
					RefreshInterval: a.config.RefreshInterval,
				})
			}

			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			page, err := a.client.Browse(ctx, &req)
			if err != nil {
				return err
			}
			return printCards(cmd.OutOrStdout(), page.Cards)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Location, "location", "", "only listings in this location")
	f.StringVar(&req.Category, "category", "", "only listings in this category")
	f.BoolVar(&req.AvailableOnly, "available", false, "only listings flagged available now")
	f.StringVarP(&req.Search, "search", "s", "", "case-insensitive search in title and description")
	f.BoolVar(&plain, "plain", false, "print once instead of opening the interactive grid")
	return cmd
}

func (a *App) optionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List purchasable upgrades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			opts, err := a.client.UpgradeOptions(ctx)
			if err != nil {
				return err
			}
			return printOptions(cmd.OutOrStdout(), opts)
		},
	}
}

func (a *App) mineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your active listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			listings, err := a.client.MyListings(ctx)
			if err != nil {
				return err
			}
			return printListings(cmd.OutOrStdout(), listings)
		},
	}
}

func (a *App) createCommand() *cobra.Command {
	var req api.CreateListingRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Title == "" {
				title, err := GetSimpleText(a.reader, "Title", cmd.OutOrStdout())
				if err != nil {
					return err
				}
				req.Title = title
			}

			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			l, err := a.client.CreateListing(ctx, &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created listing %s\n", l.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Title, "title", "", "listing title (prompted when empty)")
	f.StringVar(&req.Description, "description", "", "listing description")
	f.StringVar(&req.Location, "location", "", "location")
	f.StringVar(&req.Category, "category", "", "category")
	f.StringArrayVar(&req.Images, "image", nil, "image URL or s3:// reference; repeat for more")
	f.StringVar(&req.Phone, "phone", "", "contact phone")
	f.StringVar(&req.Email, "email", "", "contact email")
	f.StringVar(&req.Website, "website", "", "contact website")
	return cmd
}

func (a *App) toggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <listing-id>",
		Short: `Switch "available now" on or off`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			l, err := a.client.ToggleAvailableNow(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if l.AvailableNow && l.AvailableUntil != nil {
				fmt.Fprintf(out, "%s is available now until %s\n", l.ID, l.AvailableUntil.Local().Format("15:04 Jan 2"))
			} else {
				fmt.Fprintf(out, "%s is no longer available now\n", l.ID)
			}
			return nil
		},
	}
}

func (a *App) upgradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <listing-id> <type>",
		Short: "Activate an upgrade on a listing",
		Long:  "Types: image_rotation, highlight, sticky, available_now_extended. Activation is free.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseUpgradeKind(args[1])
			if err != nil {
				return err
			}

			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			u, err := a.client.PurchaseUpgrade(ctx, args[0], kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Activated %s on %s until %s\n", u.Kind, u.ListingID, u.ExpiresAt.Local().Format("Jan 2 2006"))
			return nil
		},
	}
}

func (a *App) upgradesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrades <listing-id>",
		Short: "Show the upgrades currently active on a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			ups, err := a.client.ActiveUpgrades(ctx, args[0])
			if err != nil {
				return err
			}
			return printUpgrades(cmd.OutOrStdout(), ups)
		},
	}
}

func (a *App) purchasesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purchases",
		Short: "List your upgrade purchases, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcContext(cmd)
			defer cancel()

			ps, err := a.client.PurchaseHistory(ctx)
			if err != nil {
				return err
			}
			return printPurchases(cmd.OutOrStdout(), ps)
		},
	}
}

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [token]",
		Short: "Save an access token for later commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				t, err := GetSecret(a.reader, "Access token", cmd.OutOrStdout())
				if err != nil {
					return err
				}
				token = t
			}
			if token == "" {
				return fmt.Errorf("empty token")
			}

			if err := a.config.SaveToken(token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", a.config.TokenFile)
			return nil
		},
	}
}
