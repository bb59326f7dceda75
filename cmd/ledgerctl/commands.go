package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"max.ks1230/ledger-bot/internal/clients/tg"
	"max.ks1230/ledger-bot/internal/config"
	"max.ks1230/ledger-bot/internal/model/classifier"
	"max.ks1230/ledger-bot/internal/model/customerr"
	"max.ks1230/ledger-bot/internal/model/digest"
	"max.ks1230/ledger-bot/internal/model/reports"
	"max.ks1230/ledger-bot/internal/model/storage"
)

var header = color.New(color.FgCyan, color.Bold)

// app holds what every subcommand needs, built once in PersistentPreRunE.
type app struct {
	cfgFile string
	conf    *config.Service
	store   *storage.Store
	engine  *reports.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "ledgerctl",
		Short:             "Inspect and edit the ledger-bot store",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.store != nil {
				_ = a.store.Close()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default data/config.yaml)")

	root.AddCommand(
		a.todayCmd(),
		a.totalCmd(),
		a.appointmentsCmd(),
		a.categoriesCmd(),
		a.usersCmd(),
		a.addCmd(),
		a.digestCmd(),
	)
	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.conf, err = config.FromFile(a.cfgFile)
	} else {
		a.conf, err = config.New()
	}
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	a.store, err = storage.Open(a.conf.Storage(), a.conf.Postgres())
	if err != nil {
		return errors.Wrap(err, "open storage")
	}
	a.engine = reports.NewEngine(a.conf.App(), a.store)
	return nil
}

func (a *app) todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List today's records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printList(cmd.OutOrStdout(), a.engine.Today(), a.engine.TodayRecords(cmd.Context()))
			return nil
		},
	}
}

func (a *app) totalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the all-time expense total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.TotalExpense(cmd.Context()).String())
			return nil
		},
	}
}

func (a *app) appointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List every appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printList(cmd.OutOrStdout(), "appointments", a.engine.AllAppointments(cmd.Context()))
			return nil
		},
	}
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Expense totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			header.Fprintln(out, "categories")
			for _, t := range a.engine.CategoryTotals(cmd.Context()) {
				fmt.Fprintf(out, "%s\t%s\n", t.Category, t.Amount.String())
			}
			return nil
		},
	}
}

func (a *app) usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, id := range a.store.LoadUsers(cmd.Context()) {
				fmt.Fprintln(out, id.String())
			}
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Classify text and store it as a record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := classifier.New(a.store, a.conf.App()).Classify(cmd.Context(), strings.Join(args, " "))
			var validationErr *customerr.ValidationError
			switch {
			case errors.As(err, &validationErr):
				return errors.New(validationErr.Hint)
			case err != nil:
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", rec.Kind, rec.Datetime(), rec.Description)
			return nil
		},
	}
}

func (a *app) digestCmd() *cobra.Command {
	var send bool
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print today's digest, or push it to every user with --send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !send {
				fmt.Fprintln(cmd.OutOrStdout(), digest.BuildMessage(a.engine.TodayRecords(cmd.Context())))
				return nil
			}
			client, err := tg.New(a.conf.Telegram())
			if err != nil {
				return errors.Wrap(err, "init telegram client")
			}
			res := digest.NewScheduler(a.conf.Schedule(), a.conf.App().Location(), a.engine, a.store, client).
				SendDigest(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "sent %d, failed %d\n", res.Sent, res.Failed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&send, "send", false, "push through telegram")
	return cmd
}

func printList(out io.Writer, title string, items []string) {
	header.Fprintln(out, title)
	if len(items) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	for _, item := range items {
		fmt.Fprintln(out, digest.Bullet+item)
	}
}
