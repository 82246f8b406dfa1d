package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sahatech/clinic-seed/internal/config"
	"github.com/sahatech/clinic-seed/internal/database"
	"github.com/sahatech/clinic-seed/internal/identity"
	"github.com/sahatech/clinic-seed/internal/logger"
	"github.com/sahatech/clinic-seed/internal/models"
	"github.com/sahatech/clinic-seed/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every command needs once configuration is loaded
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "seed-db",
		Short:         "Load sample staff, doctors, patients and activity into the clinic's Firebase project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSeed(cmd)
		},
	}

	root.PersistentFlags().String("env-file", ".env", "Path to a dotenv file with the Firebase settings")
	root.Flags().Bool("dry-run", false, "Seed an in-memory store instead of Firebase and print the result")
	root.Flags().Int("appointments", seed.DefaultAppointments, "Number of appointments to generate")
	root.Flags().Int64("random-seed", 0, "Seed for appointment generation (0 picks one from the clock)")
	root.Flags().Bool("skip-if-seeded", false, "Only reconcile users when doctors already exist")
	root.Flags().Bool("record-run", false, "Store a run summary in the realtime database")

	root.AddCommand(verifyCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	envErr := config.LoadEnvFile(envFile)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error loading configuration:", err)
		return err
	}
	log, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error building logger:", err)
		return err
	}
	if envErr != nil {
		log.Info("No .env file found, using environment variables", zap.String("path", envFile))
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) runSeed(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	appointments, _ := cmd.Flags().GetInt("appointments")
	randomSeed, _ := cmd.Flags().GetInt64("random-seed")
	skipIfSeeded, _ := cmd.Flags().GetBool("skip-if-seeded")
	recordRun, _ := cmd.Flags().GetBool("record-run")

	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}

	backend := database.Firestore
	if dryRun {
		backend = database.Memory
	} else if err := a.cfg.Validate(); err != nil {
		a.log.Error("Invalid configuration", zap.Error(err))
		return err
	}

	db, err := database.InitDatabase(ctx, a.cfg, backend, a.log)
	if err != nil {
		a.log.Error("Failed to initialize database", zap.Error(err))
		return err
	}
	defer db.Close()

	var accounts seed.AccountService
	if dryRun {
		accounts = identity.NewMemoryAccounts()
	} else {
		accounts, err = identity.NewToolkitService(ctx, a.cfg.Firebase, a.cfg.Auth)
		if err != nil {
			a.log.Error("Failed to initialize auth", zap.Error(err))
			return err
		}
	}

	opts := seed.Options{
		Appointments: appointments,
		SkipIfSeeded: skipIfSeeded,
		Rand:         rand.New(rand.NewSource(randomSeed)),
	}
	if recordRun {
		opts.Recorder = db.Recorder()
		if opts.Recorder == nil {
			a.log.Warn("Run summary requested but no realtime database is configured")
		}
	}

	seeder := seed.New(accounts, db.Store, seed.DefaultFixtures(), opts, a.log)
	a.log.Info("Seeding", zap.String("run_id", seeder.RunID()),
		zap.String("backend", string(db.Type)), zap.Int64("random_seed", randomSeed))

	report, err := seeder.Run(ctx)
	if err != nil {
		a.log.Error("Error seeding database", zap.Error(err))
		return err
	}

	if dryRun {
		printReport(cmd.OutOrStdout(), report)
	}
	return nil
}

func printReport(w io.Writer, r *seed.Report) {
	fmt.Fprintf(w, "Run %s\n", r.RunID)
	for _, role := range models.StaffRoles {
		uid := r.UserIDs[role]
		if uid == "" {
			uid = "(unresolved)"
		}
		fmt.Fprintf(w, "  user %-13s %s\n", role, uid)
	}
	fmt.Fprintf(w, "  contacts linked: %t\n", r.ContactsLinked)
	if r.Skipped {
		fmt.Fprintln(w, "  fixtures skipped: doctors already present")
		return
	}
	fmt.Fprintf(w, "  doctors: %d\n", len(r.Doctors))
	fmt.Fprintf(w, "  patients: %d\n", len(r.Patients))
	fmt.Fprintf(w, "  appointments: %d\n", len(r.Appointments))
	fmt.Fprintf(w, "  transactions: %d\n", len(r.Transactions))
	fmt.Fprintf(w, "  inbox messages: %d\n", len(r.InboxMessageIDs))
}
