package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/folio/internal/config"
	"github.com/iburimskiy/folio/internal/game"
	"github.com/iburimskiy/folio/internal/portfolio"
	"github.com/iburimskiy/folio/internal/term"
)

var (
	configFile string
	backdropFl string
	seed       int64
	sound      bool

	formName    string
	formEmail   string
	formSubject string
	formMessage string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "folio",
		Short:        "animated portfolio showcase",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, content, err := setup(cmd)
			if err != nil {
				return err
			}
			return game.Run(cfg, content)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&backdropFl, "backdrop", "", "backdrop effect: stars or network")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().BoolVar(&sound, "sound", false, "play typing clicks")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run the backdrop in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, content, err := setup(cmd)
			if err != nil {
				return err
			}
			return term.Run(cfg, content)
		},
	}

	mailtoCmd := &cobra.Command{
		Use:   "mailto",
		Short: "print the contact link for a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, content, err := setup(cmd)
			if err != nil {
				return err
			}
			form := portfolio.ContactForm{
				Name:    formName,
				Email:   formEmail,
				Subject: formSubject,
				Message: formMessage,
			}
			if err := form.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form.Mailto(content.Contact.Email))
			return nil
		},
	}
	mailtoCmd.Flags().StringVar(&formName, "name", "", "your name")
	mailtoCmd.Flags().StringVar(&formEmail, "email", "", "your email")
	mailtoCmd.Flags().StringVar(&formSubject, "subject", "", "subject (optional)")
	mailtoCmd.Flags().StringVar(&formMessage, "message", "", "message body")

	rootCmd.AddCommand(termCmd, mailtoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves the configuration from file, .env, environment and flags,
// in that order, and loads the portfolio content.
func setup(cmd *cobra.Command) (*config.Config, *portfolio.Content, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(".env"); err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backdrop") {
		cfg.Backdrop = backdropFl
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("sound") {
		cfg.Sound = sound
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	content := portfolio.Default()
	if cfg.Content != "" {
		if content, err = portfolio.Load(cfg.Content); err != nil {
			return nil, nil, err
		}
	}
	log.Printf("[Main] backdrop=%s seed=%d", cfg.Backdrop, cfg.Seed)
	return cfg, content, nil
}
