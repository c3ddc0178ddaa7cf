package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dannymato/ticket-generator/cmd/app/commands"
	"github.com/dannymato/ticket-generator/internal/app"
	"github.com/dannymato/ticket-generator/internal/config"
	"github.com/dannymato/ticket-generator/internal/ticket/domain"
)

// classSelectionFlags are shared by the generate and alphabet commands.
func classSelectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "capitals",
			Value: false,
			Usage: "Include uppercase letters A-Z",
		},
		&cli.BoolFlag{
			Name:  "lowercase",
			Value: false,
			Usage: "Include lowercase letters a-z",
		},
		&cli.BoolFlag{
			Name:  "digits",
			Value: false,
			Usage: "Include decimal digits 0-9",
		},
		&cli.BoolFlag{
			Name:  "specials",
			Value: false,
			Usage: "Include punctuation characters",
		},
		&cli.StringFlag{
			Name:    "exclude",
			Aliases: []string{"x"},
			Value:   "",
			Usage:   "Characters to remove from the assembled alphabet",
		},
	}
}

func classSelectionFromFlags(cmd *cli.Command) domain.ClassSelection {
	return domain.ClassSelection{
		Capitals:  cmd.Bool("capitals"),
		Lowercase: cmd.Bool("lowercase"),
		Digits:    cmd.Bool("digits"),
		Specials:  cmd.Bool("specials"),
		Exclude:   cmd.String("exclude"),
	}
}

func getTicketCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Run a one-shot generation and write the tickets to a CSV file",
			Flags: append(classSelectionFlags(),
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "",
					Usage:   "Path of the CSV file to write",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   0,
					Usage:   "Number of tickets to generate",
				},
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   0,
					Usage:   "Length of each ticket",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				logger := container.Logger()

				runner, err := container.Runner()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					runner,
					logger,
					commands.DefaultIO().Writer,
					classSelectionFromFlags(cmd),
					cmd.String("output"),
					int(cmd.Int("count")),
					int(cmd.Int("length")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "alphabet",
			Usage: "Print the character set the given selection would draw from",
			Flags: append(classSelectionFlags(),
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunAlphabet(
					commands.DefaultIO().Writer,
					classSelectionFromFlags(cmd),
					cmd.String("format"),
				)
			},
		},
	}
}
