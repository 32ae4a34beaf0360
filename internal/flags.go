package internal

import (
	"github.com/urfave/cli/v3"
)

const (
	flagAPIID   = "api-id"
	flagAPIHash = "api-hash"
	flagPhone   = "phone"
)

func apiIDFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:     flagAPIID,
		Usage:    "Telegram API ID",
		Sources:  cli.EnvVars("TELEGRAM_API_ID"),
		Required: true,
	}
}

func apiHashFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     flagAPIHash,
		Usage:    "Telegram API Hash",
		Sources:  cli.EnvVars("TELEGRAM_API_HASH"),
		Required: true,
	}
}

func phoneFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     flagPhone,
		Aliases:  []string{"p"},
		Usage:    "Phone number with country code (e.g., +1234567890)",
		Required: true,
	}
}
