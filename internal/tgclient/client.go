package tgclient

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gotd/contrib/middleware/floodwait"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
	"golang.org/x/term"
)

// Config holds Telegram API credentials.
type Config struct {
	APIID   int
	APIHash string
}

// CreateClient builds a Telegram client with persistent session storage and
// flood wait handling. The returned waiter must wrap the client.Run call.
func CreateClient(cfg *Config) (*telegram.Client, *floodwait.Waiter) {
	waiter := floodwait.NewWaiter().WithMaxWait(60 * time.Second)

	client := telegram.NewClient(cfg.APIID, cfg.APIHash, telegram.Options{
		SessionStorage: NewSessionStorage(),
		Middlewares:    []telegram.Middleware{waiter},
	})

	return client, waiter
}

// terminalAuthenticator reads login codes and 2FA passwords from stdin.
type terminalAuthenticator struct {
	phone string
}

func (a terminalAuthenticator) Phone(ctx context.Context) (string, error) {
	return a.phone, nil
}

func (a terminalAuthenticator) Code(ctx context.Context, sentCode *tg.AuthSentCode) (string, error) {
	return promptLine("Enter login code: ")
}

func (a terminalAuthenticator) Password(ctx context.Context) (string, error) {
	fmt.Print("Enter 2FA password: ")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Not a real terminal, hidden input is unavailable.
		return readLine()
	}

	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(password), nil
}

func (a terminalAuthenticator) AcceptTermsOfService(ctx context.Context, tos tg.HelpTermsOfService) error {
	return nil
}

func (a terminalAuthenticator) SignUp(ctx context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, fmt.Errorf("sign up is not supported")
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	return readLine()
}

func readLine() (string, error) {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Login signs the account in interactively, skipping the flow when a valid
// session is already stored.
func Login(ctx context.Context, cfg *Config, phone string) error {
	client, waiter := CreateClient(cfg)

	err := waiter.Run(ctx, func(ctx context.Context) error {
		return client.Run(ctx, func(ctx context.Context) error {
			status, err := client.Auth().Status(ctx)
			if err != nil {
				return fmt.Errorf("checking auth status: %w", err)
			}

			if status.Authorized {
				if user, err := client.Self(ctx); err == nil {
					fmt.Printf("Already logged in as %s\n", UserName(user))
				}
				return nil
			}

			flow := auth.NewFlow(
				terminalAuthenticator{phone: phone},
				auth.SendCodeOptions{},
			)
			if err := flow.Run(ctx, client.Auth()); err != nil {
				return fmt.Errorf("running auth flow: %w", err)
			}

			user, err := client.Self(ctx)
			if err != nil {
				return fmt.Errorf("getting user info: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", UserName(user))
			fmt.Println("You can now use the tgcompose server.")

			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	return nil
}

// Logout terminates the server-side session and wipes the stored one.
func Logout(ctx context.Context, cfg *Config) error {
	client, waiter := CreateClient(cfg)

	err := waiter.Run(ctx, func(ctx context.Context) error {
		return client.Run(ctx, func(ctx context.Context) error {
			if _, err := client.API().AuthLogOut(ctx); err != nil {
				return fmt.Errorf("calling auth logout: %w", err)
			}

			if err := NewSessionStorage().DeleteSession(); err != nil {
				fmt.Println("Failed to wipe session:", err)
			}

			fmt.Println("Successfully logged out from Telegram.")
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return nil
}
