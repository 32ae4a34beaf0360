package server

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tolmachov/tgcompose/internal/messages"
	"github.com/tolmachov/tgcompose/internal/resources"
	"github.com/tolmachov/tgcompose/internal/sender"
	"github.com/tolmachov/tgcompose/internal/styling"
	"github.com/tolmachov/tgcompose/internal/tgclient"
	"github.com/tolmachov/tgcompose/internal/tools"
)

// Server represents the MCP server for Telegram
type Server struct {
	mcpServer *server.MCPServer
	tgConfig  *tgclient.Config
	stdin     io.Reader
	stdout    io.Writer
	errOut    io.Writer
}

// New creates a new MCP server
func New(cfg *tgclient.Config, version string, stdin io.Reader, stdout, errOut io.Writer) (*Server, error) {
	mcpServer := server.NewMCPServer(
		"tgcompose",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)

	return &Server{
		mcpServer: mcpServer,
		tgConfig:  cfg,
		stdin:     stdin,
		stdout:    stdout,
		errOut:    errOut,
	}, nil
}

// Run starts the MCP server over stdio
func (s *Server) Run(ctx context.Context) error {
	// Create a Telegram client with flood wait handling
	client, waiter := tgclient.CreateClient(s.tgConfig)

	// waiter.Run wraps a client.Run to handle FLOOD_WAIT errors automatically
	err := waiter.Run(ctx, func(ctx context.Context) error {
		return client.Run(ctx, func(ctx context.Context) error {
			// Check if authorized
			status, err := client.Auth().Status(ctx)
			if err != nil {
				return fmt.Errorf("checking auth status: %w", err)
			}

			if !status.Authorized {
				return fmt.Errorf("not authorized, please run 'login' command first")
			}

			self, err := client.Self(ctx)
			if err != nil {
				return fmt.Errorf("getting own user: %w", err)
			}

			api := client.API()

			// Shared message pipeline: styled text parsing, dispatch,
			// and rate-limited history access
			parser := styling.NewParser(tgclient.NewMentionResolver(api))
			snd := sender.New(api, parser, self.ID)
			msgProvider := messages.NewProvider(api)

			tools.RegisterTools(s.mcpServer, []tools.Handler{
				tools.NewMeGetHandler(api),
				tools.NewChatsGetHandler(api),
				tools.NewChatsSearchHandler(api),
				tools.NewChatInfoGetHandler(api),
				tools.NewChatPermissionsHandler(api),
				tools.NewMessagesGetHandler(api, msgProvider),
				tools.NewMessageSendHandler(api, snd),
				tools.NewMessageReplyHandler(api, snd),
				tools.NewMessageScheduleHandler(api, snd),
				tools.NewMessageEditHandler(api, snd),
				tools.NewMessageDraftHandler(api, snd),
				tools.NewMessageForwardHandler(api, snd),
				tools.NewScheduledGetHandler(api),
				tools.NewScheduledDeleteHandler(api),
				tools.NewUsernameResolveHandler(api),
			})

			resources.RegisterResources(s.mcpServer,
				[]resources.ResourceHandler{
					resources.NewMeHandler(api),
					resources.NewChatsHandler(api),
				},
				[]resources.ResourceTemplateHandler{
					resources.NewChatMessagesHandler(api, msgProvider),
					resources.NewChatInfoHandler(api),
				},
			)

			// Run MCP server over stdio
			errLogger := log.New(s.errOut, "[tgcompose] ", log.LstdFlags)
			stdioServer := server.NewStdioServer(s.mcpServer)
			stdioServer.SetErrorLogger(errLogger)

			return stdioServer.Listen(ctx, s.stdin, s.stdout)
		})
	})
	if err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	return nil
}
