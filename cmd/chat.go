package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnpath/learnpath/internal/app"
	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/i18n"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive conversation mode",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	svc, err := a.NewChatService()
	if err != nil {
		return err
	}

	fmt.Println(i18n.Sprintf(i18n.KeyWelcome, AppVersion))
	fmt.Println(i18n.T(i18n.KeyWelcomeHelp))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(i18n.T(i18n.KeyChatPrompt))

		if !scanner.Scan() {
			// EOF (Ctrl+D)
			fmt.Println("\n" + i18n.T(i18n.KeyGoodbye))
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if handleCommand(input, svc) {
				fmt.Println(i18n.T(i18n.KeyGoodbye))
				return nil
			}
			continue
		}

		if a.Intent.IsRoadmapIntent(ctx, input) {
			fmt.Println(i18n.T(i18n.KeyFillProfile))
			fmt.Println()
		}

		runTurn(ctx, svc, input)
	}
}

// runTurn drives one conversation turn, rendering events to the terminal.
func runTurn(ctx context.Context, svc *chat.Service, input string) {
	streaming := false
	for ev := range svc.HandleMessage(ctx, input) {
		switch ev := ev.(type) {
		case chat.StatusUpdate:
			fmt.Println(ev.Message)
		case chat.TextChunk:
			streaming = true
			fmt.Print(ev.Text)
		case chat.ErrorOccurred:
			if streaming {
				fmt.Println()
			}
			fmt.Fprintln(os.Stderr, ev.UserMessage)
		case chat.SessionExpired:
			fmt.Println(ev.Message)
		}
	}
	if streaming {
		fmt.Println()
	}
	fmt.Println()
}

// handleCommand processes slash commands. Returns true to exit.
func handleCommand(input string, svc *chat.Service) bool {
	switch input {
	case "/exit", "/quit":
		return true
	case "/reset":
		svc.ResetSession()
		fmt.Println(i18n.T(i18n.KeyChatCleared))
	default:
		fmt.Printf("Unknown command: %s\n", input)
	}
	return false
}
