// Package main is the entrypoint for the wulai command line client.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/sirupsen/logrus"

	wulai "github.com/peteraglen/wulai-go-client"
	"github.com/peteraglen/wulai-go-client/internal/config"
)

const usage = `Usage: wulai <command> [arguments]

Commands:
  request [-method M] <action> [json-params]  Send a raw request and print the payload.
  create-user <user-id> [nickname]             Create or update a user.
  bot-response <user-id> <text>                Ask the bots for a reply to a text message.
  help                                         Show this help.

Environment: WULAI_PUBKEY, WULAI_SECRET (required), WULAI_ENDPOINT, WULAI_API_VERSION,
WULAI_TIMEOUT, WULAI_RETRY_COUNT, WULAI_POOL_SIZE, WULAI_LOG_LEVEL, WULAI_DEBUG.
`

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "request", "create-user", "bot-response":
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	case "":
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q.\n%s", cmd, usage)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, cmd, args[1:]); err != nil {
		logger.WithField("code", wulai.ErrorCodeOf(err)).Errorf("wulai %s: %v", cmd, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *logrus.Logger, cmd string, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)

	client, err := wulai.New(cfg.Pubkey, cfg.Secret,
		wulai.WithEndpoint(cfg.Endpoint),
		wulai.WithAPIVersion(cfg.APIVersion),
		wulai.WithTimeout(cfg.Timeout),
		wulai.WithRetryCount(cfg.RetryCount),
		wulai.WithPoolSize(cfg.PoolSize, cfg.PoolSize),
		wulai.WithRequestLogger(logger),
		wulai.WithDebug(cfg.Debug),
	)
	if err != nil {
		return err
	}

	var result any

	switch cmd {
	case "request":
		result, err = runRequest(ctx, client, cfg.RetryCount, args)
	case "create-user":
		if len(args) < 1 {
			return errors.New("create-user requires a user id")
		}
		nickname := ""
		if len(args) > 1 {
			nickname = args[1]
		}
		result, err = client.CreateUser(ctx, args[0], "", nickname)
	case "bot-response":
		if len(args) < 2 {
			return errors.New("bot-response requires a user id and a text")
		}
		result, err = client.GetBotResponse(ctx, args[0], wulai.TextBody(args[1]), "")
	}
	if err != nil {
		return err
	}

	return printJSON(result)
}

func runRequest(ctx context.Context, client *wulai.Client, retryCount int, args []string) (wulai.Payload, error) {
	fs := flag.NewFlagSet("request", flag.ContinueOnError)
	method := fs.String("method", "POST", "HTTP method")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() < 1 {
		return nil, errors.New("request requires an action")
	}

	var params map[string]any
	if fs.NArg() > 1 {
		if err := json.Unmarshal([]byte(fs.Arg(1)), &params); err != nil {
			return nil, fmt.Errorf("params must be a JSON object: %w", err)
		}
	}

	req, err := wulai.NewRequest(fs.Arg(0), params, wulai.CallOptions{
		Method:     *method,
		RetryCount: retryCount,
	})
	if err != nil {
		return nil, err
	}

	return client.Dispatch(ctx, req)
}

func printJSON(v any) error {
	out, err := json.Marshal(v, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
