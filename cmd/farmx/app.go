package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/api"
	"github.com/FarmX-org/FarmX-mobile/internal/card"
	"github.com/FarmX-org/FarmX-mobile/internal/session"
)

const usage = `Commands:
  orders consumer|handler          list your orders
  orders farm <farmId>             list the orders of one farm
  watch                            live countdowns of orders on the way
  status farm <id> <STATUS> [-time T]
  status handler <id> <STATUS> [-eta T]
  deliver <orderId> <code>         confirm a delivery with the consumer's code
  code show|regenerate <orderId>   show or replace a delivery code
  feedback farm <orderId> <farmId> <rating> [comment]
  feedback product <orderId> <farmId> <product> <rating> [comment]
  feedback list <farmId>           ratings received by one of your farms
  store [-search S] [-category C]  browse products
  cart [add <productId> <qty>|inc <itemId>|dec <itemId>|clear|checkout]
  farms                            your farms
  users [-role R]                  user directory
`

var errUsage = errors.New("usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// notifier prints notices to the error stream.
type notifier struct {
	mu sync.Mutex
	w  io.Writer
}

func (n *notifier) print(level, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s: %s\n", level, title, message)
}

func (n *notifier) Success(title, message string) { n.print("ok", title, message) }
func (n *notifier) Info(title, message string)    { n.print("info", title, message) }
func (n *notifier) Error(title, message string)   { n.print("error", title, message) }

type command func(ctx context.Context, args []string) error

type app struct {
	client   *api.Client
	session  *session.Session
	notifier *notifier
	out      io.Writer
	logger   *zap.Logger
	timeNow  func() time.Time

	outMu sync.Mutex
}

func newApp(client *api.Client, sess *session.Session, out, errOut io.Writer, logger *zap.Logger) *app {
	return &app{
		client:   client,
		session:  sess,
		notifier: &notifier{w: errOut},
		out:      out,
		logger:   logger,
		timeNow:  time.Now,
	}
}

func (a *app) commands() map[string]command {
	return map[string]command{
		"orders":   a.cmdOrders,
		"watch":    a.cmdWatch,
		"status":   a.cmdStatus,
		"deliver":  a.cmdDeliver,
		"code":     a.cmdCode,
		"feedback": a.cmdFeedback,
		"store":    a.cmdStore,
		"cart":     a.cmdCart,
		"farms":    a.cmdFarms,
		"users":    a.cmdUsers,
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}
	cmd, ok := a.commands()[args[0]]
	if !ok {
		return usageError("unknown command %q", args[0])
	}
	return cmd(ctx, args[1:])
}

func (a *app) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) deps(r card.Refresher) card.Deps {
	return card.Deps{API: a.client, Notifier: a.notifier, Refresher: r, Logger: a.logger}
}

// fail shows err through the notifier unless a component already did.
func (a *app) fail(err error, fallback string) error {
	a.notifier.Error("Error", api.Message(err, fallback))
	return err
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError("invalid %s %q", what, raw)
	}
	return id, nil
}

func parseCount(raw, what string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, usageError("invalid %s %q", what, raw)
	}
	return n, nil
}
