package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/FarmX-org/FarmX-mobile/internal/card"
	"github.com/FarmX-org/FarmX-mobile/internal/countdown"
	"github.com/FarmX-org/FarmX-mobile/internal/listing"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

func (a *app) cmdOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("orders consumer|handler|farm <farmId>")
	}
	var buf bytes.Buffer

	switch args[0] {
	case "consumer":
		l := listing.ForConsumer(a.client, a.logger)
		if err := l.Load(ctx); err != nil {
			a.notifier.Error("Error", l.Message())
			return err
		}
		now := a.timeNow()
		for _, o := range l.Orders() {
			card.NewConsumerCard(o, a.deps(l)).Render(&buf, now)
		}
		if len(l.Orders()) == 0 {
			buf.WriteString("No orders yet.\n")
		}

	case "handler":
		l := listing.ForHandler(a.client, a.logger)
		if err := l.Load(ctx); err != nil {
			a.notifier.Error("Error", l.Message())
			return err
		}
		for _, o := range l.Orders() {
			card.NewHandlerCard(o, a.deps(l)).Render(&buf)
		}

	case "farm":
		if len(args) < 2 {
			return usageError("orders farm <farmId>")
		}
		l := listing.ForFarm(a.client, args[1], a.logger)
		if err := l.Load(ctx); err != nil {
			a.notifier.Error("Error", l.Message())
			return err
		}
		for _, o := range l.Orders() {
			card.NewFarmerCard(o, a.deps(l)).Render(&buf)
		}
		if msg := l.Message(); msg != "" {
			buf.WriteString(msg + "\n")
		}

	default:
		return usageError("unknown listing %q", args[0])
	}

	a.printf("%s", buf.String())
	return nil
}

// cmdWatch runs one countdown per READY order until all reach zero.
func (a *app) cmdWatch(ctx context.Context, _ []string) error {
	l := listing.ForConsumer(a.client, a.logger)
	if err := l.Load(ctx); err != nil {
		a.notifier.Error("Error", l.Message())
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	watching := 0
	for _, o := range l.Orders() {
		if o.Status != orders.StatusReady {
			continue
		}
		id := o.ID
		cd, err := card.NewConsumerCard(o, a.deps(nil)).Countdown()
		if err != nil {
			a.printf("Order #%d: %s\n", id, card.MsgUnknownTime)
			continue
		}
		watching++
		g.Go(func() error {
			return cd.Run(gctx, func(f countdown.Frame) {
				a.printf("Order #%d: %s\n", id, f)
			})
		})
	}
	if watching == 0 {
		a.printf("No orders on the way.\n")
		return nil
	}

	// Stopping early through ctx is a normal way to leave watch.
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (a *app) cmdStatus(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usageError("status farm|handler <id> <STATUS> [-time T | -eta T]")
	}
	id, err := parseID(args[1], "order id")
	if err != nil {
		return err
	}
	status, err := orders.ParseStatus(args[2])
	if err != nil {
		return usageError("%v", err)
	}

	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	timeValue := fs.String("time", "", "farm order delivery time")
	eta := fs.String("eta", "", "estimated delivery time")
	if err := fs.Parse(args[3:]); err != nil {
		return usageError("%v", err)
	}

	switch args[0] {
	case "farm":
		c := card.NewFarmerCard(orders.FarmOrder{ID: id}, a.deps(nil))
		if err := c.SelectStatus(status); err != nil {
			return err
		}
		c.SetDeliveryTime(*timeValue)
		return c.Save(ctx)

	case "handler":
		l := listing.ForHandler(a.client, a.logger)
		if err := l.Load(ctx); err != nil {
			a.notifier.Error("Error", l.Message())
			return err
		}
		o, ok := l.Get(id)
		if !ok {
			return a.fail(fmt.Errorf("order %d not found", id), fmt.Sprintf("Order #%d not found", id))
		}
		c := card.NewHandlerCard(o, a.deps(l))
		if err := c.SelectStatus(status); err != nil {
			return err
		}
		if *eta != "" {
			c.SetETA(*eta)
		}
		if err := c.Save(ctx); err != nil {
			return err
		}
		if updated, ok := l.Get(id); ok {
			var buf bytes.Buffer
			card.NewHandlerCard(updated, a.deps(nil)).Render(&buf)
			a.printf("%s", buf.String())
		}
		return nil

	default:
		return usageError("unknown role %q", args[0])
	}
}

func (a *app) cmdDeliver(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("deliver <orderId> <code>")
	}
	id, err := parseID(args[0], "order id")
	if err != nil {
		return err
	}

	l := listing.ForHandler(a.client, a.logger)
	if err := l.Load(ctx); err != nil {
		a.notifier.Error("Error", l.Message())
		return err
	}
	o, ok := l.Get(id)
	if !ok {
		return a.fail(fmt.Errorf("order %d not found", id), fmt.Sprintf("Order #%d not found", id))
	}

	c := card.NewHandlerCard(o, a.deps(l))
	c.EnterCode(args[1])
	if !c.CanConfirm() {
		a.notifier.Error("Confirmation failed", fmt.Sprintf("Enter the %d-digit delivery code", orders.CodeLength))
		return card.ErrCodeIncomplete
	}
	return c.ConfirmDelivery(ctx)
}

func (a *app) consumerOrder(ctx context.Context, id int64) (*listing.Listing[orders.Order], orders.Order, error) {
	l := listing.ForConsumer(a.client, a.logger)
	if err := l.Load(ctx); err != nil {
		a.notifier.Error("Error", l.Message())
		return nil, orders.Order{}, err
	}
	o, ok := l.Get(id)
	if !ok {
		return nil, orders.Order{}, a.fail(fmt.Errorf("order %d not found", id), fmt.Sprintf("Order #%d not found", id))
	}
	return l, o, nil
}

func (a *app) cmdCode(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("code show|regenerate <orderId>")
	}
	id, err := parseID(args[1], "order id")
	if err != nil {
		return err
	}
	l, o, err := a.consumerOrder(ctx, id)
	if err != nil {
		return err
	}
	c := card.NewConsumerCard(o, a.deps(l))

	switch args[0] {
	case "show":
		code, err := c.ShowCode(ctx)
		if err != nil {
			return err
		}
		a.printf("Delivery code for order #%d: %s\n", id, code)
		return nil
	case "regenerate":
		return c.RegenerateCode(ctx)
	default:
		return usageError("unknown code action %q", args[0])
	}
}
