package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/FarmX-org/FarmX-mobile/internal/feedback"
	"github.com/FarmX-org/FarmX-mobile/internal/model"
	"github.com/FarmX-org/FarmX-mobile/internal/shop"
)

func (a *app) cmdFeedback(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("feedback farm|product|list ...")
	}

	switch args[0] {
	case "list":
		if len(args) != 2 {
			return usageError("feedback list <farmId>")
		}
		farmID, err := parseID(args[1], "farm id")
		if err != nil {
			return err
		}
		received, err := feedback.ForFarm(ctx, a.client, farmID)
		if err != nil {
			return a.fail(err, "Failed to load feedback")
		}
		if received.Empty() {
			a.printf("No feedback yet.\n")
			return nil
		}
		a.printf("Farm rating: %s (%d reviews)\n", received.AverageFarmRating().StringFixed(1), len(received.Farm))
		for _, f := range received.Farm {
			a.printf("  %d/5 %s  %s\n", f.Rating, f.ConsumerName, f.Comment)
		}
		for _, f := range received.Products {
			a.printf("  %s: %d/5 %s  %s\n", f.ProductName, f.Rating, f.ConsumerName, f.Comment)
		}
		return nil

	case "farm":
		if len(args) < 4 {
			return usageError("feedback farm <orderId> <farmId> <rating> [comment]")
		}
		s, farmID, err := a.feedbackSession(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		rating, err := parseCount(args[3], "rating")
		if err != nil {
			return err
		}
		return a.rated(s.RateFarm(ctx, farmID, rating, strings.Join(args[4:], " ")))

	case "product":
		if len(args) < 5 {
			return usageError("feedback product <orderId> <farmId> <product> <rating> [comment]")
		}
		s, farmID, err := a.feedbackSession(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		rating, err := parseCount(args[4], "rating")
		if err != nil {
			return err
		}
		return a.rated(s.RateProduct(ctx, farmID, args[3], rating, strings.Join(args[5:], " ")))

	default:
		return usageError("unknown feedback action %q", args[0])
	}
}

// rated shows the validation failures the feedback session does not notify.
func (a *app) rated(err error) error {
	for _, local := range []error{feedback.ErrRatingRequired, feedback.ErrUnknownFarm, feedback.ErrUnknownProduct} {
		if errors.Is(err, local) {
			a.notifier.Error("Error", err.Error())
			break
		}
	}
	return err
}

func (a *app) feedbackSession(ctx context.Context, rawOrder, rawFarm string) (*feedback.Session, int64, error) {
	orderID, err := parseID(rawOrder, "order id")
	if err != nil {
		return nil, 0, err
	}
	farmID, err := parseID(rawFarm, "farm id")
	if err != nil {
		return nil, 0, err
	}
	_, o, err := a.consumerOrder(ctx, orderID)
	if err != nil {
		return nil, 0, err
	}
	s, err := feedback.NewSession(o, a.client, a.notifier, a.logger)
	if errors.Is(err, feedback.ErrNotDelivered) {
		a.notifier.Error("Error", "Only delivered orders can be rated.")
	}
	return s, farmID, err
}

func (a *app) cmdStore(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("store", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "filter by product name")
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	s := shop.NewStore(a.client, a.notifier, a.logger)
	if err := s.Load(ctx); err != nil {
		return err
	}
	for _, p := range s.Filter(*search, *category) {
		availability := "available"
		if !p.Available {
			availability = "unavailable"
		}
		a.printf("#%d %s [%s] %s/%s  %d in stock, %s\n",
			p.ID, p.Title(), p.CategoryOrDefault(), p.Price.StringFixed(2), p.Unit, p.Quantity, availability)
	}
	return nil
}

func (a *app) printCart(c model.Cart) {
	if len(c.Items) == 0 {
		a.printf("Your cart is empty.\n")
		return
	}
	for _, it := range c.Items {
		a.printf("#%d %s  x%d  %s\n", it.ID, it.ProductName, it.Quantity, it.ProductPrice.StringFixed(2))
	}
	a.printf("Total: %s\n", c.TotalPrice.StringFixed(2))
}

func (a *app) cmdCart(ctx context.Context, args []string) error {
	c := shop.NewCart(a.client, a.notifier, a.logger)
	if err := c.Load(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		a.printCart(c.Current())
		return nil
	}

	var err error
	switch args[0] {
	case "add":
		if len(args) != 3 {
			return usageError("cart add <productId> <qty>")
		}
		productID, perr := parseID(args[1], "product id")
		if perr != nil {
			return perr
		}
		qty, perr := parseCount(args[2], "quantity")
		if perr != nil {
			return perr
		}
		s := shop.NewStore(a.client, a.notifier, a.logger)
		if err = s.Load(ctx); err == nil {
			err = s.AddToCart(ctx, productID, qty)
		}
		if err == nil {
			err = c.Load(ctx)
		}
	case "inc", "dec":
		if len(args) != 2 {
			return usageError("cart %s <itemId>", args[0])
		}
		itemID, perr := parseID(args[1], "item id")
		if perr != nil {
			return perr
		}
		if args[0] == "inc" {
			err = c.Increase(ctx, itemID)
		} else {
			err = c.Decrease(ctx, itemID)
		}
	case "clear":
		err = c.Clear(ctx)
	case "checkout":
		err = c.Checkout(ctx)
	default:
		return usageError("unknown cart action %q", args[0])
	}
	if err != nil {
		return err
	}
	a.printCart(c.Current())
	return nil
}

func (a *app) cmdFarms(ctx context.Context, _ []string) error {
	farms, err := a.client.Farms(ctx)
	if err != nil {
		return a.fail(err, "Failed to load farms")
	}
	if len(farms) == 0 {
		a.printf("No farms yet.\n")
	}
	for _, f := range farms {
		a.printf("#%d %s  %s  %.1f ha  %s\n", f.ID, f.Name, f.Location, f.AreaSize, f.SoilType)
	}
	return nil
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	role := fs.String("role", "", "only users holding this role")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	users, err := a.client.Users(ctx)
	if err != nil {
		return a.fail(err, "Failed to load users")
	}
	if *role != "" {
		users = model.FilterByRole(users, *role)
	}
	if a.session != nil {
		users = model.ExceptUser(users, a.session.Username())
	}
	for _, u := range users {
		a.printf("#%d %s  %s  %s\n", u.ID, u.Username, u.Name, strings.Join(u.Roles, ","))
	}
	return nil
}
