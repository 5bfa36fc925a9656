package card

import (
	"fmt"
	"io"
	"time"

	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

func renderItems(w io.Writer, items []orders.OrderItem, indent string) {
	for _, it := range items {
		fmt.Fprintf(w, "%sProduct: %s  Quantity: %d  Price: %s\n", indent, it.ProductName, it.Quantity, it.Price.StringFixed(2))
	}
}

func badge(s orders.Status) string {
	return fmt.Sprintf("[%s|%s]", s, s.BadgeColor())
}

func (c *ConsumerCard) Render(w io.Writer, now time.Time) {
	o := c.order
	fmt.Fprintf(w, "Order #%d %s\n", o.ID, badge(o.Status))
	fmt.Fprintf(w, "  Total: %s\n", o.TotalAmount.StringFixed(2))
	fmt.Fprintf(w, "  Estimated Delivery: %s\n", c.ETALine(now))
	for _, fo := range o.FarmOrders {
		fmt.Fprintf(w, "  Farm: %s %s\n", fo.FarmName, badge(fo.Status))
		renderItems(w, fo.Items, "    ")
	}
}

func (c *FarmerCard) Render(w io.Writer) {
	o := c.order
	fmt.Fprintf(w, "Farm order #%d %s\n", o.ID, badge(c.Status()))
	if t := c.DeliveryTime(); t != "" {
		fmt.Fprintf(w, "  Delivery Time: %s\n", t)
	}
	renderItems(w, o.Items, "  ")
}

func (c *HandlerCard) Render(w io.Writer) {
	o := c.order
	fmt.Fprintf(w, "Order #%d %s\n", o.ID, badge(c.Status()))
	fmt.Fprintf(w, "  Total: %s\n", o.TotalAmount.StringFixed(2))
	if t := c.ETA(); t != "" {
		fmt.Fprintf(w, "  Estimated Delivery: %s\n", t)
	}
	renderItems(w, o.Items, "  ")
	for _, fo := range o.FarmOrders {
		fmt.Fprintf(w, "  Farm: %s %s\n", fo.FarmName, badge(fo.Status))
		renderItems(w, fo.Items, "    ")
	}
}
