package fakeapi

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FarmX-org/FarmX-mobile/internal/model"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
	"github.com/FarmX-org/FarmX-mobile/internal/session"
)

// Error is a failure with the HTTP status it is reported with.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

type farmRecord struct {
	model.Farm
	ownerID int64
}

type productRecord struct {
	model.Product
	farmID int64
}

type orderRecord struct {
	order    orders.Order
	consumer string
	code     string
}

type cartLine struct {
	id        int64
	productID int64
	quantity  int
}

// Store is the in-memory state behind the development backend.
type Store struct {
	mu       sync.Mutex
	users    map[string]*model.User
	farms    map[int64]*farmRecord
	products map[int64]*productRecord
	orders   map[int64]*orderRecord
	carts    map[string][]*cartLine
	feedback []model.Feedback
	nextID   int64

	newCode func() string
	timeNow func() time.Time
}

type StoreOption func(*Store)

// WithCodeGenerator replaces the random delivery code source.
func WithCodeGenerator(fn func() string) StoreOption {
	return func(s *Store) { s.newCode = fn }
}

func WithClock(fn func() time.Time) StoreOption {
	return func(s *Store) { s.timeNow = fn }
}

// NewStore returns a store seeded with demo users, farms, products and orders.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		users:    make(map[string]*model.User),
		farms:    make(map[int64]*farmRecord),
		products: make(map[int64]*productRecord),
		orders:   make(map[int64]*orderRecord),
		carts:    make(map[string][]*cartLine),
		nextID:   2000,
		newCode:  randomCode,
		timeNow:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

func randomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		panic(fmt.Sprintf("read random: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func item(p *productRecord, qty int) orders.OrderItem {
	return orders.OrderItem{ProductID: p.ID, ProductName: p.CropName, Quantity: qty, Price: p.Price}
}

func (s *Store) seed() {
	for _, u := range []model.User{
		{ID: 1, Username: "consumer", Name: "Lina Haddad", Email: "lina@farmx.test", Roles: []string{session.RoleConsumer}},
		{ID: 2, Username: "farmer", Name: "Omar Saleh", Email: "omar@farmx.test", Roles: []string{session.RoleFarmer}},
		{ID: 3, Username: "handler", Name: "Sami Odeh", Email: "sami@farmx.test", Roles: []string{session.RoleHandler}},
		{ID: 4, Username: "noor", Name: "Noor Khalil", Email: "noor@farmx.test", Roles: []string{session.RoleConsumer}},
	} {
		u := u
		s.users[u.Username] = &u
	}

	s.farms[3] = &farmRecord{Farm: model.Farm{ID: 3, Name: "Green Acres", Location: "Jenin", AreaSize: 12.5, SoilType: "Loam"}, ownerID: 2}
	s.farms[4] = &farmRecord{Farm: model.Farm{ID: 4, Name: "Olive Hill", Location: "Nablus", AreaSize: 30, SoilType: "Clay"}, ownerID: 2}

	for _, p := range []productRecord{
		{Product: model.Product{ID: 1, CropName: "Tomato", Price: decimal.RequireFromString("2.50"), Available: true, Category: "Vegetables", Unit: "kg", Quantity: 100}, farmID: 3},
		{Product: model.Product{ID: 2, CropName: "Cucumber", Price: decimal.RequireFromString("1.75"), Available: true, Category: "Vegetables", Unit: "kg", Quantity: 80}, farmID: 3},
		{Product: model.Product{ID: 3, CropName: "Olive Oil", Price: decimal.RequireFromString("12.00"), Available: true, Category: "Oils", Unit: "l", Quantity: 20}, farmID: 4},
		{Product: model.Product{ID: 4, CropName: "Apple", Price: decimal.RequireFromString("3.20"), Available: true, Category: "Fruits", Unit: "kg", Quantity: 50}, farmID: 4},
	} {
		p := p
		s.products[p.ID] = &p
	}

	now := s.timeNow()
	at := func(d time.Duration) string { return orders.FormatLocal(now.Add(d)) }

	s.addOrder("consumer", orders.Order{
		ID:     101,
		Status: orders.StatusPending,
		FarmOrders: []orders.FarmOrder{
			{ID: 1001, FarmID: 3, FarmName: "Green Acres", Status: orders.StatusPending, Items: []orders.OrderItem{item(s.products[1], 5)}},
			{ID: 1002, FarmID: 4, FarmName: "Olive Hill", Status: orders.StatusPending, Items: []orders.OrderItem{item(s.products[3], 1)}},
		},
	})
	s.addOrder("consumer", orders.Order{
		ID:                    102,
		Status:                orders.StatusReady,
		EstimatedDeliveryTime: at(2 * time.Hour),
		FarmOrders: []orders.FarmOrder{
			{ID: 1003, FarmID: 3, FarmName: "Green Acres", Status: orders.StatusReady, DeliveryTime: at(time.Hour), Items: []orders.OrderItem{item(s.products[2], 3)}},
		},
	})
	s.addOrder("consumer", orders.Order{
		ID:                    103,
		Status:                orders.StatusDelivered,
		EstimatedDeliveryTime: at(-24 * time.Hour),
		FarmOrders: []orders.FarmOrder{
			{ID: 1004, FarmID: 4, FarmName: "Olive Hill", Status: orders.StatusDelivered, DeliveryTime: at(-26 * time.Hour), Items: []orders.OrderItem{item(s.products[4], 4)}},
		},
	})
}

func (s *Store) addOrder(consumer string, o orders.Order) {
	total := decimal.Zero
	for _, fo := range o.FarmOrders {
		for _, it := range fo.Items {
			total = total.Add(it.Subtotal())
		}
	}
	o.TotalAmount = total
	rec := &orderRecord{order: o, consumer: consumer}
	if o.Status != orders.StatusDelivered {
		rec.code = s.newCode()
	}
	s.orders[o.ID] = rec
}

func copyFarmOrder(fo orders.FarmOrder) orders.FarmOrder {
	fo.Items = append([]orders.OrderItem(nil), fo.Items...)
	return fo
}

func copyOrder(o orders.Order) orders.Order {
	farmOrders := make([]orders.FarmOrder, len(o.FarmOrders))
	for i, fo := range o.FarmOrders {
		farmOrders[i] = copyFarmOrder(fo)
	}
	o.FarmOrders = farmOrders
	return o
}

func (s *Store) sortedOrders() []*orderRecord {
	recs := make([]*orderRecord, 0, len(s.orders))
	for _, r := range s.orders {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].order.ID < recs[j].order.ID })
	return recs
}

func rank(st orders.Status) int {
	switch st {
	case orders.StatusPending:
		return 0
	case orders.StatusReady:
		return 1
	case orders.StatusDelivered:
		return 2
	default:
		return -1
	}
}

func checkTransition(from, to orders.Status) error {
	if rank(to) < rank(from) {
		return newError(http.StatusConflict, "Invalid status transition from %s to %s", from, to)
	}
	return nil
}

func normalizeTime(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	t, err := orders.ParseTimestamp(raw)
	if err != nil {
		return "", newError(http.StatusBadRequest, "Invalid date format: %s", raw)
	}
	return orders.FormatLocal(t), nil
}

// User returns a copy of the named user.
func (s *Store) User(username string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return model.User{}, false
	}
	cp := *u
	cp.Roles = append([]string(nil), u.Roles...)
	return cp, true
}

func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		cp.Roles = append([]string(nil), u.Roles...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) UpdateUser(username string, fields map[string]string) (model.User, error) {
	s.mu.Lock()
	u, ok := s.users[username]
	if !ok {
		s.mu.Unlock()
		return model.User{}, newError(http.StatusNotFound, "User not found")
	}
	for key, value := range fields {
		switch key {
		case "name":
			u.Name = value
		case "email":
			u.Email = value
		case "phone":
			u.Phone = value
		}
	}
	s.mu.Unlock()
	user, _ := s.User(username)
	return user, nil
}

func (s *Store) ownsFarm(username string, farmID int64) error {
	f, ok := s.farms[farmID]
	if !ok {
		return newError(http.StatusNotFound, "Farm not found")
	}
	if u := s.users[username]; u == nil || u.ID != f.ownerID {
		return newError(http.StatusForbidden, "You do not own this farm")
	}
	return nil
}

func (s *Store) Farms(username string) []model.Farm {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Farm
	for _, f := range s.farms {
		if u := s.users[username]; u != nil && u.ID == f.ownerID {
			out = append(out, f.Farm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ConsumerOrders(username string) []orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []orders.Order{}
	for _, r := range s.sortedOrders() {
		if r.consumer == username {
			out = append(out, copyOrder(r.order))
		}
	}
	return out
}

func (s *Store) FarmOrders(username string, farmID int64) ([]orders.FarmOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ownsFarm(username, farmID); err != nil {
		return nil, err
	}
	out := []orders.FarmOrder{}
	for _, r := range s.sortedOrders() {
		for _, fo := range r.order.FarmOrders {
			if fo.FarmID == farmID {
				out = append(out, copyFarmOrder(fo))
			}
		}
	}
	return out, nil
}

func (s *Store) HandlerOrders() []orders.HandlerOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []orders.HandlerOrder{}
	for _, r := range s.sortedOrders() {
		o := copyOrder(r.order)
		var items []orders.OrderItem
		for _, fo := range o.FarmOrders {
			items = append(items, fo.Items...)
		}
		out = append(out, orders.HandlerOrder{
			ID:                    o.ID,
			TotalAmount:           o.TotalAmount,
			Status:                o.Status,
			EstimatedDeliveryTime: o.EstimatedDeliveryTime,
			Items:                 items,
			FarmOrders:            o.FarmOrders,
		})
	}
	return out
}

func (s *Store) findFarmOrder(id int64) (*orderRecord, *orders.FarmOrder) {
	for _, r := range s.orders {
		for i := range r.order.FarmOrders {
			if r.order.FarmOrders[i].ID == id {
				return r, &r.order.FarmOrders[i]
			}
		}
	}
	return nil, nil
}

// UpdateFarmOrderStatus moves a farm order forward. Once every farm order of
// a pending order is READY the order itself becomes READY, due at the latest
// farm delivery time unless it already has an estimate.
func (s *Store) UpdateFarmOrderStatus(username string, id int64, status orders.Status, deliveryTime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, fo := s.findFarmOrder(id)
	if fo == nil {
		return newError(http.StatusNotFound, "Farm order not found")
	}
	if err := s.ownsFarm(username, fo.FarmID); err != nil {
		return err
	}
	if status == orders.StatusDelivered {
		return newError(http.StatusBadRequest, "Farm orders are delivered by the handler")
	}
	if err := checkTransition(fo.Status, status); err != nil {
		return err
	}
	t, err := normalizeTime(deliveryTime)
	if err != nil {
		return err
	}

	fo.Status = status
	if t != "" {
		fo.DeliveryTime = t
	}
	s.rollUp(rec)
	return nil
}

func (s *Store) rollUp(rec *orderRecord) {
	if rec.order.Status != orders.StatusPending {
		return
	}
	latest := ""
	for _, fo := range rec.order.FarmOrders {
		if fo.Status != orders.StatusReady {
			return
		}
		if fo.DeliveryTime > latest {
			latest = fo.DeliveryTime
		}
	}
	rec.order.Status = orders.StatusReady
	if rec.order.EstimatedDeliveryTime == "" {
		rec.order.EstimatedDeliveryTime = latest
	}
}

func (s *Store) UpdateHandlerOrderStatus(id int64, status orders.Status, eta string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.orders[id]
	if !ok {
		return newError(http.StatusNotFound, "Order not found")
	}
	if status == orders.StatusDelivered {
		return newError(http.StatusBadRequest, "Use the delivery code to confirm delivery")
	}
	if err := checkTransition(rec.order.Status, status); err != nil {
		return err
	}
	t, err := normalizeTime(eta)
	if err != nil {
		return err
	}

	rec.order.Status = status
	if t != "" {
		rec.order.EstimatedDeliveryTime = t
	}
	return nil
}

// ConfirmDelivery checks the code of a READY order and marks it delivered.
func (s *Store) ConfirmDelivery(id int64, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.orders[id]
	if !ok {
		return newError(http.StatusNotFound, "Order not found")
	}
	switch rec.order.Status {
	case orders.StatusDelivered:
		return newError(http.StatusConflict, "Order already delivered")
	case orders.StatusReady:
	default:
		return newError(http.StatusBadRequest, "Order is not ready for delivery")
	}
	if rec.code == "" || code != rec.code {
		return newError(http.StatusBadRequest, "Pin code is incorrect")
	}

	rec.order.Status = orders.StatusDelivered
	for i := range rec.order.FarmOrders {
		rec.order.FarmOrders[i].Status = orders.StatusDelivered
	}
	rec.code = ""
	return nil
}

func (s *Store) ownedOrder(username string, id int64) (*orderRecord, error) {
	rec, ok := s.orders[id]
	if !ok || rec.consumer != username {
		return nil, newError(http.StatusNotFound, "Order not found")
	}
	return rec, nil
}

func (s *Store) RegenerateCode(username string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.ownedOrder(username, id)
	if err != nil {
		return err
	}
	if rec.order.Status == orders.StatusDelivered {
		return newError(http.StatusBadRequest, "Order already delivered")
	}
	rec.code = s.newCode()
	return nil
}

func (s *Store) DeliveryCode(username string, id int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.ownedOrder(username, id)
	if err != nil {
		return "", err
	}
	if rec.code == "" {
		return "", newError(http.StatusNotFound, "No active delivery code")
	}
	return rec.code, nil
}

func (s *Store) SubmitFeedback(username string, req model.FeedbackRequest) (model.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.ownedOrder(username, req.OrderID)
	if err != nil {
		return model.Feedback{}, err
	}
	if rec.order.Status != orders.StatusDelivered {
		return model.Feedback{}, newError(http.StatusBadRequest, "Only delivered orders can be rated")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return model.Feedback{}, newError(http.StatusBadRequest, "Rating must be between 1 and 5")
	}

	var farmOrder *orders.FarmOrder
	for i := range rec.order.FarmOrders {
		if rec.order.FarmOrders[i].FarmID == req.FarmID {
			farmOrder = &rec.order.FarmOrders[i]
		}
	}
	if farmOrder == nil {
		return model.Feedback{}, newError(http.StatusBadRequest, "Farm is not part of this order")
	}

	fb := model.Feedback{
		OrderID:      req.OrderID,
		FeedbackType: req.FeedbackType,
		Rating:       req.Rating,
		Comment:      req.Comment,
		FarmID:       req.FarmID,
		FarmName:     farmOrder.FarmName,
		ConsumerName: s.users[username].Name,
	}

	switch req.FeedbackType {
	case model.FeedbackFarm:
		for _, f := range s.feedback {
			if f.OrderID == req.OrderID && f.FarmID == req.FarmID && !f.IsProduct() {
				return model.Feedback{}, newError(http.StatusConflict, "You have already rated this farm.")
			}
		}
	case model.FeedbackProduct:
		found := false
		for _, it := range farmOrder.Items {
			found = found || it.ProductName == req.ProductName
		}
		if !found {
			return model.Feedback{}, newError(http.StatusBadRequest, "Product is not part of this order")
		}
		for _, f := range s.feedback {
			if f.OrderID == req.OrderID && f.FarmID == req.FarmID && f.ProductName == req.ProductName {
				return model.Feedback{}, newError(http.StatusConflict, "You have already rated this product.")
			}
		}
		fb.ProductName = req.ProductName
	default:
		return model.Feedback{}, newError(http.StatusBadRequest, "Unknown feedback type %q", req.FeedbackType)
	}

	fb.ID = s.id()
	s.feedback = append(s.feedback, fb)
	return fb, nil
}

func (s *Store) FarmerFeedback(username string) []model.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Feedback{}
	for _, f := range s.feedback {
		if s.ownsFarm(username, f.FarmID) == nil {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) availableProduct(id int64) (*productRecord, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, newError(http.StatusNotFound, "Product not found")
	}
	if !p.Available {
		return nil, newError(http.StatusBadRequest, "Product not available")
	}
	return p, nil
}

func checkStock(p *productRecord, qty int) error {
	if qty < 1 {
		return newError(http.StatusBadRequest, "Quantity must be positive")
	}
	if qty > p.Quantity {
		return newError(http.StatusBadRequest, "Only %d units available.", p.Quantity)
	}
	return nil
}

func (s *Store) AddToCart(username string, productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.availableProduct(productID)
	if err != nil {
		return err
	}
	for _, l := range s.carts[username] {
		if l.productID == productID {
			if err := checkStock(p, l.quantity+qty); err != nil {
				return err
			}
			l.quantity += qty
			return nil
		}
	}
	if err := checkStock(p, qty); err != nil {
		return err
	}
	s.carts[username] = append(s.carts[username], &cartLine{id: s.id(), productID: productID, quantity: qty})
	return nil
}

func (s *Store) UpdateCartItem(username string, itemID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.carts[username] {
		if l.id != itemID {
			continue
		}
		if err := checkStock(s.products[l.productID], qty); err != nil {
			return err
		}
		l.quantity = qty
		return nil
	}
	return newError(http.StatusNotFound, "Cart item not found")
}

func (s *Store) ClearCart(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, username)
}

func (s *Store) Cart(username string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := model.Cart{Items: []model.CartItem{}, TotalPrice: decimal.Zero}
	for _, l := range s.carts[username] {
		p := s.products[l.productID]
		cart.Items = append(cart.Items, model.CartItem{
			ID:           l.id,
			ProductName:  p.CropName,
			ProductImage: p.ImageURL,
			ProductPrice: p.Price,
			Quantity:     l.quantity,
		})
		cart.TotalPrice = cart.TotalPrice.Add(p.Price.Mul(decimal.NewFromInt(int64(l.quantity))))
	}
	return cart
}

// Checkout creates a PENDING order with one farm order per farm. The cart is
// left for the client to clear.
func (s *Store) Checkout(username string) (orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[username]
	if len(lines) == 0 {
		return orders.Order{}, newError(http.StatusBadRequest, "Cart is empty")
	}

	byFarm := make(map[int64][]orders.OrderItem)
	for _, l := range lines {
		p := s.products[l.productID]
		if err := checkStock(p, l.quantity); err != nil {
			return orders.Order{}, err
		}
		byFarm[p.farmID] = append(byFarm[p.farmID], item(p, l.quantity))
	}
	farmIDs := make([]int64, 0, len(byFarm))
	for id := range byFarm {
		farmIDs = append(farmIDs, id)
	}
	sort.Slice(farmIDs, func(i, j int) bool { return farmIDs[i] < farmIDs[j] })

	o := orders.Order{ID: s.id(), Status: orders.StatusPending}
	for _, farmID := range farmIDs {
		o.FarmOrders = append(o.FarmOrders, orders.FarmOrder{
			ID:       s.id(),
			FarmID:   farmID,
			FarmName: s.farms[farmID].Name,
			Status:   orders.StatusPending,
			Items:    byFarm[farmID],
		})
	}
	for _, l := range lines {
		s.products[l.productID].Quantity -= l.quantity
	}
	s.addOrder(username, o)
	return copyOrder(s.orders[o.ID].order), nil
}
