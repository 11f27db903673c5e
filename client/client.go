// Package client is the high-level SDK surface. It wires the request
// gateway, the query cache and the backing store together, so dashboard
// consumers get cached reads, debounced search and cache-invalidating
// mutations from one place.
package client

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fynlo/fynlo-go/api"
	"github.com/fynlo/fynlo-go/api/endpoints"
	"github.com/fynlo/fynlo-go/api/http"
	"github.com/fynlo/fynlo-go/config"
	"github.com/fynlo/fynlo-go/query"
	"github.com/fynlo/fynlo-go/store"
)

const (
	restaurantPrefix = "restaurants:"
	orderPrefix      = "orders:"
)

type Client struct {
	Config config.Config

	caller  http.Caller
	cache   *query.Cache
	search  *query.Debouncer
	backing store.Store
}

func New(caller http.Caller, backing store.Store, cfg config.Config) *Client {
	return &Client{
		Config: cfg,
		caller: caller,
		cache: query.NewCache(
			query.WithTTL(cfg.CacheTTL()),
			query.WithMaxEntries(cfg.CacheMaxEntries),
		),
		search:  query.NewDebouncer(cfg.Debounce()),
		backing: backing,
	}
}

// Close releases cache resources.
func (c *Client) Close() {
	c.cache.Close()
}

// Restaurant returns a restaurant by id, served from the cache while fresh.
func (c *Client) Restaurant(ctx context.Context, id string) (api.Restaurant, error) {
	value, err := c.cache.Execute(ctx, restaurantPrefix+id, func(ctx context.Context) (any, error) {
		result, err := c.caller.Get(ctx, endpoints.RestaurantDetails, endpoints.Params{"id": id})
		if err != nil {
			return nil, err
		}
		var restaurant api.Restaurant
		if err := result.Decode(&restaurant); err != nil {
			return nil, err
		}
		return restaurant, nil
	})
	if err != nil {
		return api.Restaurant{}, err
	}
	return asType[api.Restaurant](value)
}

// Restaurants lists restaurants from the backing store, compiled from the
// given filter set and pagination window. Results are cached per filter set.
func (c *Client) Restaurants(ctx context.Context, filters query.Filters, page query.Page) ([]store.Row, error) {
	key := fmt.Sprintf("%slist:%s:%d:%d", restaurantPrefix, hashKey(filters.CacheKey()), page.Number, page.Size)

	value, err := c.cache.Execute(ctx, key, func(ctx context.Context) (any, error) {
		q := query.BuildPaginated(c.backing.From("restaurants"), filters, "name", true, page)
		return q.Execute(ctx)
	})
	if err != nil {
		return nil, err
	}
	return asType[[]store.Row](value)
}

// SearchRestaurants runs a debounced name search. Bursts of keystrokes
// collapse into one store query; failures degrade to an empty result set.
func (c *Client) SearchRestaurants(ctx context.Context, term string, deliver func([]any)) {
	c.search.Search(ctx, term, func(ctx context.Context, term string) ([]any, error) {
		rows, err := c.backing.From("restaurants").Like("name", "%"+term+"%").Execute(ctx)
		if err != nil {
			return nil, err
		}
		results := make([]any, len(rows))
		for i, row := range rows {
			results[i] = row
		}
		return results, nil
	}, deliver)
}

// Menu returns a restaurant's menu, cached under the restaurant's prefix so
// restaurant-level invalidation covers it.
func (c *Client) Menu(ctx context.Context, restaurantID string) ([]api.MenuItem, error) {
	value, err := c.cache.Execute(ctx, restaurantPrefix+restaurantID+":menu", func(ctx context.Context) (any, error) {
		result, err := c.caller.Get(ctx, endpoints.RestaurantMenu, endpoints.Params{"id": restaurantID})
		if err != nil {
			return nil, err
		}
		var items []api.MenuItem
		if err := result.Decode(&items); err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return asType[[]api.MenuItem](value)
}

// Order returns a single order by id, cached.
func (c *Client) Order(ctx context.Context, id string) (api.Order, error) {
	value, err := c.cache.Execute(ctx, orderPrefix+id, func(ctx context.Context) (any, error) {
		result, err := c.caller.Get(ctx, endpoints.OrderDetails, endpoints.Params{"id": id})
		if err != nil {
			return nil, err
		}
		var order api.Order
		if err := result.Decode(&order); err != nil {
			return nil, err
		}
		return order, nil
	})
	if err != nil {
		return api.Order{}, err
	}
	return asType[api.Order](value)
}

// CreateOrder posts a new order and invalidates cached order reads.
func (c *Client) CreateOrder(ctx context.Context, params api.OrderParams) (api.Order, error) {
	result, err := c.caller.Post(ctx, endpoints.OrderCreate, nil, params)
	if err != nil {
		return api.Order{}, err
	}

	var order api.Order
	if err := result.Decode(&order); err != nil {
		return api.Order{}, err
	}

	c.cache.ClearPrefix(orderPrefix)
	return order, nil
}

// UpdateOrder patches an order and invalidates cached order reads.
func (c *Client) UpdateOrder(ctx context.Context, id string, patch any) (api.Order, error) {
	result, err := c.caller.Patch(ctx, endpoints.OrderUpdate, endpoints.Params{"id": id}, patch)
	if err != nil {
		return api.Order{}, err
	}

	var order api.Order
	if err := result.Decode(&order); err != nil {
		return api.Order{}, err
	}

	c.cache.ClearPrefix(orderPrefix)
	return order, nil
}

// UpdateRestaurant puts new restaurant details and invalidates cached
// restaurant reads.
func (c *Client) UpdateRestaurant(ctx context.Context, id string, details any) (api.Restaurant, error) {
	result, err := c.caller.Put(ctx, endpoints.RestaurantDetails, endpoints.Params{"id": id}, details)
	if err != nil {
		return api.Restaurant{}, err
	}

	var restaurant api.Restaurant
	if err := result.Decode(&restaurant); err != nil {
		return api.Restaurant{}, err
	}

	c.cache.ClearPrefix(restaurantPrefix)
	return restaurant, nil
}

// InviteStaff sends a staff invitation. Invitations are never cached.
func (c *Client) InviteStaff(ctx context.Context, params api.StaffInviteParams) (api.StaffInvite, error) {
	result, err := c.caller.Post(ctx, endpoints.StaffInvite, nil, params)
	if err != nil {
		return api.StaffInvite{}, err
	}

	var invite api.StaffInvite
	if err := result.Decode(&invite); err != nil {
		return api.StaffInvite{}, err
	}
	return invite, nil
}

// Dashboard holds the pieces a restaurant dashboard renders. Any part may be
// missing when its fetch failed; the others still load.
type Dashboard struct {
	Restaurant *api.Restaurant
	Menu       []api.MenuItem
	Orders     []api.Order
}

// LoadDashboard fetches a restaurant, its menu and recent orders
// concurrently. Per-key failures leave their slot empty instead of failing
// the whole load.
func (c *Client) LoadDashboard(ctx context.Context, restaurantID string) Dashboard {
	results := c.cache.Batch(ctx, []query.Lookup{
		{Key: restaurantPrefix + restaurantID, Fetch: func(ctx context.Context) (any, error) {
			result, err := c.caller.Get(ctx, endpoints.RestaurantDetails, endpoints.Params{"id": restaurantID})
			if err != nil {
				return nil, err
			}
			var restaurant api.Restaurant
			if err := result.Decode(&restaurant); err != nil {
				return nil, err
			}
			return restaurant, nil
		}},
		{Key: restaurantPrefix + restaurantID + ":menu", Fetch: func(ctx context.Context) (any, error) {
			result, err := c.caller.Get(ctx, endpoints.RestaurantMenu, endpoints.Params{"id": restaurantID})
			if err != nil {
				return nil, err
			}
			var items []api.MenuItem
			if err := result.Decode(&items); err != nil {
				return nil, err
			}
			return items, nil
		}},
		{Key: orderPrefix + "list:" + restaurantID, Fetch: func(ctx context.Context) (any, error) {
			result, err := c.caller.Get(ctx, endpoints.OrderList, nil)
			if err != nil {
				return nil, err
			}
			var orders []api.Order
			if err := result.Decode(&orders); err != nil {
				return nil, err
			}
			return orders, nil
		}},
	})

	var dashboard Dashboard
	if restaurant, ok := results[restaurantPrefix+restaurantID].(api.Restaurant); ok {
		dashboard.Restaurant = &restaurant
	}
	if menu, ok := results[restaurantPrefix+restaurantID+":menu"].([]api.MenuItem); ok {
		dashboard.Menu = menu
	}
	if orders, ok := results[orderPrefix+"list:"+restaurantID].([]api.Order); ok {
		dashboard.Orders = orders
	}
	return dashboard
}

// InvalidateRestaurants drops every cached restaurant read.
func (c *Client) InvalidateRestaurants() {
	c.cache.ClearPrefix(restaurantPrefix)
}

// InvalidateOrders drops every cached order read.
func (c *Client) InvalidateOrders() {
	c.cache.ClearPrefix(orderPrefix)
}

func asType[T any](value any) (T, error) {
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected cached value type %T", value)
	}
	return typed, nil
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
