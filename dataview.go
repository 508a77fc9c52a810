package dataview

import (
	"context"

	"github.com/dmitrymomot/dataview/core/apiclient"
	"github.com/dmitrymomot/dataview/core/authstore"
	"github.com/dmitrymomot/dataview/core/kv"
	"github.com/dmitrymomot/dataview/core/viewstore"
	"github.com/dmitrymomot/dataview/pkg/async"
)

// DefaultPageSize is the page size used by the listing screens.
const DefaultPageSize = 10

// usersSource adapts the API client to the view store source contract.
type usersSource struct {
	client *apiclient.Client
}

func (s usersSource) List(ctx context.Context, limit, offset int) (viewstore.Page[apiclient.User], error) {
	page, err := s.client.ListUsers(ctx, limit, offset)
	if err != nil {
		return viewstore.Page[apiclient.User]{}, err
	}
	return viewstore.Page[apiclient.User]{Items: page.Users, Total: page.Total}, nil
}

func (s usersSource) Search(ctx context.Context, query string) (viewstore.Page[apiclient.User], error) {
	page, err := s.client.SearchUsers(ctx, query)
	if err != nil {
		return viewstore.Page[apiclient.User]{}, err
	}
	return viewstore.Page[apiclient.User]{Items: page.Users, Total: page.Total}, nil
}

func (s usersSource) Get(ctx context.Context, id int) (apiclient.User, error) {
	return s.client.GetUser(ctx, id)
}

// productsSource adapts the API client to the view store source contracts,
// including the category dimension.
type productsSource struct {
	client *apiclient.Client
}

func (s productsSource) List(ctx context.Context, limit, offset int) (viewstore.Page[apiclient.Product], error) {
	page, err := s.client.ListProducts(ctx, limit, offset)
	if err != nil {
		return viewstore.Page[apiclient.Product]{}, err
	}
	return viewstore.Page[apiclient.Product]{Items: page.Products, Total: page.Total}, nil
}

func (s productsSource) Search(ctx context.Context, query string) (viewstore.Page[apiclient.Product], error) {
	page, err := s.client.SearchProducts(ctx, query)
	if err != nil {
		return viewstore.Page[apiclient.Product]{}, err
	}
	return viewstore.Page[apiclient.Product]{Items: page.Products, Total: page.Total}, nil
}

func (s productsSource) ListByCategory(ctx context.Context, slug string, limit, offset int) (viewstore.Page[apiclient.Product], error) {
	page, err := s.client.ListProductsByCategory(ctx, slug, limit, offset)
	if err != nil {
		return viewstore.Page[apiclient.Product]{}, err
	}
	return viewstore.Page[apiclient.Product]{Items: page.Products, Total: page.Total}, nil
}

func (s productsSource) Get(ctx context.Context, id int) (apiclient.Product, error) {
	return s.client.GetProduct(ctx, id)
}

func (s productsSource) Categories(ctx context.Context) ([]viewstore.Category, error) {
	cats, err := s.client.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]viewstore.Category, len(cats))
	for i, cat := range cats {
		out[i] = viewstore.Category{Slug: cat.Slug, Name: cat.Name}
	}
	return out, nil
}

// authenticator adapts the API client to the session store contract.
type authenticator struct {
	client *apiclient.Client
}

func (a authenticator) Authenticate(ctx context.Context, identifier, secret string) (authstore.Principal, string, error) {
	sess, err := a.client.Login(ctx, identifier, secret)
	if err != nil {
		return nil, "", err
	}
	return authstore.Principal(sess.Principal), sess.Token, nil
}

// NewUserStore creates the users collection view store bound to the API
// client.
func NewUserStore(client *apiclient.Client, opts ...viewstore.Option[apiclient.User]) (*viewstore.Store[apiclient.User], error) {
	source := usersSource{client: client}
	opts = append([]viewstore.Option[apiclient.User]{
		viewstore.WithDetailSource[apiclient.User](source),
		viewstore.WithMessages[apiclient.User](viewstore.Messages{
			FetchFailed:  "Failed to fetch users.",
			DetailFailed: "Failed to fetch user details.",
		}),
	}, opts...)
	return viewstore.New[apiclient.User](source, DefaultPageSize, opts...)
}

// NewProductStore creates the products collection view store bound to the
// API client, with the category dimension enabled.
func NewProductStore(client *apiclient.Client, opts ...viewstore.Option[apiclient.Product]) (*viewstore.Store[apiclient.Product], error) {
	source := productsSource{client: client}
	opts = append([]viewstore.Option[apiclient.Product]{
		viewstore.WithCategorySource[apiclient.Product](source),
		viewstore.WithDetailSource[apiclient.Product](source),
		viewstore.WithMessages[apiclient.Product](viewstore.Messages{
			FetchFailed:  "Failed to fetch products.",
			DetailFailed: "Failed to fetch product details.",
		}),
	}, opts...)
	return viewstore.New[apiclient.Product](source, DefaultPageSize, opts...)
}

// NewSessionStore creates the session store bound to the API client and the
// given durable storage.
func NewSessionStore(client *apiclient.Client, storage kv.Store, opts ...authstore.Option) (*authstore.Store, error) {
	return authstore.New(authenticator{client: client}, storage, opts...)
}

// Prefetch warms the users and products stores concurrently, then loads the
// product category reference data. Returns the first fetch error; category
// failures are swallowed by the store.
func Prefetch(ctx context.Context, users *viewstore.Store[apiclient.User], products *viewstore.Store[apiclient.Product]) error {
	_, err := async.WaitAll(
		async.Async(ctx, users, func(ctx context.Context, s *viewstore.Store[apiclient.User]) (struct{}, error) {
			return struct{}{}, s.FetchPage(ctx)
		}),
		async.Async(ctx, products, func(ctx context.Context, s *viewstore.Store[apiclient.Product]) (struct{}, error) {
			return struct{}{}, s.FetchPage(ctx)
		}),
	)
	if err != nil {
		return err
	}
	return products.FetchCategories(ctx)
}
