// Package firestore implements the domain repositories on the managed
// document database. Each collection is schemaless; structure lives in the
// entity tags.
package firestore

import (
	"context"

	"draftdesk/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names. These mirror the names the portal frontend reads.
const (
	usersCollection         = "users"
	leadsCollection         = "leads"
	ordersCollection        = "orders"
	portfolioCollection     = "portfolioItems"
	servicesCollection      = "services"
	testimonialsCollection  = "testimonials"
	carouselCollection      = "carouselImages"
	notificationsCollection = "notifications"
)

// Params holds dependencies for the Firestore client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// New creates the shared Firestore client and ties its shutdown to the app
// lifecycle.
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
