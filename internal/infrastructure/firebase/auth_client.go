package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	// A missing probe user still proves the connection works; only
	// transport-level failures matter here.
	_, err := f.client.GetUser(ctx, "connection-probe")
	if err != nil && auth.IsUserNotFound(err) {
		return nil
	}
	return err
}
