package authclient_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jeroenvervaeke/authorized-client/authclient"
)

type userInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Example demonstrates connecting with client credentials and fetching a
// protected JSON resource.
func Example() {
	ctx := context.Background()

	settings := authclient.Settings{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     "https://auth.example.com/oauth/v2/token",
		Scopes:       []string{"profile", "email"},
	}

	// Connect immediately exchanges the credentials for a bearer token.
	// If this fails the settings are probably wrong.
	client, err := authclient.Connect(ctx, settings)
	if err != nil {
		log.Fatal(err)
	}

	info, err := authclient.Get[userInfo](ctx, client, "https://api.example.com/info")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(info.Name)
}

// Example_errorHandling shows how to tell the error classes apart.
func Example_errorHandling() {
	ctx := context.Background()

	client, err := authclient.Connect(ctx, authclient.Settings{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     "https://auth.example.com/oauth/v2/token",
	})
	if err != nil {
		log.Fatal(err)
	}

	_, err = authclient.Get[userInfo](ctx, client, "https://api.example.com/info")

	var statusErr *authclient.StatusError
	var decodeErr *authclient.DecodeError
	switch {
	case errors.As(err, &statusErr):
		fmt.Printf("server rejected the call: %d\n", statusErr.StatusCode)
	case errors.As(err, &decodeErr):
		fmt.Printf("response was not the expected JSON: %v\n", decodeErr.Err)
	case err != nil:
		fmt.Printf("transport failure: %v\n", err)
	}
}
