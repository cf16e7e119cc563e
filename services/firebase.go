package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/yug-24/TaskFlow/config"
)

// ErrInvalidToken wraps every provider-side rejection (expired, malformed,
// wrong audience).
var ErrInvalidToken = errors.New("invalid token")

// FirebaseVerifier resolves bearer tokens to Firebase user ids.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier builds the Admin SDK client from the service-account
// fields in the config. Called once at startup.
func NewFirebaseVerifier(ctx context.Context, conf config.Config) (*FirebaseVerifier, error) {
	if !conf.HasFirebaseCredentials() {
		return nil, errors.New("firebase service account not configured")
	}

	sa, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   conf.FirebaseProjectID,
		"client_email": conf.FirebaseClientEmail,
		"private_key":  conf.FirebasePrivateKey,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: conf.FirebaseProjectID},
		option.WithCredentialsJSON(sa),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

// Verify checks the ID token with Firebase and returns the stable uid.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return token.UID, nil
}
