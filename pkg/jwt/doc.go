// Package jwt provides JSON Web Token utilities for the club API.
//
// The jwt package handles RS256 token signing, validation, and claims
// extraction for authentication.
//
// # Token Signing
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    PublicKeyPath:  "./keys/public.pem",
//	    Issuer:         "api.ffc.club",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{UserID: user.ID, Email: user.Email})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//
// # Claims
//
// Tokens carry identity only (user ID, email, display name, photo URL).
// Authorization is resolved against the user document on every request,
// so a role change takes effect without re-issuing tokens.
package jwt
