package admintoken

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"schoolapp-backend/jwt"
)

// Generate signs an admin access token for operational use, without a
// backing user record.
func Generate(username string, exp time.Time, key string) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, &jwt.AccessClaims{
		UserID:   "ad000000000",
		Username: username,
		UserType: "admin",
		IsAdmin:  true,
		StandardClaims: &jwtlib.StandardClaims{
			ExpiresAt: exp.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "schoolapp-backend",
		},
	})

	return token.SignedString([]byte(key))
}
