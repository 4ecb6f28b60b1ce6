package logic

import (
	"time"

	"bloghive/dao/redis"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// RefreshToken exchanges a valid refresh_token for a new access_token. An
// empty return with nil error means the old access_token is still usable.
func RefreshToken(refresh_token, access_token string) (string, error) {
	jwtKey := utils.GetJwtKey()

	_, err := jwt.ParseWithClaims(refresh_token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", bloghive.ErrExpiredToken
		}
		return "", bloghive.ErrInvalidToken
	}

	usrClaims := new(utils.UserClaims)
	_, err = jwt.ParseWithClaims(access_token, usrClaims, func(t *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil && errors.Is(err, jwt.ErrTokenExpired) {
		// The login session stays alive only while the redis copy of the
		// refresh_token matches.
		rdb_refresh_token, err := redis.GetUserRefreshToken(usrClaims.UserID)
		if err != nil || rdb_refresh_token != refresh_token {
			return "", bloghive.ErrExpiredToken
		}

		return utils.GenToken(usrClaims.UserID, utils.AccessType)
	}

	return "", nil // no refresh needed
}

func SetUserAccessToken(userID int64, accessTokenStr string, expireDuration time.Duration) error {
	return redis.SetUserAccessToken(userID, accessTokenStr, expireDuration)
}

// GetUserAccessToken returns the mirrored access_token, or "" when the key
// is gone (logout or expiry); only a real redis failure is an error.
func GetUserAccessToken(userID int64) (string, error) {
	access_token, err := redis.GetUserAccessToken(userID)
	if err != nil && !redis.IsNil(err) {
		return "", errors.Wrap(err, "get user access_token")
	}
	return access_token, nil
}
