package logic

import (
	"bloghive/dao/mysql"
	"bloghive/dao/redis"
	"bloghive/internal/utils"
	"bloghive/models"

	bloghive "bloghive/errors"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func UserRegist(usr *models.User) (string, string, error) {
	// reject taken usernames and emails up front
	exist, _, err := checkUserIfExist(usr.UserName)
	if err != nil {
		return "", "", errors.Wrap(err, "logic:UserRegist: checkUserIfExist")
	}
	if exist {
		return "", "", bloghive.ErrUserExist
	}
	if _, err := mysql.SelectUserByEmail(usr.Email); err == nil {
		return "", "", bloghive.ErrEmailExist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", errors.Wrap(err, "logic:UserRegist: SelectUserByEmail")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(usr.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", errors.Wrap(err, "logic:UserRegist: GenerateFromPassword")
	}
	usr.Password = string(hashedPassword)

	usr.UserID = utils.GenSnowflakeID()

	if err := mysql.InsertUser(usr); err != nil {
		if mysql.IsDuplicateEntry(err) { // lost a race with a concurrent signup
			return "", "", bloghive.ErrUserExist
		}
		return "", "", errors.Wrap(err, "logic:UserRegist: InsertUser")
	}

	return genTokenHelper(usr.UserID)
}

func UserLogin(params *models.ParamUserLogin) (*models.User, string, string, error) {
	usr, err := mysql.SelectUserByName(params.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", bloghive.ErrUserNotExist
		}
		return nil, "", "", errors.Wrap(err, "logic:UserLogin: SelectUserByName")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(params.Password)); err != nil {
		return nil, "", "", bloghive.ErrWrongPassword
	}

	access_token, refresh_token, err := genTokenHelper(usr.UserID)
	return usr, access_token, refresh_token, errors.Wrap(err, "logic:UserLogin: genTokenHelper")
}

func UserGetInfo(userID int64) (*models.UserDTO, error) {
	user, err := mysql.SelectUserByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bloghive.ErrUserNotExist
		}
		return nil, errors.Wrap(err, "logic:UserGetInfo: SelectUserByUserID")
	}

	return &models.UserDTO{
		UserID:   userID,
		UserName: user.UserName,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Intro:    user.Intro,
	}, nil
}

// issue a fresh access/refresh token pair and mirror both in redis
func genTokenHelper(UserID int64) (string, string, error) {
	access_token, err0 := utils.GenToken(UserID, utils.AccessType)
	refresh_token, err1 := utils.GenToken(0, utils.RefreshType)
	if err0 != nil || err1 != nil {
		return "", "", bloghive.ErrGenToken
	}

	if err := redis.SetUserAccessToken(UserID, access_token, utils.GetAccessTokenExpireDuration()); err != nil {
		return "", "", err
	}
	if err := redis.SetUserRefreshToken(UserID, refresh_token, utils.GetRefreshTokenExpireDuration()); err != nil {
		return "", "", err
	}

	return access_token, refresh_token, nil
}

func checkUserIfExist(username string) (bool, int64, error) {
	usr, err := mysql.SelectUserByName(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, nil
		}
		return false, 0, errors.Wrap(err, "logic:checkUserIfExist: SelectUserByName")
	}
	return true, usr.UserID, nil
}
